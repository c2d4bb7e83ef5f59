package repositories

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/you/ytstudio/domain"
)

// GenerationRepositoryImpl implements domain.GenerationRepository using GORM
type GenerationRepositoryImpl struct {
	db *gorm.DB
}

// titleList stores title suggestions as a JSON column.
type titleList []domain.TitleSuggestion

func (l titleList) Value() (driver.Value, error) { return jsonValue(l) }
func (l *titleList) Scan(src any) error          { return jsonScan(src, l) }

// tagList stores tag suggestions as a JSON column.
type tagList []domain.TagSuggestion

func (l tagList) Value() (driver.Value, error) { return jsonValue(l) }
func (l *tagList) Scan(src any) error          { return jsonScan(src, l) }

// keywordList stores keyword suggestions as a JSON column.
type keywordList []domain.KeywordSuggestion

func (l keywordList) Value() (driver.Value, error) { return jsonValue(l) }
func (l *keywordList) Scan(src any) error          { return jsonScan(src, l) }

func jsonValue(v any) (driver.Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func jsonScan(src, dst any) error {
	switch s := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(s, dst)
	case string:
		return json.Unmarshal([]byte(s), dst)
	default:
		return fmt.Errorf("unsupported column type %T", src)
	}
}

// DBGeneration represents the database model for Generation
type DBGeneration struct {
	ID          uint        `gorm:"primaryKey"`
	UserID      uint        `gorm:"index;not null"`
	Topic       string      `gorm:"size:255;not null"`
	VideoType   string      `gorm:"size:64;not null"`
	Tone        string      `gorm:"size:32;not null"`
	Titles      titleList   `gorm:"type:jsonb"`
	Description string      `gorm:"type:text"`
	Tags        tagList     `gorm:"type:jsonb"`
	Keywords    keywordList `gorm:"type:jsonb"`
	CreditsUsed int         `gorm:"not null;default:1"`
	CreatedAt   time.Time   `gorm:"index"`
	UpdatedAt   time.Time
}

// TableName returns the table name for GORM
func (DBGeneration) TableName() string {
	return "generations"
}

// NewGenerationRepository creates a new generation repository
func NewGenerationRepository(db *gorm.DB) domain.GenerationRepository {
	return &GenerationRepositoryImpl{db: db}
}

// Create implements domain.GenerationRepository
func (r *GenerationRepositoryImpl) Create(ctx context.Context, gen *domain.Generation) error {
	dbGen := &DBGeneration{
		UserID:      gen.UserID,
		Topic:       gen.Topic,
		VideoType:   gen.VideoType,
		Tone:        gen.Tone,
		Titles:      titleList(gen.Titles),
		Description: gen.Description,
		Tags:        tagList(gen.Tags),
		Keywords:    keywordList(gen.Keywords),
		CreditsUsed: gen.CreditsUsed,
	}
	if err := r.db.WithContext(ctx).Create(dbGen).Error; err != nil {
		return err
	}
	gen.ID = dbGen.ID
	gen.CreatedAt = dbGen.CreatedAt
	return nil
}

// ListRecent implements domain.GenerationRepository, newest first.
func (r *GenerationRepositoryImpl) ListRecent(ctx context.Context, userID uint, limit int) ([]*domain.Generation, error) {
	var dbGens []DBGeneration
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&dbGens).Error
	if err != nil {
		return nil, err
	}

	gens := make([]*domain.Generation, 0, len(dbGens))
	for i := range dbGens {
		gens = append(gens, r.dbToDomain(&dbGens[i]))
	}
	return gens, nil
}

// dbToDomain converts database generation to domain generation
func (r *GenerationRepositoryImpl) dbToDomain(dbGen *DBGeneration) *domain.Generation {
	return &domain.Generation{
		ID:          dbGen.ID,
		UserID:      dbGen.UserID,
		Topic:       dbGen.Topic,
		VideoType:   dbGen.VideoType,
		Tone:        dbGen.Tone,
		Titles:      []domain.TitleSuggestion(dbGen.Titles),
		Description: dbGen.Description,
		Tags:        []domain.TagSuggestion(dbGen.Tags),
		Keywords:    []domain.KeywordSuggestion(dbGen.Keywords),
		CreditsUsed: dbGen.CreditsUsed,
		CreatedAt:   dbGen.CreatedAt,
	}
}
