package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/you/ytstudio/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID               uint   `gorm:"primaryKey"`
	Email            string `gorm:"uniqueIndex;size:255"`
	PasswordHash     string `gorm:"column:password"`
	FullName         string `gorm:"size:255"`
	Plan             string `gorm:"index;size:32"`
	CreditsRemaining int    `gorm:"not null;default:0"`
	IsEmailVerified  bool
	LastLogin        *time.Time
	CreatedAt        time.Time `gorm:"index"`
	UpdatedAt        time.Time
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrUserAlreadyExists
		}
		return err
	}
	user.ID = dbUser.ID
	user.CreatedAt = dbUser.CreatedAt
	user.UpdatedAt = dbUser.UpdatedAt
	return nil
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// Update implements domain.UserRepository
func (r *UserRepositoryImpl) Update(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Save(dbUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

// DecrementCredits implements domain.UserRepository. The conditional
// UPDATE is the single point where a balance changes, so concurrent
// generations can never push it below zero.
func (r *UserRepositoryImpl) DecrementCredits(ctx context.Context, userID uint) (int, error) {
	res := r.db.WithContext(ctx).Model(&DBUser{}).
		Where("id = ? AND credits_remaining > 0", userID).
		UpdateColumn("credits_remaining", gorm.Expr("credits_remaining - 1"))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, domain.ErrInsufficientCredits
	}

	var dbUser DBUser
	if err := r.db.WithContext(ctx).Select("credits_remaining").Where("id = ?", userID).First(&dbUser).Error; err != nil {
		return 0, err
	}
	return dbUser.CreditsRemaining, nil
}

// domainToDB converts domain user to database user
func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:               user.ID,
		Email:            user.Email,
		PasswordHash:     user.PasswordHash,
		FullName:         user.FullName,
		Plan:             user.Plan,
		CreditsRemaining: user.CreditsRemaining,
		IsEmailVerified:  user.IsEmailVerified,
		LastLogin:        user.LastLogin,
		CreatedAt:        user.CreatedAt,
	}
}

// dbToDomain converts database user to domain user
func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:               dbUser.ID,
		Email:            dbUser.Email,
		PasswordHash:     dbUser.PasswordHash,
		FullName:         dbUser.FullName,
		Plan:             dbUser.Plan,
		CreditsRemaining: dbUser.CreditsRemaining,
		IsEmailVerified:  dbUser.IsEmailVerified,
		LastLogin:        dbUser.LastLogin,
		CreatedAt:        dbUser.CreatedAt,
		UpdatedAt:        dbUser.UpdatedAt,
	}
}
