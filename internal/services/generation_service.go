package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/you/ytstudio/domain"
)

// DefaultHistoryLimit caps how many records a history read returns.
const DefaultHistoryLimit = 20

// GenerationServiceImpl implements domain.GenerationService
type GenerationServiceImpl struct {
	genRepo  domain.GenerationRepository
	userRepo domain.UserRepository
}

// NewGenerationService creates a new generation service
func NewGenerationService(genRepo domain.GenerationRepository, userRepo domain.UserRepository) domain.GenerationService {
	return &GenerationServiceImpl{
		genRepo:  genRepo,
		userRepo: userRepo,
	}
}

// Generate implements domain.GenerationService. The order is fixed:
// validate, check credits, synthesize, persist, then decrement. A failed
// write never costs the user a credit.
func (s *GenerationServiceImpl) Generate(ctx context.Context, user *domain.User, req *domain.GenerationRequest) (*domain.GenerationResult, error) {
	if req.Topic == "" || req.VideoType == "" || req.Tone == "" {
		return nil, domain.ErrMissingGenerationFields
	}

	if user.CreditsRemaining <= 0 {
		return nil, domain.ErrInsufficientCredits
	}

	titles := SynthesizeTitles(req)
	description := SynthesizeDescription(req)
	tags := SynthesizeTags(req)
	keywords := SynthesizeKeywords(req)

	gen := &domain.Generation{
		UserID:      user.ID,
		Topic:       req.Topic,
		VideoType:   req.VideoType,
		Tone:        req.Tone,
		Titles:      titles,
		Description: description,
		Tags:        tags,
		Keywords:    keywords,
		CreditsUsed: 1,
	}

	if err := s.genRepo.Create(ctx, gen); err != nil {
		return nil, fmt.Errorf("failed to persist generation: %w", err)
	}

	remaining, err := s.userRepo.DecrementCredits(ctx, user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientCredits) {
			// Lost a race with a concurrent generation after the write
			// landed; surface it rather than report a stale balance.
			return nil, err
		}
		return nil, fmt.Errorf("failed to decrement credits: %w", err)
	}

	return &domain.GenerationResult{
		Titles:           titles,
		Description:      description,
		Tags:             tags,
		Keywords:         keywords,
		CreditsRemaining: remaining,
	}, nil
}

// History implements domain.GenerationService, newest first, capped at
// DefaultHistoryLimit.
func (s *GenerationServiceImpl) History(ctx context.Context, userID uint, limit int) ([]*domain.Generation, error) {
	if limit <= 0 || limit > DefaultHistoryLimit {
		limit = DefaultHistoryLimit
	}
	return s.genRepo.ListRecent(ctx, userID, limit)
}
