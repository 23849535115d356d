package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Soloquie/Alojapp-sub002/internal/domain"
	"github.com/Soloquie/Alojapp-sub002/internal/service/ports"
	"github.com/google/uuid"
)

type LodgingService struct {
	repo     ports.LodgingRepo
	userRepo ports.UserRepo
}

func NewLodgingService(repo ports.LodgingRepo, userRepo ports.UserRepo) *LodgingService {
	return &LodgingService{
		repo:     repo,
		userRepo: userRepo,
	}
}

func (s *LodgingService) Create(ctx context.Context, input domain.CreateLodgingInput) (*domain.Lodging, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.NightlyRate <= 0 {
		return nil, fmt.Errorf("%w: nightly_rate must be positive", domain.ErrValidation)
	}
	if input.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}

	if _, err := s.userRepo.GetByID(ctx, input.HostID); err != nil {
		return nil, fmt.Errorf("check host: %w", err)
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	now := time.Now().UTC()
	lodging := &domain.Lodging{
		ID:          uuid.New().String(),
		HostID:      input.HostID,
		Name:        input.Name,
		NightlyRate: input.NightlyRate,
		Capacity:    input.Capacity,
		Active:      active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, lodging); err != nil {
		return nil, fmt.Errorf("create lodging: %w", err)
	}

	return lodging, nil
}

func (s *LodgingService) GetByID(ctx context.Context, id string) (*domain.Lodging, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *LodgingService) List(ctx context.Context) ([]*domain.Lodging, error) {
	return s.repo.List(ctx)
}
