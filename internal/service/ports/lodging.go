package ports

import (
	"context"

	"github.com/Soloquie/Alojapp-sub002/internal/domain"
)

type LodgingRepo interface {
	Create(ctx context.Context, l *domain.Lodging) error
	GetByID(ctx context.Context, id string) (*domain.Lodging, error)
	List(ctx context.Context) ([]*domain.Lodging, error)
}
