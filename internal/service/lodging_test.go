package service

import (
	"context"
	"testing"

	"github.com/Soloquie/Alojapp-sub002/internal/domain"
	"github.com/Soloquie/Alojapp-sub002/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLodgingService_Create_Success(t *testing.T) {
	repo := mocks.NewMockLodgingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewLodgingService(repo, userRepo)

	userRepo.EXPECT().GetByID(mock.Anything, "h1").Return(&domain.User{ID: "h1"}, nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	lodging, err := svc.Create(context.Background(), domain.CreateLodgingInput{
		HostID:      "h1",
		Name:        "Sea View Apartment",
		NightlyRate: 100000,
		Capacity:    4,
	})

	require.NoError(t, err)
	assert.Equal(t, "h1", lodging.HostID)
	assert.True(t, lodging.Active) // default when not specified
	assert.NotEmpty(t, lodging.ID)
}

func TestLodgingService_Create_InactiveOnRequest(t *testing.T) {
	repo := mocks.NewMockLodgingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewLodgingService(repo, userRepo)

	userRepo.EXPECT().GetByID(mock.Anything, "h1").Return(&domain.User{ID: "h1"}, nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	inactive := false
	lodging, err := svc.Create(context.Background(), domain.CreateLodgingInput{
		HostID:      "h1",
		Name:        "Winter Cabin",
		NightlyRate: 50000,
		Capacity:    2,
		Active:      &inactive,
	})

	require.NoError(t, err)
	assert.False(t, lodging.Active)
}

func TestLodgingService_Create_Validation(t *testing.T) {
	svc := NewLodgingService(nil, nil)

	tests := []struct {
		name  string
		input domain.CreateLodgingInput
	}{
		{
			name:  "empty name",
			input: domain.CreateLodgingInput{HostID: "h1", NightlyRate: 1000, Capacity: 2},
		},
		{
			name:  "zero rate",
			input: domain.CreateLodgingInput{HostID: "h1", Name: "X", Capacity: 2},
		},
		{
			name:  "negative rate",
			input: domain.CreateLodgingInput{HostID: "h1", Name: "X", NightlyRate: -1, Capacity: 2},
		},
		{
			name:  "zero capacity",
			input: domain.CreateLodgingInput{HostID: "h1", Name: "X", NightlyRate: 1000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestLodgingService_Create_HostNotFound(t *testing.T) {
	repo := mocks.NewMockLodgingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewLodgingService(repo, userRepo)

	userRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Create(context.Background(), domain.CreateLodgingInput{
		HostID:      "missing",
		Name:        "X",
		NightlyRate: 1000,
		Capacity:    2,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLodgingService_List(t *testing.T) {
	repo := mocks.NewMockLodgingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewLodgingService(repo, userRepo)

	lodgings := []*domain.Lodging{{ID: "l1", Name: "Sea View Apartment"}}
	repo.EXPECT().List(mock.Anything).Return(lodgings, nil)

	result, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 1)
}
