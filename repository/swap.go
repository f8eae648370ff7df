package repository

import (
	"context"

	"github.com/skillswap/backend/domain"
)

// Direction selects which side of a swap request a listing refers to.
type Direction string

const (
	DirectionSent     Direction = "sent"
	DirectionReceived Direction = "received"
)

func (d Direction) Valid() bool {
	return d == DirectionSent || d == DirectionReceived
}

type SwapRequestRepository interface {
	GetByID(ctx context.Context, id string) (*domain.SwapRequest, error)
	List(ctx context.Context) ([]domain.SwapRequest, error)
	ListByUser(ctx context.Context, userID string, direction Direction) ([]domain.SwapRequest, error)
	Create(ctx context.Context, request *domain.SwapRequest) (*domain.SwapRequest, error)
	Update(ctx context.Context, request *domain.SwapRequest) error
	Delete(ctx context.Context, id string) error
	// DeleteByUser removes every request the user is a party to.
	DeleteByUser(ctx context.Context, userID string) error
}
