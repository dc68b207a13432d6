package repository

import (
	"context"

	"github.com/Dany1912-dev/ProyectoMetodologia/internal/domain"
)

type CustomerRepository interface {
	// FindProfileByID returns (nil, nil) for unknown or inactive customers.
	FindProfileByID(ctx context.Context, id uint64) (*domain.CustomerProfile, error)
}
