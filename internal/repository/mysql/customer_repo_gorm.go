package mysql

import (
	"context"
	"errors"

	"github.com/Dany1912-dev/ProyectoMetodologia/internal/domain"
	"github.com/Dany1912-dev/ProyectoMetodologia/internal/repository"
	"gorm.io/gorm"
)

type customerRepo struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepo{db: db}
}

// FindProfileByID flattens the customer and its address chain into the
// profile read model with a single joined select instead of walking
// address -> city -> state -> country one record at a time.
func (r *customerRepo) FindProfileByID(ctx context.Context, id uint64) (*domain.CustomerProfile, error) {
	var p domain.CustomerProfile
	err := r.db.WithContext(ctx).
		Table("customers").
		Select(`customers.id AS customer_id,
			customers.first_name,
			customers.last_name,
			customers.second_last_name,
			customers.email,
			customers.phone,
			addresses.street,
			addresses.exterior_number,
			addresses.interior_number,
			addresses.neighborhood,
			addresses.postal_code,
			addresses.reference_notes,
			cities.name AS city_name,
			states.name AS state_name,
			countries.name AS country_name`).
		Joins("LEFT JOIN addresses ON addresses.id = customers.address_id").
		Joins("LEFT JOIN cities ON cities.id = addresses.city_id").
		Joins("LEFT JOIN states ON states.id = cities.state_id").
		Joins("LEFT JOIN countries ON countries.id = states.country_id").
		Where("customers.id = ? AND customers.active = ?", id, true).
		Take(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
