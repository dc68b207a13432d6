package mysql

import (
	"context"
	"errors"

	"github.com/Dany1912-dev/ProyectoMetodologia/internal/domain"
	"github.com/Dany1912-dev/ProyectoMetodologia/internal/repository"
	"gorm.io/gorm"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

// Create inserts the order first so the lines can carry its id; both
// writes share one transaction, so a failed line insert rolls the order
// back too.
func (r *orderRepo) Create(ctx context.Context, order *domain.Order) error {
	lines := order.Lines
	order.Lines = nil

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return nil
		}
		for i := range lines {
			lines[i].OrderID = order.ID
		}
		return tx.Create(&lines).Error
	})

	order.Lines = lines
	return err
}

func (r *orderRepo) FindByID(ctx context.Context, id uint64) (*domain.Order, error) {
	var o domain.Order
	err := r.db.WithContext(ctx).
		Preload("Lines").
		Preload("Customer").
		First(&o, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) FindByCustomer(ctx context.Context, customerID uint64) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.WithContext(ctx).
		Preload("Lines").
		Where("customer_id = ?", customerID).
		Order("placed_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) FindByStatusIn(ctx context.Context, statuses []domain.OrderStatus) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.WithContext(ctx).
		Preload("Lines").
		Preload("Customer").
		Where("status IN ?", statuses).
		Order("placed_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id uint64, status domain.OrderStatus) error {
	return r.db.WithContext(ctx).
		Model(&domain.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}
