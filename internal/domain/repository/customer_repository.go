package repository

import "github.com/nationaltraders/plumbing-crm/internal/domain/entity"

// CustomerRepository persistence contract for customers.
// GetByMobile returns (nil, nil) when no customer matches.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByMobile(mobile string) (*entity.Customer, error)
	List() ([]*entity.Customer, error)
	Count() (int, error)
}
