package repository

import "github.com/nationaltraders/plumbing-crm/internal/domain/entity"

// UserRepository persistence contract for API accounts.
// FindByEmail returns (nil, nil) when no user matches.
type UserRepository interface {
	Create(user *entity.User) error
	FindByEmail(email string) (*entity.User, error)
}
