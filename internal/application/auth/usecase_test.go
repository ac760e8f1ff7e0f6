package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nationaltraders/plumbing-crm/internal/application/auth"
	"github.com/nationaltraders/plumbing-crm/internal/application/dto"
	"github.com/nationaltraders/plumbing-crm/internal/domain"
	"github.com/nationaltraders/plumbing-crm/internal/domain/entity"
	"github.com/nationaltraders/plumbing-crm/pkg/config"
	pkgjwt "github.com/nationaltraders/plumbing-crm/pkg/jwt"
)

var testJWT = config.JWTConfig{
	Secret:     "test-secret-key-for-unit-tests",
	Expiration: 60,
	Issuer:     "plumbing-crm-test",
}

// fakeUserRepo in-memory UserRepository.
type fakeUserRepo struct {
	users []*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	if existing, _ := r.FindByEmail(u.Email); existing != nil {
		return domain.ErrEmailAlreadyExists
	}
	r.users = append(r.users, u)
	return nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func TestRegister_DefaultsToStaff(t *testing.T) {
	uc := auth.NewUseCase(&fakeUserRepo{}, testJWT)

	user, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name:     "Counter Staff",
		Email:    "Staff@NationalTraders.in",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleStaff, user.Role)
	assert.Equal(t, "staff@nationaltraders.in", user.Email, "email is stored lowercased")
	assert.NotEmpty(t, user.ID)
}

func TestRegister_Validation(t *testing.T) {
	uc := auth.NewUseCase(&fakeUserRepo{}, testJWT)

	cases := []struct {
		name string
		in   dto.RegisterRequest
	}{
		{"missing name", dto.RegisterRequest{Email: "a@b.in", Password: "secret123"}},
		{"bad email", dto.RegisterRequest{Name: "X", Email: "not-an-email", Password: "secret123"}},
		{"short password", dto.RegisterRequest{Name: "X", Email: "a@b.in", Password: "abc"}},
		{"unknown role", dto.RegisterRequest{Name: "X", Email: "a@b.in", Password: "secret123", Role: "OWNER"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Register(context.Background(), tc.in)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc := auth.NewUseCase(&fakeUserRepo{}, testJWT)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name: "First", Email: "dup@b.in", Password: "secret123",
	})
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), dto.RegisterRequest{
		Name: "Second", Email: "DUP@b.in", Password: "secret123",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_IssuesTokenWithRole(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := auth.NewUseCase(repo, testJWT)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name: "Owner", Email: "admin@b.in", Password: "secret123", Role: entity.RoleAdmin,
	})
	require.NoError(t, err)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "admin@b.in", Password: "secret123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, entity.RoleAdmin, resp.User.Role)

	userID, role, err := pkgjwt.Parse(testJWT.Secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_WrongCredentials(t *testing.T) {
	uc := auth.NewUseCase(&fakeUserRepo{}, testJWT)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name: "X", Email: "a@b.in", Password: "secret123",
	})
	require.NoError(t, err)

	// Unknown email and wrong password look the same to the caller.
	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "nobody@b.in", Password: "secret123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "a@b.in", Password: "wrong-pass"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
