package repository

import (
	"context"

	"chefbook/internal/domain/user"
	"chefbook/internal/infra"
	"chefbook/internal/infra/db"
	"chefbook/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error) {
	var code *string
	if u.BindingCode() != "" {
		c := u.BindingCode()
		code = &c
	}
	_, err := tx.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, role, nickname, binding_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		u.ID(), u.Email().Value(), u.PasswordHash(), u.Role().String(),
		u.Nickname(), code, u.CreatedAt(), u.UpdatedAt())
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("email or binding code already taken", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return u.ID(), nil
}
