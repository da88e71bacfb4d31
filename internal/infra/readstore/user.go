package readstore

import (
	"context"
	"time"

	"chefbook/internal/infra"
	"chefbook/internal/infra/db"
	"chefbook/internal/pkg/pgconv"
	"chefbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var view queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, `
		SELECT id, email, role, nickname, binding_code, created_at
		FROM users WHERE id = $1`, id).Scan(
		&view.ID, &view.Email, &view.Role, &view.Nickname,
		&view.BindingCode, &view.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &view, nil
}

// CredentialsRow carries what login needs and nothing else.
type CredentialsRow struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	Nickname     string
	CreatedAt    time.Time
}

func (r *UserReadStore) FindCredentialsByEmail(ctx context.Context, email string) (*CredentialsRow, error) {
	var row CredentialsRow
	err := r.db.QueryRow(ctx, `
		SELECT id, email, password_hash, role, nickname, created_at
		FROM users WHERE email = $1`, email).Scan(
		&row.ID, &row.Email, &row.PasswordHash, &row.Role, &row.Nickname, &row.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return &row, nil
}

// ChefRow resolves a binding code to its chef.
type ChefRow struct {
	ID       uuid.UUID
	Nickname string
}

func (r *UserReadStore) FindChefByBindingCode(ctx context.Context, code string) (*ChefRow, error) {
	var row ChefRow
	err := r.db.QueryRow(ctx, `
		SELECT id, nickname
		FROM users WHERE binding_code = $1 AND role = 'chef'`, code).Scan(&row.ID, &row.Nickname)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("chef not found for binding code", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to resolve binding code", err)
	}
	return &row, nil
}
