package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"

	"chefbook/internal/domain/user"
	"chefbook/internal/infra"
	"chefbook/internal/infra/readstore"
	"chefbook/internal/pkg/clock"
	"chefbook/internal/pkg/jwt"
	"chefbook/internal/pkg/password"
	"chefbook/internal/usecase/queries"
	"chefbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrTokenGeneration    = errors.New("token generation failed")
	ErrTokenValidation    = errors.New("token validation failed")
)

type CredentialsReader interface {
	FindCredentialsByEmail(ctx context.Context, email string) (*readstore.CredentialsRow, error)
}

type RegisterRequest struct {
	Email    string
	Password string
	Role     string
	Nickname string
}

type AuthUseCase interface {
	Register(ctx context.Context, req RegisterRequest) (*queries.AuthorizedUserView, error)
	Login(ctx context.Context, credentials user.Credentials) (string, *queries.AuthorizedUserView, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*queries.AuthorizedUserView, error)
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type authUseCaseImpl struct {
	uow         shared.UnitOfWork
	credentials CredentialsReader
	userQueries queries.UserQueries
	jwtService  *jwt.Service
	clock       clock.Clock
}

func NewAuthUseCase(
	uow shared.UnitOfWork,
	credentials CredentialsReader,
	userQueries queries.UserQueries,
	jwtService *jwt.Service,
	clk clock.Clock,
) AuthUseCase {
	return &authUseCaseImpl{
		uow:         uow,
		credentials: credentials,
		userQueries: userQueries,
		jwtService:  jwtService,
		clock:       clk,
	}
}

func (a *authUseCaseImpl) Register(ctx context.Context, req RegisterRequest) (*queries.AuthorizedUserView, error) {
	creds, err := user.NewCredentials(req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(req.Role)
	if err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(creds.Password().Value())
	if err != nil {
		return nil, err
	}

	// Chefs get a redeemable binding code at signup.
	bindingCode := ""
	if role == user.RoleChef {
		bindingCode, err = newBindingCode()
		if err != nil {
			return nil, err
		}
	}

	u := user.NewUser(creds.Email(), hash, role, req.Nickname, bindingCode, a.clock.Now())

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, derr := tx.Users().Create(ctx, tx.DB(), u)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrEmailTaken
			}
			return derr
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return a.userQueries.GetByID(ctx, u.ID())
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials user.Credentials) (string, *queries.AuthorizedUserView, error) {
	row, err := a.credentials.FindCredentialsByEmail(ctx, credentials.Email().Value())
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(row.PasswordHash, credentials.Password().Value()); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(row.Role)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(row.ID, role)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	view, err := a.userQueries.GetByID(ctx, row.ID)
	if err != nil {
		return "", nil, ErrUserNotFound
	}

	return token, view, nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*queries.AuthorizedUserView, error) {
	view, err := a.userQueries.GetByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return view, nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	return claims.UserID, role, nil
}

func newBindingCode() (string, error) {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf[:]), nil
}
