//go:build unit || e2e

package builder

import (
	"time"

	"chefbook/internal/domain/user"
	"chefbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID          uuid.UUID
	Email       string
	Password    string
	Role        user.Role
	Nickname    string
	BindingCode string
	CreatedAt   time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:        uuid.New(),
		Email:     "foodie@example.com",
		Password:  "password123",
		Role:      user.RoleFoodie,
		Nickname:  "hungry foodie",
		CreatedAt: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *UserBuilder) AsChef() *UserBuilder {
	b.Email = "chef@example.com"
	b.Role = user.RoleChef
	b.Nickname = "chef wang"
	b.BindingCode = "a1b2c3d4"
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.Email = email
	return b
}

func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.Password = password
	return b
}

func (b *UserBuilder) BuildCredentials() (user.Credentials, error) {
	return user.NewCredentials(b.Email, b.Password)
}

func (b *UserBuilder) BuildView() *queries.AuthorizedUserView {
	view := &queries.AuthorizedUserView{
		ID:        b.ID,
		Email:     b.Email,
		Role:      string(b.Role),
		Nickname:  b.Nickname,
		CreatedAt: b.CreatedAt,
	}
	if b.BindingCode != "" {
		code := b.BindingCode
		view.BindingCode = &code
	}
	return view
}
