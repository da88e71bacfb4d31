package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
	nickname     string
	// bindingCode is set for chefs only; foodies redeem it to bind.
	bindingCode string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewUser(email Email, passwordHash string, role Role, nickname, bindingCode string, now time.Time) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		nickname:     nickname,
		bindingCode:  bindingCode,
		createdAt:    now,
		updatedAt:    now,
	}
}

func ReconstructUser(
	id uuid.UUID,
	email Email,
	passwordHash string,
	role Role,
	nickname string,
	bindingCode string,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		nickname:     nickname,
		bindingCode:  bindingCode,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) Nickname() string     { return u.nickname }
func (u *User) BindingCode() string  { return u.bindingCode }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

func (u *User) IsChef() bool   { return u.role == RoleChef }
func (u *User) IsFoodie() bool { return u.role == RoleFoodie }
