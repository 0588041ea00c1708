//go:build unit || e2e

package builder

import (
	"gymbook/internal/domain/identity"
)

type UserBuilder struct {
	UID         string
	Email       string
	DisplayName string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		UID:         "user-123",
		Email:       "test@example.com",
		DisplayName: "Test User",
	}
}

func (u *UserBuilder) WithUID(uid string) *UserBuilder {
	u.UID = uid
	return u
}

func (u *UserBuilder) Build() *identity.User {
	return &identity.User{
		UID:         u.UID,
		Email:       &u.Email,
		DisplayName: &u.DisplayName,
	}
}
