package response

import "gymbook/internal/domain/identity"

type UserResponse struct {
	UID         string  `json:"uid"`
	Email       *string `json:"email,omitempty"`
	DisplayName *string `json:"displayName,omitempty"`
	PhotoURL    *string `json:"photoUrl,omitempty"`
}

func FromUser(u *identity.User) UserResponse {
	return UserResponse{
		UID:         u.UID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		PhotoURL:    u.PhotoURL,
	}
}

type AuthResponse struct {
	User UserResponse `json:"user"`
}
