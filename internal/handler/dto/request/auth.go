package request

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// GoogleLoginRequest carries the ID token the client obtained from its
// Google sign-in flow.
type GoogleLoginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}
