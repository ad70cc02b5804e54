package auth

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResult struct {
	Role  string `json:"role"`
	Token string `json:"token"`
}
