package models

// SignInRequest is the body of POST /api/auth/signin.
type SignInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// JwtResponse is returned on a successful sign-in.
type JwtResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	Type         string `json:"type"`
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
}

// TokenRefreshRequest is the body of POST /api/auth/refreshtoken.
type TokenRefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// TokenRefreshResponse carries a rotated token pair.
type TokenRefreshResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
}
