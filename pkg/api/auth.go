package api

// LoginRequest is the credentials payload for POST /api/v1/auth/login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse carries the issued access token. The user id and expiry
// are claims inside the JWT itself.
type TokenResponse struct {
	AccessToken string `json:"access_token"` // JWT access token
	TokenType   string `json:"token_type"`   // always "Bearer"
	ExpiresIn   int64  `json:"expires_in"`   // access token lifetime in seconds
}
