package auth

// RefreshRequest carries the refresh token when the client does not use
// the refresh_token cookie.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"omitempty,max=4096"`
}

// TokenResponse is a freshly minted token pair. Refresh tokens rotate on
// every use.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}
