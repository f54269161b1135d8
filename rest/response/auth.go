package response

// AuthResponse is what the authentication endpoints return. The token is the
// session credential; the rest is convenience data the credential may not
// carry itself.
type AuthResponse struct {
	Token     string `json:"token"`
	UserID    string `json:"userId"`
	Email     string `json:"email"`
	Username  string `json:"username,omitempty"`
	ExpiresAt int64  `json:"expiresAt,omitempty"`
}
