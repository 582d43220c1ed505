package response_models

type AccountLoginResponse struct {
	Token     string `json:"token"`
	Role      string `json:"role"`
	Username  string `json:"username"`
	ExpiresIn int64  `json:"expires_in"`
}

type AccountResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}
