package dto

// LoginRequest is the POST /api/login payload. Field casing is part of the
// upstream contract.
type LoginRequest struct {
	Username string `json:"Username"`
	Password string `json:"Password"`
}

// LoginResponse is the successful login payload.
type LoginResponse struct {
	AccessToken string `json:"AccessToken"`
	Code        string `json:"Code"`
	Message     string `json:"Message"`
	ExpireIn    string `json:"ExpireIn"`
}

// LoginError is the failed login payload.
type LoginError struct {
	Code    string `json:"Code"`
	Message string `json:"Message"`
}
