package models

// SignupRequest is the JSON body of POST /signup.
type SignupRequest struct {
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	FullName *string `json:"full_name,omitempty"`
}

// LoginRequest carries the OAuth2 password form fields of POST /login.
type LoginRequest struct {
	Username  string
	Password  string
	GrantType string
}
