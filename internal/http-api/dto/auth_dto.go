package dto

// Form payloads for the authentication pages

// SignupForm: POST /auth/signup
type SignupForm struct {
	Username  string `form:"username"`
	Password  string `form:"password"`
	AdminCode string `form:"admincode"`
}

// LoginForm: POST /auth/login
type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}
