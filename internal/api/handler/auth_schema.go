package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the confirmation envelope for write operations that
// return no resource body.
type messageResponse struct {
	Message string `json:"message"`
}

type registerRequest struct {
	Username        string `json:"username"         validate:"required,min=3,max=50"`
	Password        string `json:"password"         validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
	Role            string `json:"role"            validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}
