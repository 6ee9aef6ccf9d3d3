package auth

type (
	SignupRequest struct {
		Username        string `form:"username"`
		Email           string `form:"email"`
		Password        string `form:"password"`
		ConfirmPassword string `form:"confirmPassword"`
	}
	LoginRequest struct {
		Username string `form:"username"`
		Password string `form:"password"`
	}
)
