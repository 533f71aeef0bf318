package dto

type CaptchaResponse struct {
	CaptchaID    string `json:"captcha_id"`
	CaptchaImage string `json:"captcha_image"`
}

type LoginRequest struct {
	Username    string `json:"username" validate:"required,max=256"`
	Password    string `json:"password" validate:"required,max=256"`
	CaptchaID   string `json:"captcha_id" validate:"required,max=128"`
	CaptchaText string `json:"captcha_text" validate:"required,max=16"`
}

type LoginResponse struct {
	Success     bool    `json:"success"`
	Message     string  `json:"message"`
	AccessToken *string `json:"access_token,omitempty"`
	TokenType   *string `json:"token_type,omitempty"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
