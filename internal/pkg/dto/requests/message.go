package requests

type CreateDoctorMessage struct {
	Content  string `json:"content" validate:"required"`
	AudioURL string `json:"audio_url,omitempty" validate:"omitempty,url"`
	IsActive bool   `json:"is_active"`
}

type UpdateDoctorMessage struct {
	Content   string `json:"content" validate:"required"`
	AudioURL  string `json:"audio_url,omitempty" validate:"omitempty,url"`
	IsActive  bool   `json:"is_active"`
	MessageID string
}
