package responses

type RegisterPatient struct {
	UserID string `json:"user_id"`
}

type LoginUser struct {
	Token string `json:"token"`
}

type WhoAmI struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}
