package responses

import "nutricare-service/internal/app/models"

type ContentFileUpload struct {
	File *models.ContentFile `json:"file"`
}

type ContentFileDownload struct {
	URL       string `json:"url"`
	ExpiresIn int64  `json:"expires_in_seconds"`
}
