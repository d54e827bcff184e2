package utils

import (
	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.New().String()
}

func GenerateSessionID() string {
	return uuid.New().String()
}

// GenerateObjectKey builds a storage object key for an uploaded content file.
func GenerateObjectKey(fileName string) string {
	return uuid.New().String() + "/" + fileName
}
