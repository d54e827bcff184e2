package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nutricare-service/internal/pkg/constvars"
)

func TestSessionIsAdmin(t *testing.T) {
	admin := &Session{Role: constvars.RoleAdmin}
	assert.True(t, admin.IsAdmin())

	patient := &Session{Role: constvars.RolePatient}
	assert.False(t, patient.IsAdmin())

	empty := &Session{}
	assert.False(t, empty.IsAdmin())
}
