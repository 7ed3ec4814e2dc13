package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	valid := []string{
		"jane@example.com",
		"first.last@sub.example.co",
		"user_name-1@example.io",
	}
	for _, email := range valid {
		assert.True(t, ValidEmail(email), email)
	}

	invalid := []string{
		"",
		"plain",
		"missing@tld",
		"one-letter@example.c",
		"@example.com",
		"spaced name@example.com",
	}
	for _, email := range invalid {
		assert.False(t, ValidEmail(email), email)
	}
}
