package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReply_KeywordMatching(t *testing.T) {
	service := NewChatService()

	tests := []struct {
		name     string
		message  string
		contains string
	}{
		{"greeting hi", "hi there", "Haseeb's assistant"},
		{"greeting hello", "HELLO!", "Asalamu alikum"},
		{"skills question", "what skills does he have?", "specializes in Python Development"},
		{"pricing question", "what is your price range", "$25,000+"},
		{"github link", "show me the github", "github.com/FalconCode786"},
		{"case insensitive", "PYTHON experience?", "Hugging Face Transformers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := service.Reply(context.Background(), tt.message)
			assert.Contains(t, reply, tt.contains)
		})
	}
}

func TestReply_FirstMatchWins(t *testing.T) {
	service := NewChatService()

	// Сообщение содержит и "contact", и "hi" (внутри "hire"), и "email".
	// Побеждает правило, стоящее раньше в списке.
	reply := service.Reply(context.Background(), "contact email hire")
	assert.Contains(t, reply, "use the contact form below")
}

func TestReply_DefaultResponse(t *testing.T) {
	service := NewChatService()

	for _, message := range []string{"", "qwerty", "weather tomorrow"} {
		reply := service.Reply(context.Background(), message)
		assert.Contains(t, reply, "I'm here to help")
	}
}

func TestReply_NeverEmpty(t *testing.T) {
	service := NewChatService()

	for _, rule := range service.rules {
		reply := service.Reply(context.Background(), rule.keyword)
		assert.NotEmpty(t, reply)
		assert.False(t, strings.HasPrefix(reply, " "))
	}
}
