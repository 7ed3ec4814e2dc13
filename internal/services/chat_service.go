package services

import (
	"context"
	"strings"

	"portfolio_backend/internal/logger"
)

// ChatService - чат-бот на канированных ответах. Правила проверяются
// строго по порядку, выигрывает первое совпадение: если сообщение
// содержит два ключа, ответ определяет тот, что стоит выше.
type ChatService struct {
	rules           []chatRule
	defaultResponse string
}

type chatRule struct {
	keyword  string
	response string
}

func NewChatService() *ChatService {
	return &ChatService{
		rules: []chatRule{
			{"contact", "You can reach Muhammad at muhammadhaseeb.code@gmail.com or use the contact form below."},
			{"email", "Email: muhammadhaseeb.code@gmail.com"},
			{"location", "Muhammad is based in Rawalpindi, Pakistan, available for local and remote work."},
			{"pakistan", "Yes, Muhammad is based in Pakistan and works with clients globally!"},
			{"skills", "Muhammad specializes in Python Development (Flask, Regex, Hugging Face), Graphic Design (Photoshop, Figma), and Front-End (React, Vue)."},
			{"python", "Muhammad is experienced in Python, Flask, Regex pattern matching, Hugging Face Transformers, and web scraping."},
			{"regex", "Regex (Regular Expressions) is Muhammad's specialty for text processing, pattern matching, and data extraction in the Job Scraper and Plagiarism Checker projects."},
			{"hugging face", "The Notes Generator uses Hugging Face Transformers library for AI-powered text summarization and NLP tasks."},
			{"design", "He creates stunning designs using Adobe Photoshop, Figma, Illustrator, and XD."},
			{"frontend", "Expert in React, Vue.js, HTML/CSS, and TailwindCSS with modern responsive design."},
			{"hire", "Great! Use the contact form below or email directly. Muhammad is available for freelance and full-time opportunities."},
			{"price", "Budget ranges from less than $1,000 to $25,000+ depending on project scope. Contact for detailed quote!"},
			{"experience", "Muhammad has been coding since 2021, specializing in Python, Regex, and AI integration. Check the About timeline!"},
			{"job scraper", "CV Job Scraper uses Python and Regex to parse job listings and match them with candidate profiles. Live demo available!"},
			{"notes generator", "AI Notes Generator uses Hugging Face Transformers to create intelligent summaries from text and documents."},
			{"plagiarism", "Plagiarism Checker uses advanced regex patterns to detect text similarity and check for copied content."},
			{"hello", "Asalamu alikum! How can I help you learn about Muhammad Haseeb today?"},
			{"hi", "Hello! I'm Haseeb's assistant. Ask about his Python skills, AI projects, or how I can help you!"},
			{"github", "Check his code at https://github.com/FalconCode786"},
			{"linkedin", "Connect professionally at https://linkedin.com/in/muhammad-haseeb-980b16366/"},
			{"dribbble", "See design work at https://dribbble.com/mh324"},
		},
		defaultResponse: "I'm here to help! Ask about Muhammad's Python projects, AI tools, contact info, or services.",
	}
}

// Reply подбирает ответ на сообщение. Никогда не возвращает ошибку:
// на пустое или неузнанное сообщение уходит дефолтный ответ.
func (s *ChatService) Reply(ctx context.Context, message string) string {
	normalized := strings.ToLower(message)

	for _, rule := range s.rules {
		if strings.Contains(normalized, rule.keyword) {
			logger.CtxDebug(ctx, "chat keyword matched", "keyword", rule.keyword)
			return rule.response
		}
	}

	return s.defaultResponse
}
