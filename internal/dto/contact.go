package dto

// ContactRequest - payload публичной контактной формы.
// Website - honeypot: скрытое поле, живой пользователь его не заполняет.
// Никаких binding-тегов: intake сам решает, каких полей не хватает,
// и перечисляет их все разом в ответе.
type ContactRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
	Phone       string `json:"phone"`
	Company     string `json:"company"`
	Budget      string `json:"budget"`
	ProjectType string `json:"project_type"`
	Website     string `json:"website"`
}

type ContactResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	ID      uint   `json:"id"`
}
