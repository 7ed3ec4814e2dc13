package dto

// PortfolioItemRequest - создание/обновление работы в портфолио
type PortfolioItemRequest struct {
	Title        string `json:"title" validate:"required,max=200"`
	Category     string `json:"category" validate:"required,max=50"`
	Description  string `json:"description" validate:"required"`
	ImageURL     string `json:"image_url" validate:"omitempty,url,max=500"`
	Technologies string `json:"technologies" validate:"max=200"`
	DemoLink     string `json:"demo_link" validate:"omitempty,url,max=500"`
	GithubLink   string `json:"github_link" validate:"omitempty,url,max=500"`
	SortOrder    int    `json:"sort_order"`
}

// BlogPostRequest - создание/обновление записи блога
type BlogPostRequest struct {
	Title    string `json:"title" validate:"required,max=200"`
	Excerpt  string `json:"excerpt" validate:"required"`
	Content  string `json:"content"`
	Category string `json:"category" validate:"max=50"`
	ReadTime string `json:"read_time" validate:"max=10"`
}
