package models

import "time"

// PortfolioItem - работа в публичном портфолио.
type PortfolioItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"size:200;not null" json:"title"`
	Category     string    `gorm:"size:50;not null" json:"category"`
	Description  string    `gorm:"type:text;not null" json:"description"`
	ImageURL     string    `gorm:"size:500" json:"image_url"`
	Technologies string    `gorm:"size:200" json:"technologies"`
	DemoLink     string    `gorm:"size:500" json:"demo_link"`
	GithubLink   string    `gorm:"size:500" json:"github_link"`
	SortOrder    int       `gorm:"column:sort_order;default:0" json:"sort_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (PortfolioItem) TableName() string {
	return "portfolio_items"
}

// BlogPost - запись блога.
type BlogPost struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Excerpt   string    `gorm:"type:text;not null" json:"excerpt"`
	Content   string    `gorm:"type:text" json:"content"`
	Category  string    `gorm:"size:50" json:"category"`
	ReadTime  string    `gorm:"size:10" json:"read_time"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (BlogPost) TableName() string {
	return "blog_posts"
}
