package models

import "time"

// ContactSubmission - заявка из публичной контактной формы.
// Создается только через intake, статус меняется только через админ-панель.
type ContactSubmission struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	Name        string           `gorm:"size:100;not null" json:"name"`
	Email       string           `gorm:"size:120;not null" json:"email"`
	Phone       *string          `gorm:"size:20" json:"phone,omitempty"`
	Company     *string          `gorm:"size:100" json:"company,omitempty"`
	Budget      *string          `gorm:"size:50" json:"budget,omitempty"`
	ProjectType *string          `gorm:"size:50" json:"project_type,omitempty"`
	Subject     string           `gorm:"size:200;not null" json:"subject"`
	Message     string           `gorm:"type:text;not null" json:"message"`
	Status      SubmissionStatus `gorm:"type:varchar(20);default:'unread';index" json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

func (ContactSubmission) TableName() string {
	return "contact_submissions"
}
