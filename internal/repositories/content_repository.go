package repositories

import (
	"errors"
	"time"

	"portfolio_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrItemNotFound = errors.New("portfolio item not found")
	ErrPostNotFound = errors.New("blog post not found")
)

type PortfolioRepository interface {
	Create(item *models.PortfolioItem) error
	FindByID(id uint) (*models.PortfolioItem, error)
	FindAll() ([]models.PortfolioItem, error)
	Update(item *models.PortfolioItem) error
	Delete(id uint) error
}

type PortfolioRepositoryImpl struct {
	db *gorm.DB
}

func NewPortfolioRepository(db *gorm.DB) PortfolioRepository {
	return &PortfolioRepositoryImpl{db: db}
}

func (r *PortfolioRepositoryImpl) Create(item *models.PortfolioItem) error {
	return r.db.Create(item).Error
}

func (r *PortfolioRepositoryImpl) FindByID(id uint) (*models.PortfolioItem, error) {
	var item models.PortfolioItem
	err := r.db.First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *PortfolioRepositoryImpl) FindAll() ([]models.PortfolioItem, error) {
	var items []models.PortfolioItem
	err := r.db.Order("sort_order ASC, id ASC").Find(&items).Error
	return items, err
}

func (r *PortfolioRepositoryImpl) Update(item *models.PortfolioItem) error {
	result := r.db.Model(item).Updates(map[string]interface{}{
		"title":        item.Title,
		"category":     item.Category,
		"description":  item.Description,
		"image_url":    item.ImageURL,
		"technologies": item.Technologies,
		"demo_link":    item.DemoLink,
		"github_link":  item.GithubLink,
		"sort_order":   item.SortOrder,
		"updated_at":   time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *PortfolioRepositoryImpl) Delete(id uint) error {
	result := r.db.Where("id = ?", id).Delete(&models.PortfolioItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

type BlogRepository interface {
	Create(post *models.BlogPost) error
	FindByID(id uint) (*models.BlogPost, error)
	FindAll() ([]models.BlogPost, error)
	Update(post *models.BlogPost) error
	Delete(id uint) error
}

type BlogRepositoryImpl struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &BlogRepositoryImpl{db: db}
}

func (r *BlogRepositoryImpl) Create(post *models.BlogPost) error {
	return r.db.Create(post).Error
}

func (r *BlogRepositoryImpl) FindByID(id uint) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *BlogRepositoryImpl) FindAll() ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := r.db.Order("created_at DESC").Find(&posts).Error
	return posts, err
}

func (r *BlogRepositoryImpl) Update(post *models.BlogPost) error {
	result := r.db.Model(post).Updates(map[string]interface{}{
		"title":      post.Title,
		"excerpt":    post.Excerpt,
		"content":    post.Content,
		"category":   post.Category,
		"read_time":  post.ReadTime,
		"updated_at": time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}

func (r *BlogRepositoryImpl) Delete(id uint) error {
	result := r.db.Where("id = ?", id).Delete(&models.BlogPost{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}
