package services

import (
	"context"

	"portfolio_backend/internal/apperrors"
	"portfolio_backend/internal/dto"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
)

// ContentService - публичный каталог портфолио и блога плюс админский CRUD.
type ContentService struct {
	portfolioRepo repositories.PortfolioRepository
	blogRepo      repositories.BlogRepository
}

func NewContentService(portfolioRepo repositories.PortfolioRepository, blogRepo repositories.BlogRepository) *ContentService {
	return &ContentService{portfolioRepo: portfolioRepo, blogRepo: blogRepo}
}

func (s *ContentService) ListPortfolio(ctx context.Context) ([]models.PortfolioItem, error) {
	items, err := s.portfolioRepo.FindAll()
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return items, nil
}

func (s *ContentService) CreatePortfolioItem(ctx context.Context, req *dto.PortfolioItemRequest) (*models.PortfolioItem, error) {
	item := &models.PortfolioItem{
		Title:        req.Title,
		Category:     req.Category,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		Technologies: req.Technologies,
		DemoLink:     req.DemoLink,
		GithubLink:   req.GithubLink,
		SortOrder:    req.SortOrder,
	}
	if err := s.portfolioRepo.Create(item); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "portfolio item created", "item_id", item.ID)
	return item, nil
}

func (s *ContentService) UpdatePortfolioItem(ctx context.Context, id uint, req *dto.PortfolioItemRequest) error {
	item := &models.PortfolioItem{
		ID:           id,
		Title:        req.Title,
		Category:     req.Category,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		Technologies: req.Technologies,
		DemoLink:     req.DemoLink,
		GithubLink:   req.GithubLink,
		SortOrder:    req.SortOrder,
	}
	if err := s.portfolioRepo.Update(item); err != nil {
		if apperrors.Is(err, repositories.ErrItemNotFound) {
			return apperrors.ErrItemNotFound
		}
		return apperrors.DatabaseError(err)
	}
	return nil
}

func (s *ContentService) DeletePortfolioItem(ctx context.Context, id uint) error {
	if err := s.portfolioRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrItemNotFound) {
			return apperrors.ErrItemNotFound
		}
		return apperrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "portfolio item deleted", "item_id", id)
	return nil
}

func (s *ContentService) ListBlogPosts(ctx context.Context) ([]models.BlogPost, error) {
	posts, err := s.blogRepo.FindAll()
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return posts, nil
}

func (s *ContentService) GetBlogPost(ctx context.Context, id uint) (*models.BlogPost, error) {
	post, err := s.blogRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPostNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}
	return post, nil
}

func (s *ContentService) CreateBlogPost(ctx context.Context, req *dto.BlogPostRequest) (*models.BlogPost, error) {
	post := &models.BlogPost{
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Category: req.Category,
		ReadTime: req.ReadTime,
	}
	if err := s.blogRepo.Create(post); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "blog post created", "post_id", post.ID)
	return post, nil
}

func (s *ContentService) UpdateBlogPost(ctx context.Context, id uint, req *dto.BlogPostRequest) error {
	post := &models.BlogPost{
		ID:       id,
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Category: req.Category,
		ReadTime: req.ReadTime,
	}
	if err := s.blogRepo.Update(post); err != nil {
		if apperrors.Is(err, repositories.ErrPostNotFound) {
			return apperrors.ErrPostNotFound
		}
		return apperrors.DatabaseError(err)
	}
	return nil
}

func (s *ContentService) DeleteBlogPost(ctx context.Context, id uint) error {
	if err := s.blogRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrPostNotFound) {
			return apperrors.ErrPostNotFound
		}
		return apperrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "blog post deleted", "post_id", id)
	return nil
}
