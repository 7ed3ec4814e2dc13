package handlers

import (
	"net/http"

	"portfolio_backend/internal/dto"
	"portfolio_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	*BaseHandler
	contentService *services.ContentService
}

func NewContentHandler(base *BaseHandler, contentService *services.ContentService) *ContentHandler {
	return &ContentHandler{
		BaseHandler:    base,
		contentService: contentService,
	}
}

// RegisterRoutes: публичное чтение каталога и админский CRUD
func (h *ContentHandler) RegisterRoutes(api, apiAdmin *gin.RouterGroup) {
	api.GET("/portfolio", h.ListPortfolio)
	api.GET("/blog", h.ListBlogPosts)
	api.GET("/blog/:id", h.GetBlogPost)

	apiAdmin.POST("/portfolio", h.CreatePortfolioItem)
	apiAdmin.PUT("/portfolio/:id", h.UpdatePortfolioItem)
	apiAdmin.DELETE("/portfolio/:id", h.DeletePortfolioItem)

	apiAdmin.POST("/blog", h.CreateBlogPost)
	apiAdmin.PUT("/blog/:id", h.UpdateBlogPost)
	apiAdmin.DELETE("/blog/:id", h.DeleteBlogPost)
}

func (h *ContentHandler) ListPortfolio(c *gin.Context) {
	items, err := h.contentService.ListPortfolio(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ContentHandler) CreatePortfolioItem(c *gin.Context) {
	var req dto.PortfolioItemRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	item, err := h.contentService.CreatePortfolioItem(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *ContentHandler) UpdatePortfolioItem(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.PortfolioItemRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.contentService.UpdatePortfolioItem(c.Request.Context(), id, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *ContentHandler) DeletePortfolioItem(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.contentService.DeletePortfolioItem(c.Request.Context(), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *ContentHandler) ListBlogPosts(c *gin.Context) {
	posts, err := h.contentService.ListBlogPosts(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *ContentHandler) GetBlogPost(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	post, err := h.contentService.GetBlogPost(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *ContentHandler) CreateBlogPost(c *gin.Context) {
	var req dto.BlogPostRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	post, err := h.contentService.CreateBlogPost(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (h *ContentHandler) UpdateBlogPost(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.BlogPostRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.contentService.UpdateBlogPost(c.Request.Context(), id, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *ContentHandler) DeleteBlogPost(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.contentService.DeleteBlogPost(c.Request.Context(), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
