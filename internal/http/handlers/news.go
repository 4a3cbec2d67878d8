package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"legalease/internal/domain/models"
	"legalease/internal/http/middleware"
	"legalease/internal/repositories"
)

// GET /api/news
func GetNews(c *gin.Context) {
	items, err := (repositories.NewsRepository{}).List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GET /api/news/:id
func GetNewsByID(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	item, err := (repositories.NewsRepository{}).GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// POST /api/news (admin)
func CreateNews(c *gin.Context) {
	var input models.News
	if !BindJSONOrError(c, &input) {
		return
	}
	if strings.TrimSpace(input.Title) == "" {
		RespondError(c, http.StatusBadRequest, "title is required", nil)
		return
	}
	input.CreatedBy = middleware.GetUserID(c)

	repo := repositories.NewsRepository{}
	id, err := repo.Create(input)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to create news", err)
		return
	}
	item, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// PUT /api/news/:id (admin, full replace)
func ReplaceNews(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	var input models.News
	if !BindJSONOrError(c, &input) {
		return
	}
	if strings.TrimSpace(input.Title) == "" {
		RespondError(c, http.StatusBadRequest, "title is required", nil)
		return
	}

	repo := repositories.NewsRepository{}
	if err := repo.Replace(id, input); err != nil {
		RespondDomainError(c, err)
		return
	}
	item, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DELETE /api/news/:id (admin)
func DeleteNews(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	if err := (repositories.NewsRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "news deleted"})
}

// GET /api/cities
func GetCities(c *gin.Context) {
	cities, err := (repositories.NewsRepository{}).ListCities()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, cities)
}
