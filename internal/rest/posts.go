package rest

import (
	"errors"
	"net/http"

	"github.com/adaptivekitchen/studio-site/api"
	"github.com/adaptivekitchen/studio-site/blog/application"
	"github.com/adaptivekitchen/studio-site/blog/domain"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type PostsHandler struct {
	service *application.PostService
}

func NewPostsHandler(service *application.PostService) *PostsHandler {
	return &PostsHandler{service: service}
}

func (h *PostsHandler) List(c *gin.Context) {
	posts, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list posts")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch blog posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (h *PostsHandler) Get(c *gin.Context) {
	post, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog post not found"})
		return
	}
	if err != nil {
		log.Error().Err(err).Str("id", c.Param("id")).Msg("Failed to fetch post")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch blog post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

func (h *PostsHandler) Create(c *gin.Context) {
	var payload api.PostPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.service.Create(c.Request.Context(), toCreateInput(payload))
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error(), "fields": ve.Fields})
			return
		}
		log.Error().Err(err).Msg("Failed to create post")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create blog post"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"post":    post,
		"message": "Blog post created successfully",
	})
}

func (h *PostsHandler) Update(c *gin.Context) {
	var payload api.PostPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.service.Update(c.Request.Context(), c.Param("id"), toUpdateInput(payload))
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog post not found"})
		return
	}
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error(), "fields": ve.Fields})
			return
		}
		log.Error().Err(err).Str("id", c.Param("id")).Msg("Failed to update post")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update blog post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"post":    post,
		"message": "Blog post updated successfully",
	})
}

func (h *PostsHandler) Delete(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog post not found"})
		return
	}
	if err != nil {
		log.Error().Err(err).Str("id", c.Param("id")).Msg("Failed to delete post")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete blog post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Blog post deleted successfully",
	})
}

func toCreateInput(p api.PostPayload) application.CreateInput {
	in := application.CreateInput{
		ContentFormat: p.ContentFormat,
	}
	if p.Title != nil {
		in.Title = *p.Title
	}
	if p.Excerpt != nil {
		in.Excerpt = *p.Excerpt
	}
	if p.Content != nil {
		in.Content = *p.Content
	}
	if p.Category != nil {
		in.Category = *p.Category
	}
	if p.ReadTime != nil {
		in.ReadTime = *p.ReadTime
	}
	if p.Author != nil {
		in.Author = *p.Author
	}
	if p.Tags != nil {
		in.Tags = *p.Tags
	}
	if p.Image != nil {
		in.Image = *p.Image
	}
	if p.ContentImages != nil {
		in.ContentImages = *p.ContentImages
	}
	if p.Date != nil {
		in.Date = *p.Date
	}
	if p.Slug != nil {
		in.Slug = *p.Slug
	}
	return in
}

func toUpdateInput(p api.PostPayload) application.UpdateInput {
	return application.UpdateInput{
		Title:         p.Title,
		Excerpt:       p.Excerpt,
		Content:       p.Content,
		ContentFormat: p.ContentFormat,
		Category:      p.Category,
		ReadTime:      p.ReadTime,
		Author:        p.Author,
		Tags:          p.Tags,
		Image:         p.Image,
		ContentImages: p.ContentImages,
		Date:          p.Date,
		Slug:          p.Slug,
	}
}
