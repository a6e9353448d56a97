package rest

import (
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/adaptivekitchen/studio-site/blog/domain"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type UploadHandler struct {
	images     domain.ImageStore
	maxBytes   int64
	publicPath string
}

func NewUploadHandler(images domain.ImageStore, maxBytes int64) *UploadHandler {
	return &UploadHandler{
		images:     images,
		maxBytes:   maxBytes,
		publicPath: "/uploads",
	}
}

func (h *UploadHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}
	defer file.Close()

	if header.Size > h.maxBytes {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("File size must be less than %dMB", h.maxBytes>>20),
		})
		return
	}

	// header.Size comes from the client; re-check while reading
	content, err := io.ReadAll(io.LimitReader(file, h.maxBytes+1))
	if err != nil {
		log.Error().Err(err).Str("filename", header.Filename).Msg("Failed to read upload")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		return
	}
	if int64(len(content)) > h.maxBytes {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("File size must be less than %dMB", h.maxBytes>>20),
		})
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(content)
	}
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only image files are allowed"})
		return
	}

	name, err := h.images.Save(c.Request.Context(), &domain.Image{
		Name:        header.Filename,
		ContentType: contentType,
		Content:     content,
	})
	if err != nil {
		log.Error().Err(err).Str("filename", header.Filename).Msg("Failed to store upload")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": path.Join(h.publicPath, name)})
}
