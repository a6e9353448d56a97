package rest

import (
	"net/http"
	"time"

	"github.com/adaptivekitchen/studio-site/api"
	"github.com/adaptivekitchen/studio-site/marketing"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type SubscribeHandler struct {
	sink marketing.SignupSink
}

func NewSubscribeHandler(sink marketing.SignupSink) *SubscribeHandler {
	return &SubscribeHandler{sink: sink}
}

func (h *SubscribeHandler) Subscribe(c *gin.Context) {
	var req api.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil || !marketing.ValidEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid email is required"})
		return
	}

	signup := marketing.Signup{
		Email:     req.Email,
		CreatedAt: time.Now().UTC(),
	}

	if err := h.sink.Record(c.Request.Context(), signup); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("Failed to record signup")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Successfully subscribed",
		"email":   req.Email,
	})
}
