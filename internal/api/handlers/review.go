package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/mahamudulhasan-me/bristo-boss-server/internal/httperr"
	"github.com/mahamudulhasan-me/bristo-boss-server/internal/model"
	"github.com/mahamudulhasan-me/bristo-boss-server/internal/store"
)

// ReviewHandler serves the read-only review collection.
type ReviewHandler struct {
	reviews store.ReviewStore
}

func NewReviewHandler(reviews store.ReviewStore) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.reviews.All(c.Request.Context())
	if err != nil {
		panic(httperr.Internal(err))
	}
	if reviews == nil {
		reviews = []model.Review{}
	}
	c.JSON(200, reviews)
}
