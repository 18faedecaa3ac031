package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/mahamudulhasan-me/bristo-boss-server/internal/guard"
	"github.com/mahamudulhasan-me/bristo-boss-server/internal/httperr"
	"github.com/mahamudulhasan-me/bristo-boss-server/internal/model"
	"github.com/mahamudulhasan-me/bristo-boss-server/internal/store"
)

// CartHandler serves the carts collection.
type CartHandler struct {
	carts store.CartStore
}

func NewCartHandler(carts store.CartStore) *CartHandler {
	return &CartHandler{carts: carts}
}

func (h *CartHandler) Create(c *gin.Context) {
	var item model.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(400, gin.H{"error": true, "message": "invalid cart payload"})
		return
	}

	id, err := h.carts.Insert(c.Request.Context(), item)
	if err != nil {
		panic(httperr.Internal(err))
	}
	c.JSON(200, gin.H{"insertedId": id})
}

// List returns the cart items for the uid query parameter. No uid yields an
// empty list; a uid that is not the caller's own identity is forbidden.
func (h *CartHandler) List(c *gin.Context) {
	uid := c.Query("uid")
	if uid == "" {
		c.JSON(200, []model.CartItem{})
		return
	}
	if uid != guard.SubjectUID(c) {
		c.AbortWithStatusJSON(403, gin.H{"error": true, "message": "forbidden access"})
		return
	}

	items, err := h.carts.FindByOwner(c.Request.Context(), uid)
	if err != nil {
		panic(httperr.Internal(err))
	}
	if items == nil {
		items = []model.CartItem{}
	}
	c.JSON(200, items)
}

func (h *CartHandler) Delete(c *gin.Context) {
	n, err := h.carts.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		panic(httperr.Internal(err))
	}
	c.JSON(200, gin.H{"deletedCount": n})
}
