package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/mahamudulhasan-me/bristo-boss-server/internal/httperr"
	"github.com/mahamudulhasan-me/bristo-boss-server/internal/model"
	"github.com/mahamudulhasan-me/bristo-boss-server/internal/store"
)

// MenuHandler serves the menu collection. Reads are public; writes are
// admin only (guarded in the route table).
type MenuHandler struct {
	menu store.MenuStore
}

func NewMenuHandler(menu store.MenuStore) *MenuHandler {
	return &MenuHandler{menu: menu}
}

func (h *MenuHandler) List(c *gin.Context) {
	items, err := h.menu.All(c.Request.Context())
	if err != nil {
		panic(httperr.Internal(err))
	}
	if items == nil {
		items = []model.MenuItem{}
	}
	c.JSON(200, items)
}

func (h *MenuHandler) Create(c *gin.Context) {
	var item model.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(400, gin.H{"error": true, "message": "invalid menu payload"})
		return
	}

	id, err := h.menu.Insert(c.Request.Context(), item)
	if err != nil {
		panic(httperr.Internal(err))
	}
	c.JSON(200, gin.H{"insertedId": id})
}

func (h *MenuHandler) Delete(c *gin.Context) {
	n, err := h.menu.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		panic(httperr.Internal(err))
	}
	c.JSON(200, gin.H{"deletedCount": n})
}
