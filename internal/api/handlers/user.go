package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/mahamudulhasan-me/bristo-boss-server/internal/guard"
	"github.com/mahamudulhasan-me/bristo-boss-server/internal/httperr"
	"github.com/mahamudulhasan-me/bristo-boss-server/internal/model"
	"github.com/mahamudulhasan-me/bristo-boss-server/internal/store"
)

// UserHandler serves the users collection.
type UserHandler struct {
	users store.UserStore
}

func NewUserHandler(users store.UserStore) *UserHandler {
	return &UserHandler{users: users}
}

// List returns every user document. Admin only.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.All(c.Request.Context())
	if err != nil {
		panic(httperr.Internal(err))
	}
	if users == nil {
		users = []model.User{}
	}
	c.JSON(200, users)
}

// Create stores a user on first sign-in. Idempotent by email: if a document
// with the same email exists, nothing is inserted.
func (h *UserHandler) Create(c *gin.Context) {
	var user model.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(400, gin.H{"error": true, "message": "invalid user payload"})
		return
	}

	existing, err := h.users.FindByEmail(c.Request.Context(), user.Email)
	if err != nil {
		panic(httperr.Internal(err))
	}
	if existing != nil {
		c.JSON(200, gin.H{"message": "User already exists"})
		return
	}

	id, err := h.users.Insert(c.Request.Context(), user)
	if err != nil {
		panic(httperr.Internal(err))
	}
	c.JSON(200, gin.H{"insertedId": id})
}

// Promote sets role=admin for the given document id.
func (h *UserHandler) Promote(c *gin.Context) {
	n, err := h.users.SetRole(c.Request.Context(), c.Param("id"), model.RoleAdmin)
	if err != nil {
		panic(httperr.Internal(err))
	}
	c.JSON(200, gin.H{"modifiedCount": n})
}

// AdminStatus reports whether the requested identity holds the admin role.
// A caller asking about an identity other than its own learns nothing:
// the response is {admin:false} and no lookup happens.
func (h *UserHandler) AdminStatus(c *gin.Context) {
	uid := c.Param("uid")
	if uid != guard.SubjectUID(c) {
		c.JSON(200, gin.H{"admin": false})
		return
	}

	user, err := h.users.FindByUID(c.Request.Context(), uid)
	if err != nil {
		panic(httperr.Internal(err))
	}
	c.JSON(200, gin.H{"admin": user != nil && user.Role == model.RoleAdmin})
}

// Delete removes a user by document id. Unknown ids report zero deleted.
func (h *UserHandler) Delete(c *gin.Context) {
	n, err := h.users.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		panic(httperr.Internal(err))
	}
	c.JSON(200, gin.H{"deletedCount": n})
}
