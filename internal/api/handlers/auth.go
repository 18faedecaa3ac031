package handlers

import (
	"io"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"

	"github.com/mahamudulhasan-me/bristo-boss-server/internal/httperr"
	"github.com/mahamudulhasan-me/bristo-boss-server/internal/token"
)

// AuthHandler issues session tokens.
type AuthHandler struct {
	tokens *token.Service
}

func NewAuthHandler(tokens *token.Service) *AuthHandler {
	return &AuthHandler{tokens: tokens}
}

// IssueToken signs whatever claims payload the client sends. The shape is
// not validated; clients conventionally send {uid}.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		panic(httperr.Internal(err))
	}

	var claims map[string]interface{}
	if err := json.Unmarshal(body, &claims); err != nil {
		c.JSON(400, gin.H{"error": true, "message": "invalid claims payload"})
		return
	}

	tok, err := h.tokens.Issue(claims)
	if err != nil {
		panic(httperr.Internal(err))
	}

	c.JSON(200, gin.H{"token": tok})
}
