package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// withUser stands in for the auth middleware
func withUser(id uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", id)
		c.Next()
	}
}
