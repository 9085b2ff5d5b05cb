package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserClaims struct {
	UserID uuid.UUID `json:"sub"`
}

type contextKey string

const UserContextKey contextKey = "user"

func GetUser(c *gin.Context) *UserClaims {
	user, exists := c.Get(string(UserContextKey))
	if !exists {
		return nil
	}
	if userClaims, ok := user.(*UserClaims); ok {
		return userClaims
	}
	return nil
}
