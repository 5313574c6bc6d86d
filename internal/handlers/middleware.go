package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	authorizationHeader = "Authorization"
	userCtx             = "userId"
)

var (
	errMissingAuthHeader = errors.New("missing Authorization header")
	errBadAuthHeader     = errors.New("invalid Authorization header format")
)

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", errMissingAuthHeader
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
		return "", errBadAuthHeader
	}
	return strings.TrimSpace(parts[1]), nil
}

func (h *Handler) userIdMiddleware(c *gin.Context) {
	token, err := bearerToken(c.GetHeader(authorizationHeader))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	userId, err := h.services.ParseToken(token)
	if err != nil {
		h.log.Debugw("auth_token_rejected", "path", c.FullPath(), "err", err)
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	c.Set(userCtx, userId)
	c.Next()
}
