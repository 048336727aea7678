package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"webapp-auth-backend/internal/initdata"
	"webapp-auth-backend/internal/service"
)

// Context keys for values stored by InitDataAuth.
const (
	InitDataCtxKey = "init_data"
	UserCtxKey     = "user"
)

// Headers and query parameter the init data may arrive in, checked in
// order. The B64 header carries the base64 transport form for clients
// that cannot put raw query-string characters in a header value.
const (
	initDataHeader    = "X-Telegram-Init-Data"
	initDataB64Header = "X-Telegram-Init-Data-B64"
	initDataQueryKey  = "init_data"
)

// InitDataAuth validates Telegram init data on every request and stores
// the verified payload in the gin context. Requests without init data
// are rejected with 401.
func InitDataAuth(svc *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := initDataFromRequest(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "malformed init data encoding"})
			return
		}
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Telegram Init Data required"})
			return
		}

		data, err := svc.Authenticate(c.Request.Context(), raw)
		if err != nil {
			c.AbortWithStatusJSON(StatusForError(err), gin.H{"error": "invalid init data"})
			return
		}

		c.Set(InitDataCtxKey, data)
		c.Set(UserCtxKey, data.User)
		c.Next()
	}
}

// initDataFromRequest pulls raw init data out of the request: dedicated
// header, base64 header, Authorization, then the query string.
func initDataFromRequest(c *gin.Context) (string, error) {
	if raw := c.GetHeader(initDataHeader); raw != "" {
		return raw, nil
	}
	if encoded := c.GetHeader(initDataB64Header); encoded != "" {
		return initdata.Decode(encoded)
	}
	if raw := c.GetHeader("Authorization"); raw != "" {
		return raw, nil
	}
	return c.Query(initDataQueryKey), nil
}

// StatusForError maps validation errors to HTTP status codes:
// authentication failures map to 401, structurally malformed payloads
// to 400.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, initdata.ErrInvalidData),
		errors.Is(err, initdata.ErrMissingSignature),
		errors.Is(err, service.ErrExpired):
		return http.StatusUnauthorized
	default:
		return http.StatusBadRequest
	}
}
