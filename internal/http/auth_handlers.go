package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"webapp-auth-backend/internal/common/middleware"
	"webapp-auth-backend/internal/initdata"
	"webapp-auth-backend/internal/service"
)

// AuthHandler exposes init-data validation over HTTP.
type AuthHandler struct {
	service *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.GET("/validate", h.validate)
	}

	protected := router.Group("/auth")
	protected.Use(middleware.InitDataAuth(h.service))
	{
		protected.GET("/me", h.getMe)
	}
}

// @Summary Validate init data
// @Description Validates the signed init data from the Authorization header and returns the decoded payload.
// @Tags auth
// @Produce json
// @Security TelegramInitData
// @Success 200 {object} InitDataResponse "Validated payload"
// @Failure 400 {object} ErrorResponse "Malformed init data"
// @Failure 401 {object} ErrorResponse "Missing or invalid init data"
// @Router /auth/validate [get]
func (h *AuthHandler) validate(c *gin.Context) {
	raw := c.GetHeader("Authorization")
	if raw == "" {
		raw = c.GetHeader("X-Telegram-Init-Data")
	}
	if raw == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "init data required"})
		return
	}

	data, err := h.service.Authenticate(c.Request.Context(), raw)
	if err != nil {
		c.AbortWithStatusJSON(middleware.StatusForError(err), ErrorResponse{Error: "invalid init data"})
		return
	}

	c.JSON(http.StatusOK, InitDataResponse{Message: data})
}

// @Summary Get current user
// @Description Returns the Telegram user embedded in the verified init data.
// @Tags auth
// @Produce json
// @Security TelegramInitData
// @Success 200 {object} initdata.User "Verified user"
// @Failure 401 {object} ErrorResponse "Missing or invalid init data"
// @Router /auth/me [get]
func (h *AuthHandler) getMe(c *gin.Context) {
	user, exists := c.Get(middleware.UserCtxKey)
	if !exists {
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized: Telegram Init Data required"})
		return
	}

	telegramUser, ok := user.(initdata.User)
	if !ok {
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "invalid user data in context"})
		return
	}

	c.JSON(http.StatusOK, telegramUser)
}
