package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"manifest-server/internal/models"
	"manifest-server/internal/service"
)

// HeaderUserID - заголовок с непрозрачным идентификатором пользователя.
// Аутентификацию выполняет внешний коллаборатор, сюда приходит готовый id.
const HeaderUserID = "X-User-ID"

const anonymousUserID = "anonymous"

// APIError - стандартизированный ответ об ошибке.
type APIError struct {
	Message string `json:"message"`
}

// generateBoardRequest - тело POST /api/v1/visionboard.
type generateBoardRequest struct {
	Title        string     `json:"title" binding:"required"`
	Description  string     `json:"description"`
	WhyImportant string     `json:"whyImportant"`
	CategoryHint string     `json:"categoryHint"`
	Deadline     *time.Time `json:"deadline"`
	Milestones   []string   `json:"milestones"`
	Template     string     `json:"template"`
}

// BoardHandler обрабатывает HTTP-запросы генерации досок визуализации.
type BoardHandler struct {
	service *service.VisionBoardService
	logger  *zap.Logger
}

// NewBoardHandler создает новый BoardHandler.
func NewBoardHandler(s *service.VisionBoardService, logger *zap.Logger) *BoardHandler {
	return &BoardHandler{
		service: s,
		logger:  logger.Named("BoardHandler"),
	}
}

// RegisterRoutes регистрирует маршруты сервиса.
func (h *BoardHandler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	{
		api.POST("/visionboard", h.generateBoard)
		api.GET("/templates", h.listTemplates)
	}
}

// generateBoard запускает пайплайн генерации для одной мечты.
func (h *BoardHandler) generateBoard(c *gin.Context) {
	var req generateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid board generation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, APIError{Message: "invalid request body: title is required"})
		return
	}

	userID := c.GetHeader(HeaderUserID)
	if userID == "" {
		// Пайплайн полностью функционален и без известного пользователя,
		// просто без персонализации между запросами.
		userID = anonymousUserID
	}

	dream := &models.DreamInput{
		Title:        req.Title,
		Description:  req.Description,
		WhyImportant: req.WhyImportant,
		CategoryHint: req.CategoryHint,
		Deadline:     req.Deadline,
		Milestones:   req.Milestones,
	}

	board, err := h.service.Generate(c.Request.Context(), dream, userID, req.Template)
	if err != nil {
		if errors.Is(err, models.ErrInvalidDream) {
			c.JSON(http.StatusBadRequest, APIError{Message: err.Error()})
			return
		}
		h.logger.Error("Board generation failed", zap.Error(err), zap.String("userID", userID))
		c.JSON(http.StatusInternalServerError, APIError{Message: "failed to generate vision board"})
		return
	}

	c.JSON(http.StatusOK, board)
}

// listTemplates возвращает статический каталог шаблонов.
func (h *BoardHandler) listTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"templates": h.service.Templates()})
}
