package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/api/middleware"
	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/errors"
	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/models"
	service "github.com/aaravmahajanofficial/smart-shop-assistant/internal/services"
	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/utils"
	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type ChatHandler struct {
	chatService service.ChatService
	validator   *validator.Validate
}

func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		validator:   validator.New(),
	}
}

// Chat godoc
//
//	@Summary		Ask the shopping assistant
//	@Description	Answers product, category, price and help questions about the catalog
//	@Tags			Chat
//	@Accept			json
//	@Produce		json
//	@Param			message	body		models.ChatRequest	true	"User message"
//	@Success		200		{object}	models.ChatResponse
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		401		{object}	response.ErrorResponse	"Unauthorized"
//	@Failure		500		{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/chat [post]
func (h *ChatHandler) Chat() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		var req models.ChatRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		if strings.TrimSpace(req.Message) == "" {
			response.Error(w, errors.AddValidationError("message", "must not be blank"))
			return
		}

		reply, err := h.chatService.Converse(r.Context(), claims.UserID, req.Message)
		if err != nil {
			writeError(logger, w, "Failed to answer chat message", err)
			return
		}

		response.Success(w, http.StatusOK, reply)
	}
}

// History godoc
//
//	@Summary		Chat history
//	@Description	Returns the caller's recent turns, newest first
//	@Tags			Chat
//	@Produce		json
//	@Param			limit	query		int	false	"Maximum number of turns (capped at 100)"
//	@Success		200		{array}		models.ChatLog
//	@Failure		400		{object}	response.ErrorResponse	"Invalid limit"
//	@Failure		401		{object}	response.ErrorResponse	"Unauthorized"
//	@Failure		500		{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/chat/history [get]
func (h *ChatHandler) History() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		limit := 0

		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				response.Error(w, errors.AddValidationError("limit", "must be a positive integer"))
				return
			}

			limit = parsed
		}

		logs, err := h.chatService.History(r.Context(), claims.UserID, limit)
		if err != nil {
			writeError(logger, w, "Failed to fetch chat history", err)
			return
		}

		response.Success(w, http.StatusOK, logs)
	}
}
