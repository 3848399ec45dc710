package service

import (
	"context"
	stdErrors "errors"
	"log/slog"

	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/api/middleware"
	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/chat"
	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/errors"
	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/metrics"
	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/models"
	repository "github.com/aaravmahajanofficial/smart-shop-assistant/internal/repositories"
)

const maxHistoryLimit = 100

type ChatService interface {
	Converse(ctx context.Context, userID int64, message string) (*models.ChatResponse, error)
	// History returns the user's recent turns, newest first. A non-positive
	// limit means the configured default and anything above 100 is capped.
	History(ctx context.Context, userID int64, limit int) ([]*models.ChatLog, error)
}

// Responder maps one message to one reply.
type Responder interface {
	Respond(ctx context.Context, message string) (chat.Reply, error)
}

type chatService struct {
	responder    Responder
	repo         repository.ChatRepository
	historyLimit int
}

func NewChatService(responder Responder, repo repository.ChatRepository, historyLimit int) ChatService {
	if historyLimit <= 0 || historyLimit > maxHistoryLimit {
		historyLimit = 20
	}

	return &chatService{responder: responder, repo: repo, historyLimit: historyLimit}
}

// Converse stores exactly one log row per computed reply, fallback replies
// included. Nothing is stored when the reply could not be computed.
func (s *chatService) Converse(ctx context.Context, userID int64, message string) (*models.ChatResponse, error) {

	reply, err := s.responder.Respond(ctx, message)
	if err != nil {
		return nil, errors.DatabaseError("Failed to generate response").WithError(err)
	}

	entry := &models.ChatLog{
		UserID:   userID,
		Message:  message,
		Response: reply.Text,
	}

	if err := s.repo.AppendLog(ctx, entry); err != nil {
		if stdErrors.Is(err, repository.ErrReferenceNotFound) {
			return nil, errors.NotFoundError("User not found").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to save chat history").WithError(err)
	}

	metrics.RecordChatIntent(string(reply.Intent))

	middleware.LoggerFromContext(ctx).Info("Chat reply generated", slog.String("intent", string(reply.Intent)))

	return &models.ChatResponse{Response: reply.Text}, nil
}

func (s *chatService) History(ctx context.Context, userID int64, limit int) ([]*models.ChatLog, error) {

	switch {
	case limit <= 0:
		limit = s.historyLimit
	case limit > maxHistoryLimit:
		limit = maxHistoryLimit
	}

	logs, err := s.repo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch chat history").WithError(err)
	}

	return logs, nil
}
