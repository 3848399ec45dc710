package repository

import (
	"context"
	"database/sql"

	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/models"
	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/utils"
)

type ChatRepository interface {
	AppendLog(ctx context.Context, log *models.ChatLog) error
	// ListByUser returns the user's most recent turns, newest first.
	ListByUser(ctx context.Context, userID int64, limit int) ([]*models.ChatLog, error)
}

type chatRepository struct {
	DB *sql.DB
}

func NewChatRepo(db *sql.DB) ChatRepository {
	return &chatRepository{DB: db}
}

func (r *chatRepository) AppendLog(ctx context.Context, log *models.ChatLog) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO chat_history (user_id, message, response)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.DB.QueryRowContext(dbCtx, query, log.UserID, log.Message, log.Response).Scan(&log.ID, &log.CreatedAt)
	if err != nil {
		return translatePQError(err)
	}

	return nil
}

func (r *chatRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]*models.ChatLog, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, user_id, message, response, created_at
		FROM chat_history
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`

	rows, err := r.DB.QueryContext(dbCtx, query, userID, limit)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	logs := []*models.ChatLog{}

	for rows.Next() {
		entry := &models.ChatLog{}

		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.Message, &entry.Response, &entry.CreatedAt); err != nil {
			return nil, err
		}

		logs = append(logs, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return logs, nil
}
