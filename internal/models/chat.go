package models

import "time"

// ChatLog is one request/response turn. Rows are append-only.
type ChatLog struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"created_at"`
}

type ChatRequest struct {
	Message string `json:"message" validate:"required,max=1000"`
}

type ChatResponse struct {
	Response string `json:"response"`
}
