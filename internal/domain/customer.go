package domain

import "time"

type Customer struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateCustomerInput struct {
	Username       string
	TelegramChatID *int64
}
