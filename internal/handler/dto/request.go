package dto

type CreateReservationRequest struct {
	CustomerID string `json:"customer_id" binding:"required,uuid"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	Guests     int    `json:"guests" binding:"required"`
	Notes      string `json:"notes"`
}

type EditReservationRequest struct {
	CustomerID string `json:"customer_id" binding:"required,uuid"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	Guests     int    `json:"guests" binding:"required"`
}

type CancelReservationRequest struct {
	CustomerID string `json:"customer_id" binding:"required,uuid"`
}

type UpdateStatusRequest struct {
	Status string  `json:"status" binding:"required"`
	Notes  *string `json:"notes"`
}

type TableRequest struct {
	Number   int `json:"number" binding:"required"`
	Capacity int `json:"capacity" binding:"required"`
}

type CreateCustomerRequest struct {
	Username       string `json:"username" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}
