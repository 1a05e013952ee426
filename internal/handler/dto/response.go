package dto

import (
	"time"

	"github.com/avdeyev/TableBooker/internal/domain"
)

const dateLayout = "2006-01-02"

type ReservationResponse struct {
	ID          string `json:"id"`
	CustomerID  string `json:"customer_id"`
	TableID     string `json:"table_id,omitempty"`
	TableNumber int    `json:"table_number,omitempty"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Guests      int    `json:"guests"`
	Notes       string `json:"notes"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type TableResponse struct {
	ID       string `json:"id"`
	Number   int    `json:"number"`
	Capacity int    `json:"capacity"`
}

type AvailabilityResponse struct {
	Available bool            `json:"available"`
	Tables    []TableResponse `json:"tables"`
}

type CustomerResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:          r.ID,
		CustomerID:  r.CustomerID,
		TableID:     r.TableID,
		TableNumber: r.TableNumber,
		Date:        r.Date.Format(dateLayout),
		Time:        r.Time.String(),
		Guests:      r.Guests,
		Notes:       r.Notes,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   r.UpdatedAt.Format(time.RFC3339),
	}
}

func ToTableResponse(t *domain.Table) TableResponse {
	return TableResponse{
		ID:       t.ID,
		Number:   t.Number,
		Capacity: t.Capacity,
	}
}

func ToAvailabilityResponse(tables []*domain.Table) AvailabilityResponse {
	resp := AvailabilityResponse{
		Available: len(tables) > 0,
		Tables:    make([]TableResponse, 0, len(tables)),
	}
	for _, t := range tables {
		resp.Tables = append(resp.Tables, ToTableResponse(t))
	}
	return resp
}

func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:             c.ID,
		Username:       c.Username,
		TelegramChatID: c.TelegramChatID,
		CreatedAt:      c.CreatedAt.Format(time.RFC3339),
	}
}
