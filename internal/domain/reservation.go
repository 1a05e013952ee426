package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
	ReservationStatusCompleted ReservationStatus = "completed"
)

// BlockingStatuses hold a table: they make a slot conflict and keep the
// table undeletable.
var BlockingStatuses = []ReservationStatus{ReservationStatusPending, ReservationStatusConfirmed}

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationStatusPending, ReservationStatusConfirmed,
		ReservationStatusCancelled, ReservationStatusCompleted:
		return true
	}
	return false
}

// Terminal reports whether the status ends the reservation's lifecycle.
func (s ReservationStatus) Terminal() bool {
	return s == ReservationStatusCancelled || s == ReservationStatusCompleted
}

type Reservation struct {
	ID          string            `json:"id"`
	CustomerID  string            `json:"customer_id"`
	TableID     string            `json:"table_id,omitempty"`
	TableNumber int               `json:"table_number,omitempty"` // read-side join; 0 once the table is removed
	Date        time.Time         `json:"date"`
	Time        TimeOfDay         `json:"time"`
	Guests      int               `json:"guests"`
	Notes       string            `json:"notes"`
	Status      ReservationStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// StartsAt resolves the reserved slot to an absolute instant in loc.
func (r *Reservation) StartsAt(loc *time.Location) time.Time {
	return CombineDateTime(r.Date, r.Time, loc)
}

type CreateReservationInput struct {
	CustomerID string
	Date       time.Time
	Time       TimeOfDay
	Guests     int
	Notes      string
}

type EditReservationInput struct {
	ReservationID string
	CustomerID    string
	Date          time.Time
	Time          TimeOfDay
	Guests        int
}

type DashboardStats struct {
	UpcomingActive int `json:"upcoming_active"`
	ConfirmedToday int `json:"confirmed_today"`
	TotalTables    int `json:"total_tables"`
}
