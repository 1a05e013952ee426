package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/avdeyev/TableBooker/internal/domain"
	"github.com/avdeyev/TableBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const dateLayout = "2006-01-02"

type ReservationSvc interface {
	Create(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, *domain.Table, error)
	Edit(ctx context.Context, input domain.EditReservationInput) (*domain.Reservation, *domain.Table, error)
	Cancel(ctx context.Context, reservationID, customerID string) error
	UpdateStatus(ctx context.Context, reservationID string, status domain.ReservationStatus, notes *string) (*domain.Reservation, error)
	CheckAvailability(ctx context.Context, date time.Time, slot domain.TimeOfDay, guests int) ([]*domain.Table, error)
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Reservation, error)
	List(ctx context.Context) ([]*domain.Reservation, error)
	Dashboard(ctx context.Context) (*domain.DashboardStats, error)
}

type TableSvc interface {
	Create(ctx context.Context, input domain.TableInput) (*domain.Table, error)
	Update(ctx context.Context, id string, input domain.TableInput) (*domain.Table, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.Table, error)
}

type CustomerSvc interface {
	Create(ctx context.Context, input domain.CreateCustomerInput) (*domain.Customer, error)
	List(ctx context.Context) ([]*domain.Customer, error)
}

type Handler struct {
	reservationService ReservationSvc
	tableService       TableSvc
	customerService    CustomerSvc
}

func NewHandler(reservationService ReservationSvc, tableService TableSvc, customerService CustomerSvc) *Handler {
	return &Handler{
		reservationService: reservationService,
		tableService:       tableService,
		customerService:    customerService,
	}
}

func parseSlot(dateStr, timeStr string) (time.Time, domain.TimeOfDay, bool) {
	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return time.Time{}, 0, false
	}
	slot, err := domain.ParseTimeOfDay(timeStr)
	if err != nil {
		return time.Time{}, 0, false
	}
	return date, slot, true
}

// Reservations

func (h *Handler) CreateReservation(c *ginext.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, slot, ok := parseSlot(req.Date, req.Time)
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date or time, expected YYYY-MM-DD and HH:MM",
		})
		return
	}

	input := domain.CreateReservationInput{
		CustomerID: req.CustomerID,
		Date:       date,
		Time:       slot,
		Guests:     req.Guests,
		Notes:      req.Notes,
	}

	res, table, err := h.reservationService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ginext.H{
		"reservation": dto.ToReservationResponse(res),
		"table":       dto.ToTableResponse(table),
	})
}

func (h *Handler) GetReservation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	res, err := h.reservationService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

func (h *Handler) EditReservation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	var req dto.EditReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, slot, ok := parseSlot(req.Date, req.Time)
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date or time, expected YYYY-MM-DD and HH:MM",
		})
		return
	}

	input := domain.EditReservationInput{
		ReservationID: id,
		CustomerID:    req.CustomerID,
		Date:          date,
		Time:          slot,
		Guests:        req.Guests,
	}

	res, table, err := h.reservationService.Edit(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{
		"reservation": dto.ToReservationResponse(res),
		"table":       dto.ToTableResponse(table),
	})
}

func (h *Handler) CancelReservation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	var req dto.CancelReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.reservationService.Cancel(c.Request.Context(), id, req.CustomerID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

func (h *Handler) CheckAvailability(c *ginext.Context) {
	date, slot, ok := parseSlot(c.Query("date"), c.Query("time"))
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date or time, expected YYYY-MM-DD and HH:MM",
		})
		return
	}

	guests, err := strconv.Atoi(c.Query("guests"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid guests"})
		return
	}

	tables, err := h.reservationService.CheckAvailability(c.Request.Context(), date, slot, guests)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(tables))
}

// Staff

func (h *Handler) ListReservations(c *ginext.Context) {
	reservations, err := h.reservationService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		resp = append(resp, dto.ToReservationResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateReservationStatus(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.reservationService.UpdateStatus(
		c.Request.Context(), id, domain.ReservationStatus(req.Status), req.Notes,
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

func (h *Handler) Dashboard(c *ginext.Context) {
	stats, err := h.reservationService.Dashboard(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Tables

func (h *Handler) CreateTable(c *ginext.Context) {
	var req dto.TableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	table, err := h.tableService.Create(c.Request.Context(), domain.TableInput{
		Number:   req.Number,
		Capacity: req.Capacity,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTableResponse(table))
}

func (h *Handler) UpdateTable(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid table id"})
		return
	}

	var req dto.TableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	table, err := h.tableService.Update(c.Request.Context(), id, domain.TableInput{
		Number:   req.Number,
		Capacity: req.Capacity,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTableResponse(table))
}

func (h *Handler) DeleteTable(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid table id"})
		return
	}

	if err := h.tableService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) ListTables(c *ginext.Context) {
	tables, err := h.tableService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TableResponse, 0, len(tables))
	for _, t := range tables {
		resp = append(resp, dto.ToTableResponse(t))
	}

	c.JSON(http.StatusOK, resp)
}

// Customers

func (h *Handler) CreateCustomer(c *ginext.Context) {
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	customer, err := h.customerService.Create(c.Request.Context(), domain.CreateCustomerInput{
		Username:       req.Username,
		TelegramChatID: req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

func (h *Handler) ListCustomers(c *ginext.Context) {
	customers, err := h.customerService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CustomerResponse, 0, len(customers))
	for _, cu := range customers {
		resp = append(resp, dto.ToCustomerResponse(cu))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListCustomerReservations(c *ginext.Context) {
	customerID := c.Param("id")
	if _, err := uuid.Parse(customerID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid customer id"})
		return
	}

	reservations, err := h.reservationService.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		resp = append(resp, dto.ToReservationResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrReservationNotFound),
		errors.Is(err, domain.ErrTableNotFound),
		errors.Is(err, domain.ErrCustomerNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNoTablesAvailable),
		errors.Is(err, domain.ErrTableInUse),
		errors.Is(err, domain.ErrTableNumberTaken),
		errors.Is(err, domain.ErrReservationFinal),
		errors.Is(err, domain.ErrCancelTooLate),
		errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNotReservationOwner):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrSlotInPast),
		errors.Is(err, domain.ErrOutsideServiceHours):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
