package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avdeyev/TableBooker/internal/domain"
	"github.com/avdeyev/TableBooker/internal/handler/dto"
	hmocks "github.com/avdeyev/TableBooker/internal/handler/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockReservationSvc, *hmocks.MockTableSvc, *hmocks.MockCustomerSvc, http.Handler) {
	t.Helper()
	reservationSvc := hmocks.NewMockReservationSvc(t)
	tableSvc := hmocks.NewMockTableSvc(t)
	customerSvc := hmocks.NewMockCustomerSvc(t)

	h := NewHandler(reservationSvc, tableSvc, customerSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/reservations", h.CreateReservation)
		api.GET("/reservations/:id", h.GetReservation)
		api.PUT("/reservations/:id", h.EditReservation)
		api.POST("/reservations/:id/cancel", h.CancelReservation)
		api.GET("/availability", h.CheckAvailability)
		api.POST("/customers", h.CreateCustomer)
		api.GET("/customers", h.ListCustomers)
		api.GET("/customers/:id/reservations", h.ListCustomerReservations)
		api.GET("/staff/reservations", h.ListReservations)
		api.PATCH("/staff/reservations/:id/status", h.UpdateReservationStatus)
		api.GET("/staff/dashboard", h.Dashboard)
		api.POST("/staff/tables", h.CreateTable)
		api.GET("/staff/tables", h.ListTables)
		api.PUT("/staff/tables/:id", h.UpdateTable)
		api.DELETE("/staff/tables/:id", h.DeleteTable)
	}

	return reservationSvc, tableSvc, customerSvc, r
}

func reservationFixture(customerID string) *domain.Reservation {
	return &domain.Reservation{
		ID:          uuid.New().String(),
		CustomerID:  customerID,
		TableID:     uuid.New().String(),
		TableNumber: 2,
		Date:        time.Date(2026, 9, 11, 0, 0, 0, 0, time.UTC),
		Time:        19 * 60,
		Guests:      3,
		Status:      domain.ReservationStatusPending,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

// --- Reservations ---

func TestHandler_CreateReservation_Success(t *testing.T) {
	reservationSvc, _, _, r := setupRouter(t)

	customerID := uuid.New().String()
	res := reservationFixture(customerID)
	table := &domain.Table{ID: res.TableID, Number: 2, Capacity: 4}

	reservationSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(res, table, nil)

	body, _ := json.Marshal(dto.CreateReservationRequest{
		CustomerID: customerID,
		Date:       "2026-09-11",
		Time:       "19:00",
		Guests:     3,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Reservation dto.ReservationResponse `json:"reservation"`
		Table       dto.TableResponse       `json:"table"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Reservation.Status)
	assert.Equal(t, "19:00", resp.Reservation.Time)
	assert.Equal(t, 2, resp.Table.Number)
}

func TestHandler_CreateReservation_BadBody(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"customer_id":"not-a-uuid","date":"2026-09-11","time":"19:00","guests":2}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateReservation_InvalidDate(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"customer_id":"` + uuid.New().String() + `","date":"11.09.2026","time":"19:00","guests":2}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateReservation_NoTables(t *testing.T) {
	reservationSvc, _, _, r := setupRouter(t)

	reservationSvc.EXPECT().Create(mock.Anything, mock.Anything).
		Return(nil, nil, domain.ErrNoTablesAvailable)

	body, _ := json.Marshal(dto.CreateReservationRequest{
		CustomerID: uuid.New().String(),
		Date:       "2026-09-11",
		Time:       "19:00",
		Guests:     12,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateReservation_PastSlot(t *testing.T) {
	reservationSvc, _, _, r := setupRouter(t)

	reservationSvc.EXPECT().Create(mock.Anything, mock.Anything).
		Return(nil, nil, domain.ErrSlotInPast)

	body, _ := json.Marshal(dto.CreateReservationRequest{
		CustomerID: uuid.New().String(),
		Date:       "2020-01-01",
		Time:       "19:00",
		Guests:     2,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetReservation_Success(t *testing.T) {
	reservationSvc, _, _, r := setupRouter(t)

	res := reservationFixture(uuid.New().String())
	reservationSvc.EXPECT().GetByID(mock.Anything, res.ID).Return(res, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations/"+res.ID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, res.ID, resp.ID)
	assert.Equal(t, "2026-09-11", resp.Date)
}

func TestHandler_GetReservation_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetReservation_NotFound(t *testing.T) {
	reservationSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	reservationSvc.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrReservationNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_EditReservation_Success(t *testing.T) {
	reservationSvc, _, _, r := setupRouter(t)

	customerID := uuid.New().String()
	res := reservationFixture(customerID)
	table := &domain.Table{ID: res.TableID, Number: 2, Capacity: 4}

	reservationSvc.EXPECT().Edit(mock.Anything, mock.Anything).Return(res, table, nil)

	body, _ := json.Marshal(dto.EditReservationRequest{
		CustomerID: customerID,
		Date:       "2026-09-12",
		Time:       "20:00",
		Guests:     4,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/reservations/"+res.ID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_EditReservation_NotOwner(t *testing.T) {
	reservationSvc, _, _, r := setupRouter(t)

	reservationSvc.EXPECT().Edit(mock.Anything, mock.Anything).
		Return(nil, nil, domain.ErrNotReservationOwner)

	body, _ := json.Marshal(dto.EditReservationRequest{
		CustomerID: uuid.New().String(),
		Date:       "2026-09-12",
		Time:       "20:00",
		Guests:     4,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/reservations/"+uuid.New().String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CancelReservation_Success(t *testing.T) {
	reservationSvc, _, _, r := setupRouter(t)

	reservationID := uuid.New().String()
	customerID := uuid.New().String()

	reservationSvc.EXPECT().Cancel(mock.Anything, reservationID, customerID).Return(nil)

	body, _ := json.Marshal(dto.CancelReservationRequest{CustomerID: customerID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+reservationID+"/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CancelReservation_TooLate(t *testing.T) {
	reservationSvc, _, _, r := setupRouter(t)

	reservationID := uuid.New().String()
	customerID := uuid.New().String()

	reservationSvc.EXPECT().Cancel(mock.Anything, reservationID, customerID).
		Return(domain.ErrCancelTooLate)

	body, _ := json.Marshal(dto.CancelReservationRequest{CustomerID: customerID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+reservationID+"/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CheckAvailability_Success(t *testing.T) {
	reservationSvc, _, _, r := setupRouter(t)

	tables := []*domain.Table{
		{ID: "t4", Number: 2, Capacity: 4},
		{ID: "t6", Number: 3, Capacity: 6},
	}
	reservationSvc.EXPECT().
		CheckAvailability(mock.Anything, mock.Anything, domain.TimeOfDay(19*60), 3).
		Return(tables, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability?date=2026-09-11&time=19:00&guests=3", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Available)
	assert.Len(t, resp.Tables, 2)
}

func TestHandler_CheckAvailability_NoneFree(t *testing.T) {
	reservationSvc, _, _, r := setupRouter(t)

	reservationSvc.EXPECT().
		CheckAvailability(mock.Anything, mock.Anything, domain.TimeOfDay(19*60), 3).
		Return(nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability?date=2026-09-11&time=19:00&guests=3", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Available)
	assert.Empty(t, resp.Tables)
}

func TestHandler_CheckAvailability_BadQuery(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability?date=soon&time=19:00&guests=3", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/availability?date=2026-09-11&time=19:00&guests=many", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Staff ---

func TestHandler_UpdateReservationStatus_Success(t *testing.T) {
	reservationSvc, _, _, r := setupRouter(t)

	res := reservationFixture(uuid.New().String())
	res.Status = domain.ReservationStatusConfirmed

	reservationSvc.EXPECT().
		UpdateStatus(mock.Anything, res.ID, domain.ReservationStatusConfirmed, (*string)(nil)).
		Return(res, nil)

	body := []byte(`{"status":"confirmed"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/staff/reservations/"+res.ID+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "confirmed", resp.Status)
}

func TestHandler_UpdateReservationStatus_Invalid(t *testing.T) {
	reservationSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	reservationSvc.EXPECT().
		UpdateStatus(mock.Anything, id, domain.ReservationStatus("no_show"), (*string)(nil)).
		Return(nil, domain.ErrValidation)

	body := []byte(`{"status":"no_show"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/staff/reservations/"+id+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListReservations_Success(t *testing.T) {
	reservationSvc, _, _, r := setupRouter(t)

	reservations := []*domain.Reservation{
		reservationFixture(uuid.New().String()),
		reservationFixture(uuid.New().String()),
	}
	reservationSvc.EXPECT().List(mock.Anything).Return(reservations, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/staff/reservations", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_Dashboard_Success(t *testing.T) {
	reservationSvc, _, _, r := setupRouter(t)

	stats := &domain.DashboardStats{UpcomingActive: 5, ConfirmedToday: 3, TotalTables: 12}
	reservationSvc.EXPECT().Dashboard(mock.Anything).Return(stats, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/staff/dashboard", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp domain.DashboardStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.UpcomingActive)
}

// --- Tables ---

func TestHandler_CreateTable_Success(t *testing.T) {
	_, tableSvc, _, r := setupRouter(t)

	table := &domain.Table{ID: uuid.New().String(), Number: 5, Capacity: 4}
	tableSvc.EXPECT().Create(mock.Anything, domain.TableInput{Number: 5, Capacity: 4}).Return(table, nil)

	body, _ := json.Marshal(dto.TableRequest{Number: 5, Capacity: 4})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/staff/tables", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.TableResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.Number)
}

func TestHandler_CreateTable_NumberTaken(t *testing.T) {
	_, tableSvc, _, r := setupRouter(t)

	tableSvc.EXPECT().Create(mock.Anything, domain.TableInput{Number: 5, Capacity: 4}).
		Return(nil, domain.ErrTableNumberTaken)

	body, _ := json.Marshal(dto.TableRequest{Number: 5, Capacity: 4})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/staff/tables", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_DeleteTable_Success(t *testing.T) {
	_, tableSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	tableSvc.EXPECT().Delete(mock.Anything, id).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/staff/tables/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_DeleteTable_InUse(t *testing.T) {
	_, tableSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	tableSvc.EXPECT().Delete(mock.Anything, id).Return(domain.ErrTableInUse)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/staff/tables/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_DeleteTable_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/staff/tables/bad-id", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListTables_Success(t *testing.T) {
	_, tableSvc, _, r := setupRouter(t)

	tables := []*domain.Table{
		{ID: "t1", Number: 1, Capacity: 2},
		{ID: "t2", Number: 2, Capacity: 4},
	}
	tableSvc.EXPECT().List(mock.Anything).Return(tables, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/staff/tables", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.TableResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

// --- Customers ---

func TestHandler_CreateCustomer_Success(t *testing.T) {
	_, _, customerSvc, r := setupRouter(t)

	customer := &domain.Customer{
		ID:        uuid.New().String(),
		Username:  "alice",
		CreatedAt: time.Now(),
	}
	customerSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(customer, nil)

	body, _ := json.Marshal(dto.CreateCustomerRequest{Username: "alice"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/customers", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.CustomerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Username)
}

func TestHandler_CreateCustomer_BadRequest(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/customers", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListCustomerReservations_Success(t *testing.T) {
	reservationSvc, _, _, r := setupRouter(t)

	customerID := uuid.New().String()
	reservations := []*domain.Reservation{reservationFixture(customerID)}

	reservationSvc.EXPECT().ListByCustomer(mock.Anything, customerID).Return(reservations, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/customers/"+customerID+"/reservations", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_ListCustomerReservations_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/customers/bad-id/reservations", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	reservationSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	reservationSvc.EXPECT().GetByID(mock.Anything, id).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
