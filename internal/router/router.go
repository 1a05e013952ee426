package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateReservation(c *ginext.Context)
	GetReservation(c *ginext.Context)
	EditReservation(c *ginext.Context)
	CancelReservation(c *ginext.Context)
	CheckAvailability(c *ginext.Context)
	ListReservations(c *ginext.Context)
	UpdateReservationStatus(c *ginext.Context)
	Dashboard(c *ginext.Context)
	CreateTable(c *ginext.Context)
	UpdateTable(c *ginext.Context)
	DeleteTable(c *ginext.Context)
	ListTables(c *ginext.Context)
	CreateCustomer(c *ginext.Context)
	ListCustomers(c *ginext.Context)
	ListCustomerReservations(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Reservations
		api.POST("/reservations", h.CreateReservation)
		api.GET("/reservations/:id", h.GetReservation)
		api.PUT("/reservations/:id", h.EditReservation)
		api.POST("/reservations/:id/cancel", h.CancelReservation)
		api.GET("/availability", h.CheckAvailability)

		// Customers
		api.POST("/customers", h.CreateCustomer)
		api.GET("/customers", h.ListCustomers)
		api.GET("/customers/:id/reservations", h.ListCustomerReservations)

		// Staff
		staff := api.Group("/staff")
		{
			staff.GET("/reservations", h.ListReservations)
			staff.PATCH("/reservations/:id/status", h.UpdateReservationStatus)
			staff.GET("/dashboard", h.Dashboard)
			staff.POST("/tables", h.CreateTable)
			staff.GET("/tables", h.ListTables)
			staff.PUT("/tables/:id", h.UpdateTable)
			staff.DELETE("/tables/:id", h.DeleteTable)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
