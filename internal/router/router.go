package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateReservation(c *ginext.Context)
	GetReservation(c *ginext.Context)
	CancelReservation(c *ginext.Context)
	PayReservation(c *ginext.Context)
	CreateLodging(c *ginext.Context)
	GetLodging(c *ginext.Context)
	ListLodgings(c *ginext.Context)
	GetLodgingReservations(c *ginext.Context)
	GetLodgingAvailability(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	GetUserReservations(c *ginext.Context)
	GetHostReservations(c *ginext.Context)
	GetHostRevenue(c *ginext.Context)
	UpdatePaymentStatus(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Reservations
		api.POST("/reservations", h.CreateReservation)
		api.GET("/reservations/:id", h.GetReservation)
		api.POST("/reservations/:id/cancel", h.CancelReservation)
		api.POST("/reservations/:id/pay", h.PayReservation)

		// Lodgings
		api.POST("/lodgings", h.CreateLodging)
		api.GET("/lodgings", h.ListLodgings)
		api.GET("/lodgings/:id", h.GetLodging)
		api.GET("/lodgings/:id/reservations", h.GetLodgingReservations)
		api.GET("/lodgings/:id/availability", h.GetLodgingAvailability)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id/reservations", h.GetUserReservations)

		// Hosts
		api.GET("/hosts/:id/reservations", h.GetHostReservations)
		api.GET("/hosts/:id/revenue", h.GetHostRevenue)

		// Payments
		api.PATCH("/payments/:id/status", h.UpdatePaymentStatus)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
