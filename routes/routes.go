package routes

import (
	"seabreeze/handlers"

	"github.com/gin-gonic/gin"
)

// HandlerBundle collects the handlers the router wires up.
type HandlerBundle struct {
	Availability *handlers.AvailabilityHandler
	Reservation  *handlers.ReservationHandler
	Hold         *handlers.HoldHandler
}

// RegisterRoutes registers every route group on the router.
func RegisterRoutes(r *gin.Engine, b *HandlerBundle) {
	r.GET("/healthz", handlers.HealthzHandler)

	RegisterAvailabilityRoutes(r, b)
	RegisterReservationRoutes(r, b)
}
