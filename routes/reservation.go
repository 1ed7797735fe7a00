package routes

import "github.com/gin-gonic/gin"

// RegisterReservationRoutes registers the booking write path, the staff
// dashboard reads, and the booking-hold session endpoints.
func RegisterReservationRoutes(r *gin.Engine, b *HandlerBundle) {
	res := r.Group("/api/reservations")
	{
		res.POST("", b.Reservation.CreateReservation)
		res.GET("", b.Reservation.ListReservations)
		res.GET("/:id", b.Reservation.GetReservation)
		res.PUT("/:id", b.Reservation.UpdateReservation)
		res.PATCH("/:id/status", b.Reservation.UpdateReservationStatus)
		res.DELETE("/:id", b.Reservation.CancelReservation)
	}

	hold := r.Group("/api/booking/hold")
	{
		hold.POST("", b.Hold.StartHold)
		hold.GET("/:holdID", b.Hold.GetHold)
		hold.POST("/:holdID/confirm", b.Hold.ConfirmHold)
		hold.DELETE("/:holdID", b.Hold.ReleaseHold)
	}
}
