package routes

import "github.com/gin-gonic/gin"

// RegisterAvailabilityRoutes registers the read-side availability endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, b *HandlerBundle) {
	avail := r.Group("/api/availability")
	{
		avail.GET("", b.Availability.GetAvailability)
		avail.GET("/calendar", b.Availability.GetCalendarMonth)
	}
}
