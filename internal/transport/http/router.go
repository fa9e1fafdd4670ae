package http

import (
	"github.com/gin-gonic/gin"

	"github.com/ettorepuccetti/terrarossa/internal/domain"
	"github.com/ettorepuccetti/terrarossa/internal/service"
)

type Services struct {
	Reservations *service.ReservationSvc
	Clubs        *service.ClubSvc
	Courts       *service.CourtSvc
	Users        *service.UserSvc
}

// NewRouter wires the /v1 API. Club and court reads are public; every
// mutation requires a valid token, admin ones additionally the ADMIN role.
func NewRouter(s Services) *gin.Engine {
	r := gin.Default()

	ch := NewClubHandler(s.Clubs)
	th := NewCourtHandler(s.Courts)
	rh := NewReservationHandler(s.Reservations, s.Clubs, s.Courts)
	uh := NewUserHandler(s.Users)

	v1 := r.Group("/v1")
	{
		v1.GET("/clubs", ch.List)
		v1.GET("/clubs/:clubId", ch.Get)
		v1.GET("/clubs/:clubId/courts", th.List)
		v1.GET("/clubs/:clubId/reservations", rh.ListByClub)
		v1.GET("/clubs/:clubId/calendar", rh.Calendar)

		secured := v1.Group("")
		secured.Use(JWTAuth())
		{
			secured.POST("/reservations", rh.Create)
			secured.POST("/reservations/validate", rh.Validate)
			secured.GET("/reservations/mine", rh.ListMine)
			secured.DELETE("/reservations/:id", rh.Delete)

			secured.GET("/users/me", uh.Me)
			secured.PUT("/users/me", uh.UpdateMe)
			secured.DELETE("/users/me", uh.DeleteMe)

			admin := secured.Group("")
			admin.Use(RequireRole(domain.RoleAdmin))
			{
				admin.POST("/reservations/recurrent", rh.CreateRecurrent)
				admin.DELETE("/recurrents/:id", rh.DeleteRecurrentGroup)
				admin.PUT("/clubs/:clubId/settings", ch.UpdateSettings)
				admin.POST("/clubs/:clubId/courts", th.Create)
				admin.PUT("/courts/:id", th.Update)
				admin.DELETE("/courts/:id", th.Delete)
			}
		}
	}
	return r
}
