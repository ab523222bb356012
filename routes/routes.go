package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Iwan2264/HMS/controllers"
	"github.com/Iwan2264/HMS/session"
)

// SetupRouter builds the Gin engine with the session middleware and every
// page action wired in. templatesGlob points at the HTML templates.
func SetupRouter(store session.Store, templatesGlob string) *gin.Engine {
	r := gin.Default()
	r.LoadHTMLGlob(templatesGlob)
	r.Use(session.Middleware(store))

	// One GET renders whichever screen the session is on.
	r.GET("/", controllers.ShowPage)

	// Navigation shell, available from every page.
	r.POST("/nav/directory", controllers.NavDirectory)
	r.POST("/nav/admin", controllers.NavAdmin)

	// Directory and profile actions.
	r.POST("/doctors/:id/view", controllers.ViewDoctorDetails)
	r.POST("/profile/book", controllers.StartBooking)
	r.POST("/profile/back", controllers.BackToDirectory)

	// Booking actions.
	r.POST("/booking/submit", controllers.SubmitAppointment)
	r.POST("/booking/back", controllers.BackToProfile)

	// Admin actions.
	r.POST("/admin/login", controllers.AdminLogin)
	r.POST("/admin/logout", controllers.AdminLogout)
	r.GET("/admin/appointments.pdf", controllers.ExportAppointmentsPDF)

	return r
}
