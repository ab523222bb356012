package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/Iwan2264/HMS/models"
	"github.com/Iwan2264/HMS/session"
)

var validate = validator.New()

// BookingForm carries the appointment form submission. Date and time come
// pre-filled from the input widgets and are not validated beyond that.
type BookingForm struct {
	PatientName string `form:"patient_name" validate:"required"`
	Age         int    `form:"age" validate:"required,min=1,max=120"`
	Contact     string `form:"contact" validate:"required"`
	Date        string `form:"date"`
	Time        string `form:"time"`
	Symptoms    string `form:"symptoms" validate:"required"`
}

func showBooking(c *gin.Context, sess *models.Session) {
	if sess.SelectedDoctor == nil {
		sess.GotoDirectory()
		showDirectory(c, sess)
		return
	}

	flash, flashErr := sess.TakeFlash()
	now := time.Now()
	c.HTML(http.StatusOK, "booking.html", gin.H{
		"Doctor":      sess.SelectedDoctor,
		"DefaultDate": now.Format("2006-01-02"),
		"DefaultTime": now.Format("15:04"),
		"Flash":       flash,
		"Error":       flashErr,
	})
}

// SubmitAppointment validates the booking form and appends the record to
// the appointment store.
func SubmitAppointment(c *gin.Context) {
	sess := session.FromContext(c)
	if sess.Page != models.PageBooking || sess.SelectedDoctor == nil {
		sess.GotoDirectory()
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	var form BookingForm
	if err := c.ShouldBind(&form); err != nil {
		sess.FlashError = "Please fill in all fields."
		renderPage(c, sess)
		return
	}
	if err := validate.Struct(form); err != nil {
		sess.FlashError = "Please fill in all fields."
		renderPage(c, sess)
		return
	}

	appointment := models.Appointment{
		PatientName: form.PatientName,
		Age:         form.Age,
		Contact:     form.Contact,
		Date:        form.Date,
		Time:        form.Time,
		Symptoms:    form.Symptoms,
		DoctorName:  sess.SelectedDoctor.Name,
	}

	if err := appointments.Append(appointment); err != nil {
		log.Println("failed to save appointment:", err)
		sess.FlashError = "Could not save your appointment, please try again."
		renderPage(c, sess)
		return
	}

	// Confirmation mail is best effort and never blocks the booking.
	if mailer != nil {
		if err := mailer.SendConfirmation(appointment); err != nil {
			log.Println("failed to send confirmation email:", err)
		}
	}

	sess.Flash = "Appointment booked successfully!"
	sess.CompleteBooking()
	c.Redirect(http.StatusSeeOther, "/")
}

// BackToProfile abandons the form and returns to the doctor's profile.
func BackToProfile(c *gin.Context) {
	sess := session.FromContext(c)
	if sess.Page != models.PageBooking || sess.SelectedDoctor == nil {
		sess.GotoDirectory()
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	sess.CancelBooking()
	c.Redirect(http.StatusSeeOther, "/")
}
