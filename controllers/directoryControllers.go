package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Iwan2264/HMS/models"
	"github.com/Iwan2264/HMS/session"
)

func showDirectory(c *gin.Context, sess *models.Session) {
	flash, flashErr := sess.TakeFlash()
	c.HTML(http.StatusOK, "directory.html", gin.H{
		"Doctors": doctorCatalog.Doctors(),
		"Flash":   flash,
		"Error":   flashErr,
	})
}

// ViewDoctorDetails moves the session from the directory to the profile of
// the chosen doctor.
func ViewDoctorDetails(c *gin.Context) {
	sess := session.FromContext(c)

	doctor, ok := doctorCatalog.FindByID(c.Param("id"))
	if !ok {
		sess.FlashError = "Doctor not found"
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	sess.SelectDoctor(doctor)
	c.Redirect(http.StatusSeeOther, "/")
}
