package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Iwan2264/HMS/models"
	"github.com/Iwan2264/HMS/session"
)

func showProfile(c *gin.Context, sess *models.Session) {
	if sess.SelectedDoctor == nil {
		sess.GotoDirectory()
		showDirectory(c, sess)
		return
	}

	flash, flashErr := sess.TakeFlash()
	c.HTML(http.StatusOK, "profile.html", gin.H{
		"Doctor": sess.SelectedDoctor,
		"Flash":  flash,
		"Error":  flashErr,
	})
}

// StartBooking moves profile -> booking for the doctor being viewed.
func StartBooking(c *gin.Context) {
	sess := session.FromContext(c)
	if sess.Page != models.PageProfile || sess.SelectedDoctor == nil {
		// Stale tab, fall back to the directory.
		sess.GotoDirectory()
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	sess.StartBooking()
	c.Redirect(http.StatusSeeOther, "/")
}

// BackToDirectory leaves the profile, dropping the selection.
func BackToDirectory(c *gin.Context) {
	session.FromContext(c).GotoDirectory()
	c.Redirect(http.StatusSeeOther, "/")
}
