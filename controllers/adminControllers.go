package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Iwan2264/HMS/models"
	"github.com/Iwan2264/HMS/session"
)

// Link offered from the admin panel; opaque external tool, no return
// contract.
const dischargeSummaryURL = "https://discharge-summary-generator.streamlit.app/"

func showAdmin(c *gin.Context, sess *models.Session) {
	flash, flashErr := sess.TakeFlash()

	if !sess.AdminLoggedIn {
		c.HTML(http.StatusOK, "admin_login.html", gin.H{
			"Flash": flash,
			"Error": flashErr,
		})
		return
	}

	// A read failure keeps the panel usable with an inline error.
	records, err := appointments.ReadAll()
	readErr := ""
	if err != nil {
		readErr = "Error reading appointments: " + err.Error()
	}

	c.HTML(http.StatusOK, "admin_panel.html", gin.H{
		"Appointments":        records,
		"ReadError":           readErr,
		"Flash":               flash,
		"Error":               flashErr,
		"DischargeSummaryURL": dischargeSummaryURL,
	})
}

// AdminLogin checks the submitted credentials and unlocks the panel
// sub-mode for this session only.
func AdminLogin(c *gin.Context) {
	sess := session.FromContext(c)
	sess.GotoAdmin()

	var login models.Admin
	if err := c.ShouldBind(&login); err != nil {
		sess.FlashError = "Invalid credentials"
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	if !adminCreds.Check(login.Username, login.Password) {
		sess.FlashError = "Invalid credentials"
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	sess.LoginAdmin()
	sess.Flash = "Login successful!"
	c.Redirect(http.StatusSeeOther, "/")
}

// AdminLogout clears the login flag and returns to the directory.
func AdminLogout(c *gin.Context) {
	session.FromContext(c).LogoutAdmin()
	c.Redirect(http.StatusSeeOther, "/")
}
