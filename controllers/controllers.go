package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Iwan2264/HMS/authentication"
	"github.com/Iwan2264/HMS/catalog"
	"github.com/Iwan2264/HMS/models"
	"github.com/Iwan2264/HMS/session"
	"github.com/Iwan2264/HMS/store"
)

var (
	doctorCatalog *catalog.Catalog
	appointments  *store.AppointmentStore
	adminCreds    authentication.CredentialChecker
	mailer        Mailer
)

// Init wires the controllers to their collaborators before the router is
// built.
func Init(c *catalog.Catalog, s *store.AppointmentStore, creds authentication.CredentialChecker, m Mailer) {
	doctorCatalog = c
	appointments = s
	adminCreds = creds
	mailer = m
}

// ShowPage renders whichever screen the session's page state selects.
func ShowPage(c *gin.Context) {
	renderPage(c, session.FromContext(c))
}

func renderPage(c *gin.Context, sess *models.Session) {
	switch sess.Page {
	case models.PageDirectory:
		showDirectory(c, sess)
	case models.PageProfile:
		showProfile(c, sess)
	case models.PageBooking:
		showBooking(c, sess)
	case models.PageAdmin:
		showAdmin(c, sess)
	default:
		// Unknown state in a stored session, start over.
		sess.GotoDirectory()
		showDirectory(c, sess)
	}
}

// NavDirectory handles the always-available "Doctor Directory" button.
func NavDirectory(c *gin.Context) {
	session.FromContext(c).GotoDirectory()
	c.Redirect(http.StatusSeeOther, "/")
}

// NavAdmin handles the always-available "Admin Panel" button.
func NavAdmin(c *gin.Context) {
	session.FromContext(c).GotoAdmin()
	c.Redirect(http.StatusSeeOther, "/")
}
