package controllers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"

	"github.com/Iwan2264/HMS/models"
	"github.com/Iwan2264/HMS/session"
)

// ExportAppointmentsPDF lets a logged-in admin download the appointment
// log as a PDF table.
func ExportAppointmentsPDF(c *gin.Context) {
	sess := session.FromContext(c)
	if !sess.AdminLoggedIn {
		c.String(http.StatusForbidden, "admin login required")
		return
	}

	records, err := appointments.ReadAll()
	if err != nil {
		sess.GotoAdmin()
		sess.FlashError = "Error reading appointments: " + err.Error()
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	data, err := generateAppointmentsPDF(records)
	if err != nil {
		sess.GotoAdmin()
		sess.FlashError = "Failed to generate PDF"
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="appointments.pdf"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

// Function to render the appointment log as a PDF table
func generateAppointmentsPDF(records []models.Appointment) ([]byte, error) {
	// Initialize PDF document
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Title
	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(128, 0, 128)
	pdf.CellFormat(0, 10, "HMS - Appointment Log", "", 1, "C", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "B", 10)

	widths := []float64{50, 15, 55, 30, 20, 70, 37}
	for i, h := range models.AppointmentHeader {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	pdf.SetFillColor(240, 240, 240)
	for n, a := range records {
		row := a.Row()
		for i, v := range row {
			pdf.CellFormat(widths[i], 7, v, "1", 0, "", n%2 == 1, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(records) == 0 {
		pdf.SetFont("Arial", "I", 10)
		pdf.CellFormat(0, 10, "No appointments found.", "", 1, "L", false, 0, "")
	}

	pdf.SetY(pdf.GetY() + 8)
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 10, fmt.Sprintf("Total appointments: %d", len(records)), "", 1, "R", false, 0, "")

	// Output PDF to buffer
	var pdfBuffer bytes.Buffer
	if err := pdf.Output(&pdfBuffer); err != nil {
		return nil, err
	}
	return pdfBuffer.Bytes(), nil
}
