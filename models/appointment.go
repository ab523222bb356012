package models

import (
	"fmt"
	"strconv"
)

type Appointment struct {
	PatientName string `json:"patient_name"`
	Age         int    `json:"age"`
	Contact     string `json:"contact"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Symptoms    string `json:"symptoms"`
	DoctorName  string `json:"doctor"`
}

// Column order of the appointments CSV file.
var AppointmentHeader = []string{"Patient_Name", "Age", "Contact", "Date", "Time", "Symptoms", "Doctor"}

func (a Appointment) Row() []string {
	return []string{
		a.PatientName,
		strconv.Itoa(a.Age),
		a.Contact,
		a.Date,
		a.Time,
		a.Symptoms,
		a.DoctorName,
	}
}

// AppointmentFromRow maps one CSV row back to an Appointment.
func AppointmentFromRow(row []string) (Appointment, error) {
	if len(row) != len(AppointmentHeader) {
		return Appointment{}, fmt.Errorf("expected %d columns, got %d", len(AppointmentHeader), len(row))
	}
	age, err := strconv.Atoi(row[1])
	if err != nil {
		return Appointment{}, err
	}
	return Appointment{
		PatientName: row[0],
		Age:         age,
		Contact:     row[2],
		Date:        row[3],
		Time:        row[4],
		Symptoms:    row[5],
		DoctorName:  row[6],
	}, nil
}
