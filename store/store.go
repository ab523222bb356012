// Package store persists appointment bookings in an append-only CSV file.
package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/Iwan2264/HMS/models"
)

// AppointmentStore appends bookings to a CSV file and reads them back in
// insertion order. Appends are serialized behind a mutex so concurrent
// sessions cannot interleave rows.
type AppointmentStore struct {
	path string
	mu   sync.Mutex
}

func New(path string) *AppointmentStore {
	return &AppointmentStore{path: path}
}

// Append writes one booking as one CSV row, writing the header row only
// when the file does not exist yet. Commas in the symptoms text are
// replaced with semicolons so the field never needs quoting for that
// reason.
func (s *AppointmentStore) Append(a models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a.Symptoms = strings.ReplaceAll(a.Symptoms, ",", ";")

	_, statErr := os.Stat(s.path)
	writeHeader := os.IsNotExist(statErr)

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening appointment store: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(models.AppointmentHeader); err != nil {
			return fmt.Errorf("writing appointment header: %w", err)
		}
	}
	if err := w.Write(a.Row()); err != nil {
		return fmt.Errorf("writing appointment row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing appointment store: %w", err)
	}
	return nil
}

// ReadAll returns every booking oldest-first. A store file that does not
// exist yet is an empty store, not an error.
func (s *AppointmentStore) ReadAll() ([]models.Appointment, error) {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening appointment store: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing appointment store: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	// First row is the header.
	appointments := make([]models.Appointment, 0, len(rows)-1)
	for _, row := range rows[1:] {
		a, err := models.AppointmentFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("parsing appointment row: %w", err)
		}
		appointments = append(appointments, a)
	}
	return appointments, nil
}
