// Package catalog loads the static doctor directory at startup and serves
// it read-only for the life of the process.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Iwan2264/HMS/models"
)

type Catalog struct {
	doctors []models.Doctor
}

// Load reads the doctor source file. The process cannot serve without a
// catalog, so callers treat any error here as fatal.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading doctor source %s: %w", path, err)
	}

	var doctors []models.Doctor
	if err := json.Unmarshal(data, &doctors); err != nil {
		return nil, fmt.Errorf("parsing doctor source %s: %w", path, err)
	}
	return &Catalog{doctors: doctors}, nil
}

// Doctors returns every record in source order.
func (c *Catalog) Doctors() []models.Doctor {
	return c.doctors
}

// FindByID returns the doctor with the given id, if any.
func (c *Catalog) FindByID(id string) (models.Doctor, bool) {
	for _, d := range c.doctors {
		if d.ID == id {
			return d, true
		}
	}
	return models.Doctor{}, false
}
