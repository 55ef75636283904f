package ingest

import (
	"io"
	"time"
)

// MeterReading is one row of a meter export: cumulative counters at a date.
type MeterReading struct {
	Date     time.Time
	MeterKWh float64
	// HeatKWh is the heat meter counter; HasHeat is false when the column
	// is absent or empty.
	HeatKWh float64
	HasHeat bool
}

// Parser reads meter data from a source and returns readings.
type Parser interface {
	Parse(r io.Reader) ([]MeterReading, error)
}
