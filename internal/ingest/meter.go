package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"heatpump_check/internal/model"
)

const dateLayout = "2006-01-02"

// ErrTooFewReadings is returned when a meter export does not span a period.
var ErrTooFewReadings = errors.New("at least two meter readings are required")

// MeterParser parses electricity (and optionally heat) meter exports.
//
// Expected format:
//
//	date,meter_kwh,heat_kwh
//	2024-01-01,12034.5,40110
//
// The heat_kwh column is optional. Values are cumulative counter states.
type MeterParser struct{}

func NewMeterParser() *MeterParser {
	return &MeterParser{}
}

func (p *MeterParser) Parse(r io.Reader) ([]MeterReading, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}
	if err := validateHeader(header); err != nil {
		return nil, err
	}

	var readings []MeterReading
	lineNum := 1

	for {
		lineNum++
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV line %d: %w", lineNum, err)
		}

		reading, err := parseRecord(record, lineNum)
		if err != nil {
			// Skip rows without a usable counter value
			continue
		}
		readings = append(readings, reading)
	}

	sort.Slice(readings, func(i, j int) bool {
		return readings[i].Date.Before(readings[j].Date)
	})
	return readings, nil
}

func validateHeader(header []string) error {
	if len(header) < 2 {
		return fmt.Errorf("expected at least 2 columns, got %d", len(header))
	}

	expected := []string{"date", "meter_kwh", "heat_kwh"}
	for i, col := range header {
		if i >= len(expected) {
			break
		}
		if strings.TrimSpace(strings.ToLower(col)) != expected[i] {
			return fmt.Errorf("expected column %d to be %q, got %q", i, expected[i], col)
		}
	}
	return nil
}

func parseRecord(record []string, lineNum int) (MeterReading, error) {
	if len(record) < 2 {
		return MeterReading{}, fmt.Errorf("line %d: expected at least 2 fields, got %d", lineNum, len(record))
	}

	date, err := time.Parse(dateLayout, strings.TrimSpace(record[0]))
	if err != nil {
		return MeterReading{}, fmt.Errorf("line %d: parsing date %q: %w", lineNum, record[0], err)
	}

	meter, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
	if err != nil {
		return MeterReading{}, fmt.Errorf("line %d: parsing meter value %q: %w", lineNum, record[1], err)
	}

	reading := MeterReading{Date: date, MeterKWh: meter}
	if len(record) > 2 && strings.TrimSpace(record[2]) != "" {
		heat, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil {
			return MeterReading{}, fmt.Errorf("line %d: parsing heat value %q: %w", lineNum, record[2], err)
		}
		reading.HeatKWh = heat
		reading.HasHeat = true
	}
	return reading, nil
}

// ToConsumption turns date-sorted counter states into a consumption record
// spanning the first to the last reading. Heat is reported only when both
// end points carry a heat counter.
func ToConsumption(readings []MeterReading) (model.Consumption, error) {
	if len(readings) < 2 {
		return model.Consumption{}, ErrTooFewReadings
	}

	first, last := readings[0], readings[len(readings)-1]
	used := last.MeterKWh - first.MeterKWh
	if used <= 0 {
		return model.Consumption{}, fmt.Errorf("meter did not advance between %s and %s (%.1f kWh)",
			first.Date.Format(dateLayout), last.Date.Format(dateLayout), used)
	}

	c := model.Consumption{
		MeteredKWh:   used,
		BillingStart: first.Date,
		BillingEnd:   last.Date,
	}
	if first.HasHeat && last.HasHeat && last.HeatKWh > first.HeatKWh {
		c.ProducedKWh = last.HeatKWh - first.HeatKWh
	}
	return c, nil
}

// ApplyConsumption copies a meter-derived record into questionnaire input.
func ApplyConsumption(in *model.Input, c model.Consumption) {
	metered := c.MeteredKWh
	in.HasConsumption = true
	in.MeteredKWh = &metered
	in.BillingStart = c.BillingStart.Format(dateLayout)
	in.BillingEnd = c.BillingEnd.Format(dateLayout)
	if c.ProducedKWh > 0 {
		produced := c.ProducedKWh
		in.ProducedKWh = &produced
	}
}
