package demand

const (
	// HotWaterPerOccupantKWh is the annual hot-water heat demand per person.
	HotWaterPerOccupantKWh = 500.0
	// ShowersPerOccupant is the daily shower count the per-occupant figure assumes.
	ShowersPerOccupant = 0.7

	minShowerScale = 0.6
	maxShowerScale = 2.0
)

// EstimateHotWater returns the annual hot-water heat demand in kWh.
// showersPerDay <= 0 means the frequency is unknown and no scaling applies.
func EstimateHotWater(occupants int, showersPerDay float64) float64 {
	if occupants < 1 {
		occupants = 1
	}
	demand := float64(occupants) * HotWaterPerOccupantKWh
	if showersPerDay <= 0 {
		return demand
	}
	return demand * ShowerScale(occupants, showersPerDay)
}

// ShowerScale relates the declared shower frequency to the assumed one,
// bounded to [0.6, 2.0] against implausible answers.
func ShowerScale(occupants int, showersPerDay float64) float64 {
	if occupants < 1 {
		occupants = 1
	}
	scale := showersPerDay / (float64(occupants) * ShowersPerOccupant)
	if scale < minShowerScale {
		return minShowerScale
	}
	if scale > maxShowerScale {
		return maxShowerScale
	}
	return scale
}
