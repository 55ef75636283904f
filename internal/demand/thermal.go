package demand

import (
	"heatpump_check/internal/climate"
	"heatpump_check/internal/model"
)

// Specific demand floors in kWh/m²·year.
const (
	FloorNew      = 35.0
	FloorExisting = 45.0
)

// RoomTempSensitivity is the relative demand change per °C of target room
// temperature above or below ReferenceRoomTempC.
const (
	RoomTempSensitivity = 0.06
	ReferenceRoomTempC  = 20.0
	ControllerFactor    = 0.95
)

// Heating is the annual space-heating demand of a building.
type Heating struct {
	SpecificKWhM2 float64 // kWh/m²·year
	AbsoluteKWh   float64 // kWh/year
}

// BaseSpecificDemand returns the unrenovated specific demand (kWh/m²·year)
// of an existing building by construction year.
func BaseSpecificDemand(bracket model.YearBracket) float64 {
	switch bracket {
	case model.YearBefore1960:
		return 180
	case model.Year1960To1978:
		return 160
	case model.Year1979To1994:
		return 130
	case model.Year1995To2001:
		return 100
	case model.Year2002To2015:
		return 75
	case model.YearAfter2015:
		return 50
	default:
		return 130
	}
}

// NewBuildSpecificDemand returns the specific demand of a building declared
// as a new build. These override the construction-year table.
func NewBuildSpecificDemand(bracket model.YearBracket) float64 {
	switch bracket {
	case model.YearBefore1960, model.Year1960To1978:
		return 60
	case model.Year1979To1994:
		return 55
	case model.Year1995To2001:
		return 50
	case model.Year2002To2015:
		return 45
	case model.YearAfter2015:
		return 35
	default:
		return 40
	}
}

// RenovationDelta is the specific-demand reduction (kWh/m²·year) of a
// completed envelope measure.
func RenovationDelta(r model.Renovation) float64 {
	switch r {
	case model.RenovationRoof:
		return 20
	case model.RenovationWindows:
		return 18
	case model.RenovationFacade:
		return 35
	case model.RenovationBasementCeiling:
		return 12
	default:
		return 0
	}
}

// Floor returns the minimum specific demand for the building type.
func Floor(t model.BuildingType) float64 {
	if t == model.BuildingNew {
		return FloorNew
	}
	return FloorExisting
}

// RoomTempFactor scales demand by ~6% per °C of target room temperature.
func RoomTempFactor(targetC float64) float64 {
	return 1 + (targetC-ReferenceRoomTempC)*RoomTempSensitivity
}

// EstimateHeating derives specific and absolute space-heating demand.
//
// Renovation deltas only apply to existing buildings. The type floor is
// applied to the final specific value, after climate, room temperature and
// controller scaling.
func EstimateHeating(b model.Building, cp model.ClimateProfile) Heating {
	var specific float64
	if b.Type == model.BuildingNew {
		specific = NewBuildSpecificDemand(b.YearBracket)
	} else {
		specific = BaseSpecificDemand(b.YearBracket)
		for _, r := range b.Renovations {
			specific -= RenovationDelta(r)
		}
	}

	specific *= climate.Factor(cp)
	specific *= RoomTempFactor(b.TargetRoomTempC)
	if b.HasAutoControllers {
		specific *= ControllerFactor
	}

	if floor := Floor(b.Type); specific < floor {
		specific = floor
	}

	return Heating{
		SpecificKWhM2: specific,
		AbsoluteKWh:   specific * b.AreaM2,
	}
}
