package demand

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"heatpump_check/internal/climate"
	"heatpump_check/internal/model"
)

func existing(bracket model.YearBracket, renovations ...model.Renovation) model.Building {
	return model.Building{
		AreaM2:          140,
		Type:            model.BuildingExisting,
		YearBracket:     bracket,
		Renovations:     renovations,
		Occupants:       3,
		TargetRoomTempC: 20,
	}
}

func TestEstimateHeating_NewBuildMildClimate(t *testing.T) {
	b := model.Building{
		AreaM2:          150,
		Type:            model.BuildingNew,
		YearBracket:     model.YearAfter2015,
		Occupants:       4,
		TargetRoomTempC: 20,
	}
	mild := climate.Lookup("50667")
	assert.Less(t, climate.Factor(mild), 1.0)

	h := EstimateHeating(b, mild)
	assert.InDelta(t, 35, h.SpecificKWhM2, 1e-9)
	assert.InDelta(t, 35*150, h.AbsoluteKWh, 1e-6)
}

func TestEstimateHeating_UnrenovatedPre1960(t *testing.T) {
	h := EstimateHeating(existing(model.YearBefore1960), climate.Fallback())
	assert.InDelta(t, 180, h.SpecificKWhM2, 1e-9)
	assert.InDelta(t, 180*140, h.AbsoluteKWh, 1e-6)
}

func TestEstimateHeating_AllRenovations(t *testing.T) {
	for _, bracket := range append(model.YearBrackets, model.YearUnknown) {
		t.Run(string(bracket), func(t *testing.T) {
			base := EstimateHeating(existing(bracket), climate.Fallback())
			renovated := EstimateHeating(existing(bracket, model.Renovations...), climate.Fallback())

			assert.GreaterOrEqual(t, renovated.SpecificKWhM2, FloorExisting)
			if base.SpecificKWhM2 > FloorExisting {
				assert.Less(t, renovated.SpecificKWhM2, base.SpecificKWhM2)
			}
		})
	}
}

func TestEstimateHeating_RenovationsAreAdditive(t *testing.T) {
	h := EstimateHeating(existing(model.YearBefore1960, model.RenovationRoof, model.RenovationWindows), climate.Fallback())
	assert.InDelta(t, 180-20-18, h.SpecificKWhM2, 1e-9)
}

func TestEstimateHeating_RenovationsIgnoredForNewBuild(t *testing.T) {
	b := existing(model.Year2002To2015, model.RenovationFacade)
	b.Type = model.BuildingNew
	h := EstimateHeating(b, climate.Fallback())
	assert.InDelta(t, 45, h.SpecificKWhM2, 1e-9)
}

func TestEstimateHeating_RoomTemperatureAndControllers(t *testing.T) {
	b := existing(model.Year1960To1978)
	b.TargetRoomTempC = 22
	h := EstimateHeating(b, climate.Fallback())
	assert.InDelta(t, 160*1.12, h.SpecificKWhM2, 1e-9)

	b.HasAutoControllers = true
	h = EstimateHeating(b, climate.Fallback())
	assert.InDelta(t, 160*1.12*0.95, h.SpecificKWhM2, 1e-9)
}

func TestEstimateHeating_ColdClimateScalesUp(t *testing.T) {
	b := existing(model.Year1979To1994)
	cold := EstimateHeating(b, climate.Lookup("95028"))
	avg := EstimateHeating(b, climate.Fallback())
	assert.Greater(t, cold.SpecificKWhM2, avg.SpecificKWhM2)
}

func TestFloor(t *testing.T) {
	assert.Equal(t, 35.0, Floor(model.BuildingNew))
	assert.Equal(t, 45.0, Floor(model.BuildingExisting))
}

func TestEstimateHotWater(t *testing.T) {
	tests := []struct {
		name      string
		occupants int
		showers   float64
		expected  float64
	}{
		{"no shower data", 3, 0, 1500},
		{"typical frequency", 2, 1.4, 1000},
		{"double frequency", 2, 2.8, 2000},
		{"capped high", 2, 10, 2000},
		{"capped low", 4, 0.5, 1200},
		{"zero occupants treated as one", 0, 0, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, EstimateHotWater(tt.occupants, tt.showers), 1e-6)
		})
	}
}
