package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTriState(t *testing.T) {
	tests := []struct {
		in       string
		expected TriState
	}{
		{"yes", Yes},
		{" YES ", Yes},
		{"true", Yes},
		{"no", No},
		{"0", No},
		{"", Unknown},
		{"maybe", Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseTriState(tt.in))
		})
	}
}

func TestParseDefaults(t *testing.T) {
	assert.Equal(t, BuildingExisting, ParseBuildingType("castle"))
	assert.Equal(t, BuildingNew, ParseBuildingType("NEW"))
	assert.Equal(t, YearUnknown, ParseYearBracket("1900"))
	assert.Equal(t, Year1995To2001, ParseYearBracket("1995_2001"))
	assert.Equal(t, EmitterRadiator, ParseEmitter(""))
	assert.Equal(t, RadiatorLegacy, ParseRadiatorCondition("unknown"))
	assert.Equal(t, AuxUnknown, ParseAuxMode("sometimes"))
	assert.Equal(t, AuxEmergency, ParseAuxMode("Emergency"))
	assert.Equal(t, PVNo, ParsePVPresence(""))
	assert.Equal(t, PVPlanned, ParsePVPresence("planned"))
	assert.Equal(t, OrientationSouth, ParseOrientation("up"))
	assert.Equal(t, OrientationEastWest, ParseOrientation("East-West"))
}

func TestParseRenovations(t *testing.T) {
	got := ParseRenovations([]string{"Basement_Ceiling", "windows", "sauna", "windows"})
	assert.Equal(t, []Renovation{RenovationWindows, RenovationBasementCeiling}, got)
	assert.Nil(t, ParseRenovations(nil))
}

func TestBuilding_Renovations(t *testing.T) {
	b := Building{Renovations: []Renovation{RenovationRoof, RenovationWindows}}
	assert.True(t, b.Has(RenovationRoof))
	assert.False(t, b.Has(RenovationFacade))
	assert.Equal(t, []Renovation{RenovationFacade, RenovationBasementCeiling}, b.MissingRenovations())

	all := Building{Renovations: Renovations}
	assert.Empty(t, all.MissingRenovations())
	assert.Equal(t, "facade insulation", RenovationFacade.Label())
}

func TestHeatPump_LegacyRadiators(t *testing.T) {
	tests := []struct {
		name     string
		hp       HeatPump
		expected bool
	}{
		{"legacy radiators", HeatPump{Emitter: EmitterRadiator, RadiatorCondition: RadiatorLegacy}, true},
		{"renovated", HeatPump{Emitter: EmitterRadiator, RadiatorCondition: RadiatorRenovated}, false},
		{"heat-pump radiators", HeatPump{Emitter: EmitterRadiator, RadiatorCondition: RadiatorLegacy, HeatPumpRadiators: Yes}, false},
		{"underfloor", HeatPump{Emitter: EmitterUnderfloor, RadiatorCondition: RadiatorLegacy}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.hp.LegacyRadiators())
		})
	}
}

func TestPriority_Rank(t *testing.T) {
	assert.Less(t, PriorityHigh.Rank(), PriorityMedium.Rank())
	assert.Less(t, PriorityMedium.Rank(), PriorityLow.Rank())
	assert.Equal(t, PriorityLow.Rank(), Priority("other").Rank())
}

func TestSimulationResult_ConsumptionBasis(t *testing.T) {
	assert.Equal(t, 5000.0, SimulationResult{SimulatedKWh: 4000, ActualKWh: 5000}.ConsumptionBasis())
	assert.Equal(t, 4000.0, SimulationResult{SimulatedKWh: 4000, ActualKWh: 3000}.ConsumptionBasis())
}
