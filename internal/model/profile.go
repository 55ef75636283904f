package model

import "time"

// ClimateProfile describes the local heating climate of a postal region.
type ClimateProfile struct {
	Prefix            string  `json:"prefix"`
	HeatingDegreeDays float64 `json:"heating_degree_days"`
	DesignOutdoorC    float64 `json:"design_outdoor_c"`
	AvgOutdoorC       float64 `json:"avg_outdoor_c"`
	Region            string  `json:"region"`
}

// Profile is the validated, fully defaulted engine input. Every field holds a
// usable value; optional blocks are nil when not declared.
type Profile struct {
	PostalCode  string
	Building    Building
	HeatPump    HeatPump
	AuxHeater   *AuxHeater
	PV          *PV
	Consumption *Consumption
	// PricePerKWh is the retail electricity price in EUR/kWh.
	PricePerKWh float64
}

type Building struct {
	AreaM2             float64
	Type               BuildingType
	YearBracket        YearBracket
	Renovations        []Renovation
	Occupants          int
	TargetRoomTempC    float64
	HasAutoControllers bool
	// ShowersPerDay is 0 when the question was not answered.
	ShowersPerDay float64
}

// Has reports whether the renovation was carried out.
func (b Building) Has(r Renovation) bool {
	for _, done := range b.Renovations {
		if done == r {
			return true
		}
	}
	return false
}

// MissingRenovations returns the envelope measures not yet carried out.
func (b Building) MissingRenovations() []Renovation {
	var out []Renovation
	for _, r := range Renovations {
		if !b.Has(r) {
			out = append(out, r)
		}
	}
	return out
}

type HeatPump struct {
	FlowTempC float64
	// FlowTempDeclared is false when FlowTempC was derived from the emitter.
	FlowTempDeclared   bool
	Emitter            Emitter
	RadiatorCondition  RadiatorCondition
	HeatPumpRadiators  TriState
	HydraulicBalancing TriState
	BufferTank         bool
}

// LegacyRadiators reports radiators that are neither renovated nor heat-pump specific.
func (h HeatPump) LegacyRadiators() bool {
	return h.Emitter == EmitterRadiator && h.RadiatorCondition == RadiatorLegacy && h.HeatPumpRadiators != Yes
}

type AuxHeater struct {
	Present      TriState
	RatedPowerKW float64
	// OperatingHours is 0 when unknown and must be derived from Mode.
	OperatingHours float64
	Mode           AuxMode
}

type PV struct {
	Present            PVPresence
	CapacityKWp        float64
	Orientation        Orientation
	HasBattery         bool
	BatteryCapacityKWh float64
}

type Consumption struct {
	MeteredKWh float64
	// BillingStart and BillingEnd are zero when not supplied.
	BillingStart time.Time
	BillingEnd   time.Time
	ProducedKWh  float64
}
