package model

import "strings"

// TriState is the yes/no/unknown answer used throughout the questionnaire.
type TriState string

const (
	Yes     TriState = "yes"
	No      TriState = "no"
	Unknown TriState = "unknown"
)

// ParseTriState maps free text to a TriState. Anything unrecognized is Unknown.
func ParseTriState(s string) TriState {
	switch normalize(s) {
	case "yes", "true", "1":
		return Yes
	case "no", "false", "0":
		return No
	default:
		return Unknown
	}
}

type BuildingType string

const (
	BuildingNew      BuildingType = "new"
	BuildingExisting BuildingType = "existing"
)

// ParseBuildingType defaults to BuildingExisting.
func ParseBuildingType(s string) BuildingType {
	if normalize(s) == string(BuildingNew) {
		return BuildingNew
	}
	return BuildingExisting
}

// YearBracket is the construction-year bucket of a building.
type YearBracket string

const (
	YearBefore1960 YearBracket = "before_1960"
	Year1960To1978 YearBracket = "1960_1978"
	Year1979To1994 YearBracket = "1979_1994"
	Year1995To2001 YearBracket = "1995_2001"
	Year2002To2015 YearBracket = "2002_2015"
	YearAfter2015  YearBracket = "after_2015"
	YearUnknown    YearBracket = "unknown"
)

// YearBrackets lists the known brackets, oldest first.
var YearBrackets = []YearBracket{
	YearBefore1960, Year1960To1978, Year1979To1994, Year1995To2001, Year2002To2015, YearAfter2015,
}

// ParseYearBracket returns YearUnknown for anything that is not a known token.
func ParseYearBracket(s string) YearBracket {
	v := YearBracket(normalize(s))
	for _, b := range YearBrackets {
		if v == b {
			return b
		}
	}
	return YearUnknown
}

// Renovation is a completed building-envelope measure.
type Renovation string

const (
	RenovationRoof            Renovation = "roof"
	RenovationWindows         Renovation = "windows"
	RenovationFacade          Renovation = "facade"
	RenovationBasementCeiling Renovation = "basement_ceiling"
)

// Renovations lists every envelope measure in display order.
var Renovations = []Renovation{
	RenovationRoof, RenovationWindows, RenovationFacade, RenovationBasementCeiling,
}

// ParseRenovations keeps known tokens, drops duplicates and preserves the
// canonical order of Renovations.
func ParseRenovations(in []string) []Renovation {
	seen := make(map[Renovation]bool, len(in))
	for _, s := range in {
		seen[Renovation(normalize(s))] = true
	}
	var out []Renovation
	for _, r := range Renovations {
		if seen[r] {
			out = append(out, r)
		}
	}
	return out
}

// Label returns a human-readable name for the measure.
func (r Renovation) Label() string {
	switch r {
	case RenovationRoof:
		return "roof / top floor ceiling insulation"
	case RenovationWindows:
		return "window replacement"
	case RenovationFacade:
		return "facade insulation"
	case RenovationBasementCeiling:
		return "basement ceiling insulation"
	default:
		return string(r)
	}
}

type Emitter string

const (
	EmitterUnderfloor Emitter = "underfloor"
	EmitterRadiator   Emitter = "radiator"
)

// ParseEmitter defaults to EmitterRadiator.
func ParseEmitter(s string) Emitter {
	if normalize(s) == string(EmitterUnderfloor) {
		return EmitterUnderfloor
	}
	return EmitterRadiator
}

type RadiatorCondition string

const (
	RadiatorLegacy    RadiatorCondition = "legacy"
	RadiatorRenovated RadiatorCondition = "renovated"
)

// ParseRadiatorCondition defaults to RadiatorLegacy.
func ParseRadiatorCondition(s string) RadiatorCondition {
	if normalize(s) == string(RadiatorRenovated) {
		return RadiatorRenovated
	}
	return RadiatorLegacy
}

// AuxMode describes when the resistive backup heater runs.
type AuxMode string

const (
	AuxEmergency AuxMode = "emergency"
	AuxParallel  AuxMode = "parallel"
	AuxUnknown   AuxMode = "unknown"
)

func ParseAuxMode(s string) AuxMode {
	switch AuxMode(normalize(s)) {
	case AuxEmergency:
		return AuxEmergency
	case AuxParallel:
		return AuxParallel
	default:
		return AuxUnknown
	}
}

// PVPresence is whether a photovoltaic system exists.
type PVPresence string

const (
	PVYes     PVPresence = "yes"
	PVNo      PVPresence = "no"
	PVPlanned PVPresence = "planned"
)

func ParsePVPresence(s string) PVPresence {
	switch PVPresence(normalize(s)) {
	case PVYes:
		return PVYes
	case PVPlanned:
		return PVPlanned
	default:
		return PVNo
	}
}

type Orientation string

const (
	OrientationSouth     Orientation = "south"
	OrientationSouthEast Orientation = "south_east"
	OrientationSouthWest Orientation = "south_west"
	OrientationEast      Orientation = "east"
	OrientationWest      Orientation = "west"
	OrientationEastWest  Orientation = "east_west"
	OrientationNorth     Orientation = "north"
)

// ParseOrientation defaults to south.
func ParseOrientation(s string) Orientation {
	v := Orientation(strings.ReplaceAll(normalize(s), "-", "_"))
	switch v {
	case OrientationSouthEast, OrientationSouthWest, OrientationEast,
		OrientationWest, OrientationEastWest, OrientationNorth:
		return v
	default:
		return OrientationSouth
	}
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank orders priorities: high first.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// Category groups recommendations and scenario interventions.
type Category string

const (
	CategoryAuxHeater          Category = "auxiliary_heater"
	CategoryPhotovoltaics      Category = "photovoltaics"
	CategoryFlowTemperature    Category = "flow_temperature"
	CategoryEmitters           Category = "emitters"
	CategoryHydraulicBalancing Category = "hydraulic_balancing"
	CategoryRoomTemperature    Category = "room_temperature"
	CategoryControls           Category = "controls"
	CategoryHotWater           Category = "hot_water"
	CategoryBuildingEnvelope   Category = "building_envelope"
	CategoryBufferTank         Category = "buffer_tank"
	CategoryMaintenance        Category = "maintenance"
	CategoryEnergyAudit        Category = "energy_audit"
)

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
