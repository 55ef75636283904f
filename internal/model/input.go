package model

// Input is the flat questionnaire record handed over by the wizard. Optional
// numbers are pointers so "not answered" stays distinguishable from zero.
// Enumerated answers are free strings here and become typed values in
// simulator.Normalize.
type Input struct {
	// Building
	PostalCode   string   `json:"postal_code" yaml:"postal_code"`
	AreaM2       *float64 `json:"area_m2,omitempty" yaml:"area_m2"`
	BuildingType string   `json:"building_type" yaml:"building_type"`
	YearBracket  string   `json:"year_bracket" yaml:"year_bracket"`
	Renovations  []string `json:"renovations,omitempty" yaml:"renovations"`
	Occupants    *int     `json:"occupants,omitempty" yaml:"occupants"`

	// Equipment
	Emitter            string   `json:"emitter" yaml:"emitter"`
	RadiatorCondition  string   `json:"radiator_condition,omitempty" yaml:"radiator_condition"`
	HeatPumpRadiators  string   `json:"heat_pump_radiators,omitempty" yaml:"heat_pump_radiators"`
	HydraulicBalancing string   `json:"hydraulic_balancing" yaml:"hydraulic_balancing"`
	BufferTank         string   `json:"buffer_tank" yaml:"buffer_tank"`
	FlowTempC          *float64 `json:"flow_temp_c,omitempty" yaml:"flow_temp_c"`

	// Advanced
	TargetRoomTempC *float64 `json:"target_room_temp_c,omitempty" yaml:"target_room_temp_c"`
	AutoControllers string   `json:"auto_controllers,omitempty" yaml:"auto_controllers"`
	ShowersPerDay   *float64 `json:"showers_per_day,omitempty" yaml:"showers_per_day"`

	// Consumption
	HasConsumption bool     `json:"has_consumption" yaml:"has_consumption"`
	MeteredKWh     *float64 `json:"metered_kwh,omitempty" yaml:"metered_kwh"`
	BillingStart   string   `json:"billing_start,omitempty" yaml:"billing_start"` // YYYY-MM-DD
	BillingEnd     string   `json:"billing_end,omitempty" yaml:"billing_end"`
	ProducedKWh    *float64 `json:"produced_kwh,omitempty" yaml:"produced_kwh"`
	PriceCtPerKWh  *float64 `json:"price_ct_per_kwh,omitempty" yaml:"price_ct_per_kwh"`

	AuxHeater *AuxHeaterInput `json:"aux_heater,omitempty" yaml:"aux_heater"`
	PV        *PVInput        `json:"pv,omitempty" yaml:"pv"`
}

type AuxHeaterInput struct {
	Present        string   `json:"present" yaml:"present"`
	RatedPowerKW   *float64 `json:"rated_power_kw,omitempty" yaml:"rated_power_kw"`
	OperatingHours *float64 `json:"operating_hours,omitempty" yaml:"operating_hours"`
	Mode           string   `json:"mode,omitempty" yaml:"mode"`
}

type PVInput struct {
	Present            string   `json:"present" yaml:"present"`
	CapacityKWp        *float64 `json:"capacity_kwp,omitempty" yaml:"capacity_kwp"`
	Orientation        string   `json:"orientation,omitempty" yaml:"orientation"`
	HasBattery         string   `json:"has_battery,omitempty" yaml:"has_battery"`
	BatteryCapacityKWh *float64 `json:"battery_capacity_kwh,omitempty" yaml:"battery_capacity_kwh"`
}
