package model

// ScoreNotApplicable marks a comparability score when no metered reading was
// supplied. It is distinct from a real score of zero.
const ScoreNotApplicable = -1

// SimulationResult aggregates everything derived from one Profile.
type SimulationResult struct {
	Climate ClimateProfile `json:"climate"`

	FlowTempC      float64 `json:"flow_temp_c"`
	HeatingFactor  float64 `json:"heating_factor"`
	HotWaterFactor float64 `json:"hot_water_factor"`
	SystemFactor   float64 `json:"system_factor"`
	// MeasuredFactor is produced heat / actual consumption; 0 without a heat meter reading.
	MeasuredFactor float64 `json:"measured_factor,omitempty"`

	SpecificDemandKWhM2 float64 `json:"specific_demand_kwh_m2"`
	HeatingDemandKWh    float64 `json:"heating_demand_kwh"`
	HotWaterDemandKWh   float64 `json:"hot_water_demand_kwh"`
	TotalHeatDemandKWh  float64 `json:"total_heat_demand_kwh"`

	SimulatedKWh       float64 `json:"simulated_kwh"`
	ActualKWh          float64 `json:"actual_kwh"`
	HasActual          bool    `json:"has_actual"`
	BillingDays        int     `json:"billing_days"`
	IsPartialPeriod    bool    `json:"is_partial_period"`
	DeviationPercent   float64 `json:"deviation_percent"`
	ComparabilityScore int     `json:"comparability_score"`

	Cost      CostAnalysis       `json:"cost"`
	AuxHeater *AuxHeaterAnalysis `json:"aux_heater,omitempty"`
	PV        *PVAnalysis        `json:"pv,omitempty"`

	Recommendations []Recommendation `json:"recommendations"`
	Funding         []FundingProgram `json:"funding"`
}

// ConsumptionBasis is the electricity figure analyses are based on: the
// larger of actual and simulated consumption.
func (r SimulationResult) ConsumptionBasis() float64 {
	if r.ActualKWh > r.SimulatedKWh {
		return r.ActualKWh
	}
	return r.SimulatedKWh
}

// CostAnalysis compares the annual running cost of the heat pump.
type CostAnalysis struct {
	PricePerKWh         float64 `json:"price_per_kwh"`
	SimulatedAnnualCost float64 `json:"simulated_annual_cost"`
	ActualAnnualCost    float64 `json:"actual_annual_cost"`
	DifferenceCost      float64 `json:"difference_cost"`
	GasReferenceCost    float64 `json:"gas_reference_cost"`
	SavingsVsGas        float64 `json:"savings_vs_gas"`
}

type AuxRating string

const (
	AuxRatingGood       AuxRating = "good"
	AuxRatingNoticeable AuxRating = "noticeable"
	AuxRatingCritical   AuxRating = "critical"
)

// AuxHeaterAnalysis is the penalty attributable to a resistive backup heater.
type AuxHeaterAnalysis struct {
	RatedPowerKW     float64   `json:"rated_power_kw"`
	OperatingHours   float64   `json:"operating_hours"`
	HoursEstimated   bool      `json:"hours_estimated"`
	ElectricityKWh   float64   `json:"electricity_kwh"`
	HeatKWh          float64   `json:"heat_kwh"`
	Share            float64   `json:"share"`
	FactorWithAux    float64   `json:"factor_with_aux"`
	FactorWithoutAux float64   `json:"factor_without_aux"`
	Rating           AuxRating `json:"rating"`
	ExtraAnnualCost  float64   `json:"extra_annual_cost"`
	AvoidableKWh     float64   `json:"avoidable_kwh"`
}

// PVMonth is one month of the PV overlap breakdown.
type PVMonth struct {
	Month              int     `json:"month"`
	YieldKWh           float64 `json:"yield_kwh"`
	HeatPumpKWh        float64 `json:"heat_pump_kwh"`
	SelfConsumptionKWh float64 `json:"self_consumption_kwh"`
}

// PVAnalysis is the photovoltaic overlap with heat-pump consumption.
type PVAnalysis struct {
	CapacityKWp          float64   `json:"capacity_kwp"`
	OverlapFraction      float64   `json:"overlap_fraction"`
	AnnualYieldKWh       float64   `json:"annual_yield_kwh"`
	SelfConsumptionKWh   float64   `json:"self_consumption_kwh"`
	SelfConsumptionShare float64   `json:"self_consumption_share"`
	AnnualSavings        float64   `json:"annual_savings"`
	Months               []PVMonth `json:"months"`
}

type Recommendation struct {
	Category      Category `json:"category"`
	Title         string   `json:"title"`
	Impact        string   `json:"impact"`
	Priority      Priority `json:"priority"`
	Prerequisites []string `json:"prerequisites,omitempty"`
	Context       string   `json:"context,omitempty"`
}

// Intervention is one entry of the intervention cost catalog. Savings are
// normalized to a 120 m² reference house.
type Intervention struct {
	ID                    string   `json:"id" yaml:"id"`
	Label                 string   `json:"label" yaml:"label"`
	CostMin               float64  `json:"cost_min" yaml:"cost_min"`
	CostMax               float64  `json:"cost_max" yaml:"cost_max"`
	Unit                  string   `json:"unit" yaml:"unit"`
	EfficiencyGainPercent float64  `json:"efficiency_gain_percent" yaml:"efficiency_gain_percent"`
	BaselineKWhSavings    float64  `json:"baseline_kwh_savings" yaml:"baseline_kwh_savings"`
	Category              Category `json:"category" yaml:"category"`
}

// InterventionResult is the per-intervention share of a scenario.
type InterventionResult struct {
	ID          string  `json:"id"`
	Label       string  `json:"label"`
	CostMin     float64 `json:"cost_min"`
	CostMax     float64 `json:"cost_max"`
	KWhSavings  float64 `json:"kwh_savings"`
	EuroSavings float64 `json:"euro_savings"`
	// GainPercent is the marginal contribution after diminishing returns.
	GainPercent float64 `json:"gain_percent"`
}

type ScenarioResult struct {
	CostMin                 float64              `json:"cost_min"`
	CostMax                 float64              `json:"cost_max"`
	CostMid                 float64              `json:"cost_mid"`
	TotalKWhSavings         float64              `json:"total_kwh_savings"`
	TotalEuroSavings        float64              `json:"total_euro_savings"`
	AggregateGainPercent    float64              `json:"aggregate_gain_percent"`
	ProjectedFactor         float64              `json:"projected_factor"`
	ProjectedConsumptionKWh float64              `json:"projected_consumption_kwh"`
	PaybackYears            float64              `json:"payback_years"`
	Breakdown               []InterventionResult `json:"breakdown"`
}

type FundingProgram struct {
	Program            string   `json:"program"`
	Measure            string   `json:"measure"`
	SubsidyRatePercent float64  `json:"subsidy_rate_percent"`
	CapAmount          *float64 `json:"cap_amount,omitempty"`
	HasBonus           bool     `json:"has_bonus"`
	Note               string   `json:"note"`
	Link               string   `json:"link"`
}
