package recommend

import (
	"fmt"
	"math"
	"strings"

	"heatpump_check/internal/efficiency"
	"heatpump_check/internal/model"
	"heatpump_check/internal/solar"
)

const (
	// PVConsumptionThreshold is the annual consumption above which a PV
	// system is worth suggesting.
	PVConsumptionThreshold = 3000.0

	UnderfloorTargetC   = 35.0
	RadiatorTargetC     = 45.0
	LegacyThresholdC    = 50.0
	RetrofitLowerC      = 45.0
	ComfortRoomTempC    = 21.0
	MajorRenovationKWh  = 100.0
	TargetedMeasuresKWh = 70.0
	AuditDeviation      = 30.0

	balancingGain  = 0.075
	controllerGain = 0.05
	bufferTankGain = 0.03
	roomTempGain   = 0.06
)

var rules = []Rule{
	{Name: "aux-share", Applies: auxShareApplies, Build: auxShare},
	{Name: "aux-unknown", Applies: auxUnknownApplies, Build: auxUnknown},
	{Name: "pv-missing", Applies: pvMissingApplies, Build: pvMissing},
	{Name: "pv-battery", Applies: pvBatteryApplies, Build: pvBattery},
	{Name: "flow-underfloor", Applies: flowUnderfloorApplies, Build: flowUnderfloor},
	{Name: "flow-radiator", Applies: flowRadiatorApplies, Build: flowRadiator},
	{Name: "flow-legacy", Applies: flowLegacyApplies, Build: flowLegacy},
	{Name: "upgrade-emitters", Applies: flowLegacyApplies, Build: upgradeEmitters},
	{Name: "hydraulic-balancing", Applies: balancingApplies, Build: balancing},
	{Name: "room-temperature", Applies: roomTempApplies, Build: roomTemp},
	{Name: "controllers", Applies: controllersApplies, Build: controllers},
	{Name: "radiator-retrofit", Applies: retrofitApplies, Build: retrofit},
	{Name: "hot-water", Applies: hotWaterApplies, Build: hotWater},
	{Name: "envelope-major", Applies: envelopeMajorApplies, Build: envelopeMajor},
	{Name: "envelope-targeted", Applies: envelopeTargetedApplies, Build: envelopeTargeted},
	{Name: "buffer-tank", Applies: bufferTankApplies, Build: bufferTank},
	{Name: "maintenance", Applies: always, Build: maintenance},
	{Name: "energy-audit", Applies: auditApplies, Build: audit},
}

// --- auxiliary heater ---

func auxShareApplies(f Facts) bool {
	return f.AuxHeater != nil && f.AuxHeater.Rating != model.AuxRatingGood
}

func auxShare(f Facts) model.Recommendation {
	a := f.AuxHeater
	prio := model.PriorityMedium
	if a.Rating == model.AuxRatingCritical {
		prio = model.PriorityHigh
	}
	return model.Recommendation{
		Category: model.CategoryAuxHeater,
		Title:    "Reduce backup heater operation",
		Impact: fmt.Sprintf("The backup heater uses about %.0f kWh (%.0f %% of consumption); up to %.0f kWh or %.0f € per year are avoidable.",
			a.ElectricityKWh, a.Share*100, a.AvoidableKWh, a.ExtraAnnualCost),
		Priority: prio,
		Prerequisites: []string{
			"Check the bivalence point in the controller settings",
			"Raise the switch-on delay of the heating element",
			"Verify the heat pump is sized for the heat load",
		},
		Context: fmt.Sprintf("rating: %s", a.Rating),
	}
}

func auxUnknownApplies(f Facts) bool {
	return f.Profile.AuxHeater != nil && f.Profile.AuxHeater.Present == model.Unknown
}

func auxUnknown(Facts) model.Recommendation {
	return model.Recommendation{
		Category: model.CategoryAuxHeater,
		Title:    "Find out whether a backup heater is running",
		Impact:   "An unnoticed heating element can consume several hundred kWh per year.",
		Priority: model.PriorityMedium,
		Context:  "Most controllers show the heating element's energy counter in the service menu.",
	}
}

// --- photovoltaics ---

func pvMissingApplies(f Facts) bool {
	return (f.Profile.PV == nil || f.Profile.PV.Present == model.PVNo) && f.Basis() > PVConsumptionThreshold
}

func pvMissing(f Facts) model.Recommendation {
	est := solar.Estimate(solar.Params{
		PV:          model.PV{Present: model.PVPlanned, Orientation: model.OrientationSouth},
		PostalCode:  f.Profile.PostalCode,
		HeatPumpKWh: f.Basis(),
		PricePerKWh: f.Profile.PricePerKWh,
	})
	return model.Recommendation{
		Category: model.CategoryPhotovoltaics,
		Title:    "Consider a photovoltaic system",
		Impact: fmt.Sprintf("A %.0f kWp system could cover about %.0f kWh of the heat pump's electricity (%.0f € per year).",
			est.CapacityKWp, est.SelfConsumptionKWh, est.AnnualSavings),
		Priority: model.PriorityMedium,
	}
}

func pvBatteryApplies(f Facts) bool {
	return f.Profile.PV != nil && f.Profile.PV.Present == model.PVYes && !f.Profile.PV.HasBattery
}

func pvBattery(f Facts) model.Recommendation {
	pv := *f.Profile.PV
	params := solar.Params{PV: pv, PostalCode: f.Profile.PostalCode, HeatPumpKWh: f.Basis(), PricePerKWh: f.Profile.PricePerKWh}
	without := solar.Estimate(params)
	if params.PV.BatteryCapacityKWh <= 0 {
		params.PV.BatteryCapacityKWh = solar.DefaultBatteryKWh
	}
	params.PV.HasBattery = true
	with := solar.Estimate(params)

	return model.Recommendation{
		Category: model.CategoryPhotovoltaics,
		Title:    "Check whether a battery storage pays off",
		Impact: fmt.Sprintf("A %g kWh battery would raise the heat pump's solar share by about %.0f kWh per year (%.0f €).",
			params.PV.BatteryCapacityKWh, with.SelfConsumptionKWh-without.SelfConsumptionKWh, with.AnnualSavings-without.AnnualSavings),
		Priority: model.PriorityLow,
	}
}

// --- flow temperature ---

func flowUnderfloorApplies(f Facts) bool {
	return f.Profile.HeatPump.Emitter == model.EmitterUnderfloor && f.FlowTempC > UnderfloorTargetC
}

func flowUnderfloor(f Facts) model.Recommendation {
	return lowerFlow(f, UnderfloorTargetC, "Lower flow temperature to 35 °C", model.PriorityHigh)
}

func flowRadiatorApplies(f Facts) bool {
	hp := f.Profile.HeatPump
	return hp.Emitter == model.EmitterRadiator && !hp.LegacyRadiators() && f.FlowTempC > RadiatorTargetC
}

func flowRadiator(f Facts) model.Recommendation {
	return lowerFlow(f, RadiatorTargetC, "Lower flow temperature to 42–45 °C", model.PriorityMedium)
}

func flowLegacyApplies(f Facts) bool {
	return f.Profile.HeatPump.LegacyRadiators() && f.FlowTempC > LegacyThresholdC
}

func flowLegacy(f Facts) model.Recommendation {
	r := lowerFlow(f, LegacyThresholdC, "Lower flow temperature step by step", model.PriorityMedium)
	r.Prerequisites = []string{
		"Carry out hydraulic balancing",
		"Lower the heating curve by 2 °C per week",
		"Replace radiators in rooms that stay too cold",
	}
	return r
}

func upgradeEmitters(f Facts) model.Recommendation {
	return model.Recommendation{
		Category: model.CategoryEmitters,
		Title:    "Upgrade radiators for low flow temperatures",
		Impact: fmt.Sprintf("Existing radiators need %.0f °C flow temperature. Larger or heat-pump radiators allow 45 °C and lift efficiency by about %.0f %%.",
			f.FlowTempC, gainPercent(f.FlowTempC-RadiatorTargetC)),
		Priority: model.PriorityHigh,
		Prerequisites: []string{
			"Room-by-room heat load calculation",
			"Identify the rooms that limit the flow temperature",
		},
	}
}

func lowerFlow(f Facts, target float64, title string, prio model.Priority) model.Recommendation {
	gain := (f.FlowTempC - target) * efficiency.GainPerDegree
	kwh := savingsFromGain(f.Basis(), gain)
	ctx := ""
	if !f.Profile.HeatPump.FlowTempDeclared {
		ctx = fmt.Sprintf("flow temperature assumed at %.0f °C", f.FlowTempC)
	}
	return model.Recommendation{
		Category: model.CategoryFlowTemperature,
		Title:    title,
		Impact: fmt.Sprintf("Lowering from %.0f °C to %.0f °C improves efficiency by about %.0f %% (%.0f kWh, %.0f € per year).",
			f.FlowTempC, target, gain*100, kwh, kwh*f.Profile.PricePerKWh),
		Priority: prio,
		Context:  ctx,
	}
}

// --- hydraulics and controls ---

func balancingApplies(f Facts) bool {
	return f.Profile.HeatPump.HydraulicBalancing != model.Yes
}

func balancing(f Facts) model.Recommendation {
	prio := model.PriorityMedium
	ctx := "It is unknown whether hydraulic balancing was carried out."
	if f.Profile.HeatPump.HydraulicBalancing == model.No {
		prio = model.PriorityHigh
		ctx = ""
	}
	kwh := savingsFromGain(f.Basis(), balancingGain)
	return model.Recommendation{
		Category: model.CategoryHydraulicBalancing,
		Title:    "Carry out hydraulic balancing",
		Impact:   fmt.Sprintf("Typically 5–10 %% less electricity (about %.0f kWh per year) and a lower required flow temperature.", kwh),
		Priority: prio,
		Context:  ctx,
	}
}

func roomTempApplies(f Facts) bool {
	return f.Profile.Building.TargetRoomTempC > ComfortRoomTempC
}

func roomTemp(f Facts) model.Recommendation {
	excess := f.Profile.Building.TargetRoomTempC - ComfortRoomTempC
	return model.Recommendation{
		Category: model.CategoryRoomTemperature,
		Title:    "Reduce room temperature",
		Impact:   fmt.Sprintf("Each degree less saves about 6 %% heating energy; %.1f °C less saves about %.0f kWh per year.", excess, f.Basis()*excess*roomTempGain),
		Priority: model.PriorityLow,
	}
}

func controllersApplies(f Facts) bool {
	return !f.Profile.Building.HasAutoControllers
}

func controllers(f Facts) model.Recommendation {
	return model.Recommendation{
		Category: model.CategoryControls,
		Title:    "Install automatic room controllers",
		Impact:   fmt.Sprintf("Schedules and presence detection save about 5 %% (%.0f kWh per year).", f.Basis()*controllerGain),
		Priority: model.PriorityLow,
	}
}

func retrofitApplies(f Facts) bool {
	return f.Profile.HeatPump.LegacyRadiators() && f.FlowTempC >= RetrofitLowerC && f.FlowTempC <= LegacyThresholdC
}

func retrofit(f Facts) model.Recommendation {
	return model.Recommendation{
		Category: model.CategoryEmitters,
		Title:    "Replace individual radiators with heat-pump radiators",
		Impact:   fmt.Sprintf("Swapping the radiators of the coldest rooms allows about 40 °C flow temperature (%.0f %% better efficiency).", gainPercent(f.FlowTempC-40)),
		Priority: model.PriorityMedium,
	}
}

func hotWaterApplies(f Facts) bool {
	b := f.Profile.Building
	return b.ShowersPerDay > 0 && b.ShowersPerDay > float64(b.Occupants)
}

func hotWater(f Facts) model.Recommendation {
	return model.Recommendation{
		Category: model.CategoryHotWater,
		Title:    "Reduce hot-water demand",
		Impact:   "Water-saving shower heads cut hot-water energy by up to 30 %.",
		Priority: model.PriorityLow,
		Context:  fmt.Sprintf("%.1f showers per day for %d occupants", f.Profile.Building.ShowersPerDay, f.Profile.Building.Occupants),
	}
}

// --- building envelope ---

func envelopeMajorApplies(f Facts) bool {
	return f.SpecificDemandKWhM2 > MajorRenovationKWh
}

func envelopeMajor(f Facts) model.Recommendation {
	missing := f.Profile.Building.MissingRenovations()
	return model.Recommendation{
		Category:      model.CategoryBuildingEnvelope,
		Title:         "Plan a major energy renovation",
		Impact:        fmt.Sprintf("A heat demand of %.0f kWh/m² per year is high; envelope measures can halve it.", f.SpecificDemandKWhM2),
		Priority:      model.PriorityHigh,
		Prerequisites: labels(missing),
		Context:       missingContext(missing),
	}
}

func envelopeTargetedApplies(f Facts) bool {
	return f.Profile.Building.Type == model.BuildingExisting &&
		f.SpecificDemandKWhM2 >= TargetedMeasuresKWh && f.SpecificDemandKWhM2 <= MajorRenovationKWh
}

func envelopeTargeted(f Facts) model.Recommendation {
	var cheap []model.Renovation
	for _, r := range []model.Renovation{model.RenovationRoof, model.RenovationBasementCeiling} {
		if !f.Profile.Building.Has(r) {
			cheap = append(cheap, r)
		}
	}
	return model.Recommendation{
		Category:      model.CategoryBuildingEnvelope,
		Title:         "Targeted insulation measures",
		Impact:        "Insulating the top floor ceiling or basement ceiling is cheap and cuts heat demand by 10–15 %.",
		Priority:      model.PriorityMedium,
		Prerequisites: labels(cheap),
		Context:       missingContext(f.Profile.Building.MissingRenovations()),
	}
}

// --- system ---

func bufferTankApplies(f Facts) bool {
	hp := f.Profile.HeatPump
	return hp.BufferTank && hp.Emitter == model.EmitterUnderfloor
}

func bufferTank(f Facts) model.Recommendation {
	return model.Recommendation{
		Category: model.CategoryBufferTank,
		Title:    "Review whether the buffer tank is needed",
		Impact:   fmt.Sprintf("Underfloor heating usually provides enough storage mass; removing or bypassing the buffer saves about %.0f kWh per year.", savingsFromGain(f.Basis(), bufferTankGain)),
		Priority: model.PriorityLow,
	}
}

func always(Facts) bool { return true }

func maintenance(Facts) model.Recommendation {
	return model.Recommendation{
		Category: model.CategoryMaintenance,
		Title:    "Schedule regular maintenance",
		Impact:   "Clean filters and a correct refrigerant charge keep the heat pump at its rated efficiency.",
		Priority: model.PriorityLow,
	}
}

func auditApplies(f Facts) bool {
	return f.HasActual && math.Abs(f.DeviationPercent) > AuditDeviation
}

func audit(f Facts) model.Recommendation {
	return model.Recommendation{
		Category: model.CategoryEnergyAudit,
		Title:    "Consult an energy auditor",
		Impact:   fmt.Sprintf("Metered consumption deviates %.0f %% from the estimate; an on-site check can find the cause.", f.DeviationPercent),
		Priority: model.PriorityHigh,
	}
}

// savingsFromGain converts a relative efficiency gain into saved electricity.
func savingsFromGain(basis, gain float64) float64 {
	if gain <= 0 {
		return 0
	}
	return basis * gain / (1 + gain)
}

func gainPercent(deltaC float64) float64 {
	if deltaC <= 0 {
		return 0
	}
	return deltaC * efficiency.GainPerDegree * 100
}

func labels(rs []model.Renovation) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.Label())
	}
	return out
}

func missingContext(rs []model.Renovation) string {
	if len(rs) == 0 {
		return ""
	}
	return "not yet done: " + strings.Join(labels(rs), ", ")
}
