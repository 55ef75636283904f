package scenario

import "heatpump_check/internal/model"

// defaultCatalog lists the interventions a user can combine into a
// scenario. Costs are EUR, savings kWh of electricity per year for a 120 m²
// reference house.
var defaultCatalog = []model.Intervention{
	{ID: "hydraulic_balancing", Label: "Hydraulic balancing", CostMin: 500, CostMax: 1200, Unit: "flat", EfficiencyGainPercent: 8, BaselineKWhSavings: 400, Category: model.CategoryHydraulicBalancing},
	{ID: "heating_curve", Label: "Heating curve optimisation", CostMin: 0, CostMax: 250, Unit: "flat", EfficiencyGainPercent: 10, BaselineKWhSavings: 450, Category: model.CategoryFlowTemperature},
	{ID: "heat_pump_radiators", Label: "Heat-pump radiators for critical rooms", CostMin: 2500, CostMax: 6000, Unit: "3 rooms", EfficiencyGainPercent: 12, BaselineKWhSavings: 550, Category: model.CategoryEmitters},
	{ID: "room_controllers", Label: "Automatic room controllers", CostMin: 300, CostMax: 900, Unit: "house", EfficiencyGainPercent: 3, BaselineKWhSavings: 250, Category: model.CategoryControls},
	{ID: "buffer_bypass", Label: "Buffer tank bypass", CostMin: 300, CostMax: 800, Unit: "flat", EfficiencyGainPercent: 4, BaselineKWhSavings: 150, Category: model.CategoryBufferTank},
	{ID: "aux_heater_settings", Label: "Backup heater settings", CostMin: 0, CostMax: 200, Unit: "flat", EfficiencyGainPercent: 5, BaselineKWhSavings: 300, Category: model.CategoryAuxHeater},
	{ID: "pv_system", Label: "Photovoltaic system 8 kWp", CostMin: 10000, CostMax: 16000, Unit: "system", EfficiencyGainPercent: 0, BaselineKWhSavings: 1400, Category: model.CategoryPhotovoltaics},
	{ID: "battery_storage", Label: "Battery storage 5 kWh", CostMin: 4000, CostMax: 7000, Unit: "system", EfficiencyGainPercent: 0, BaselineKWhSavings: 450, Category: model.CategoryPhotovoltaics},
	{ID: "roof_insulation", Label: "Top floor ceiling insulation", CostMin: 2000, CostMax: 6000, Unit: "house", EfficiencyGainPercent: 0, BaselineKWhSavings: 600, Category: model.CategoryBuildingEnvelope},
	{ID: "basement_ceiling_insulation", Label: "Basement ceiling insulation", CostMin: 1500, CostMax: 4000, Unit: "house", EfficiencyGainPercent: 0, BaselineKWhSavings: 350, Category: model.CategoryBuildingEnvelope},
	{ID: "window_replacement", Label: "Window replacement", CostMin: 8000, CostMax: 20000, Unit: "house", EfficiencyGainPercent: 0, BaselineKWhSavings: 700, Category: model.CategoryBuildingEnvelope},
	{ID: "facade_insulation", Label: "Facade insulation", CostMin: 15000, CostMax: 35000, Unit: "house", EfficiencyGainPercent: 0, BaselineKWhSavings: 1300, Category: model.CategoryBuildingEnvelope},
	{ID: "water_saving_showers", Label: "Water-saving shower heads", CostMin: 50, CostMax: 150, Unit: "set", EfficiencyGainPercent: 0, BaselineKWhSavings: 150, Category: model.CategoryHotWater},
	{ID: "maintenance", Label: "Annual maintenance", CostMin: 150, CostMax: 300, Unit: "year", EfficiencyGainPercent: 3, BaselineKWhSavings: 120, Category: model.CategoryMaintenance},
	{ID: "energy_audit", Label: "On-site energy audit", CostMin: 300, CostMax: 1500, Unit: "flat", EfficiencyGainPercent: 0, BaselineKWhSavings: 0, Category: model.CategoryEnergyAudit},
}

// DefaultCatalog returns a copy of the built-in intervention catalog.
func DefaultCatalog() []model.Intervention {
	out := make([]model.Intervention, len(defaultCatalog))
	copy(out, defaultCatalog)
	return out
}

// Merge applies per-user overrides to a catalog. Overrides are matched by
// ID; non-zero numeric fields and a non-empty label replace the catalog
// values. Overrides with an unknown ID are appended as custom interventions.
func Merge(catalog, overrides []model.Intervention) []model.Intervention {
	out := make([]model.Intervention, len(catalog))
	copy(out, catalog)

	index := make(map[string]int, len(out))
	for i, iv := range out {
		index[iv.ID] = i
	}

	for _, o := range overrides {
		if o.ID == "" {
			continue
		}
		i, ok := index[o.ID]
		if !ok {
			index[o.ID] = len(out)
			out = append(out, o)
			continue
		}
		base := &out[i]
		if o.Label != "" {
			base.Label = o.Label
		}
		if o.CostMin > 0 {
			base.CostMin = o.CostMin
		}
		if o.CostMax > 0 {
			base.CostMax = o.CostMax
		}
		if o.Unit != "" {
			base.Unit = o.Unit
		}
		if o.EfficiencyGainPercent > 0 {
			base.EfficiencyGainPercent = o.EfficiencyGainPercent
		}
		if o.BaselineKWhSavings > 0 {
			base.BaselineKWhSavings = o.BaselineKWhSavings
		}
		if o.Category != "" {
			base.Category = o.Category
		}
	}
	return out
}

// Find returns the intervention with the given ID.
func Find(catalog []model.Intervention, id string) (model.Intervention, bool) {
	for _, iv := range catalog {
		if iv.ID == id {
			return iv, true
		}
	}
	return model.Intervention{}, false
}

// ForCategory returns the IDs of all interventions addressing a
// recommendation category, in catalog order.
func ForCategory(catalog []model.Intervention, c model.Category) []string {
	var ids []string
	for _, iv := range catalog {
		if iv.Category == c {
			ids = append(ids, iv.ID)
		}
	}
	return ids
}
