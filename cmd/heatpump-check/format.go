package main

import (
	"fmt"
	"io"
	"strings"

	"heatpump_check/internal/consumption"
	"heatpump_check/internal/model"
	"heatpump_check/internal/recommend"
)

func printResult(w io.Writer, r model.SimulationResult) {
	fmt.Fprintf(w, "Climate: %s (prefix %s, %.0f Kd, design %.0f °C)\n",
		r.Climate.Region, r.Climate.Prefix, r.Climate.HeatingDegreeDays, r.Climate.DesignOutdoorC)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Performance")
	fmt.Fprintln(w, "-----------")
	fmt.Fprintf(w, "  Flow temperature:       %.0f °C\n", r.FlowTempC)
	fmt.Fprintf(w, "  Heating factor:         %.2f\n", r.HeatingFactor)
	fmt.Fprintf(w, "  Hot water factor:       %.2f\n", r.HotWaterFactor)
	fmt.Fprintf(w, "  System factor:          %.2f\n", r.SystemFactor)
	if r.MeasuredFactor > 0 {
		fmt.Fprintf(w, "  Measured factor:        %.2f\n", r.MeasuredFactor)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Demand")
	fmt.Fprintln(w, "------")
	fmt.Fprintf(w, "  Specific heating:       %.0f kWh/m²\n", r.SpecificDemandKWhM2)
	fmt.Fprintf(w, "  Heating:                %s kWh\n", formatNumber(r.HeatingDemandKWh))
	fmt.Fprintf(w, "  Hot water:              %s kWh\n", formatNumber(r.HotWaterDemandKWh))
	fmt.Fprintf(w, "  Total heat:             %s kWh\n", formatNumber(r.TotalHeatDemandKWh))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Consumption")
	fmt.Fprintln(w, "-----------")
	fmt.Fprintf(w, "  Simulated:              %s kWh\n", formatNumber(r.SimulatedKWh))
	if r.HasActual {
		fmt.Fprintf(w, "  Actual (annualized):    %s kWh\n", formatNumber(r.ActualKWh))
		fmt.Fprintf(w, "  Deviation:              %+.1f %%\n", r.DeviationPercent)
		fmt.Fprintf(w, "  Comparability:          %d/100\n", r.ComparabilityScore)
		if r.IsPartialPeriod {
			fmt.Fprintf(w, "  Billing period:         %d days (partial)\n", r.BillingDays)
		}
	} else {
		fmt.Fprintln(w, "  Actual:                 no meter reading")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Cost")
	fmt.Fprintln(w, "----")
	fmt.Fprintf(w, "  Price:                  %.2f EUR/kWh\n", r.Cost.PricePerKWh)
	fmt.Fprintf(w, "  Annual cost:            %s EUR\n", formatNumber(r.Cost.ActualAnnualCost))
	fmt.Fprintf(w, "  Gas boiler reference:   %s EUR\n", formatNumber(r.Cost.GasReferenceCost))
	fmt.Fprintf(w, "  Savings vs gas:         %s EUR\n", formatNumber(r.Cost.SavingsVsGas))

	if a := r.AuxHeater; a != nil {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Auxiliary heater")
		fmt.Fprintln(w, "----------------")
		fmt.Fprintf(w, "  Electricity:            %s kWh (%.1f %% of consumption, %s)\n",
			formatNumber(a.ElectricityKWh), a.Share*100, a.Rating)
		fmt.Fprintf(w, "  Factor with/without:    %.2f / %.2f\n", a.FactorWithAux, a.FactorWithoutAux)
		fmt.Fprintf(w, "  Extra annual cost:      %s EUR\n", formatNumber(a.ExtraAnnualCost))
	}

	if pv := r.PV; pv != nil {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Photovoltaics")
		fmt.Fprintln(w, "-------------")
		fmt.Fprintf(w, "  Capacity:               %.1f kWp\n", pv.CapacityKWp)
		fmt.Fprintf(w, "  Self-consumed by HP:    %s kWh (%.0f %%)\n", formatNumber(pv.SelfConsumptionKWh), pv.SelfConsumptionShare*100)
		fmt.Fprintf(w, "  Annual savings:         %s EUR\n", formatNumber(pv.AnnualSavings))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "RECOMMENDATIONS (%d):\n", len(r.Recommendations))
	for _, rec := range r.Recommendations {
		fmt.Fprintf(w, "  [%s] %s\n", rec.Priority, rec.Title)
		fmt.Fprintf(w, "    %s\n", rec.Impact)
		if rec.Context != "" {
			fmt.Fprintf(w, "    note: %s\n", rec.Context)
		}
		for _, p := range rec.Prerequisites {
			fmt.Fprintf(w, "    * %s\n", p)
		}
	}

	if len(r.Funding) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "FUNDING (%d):\n", len(r.Funding))
		for _, f := range r.Funding {
			limit := "no cap"
			if f.CapAmount != nil {
				limit = "cap " + formatNumber(*f.CapAmount) + " EUR"
			}
			fmt.Fprintf(w, "  %s: %s (%.0f %%, %s)\n", f.Program, f.Measure, f.SubsidyRatePercent, limit)
		}
	}
}

func printAnnualized(w io.Writer, c model.Consumption, a consumption.Annualized, score int) {
	fmt.Fprintf(w, "Period:        %s to %s (%d days)\n",
		c.BillingStart.Format("2006-01-02"), c.BillingEnd.Format("2006-01-02"), a.Days)
	fmt.Fprintf(w, "Metered:       %s kWh\n", formatNumber(c.MeteredKWh))
	if c.ProducedKWh > 0 {
		fmt.Fprintf(w, "Heat produced: %s kWh (factor %.2f)\n", formatNumber(c.ProducedKWh), c.ProducedKWh/c.MeteredKWh)
	}
	if a.IsPartial {
		fmt.Fprintf(w, "Annualized:    %s kWh (covers %.0f %% of annual demand)\n", formatNumber(a.KWh), a.CoveredFraction*100)
	} else {
		fmt.Fprintf(w, "Annualized:    %s kWh (full year)\n", formatNumber(a.KWh))
	}
	fmt.Fprintf(w, "Comparability: %d/100\n", score)
}

func printCatalog(w io.Writer, catalog []model.Intervention) {
	fmt.Fprintf(w, "%-28s %-22s %15s %8s %10s\n", "ID", "CATEGORY", "COST (EUR)", "GAIN %", "SAVES kWh")
	fmt.Fprintln(w, strings.Repeat("-", 87))
	for _, iv := range catalog {
		fmt.Fprintf(w, "%-28s %-22s %15s %8.0f %10.0f\n",
			iv.ID, iv.Category, formatNumber(iv.CostMin)+"-"+formatNumber(iv.CostMax), iv.EfficiencyGainPercent, iv.BaselineKWhSavings)
	}
}

func printRules(w io.Writer) {
	for i, r := range recommend.Rules() {
		fmt.Fprintf(w, "%2d. %s\n", i+1, r.Name)
	}
}

// formatNumber renders a rounded figure with thousands separators.
func formatNumber(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%.0f", v)
	var b strings.Builder
	for i, ch := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(ch)
	}
	if neg && s != "0" {
		return "-" + b.String()
	}
	return b.String()
}
