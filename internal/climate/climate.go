package climate

import (
	"strings"

	"heatpump_check/internal/model"
)

// ReferenceHDD is the heating-degree-day total of the national average
// climate. Demand tables are calibrated against it.
const ReferenceHDD = 3400

// fallback is the national-average profile used for unmapped postal codes.
var fallback = model.ClimateProfile{
	HeatingDegreeDays: ReferenceHDD,
	DesignOutdoorC:    -12,
	AvgOutdoorC:       9.0,
	Region:            "Germany (average)",
}

// Lookup returns the climate profile for a postal code. Only the first two
// digits are used; anything that cannot be resolved yields the fallback.
func Lookup(postalCode string) model.ClimateProfile {
	prefix := Prefix(postalCode)
	if p, ok := table[prefix]; ok {
		p.Prefix = prefix
		return p
	}
	return Fallback()
}

// Fallback returns the national-average profile.
func Fallback() model.ClimateProfile {
	return fallback
}

// IsFallback reports whether p is the national-average profile.
func IsFallback(p model.ClimateProfile) bool {
	return p.Prefix == "" && p.Region == fallback.Region
}

// Factor scales demand to the local climate: local HDD / reference HDD.
func Factor(p model.ClimateProfile) float64 {
	if p.HeatingDegreeDays <= 0 {
		return 1
	}
	return p.HeatingDegreeDays / ReferenceHDD
}

// Prefix extracts the two leading digits of a postal code, or "" when the
// code does not start with two digits.
func Prefix(postalCode string) string {
	code := strings.TrimSpace(postalCode)
	if len(code) < 2 {
		return ""
	}
	for _, c := range code[:2] {
		if c < '0' || c > '9' {
			return ""
		}
	}
	return code[:2]
}
