// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// EnergyGrade is the A-D energy efficiency rating on a passport.
type EnergyGrade string

const (
	GradeA EnergyGrade = "A"
	GradeB EnergyGrade = "B"
	GradeC EnergyGrade = "C"
	GradeD EnergyGrade = "D"
)

// MaterialOrigin classifies where a passport material comes from.
type MaterialOrigin string

const (
	OriginBioBased  MaterialOrigin = "Bio-based"
	OriginRecycled  MaterialOrigin = "Recycled"
	OriginVirgin    MaterialOrigin = "Virgin"
	OriginSynthetic MaterialOrigin = "Synthetic"
)

// PassportMetrics holds the headline environmental figures of a passport.
type PassportMetrics struct {
	CO2FootprintKg        float64     `json:"co2_footprint_kg" yaml:"co2_footprint_kg"`
	WaterUsageLiters      float64     `json:"water_usage_liters" yaml:"water_usage_liters"`
	RecyclabilityPercent  float64     `json:"recyclability_percent" yaml:"recyclability_percent"`
	EnergyEfficiencyGrade EnergyGrade `json:"energy_efficiency_grade" yaml:"energy_efficiency_grade"`
}

// PassportMaterial is one material in the passport's bill of materials.
type PassportMaterial struct {
	Name string `json:"name" yaml:"name"`

	// Percentage is the material's share of the product, 0-100.
	Percentage float64 `json:"percentage" yaml:"percentage"`

	Origin MaterialOrigin `json:"origin" yaml:"origin"`
}

// LifecycleStage is one stage of the passport's lifecycle assessment.
type LifecycleStage struct {
	Stage string `json:"stage" yaml:"stage"`

	// ImpactScore rates the stage's environmental impact, 1-10.
	ImpactScore int `json:"impact_score" yaml:"impact_score"`

	Description string `json:"description" yaml:"description"`
}

// EnvironmentalPassport (SPP) is the environmental-impact audit record
// optionally attached to an asset. It is created only by the audit pipeline;
// a subsequent audit replaces it wholesale, it is never patched in place.
type EnvironmentalPassport struct {
	ID             string             `json:"id" yaml:"id"`
	Status         string             `json:"status" yaml:"status"`
	GeneratedDate  string             `json:"generated_date" yaml:"generated_date"`
	Metrics        PassportMetrics    `json:"metrics" yaml:"metrics"`
	Materials      []PassportMaterial `json:"materials" yaml:"materials"`
	Lifecycle      []LifecycleStage   `json:"lifecycle" yaml:"lifecycle"`
	Certifications []string           `json:"certifications" yaml:"certifications"`
}
