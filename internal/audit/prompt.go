// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package audit

import (
	"strings"
	"text/template"

	"github.com/pdiddy/baasify/pkg/types"
)

var auditPromptTmpl = template.Must(template.New("audit").Parse(`Run an environmental lifecycle audit for the biomimetic R&D asset "{{.Name}}" in the "{{.Category}}" sector.
Estimate realistic figures for a product at TRL {{.TRLCurrent}}.
Return strict JSON:
{
  "status": "Verified",
  "metrics": { "co2_footprint_kg": 0.0, "water_usage_liters": 0.0, "recyclability_percent": 0-100, "energy_efficiency_grade": "A/B/C/D" },
  "materials": [{ "name": "Material", "percentage": 0-100, "origin": "Bio-based/Recycled/Virgin/Synthetic" }],
  "lifecycle": [{ "stage": "Stage", "impact_score": 1-10, "description": "Impact" }],
  "certifications": ["Label"]
}`))

func renderAuditPrompt(a types.Asset) (string, error) {
	var b strings.Builder
	err := auditPromptTmpl.Execute(&b, struct {
		Name       string
		Category   string
		TRLCurrent int
	}{Name: a.Name, Category: a.Category, TRLCurrent: a.TRLCurrent})
	return b.String(), err
}
