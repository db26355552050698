// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"bytes"
	"text/template"
)

// assetPromptTmpl is the synthesis prompt sent to the model. It spells out
// the payload shape because the API enforces no schema; the merge rule is
// the backstop for anything the model leaves out.
var assetPromptTmpl = template.Must(template.New("asset").Parse(`You are a biomimetic R&D synthesis system. Create a detailed R&D asset solving the following industrial challenge in the "{{.Sector}}" sector:

{{.Problem}}

Generate realistic TIR scores (technology, ip, resources, market, composite; each an integer 0-100) reflecting the solution's readiness.

Respond with strict JSON only, no text outside the JSON object:
{
  "name": "Asset title",
  "category": "Industry",
  "tir_scores": { "technology": 0, "ip": 0, "resources": 0, "market": 0, "composite": 0 },
  "trl_current": 1,
  "bio_analogs": [{ "species": "Organism name", "mechanism": "Mechanism description", "key_attribute": "Engineering benefit" }],
  "ip_status": { "freedom_to_operate": "High/Medium/Low", "moat_duration_years": 18, "patent_filing_strategy": "Strategy" },
  "supply_chain": [{ "vendor": "Name", "location": "Country", "capability": "Process", "certification": "ISO" }],
  "financials": { "capex_total": 500000, "roi_horizon_months": 24, "revenue_stream": "Model" },
  "roadmap": [{ "phase": "Name", "duration_months": 6, "cost": 100000, "deliverables": "Output" }]
}
`))

// renderAssetPrompt executes the synthesis prompt template.
func renderAssetPrompt(sector, problem string) (string, error) {
	var buf bytes.Buffer
	err := assetPromptTmpl.Execute(&buf, struct{ Sector, Problem string }{Sector: sector, Problem: problem})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
