// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package audit

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/baasify/pkg/types"
)

type mockBackend struct {
	response   string
	err        error
	lastPrompt string
	lastJSON   bool
}

func (m *mockBackend) Generate(_ context.Context, prompt string, jsonOutput bool) (string, error) {
	m.lastPrompt = prompt
	m.lastJSON = jsonOutput
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func TestGenerate(t *testing.T) {
	backend := &mockBackend{response: `Audit complete:
{
  "status": "Provisional",
  "metrics": { "co2_footprint_kg": 12.5, "water_usage_liters": 340, "recyclability_percent": 88, "energy_efficiency_grade": "B" },
  "materials": [{ "name": "Mycelium", "percentage": 70, "origin": "Bio-based" }],
  "lifecycle": [{ "stage": "Production", "impact_score": 3, "description": "Low-heat growth" }],
  "certifications": ["Cradle to Cradle"]
}`}
	asset := types.Asset{ID: "GEN-482910", Name: "Myco-Structure", Category: "Construction", TRLCurrent: 4}

	p, err := Generate(context.Background(), backend, asset)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if p.ID != "SPP-482910" {
		t.Errorf("id = %q, want SPP-482910", p.ID)
	}
	if p.Status != "Provisional" {
		t.Errorf("status = %q, want the model's value", p.Status)
	}
	if want := time.Now().Format("2006-01-02"); p.GeneratedDate != want {
		t.Errorf("generated date = %q, want %q", p.GeneratedDate, want)
	}
	if p.Metrics.EnergyEfficiencyGrade != types.GradeB {
		t.Errorf("grade = %q, want B", p.Metrics.EnergyEfficiencyGrade)
	}
	if len(p.Materials) != 1 || p.Materials[0].Origin != types.OriginBioBased {
		t.Errorf("materials = %+v", p.Materials)
	}
	if !backend.lastJSON {
		t.Error("audit must request JSON output")
	}
	for _, fragment := range []string{`"Myco-Structure"`, `"Construction"`, "TRL 4"} {
		if !strings.Contains(backend.lastPrompt, fragment) {
			t.Errorf("prompt missing %q", fragment)
		}
	}
}

func TestGenerateBackendError(t *testing.T) {
	backendErr := errors.New("service down")
	if _, err := Generate(context.Background(), &mockBackend{err: backendErr}, types.Asset{ID: "GEN-1"}); !errors.Is(err, backendErr) {
		t.Fatalf("err = %v, want wrapped backend error", err)
	}
}

func TestGenerateUnparseableResponse(t *testing.T) {
	backend := &mockBackend{response: "{ not json"}
	p, err := Generate(context.Background(), backend, types.Asset{ID: "GEN-777001"})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if p.ID != "SPP-777001" {
		t.Errorf("id = %q, want SPP-777001", p.ID)
	}
	if p.Status != "Verified" {
		t.Errorf("status = %q, want default Verified", p.Status)
	}
	if p.Metrics.EnergyEfficiencyGrade != types.GradeC {
		t.Errorf("grade = %q, want default C", p.Metrics.EnergyEfficiencyGrade)
	}
	if p.Materials == nil || p.Lifecycle == nil || p.Certifications == nil {
		t.Errorf("collections must be empty, not nil: %+v", p)
	}
}

func TestNormalizeRepairs(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	in := types.EnvironmentalPassport{
		ID:     "SPP-FORGED",
		Status: "",
		Metrics: types.PassportMetrics{
			RecyclabilityPercent:  140,
			EnergyEfficiencyGrade: "A+",
		},
		Materials: []types.PassportMaterial{{Name: "Resin", Percentage: -5, Origin: types.OriginSynthetic}},
	}

	p := normalize(in, types.Asset{ID: "GEN-123456"}, now)
	if p.ID != "SPP-123456" {
		t.Errorf("id = %q, payload id must be overridden", p.ID)
	}
	if p.GeneratedDate != "2026-03-14" {
		t.Errorf("generated date = %q", p.GeneratedDate)
	}
	if p.Status != "Verified" {
		t.Errorf("status = %q, want default", p.Status)
	}
	if p.Metrics.RecyclabilityPercent != 100 {
		t.Errorf("recyclability = %v, want clamped to 100", p.Metrics.RecyclabilityPercent)
	}
	if p.Metrics.EnergyEfficiencyGrade != types.GradeC {
		t.Errorf("grade = %q, want coerced to C", p.Metrics.EnergyEfficiencyGrade)
	}
	if p.Materials[0].Percentage != 0 {
		t.Errorf("material percentage = %v, want clamped to 0", p.Materials[0].Percentage)
	}
}

func TestIDSuffix(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"GEN-482910", "482910"},
		{"ASSET-001", "001"},
		{"nodash", "nodash"},
		{"trailing-", "trailing-"},
	}
	for _, tt := range tests {
		if got := idSuffix(tt.in); got != tt.want {
			t.Errorf("idSuffix(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
