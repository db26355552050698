// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package audit generates environmental passports (SPP records) for
// completed R&D assets. The passport is produced by the same best-effort
// path as the asset itself: model call, lenient JSON extraction, then a
// defaulting pass that guarantees a well-formed record.
package audit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/baasify/internal/jsonutil"
	"github.com/pdiddy/baasify/pkg/types"
)

const (
	idPrefix      = "SPP-"
	defaultStatus = "Verified"
)

// Backend abstracts the Generative AI API so tests can supply a mock.
type Backend interface {
	Generate(ctx context.Context, prompt string, jsonOutput bool) (string, error)
}

// Generate runs an environmental audit for the asset and returns the
// resulting passport. A passport is always well formed: the id and date
// come from this call, the energy grade is coerced into A-D, and the
// recyclability percentage is clamped to 0-100. Only a failed model call
// is an error; an unparseable response degrades to a defaulted record.
func Generate(ctx context.Context, backend Backend, a types.Asset) (types.EnvironmentalPassport, error) {
	prompt, err := renderAuditPrompt(a)
	if err != nil {
		return types.EnvironmentalPassport{}, fmt.Errorf("rendering prompt: %w", err)
	}

	raw, err := backend.Generate(ctx, prompt, true)
	if err != nil {
		return types.EnvironmentalPassport{}, fmt.Errorf("audit call failed: %w", err)
	}

	var payload types.EnvironmentalPassport
	if err := jsonutil.Decode(raw, &payload); err != nil {
		payload = types.EnvironmentalPassport{}
	}
	return normalize(payload, a, time.Now()), nil
}

// normalize fills the caller-owned fields and repairs out-of-range
// model output so downstream consumers never see an invalid passport.
func normalize(p types.EnvironmentalPassport, a types.Asset, now time.Time) types.EnvironmentalPassport {
	p.ID = idPrefix + idSuffix(a.ID)
	p.GeneratedDate = now.Format("2006-01-02")
	if p.Status == "" {
		p.Status = defaultStatus
	}

	p.Metrics.EnergyEfficiencyGrade = coerceGrade(p.Metrics.EnergyEfficiencyGrade)
	p.Metrics.RecyclabilityPercent = clampPercent(p.Metrics.RecyclabilityPercent)
	for i := range p.Materials {
		p.Materials[i].Percentage = clampPercent(p.Materials[i].Percentage)
	}

	if p.Materials == nil {
		p.Materials = []types.PassportMaterial{}
	}
	if p.Lifecycle == nil {
		p.Lifecycle = []types.LifecycleStage{}
	}
	if p.Certifications == nil {
		p.Certifications = []string{}
	}
	return p
}

// idSuffix keeps the numeric tail of the asset id so the passport and
// its asset pair up visually ("GEN-123456" -> "SPP-123456").
func idSuffix(assetID string) string {
	if i := strings.LastIndex(assetID, "-"); i >= 0 && i+1 < len(assetID) {
		return assetID[i+1:]
	}
	return assetID
}

func coerceGrade(g types.EnergyGrade) types.EnergyGrade {
	switch g {
	case types.GradeA, types.GradeB, types.GradeC, types.GradeD:
		return g
	}
	return types.GradeC
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
