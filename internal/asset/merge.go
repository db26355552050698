// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package asset completes partial model payloads into full asset records.
package asset

import (
	"strconv"
	"time"

	"github.com/pdiddy/baasify/pkg/types"
)

// Defaults applied when the model payload omits a field.
const (
	defaultTRLTarget = 8
	defaultAlignment = "EU Green Deal"
)

var defaultStandards = []string{"ISO"}

// Context carries the caller-supplied values that always override the
// payload: the submitted sector and problem text, a freshly generated
// asset id, and the generation time.
type Context struct {
	Sector  string
	Problem string
	ID      string
	Now     time.Time
}

// Complete fills a partial payload into a full asset. Explicit payload
// values win; absent ones take defaults. The id and generated date always
// come from the context, never from the payload. Complete is pure: same
// payload and context yield the same asset.
//
// risk_profile and token_status are derived from the composite score when
// the payload omits them: a composite above 70 is low risk, above 75 is
// bankable. The composite itself is preserved as delivered.
func Complete(payload types.Asset, mctx Context) types.Asset {
	out := payload

	out.ID = mctx.ID
	out.GeneratedDate = mctx.Now.Format("2006-01-02")

	if out.RiskProfile == "" {
		out.RiskProfile = DeriveRisk(out.TIRScores.Composite)
	}
	if out.TokenStatus == "" {
		out.TokenStatus = DeriveToken(out.TIRScores.Composite)
	}
	if out.Regulatory.Alignment == "" && len(out.Regulatory.Standards) == 0 {
		out.Regulatory = types.Regulatory{
			Alignment: defaultAlignment,
			Standards: append([]string(nil), defaultStandards...),
		}
	}
	if out.TRLTarget == 0 {
		out.TRLTarget = defaultTRLTarget
	}
	if out.Tasks == nil {
		out.Tasks = []types.Task{}
	}

	return out
}

// DeriveRisk classifies the delivery risk from a composite score.
func DeriveRisk(composite int) types.RiskProfile {
	if composite > 70 {
		return types.RiskLow
	}
	return types.RiskMedium
}

// DeriveToken classifies the financing status from a composite score.
func DeriveToken(composite int) types.TokenStatus {
	if composite > 75 {
		return types.TokenBankable
	}
	return types.TokenCoDev
}

// NewID generates an asset id from the millisecond clock, in the GEN-NNNNNN
// form downstream consumers expect.
func NewID(now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ms) > 6 {
		ms = ms[len(ms)-6:]
	}
	return "GEN-" + ms
}
