// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package advisor

import (
	"strings"
	"text/template"

	"github.com/pdiddy/baasify/pkg/types"
)

var suggestPromptTmpl = template.Must(template.New("suggest").Parse(`Generate one specific, randomly chosen technical R&D bottleneck for the "{{.Sector}}" industry. It must be a problem where nature could plausibly offer a solution. Output: a single short sentence, nothing else.`))

var briefPromptTmpl = template.Must(template.New("brief").Parse(`ROLE: Expert strategist in disruptive innovation and the blue economy.
OBJECTIVE: A decision-ready synthesis of the asset "{{.Name}}" for a chief executive.
TONE: Engaging, professional, inspiring and fast. Avoid all unnecessary jargon.

KEY DATA:
Sector: {{.Category}}
Biology: {{.Biology}}
IP moat: {{.MoatYears}} years.

NARRATION INSTRUCTIONS (75 seconds maximum):
1. BEYOND THE STATE OF THE ART: explain why this biomimetic approach makes today's solutions, often chemical or polluting, obsolete. Talk about a qualitative leap.
2. USER VALUE: insist on the value for the end user: naturalness, durability, a richer experience.
3. GREEN IMPACT AND CARBON CREDITS: underline how this asset generates carbon credits and aligns with tomorrow's strictest environmental requirements.
4. LEADERSHIP: conclude on the market-leader position this asset secures.

IMPORTANT: Do not use any Markdown symbols such as asterisks or hashes. Plain text only.`))

type briefPromptData struct {
	Name      string
	Category  string
	Biology   string
	MoatYears int
}

func renderSuggestPrompt(sector string) (string, error) {
	var b strings.Builder
	err := suggestPromptTmpl.Execute(&b, struct{ Sector string }{Sector: sector})
	return b.String(), err
}

func renderBriefPrompt(a types.Asset) (string, error) {
	parts := make([]string, 0, len(a.BioAnalogs))
	for _, analog := range a.BioAnalogs {
		parts = append(parts, analog.Species+" ("+analog.Mechanism+")")
	}
	data := briefPromptData{
		Name:      a.Name,
		Category:  a.Category,
		Biology:   strings.Join(parts, ", "),
		MoatYears: a.IPStatus.MoatDurationYears,
	}
	var b strings.Builder
	err := briefPromptTmpl.Execute(&b, data)
	return b.String(), err
}
