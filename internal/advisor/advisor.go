// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package advisor produces free-text strategic guidance around an R&D
// asset: challenge suggestions for operators who do not know where to
// start, and executive briefs for the ones who have to pitch the result.
package advisor

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/baasify/pkg/types"
)

// Backend abstracts the Generative AI API so tests can supply a mock.
type Backend interface {
	Generate(ctx context.Context, prompt string, jsonOutput bool) (string, error)
}

// SuggestBottleneck asks the model for one specific industrial R&D
// bottleneck in the given sector where a biological mechanism could
// plausibly help. The returned sentence is trimmed and otherwise verbatim.
func SuggestBottleneck(ctx context.Context, backend Backend, sector string) (string, error) {
	prompt, err := renderSuggestPrompt(sector)
	if err != nil {
		return "", fmt.Errorf("rendering prompt: %w", err)
	}
	text, err := backend.Generate(ctx, prompt, false)
	if err != nil {
		return "", fmt.Errorf("suggesting bottleneck: %w", err)
	}
	suggestion := strings.TrimSpace(text)
	if suggestion == "" {
		return "", fmt.Errorf("model returned an empty suggestion")
	}
	return suggestion, nil
}

// StrategicBrief produces a short executive narration for an asset,
// suitable for reading aloud. Markdown decoration is scrubbed from the
// response because the text is meant for speech, not rendering.
func StrategicBrief(ctx context.Context, backend Backend, a types.Asset) (string, error) {
	prompt, err := renderBriefPrompt(a)
	if err != nil {
		return "", fmt.Errorf("rendering prompt: %w", err)
	}
	text, err := backend.Generate(ctx, prompt, false)
	if err != nil {
		return "", fmt.Errorf("generating brief: %w", err)
	}
	brief := scrubMarkdown(text)
	if brief == "" {
		return "", fmt.Errorf("model returned an empty brief")
	}
	return brief, nil
}

// scrubMarkdown strips the decoration a model tends to emit even when told
// not to. Asterisks, hashes, underscores and brackets are removed; hyphens
// become spaces so list dashes read as pauses.
func scrubMarkdown(text string) string {
	r := strings.NewReplacer(
		"*", "",
		"#", "",
		"_", "",
		"[", "",
		"]", "",
		"-", " ",
	)
	return strings.TrimSpace(r.Replace(text))
}
