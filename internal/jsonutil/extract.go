// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package jsonutil provides best-effort JSON repair helpers shared across
// the generation and audit pipelines.
package jsonutil

import (
	"encoding/json"
	"strings"
)

// emptyObject is the canonical fallback when no payload can be located.
const emptyObject = "{}"

// Extract returns the narrowest substring of text that is plausibly a
// serialized JSON object or array, or "{}" when none is found. The start
// is the first occurrence of '{' or '[' (the smaller index when both
// exist) and the end is the last occurrence of '}' or ']' (the larger
// index), inclusive.
//
// This is a lenient sanitizer for model responses that wrap payloads in
// prose or markdown fences, not a parser: it does not validate nesting or
// quoting, so a delimiter inside a string literal can still select an
// invalid region. It never fails; callers must treat a later decode error
// as recoverable and fall back to the empty payload.
func Extract(text string) string {
	start := firstIndex(text, '{', '[')
	end := lastIndex(text, '}', ']')
	if start == -1 || end == -1 || start > end {
		return emptyObject
	}
	return text[start : end+1]
}

// Decode extracts the payload region from text and unmarshals it into v.
// A decode failure is the caller's signal to fall back to defaults.
func Decode(text string, v any) error {
	return json.Unmarshal([]byte(Extract(text)), v)
}

// firstIndex returns the smaller of the first occurrences of a and b in s,
// or -1 when neither occurs.
func firstIndex(s string, a, b byte) int {
	ia := strings.IndexByte(s, a)
	ib := strings.IndexByte(s, b)
	switch {
	case ia == -1:
		return ib
	case ib == -1:
		return ia
	case ia < ib:
		return ia
	default:
		return ib
	}
}

// lastIndex returns the larger of the last occurrences of a and b in s,
// or -1 when neither occurs.
func lastIndex(s string, a, b byte) int {
	ia := strings.LastIndexByte(s, a)
	ib := strings.LastIndexByte(s, b)
	if ia > ib {
		return ia
	}
	return ib
}
