package jsonutil

import "testing"

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "prose around object",
			text: `Here is the result: {"name":"Y"} Thanks!`,
			want: `{"name":"Y"}`,
		},
		{
			name: "no payload",
			text: "No data available.",
			want: "{}",
		},
		{
			name: "empty input",
			text: "",
			want: "{}",
		},
		{
			name: "markdown fence",
			text: "```json\n{\"a\": 1}\n```",
			want: `{"a": 1}`,
		},
		{
			name: "array payload",
			text: "The phases are: [1, 2, 3].",
			want: "[1, 2, 3]",
		},
		{
			name: "array opener before object opener",
			text: `x [ {"a":1} ] y`,
			want: `[ {"a":1} ]`,
		},
		{
			name: "object close after array close",
			text: `{"items":[1,2]} trailing`,
			want: `{"items":[1,2]}`,
		},
		{
			name: "closer before opener",
			text: "} then {",
			want: "{}",
		},
		{
			name: "opener only",
			text: "start { and nothing else",
			want: "{}",
		},
		{
			name: "closer only",
			text: "nothing ] here",
			want: "{}",
		},
		{
			name: "whole input is the payload",
			text: `{"name":"X","tir_scores":{"composite":80}}`,
			want: `{"name":"X","tir_scores":{"composite":80}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text)
			if got != tt.want {
				t.Errorf("Extract(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractBounds(t *testing.T) {
	// Whenever a valid pair is found the result must begin with the opener
	// and end with the closer that were located.
	inputs := []string{
		`pre {"k":"v"} post`,
		`[1,2,3]`,
		`text [ "a" ] more { "b": 1 } tail`,
	}
	for _, in := range inputs {
		got := Extract(in)
		if got == "{}" {
			t.Errorf("Extract(%q) fell back unexpectedly", in)
			continue
		}
		first := got[0]
		last := got[len(got)-1]
		if first != '{' && first != '[' {
			t.Errorf("Extract(%q) starts with %q, want opener", in, first)
		}
		if last != '}' && last != ']' {
			t.Errorf("Extract(%q) ends with %q, want closer", in, last)
		}
	}
}

func TestDecode(t *testing.T) {
	var payload struct {
		Name string `json:"name"`
	}
	if err := Decode(`noise {"name":"Y"} noise`, &payload); err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if payload.Name != "Y" {
		t.Errorf("payload.Name = %q, want %q", payload.Name, "Y")
	}

	// A selected region that is not valid JSON must surface a decode error,
	// never a panic.
	if err := Decode(`{ unbalanced "`, &payload); err == nil {
		t.Error("Decode accepted invalid JSON region")
	}

	// No payload at all decodes as the empty object.
	var m map[string]any
	if err := Decode("nothing here", &m); err != nil {
		t.Fatalf("Decode of empty fallback returned error: %v", err)
	}
	if len(m) != 0 {
		t.Errorf("expected empty map, got %v", m)
	}
}
