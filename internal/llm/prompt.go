package llm

import (
	"fmt"
	"strings"
)

// Field is a labeled value interpolated into a prompt section.
type Field struct {
	Label string
	Value string
}

// PromptSpec describes a prompt declaratively so each feature package can
// state its persona, profile context, task inputs, rules, and output format
// as data. Rendering is deterministic, which keeps prompt construction
// testable without a completion client.
type PromptSpec struct {
	Persona      string
	Intro        string
	Profile      []Field
	Task         []Field
	Rules        []string
	OutputFormat string
	Temperature  float32
}

// Render produces the user-message text in a deterministic section order.
func (s PromptSpec) Render() string {
	var b strings.Builder

	if s.Intro != "" {
		b.WriteString(s.Intro)
		b.WriteString("\n")
	}

	writeFields := func(header string, fields []Field) {
		if len(fields) == 0 {
			return
		}
		b.WriteString("\n")
		if header != "" {
			b.WriteString(header)
			b.WriteString("\n")
		}
		for _, f := range fields {
			if f.Label == "" {
				b.WriteString(f.Value)
				b.WriteString("\n")
				continue
			}
			fmt.Fprintf(&b, "- %s: %s\n", f.Label, f.Value)
		}
	}

	writeFields("About the candidate:", s.Profile)
	writeFields("", s.Task)

	if len(s.Rules) > 0 {
		b.WriteString("\nRequirements:\n")
		for _, r := range s.Rules {
			fmt.Fprintf(&b, "- %s\n", r)
		}
	}

	if s.OutputFormat != "" {
		b.WriteString("\n")
		b.WriteString(s.OutputFormat)
		b.WriteString("\n")
	}

	return b.String()
}

// Request pairs the rendered prompt with the persona and temperature.
func (s PromptSpec) Request() CompletionRequest {
	return CompletionRequest{
		System:      s.Persona,
		Prompt:      s.Render(),
		Temperature: s.Temperature,
	}
}
