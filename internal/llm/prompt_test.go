package llm

import (
	"strings"
	"testing"
)

func TestPromptSpecRenderOrdersSections(t *testing.T) {
	spec := PromptSpec{
		Persona: "You are a professional career assistant.",
		Intro:   "Write a professional cover letter for a Backend Engineer position at Acme.",
		Profile: []Field{
			{Label: "Industry", Value: "Software"},
			{Label: "Skills", Value: "Go, SQL"},
		},
		Task: []Field{
			{Label: "", Value: "Job Description:\nBuild services."},
		},
		Rules:        []string{"Max 400 words", "Proper business letter formatting in markdown"},
		OutputFormat: "Return markdown only.",
		Temperature:  0.5,
	}

	out := spec.Render()

	intro := strings.Index(out, "Write a professional cover letter")
	profile := strings.Index(out, "- Industry: Software")
	task := strings.Index(out, "Job Description:")
	rules := strings.Index(out, "- Max 400 words")
	format := strings.Index(out, "Return markdown only.")

	for name, idx := range map[string]int{
		"intro": intro, "profile": profile, "task": task, "rules": rules, "format": format,
	} {
		if idx < 0 {
			t.Fatalf("missing %s section:\n%s", name, out)
		}
	}
	if !(intro < profile && profile < task && task < rules && rules < format) {
		t.Fatalf("sections out of order:\n%s", out)
	}
}

func TestPromptSpecRequestCarriesPersonaAndTemperature(t *testing.T) {
	spec := PromptSpec{
		Persona:     "You are a strict JSON API. Output ONLY valid JSON.",
		Intro:       "Analyze the Software industry.",
		Temperature: 0.2,
	}
	req := spec.Request()
	if req.System != spec.Persona {
		t.Fatalf("system = %q", req.System)
	}
	if req.Temperature != 0.2 {
		t.Fatalf("temperature = %v", req.Temperature)
	}
	if !strings.Contains(req.Prompt, "Analyze the Software industry.") {
		t.Fatalf("prompt missing intro: %q", req.Prompt)
	}
}
