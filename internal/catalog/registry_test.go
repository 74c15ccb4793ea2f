package catalog

import (
	"strings"
	"testing"
)

func TestNewRegistry(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry returned error: %v", err)
	}

	if registry.Provider() != "together" {
		t.Errorf("provider = %q", registry.Provider())
	}

	models := registry.Models()
	if len(models) == 0 {
		t.Fatal("expected models in catalog")
	}
	// YAML order is preserved
	if models[0].ID != "meta-llama/Llama-3.3-70B-Instruct-Turbo" {
		t.Errorf("first model = %q", models[0].ID)
	}
	for _, m := range models {
		if m.ID == "" || m.DisplayName == "" {
			t.Errorf("incomplete model entry: %+v", m)
		}
	}

	d := registry.Defaults()
	if d.Model != models[0].ID {
		t.Errorf("default model = %q", d.Model)
	}
	if d.MaxTokens != 256 || d.TopK != 40 || d.Temperature != 0.7 || d.TopP != 0.8 {
		t.Errorf("unexpected defaults: %+v", d)
	}
}

func TestRegistry_ModelsReturnsCopy(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry returned error: %v", err)
	}

	models := registry.Models()
	models[0].ID = "changed"

	if registry.Models()[0].ID == "changed" {
		t.Error("Models exposed internal slice")
	}
}

func TestDefaults_Parameters(t *testing.T) {
	d := Defaults{
		Model:             "m",
		MaxTokens:         10,
		Temperature:       0.5,
		TopP:              0.9,
		TopK:              5,
		RepetitionPenalty: 1.1,
	}

	p := d.Parameters()
	if p.Model != "m" || *p.MaxTokens != 10 || *p.Temperature != 0.5 || *p.TopK != 5 {
		t.Errorf("unexpected parameters: %+v", p)
	}
	if p.Stop != nil {
		t.Error("expected no stop sequence")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "valid",
			yaml: `
provider: test
defaults: {model: b, max_tokens: 10, temperature: 1, top_p: 1, top_k: 1, repetition_penalty: 1}
models:
  b: {display_name: B}
  a: {display_name: A}
`,
		},
		{
			name:    "no models",
			yaml:    "provider: test\ndefaults: {model: a, max_tokens: 10, top_k: 1, repetition_penalty: 1}\n",
			wantErr: "lists no models",
		},
		{
			name: "defaults out of range",
			yaml: `
provider: test
defaults: {model: a, max_tokens: 5000, top_k: 1, repetition_penalty: 1}
models:
  a: {display_name: A}
`,
			wantErr: "max_tokens",
		},
		{
			name:    "malformed",
			yaml:    "provider: [",
			wantErr: "unmarshal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry, err := Parse([]byte(tt.yaml))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse returned error: %v", err)
			}
			models := registry.Models()
			if len(models) != 2 || models[0].ID != "b" || models[1].ID != "a" {
				t.Errorf("order not preserved: %+v", models)
			}
		})
	}
}
