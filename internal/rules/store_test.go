package rules

import (
	"os"
	"path/filepath"
	"testing"

	"core/internal/model"
)

func writeTempRules(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "disposal_rules.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp rules file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeTempRules(t, `{
		"battery": {
			"display_name": "Battery",
			"category": "Hazardous E-waste",
			"disposal_steps": ["Do not incinerate", "Take to collection point"],
			"hazards": "Contains lead",
			"tips": "Tape the terminals"
		},
		"mobile_phone": {
			"display_name": "Mobile Phone",
			"category": "E-waste"
		}
	}`)

	store, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if store.Len() != 2 {
		t.Errorf("Expected 2 rules, got %d", store.Len())
	}

	rule, ok := store.Get("battery")
	if !ok {
		t.Fatal("Expected battery rule to exist")
	}
	if rule.DisplayName != "Battery" {
		t.Errorf("Expected display name 'Battery', got %q", rule.DisplayName)
	}
	if len(rule.DisposalSteps) != 2 {
		t.Errorf("Expected 2 disposal steps, got %d", len(rule.DisposalSteps))
	}
	if rule.Hazards != "Contains lead" {
		t.Errorf("Unexpected hazards: %q", rule.Hazards)
	}
}

func TestLoad_MissingStepsDefaultToEmpty(t *testing.T) {
	path := writeTempRules(t, `{
		"charger": {"display_name": "Charger", "category": "E-waste"}
	}`)

	store, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	rule, ok := store.Get("charger")
	if !ok {
		t.Fatal("Expected charger rule to exist")
	}
	if rule.DisposalSteps == nil {
		t.Error("Expected disposal steps to default to empty slice, got nil")
	}
	if len(rule.DisposalSteps) != 0 {
		t.Errorf("Expected empty disposal steps, got %v", rule.DisposalSteps)
	}
}

func TestLoad_Failures(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content string
	}{
		{
			name: "Missing file",
			path: filepath.Join(t.TempDir(), "does_not_exist.json"),
		},
		{
			name:    "Malformed JSON",
			content: `{"battery": {`,
		},
		{
			name:    "Empty rule set",
			content: `{}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.path
			if path == "" {
				path = writeTempRules(t, tt.content)
			}
			if _, err := Load(path); err == nil {
				t.Error("Expected load to fail, got nil error")
			}
		})
	}
}

func TestLabelsAndSummaries(t *testing.T) {
	store := NewStore(map[string]model.DisposalRule{
		"tv":      {DisplayName: "Television", Category: "Large E-waste"},
		"battery": {DisplayName: "Battery", Category: "Hazardous E-waste"},
		"mobile":  {DisplayName: "Mobile Phone", Category: "E-waste"},
	})

	labels := store.Labels()
	want := []string{"battery", "mobile", "tv"}
	if len(labels) != len(want) {
		t.Fatalf("Expected %d labels, got %d", len(want), len(labels))
	}
	for i, label := range want {
		if labels[i] != label {
			t.Errorf("Expected label %q at position %d, got %q", label, i, labels[i])
		}
	}

	summaries := store.Summaries()
	if len(summaries) != 3 {
		t.Fatalf("Expected 3 summaries, got %d", len(summaries))
	}
	if summaries[0].Class != "battery" || summaries[0].DisplayName != "Battery" {
		t.Errorf("Unexpected first summary: %+v", summaries[0])
	}
}
