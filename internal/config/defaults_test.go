// Package config_test tests default configuration values and template generation.
// Related: internal/config/defaults.go
// Tags: config, defaults, configuration, template
package config

import (
	"strings"
	"testing"
)

func TestGetDefaultConfigTemplate(t *testing.T) {
	t.Parallel()

	template := GetDefaultConfigTemplate()

	// Verify template is not empty
	if template == "" {
		t.Error("GetDefaultConfigTemplate() returned empty string")
	}

	// Verify key sections are present
	expectedSections := []string{
		"Download tool settings",
		"backend:",
		"auth:",
		"user_agent:",
		"Transfer settings",
		"verbosity:",
		"timeout:",
		"show_progress:",
	}

	for _, section := range expectedSections {
		if !strings.Contains(template, section) {
			t.Errorf("GetDefaultConfigTemplate() missing section: %s", section)
		}
	}

	// The template must itself be a loadable config
	if err := ValidateYAMLSyntaxFromBytes([]byte(template), "template.yml"); err != nil {
		t.Errorf("GetDefaultConfigTemplate() is not valid YAML: %v", err)
	}
}

func TestGetDefaults(t *testing.T) {
	t.Parallel()

	defaults := GetDefaults()

	// Verify required keys exist
	requiredKeys := []string{
		"backend",
		"auth",
		"user_agent",
		"verbosity",
		"timeout",
		"show_progress",
	}

	for _, key := range requiredKeys {
		if _, ok := defaults[key]; !ok {
			t.Errorf("GetDefaults() missing required key: %s", key)
		}
	}

	// Verify specific default values
	if defaults["backend"] != "auto" {
		t.Errorf("backend default = %v, want 'auto'", defaults["backend"])
	}

	if defaults["verbosity"] != 0 {
		t.Errorf("verbosity default = %v, want 0", defaults["verbosity"])
	}

	if defaults["timeout"] != 0 {
		t.Errorf("timeout default = %v, want 0", defaults["timeout"])
	}

	if defaults["show_progress"] != true {
		t.Errorf("show_progress default = %v, want true", defaults["show_progress"])
	}
}
