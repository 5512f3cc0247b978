package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"
)

// ValidationError represents a configuration validation error with context
type ValidationError struct {
	FilePath string
	Line     int
	Column   int
	Message  string
	Field    string
}

func (e *ValidationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s", e.FilePath, e.Line, e.Column, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: field '%s': %s", e.FilePath, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.FilePath, e.Message)
}

// ValidateSyntax checks whether a config file parses at all, dispatching on
// the file extension the same way Load does. Returns nil if valid, or a
// ValidationError with position information where the parser provides it.
func ValidateSyntax(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // Missing file is not an error - will use defaults
		}
		if os.IsPermission(err) {
			return &ValidationError{
				FilePath: filePath,
				Message:  "permission denied",
			}
		}
		return &ValidationError{
			FilePath: filePath,
			Message:  err.Error(),
		}
	}

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yml", ".yaml":
		return ValidateYAMLSyntaxFromBytes(data, filePath)
	default:
		return validateJSONSyntax(data, filePath)
	}
}

// ValidateYAMLSyntaxFromBytes checks if YAML data has valid syntax.
// Returns nil if valid, or a ValidationError if invalid.
func ValidateYAMLSyntaxFromBytes(data []byte, filePath string) error {
	// Empty data is valid - will use defaults
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		var typeError *yaml.TypeError
		if errors.As(err, &typeError) {
			// yaml.TypeError contains multiple error strings
			return &ValidationError{
				FilePath: filePath,
				Message:  strings.Join(typeError.Errors, "; "),
			}
		}

		// Try to extract line/column from yaml error message
		// yaml.v3 errors typically include "line X" information
		line, column := extractLineColumn(err.Error())
		return &ValidationError{
			FilePath: filePath,
			Line:     line,
			Column:   column,
			Message:  cleanYAMLError(err.Error()),
		}
	}

	return nil
}

// validateJSONSyntax checks if JSON data has valid syntax, mapping the
// decoder's byte offset back to a line and column.
func validateJSONSyntax(data []byte, filePath string) error {
	// Empty data is valid - will use defaults
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	var v interface{}
	err := json.Unmarshal(data, &v)
	if err == nil {
		return nil
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		line, column := offsetToPosition(data, syntaxErr.Offset)
		return &ValidationError{
			FilePath: filePath,
			Line:     line,
			Column:   column,
			Message:  syntaxErr.Error(),
		}
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		line, column := offsetToPosition(data, typeErr.Offset)
		return &ValidationError{
			FilePath: filePath,
			Line:     line,
			Column:   column,
			Message:  err.Error(),
		}
	}
	return &ValidationError{
		FilePath: filePath,
		Message:  err.Error(),
	}
}

// ValidateConfigValues validates configuration values against expected types and constraints.
// Returns nil if valid, or a ValidationError with field information if invalid.
func ValidateConfigValues(cfg *Configuration, filePath string) error {
	// Backend: must name a known selection mode
	if cfg.Backend == "" {
		return &ValidationError{
			FilePath: filePath,
			Field:    "backend",
			Message:  "is required",
		}
	}
	switch cfg.Backend {
	case "auto", "wget", "curl":
	default:
		return &ValidationError{
			FilePath: filePath,
			Field:    "backend",
			Message:  "must be one of: auto, wget, curl",
		}
	}

	// Verbosity: min=0, max=3
	if cfg.Verbosity < 0 || cfg.Verbosity > 3 {
		return &ValidationError{
			FilePath: filePath,
			Field:    "verbosity",
			Message:  "must be between 0 and 3",
		}
	}

	// Timeout: omitempty, min=1, max=604800 (0 means no timeout)
	if cfg.Timeout != 0 && (cfg.Timeout < 1 || cfg.Timeout > 604800) {
		return &ValidationError{
			FilePath: filePath,
			Field:    "timeout",
			Message:  "must be between 1 and 604800 (or 0 for no timeout)",
		}
	}

	return nil
}

// ValidateFile checks a config file end to end: syntax first, then field
// constraints with the defaults filled in underneath, so a partial file is
// judged the way Load would treat it.
func ValidateFile(filePath string) error {
	if err := ValidateSyntax(filePath); err != nil {
		return err
	}

	k := koanf.New(".")
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
	if _, err := os.Stat(filePath); err == nil {
		if err := k.Load(file.Provider(filePath), parserFor(filePath)); err != nil {
			return &ValidationError{FilePath: filePath, Message: err.Error()}
		}
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return &ValidationError{FilePath: filePath, Message: err.Error()}
	}

	return ValidateConfigValues(&cfg, filePath)
}

// offsetToPosition converts a byte offset into a 1-based line and column.
func offsetToPosition(data []byte, offset int64) (line, column int) {
	line, column = 1, 1
	for i := int64(0); i < offset && i < int64(len(data)); i++ {
		if data[i] == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return line, column
}

// extractLineColumn attempts to extract line and column numbers from a YAML error message.
// Returns 0, 0 if unable to extract.
func extractLineColumn(errMsg string) (line, column int) {
	// yaml.v3 errors look like: "yaml: line 5: could not find expected ':'"
	var l, c int
	if n, _ := fmt.Sscanf(errMsg, "yaml: line %d: column %d:", &l, &c); n == 2 {
		return l, c
	}
	if n, _ := fmt.Sscanf(errMsg, "yaml: line %d:", &l); n == 1 {
		return l, 1
	}
	return 0, 0
}

// cleanYAMLError removes the "yaml: line X:" prefix from error messages for cleaner output.
func cleanYAMLError(errMsg string) string {
	// Remove "yaml: line X:" prefix
	if idx := strings.LastIndex(errMsg, ": "); idx > 0 {
		// Check if this looks like a yaml error
		if strings.HasPrefix(errMsg, "yaml:") {
			return errMsg[idx+2:]
		}
	}
	return errMsg
}
