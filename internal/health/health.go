package health

import (
	"fmt"
	"os"

	"github.com/schoolboyqueue/pipefetch/backend"
	"github.com/schoolboyqueue/pipefetch/internal/config"
)

// CheckResult represents the result of a single health check
type CheckResult struct {
	Name    string
	Passed  bool
	Message string
}

// HealthReport contains all health check results
type HealthReport struct {
	Checks []CheckResult
	Passed bool
}

// RunHealthChecks probes every download tool and validates the config file
// the CLI would load. The report passes when at least one tool is usable;
// pipefetch needs one working helper, not all of them.
func RunHealthChecks(configPath string) *HealthReport {
	report := &HealthReport{
		Checks: make([]CheckResult, 0),
	}

	anyTool := false
	for _, tool := range backend.Catalog() {
		check := CheckTool(tool)
		report.Checks = append(report.Checks, check)
		if check.Passed {
			anyTool = true
		}
	}
	report.Passed = anyTool

	configCheck := CheckConfig(configPath)
	report.Checks = append(report.Checks, configCheck)
	if !configCheck.Passed {
		report.Passed = false
	}

	return report
}

// CheckTool checks whether one download tool is installed and responding.
func CheckTool(tool backend.Backend) CheckResult {
	if !tool.Available() {
		return CheckResult{
			Name:    tool.Name(),
			Passed:  false,
			Message: "not found in PATH",
		}
	}

	version, err := tool.Version()
	if err != nil {
		// The probe just succeeded; report the tool present without a banner.
		return CheckResult{
			Name:    tool.Name(),
			Passed:  true,
			Message: "found",
		}
	}

	return CheckResult{
		Name:    tool.Name(),
		Passed:  true,
		Message: version,
	}
}

// CheckConfig validates the config file the CLI would load. A missing file
// passes; pipefetch runs on defaults without one.
func CheckConfig(path string) CheckResult {
	if path == "" {
		path = config.DefaultLocalPath
	}

	if err := config.ValidateFile(path); err != nil {
		return CheckResult{
			Name:    "config",
			Passed:  false,
			Message: err.Error(),
		}
	}

	if _, err := os.Stat(path); err != nil {
		return CheckResult{
			Name:    "config",
			Passed:  true,
			Message: "no config file, using defaults",
		}
	}

	return CheckResult{
		Name:    "config",
		Passed:  true,
		Message: fmt.Sprintf("%s is valid", path),
	}
}

// FormatReport formats the health report for console output
func FormatReport(report *HealthReport) string {
	var output string

	for _, check := range report.Checks {
		if check.Passed {
			output += fmt.Sprintf("✓ %s: %s\n", check.Name, check.Message)
		} else {
			output += fmt.Sprintf("✗ %s: %s\n", check.Name, check.Message)
		}
	}

	return output
}
