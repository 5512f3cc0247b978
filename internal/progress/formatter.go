package progress

import "fmt"

// buildTransferMessage constructs the in-flight transfer message
func buildTransferMessage(info TransferInfo) string {
	msg := fmt.Sprintf("Fetching %s via %s", info.URL, info.Tool)

	if info.OutputPath != "" && info.OutputPath != "-" {
		msg += fmt.Sprintf(" to %s", info.OutputPath)
	}

	return msg
}

// formatBytes renders a byte count in binary units ("512 B", "1.2 MiB")
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// checkmark returns the appropriate checkmark symbol
func checkmark(symbols ProgressSymbols, supportsColor bool) string {
	mark := symbols.Checkmark
	if supportsColor && symbols.Checkmark == "✓" {
		mark = "\033[32m" + mark + "\033[0m" // Green
	}
	return mark
}

// failureMark returns the appropriate failure symbol
func failureMark(symbols ProgressSymbols, supportsColor bool) string {
	mark := symbols.Failure
	if supportsColor && symbols.Failure == "✗" {
		mark = "\033[31m" + mark + "\033[0m" // Red
	}
	return mark
}
