package progress_test

import (
	"testing"

	"github.com/schoolboyqueue/pipefetch/internal/progress"
)

// BenchmarkTransferDisplay_AddBytes verifies per-chunk accounting stays cheap
// enough to sit on the copy loop's hot path
func BenchmarkTransferDisplay_AddBytes(b *testing.B) {
	caps := progress.TerminalCapabilities{
		IsTTY: false, // Avoid spinner overhead in benchmark
	}

	display := progress.NewTransferDisplay(caps)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		display.AddBytes(32 * 1024)
	}
}
