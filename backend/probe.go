package backend

import "os/exec"

// Availability cache states. The zero value must be probeUnknown so the
// package-level singletons start unprobed.
const (
	probeUnknown int32 = iota
	probeAbsent
	probePresent
)

// Available reports whether the tool can be launched, probing at most once
// per process in the common case. Concurrent first calls may each run a
// redundant probe; both compute the same value and the cache write is a
// single atomic store, so no torn or invalid state can be observed. That
// race is tolerated, not prevented.
func (b *base) Available() bool {
	switch b.avail.Load() {
	case probePresent:
		return true
	case probeAbsent:
		return false
	}
	present := probe(b.command, b.versionFlag)
	if present {
		b.avail.Store(probePresent)
	} else {
		b.avail.Store(probeAbsent)
	}
	return present
}

// InvalidateProbes clears the cached probe results so the next Available
// call re-examines the system. Exported for tests that stub tools onto PATH.
func InvalidateProbes() {
	wget.avail.Store(probeUnknown)
	curl.avail.Store(probeUnknown)
}

// probe launches the program with its version flag, all three standard
// streams attached to the null device, and waits for it to exit. True only
// when the process started and exited normally with status zero; a start
// failure, a signal death, or any non-zero status means the tool is not
// usable. Blocking; callers run it during backend resolution only, never on
// the read path.
func probe(command, versionFlag string) bool {
	cmd := exec.Command(command, versionFlag)
	// Stdin, Stdout, and Stderr left nil attach each to the null device.
	return cmd.Run() == nil
}
