package backend

import (
	"errors"
	"fmt"
)

// ModeAuto selects a tool by probing the catalog. It is the default mode.
const ModeAuto = "auto"

// ErrUnknownBackend reports a selection mode that names no supported tool.
var ErrUnknownBackend = errors.New("unknown download backend")

// Resolve picks the tool for one transfer.
//
// Mode "auto" (or the empty string) probes any tool whose availability is
// still unknown and prefers wget; curl wins only when wget is absent and
// curl is present. With both absent, wget is still returned: launching it
// then fails downstream exactly as an unusable helper would, which keeps
// resolution free of extra failure modes.
//
// An explicit tool name selects that tool directly with no probing. Any
// other value is a configuration error; no probe runs and no process is
// created.
func Resolve(mode string) (Backend, error) {
	if mode == "" || mode == ModeAuto {
		wgetPresent := Wget.Available()
		curlPresent := Curl.Available()
		if !wgetPresent && curlPresent {
			return Curl, nil
		}
		return Wget, nil
	}
	if b, ok := Lookup(mode); ok {
		return b, nil
	}
	return nil, fmt.Errorf("%w: %q (valid modes: auto, wget, curl)", ErrUnknownBackend, mode)
}
