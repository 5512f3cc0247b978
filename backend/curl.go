package backend

// curlTool builds invocations in curl's split flag/value grammar.
type curlTool struct {
	base
}

// BuildArgs composes curl's argument vector for one request:
//
//	--silent --show-error --dump-header - --user-agent <agent>
//	--header <line>... [--user <credential>] <url>
//
// Unlike wget, the credential goes to curl whole whenever it is non-empty;
// curl applies its own user:password split. --verbose takes the place of
// --silent --show-error when the request asks for it. Header lines and the
// URL travel as discrete argument elements, so nothing is ever interpreted
// by a shell.
func (t *curlTool) BuildArgs(req Request) []string {
	n := 7 + 2*len(req.Headers)
	if req.Verbose {
		n-- // --verbose stands in for the two quiet flags
	}
	if req.Auth != "" {
		n += 2
	}
	args := make([]string, 0, n)

	if req.Verbose {
		args = append(args, "--verbose")
	} else {
		args = append(args, "--silent", "--show-error")
	}
	args = append(args, "--dump-header", "-", "--user-agent", req.UserAgent)
	for _, h := range req.Headers {
		args = append(args, "--header", h)
	}
	if req.Auth != "" {
		args = append(args, "--user", req.Auth)
	}
	return append(args, req.URL)
}
