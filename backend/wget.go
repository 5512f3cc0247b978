package backend

// wgetTool builds invocations in wget's combined --flag=value grammar.
type wgetTool struct {
	base
}

// BuildArgs composes wget's argument vector for one request:
//
//	--output-document=- --quiet --save-headers --user-agent=<agent>
//	--header=<line>... [--user=<user> --password=<password>] <url>
//
// The credential is split once at the first ':'; a credential with no
// separator contributes nothing. --verbose takes the place of --quiet when
// the request asks for it. Header lines and the URL travel as discrete
// argument elements, so nothing is ever interpreted by a shell.
func (t *wgetTool) BuildArgs(req Request) []string {
	user, password, hasCred := splitCredential(req.Auth)

	n := 5 + len(req.Headers)
	if hasCred {
		n += 2
	}
	args := make([]string, 0, n)

	args = append(args, "--output-document=-")
	if req.Verbose {
		args = append(args, "--verbose")
	} else {
		args = append(args, "--quiet")
	}
	args = append(args, "--save-headers", "--user-agent="+req.UserAgent)
	for _, h := range req.Headers {
		args = append(args, "--header="+h)
	}
	if hasCred {
		args = append(args, "--user="+user, "--password="+password)
	}
	return append(args, req.URL)
}
