package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWgetBuildArgs(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		req  Request
		want []string
	}{
		"no headers no credential": {
			req: Request{URL: "http://stream.example.com/live", UserAgent: "pipefetch/1.0"},
			want: []string{
				"--output-document=-", "--quiet", "--save-headers",
				"--user-agent=pipefetch/1.0",
				"http://stream.example.com/live",
			},
		},
		"headers in caller order": {
			req: Request{
				URL:       "http://stream.example.com/live",
				UserAgent: "pipefetch/1.0",
				Headers:   []string{"Icy-MetaData: 1", "Range: bytes=0-"},
			},
			want: []string{
				"--output-document=-", "--quiet", "--save-headers",
				"--user-agent=pipefetch/1.0",
				"--header=Icy-MetaData: 1",
				"--header=Range: bytes=0-",
				"http://stream.example.com/live",
			},
		},
		"duplicate headers preserved": {
			req: Request{
				URL:       "http://stream.example.com/live",
				UserAgent: "pipefetch/1.0",
				Headers:   []string{"X-Tag: a", "X-Tag: a"},
			},
			want: []string{
				"--output-document=-", "--quiet", "--save-headers",
				"--user-agent=pipefetch/1.0",
				"--header=X-Tag: a",
				"--header=X-Tag: a",
				"http://stream.example.com/live",
			},
		},
		"credential split into user and password": {
			req: Request{
				URL:       "http://stream.example.com/live",
				UserAgent: "pipefetch/1.0",
				Auth:      "alice:secret",
			},
			want: []string{
				"--output-document=-", "--quiet", "--save-headers",
				"--user-agent=pipefetch/1.0",
				"--user=alice", "--password=secret",
				"http://stream.example.com/live",
			},
		},
		"credential without separator treated as absent": {
			req: Request{
				URL:       "http://stream.example.com/live",
				UserAgent: "pipefetch/1.0",
				Auth:      "alice",
			},
			want: []string{
				"--output-document=-", "--quiet", "--save-headers",
				"--user-agent=pipefetch/1.0",
				"http://stream.example.com/live",
			},
		},
		"credential split at first separator only": {
			req: Request{
				URL:       "http://stream.example.com/live",
				UserAgent: "pipefetch/1.0",
				Auth:      "alice:se:cret",
			},
			want: []string{
				"--output-document=-", "--quiet", "--save-headers",
				"--user-agent=pipefetch/1.0",
				"--user=alice", "--password=se:cret",
				"http://stream.example.com/live",
			},
		},
		"verbose replaces quiet": {
			req: Request{
				URL:       "http://stream.example.com/live",
				UserAgent: "pipefetch/1.0",
				Verbose:   true,
			},
			want: []string{
				"--output-document=-", "--verbose", "--save-headers",
				"--user-agent=pipefetch/1.0",
				"http://stream.example.com/live",
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.want, Wget.BuildArgs(test.req))
		})
	}
}

// TestWgetArgsLength checks the vector arithmetic across input shapes: the
// result must hold exactly the fixed flags, the agent, one token per header,
// two credential tokens when a separator is present, and the URL last.
func TestWgetArgsLength(t *testing.T) {
	t.Parallel()

	headers := []string{"A: 1", "B: 2", "C: 3"}
	for n := 0; n <= len(headers); n++ {
		for _, auth := range []string{"", "alice", "alice:secret"} {
			req := Request{
				URL:       "http://h/x",
				UserAgent: "ua/1",
				Headers:   headers[:n],
				Auth:      auth,
			}
			args := Wget.BuildArgs(req)

			want := 5 + n
			if _, _, ok := splitCredential(auth); ok {
				want += 2
			}
			if len(args) != want {
				t.Errorf("headers=%d auth=%q: len = %d, want %d", n, auth, len(args), want)
			}
			if args[len(args)-1] != req.URL {
				t.Errorf("headers=%d auth=%q: URL must be the final argument", n, auth)
			}
		}
	}
}

func TestWgetBuildArgsFreshlyAllocated(t *testing.T) {
	t.Parallel()

	req := Request{URL: "http://h/x", UserAgent: "ua/1"}
	first := Wget.BuildArgs(req)
	first[0] = "clobbered"
	assert.Equal(t, "--output-document=-", Wget.BuildArgs(req)[0])
}
