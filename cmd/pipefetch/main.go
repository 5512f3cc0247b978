// pipefetch - Stream remote resources through external download tools
// Source: https://github.com/schoolboyqueue/pipefetch

package main

import (
	"os"

	"github.com/schoolboyqueue/pipefetch/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
