// Command minesweep plays minesweeper in the terminal and runs scripted
// game scenarios.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/minesweep/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	code := cli.GetExitCode(err)

	var exitErr *cli.ExitError
	// Failures (lost game, failed scenarios) are already reported on stdout.
	if err != nil && (!errors.As(err, &exitErr) || code != cli.ExitFailure) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(code)
}
