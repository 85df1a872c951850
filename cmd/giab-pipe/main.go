package main

import (
	"fmt"
	"os"
)

// Any reported failure — missing input, read/write error, non-zero
// workflow exit — terminates with status 1.
func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
