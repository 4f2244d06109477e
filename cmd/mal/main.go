// Command mal is a read-eval-print loop and script runner for the Mal
// dialect implemented by this module.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-mal/cmd/mal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
