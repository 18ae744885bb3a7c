package main

import (
	"fmt"
	"os"

	"github.com/user/lutplot/internal/display"
)

func main() {
	cmd := newRootCmd(display.WindowDisplayer{})
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "lutplot: %v\n", err)
		os.Exit(1)
	}
}
