package main

import (
	"fmt"
	"os"
)

func main() {
	exitCode := 0
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		exitCode = 1
	}

	syncLogger()
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
