// Package main provides the romberg command line tool.
package main

import (
	"fmt"
	"os"
)

const version = "v0.1.0-dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "romberg:", err)
		os.Exit(1)
	}
}
