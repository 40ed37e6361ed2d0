// Command windreport renders wind-load calculation results into
// Markdown reports. It is a thin wrapper: the model arrives as a YAML
// document exported by the calculation engine, and the output is ready
// for pandoc conversion.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
