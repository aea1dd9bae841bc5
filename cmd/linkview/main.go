/*
linkview is a terminal viewer that links a scatter plot and a
parallel-coordinates plot of one tabular dataset through a shared selection.
*/
package main

import (
	"fmt"
	"os"
)

func main() {
	rootCmd := NewRootCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
