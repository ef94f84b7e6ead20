// Command memnetdemo is a small smoke-test harness around the network
// package: it wires up a handful of units, drives them with a hardcoded
// stimulation script, and either prints a live terminal dashboard of the
// result or records it to a report file. It is not a general-purpose
// experiment runner: there is no markdown/experiment-file parser here, and
// no plotting beyond what lipgloss can draw in a terminal.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "memnetdemo",
		Short: "Drive a small associative memory network and watch it settle",
	}
	root.AddCommand(newRunCmd())
	root.AddCommand(newRecordCmd())
	return root
}
