// Command deccalc evaluates windowed decimal arithmetic and elementary
// functions from the command line.
//
//	deccalc quo 1 3
//	deccalc --window 50 pi
//	deccalc --window 40 --epsilon 0.00000000000000000001 exp 1
//	deccalc check
package main

import (
	"os"

	"github.com/decwindow/decimal/internal/cli"
)

func main() {
	if err := cli.New(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
