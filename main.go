package main

import (
	"fmt"
	"os"

	"toruslife/utils"
)

func main() {
	args := os.Args[1:]
	if len(args) != utils.NumArgs {
		printUsage()
		os.Exit(2)
	}

	config, err := utils.ParseArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "toruslife: %v\n", err)
		os.Exit(1)
	}

	if err := run(config); err != nil {
		fmt.Fprintf(os.Stderr, "toruslife: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: toruslife <width> <height> <div_a> <div_b>")
	fmt.Fprintln(os.Stderr, "  width, height  grid dimensions in cells")
	fmt.Fprintln(os.Stderr, "  div_a, div_b   divisors of the initial seed pattern")
	fmt.Fprintln(os.Stderr, "  all four are unsigned integers greater than zero")
}
