// Package main provides the deepthought CLI.
package main

import (
	"fmt"
	"os"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	args := os.Args[2:]
	switch os.Args[1] {
	case "version":
		fmt.Printf("deepthought %s\n", version)
	case "xor":
		runXOR(args)
	case "csv":
		runCSV(args)
	default:
		fmt.Printf("unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("deepthought - neural networks on forward-mode automatic differentiation")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  xor        Train a 2-3-3-1 network on XOR")
	fmt.Println("  csv        Train a regression/classification network on a CSV file")
	fmt.Println("")
	fmt.Println("Run 'deepthought <command> -h' for command flags.")
}
