// Command linerle run-length encodes text lines from files or standard input.
//
// Usage:
//
//	linerle [-o outputFile] [inputFile...]
//
// The byte totals are printed to standard error when all input is processed.
package main

import (
	"context"
	"os"

	"github.com/arloliu/linerle/internal/cli"
)

func main() {
	os.Exit(cli.Run(context.Background(), os.Args, cli.Streams{
		In:  os.Stdin,
		Out: os.Stdout,
		Err: os.Stderr,
	}))
}
