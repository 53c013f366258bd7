// SPDX-License-Identifier: MIT

// Command sparsecalc adds, subtracts or multiplies two matrices stored in the
// sparse text format.
//
// With -op it runs once:
//
//	sparsecalc -op mul -a left.txt -b right.txt -out product.txt
//
// Without -op it shows the interactive menu and saves each result to the
// file configured for that operation (result_add.txt, result_subtract.txt,
// result_multiply.txt by default). Paths ending in .zst are zstd-compressed.
package main

import (
	"flag"
	"log"
	"os"
)

func main() {
	var (
		opName    = flag.String("op", "", "operation: add | sub | mul (empty: interactive menu)")
		pathA     = flag.String("a", "", "path to the first matrix file")
		pathB     = flag.String("b", "", "path to the second matrix file")
		outPath   = flag.String("out", "", "result file (default: per-operation path from config)")
		cfgPath   = flag.String("config", "", "optional YAML config file")
		printGrid = flag.Bool("print", false, "print the result as a dense grid")
	)
	flag.Parse()

	logger := log.New(os.Stderr, "sparsecalc: ", 0)

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		logger.Fatalf("config: %v", err)
	}
	if *printGrid {
		cfg.Print = true
	}

	a := newApp(cfg, os.Stdin, os.Stdout, logger)
	if *opName == "" {
		if err := a.interactive(); err != nil {
			logger.Fatal(err)
		}
		return
	}

	o, err := parseOp(*opName)
	if err != nil {
		logger.Fatal(err)
	}
	if err := a.runOnce(o, *pathA, *pathB, *outPath); err != nil {
		logger.Fatalf("Error: %v", err)
	}
}
