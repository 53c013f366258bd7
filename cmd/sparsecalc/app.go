// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/katalvlaran/sparsemat/sparsefmt"
)

const menu = `Sparse Matrix Operations
1. Addition
2. Subtraction
3. Multiplication
4. Exit`

// app wires the config, the user's terminal and the sparse core together.
type app struct {
	cfg Config
	in  *bufio.Reader
	out io.Writer
	log *log.Logger
}

func newApp(cfg Config, in io.Reader, out io.Writer, logger *log.Logger) *app {
	return &app{cfg: cfg, in: bufio.NewReader(in), out: out, log: logger}
}

// compute loads both operands and applies o.
func (a *app) compute(o op, pathA, pathB string) (*sparse.Matrix, error) {
	if pathA == "" || pathB == "" {
		return nil, errors.New("two matrix files are required")
	}
	m1, err := sparsefmt.ReadFile(pathA)
	if err != nil {
		return nil, err
	}
	m2, err := sparsefmt.ReadFile(pathB)
	if err != nil {
		return nil, err
	}
	return o.apply(m1, m2, a.cfg.mulOptions()...)
}

// runOnce performs one operation and saves the result to outPath, or to the
// configured output for o when outPath is empty.
func (a *app) runOnce(o op, pathA, pathB, outPath string) error {
	res, err := a.compute(o, pathA, pathB)
	if err != nil {
		return err
	}
	if a.cfg.Print {
		fmt.Fprintf(a.out, "%s result:\n%s\n", o.title(), res)
	}
	if outPath == "" {
		outPath = a.cfg.outputFor(o)
	}
	if err := sparsefmt.WriteFile(outPath, res); err != nil {
		return err
	}
	a.log.Printf("%s: %dx%d, %d non-zero entries -> %s", o, res.Rows(), res.Cols(), res.NNZ(), outPath)
	fmt.Fprintf(a.out, "%s completed. Result saved to %s.\n", o.title(), outPath)
	return nil
}

// interactive runs the menu loop until the user picks Exit or input ends.
// Failures of a single round are reported as "Error: ..." and the loop goes on.
func (a *app) interactive() error {
	fmt.Fprintln(a.out, menu)
	for {
		choice, err := a.prompt("Enter your choice (1-4): ")
		if err != nil {
			return eofIsExit(err)
		}
		if choice == "4" {
			return nil
		}
		if !isMenuNumber(choice) {
			fmt.Fprintln(a.out, "Invalid choice. Please enter 1, 2, 3 or 4.")
			continue
		}
		o, _ := parseOp(choice) // menu numbers always parse

		pathA, err := a.prompt("Enter path to first matrix file: ")
		if err != nil {
			return eofIsExit(err)
		}
		pathB, err := a.prompt("Enter path to second matrix file: ")
		if err != nil {
			return eofIsExit(err)
		}

		if err := a.runOnce(o, pathA, pathB, ""); err != nil {
			fmt.Fprintf(a.out, "Error: %v\n", err)
		}
	}
}

func (a *app) prompt(msg string) (string, error) {
	fmt.Fprint(a.out, msg)
	line, err := a.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func isMenuNumber(s string) bool { return s == "1" || s == "2" || s == "3" }

func eofIsExit(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
