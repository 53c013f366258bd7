// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/sparsemat/sparse"
)

// op is one of the three arithmetic operations offered by the menu.
type op string

const (
	opAdd op = "add"
	opSub op = "sub"
	opMul op = "mul"
)

// parseOp accepts flag spellings and menu numbers.
func parseOp(s string) (op, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "add", "addition":
		return opAdd, nil
	case "2", "sub", "subtract", "subtraction":
		return opSub, nil
	case "3", "mul", "multiply", "multiplication":
		return opMul, nil
	default:
		return "", fmt.Errorf("unknown operation %q (want add, sub or mul)", s)
	}
}

// title is the heading printed above a result.
func (o op) title() string {
	switch o {
	case opAdd:
		return "Addition"
	case opSub:
		return "Subtraction"
	default:
		return "Multiplication"
	}
}

func (o op) apply(a, b *sparse.Matrix, mulOpts ...sparse.Option) (*sparse.Matrix, error) {
	switch o {
	case opAdd:
		return a.Add(b)
	case opSub:
		return a.Sub(b)
	case opMul:
		return a.Mul(b, mulOpts...)
	default:
		return nil, fmt.Errorf("unknown operation %q", string(o))
	}
}
