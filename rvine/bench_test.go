// SPDX-License-Identifier: MIT
package rvine_test

import (
	"testing"

	"github.com/katalvlaran/govine/rvine"
)

// benchDVine builds a D-vine of dimension d with the identity order.
// It fails the benchmark on unexpected errors.
func benchDVine(b *testing.B, d int) *rvine.Matrix {
	order := make([]int, d)
	for i := range order {
		order[i] = i + 1
	}
	m, err := rvine.NewDVine(order)
	if err != nil {
		b.Fatalf("NewDVine failed: %v", err)
	}
	return m
}

// BenchmarkNew_Validation benchmarks the full construction-time validation
// (including the O(d³) proximity check) on a 25-dimensional structure.
func BenchmarkNew_Validation(b *testing.B) {
	rows := benchDVine(b, 25).Raw()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rvine.New(rows); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}

// BenchmarkInNaturalOrder benchmarks canonicalization on a 25-dimensional
// structure with a scrambled labeling.
func BenchmarkInNaturalOrder(b *testing.B) {
	order := make([]int, 25)
	for i := range order {
		order[i] = 25 - i
	}
	m, err := rvine.NewDVine(order)
	if err != nil {
		b.Fatalf("NewDVine failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.InNaturalOrder()
	}
}

// BenchmarkNeededHFuncs benchmarks both mask derivations together, the way
// a density evaluator computes them once per structure.
func BenchmarkNeededHFuncs(b *testing.B) {
	m := benchDVine(b, 25)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.NeededHFunc1()
		_ = m.NeededHFunc2()
	}
}
