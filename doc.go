// Package linalg is your in-memory toolkit for vectors, matrices and
// row reduction: small immutable value types with an explicit, error-first API.
//
// 🚀 What is linalg?
//
//	A compact, pure-Go linear algebra library that brings together:
//		• Vector: immutable float64 sequences with arithmetic, magnitude & direction
//		• Matrix: immutable row-major grids, built from rows or from columns
//		• Algebra: add, subtract, scale, matrix/vector products, augmentation, powers
//		• Reduction: row echelon form, Gauss-Jordan, determinant, rank, linear solve
//		• Geometry helpers: dot, cross & triple products, basis vectors, Levi-Civita
//
// ✨ Why choose linalg?
//
//   - Value semantics – every operation returns a fresh value, inputs never change
//   - Explicit errors – sentinel errors matched with errors.Is, no panics
//   - Canonical text forms – <1, 2, 3> vectors and (<1, 2>, <3, 4>) matrices
//   - Pure Go core – no cgo, safe for concurrent use without locks
//
// Under the hood, everything is organized under three subpackages:
//
//	vector/     — the Vector value type plus free geometry helpers
//	matrix/     — the Matrix value type, its algebra and the reduction engine
//	converters/ — two-way adapters between linalg values and gonum/mat
//
// Quick example:
//
//	A, _ := matrix.New([]float64{1, 2}, []float64{3, 4})
//	det, _ := A.Determinant()          // -2
//	fmt.Println(matrix.EchelonForm(A)) // (<1, 2>, <0, -2>)
//
//	go get github.com/katalvlaran/linalg
package linalg
