// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hana

// Function combinators used to build arguments for the structure operations.

// Id returns its argument.
func Id[A any](a A) A { return a }

// Const returns a function ignoring its argument and returning a.
func Const[A, B any](a A) func(B) A {
	return func(B) A { return a }
}

// Compose returns f ∘ g.
func Compose[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C { return f(g(a)) }
}

// Flip swaps the arguments of f.
func Flip[A, B, C any](f func(A, B) C) func(B, A) C {
	return func(b B, a A) C { return f(a, b) }
}

// Partial fixes the first argument of f.
func Partial[A, B, C any](f func(A, B) C, a A) func(B) C {
	return func(b B) C { return f(a, b) }
}

func Curry2[A, B, C any](f func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C { return f(a, b) }
	}
}

func Curry3[A, B, C, D any](f func(A, B, C) D) func(A) func(B) func(C) D {
	return func(a A) func(B) func(C) D {
		return func(b B) func(C) D {
			return func(c C) D { return f(a, b, c) }
		}
	}
}

// On applies g to both arguments before f: On(f, g)(x, y) = f(g(x), g(y)).
//
//	byLen := hana.On(func(a, b int) bool { return a < b }, func(s string) int { return len(s) })
func On[A, B, C any](f func(B, B) C, g func(A) B) func(A, A) C {
	return func(x, y A) C { return f(g(x), g(y)) }
}

// Demux feeds one argument to g and h and combines the results with f.
func Demux[A, B, C, D any](f func(B, C) D, g func(A) B, h func(A) C) func(A) D {
	return func(x A) D { return f(g(x), h(x)) }
}

// Lockstep applies g to the first argument and h to the second, then f.
func Lockstep[A, B, C, D, E any](f func(C, D) E, g func(A) C, h func(B) D) func(A, B) E {
	return func(x A, y B) E { return f(g(x), h(y)) }
}

// Apply calls f with a.
func Apply[A, B any](f func(A) B, a A) B { return f(a) }
