// Package pure holds small combinators over pure functions.
package pure

// Compose returns the function that applies f and then g: Compose(f, g)(x) == g(f(x)).
func Compose[T, R1, R2 any](f func(T) R1, g func(R1) R2) func(T) R2 {
	return func(x T) R2 {
		return g(f(x))
	}
}

// Identity returns its argument unchanged.
// It is the neutral element of Compose on both sides.
func Identity[T any](x T) T {
	return x
}
