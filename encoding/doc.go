// Package encoding: see encoding.go for Encoding, New, Decode, Add, Combine
// and IsCorrect. Errors: ErrDimensionMismatch.
package encoding
