// Package step: see step.go for Func, FirstImprovement, BestImprovement
// and RandomStep.
package step
