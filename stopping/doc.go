// Package stopping: see stopping.go for Criterion, MaxIterations,
// ObjectiveThreshold, ImprovementThreshold, AnyOf and AllOf.
package stopping
