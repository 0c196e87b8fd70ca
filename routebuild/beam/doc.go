// Package beam: see beam.go for State and CreateTrackRoute.
package beam
