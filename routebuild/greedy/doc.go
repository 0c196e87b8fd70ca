// Package greedy: see greedy.go for BuildRoute, BuildRouteGreedy.
package greedy
