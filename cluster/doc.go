// Package cluster: see cluster.go for Centers, BalancedAssign and
// BalancedKMeans. No sentinel errors; a degenerate nK=0 never reaches this
// package since instance.NewInstance already rejects it.
package cluster
