// Package lns: see lns.go for Options, DefaultOptions and Run.
package lns
