// Package cluster implements balanced k-means clustering of requests to
// vehicles: location plus load balancing, used by the deterministic and
// randomized constructors before route building takes over (spec §4.4).
package cluster

import (
	"math"
	"math/rand"

	"github.com/eser-chr/scdf-heuristics-core/instance"
)

// Centers holds one 2D center per vehicle. Unassigned clusters sit at the
// origin, matching original_source/core/src/clustering.cpp's
// ClusterCenters default.
type Centers struct {
	Points []instance.Point // size nK
}

// NewCenters seeds one center per vehicle by shuffling reqs with rng and
// taking the pickup coordinates of the first min(nK, len(reqs)) of them.
// Mirrors clustering.cpp's ClusterCenters constructor exactly, except the
// shuffle source is the caller-owned rng rather than a fresh
// std::random_device each call.
func NewCenters(inst *instance.Instance, reqs []int, rng *rand.Rand) *Centers {
	shuffled := append([]int(nil), reqs...)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	centers := make([]instance.Point, inst.NK)
	used := inst.NK
	if len(shuffled) < used {
		used = len(shuffled)
	}
	for k := 0; k < used; k++ {
		centers[k] = inst.Coords[inst.PickupNode(shuffled[k])]
	}
	return &Centers{Points: centers}
}

// UpdateCenters recomputes each center as the mean pickup coordinate of its
// assigned requests. assign[i] is the cluster of reqs[i]; clusters with no
// assigned request are reset to the origin,
// matching clustering.cpp's update_centers (centers.assign resets to
// (0,0) before accumulating).
func (c *Centers) UpdateCenters(inst *instance.Instance, reqs, assign []int) {
	sums := make([]instance.Point, inst.NK)
	counts := make([]int, inst.NK)
	for i, r := range reqs {
		k := assign[i]
		p := inst.Coords[inst.PickupNode(r)]
		sums[k].X += p.X
		sums[k].Y += p.Y
		counts[k]++
	}
	for k := 0; k < inst.NK; k++ {
		if counts[k] > 0 {
			c.Points[k] = instance.Point{X: sums[k].X / float64(counts[k]), Y: sums[k].Y / float64(counts[k])}
		} else {
			c.Points[k] = instance.Point{}
		}
	}
}

// BalancedAssign assigns each request in reqs (in order) to the cluster k
// minimizing squared geographic distance plus squared load-imbalance
// against targetLoad, greedily updating running per-cluster load as it
// goes. Order-sensitive by design (spec §4.4), mirrors
// clustering.cpp's balanced_assign.
func BalancedAssign(inst *instance.Instance, centers *Centers, reqs []int, targetLoad float64) []int {
	assign := make([]int, len(reqs))
	load := make([]float64, inst.NK)

	for i, r := range reqs {
		pickup := inst.Coords[inst.PickupNode(r)]
		bestScore := math.Inf(1)
		bestK := 0
		for k := 0; k < inst.NK; k++ {
			d := pickup.Dist(centers.Points[k])
			loadAfter := load[k] + float64(inst.Demands[r])
			loadDev := loadAfter - targetLoad
			score := d*d + loadDev*loadDev
			if score < bestScore {
				bestScore = score
				bestK = k
			}
		}
		assign[i] = bestK
		load[bestK] += float64(inst.Demands[r])
	}
	return assign
}

// BalancedKMeans runs `restarts` independent balanced-kmeans attempts (each
// `iters` assign/update passes) and returns the assignment with the
// smallest final within-cluster squared distance. assign[i] is the cluster
// index of reqs[i]. Mirrors clustering.cpp's balanced_kmeans.
func BalancedKMeans(inst *instance.Instance, reqs []int, iters, restarts int, rng *rand.Rand) []int {
	var totalDemand float64
	for _, r := range reqs {
		totalDemand += float64(inst.Demands[r])
	}
	targetLoad := totalDemand / float64(inst.NK)

	bestAssign := make([]int, len(reqs))
	bestScore := math.Inf(1)

	for s := 0; s < restarts; s++ {
		centers := NewCenters(inst, reqs, rng)
		var assign []int
		for it := 0; it < iters; it++ {
			assign = BalancedAssign(inst, centers, reqs, targetLoad)
			centers.UpdateCenters(inst, reqs, assign)
		}

		var score float64
		for i, r := range reqs {
			p := inst.Coords[inst.PickupNode(r)]
			d := p.Dist(centers.Points[assign[i]])
			score += d * d
		}

		if score < bestScore {
			bestScore = score
			bestAssign = assign
		}
	}

	return bestAssign
}
