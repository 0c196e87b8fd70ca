package cluster_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eser-chr/scdf-heuristics-core/cluster"
	"github.com/eser-chr/scdf-heuristics-core/instance"
)

// twoClusterInstance places two well-separated pairs of requests so
// balanced k-means has an obvious correct answer to converge to.
func twoClusterInstance(t *testing.T) *instance.Instance {
	t.Helper()
	// n=4 requests: 0,1 near (0,0); 2,3 near (100,100). nK=2.
	coords := make([]instance.Point, 9) // depot + 4 pickups + 4 deliveries
	coords[0] = instance.Point{X: 50, Y: 50}
	coords[1] = instance.Point{X: 0, Y: 0}
	coords[2] = instance.Point{X: 1, Y: 1}
	coords[3] = instance.Point{X: 100, Y: 100}
	coords[4] = instance.Point{X: 101, Y: 101}
	for i := 5; i <= 8; i++ {
		coords[i] = coords[i-4] // deliveries colocated with pickups for this test
	}
	inst, err := instance.NewInstance("clusters", 4, 2, 10, 4, 0, instance.Jain, []int{1, 1, 1, 1}, coords)
	require.NoError(t, err)
	return inst
}

func TestBalancedKMeansSeparatesClusters(t *testing.T) {
	inst := twoClusterInstance(t)
	rng := rand.New(rand.NewSource(1))
	reqs := []int{0, 1, 2, 3}

	assign := cluster.BalancedKMeans(inst, reqs, 20, 20, rng)
	require.Len(t, assign, 4)

	// requests 0,1 must land in the same cluster, distinct from 2,3's.
	require.Equal(t, assign[0], assign[1])
	require.Equal(t, assign[2], assign[3])
	require.NotEqual(t, assign[0], assign[2])
}

func TestBalancedAssignRespectsLoadBalance(t *testing.T) {
	inst := twoClusterInstance(t)
	centers := &cluster.Centers{Points: []instance.Point{{X: 0, Y: 0}, {X: 100, Y: 100}}}
	// Requests 0,1 sit at center 0 and 2,3 at center 1; with unit demands
	// and target load 2 each cluster must end with a load of exactly 2.
	assign := cluster.BalancedAssign(inst, centers, []int{0, 1, 2, 3}, 2.0)
	require.Len(t, assign, 4)
	loads := make([]int, inst.NK)
	for _, k := range assign {
		require.GreaterOrEqual(t, k, 0)
		require.Less(t, k, inst.NK)
		loads[k]++
	}
	require.Equal(t, []int{2, 2}, loads)
}

func TestNewCentersUsesAtMostNKPoints(t *testing.T) {
	inst := twoClusterInstance(t)
	rng := rand.New(rand.NewSource(7))
	centers := cluster.NewCenters(inst, []int{0, 1, 2, 3}, rng)
	require.Len(t, centers.Points, inst.NK)
}
