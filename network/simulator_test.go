package network

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"powsim/blockchain"
)

// growTo appends blocks until the node's chain reaches the target length.
func growTo(t *testing.T, node *Node, length int) {
	t.Helper()
	ctx := context.Background()
	for int(node.Store.Height()) < length {
		txs := []blockchain.Transaction{
			{Sender: "alice", Recipient: "bob", Amount: float64(node.Store.Height())},
		}
		_, err := node.Store.Append(ctx, txs)
		require.NoError(t, err)
	}
}

func TestNewSimulatorDefaults(t *testing.T) {
	sim, err := NewSimulator(context.Background(), 0, 2)
	require.NoError(t, err)
	require.Len(t, sim.Nodes(), DefaultNodeCount)

	for _, node := range sim.Nodes() {
		require.EqualValues(t, 1, node.Store.Height())
		require.NoError(t, node.Store.Validate())
	}

	// Independently mined genesis blocks are not shared.
	heads := map[string]bool{}
	for _, node := range sim.Nodes() {
		heads[node.Store.Head().Hash] = true
	}
	require.Greater(t, len(heads), 1, "expected divergent genesis blocks")
}

func TestSyncConvergesOnLongestValidChain(t *testing.T) {
	sim, err := NewSimulator(context.Background(), 4, 1)
	require.NoError(t, err)

	for i, length := range []int{3, 5, 4, 2} {
		growTo(t, sim.Nodes()[i], length)
	}
	want := sim.Nodes()[1].Store.Snapshot()
	require.True(t, want.IsValid())

	require.NoError(t, sim.SyncChains())

	for _, node := range sim.Nodes() {
		got := node.Store.Snapshot()
		require.EqualValues(t, 5, len(got.Blocks), "node %s did not converge", node.ID)
		require.Equal(t, want.Blocks, got.Blocks, "node %s holds a different chain", node.ID)
		require.NoError(t, node.Store.Validate())
	}
}

func TestSyncSkipsLongerInvalidChain(t *testing.T) {
	sim, err := NewSimulator(context.Background(), 3, 1)
	require.NoError(t, err)

	// Node 1 is longest but tampered; node 2 is the longest valid chain.
	growTo(t, sim.Nodes()[1], 5)
	tampered := sim.Nodes()[1].Store.Snapshot()
	tampered.Blocks[2].Transactions[0].Amount = 1e9
	require.NoError(t, sim.Nodes()[1].Store.Replace(tampered))

	growTo(t, sim.Nodes()[2], 4)
	want := sim.Nodes()[2].Store.Snapshot()

	require.NoError(t, sim.SyncChains())

	for _, node := range sim.Nodes() {
		got := node.Store.Snapshot()
		require.Equal(t, want.Blocks, got.Blocks, "node %s should hold node-2's chain", node.ID)
	}
}

func TestSyncPropagatesInvalidLeader(t *testing.T) {
	// The candidate scan starts from node 0 without a validity check.
	// When node 0 is both longest and tampered, its invalid chain wins —
	// a deliberate reproduction of the reference behavior.
	sim, err := NewSimulator(context.Background(), 3, 1)
	require.NoError(t, err)

	growTo(t, sim.Nodes()[0], 4)
	tampered := sim.Nodes()[0].Store.Snapshot()
	tampered.Blocks[1].Transactions[0].Amount = 1e9
	require.NoError(t, sim.Nodes()[0].Store.Replace(tampered))

	growTo(t, sim.Nodes()[1], 2)

	require.NoError(t, sim.SyncChains())

	for _, node := range sim.Nodes() {
		got := node.Store.Snapshot()
		require.Equal(t, tampered.Blocks, got.Blocks, "node %s should hold node-0's chain", node.ID)
		require.Error(t, node.Store.Validate(), "propagated chain should still be invalid")
	}
}
