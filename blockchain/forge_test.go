package blockchain

import (
	"context"
	"testing"
)

func TestForgeLinksBlocks(t *testing.T) {
	ctx := context.Background()
	chain, err := NewChain(ctx, 1)
	if err != nil {
		t.Fatalf("NewChain failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		txs := []Transaction{{Sender: "alice", Recipient: "bob", Amount: float64(i)}}
		block, err := chain.Forge(ctx, txs)
		if err != nil {
			t.Fatalf("Forge %d failed: %v", i, err)
		}
		if block != chain.Latest() {
			t.Fatal("forged block is not the chain head")
		}
	}

	if len(chain.Blocks) != 4 {
		t.Fatalf("expected 4 blocks, got %d", len(chain.Blocks))
	}

	for i := 1; i < len(chain.Blocks); i++ {
		if chain.Blocks[i].PreviousHash != chain.Blocks[i-1].Hash {
			t.Errorf("block %d: previous hash does not match parent", i)
		}
		if chain.Blocks[i].Index != uint64(i) {
			t.Errorf("block %d: wrong index %d", i, chain.Blocks[i].Index)
		}
	}
}

func TestLatestPanicsOnEmptyChain(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic from Latest on empty chain")
		}
	}()

	empty := &Chain{}
	empty.Latest()
}

func TestCloneSharesBlocksNotSlice(t *testing.T) {
	ctx := context.Background()
	chain, err := NewChain(ctx, 1)
	if err != nil {
		t.Fatalf("NewChain failed: %v", err)
	}
	if _, err := chain.Forge(ctx, nil); err != nil {
		t.Fatalf("Forge failed: %v", err)
	}

	clone := chain.Clone()
	if len(clone.Blocks) != len(chain.Blocks) {
		t.Fatal("clone has different length")
	}
	if clone.Blocks[0] != chain.Blocks[0] {
		t.Error("clone should share block values")
	}

	// Growing the clone must not grow the original.
	clone.Blocks = append(clone.Blocks, NewBlock(99, nil, "", ""))
	if len(chain.Blocks) != 2 {
		t.Error("appending to clone mutated the original slice")
	}
}
