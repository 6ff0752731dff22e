package store

import (
	"context"

	"powsim/blockchain"
)

// ChainStore guards a single chain. A store keeps its identity across
// chain replacement, which is what makes it the unit of "node" in the
// network simulation.
type ChainStore interface {
	// Append forges a block from the transactions and grows the chain.
	Append(ctx context.Context, txs []blockchain.Transaction) (*blockchain.Block, error)

	// Mine applies the difficulty and forges under one critical
	// section, so concurrent callers cannot mine at each other's
	// difficulty.
	Mine(ctx context.Context, txs []blockchain.Transaction, difficulty int) (*blockchain.Block, error)

	// Getters
	Head() *blockchain.Block
	Height() uint64
	Snapshot() *blockchain.Chain
	Validate() error

	// Settings / replacement
	SetDifficulty(difficulty int)
	Replace(chain *blockchain.Chain) error
}
