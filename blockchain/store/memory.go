package store

import (
	"context"
	"errors"
	"sync"

	"powsim/blockchain"
)

// MemoryChainStore holds one chain behind a mutex. All reads after a
// Replace observe the new chain reference; no torn reads are possible.
type MemoryChainStore struct {
	mu    sync.RWMutex
	chain *blockchain.Chain
}

// NewMemoryChainStore bootstraps a store with a freshly mined genesis
// chain at the given difficulty.
func NewMemoryChainStore(ctx context.Context, difficulty int) (*MemoryChainStore, error) {
	chain, err := blockchain.NewChain(ctx, difficulty)
	if err != nil {
		return nil, err
	}
	return &MemoryChainStore{chain: chain}, nil
}

// Append forges and appends a block. The lock is held across mining,
// which serializes appends per chain.
func (m *MemoryChainStore) Append(ctx context.Context, txs []blockchain.Transaction) (*blockchain.Block, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.chain.Forge(ctx, txs)
}

// Mine sets the chain-wide difficulty and forges the next block without
// releasing the lock in between. Two concurrent mine requests therefore
// each get a block satisfying their own requested difficulty.
func (m *MemoryChainStore) Mine(ctx context.Context, txs []blockchain.Transaction, difficulty int) (*blockchain.Block, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.chain.Difficulty = difficulty
	return m.chain.Forge(ctx, txs)
}

func (m *MemoryChainStore) Head() *blockchain.Block {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.chain.Latest()
}

func (m *MemoryChainStore) Height() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return uint64(len(m.chain.Blocks))
}

// Snapshot returns a shallow copy of the chain. The copy's block slice
// is independent, so the caller can inspect or extend it without racing
// appends to the store.
func (m *MemoryChainStore) Snapshot() *blockchain.Chain {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.chain.Clone()
}

func (m *MemoryChainStore) Validate() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.chain.Validate()
}

// SetDifficulty updates the chain-wide difficulty used for both mining
// and validation.
func (m *MemoryChainStore) SetDifficulty(difficulty int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.chain.Difficulty = difficulty
}

// Replace swaps the stored chain wholesale. Used after the network has
// selected a better chain; the store keeps its identity, the contents
// do not.
func (m *MemoryChainStore) Replace(chain *blockchain.Chain) error {
	if chain == nil {
		return errors.New("cannot replace with nil chain")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.chain = chain
	return nil
}
