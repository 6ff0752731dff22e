// Package node wires the primary chain and the network simulation into
// one explicitly constructed application context. Nothing here is a
// singleton: tests and callers build as many independent Apps as they
// want.
package node

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"

	"powsim/blockchain"
	"powsim/blockchain/store"
	"powsim/network"
)

// Config holds everything an App needs at construction time.
type Config struct {
	// NodeCount is the size of the simulated network. Zero means the
	// network default.
	NodeCount int

	// Difficulty is the initial mining difficulty for the primary chain
	// and every network node. Must be within the blockchain package's
	// difficulty bounds.
	Difficulty int
}

// App owns the primary chain the presentation layer mines and validates
// against, plus the simulated network it can synchronize. The current
// difficulty lives on the chain itself, guarded by the store's lock.
type App struct {
	chain   store.ChainStore
	network *network.Simulator
}

// New bootstraps the primary chain and the network. Genesis mining runs
// synchronously, so construction can take a moment and honors ctx.
func New(ctx context.Context, cfg Config) (*App, error) {
	if cfg.Difficulty < blockchain.MinDifficulty || cfg.Difficulty > blockchain.MaxDifficulty {
		return nil, fmt.Errorf("difficulty %d out of range [%d,%d]",
			cfg.Difficulty, blockchain.MinDifficulty, blockchain.MaxDifficulty)
	}

	chain, err := store.NewMemoryChainStore(ctx, cfg.Difficulty)
	if err != nil {
		return nil, errors.Wrap(err, "bootstrapping primary chain")
	}

	sim, err := network.NewSimulator(ctx, cfg.NodeCount, cfg.Difficulty)
	if err != nil {
		return nil, errors.Wrap(err, "bootstrapping network")
	}

	slog.Info("app initialized",
		"genesis", chain.Head().Hash,
		"nodes", len(sim.Nodes()),
		"difficulty", cfg.Difficulty)

	return &App{
		chain:   chain,
		network: sim,
	}, nil
}

// MineBlock sets the chain's current difficulty and appends a mined
// block holding the given transactions. The transactions are assumed to
// be boundary-validated already.
func (a *App) MineBlock(ctx context.Context, txs []blockchain.Transaction, difficulty int) (*blockchain.Block, error) {
	block, err := a.chain.Mine(ctx, txs, difficulty)
	if err != nil {
		return nil, err
	}

	slog.Info("block mined",
		"index", block.Index,
		"nonce", block.Nonce,
		"hash", block.Hash,
		"difficulty", difficulty)
	return block, nil
}

// Chain returns a snapshot of the primary chain.
func (a *App) Chain() *blockchain.Chain {
	return a.chain.Snapshot()
}

// ValidateChain checks the primary chain's integrity.
func (a *App) ValidateChain() error {
	return a.chain.Validate()
}

// Network returns the simulated network.
func (a *App) Network() *network.Simulator {
	return a.network
}

// SyncNetwork runs the longest-valid-chain synchronization across all
// simulated nodes.
func (a *App) SyncNetwork() error {
	return a.network.SyncChains()
}
