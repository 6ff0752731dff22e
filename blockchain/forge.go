package blockchain

import (
	"context"
	"time"
)

// NewBlock builds an unmined block. Nonce starts at zero and Hash stays
// empty until Mine succeeds. An empty timestamp means "now".
func NewBlock(index uint64, txs []Transaction, timestamp, previousHash string) *Block {
	if timestamp == "" {
		timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	}
	return &Block{
		Index:        index,
		Transactions: txs,
		Timestamp:    timestamp,
		PreviousHash: previousHash,
	}
}

// Latest returns the newest block. The construction invariant guarantees
// at least the genesis block; calling this on an empty chain is a
// programming error.
func (c *Chain) Latest() *Block {
	if len(c.Blocks) == 0 {
		panic("blockchain: Latest called on empty chain")
	}
	return c.Blocks[len(c.Blocks)-1]
}

// Append links block to the current head, mines it at the chain's
// current difficulty, and pushes it on success. This is the only
// admission path for non-genesis blocks; appends are strictly
// sequential per chain.
func (c *Chain) Append(ctx context.Context, block *Block) error {
	block.PreviousHash = c.Latest().Hash
	if err := block.Mine(ctx, c.Difficulty); err != nil {
		return err
	}
	c.Blocks = append(c.Blocks, block)
	return nil
}

// Forge builds the next block from a transaction list and appends it.
func (c *Chain) Forge(ctx context.Context, txs []Transaction) (*Block, error) {
	block := NewBlock(uint64(len(c.Blocks)), txs, "", "")
	if err := c.Append(ctx, block); err != nil {
		return nil, err
	}
	return block, nil
}
