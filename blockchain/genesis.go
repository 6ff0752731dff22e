package blockchain

import "context"

// genesisTransaction seeds the first block of every chain.
var genesisTransaction = Transaction{
	Sender:    "network",
	Recipient: "genesis",
	Amount:    0,
}

// NewChain creates a chain and synchronously mines its genesis block.
// difficulty applies to later blocks; genesis is always mined at
// GenesisDifficulty. Chains created separately get distinct genesis
// blocks because their timestamps differ.
func NewChain(ctx context.Context, difficulty int) (*Chain, error) {
	genesis := NewBlock(0, []Transaction{genesisTransaction}, "", GenesisPreviousHash)
	if err := genesis.Mine(ctx, GenesisDifficulty); err != nil {
		return nil, err
	}
	return &Chain{
		Blocks:     []*Block{genesis},
		Difficulty: difficulty,
	}, nil
}
