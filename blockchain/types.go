package blockchain

const (
	// MinDifficulty and MaxDifficulty bound the difficulty a caller may
	// configure for mining. Genesis blocks ignore the configured value
	// and are always mined at GenesisDifficulty.
	MinDifficulty     = 1
	MaxDifficulty     = 5
	GenesisDifficulty = 2
)

// GenesisPreviousHash is the placeholder parent digest of a genesis block.
const GenesisPreviousHash = "0"

// Transaction is a plain value transfer. Shape validation (non-empty
// sender/recipient, numeric amount) happens at the boundary before a
// transaction ever reaches this package.
type Transaction struct {
	Sender    string  `json:"sender"`
	Recipient string  `json:"recipient"`
	Amount    float64 `json:"amount"`
}

// Block is mutable while mining and treated as immutable once appended
// to a chain. Hash is empty until the first RecomputeHash.
type Block struct {
	Index        uint64        `json:"index"`
	Transactions []Transaction `json:"transactions"`
	Timestamp    string        `json:"timestamp"`
	PreviousHash string        `json:"previous_hash"`
	Nonce        uint64        `json:"nonce"`
	Hash         string        `json:"hash"`
}

// Chain is an ordered block sequence rooted at a genesis block.
// Difficulty is the current chain-wide setting used both for mining new
// blocks and for the proof-of-work check during validation.
type Chain struct {
	Blocks     []*Block `json:"blocks"`
	Difficulty int      `json:"difficulty"`
}

// Clone returns a shallow copy: a fresh block slice sharing the same
// block values.
func (c *Chain) Clone() *Chain {
	blocks := make([]*Block, len(c.Blocks))
	copy(blocks, c.Blocks)
	return &Chain{Blocks: blocks, Difficulty: c.Difficulty}
}
