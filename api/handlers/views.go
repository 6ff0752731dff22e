package handlers

import (
	"time"

	"powsim/blockchain"
	"powsim/network"
)

// BlockView is the read-only display model for a mined block. The core
// owns the fields; rendering decisions (like the friendlier timestamp)
// stay on this side of the boundary.
type BlockView struct {
	Index        uint64                   `json:"index"`
	Nonce        uint64                   `json:"nonce"`
	Timestamp    string                   `json:"timestamp"`
	PreviousHash string                   `json:"previous_hash"`
	Hash         string                   `json:"hash"`
	Transactions []blockchain.Transaction `json:"transactions"`
}

// NodeView summarizes one simulated node for display.
type NodeView struct {
	ID     string `json:"id"`
	Height uint64 `json:"height"`
	Head   string `json:"head"`
	Valid  bool   `json:"valid"`
	Status string `json:"status"`
}

// NewBlockView converts a mined block for display.
func NewBlockView(b *blockchain.Block) BlockView {
	return BlockView{
		Index:        b.Index,
		Nonce:        b.Nonce,
		Timestamp:    humanTimestamp(b.Timestamp),
		PreviousHash: b.PreviousHash,
		Hash:         b.Hash,
		Transactions: b.Transactions,
	}
}

// NewChainView converts a chain snapshot for display.
func NewChainView(c *blockchain.Chain) []BlockView {
	views := make([]BlockView, len(c.Blocks))
	for i, b := range c.Blocks {
		views[i] = NewBlockView(b)
	}
	return views
}

// NewNodeView summarizes a node with the given display status.
func NewNodeView(n *network.Node, status string) NodeView {
	return NodeView{
		ID:     n.ID,
		Height: n.Store.Height(),
		Head:   n.Store.Head().Hash,
		Valid:  n.Store.Validate() == nil,
		Status: status,
	}
}

func humanTimestamp(ts string) string {
	parsed, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return ts
	}
	return parsed.Format(time.RFC1123)
}
