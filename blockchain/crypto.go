package blockchain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strconv"
)

// Sum is the digest function used everywhere a block hash is computed or
// checked. Every component must produce the same digest for the same
// bytes, so this is the only place hashing happens.
func Sum(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// canonicalTransactions serializes a transaction list for hashing.
// encoding/json writes struct fields in declaration order, so the output
// is stable and order-preserving.
func canonicalTransactions(txs []Transaction) []byte {
	data, err := json.Marshal(txs)
	if err != nil {
		// Transaction contains only marshalable field types.
		panic("blockchain: marshal transactions: " + err.Error())
	}
	return data
}

// DigestContent builds the hashed payload: decimal index, previous hash,
// timestamp, canonical transaction list, decimal nonce, concatenated in
// that fixed order.
func (b *Block) DigestContent() []byte {
	buf := make([]byte, 0, 192)
	buf = strconv.AppendUint(buf, b.Index, 10)
	buf = append(buf, b.PreviousHash...)
	buf = append(buf, b.Timestamp...)
	buf = append(buf, canonicalTransactions(b.Transactions)...)
	buf = strconv.AppendUint(buf, b.Nonce, 10)
	return buf
}

// RecomputeHash recalculates the block digest from content, stores it,
// and returns it.
func (b *Block) RecomputeHash() string {
	b.Hash = Sum(b.DigestContent())
	return b.Hash
}
