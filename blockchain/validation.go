package blockchain

import "fmt"

// ErrHashMismatch reports a block whose stored hash differs from the
// digest recomputed over its content.
type ErrHashMismatch struct {
	Index uint64
}

func (e ErrHashMismatch) Error() string {
	return fmt.Sprintf("block %d: stored hash does not match recomputed digest", e.Index)
}

// ErrBrokenLink reports a block whose previous-hash field does not match
// its predecessor's hash.
type ErrBrokenLink struct {
	Index uint64
}

func (e ErrBrokenLink) Error() string {
	return fmt.Sprintf("block %d: previous hash does not match parent", e.Index)
}

// ErrInsufficientWork reports a block whose hash lacks the leading zeros
// required by the chain's current difficulty.
type ErrInsufficientWork struct {
	Index      uint64
	Difficulty int
}

func (e ErrInsufficientWork) Error() string {
	return fmt.Sprintf("block %d: hash does not meet difficulty %d", e.Index, e.Difficulty)
}

// Validate walks the chain and returns the first integrity failure, or
// nil for a valid chain. For every block after genesis it checks:
//
//  1. Hash integrity: the digest recomputed from content equals the
//     stored hash. Recomputing (rather than trusting the stored value)
//     means tampering with transactions, nonce, or timestamp is caught
//     even when the stored hash was left untouched.
//  2. Link integrity: PreviousHash equals the parent's hash.
//  3. Proof of work: the stored hash satisfies the chain's current
//     difficulty setting.
//
// Genesis itself is not re-checked; it is trusted by construction.
func (c *Chain) Validate() error {
	for i := 1; i < len(c.Blocks); i++ {
		block := c.Blocks[i]
		prev := c.Blocks[i-1]

		if Sum(block.DigestContent()) != block.Hash {
			return ErrHashMismatch{Index: block.Index}
		}

		if block.PreviousHash != prev.Hash {
			return ErrBrokenLink{Index: block.Index}
		}

		if !HashMeetsDifficulty(block.Hash, c.Difficulty) {
			return ErrInsufficientWork{Index: block.Index, Difficulty: c.Difficulty}
		}
	}
	return nil
}

// IsValid reports whether the whole chain passes Validate.
func (c *Chain) IsValid() bool {
	return c.Validate() == nil
}
