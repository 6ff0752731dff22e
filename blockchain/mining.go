package blockchain

import (
	"context"
	"runtime"
	"strings"
)

// yieldInterval is the number of nonce attempts between cooperative
// scheduling points during mining.
const yieldInterval = 1000

// HashMeetsDifficulty reports whether the digest starts with the
// required number of zero hex characters.
func HashMeetsDifficulty(hash string, difficulty int) bool {
	if difficulty > len(hash) {
		return false
	}
	return strings.HasPrefix(hash, strings.Repeat("0", difficulty))
}

// Mine searches for a nonce whose digest satisfies the difficulty. The
// search is unbounded; ctx is checked every yieldInterval attempts so a
// caller can cancel or impose a deadline. On success the block's Nonce
// and Hash hold the winning values.
func (b *Block) Mine(ctx context.Context, difficulty int) error {
	for attempts := 1; ; attempts++ {
		if HashMeetsDifficulty(b.RecomputeHash(), difficulty) {
			return nil
		}
		b.Nonce++

		if attempts%yieldInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
			runtime.Gosched()
		}
	}
}
