package blockchain

import (
	"context"
	"strings"
	"testing"
)

func TestMinePostcondition(t *testing.T) {
	for _, difficulty := range []int{1, 2, 3} {
		block := testBlock()
		if err := block.Mine(context.Background(), difficulty); err != nil {
			t.Fatalf("Mine(%d) failed: %v", difficulty, err)
		}

		if !strings.HasPrefix(block.Hash, strings.Repeat("0", difficulty)) {
			t.Errorf("difficulty %d: hash %s lacks leading zeros", difficulty, block.Hash)
		}

		// The stored hash must match the content it claims to cover.
		if Sum(block.DigestContent()) != block.Hash {
			t.Errorf("difficulty %d: stored hash does not match content", difficulty)
		}
	}
}

func TestMineCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	block := testBlock()
	// A 12-zero prefix is far beyond anything the loop will stumble on
	// before its first yield point.
	err := block.Mine(ctx, 12)
	if err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestHashMeetsDifficulty(t *testing.T) {
	tests := []struct {
		hash       string
		difficulty int
		want       bool
	}{
		{"00ff" + strings.Repeat("a", 60), 2, true},
		{"00ff" + strings.Repeat("a", 60), 3, false},
		{"0" + strings.Repeat("f", 63), 1, true},
		{strings.Repeat("f", 64), 1, false},
		{"000", 4, false}, // digest shorter than required prefix
	}

	for _, tt := range tests {
		if got := HashMeetsDifficulty(tt.hash, tt.difficulty); got != tt.want {
			t.Errorf("HashMeetsDifficulty(%q, %d) = %v, want %v",
				tt.hash, tt.difficulty, got, tt.want)
		}
	}
}
