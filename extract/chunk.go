package extract

import (
	"strings"

	"github.com/pulseai/modex"
)

// blockSeparator is the paragraph boundary the chunker preserves.
const blockSeparator = "\n\n"

// forceSplitCharsPerToken approximates characters per token when an
// oversized block has to be sliced without exact token counting.
const forceSplitCharsPerToken = 3

// ChunkText splits text into an ordered sequence of chunks, each not
// exceeding maxTokens as measured by tc. Blocks (paragraphs separated by
// blank lines) are the atomic unit: a block is never split across chunks
// unless its own token count exceeds maxTokens, in which case it is sliced
// into fixed-length rune runs of maxTokens*3 characters. Those slices are
// only approximately bounded; every other chunk re-tokenizes within budget.
// Blank input yields no chunks.
func ChunkText(text string, tc modex.TokenCounter, maxTokens int) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	blocks := strings.Split(text, blockSeparator)

	var chunks []string
	var current []string

	flush := func() {
		if len(current) > 0 {
			chunks = append(chunks, strings.Join(current, blockSeparator))
			current = nil
		}
	}

	for _, block := range blocks {
		if tc.Count(block) > maxTokens {
			// The block alone blows the budget so it cannot be accumulated.
			flush()
			chunks = append(chunks, forceSplit(block, maxTokens*forceSplitCharsPerToken)...)
			continue
		}

		candidate := append(append([]string{}, current...), block)
		if len(current) > 0 && tc.Count(strings.Join(candidate, blockSeparator)) > maxTokens {
			flush()
		}
		current = append(current, block)
	}

	flush()

	return chunks
}

// forceSplit slices a block into consecutive runs of at most charLimit
// runes. Concatenating the slices reconstructs the block exactly.
func forceSplit(block string, charLimit int) []string {
	if charLimit <= 0 {
		charLimit = 1
	}

	runes := []rune(block)
	slices := make([]string, 0, len(runes)/charLimit+1)
	for start := 0; start < len(runes); start += charLimit {
		end := min(start+charLimit, len(runes))
		slices = append(slices, string(runes[start:end]))
	}
	return slices
}
