package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkTextEmptyInput(t *testing.T) {
	chunker := NewTextChunker()

	assert.Empty(t, chunker.ChunkText("", 1000, 100))
	assert.Empty(t, chunker.ChunkText("\n\n\n\n", 1000, 100))
}

func TestChunkTextSingleSmallParagraph(t *testing.T) {
	chunker := NewTextChunker()

	chunks := chunker.ChunkText("Short resume paragraph.", 1000, 100)
	assert.Equal(t, []string{"Short resume paragraph."}, chunks)
}

func TestChunkTextKeepsParagraphsTogether(t *testing.T) {
	chunker := NewTextChunker()

	text := "First paragraph about work.\n\nSecond paragraph about school."
	chunks := chunker.ChunkText(text, 1000, 0)

	require.Len(t, chunks, 1)
	assert.Contains(t, chunks[0], "First paragraph about work.")
	assert.Contains(t, chunks[0], "Second paragraph about school.")
}

func TestChunkTextSplitsAtParagraphBoundary(t *testing.T) {
	chunker := NewTextChunker()

	para1 := strings.Repeat("a", 60)
	para2 := strings.Repeat("b", 60)
	chunks := chunker.ChunkText(para1+"\n\n"+para2, 100, 0)

	require.Len(t, chunks, 2)
	assert.Equal(t, para1, chunks[0])
	assert.Equal(t, para2, chunks[1])
}

func TestChunkTextOverlapCarriesTail(t *testing.T) {
	chunker := NewTextChunker()

	para1 := strings.Repeat("a", 60)
	para2 := strings.Repeat("b", 60)
	chunks := chunker.ChunkText(para1+"\n\n"+para2, 100, 10)

	require.Len(t, chunks, 2)
	// The second chunk starts with the tail of the first.
	assert.True(t, strings.HasPrefix(chunks[1], strings.Repeat("a", 10)))
	assert.Contains(t, chunks[1], para2)
}

func TestChunkTextOversizedParagraphSplitsOnSentences(t *testing.T) {
	chunker := NewTextChunker()

	var sentences []string
	for i := 0; i < 20; i++ {
		sentences = append(sentences, "This sentence pads out one very long paragraph.")
	}
	text := strings.Join(sentences, " ")
	chunks := chunker.ChunkText(text, 200, 0)

	require.Greater(t, len(chunks), 1)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 200)
		assert.NotEmpty(t, strings.TrimSpace(chunk))
	}
}

func TestChunkTextDefaultsGuardBadArguments(t *testing.T) {
	chunker := NewTextChunker()

	// Zero chunk size falls back to the default instead of looping.
	chunks := chunker.ChunkText("hello world", 0, -5)
	assert.Equal(t, []string{"hello world"}, chunks)

	// Overlap larger than the chunk size is clamped.
	para1 := strings.Repeat("a", 60)
	para2 := strings.Repeat("b", 60)
	chunks = chunker.ChunkText(para1+"\n\n"+para2, 100, 500)
	require.Len(t, chunks, 2)
	assert.True(t, strings.HasPrefix(chunks[1], strings.Repeat("a", 25)))
}

func TestSplitIntoSentences(t *testing.T) {
	sentences := splitIntoSentences("One. Two! Three? ")
	assert.Equal(t, []string{"One", "Two", "Three"}, sentences)
}
