package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunkSplitsOnFormFeed(t *testing.T) {
	c := NewPageChunker(0)

	chunks := c.Chunk("page one\fpage two\fpage three")

	assert.Len(t, chunks, 3)
	assert.Equal(t, "page one", chunks[0].Text)
	assert.Equal(t, 2, chunks[2].Index)
}

func TestChunkSkipsEmptyPages(t *testing.T) {
	c := NewPageChunker(0)

	chunks := c.Chunk("page one\f\f  \fpage two")

	assert.Len(t, chunks, 2)
	assert.Equal(t, "page two", chunks[1].Text)
	assert.Equal(t, 1, chunks[1].Index)
}

func TestChunkGroupsParagraphs(t *testing.T) {
	c := NewPageChunker(50)

	long := strings.Repeat("x", 40)
	chunks := c.Chunk(long + "\n\n" + long + "\n\nshort")

	assert.Len(t, chunks, 2)
	assert.Equal(t, long, chunks[0].Text)
	assert.Contains(t, chunks[1].Text, "short")
}

func TestChunkEmptyContent(t *testing.T) {
	c := NewPageChunker(0)

	assert.Empty(t, c.Chunk(""))
	assert.Empty(t, c.Chunk("   \n\n  "))
}
