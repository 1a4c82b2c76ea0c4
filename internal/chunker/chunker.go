package chunker

import (
	"strings"
)

// Chunk is one unit of ingestion for the vector index.
type Chunk struct {
	Index int
	Text  string
}

// PageChunker splits document text into page-sized chunks. Pages are
// delimited by form feeds when the extractor emits them; otherwise the text
// is split on blank lines and paragraphs are grouped up to maxChunkLen runes.
type PageChunker struct {
	maxChunkLen int
}

func NewPageChunker(maxChunkLen int) *PageChunker {
	if maxChunkLen <= 0 {
		maxChunkLen = 2000
	}
	return &PageChunker{maxChunkLen: maxChunkLen}
}

func (c *PageChunker) Chunk(content string) []Chunk {
	var parts []string
	if strings.Contains(content, "\f") {
		parts = strings.Split(content, "\f")
	} else {
		parts = c.groupParagraphs(content)
	}

	chunks := make([]Chunk, 0, len(parts))
	for _, p := range parts {
		text := strings.TrimSpace(p)
		if text == "" {
			continue
		}
		chunks = append(chunks, Chunk{Index: len(chunks), Text: text})
	}
	return chunks
}

// groupParagraphs merges consecutive blank-line-separated paragraphs until
// the next one would push a chunk past maxChunkLen.
func (c *PageChunker) groupParagraphs(content string) []string {
	paragraphs := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n\n")

	var groups []string
	var current strings.Builder
	for _, p := range paragraphs {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if current.Len() > 0 && current.Len()+len(p) > c.maxChunkLen {
			groups = append(groups, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		current.WriteString(p)
	}
	if current.Len() > 0 {
		groups = append(groups, current.String())
	}
	return groups
}
