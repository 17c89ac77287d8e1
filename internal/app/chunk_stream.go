package app

import (
	"strings"

	"quill/internal/editor"
)

// ChunkStreamController owns one active assistant stream and the inserter it
// feeds. Chunks are drained on the UI tick so all document mutation happens
// on the update loop, never from the reader goroutine.
type ChunkStreamController struct {
	chunks           <-chan string
	cancel           func()
	inserter         *editor.Inserter
	reply            strings.Builder
	maxChunksPerTick int
}

func NewChunkStreamController(maxChunksPerTick int) *ChunkStreamController {
	return &ChunkStreamController{maxChunksPerTick: maxChunksPerTick}
}

func (s *ChunkStreamController) Start(ch <-chan string, cancel func(), inserter *editor.Inserter) {
	if s == nil {
		return
	}
	s.Reset()
	s.chunks = ch
	s.cancel = cancel
	s.inserter = inserter
	s.reply.Reset()
}

func (s *ChunkStreamController) Active() bool {
	return s != nil && s.chunks != nil
}

// Reply returns the full text streamed so far.
func (s *ChunkStreamController) Reply() string {
	if s == nil {
		return ""
	}
	return s.reply.String()
}

// ConsumeTick drains up to maxChunksPerTick pending chunks into the inserter.
// A closed channel finishes the insertion, which runs the paragraph
// normalization pass.
func (s *ChunkStreamController) ConsumeTick() (changed bool, done bool) {
	if s == nil || s.chunks == nil {
		return false, false
	}
	drain := true
	for i := 0; i < s.maxChunksPerTick && drain; i++ {
		select {
		case chunk, ok := <-s.chunks:
			if !ok {
				if s.inserter != nil {
					s.inserter.Finish()
				}
				s.chunks = nil
				s.cancel = nil
				s.inserter = nil
				done = true
				changed = true
				drain = false
				break
			}
			if s.inserter != nil {
				s.inserter.Apply(chunk)
			}
			s.reply.WriteString(chunk)
			changed = true
		default:
			drain = false
		}
	}
	return changed, done
}

// Reset cancels the stream and aborts the insertion without normalization.
// Text already inserted stays in the document.
func (s *ChunkStreamController) Reset() {
	if s == nil {
		return
	}
	if s.cancel != nil {
		s.cancel()
	}
	if s.inserter != nil {
		s.inserter.Abort()
	}
	s.chunks = nil
	s.cancel = nil
	s.inserter = nil
}
