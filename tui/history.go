// Package tui provides a Bubble Tea terminal UI for the Aventura engine.
package tui

// History is a fixed-size ring of submitted commands with cursor-based
// navigation. The line being typed when navigation starts is kept as a
// draft and restored when the cursor moves past the newest entry.
type History struct {
	ring  []string
	start int // index of the oldest entry
	size  int

	cursor int // -1 = not navigating, else 0 (oldest) .. size-1 (newest)
	draft  string
}

// NewHistory creates a history holding at most max commands.
func NewHistory(max int) *History {
	if max < 1 {
		max = 1
	}
	return &History{ring: make([]string, max), cursor: -1}
}

// Len returns the number of stored commands.
func (h *History) Len() int { return h.size }

// at returns the i-th oldest entry.
func (h *History) at(i int) string {
	return h.ring[(h.start+i)%len(h.ring)]
}

// Push records a command and ends navigation. Consecutive duplicates are
// skipped; when full, the oldest command is overwritten.
func (h *History) Push(cmd string) {
	h.Reset()
	if h.size > 0 && h.at(h.size-1) == cmd {
		return
	}
	if h.size < len(h.ring) {
		h.ring[(h.start+h.size)%len(h.ring)] = cmd
		h.size++
		return
	}
	h.ring[h.start] = cmd
	h.start = (h.start + 1) % len(h.ring)
}

// Prev moves to the previous (older) command. current is the text in the
// input; it becomes the draft when navigation starts. Returns false when
// history is empty.
func (h *History) Prev(current string) (string, bool) {
	if h.size == 0 {
		return "", false
	}
	switch {
	case h.cursor == -1:
		h.draft = current
		h.cursor = h.size - 1
	case h.cursor > 0:
		h.cursor--
	}
	return h.at(h.cursor), true
}

// Next moves to the next (newer) command. Moving past the newest returns
// the draft. Returns false when not navigating.
func (h *History) Next() (string, bool) {
	if h.cursor == -1 {
		return "", false
	}
	h.cursor++
	if h.cursor >= h.size {
		draft := h.draft
		h.Reset()
		return draft, true
	}
	return h.at(h.cursor), true
}

// Reset leaves navigation and drops the draft.
func (h *History) Reset() {
	h.cursor = -1
	h.draft = ""
}
