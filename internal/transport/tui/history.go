package tui

// History is the console's recall list. The cursor sits one past the newest
// entry while the user is editing a fresh line.
type History struct {
	entries []string
	pos     int
	limit   int
}

func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Load seeds the history with entries ordered oldest first.
func (h *History) Load(entries []string) {
	for _, e := range entries {
		h.push(e)
	}
	h.pos = len(h.entries)
}

// Add records a submitted line and resets the cursor. Repeating the newest
// entry is a no-op; it reports whether the line was stored.
func (h *History) Add(line string) bool {
	defer func() { h.pos = len(h.entries) }()
	if len(h.entries) > 0 && h.entries[len(h.entries)-1] == line {
		return false
	}
	h.push(line)
	return true
}

func (h *History) push(line string) {
	h.entries = append(h.entries, line)
	if h.limit > 0 && len(h.entries) > h.limit {
		h.entries = h.entries[len(h.entries)-h.limit:]
	}
}

// Back moves to the previous entry. ok is false at the oldest entry.
func (h *History) Back() (string, bool) {
	if h.pos == 0 {
		return "", false
	}
	h.pos--
	return h.entries[h.pos], true
}

// Forward moves to the next entry; stepping past the newest yields an empty
// line. ok is false when already editing a fresh line.
func (h *History) Forward() (string, bool) {
	if h.pos >= len(h.entries) {
		return "", false
	}
	h.pos++
	if h.pos == len(h.entries) {
		return "", true
	}
	return h.entries[h.pos], true
}

func (h *History) Len() int {
	return len(h.entries)
}
