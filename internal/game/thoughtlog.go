package game

const logMaxEntries = 8

// ThoughtEntry is a single line in the on-screen message log.
type ThoughtEntry struct {
	Round   int
	Player  int // -1 for match-wide messages
	Message string
}

// ThoughtLog is a ring buffer of the latest match messages shown in the HUD.
type ThoughtLog struct {
	entries []ThoughtEntry
	head    int
	count   int
}

// NewThoughtLog creates a message log with a fixed capacity.
func NewThoughtLog() *ThoughtLog {
	return &ThoughtLog{
		entries: make([]ThoughtEntry, logMaxEntries),
	}
}

// Add appends an entry, evicting the oldest when full.
func (tl *ThoughtLog) Add(round, player int, msg string) {
	tl.entries[tl.head] = ThoughtEntry{
		Round:   round,
		Player:  player,
		Message: msg,
	}
	tl.head = (tl.head + 1) % logMaxEntries
	if tl.count < logMaxEntries {
		tl.count++
	}
}

// Recent returns entries in chronological order (oldest first).
func (tl *ThoughtLog) Recent() []ThoughtEntry {
	result := make([]ThoughtEntry, tl.count)
	for i := 0; i < tl.count; i++ {
		idx := (tl.head - tl.count + i + logMaxEntries) % logMaxEntries
		result[i] = tl.entries[idx]
	}
	return result
}

// Last returns the newest entry, or false when the log is empty.
func (tl *ThoughtLog) Last() (ThoughtEntry, bool) {
	if tl.count == 0 {
		return ThoughtEntry{}, false
	}
	return tl.entries[(tl.head-1+logMaxEntries)%logMaxEntries], true
}
