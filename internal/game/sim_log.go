package game

import (
	"fmt"
	"strings"
)

// SimLogEntry is one recorded match event.
type SimLogEntry struct {
	Round    int
	Turn     int
	Player   string  // "P1", "P2", or "--" for match-wide events
	Category string  // round, layout, placement, throw, turn
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[R=01 T=003] P2   throw     outcome          explosion at (412.0,233.5)
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[R=%02d T=%03d] %-4s %-9s %-16s %s",
		e.Round, e.Turn, e.Player, e.Category, e.Key, e.Value)
}

// SimLog collects structured events for a match. Unlike ThoughtLog (HUD
// ring buffer), SimLog is unbounded and machine-readable.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
}

// NewSimLog creates a SimLog. If verbose is true, per-frame projectile
// positions are also recorded.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// Add records a new entry.
func (sl *SimLog) Add(round, turn int, player, category, key, value string, numVal float64) {
	sl.entries = append(sl.entries, SimLogEntry{
		Round:    round,
		Turn:     turn,
		Player:   player,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (sl *SimLog) AddVerbose(round, turn int, player, category, key, value string, numVal float64) {
	if !sl.verbose {
		return
	}
	sl.Add(round, turn, player, category, key, value, numVal)
}

// Entries returns all recorded entries.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// Select returns the entries for which keep reports true, oldest first.
func (sl *SimLog) Select(keep func(SimLogEntry) bool) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	return sl.Select(func(e SimLogEntry) bool { return e.is(category, key) })
}

// FilterRound returns entries recorded during one round.
func (sl *SimLog) FilterRound(round int) []SimLogEntry {
	return sl.Select(func(e SimLogEntry) bool { return e.Round == round })
}

// FilterTurn returns entries recorded during one turn of one round.
func (sl *SimLog) FilterTurn(round, turn int) []SimLogEntry {
	return sl.Select(func(e SimLogEntry) bool { return e.Round == round && e.Turn == turn })
}

// FilterPlayer returns entries attributed to player (0 or 1). Match-wide
// events are never included.
func (sl *SimLog) FilterPlayer(player int) []SimLogEntry {
	label := playerLabel(player)
	return sl.Select(func(e SimLogEntry) bool { return e.Player == label })
}

// CountCategory returns how many entries match the given category and key.
func (sl *SimLog) CountCategory(category, key string) int {
	n := 0
	for _, e := range sl.entries {
		if e.is(category, key) {
			n++
		}
	}
	return n
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (sl *SimLog) LastOf(category, key string) (SimLogEntry, bool) {
	for i := len(sl.entries) - 1; i >= 0; i-- {
		if sl.entries[i].is(category, key) {
			return sl.entries[i], true
		}
	}
	return SimLogEntry{}, false
}

// HasEntry reports whether some entry matches category and key and has
// valueSubstr in its Value.
func (sl *SimLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range sl.entries {
		if e.is(category, key) && strings.Contains(e.Value, valueSubstr) {
			return true
		}
	}
	return false
}

// is matches category and key, with "" as a wildcard.
func (e SimLogEntry) is(category, key string) bool {
	return (category == "" || e.Category == category) && (key == "" || e.Key == key)
}

// Format returns the full log as a single string for t.Log output.
func (sl *SimLog) Format() string {
	var sb strings.Builder
	for _, e := range sl.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

func playerLabel(player int) string {
	return fmt.Sprintf("P%d", player+1)
}
