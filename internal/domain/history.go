package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// MaxHistoryEntries caps the persisted set log
const MaxHistoryEntries = 200

// LoggedValue is what a set recorded: a rep count, or an elapsed
// duration formatted M:SS for timed exercises. On the wire it is a JSON
// number or a JSON string respectively.
type LoggedValue struct {
	Reps  int
	Clock string
}

// RepsValue wraps a rep count
func RepsValue(n int) LoggedValue {
	return LoggedValue{Reps: n}
}

// DurationValue formats elapsed seconds as M:SS
func DurationValue(seconds int) LoggedValue {
	return LoggedValue{Clock: FormatClock(seconds)}
}

// FormatClock renders seconds as M:SS (75 -> "1:15")
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// IsTimed reports whether the value holds a duration
func (v LoggedValue) IsTimed() bool {
	return v.Clock != ""
}

func (v LoggedValue) String() string {
	if v.IsTimed() {
		return v.Clock
	}
	return strconv.Itoa(v.Reps)
}

func (v LoggedValue) MarshalJSON() ([]byte, error) {
	if v.IsTimed() {
		return json.Marshal(v.Clock)
	}
	return json.Marshal(v.Reps)
}

func (v *LoggedValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = LoggedValue{Clock: s}
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("logged value must be a number or a string: %w", err)
	}
	*v = LoggedValue{Reps: n}
	return nil
}

// HistoryEntry is one logged set. Timestamp is the local time of day.
type HistoryEntry struct {
	ID        string      `json:"id,omitempty"`
	Exercise  string      `json:"exercise"`
	Value     LoggedValue `json:"reps"`
	Timed     bool        `json:"timed"`
	Timestamp string      `json:"timestamp"`
	Date      string      `json:"date"`
}

// HistoryRepository persists the set log, newest first.
// Persistence failures are logged by implementations, never returned.
type HistoryRepository interface {
	Load(ctx context.Context) []HistoryEntry
	Replace(ctx context.Context, entries []HistoryEntry)
	Clear(ctx context.Context)
}
