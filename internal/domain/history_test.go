package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatClock(t *testing.T) {
	tests := map[int]string{0: "0:00", 5: "0:05", 60: "1:00", 75: "1:15", 600: "10:00", -3: "0:00"}
	for secs, want := range tests {
		assert.Equal(t, want, FormatClock(secs))
	}
}

func TestLoggedValueJSON(t *testing.T) {
	data, err := json.Marshal(HistoryEntry{Exercise: "Push-Up", Value: RepsValue(12)})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"reps":12`)

	data, err = json.Marshal(HistoryEntry{Exercise: "Plank", Value: DurationValue(45), Timed: true})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"reps":"0:45"`)
}

func TestLoggedValueDecodesBothShapes(t *testing.T) {
	raw := `[{"exercise":"Plank","reps":"1:05","timed":true,"timestamp":"09:30 AM","date":"3/4/2025"},
	         {"exercise":"Push-Up","reps":20,"timed":false,"timestamp":"09:25 AM","date":"3/4/2025"}]`
	var entries []HistoryEntry
	require.NoError(t, json.Unmarshal([]byte(raw), &entries))
	require.Len(t, entries, 2)

	assert.True(t, entries[0].Value.IsTimed())
	assert.Equal(t, "1:05", entries[0].Value.String())
	assert.False(t, entries[1].Value.IsTimed())
	assert.Equal(t, 20, entries[1].Value.Reps)

	var bad HistoryEntry
	assert.Error(t, json.Unmarshal([]byte(`{"reps":true}`), &bad))
}
