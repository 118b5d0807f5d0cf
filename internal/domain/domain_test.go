package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_UnmarshalRFC3339(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-07T14:30:45Z"`), &ts))

	assert.Equal(t, time.Date(2024, time.March, 7, 14, 30, 45, 0, time.UTC), ts.Time)
}

func TestTimestamp_UnmarshalNaiveISO(t *testing.T) {
	// The backend serializes naive datetimes without an offset.
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-07T14:30:45.123456"`), &ts))

	assert.Equal(t, 2024, ts.Year())
	assert.Equal(t, 14, ts.Hour())
}

func TestTimestamp_UnmarshalDateOnly(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-07"`), &ts))

	assert.Equal(t, time.March, ts.Month())
}

func TestTimestamp_UnmarshalNull(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`null`), &ts))

	assert.True(t, ts.IsZero())
}

func TestTimestamp_UnmarshalGarbage(t *testing.T) {
	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"not a date"`), &ts))
}

func TestRecommendation_Similarity(t *testing.T) {
	rec := Recommendation{Distance: 0.123}

	assert.InDelta(t, 0.877, rec.Similarity(), 1e-9)
}

func TestPlaceholderPosterURL_EscapesTitle(t *testing.T) {
	url := PlaceholderPosterURL("The Good, the Bad & the Ugly")

	assert.Equal(t, "https://via.placeholder.com/300x450/6366f1/ffffff?text=The%20Good,%20the%20Bad%20&%20the%20Ugly", url)
}

func TestUser_AvatarOrDefault(t *testing.T) {
	user := User{}
	assert.Contains(t, user.AvatarOrDefault(), "dicebear.com")

	user.AvatarURL = "https://example.com/me.png"
	assert.Equal(t, "https://example.com/me.png", user.AvatarOrDefault())
}

func TestRole_IsAdmin(t *testing.T) {
	assert.True(t, RoleAdmin.IsAdmin())
	assert.False(t, RoleUser.IsAdmin())
}
