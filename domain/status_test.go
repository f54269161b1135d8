package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventStatusUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    EventStatus
		wantErr bool
	}{
		{name: "ordinal draft", input: `0`, want: EventDraft},
		{name: "ordinal published", input: `1`, want: EventPublished},
		{name: "ordinal cancelled", input: `2`, want: EventCancelled},
		{name: "ordinal completed", input: `3`, want: EventCompleted},
		{name: "label published", input: `"Published"`, want: EventPublished},
		{name: "label draft", input: `"Draft"`, want: EventDraft},
		{name: "unknown ordinal", input: `7`, wantErr: true},
		{name: "negative ordinal", input: `-1`, wantErr: true},
		{name: "unknown label", input: `"Pending"`, wantErr: true},
		{name: "wrong casing", input: `"published"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var status EventStatus
			err := json.Unmarshal([]byte(tt.input), &status)

			if tt.wantErr {
				var unknownErr *UnknownStatusError
				require.ErrorAs(t, err, &unknownErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, status)
		})
	}
}

func TestEventStatusRoundTrip(t *testing.T) {
	var status EventStatus
	require.NoError(t, json.Unmarshal([]byte(`1`), &status))
	assert.Equal(t, EventPublished, status)

	encoded, err := json.Marshal(status)
	require.NoError(t, err)
	assert.Equal(t, `"Published"`, string(encoded))

	// Already-canonical strings pass through unchanged.
	var again EventStatus
	require.NoError(t, json.Unmarshal(encoded, &again))
	assert.Equal(t, EventPublished, again)
}

func TestBookingStatusUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    BookingStatus
		wantErr bool
	}{
		{name: "ordinal confirmed", input: `0`, want: BookingConfirmed},
		{name: "ordinal cancelled", input: `1`, want: BookingCancelled},
		{name: "ordinal attended", input: `2`, want: BookingAttended},
		{name: "ordinal no-show", input: `3`, want: BookingNoShow},
		{name: "label no-show", input: `"NoShow"`, want: BookingNoShow},
		{name: "unknown ordinal", input: `4`, wantErr: true},
		{name: "event label is not a booking label", input: `"Published"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var status BookingStatus
			err := json.Unmarshal([]byte(tt.input), &status)

			if tt.wantErr {
				var unknownErr *UnknownStatusError
				require.ErrorAs(t, err, &unknownErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, status)
		})
	}
}
