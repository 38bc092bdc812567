package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataURI_RoundTrip(t *testing.T) {
	d := NewDataURI("image/jpeg", []byte("jpeg-bytes"))
	assert.Equal(t, DataURI("data:image/jpeg;base64,anBlZy1ieXRlcw=="), d)

	mimeType, data, err := d.Decode()
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", mimeType)
	assert.Equal(t, []byte("jpeg-bytes"), data)
}

func TestDataURI_Decode(t *testing.T) {
	tests := []struct {
		name     string
		in       DataURI
		wantMime string
		wantErr  bool
	}{
		{"通常", "data:image/webp;base64,AAAA", "image/webp", false},
		{"MIME なしは image/png", "data:;base64,AAAA", "image/png", false},
		{"ペイロード内のカンマは最初のものだけで分割", "data:image/png;base64,QQ==", "image/png", false},
		{"プレフィックスなし", "image/png;base64,AAAA", "", true},
		{"カンマなし", "data:image/png;base64", "", true},
		{"base64 が壊れている", "data:image/png;base64,@@@", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mimeType, _, err := tt.in.Decode()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDataURI)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMime, mimeType)
		})
	}
}

func TestParseDataURI(t *testing.T) {
	d, err := ParseDataURI("  data:image/png;base64,AAAA\n")
	require.NoError(t, err)
	assert.Equal(t, DataURI("data:image/png;base64,AAAA"), d)

	_, err = ParseDataURI("https://example.com/a.png")
	assert.ErrorIs(t, err, ErrInvalidDataURI)
}

func TestNewHistoryEntry(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	res := GenerationResult{Image: "data:image/png;base64,AAAA", Prompt: "p"}

	a := NewHistoryEntry(res, now)
	b := NewHistoryEntry(res, now)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID, "ID は毎回異なる")
	assert.Equal(t, res.Image, a.Image)
	assert.Equal(t, "p", a.Prompt)
	assert.Equal(t, now, a.CreatedAt)
}

func TestRemoveMode_Valid(t *testing.T) {
	assert.True(t, RemoveTextOnly.Valid())
	assert.True(t, RemoveAll.Valid())
	assert.False(t, RemoveMode("everything").Valid())
}
