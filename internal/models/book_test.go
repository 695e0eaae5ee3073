package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBook(t *testing.T) {
	b, err := NewBook("Trip", Palette["blue"])
	require.NoError(t, err)
	assert.Equal(t, "Trip", b.Name)
	assert.Equal(t, Palette["blue"], b.Color)
}

func TestNewBook_EmptyName(t *testing.T) {
	_, err := NewBook("", Palette["red"])
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewBook("   ", Palette["red"])
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestEncodeDecodeBooks_RoundTrip(t *testing.T) {
	a, err := NewBook("Trip", Palette["blue"])
	require.NoError(t, err)
	b, err := NewBook("School", Color{R: 0.1, G: 0.2, B: 0.3, Opacity: 0.8})
	require.NoError(t, err)

	data, err := EncodeBooks([]MemoryBook{a, b})
	require.NoError(t, err)

	got, err := DecodeBooks(data)
	require.NoError(t, err)
	assert.Equal(t, []MemoryBook{a, b}, got)
}

func TestDecodeBooks_OpacityDefaultsToOne(t *testing.T) {
	// Older records stored only r/g/b.
	payload := `[{"id":"6e7cdaa8-36c5-4e66-bb2c-a40cbb744a52","name":"Old",
		"color":{"r":1,"g":0,"b":0}}]`
	got, err := DecodeBooks([]byte(payload))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, Color{R: 1, G: 0, B: 0, Opacity: 1}, got[0].Color)
}

func TestDecodeBooks_Malformed(t *testing.T) {
	_, err := DecodeBooks([]byte("garbage"))
	assert.Error(t, err)
}

func TestColor_JSONRoundTrip(t *testing.T) {
	c := Color{R: 0.5, G: 0.25, B: 1, Opacity: 0.7}
	data, err := json.Marshal(c)
	require.NoError(t, err)

	var got Color
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, c, got)
}
