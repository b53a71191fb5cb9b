//go:build unit
// +build unit

package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"take.wav", "take.wav"},
		{"my take (1).m4a", "my_take__1_.m4a"},
		{"../../etc/passwd", "passwd"},
		{`C:\Users\me\clip.mp3`, "clip.mp3"},
		{"..hidden.wav", "hidden.wav"},
		{"", "audio"},
		{"ääää", "audio"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFileName(tt.in, "audio"))
		})
	}
}

func TestSanitizeFileName_Truncates(t *testing.T) {
	long := make([]byte, 300)
	for i := range long {
		long[i] = 'a'
	}
	out := SanitizeFileName(string(long)+".wav", "audio")
	assert.Len(t, out, maxFileNameLength)
	assert.Contains(t, out, ".wav")
}

func TestParseOptionalUint(t *testing.T) {
	v, err := ParseOptionalUint("")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = ParseOptionalUint(" 12 ")
	require.NoError(t, err)
	assert.Equal(t, uint(12), *v)

	_, err = ParseOptionalUint("abc")
	assert.Error(t, err)

	_, err = ParseOptionalUint("-1")
	assert.Error(t, err)
}

func TestParseUint(t *testing.T) {
	v, err := ParseUint("5")
	require.NoError(t, err)
	assert.Equal(t, uint(5), v)

	_, err = ParseUint("")
	assert.Error(t, err)
}
