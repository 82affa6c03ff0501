package transcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// grinning face, outside the BMP
const nonBMP = 128512

func TestCodepointToString(t *testing.T) {
	s, ok := CodepointToString(nonBMP)
	require.True(t, ok)
	assert.Equal(t, "\U0001F600", s)

	s, ok = CodepointToString('A')
	require.True(t, ok)
	assert.Equal(t, "A", s)

	for _, cp := range []rune{0xD800, 0xDFFF, 0x110000, -1} {
		_, ok := CodepointToString(cp)
		assert.False(t, ok, "U+%X", cp)
	}
}

func TestUTF16RoundTrip(t *testing.T) {
	s, ok := CodepointToString(nonBMP)
	require.True(t, ok)

	for _, in := range []string{s, "", "plain ascii", "héllo wörld " + s + " ok"} {
		b, err := EncodeUTF16LE(in)
		require.NoError(t, err)
		assert.Len(t, b, 2*UTF16Len(in))

		out, err := DecodeUTF16LE(b)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	}
}

func TestEncodeUTF16LELayout(t *testing.T) {
	b, err := EncodeUTF16LE("A\U0001F600")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x41, 0x00, 0x3D, 0xD8, 0x00, 0xDE}, b)
}

func TestUTF8RoundTrip(t *testing.T) {
	s, ok := CodepointToString(nonBMP)
	require.True(t, ok)

	b, err := EncodeUTF8(s)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xF0, 0x9F, 0x98, 0x80}, b)

	out, err := DecodeUTF8(b)
	require.NoError(t, err)
	assert.Equal(t, s, out)
}

func TestDecodeUTF8ReplacesInvalid(t *testing.T) {
	out, err := DecodeUTF8([]byte{'a', 0xFF, 'b'})
	require.NoError(t, err)
	assert.Equal(t, "a�b", out)
}

func TestUTF16Len(t *testing.T) {
	assert.Equal(t, 0, UTF16Len(""))
	assert.Equal(t, 3, UTF16Len("abc"))
	assert.Equal(t, 2, UTF16Len("\U0001F600"))
	assert.Equal(t, 1, UTF16Len("é"))
}
