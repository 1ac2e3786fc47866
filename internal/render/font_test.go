package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodepoints(t *testing.T) {
	cps := Codepoints("маяк", "Hi мая")

	require.Len(t, cps, 95+4)
	assert.Equal(t, ' ', cps[0])
	assert.Equal(t, '~', cps[94])
	assert.Equal(t, []rune{'а', 'к', 'м', 'я'}, cps[95:])
}

func TestCodepointsSkipsControl(t *testing.T) {
	assert.Len(t, Codepoints("a\nb\t"), 95)
}

func TestMissingGlyphs(t *testing.T) {
	asciiOnly := func(r rune) bool { return r < 128 }

	assert.Empty(t, MissingGlyphs("Technology unlocked: energy beacon", asciiOnly))
	assert.Equal(t, []rune{'м', 'а', 'я', 'к'}, MissingGlyphs("маяк маяк!", asciiOnly))
	assert.Empty(t, MissingGlyphs("", asciiOnly))
}
