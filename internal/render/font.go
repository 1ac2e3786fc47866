package render

import (
	"os"
	"sort"
	"unicode"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
)

var ErrFontNotLoaded = errors.New("render: font not loaded")

// Codepoints is printable ASCII plus every rune used by texts, sorted and
// without duplicates. raylib only rasterizes the glyphs it is asked for.
func Codepoints(texts ...string) []rune {
	seen := make(map[rune]struct{}, 128)
	for r := rune(32); r < 127; r++ {
		seen[r] = struct{}{}
	}
	for _, text := range texts {
		for _, r := range text {
			if unicode.IsPrint(r) {
				seen[r] = struct{}{}
			}
		}
	}
	out := make([]rune, 0, len(seen))
	for r := range seen {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// LoadFont loads path with the glyphs needed for texts and makes it the HUD
// font. An empty path keeps raylib's default font. Needs an open window.
func LoadFont(path string, size int32, texts ...string) (rl.Font, error) {
	if path == "" {
		return rl.GetFontDefault(), nil
	}
	if _, err := os.Stat(path); err != nil {
		return rl.GetFontDefault(), errors.Wrap(err, "hud font")
	}
	font := rl.LoadFontEx(path, size, Codepoints(texts...))
	if !rl.IsFontValid(font) {
		return rl.GetFontDefault(), errors.Wrapf(ErrFontNotLoaded, "%s", path)
	}
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	gui.SetFont(font)
	return font, nil
}

// FontHas reports whether font has a real glyph for a rune. raylib answers
// lookups for missing glyphs with '?'.
func FontHas(font rl.Font) func(rune) bool {
	return func(r rune) bool {
		return rl.GetGlyphInfo(font, int32(r)).Value == int32(r)
	}
}

// MissingGlyphs lists, in order of first use, the visible runes of text that
// has cannot draw.
func MissingGlyphs(text string, has func(rune) bool) []rune {
	var missing []rune
	seen := make(map[rune]bool)
	for _, r := range text {
		if unicode.IsSpace(r) || !unicode.IsPrint(r) || seen[r] {
			continue
		}
		seen[r] = true
		if !has(r) {
			missing = append(missing, r)
		}
	}
	return missing
}
