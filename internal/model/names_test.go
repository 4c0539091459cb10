package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNames(t *testing.T) {
	e, err := ParseElement("火")
	require.NoError(t, err)
	assert.Equal(t, ElementFire, e)

	e, err = ParseElement(" Dark ")
	require.NoError(t, err)
	assert.Equal(t, ElementDark, e)

	e, err = ParseElement("なし")
	require.NoError(t, err)
	assert.Equal(t, ElementNone, e)

	c, err := ParseCategory("特殊範囲")
	require.NoError(t, err)
	assert.Equal(t, CategorySpecialArea, c)

	s, err := ParseSubtype("BⅣ")
	require.NoError(t, err)
	assert.Equal(t, SubtypeB4, s)

	s, err = ParseSubtype("a6")
	require.NoError(t, err)
	assert.Equal(t, SubtypeA6, s)

	for _, name := range []string{"lb3", "3", "3凸"} {
		b, err := ParseBreakthrough(name)
		require.NoError(t, err, name)
		assert.Equal(t, Breakthrough3, b, name)
	}

	sk, err := ParseSupportSkill("ダメージUPⅤ++")
	require.NoError(t, err)
	assert.Equal(t, DamageUp5PlusPlus, sk)

	sk, err = ParseSupportSkill("")
	require.NoError(t, err)
	assert.Equal(t, SupportNone, sk)
}

func TestParseNames_Suggestions(t *testing.T) {
	tests := []struct {
		name     string
		parse    func(string) error
		input    string
		wantHint string
	}{
		{
			name:     "element typo",
			parse:    func(s string) error { _, err := ParseElement(s); return err },
			input:    "watr",
			wantHint: `did you mean "water"?`,
		},
		{
			name:     "category typo",
			parse:    func(s string) error { _, err := ParseCategory(s); return err },
			input:    "normal-singel",
			wantHint: `did you mean "normal-single"?`,
		},
		{
			name:     "support skill typo",
			parse:    func(s string) error { _, err := ParseSupportSkill(s); return err },
			input:    "dmg-up-5+++",
			wantHint: `did you mean "dmg-up-5++"?`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.parse(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnknownName)
			assert.Contains(t, err.Error(), tt.wantHint)
		})
	}
}

func TestParseNames_NoSuggestionForGarbage(t *testing.T) {
	_, err := ParseSubtype("zzzzzzzz")
	require.ErrorIs(t, err, ErrUnknownName)
	assert.NotContains(t, err.Error(), "did you mean")
}
