package color_test

import (
	"testing"

	fatihcolor "github.com/fatih/color"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/stretchr/testify/require"
)

func TestByToken(t *testing.T) {
	scenarios := []struct {
		description string
		token       string
		expected    color.Color
		valid       bool
	}{
		{description: "single_lowercase_letter", token: "r", expected: color.Red, valid: true},
		{description: "single_uppercase_letter", token: "G", expected: color.Green, valid: true},
		{description: "full_word_uses_first_letter", token: "blue", expected: color.Blue, valid: true},
		{description: "surrounding_whitespace", token: "  y ", expected: color.Yellow, valid: true},
		{description: "wild_is_rejected", token: "w", valid: false},
		{description: "unknown_letter", token: "x", valid: false},
		{description: "empty_input", token: "", valid: false},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			chosen, err := color.ByToken(scenario.token)
			if !scenario.valid {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, scenario.expected, chosen)
		})
	}
}

func TestConcreteExcludesWild(t *testing.T) {
	require.Equal(t, []color.Color{color.Red, color.Green, color.Blue, color.Yellow}, color.Concrete)
	for _, concrete := range color.Concrete {
		require.False(t, concrete.IsWild())
	}
	require.True(t, color.Wild.IsWild())
}

func TestPaintWithoutColor(t *testing.T) {
	noColor := fatihcolor.NoColor
	color.SetEnabled(false)
	defer func() { fatihcolor.NoColor = noColor }()

	require.Equal(t, "Red 5", color.Red.Paintf("%s %d", "Red", 5))
	require.Equal(t, "Yellow", color.Yellow.String())
	require.Equal(t, "Wild", color.Wild.Paint("Wild"))
}
