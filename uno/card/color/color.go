package color

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Color is a card colour. The declaration order is the display order.
type Color int

const (
	Red Color = iota
	Green
	Blue
	Yellow
	Wild
)

type colorStruct struct {
	name          string
	token         string
	colorFunction func(string, ...interface{}) string
}

var palette = map[Color]colorStruct{
	Red: {
		name:          "Red",
		token:         "r",
		colorFunction: color.New(color.FgHiRed).SprintfFunc(),
	},
	Green: {
		name:          "Green",
		token:         "g",
		colorFunction: color.New(color.FgHiGreen).SprintfFunc(),
	},
	Blue: {
		name:          "Blue",
		token:         "b",
		colorFunction: color.New(color.FgHiCyan).SprintfFunc(),
	},
	Yellow: {
		name:          "Yellow",
		token:         "y",
		colorFunction: color.New(color.FgHiYellow).SprintfFunc(),
	},
	Wild: {
		name:          "Wild",
		token:         "w",
		colorFunction: color.New(color.FgHiMagenta, color.Bold).SprintfFunc(),
	},
}

// Concrete lists the colours a wild card can be resolved into.
var Concrete = []Color{Red, Green, Blue, Yellow}

func (c Color) Paint(text string) string {
	return c.Paintf("%s", text)
}

func (c Color) Paintf(format string, args ...interface{}) string {
	entry, ok := palette[c]
	if !ok {
		return fmt.Sprintf(format, args...)
	}
	return entry.colorFunction(format, args...)
}

func (c Color) Name() string {
	entry, ok := palette[c]
	if !ok {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return entry.name
}

func (c Color) Token() string {
	return palette[c].token
}

func (c Color) IsWild() bool {
	return c == Wild
}

func (c Color) String() string {
	return c.Paint(c.Name())
}

// ByToken resolves the answer to a colour prompt. Only the first character
// counts, so "red" and "R" both select Red. Wild is never a valid answer.
func ByToken(token string) (Color, error) {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return Wild, fmt.Errorf("invalid color '%s'", token)
	}
	for _, candidate := range Concrete {
		if token[:1] == palette[candidate].token {
			return candidate, nil
		}
	}
	return Wild, fmt.Errorf("invalid color '%s'", token)
}

// SetEnabled switches ANSI painting on or off for every colour.
func SetEnabled(enabled bool) {
	color.NoColor = !enabled
}
