package msg

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/uno/card"
)

func Sprintfln(format string, args ...interface{}) string {
	return Sprintln(fmt.Sprintf(format, args...))
}

func Sprintlns(lines []string) string {
	return Sprintln(strings.Join(lines, "\n"))
}

func Sprintln(args ...interface{}) string {
	return fmt.Sprintln(args...)
}

// Cards renders a list the way the hand is shown: "[Red 1, Blue 2]".
func Cards(cards []card.Card) string {
	names := make([]string, 0, len(cards))
	for _, c := range cards {
		names = append(names, c.String())
	}
	return "[" + strings.Join(names, ", ") + "]"
}

// Options renders the numbered choices: "(1) Red 1, (2) Blue 2", or "null"
// when there is nothing to choose.
func Options(cards []card.Card) string {
	if len(cards) == 0 {
		return "null"
	}
	options := make([]string, 0, len(cards))
	for i, c := range cards {
		options = append(options, fmt.Sprintf("(%d) %s", i+1, c))
	}
	return strings.Join(options, ", ")
}

func Sprintf(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...)
}
