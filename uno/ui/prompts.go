package ui

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/spf13/cast"
)

const drawToken = "DRAW"

func (c *Console) PromptString(message string) string {
	for {
		c.Println(message)
		input := c.readLine()
		if input == "" {
			c.Println("Invalid text input")
			continue
		}
		return input
	}
}

func (c *Console) promptUppercaseString(message string) string {
	return strings.ToUpper(c.PromptString(message))
}

// PromptCardSelection asks for a 1-based card number or DRAW. It returns
// draw=true or the 0-based index of the chosen option.
func (c *Console) PromptCardSelection(options int) (draw bool, index int) {
	for {
		input := c.promptUppercaseString("Pick a card to play, or enter DRAW to draw:")
		if input == drawToken {
			return true, 0
		}
		number, err := cast.ToIntE(input)
		if err != nil {
			c.Printfln("Invalid number input '%s'", input)
			continue
		}
		if number < 1 || number > options {
			c.Printfln("Input out of range (minimum: %d, maximum: %d)", 1, options)
			continue
		}
		return false, number - 1
	}
}

func (c *Console) PromptConfirmPlay(drawnCard card.Card) bool {
	for {
		switch c.promptUppercaseString(fmt.Sprintf("Play card %s? Y/N?", drawnCard)) {
		case "Y":
			return true
		case "N":
			return false
		}
	}
}

func (c *Console) PromptColor() color.Color {
	options := make([]string, 0, len(color.Concrete))
	for _, concrete := range color.Concrete {
		options = append(options, fmt.Sprintf("'%s' for %s", concrete.Token(), concrete.Name()))
	}
	colorMessage := "Choose a color for the wild card: " + strings.Join(options, ", ")
	for {
		token := c.PromptString(colorMessage)
		chosenColor, err := color.ByToken(token)
		if err != nil {
			c.Printfln("Unknown color '%s'", token)
			continue
		}
		return chosenColor
	}
}
