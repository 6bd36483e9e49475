package ui

import (
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/ratel-online/uno/uno/card/color"
)

// SetColorEnabled switches painting on or off for cards and decorations alike.
func SetColorEnabled(enabled bool) {
	color.SetEnabled(enabled)
	if enabled {
		pterm.EnableColor()
	} else {
		pterm.DisableColor()
	}
}

func Banner() (string, error) {
	return pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("U", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("N", pterm.FgYellow.ToStyle()),
		putils.LettersFromStringWithStyle("O", pterm.FgBlue.ToStyle()),
	).Srender()
}

func WinnerBox(player int) string {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	return pbox.WithTitle(pterm.LightGreen("|WINNER|")).WithTitleTopCenter().Sprintf("Player %d won!", player+1)
}
