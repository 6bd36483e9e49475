package consts

const (
	MinPlayers = 2
	// MaxPlayers keeps the historical "fewer than ten" bound.
	MaxPlayers = 9

	StartingHandSize = 7
	StandardDeckSize = 108
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsPlayerCountInvalid = NewErr(1, true, "Player count invalid. ")
	ErrorsInteractionMissing = NewErr(2, true, "Interaction missing. ")
	ErrorsInputClosed        = NewErr(3, true, "Input closed. ")
	ErrorsConfigInvalid      = NewErr(5, true, "Config invalid. ")
)
