package apperrors

import "errors"

// 错误码
const (
	CodeDeckExhausted = 1001
	CodeHandFull      = 1002
	CodeWrongPhase    = 1003
)

// GameError 游戏错误. All of them are contract breaches between the round and
// its collaborators, never something the player caused.
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// 预定义错误
var (
	ErrDeckExhausted = &GameError{Code: CodeDeckExhausted, Message: "deck exhausted mid-round"}
	ErrHandFull      = &GameError{Code: CodeHandFull, Message: "hand already holds five cards"}
	ErrWrongPhase    = &GameError{Code: CodeWrongPhase, Message: "action not allowed in current phase"}
)

// IsInvariant reports whether err is one of the game's invariant violations.
func IsInvariant(err error) bool {
	var ge *GameError
	return errors.As(err, &ge)
}

// CodeOf returns the GameError code carried by err, or 0.
func CodeOf(err error) int {
	var ge *GameError
	if errors.As(err, &ge) {
		return ge.Code
	}
	return 0
}
