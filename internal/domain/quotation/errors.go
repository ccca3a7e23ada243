package quotation

import "errors"

// ErrIndexOutOfRange is returned when an item index does not address a
// ledger slot. The ledger is left unchanged.
var ErrIndexOutOfRange = errors.New("item index out of range")

// ValidationError covers user input that cannot become a line item or a
// record: empty required text or an unparseable number. The operation
// that returns it mutates nothing.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func invalidInput(msg string) error { return &ValidationError{Msg: msg} }
