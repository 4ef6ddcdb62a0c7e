package account

// AmountRequest is the body for deposit and withdraw operations. Parsing the
// numeric text into a number is the caller's job; the core only validates
// domain constraints.
type AmountRequest struct {
	Amount float64 `json:"amount" validate:"required"`
}
