package reader

// SyntaxError reports a reader-stage failure: an unterminated string,
// a malformed number, an unexpected character, or a mismatched
// delimiter. It carries no source position, since source-location
// tracking in errors is out of scope.
type SyntaxError struct {
	Message string
}

func (e *SyntaxError) Error() string { return e.Message }
