package weather

// Error is a weather provider error
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

const (
	ErrNilConfig          Error = "config cannot be nil"
	ErrEmptyCity          Error = "city cannot be empty"
	ErrLocationNotFound   Error = "location not found"
	ErrMalformedResponse  Error = "malformed response from weather provider"
	ErrUnexpectedStatus   Error = "unexpected status from weather provider"
	ErrDetectionFailed    Error = "location detection failed"
	ErrIncompleteLocation Error = "detected location is incomplete"
)
