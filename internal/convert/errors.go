package convert

import (
	"errors"
	"fmt"
)

// Kind classifies a conversion failure. Every error returned by
// Converter.Convert carries exactly one Kind; callers map kinds to
// their own status taxonomy (client fault vs conversion fault).
type Kind int

const (
	// KindUnknown marks errors that did not originate in this package.
	KindUnknown Kind = iota

	// KindInputNotFound: the input path does not exist.
	KindInputNotFound

	// KindFormatUndetected: no detection technique could classify the
	// input.
	KindFormatUndetected

	// KindUnsupportedTarget: the requested target token does not
	// normalize to a known format.
	KindUnsupportedTarget

	// KindUnsupportedConversion: input and target are both recognized
	// but the pair is absent from the conversion matrix.
	KindUnsupportedConversion

	// KindUnsupportedInput: the input format resolved to no strategy
	// family.
	KindUnsupportedInput

	// KindInvalidQuality: quality outside [1,100].
	KindInvalidQuality

	// KindStrategyFailure: the chosen strategy's primary and all
	// fallback techniques failed; the cause chain carries every
	// underlying error.
	KindStrategyFailure
)

var kindNames = map[Kind]string{
	KindUnknown:               "unknown",
	KindInputNotFound:         "input not found",
	KindFormatUndetected:      "format undetected",
	KindUnsupportedTarget:     "unsupported target",
	KindUnsupportedConversion: "unsupported conversion",
	KindUnsupportedInput:      "unsupported input",
	KindInvalidQuality:        "invalid quality",
	KindStrategyFailure:       "strategy failure",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Error is a typed conversion failure.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

func failf(k Kind, msg string, args ...interface{}) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(msg, args...)}
}

func wrapf(k Kind, err error, msg string, args ...interface{}) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(msg, args...), Err: err}
}

// KindOf extracts the Kind carried anywhere in err's chain, or
// KindUnknown for foreign errors.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindUnknown
}
