package document

import "errors"

// Capability is a parser for one structured document format. Implementations
// wrap an optional third-party library; when the library cannot serve, the
// Unavailable variant takes its place.
type Capability interface {
	// Available reports whether the format can be parsed at all.
	Available() bool
	// Parse extracts plain text from the raw document bytes.
	Parse(data []byte) (string, error)
}

type unavailable struct {
	reason string
}

// Unavailable returns a Capability that always abstains. The reason is
// surfaced to the operator when a document of this format is encountered.
func Unavailable(reason string) Capability {
	return unavailable{reason: reason}
}

func (u unavailable) Available() bool { return false }

func (u unavailable) Parse([]byte) (string, error) {
	return "", errors.New(u.reason)
}

// Reason returns the operator-facing explanation for the missing capability.
func (u unavailable) Reason() string { return u.reason }
