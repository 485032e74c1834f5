package lexicon

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for lexicon loading.
var (
	// ErrRead is returned when the input stream cannot be read to the end.
	ErrRead = errors.New("lexicon: read failed")

	// ErrOptionViolation is returned when an invalid LoadOption is supplied.
	ErrOptionViolation = errors.New("lexicon: invalid option supplied")
)

// DefaultMaxLineBytes is the longest input line Load accepts by default.
const DefaultMaxLineBytes = 1 << 20

// LoadOption configures Load via functional arguments.
// An invalid option is recorded and surfaced as ErrOptionViolation by Load.
type LoadOption func(*LoadOptions)

// LoadOptions holds the parameters of a Load call.
type LoadOptions struct {
	// Logger receives a single summary entry once loading finishes.
	Logger logrus.FieldLogger

	// MaxLineBytes bounds the length of a single input line.
	MaxLineBytes int

	// internal error recorded during option parsing
	err error
}

// DefaultLoadOptions returns LoadOptions with a discarding logger and
// DefaultMaxLineBytes.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Logger:       discardLogger(),
		MaxLineBytes: DefaultMaxLineBytes,
	}
}

// WithLogger sets the logger used for the load summary. nil is ignored.
func WithLogger(l logrus.FieldLogger) LoadOption {
	return func(o *LoadOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxLineBytes raises or lowers the per-line size limit.
//
//	n > 0:  use n
//	n <= 0: invalid option → ErrOptionViolation
func WithMaxLineBytes(n int) LoadOption {
	return func(o *LoadOptions) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxLineBytes must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxLineBytes = n
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
