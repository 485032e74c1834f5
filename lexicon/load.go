package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Load reads r line by line and builds a Lexicon from the first
// whitespace-delimited token of every non-blank line.
//
// Behavior highlights:
//   - Tokens are lowercased before insertion; duplicates are idempotent.
//   - Blank and whitespace-only lines are skipped.
//   - Everything after the first token on a line is ignored.
//
// Errors:
//   - ErrOptionViolation for an invalid option.
//   - ErrRead wrapping the reader's error (including bufio.ErrTooLong).
func Load(r io.Reader, opts ...LoadOption) (*Lexicon, error) {
	o := DefaultLoadOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(64*1024, o.MaxLineBytes)), o.MaxLineBytes)

	var (
		tokens  []string
		lines   int
		skipped int
	)
	for sc.Scan() {
		lines++
		tok, ok := firstToken(sc.Text())
		if !ok {
			skipped++
			continue
		}
		tokens = append(tokens, tok)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: line %d: %w", ErrRead, lines+1, err)
	}

	lex := New(tokens...)
	o.Logger.WithFields(logrus.Fields{
		"lines":   lines,
		"skipped": skipped,
		"words":   lex.Len(),
	}).Info("lexicon loaded")

	return lex, nil
}

// firstToken returns the first whitespace-delimited token of line.
func firstToken(line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false
	}

	return fields[0], true
}
