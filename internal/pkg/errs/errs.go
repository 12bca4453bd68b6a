package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

// Mark tags err so that errors.Is(err, markErr) holds without changing its message.
// Both the standard library and cockroachdb Is see the mark.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return &marked{error: cr.Mark(err, markErr), mark: markErr}
}

func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

type marked struct {
	error
	mark error
}

func (m *marked) Unwrap() error { return m.error }

func (m *marked) Is(target error) bool { return target == m.mark }

// Format keeps %+v rendering the cockroach stack of the wrapped error.
func (m *marked) Format(s fmt.State, verb rune) {
	if f, ok := m.error.(fmt.Formatter); ok {
		f.Format(s, verb)
		return
	}
	fmt.Fprint(s, m.error.Error())
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
