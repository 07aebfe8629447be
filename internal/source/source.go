// Package source loads configuration documents from disk or stdin and
// decodes them to a single string.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// ErrUnavailable is matched by every *Error.
var ErrUnavailable = errors.New("source unavailable")

// Error reports a document that could not be read or decoded.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrUnavailable, e.Path, e.Err)
}

func (e *Error) Unwrap() []error {
	return []error{ErrUnavailable, e.Err}
}

// Load reads the document at path ("-" for stdin) and decodes it.
func Load(path string) (string, error) {
	if path == Stdin {
		return Read(os.Stdin, "<stdin>")
	}

	f, err := os.Open(path)
	if err != nil {
		return "", &Error{Path: path, Err: err}
	}
	defer f.Close()

	return Read(f, path)
}

// Read decodes a document from r. UTF-8 is assumed and invalid UTF-8 is an
// error; a UTF-8 or UTF-16 byte order mark selects the encoding and is
// dropped. CRLF line endings become LF. name is only used in errors.
func Read(r io.Reader, name string) (string, error) {
	decoder := unicode.BOMOverride(encoding.UTF8Validator)

	data, err := io.ReadAll(transform.NewReader(r, decoder))
	if err != nil {
		return "", &Error{Path: name, Err: fmt.Errorf("decode: %w", err)}
	}
	if !isText(data) {
		return "", &Error{Path: name, Err: errors.New("decode: contains NUL bytes")}
	}

	return strings.ReplaceAll(string(data), "\r\n", "\n"), nil
}

// isText rejects binary input that decoded without error.
func isText(data []byte) bool {
	return bytes.IndexByte(data, 0) < 0
}
