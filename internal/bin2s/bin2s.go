// Package bin2s converts binary data into GNU assembler source modules.
//
// For a payload registered under an identifier, the generated module defines
// three global symbols:
//
//	{identifier}:       the data bytes, in a read-only section
//	{identifier}_end:   the location directly after the end of the data
//	{identifier}_size:  an unsigned int holding the data length in bytes
//
// which is roughly equivalent to this pseudocode:
//
//	unsigned int identifier_size = ...
//	unsigned char identifier[identifier_size] = { ... }
//	unsigned char identifier_end[] = identifier + identifier_size
package bin2s

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/bin2s/bin2s/internal/templates"
)

// Default encoding parameters used by the CLI when no explicit values are given.
const (
	DefaultAlignment  = 4
	DefaultLineLength = 16
)

var (
	// ErrInvalidIdentifier is returned when a raw name contains no legal
	// identifier characters at all.
	ErrInvalidIdentifier = errors.New("identifier doesn't contain any legal characters")
	// ErrInvalidParameter is returned when an encoding parameter is not
	// strictly positive.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// Options controls the layout of the generated module.
type Options struct {
	// Alignment is the boundary alignment of the data section, in bytes.
	Alignment int
	// LineLength is the number of data bytes emitted per .byte line.
	LineLength int
}

// Validate checks that both encoding parameters are strictly positive.
// Zero values are rejected, not clamped; defaults belong to the caller.
func (o Options) Validate() error {
	if o.Alignment <= 0 {
		return fmt.Errorf("%w: alignment must be greater than 0, got %d", ErrInvalidParameter, o.Alignment)
	}
	if o.LineLength <= 0 {
		return fmt.Errorf("%w: line length must be greater than 0, got %d", ErrInvalidParameter, o.LineLength)
	}
	return nil
}

// Sanitize derives a legal assembler symbol from a raw name, typically a
// file's base name.
//
// It strips every character that is not an ASCII letter, digit or one of
// `_-./`, replaces each of `-./` with `_`, and prepends `_` if the result
// begins with a digit. It fails with ErrInvalidIdentifier when no legal
// characters survive the stripping.
func Sanitize(raw string) (string, error) {
	var b strings.Builder
	for _, c := range raw {
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '_':
			b.WriteRune(c)
		case c == '-', c == '.', c == '/':
			b.WriteByte('_')
		}
	}

	s := b.String()
	if s == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidIdentifier, raw)
	}
	if s[0] >= '0' && s[0] <= '9' {
		s = "_" + s
	}
	return s, nil
}

// Convert writes an assembly module embedding the bytes of r under the
// sanitized form of identifier. The payload is whatever remains of r from
// its current position; exactly that many bytes are consumed.
//
// It returns false, with nothing written, when r has no bytes left to read.
// On a read or write failure any partial output is not a valid module.
func Convert(w io.Writer, identifier string, r io.Reader, opts Options) (bool, error) {
	if err := opts.Validate(); err != nil {
		return false, err
	}

	ident, err := Sanitize(identifier)
	if err != nil {
		return false, err
	}

	buf := make([]byte, opts.LineLength)
	n, err := io.ReadFull(r, buf)
	if err == io.EOF {
		return false, nil
	}
	if err != nil && err != io.ErrUnexpectedEOF {
		return false, fmt.Errorf("failed to read payload for %s: %w", ident, err)
	}

	if err := execTemplate(w, "preamble.s.tmpl", struct {
		Ident     string
		Alignment int
	}{ident, opts.Alignment}); err != nil {
		return false, err
	}

	size := 0
	for n > 0 {
		if err := writeByteLine(w, buf[:n]); err != nil {
			return false, fmt.Errorf("failed to write module for %s: %w", ident, err)
		}
		size += n

		n, err = io.ReadFull(r, buf)
		if err == io.EOF {
			break
		}
		if err != nil && err != io.ErrUnexpectedEOF {
			return false, fmt.Errorf("failed to read payload for %s: %w", ident, err)
		}
	}

	if err := execTemplate(w, "trailer.s.tmpl", struct {
		Ident string
		Size  int
	}{ident, size}); err != nil {
		return false, err
	}

	return true, nil
}

// Banner writes the generated-file comment that precedes a batch of modules
// sharing one output stream.
func Banner(w io.Writer, tool string) error {
	_, err := fmt.Fprintf(w, "/* Generated by %s - please don't edit manually */\n", tool)
	return err
}

// writeByteLine emits one .byte directive for a chunk of the payload.
// Values are decimal, comma separated, right justified in 3-column fields.
func writeByteLine(w io.Writer, chunk []byte) error {
	var line strings.Builder
	line.WriteString("  .byte ")
	for i, b := range chunk {
		if i > 0 {
			line.WriteByte(',')
		}
		fmt.Fprintf(&line, "%3d", b)
	}
	line.WriteByte('\n')
	_, err := io.WriteString(w, line.String())
	return err
}

func execTemplate(w io.Writer, name string, data any) error {
	content, err := templates.Get(name)
	if err != nil {
		return err
	}
	t, err := template.New(name).Parse(content)
	if err != nil {
		return err
	}
	return t.Execute(w, data)
}
