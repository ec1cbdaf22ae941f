// Package console writes the rendered summary to a terminal or pipe whose
// character encoding may not cover the status symbols.
package console

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// replacementChar stands in for characters the console encoding cannot represent.
const replacementChar = '?'

// Console writes text in a fixed character encoding.
type Console struct {
	w        io.Writer
	name     string
	enc      encoding.Encoding // nil means UTF-8
	fallback *strings.Replacer
	widen    func(io.Writer) bool
}

// New creates a Console writing to w in the named IANA charset.
// An empty name or any UTF-8 alias selects UTF-8.
func New(w io.Writer, charset string) (*Console, error) {
	enc, err := Lookup(charset)
	if err != nil {
		return nil, err
	}
	name := "UTF-8"
	if enc != nil {
		name = charset
	}
	return &Console{
		w:     w,
		name:  name,
		enc:   enc,
		widen: widenConsole,
	}, nil
}

// SetFallback installs the old/new pairs substituted when the text cannot be
// encoded as is.
func (c *Console) SetFallback(pairs ...string) {
	c.fallback = strings.NewReplacer(pairs...)
}

// Encoding returns the name of the active encoding.
func (c *Console) Encoding() string {
	return c.name
}

// WidenToUTF8 tries to switch the underlying console to UTF-8. It returns true
// when the console now accepts any text.
func (c *Console) WidenToUTF8() bool {
	if c.enc == nil {
		return true
	}
	if c.widen == nil || !c.widen(c.w) {
		return false
	}
	c.enc = nil
	c.name = "UTF-8"
	return true
}

// Print writes text. When the encoding cannot represent it, the fallback
// substitutions are applied and any remaining unencodable characters are
// replaced with '?'. degraded reports whether that happened.
func (c *Console) Print(text string) (degraded bool, err error) {
	if c.enc == nil {
		_, err = io.WriteString(c.w, text)
		return false, err
	}

	encoded, encErr := c.enc.NewEncoder().String(text)
	if encErr == nil {
		_, err = io.WriteString(c.w, encoded)
		return false, err
	}

	if c.fallback != nil {
		text = c.fallback.Replace(text)
	}
	_, err = io.WriteString(c.w, c.encodeLossy(text))
	return true, err
}

// encodeLossy encodes text rune by rune, replacing what the encoding rejects.
func (c *Console) encodeLossy(text string) string {
	enc := c.enc.NewEncoder()
	var b strings.Builder
	var buf [utf8.UTFMax]byte
	for _, r := range text {
		n := utf8.EncodeRune(buf[:], r)
		out, err := enc.Bytes(buf[:n])
		if err != nil {
			b.WriteByte(replacementChar)
			continue
		}
		b.Write(out)
	}
	return b.String()
}

// Lookup resolves an IANA charset name. UTF-8 yields a nil Encoding.
func Lookup(charset string) (encoding.Encoding, error) {
	if isUTF8(charset) {
		return nil, nil
	}
	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil {
		return nil, fmt.Errorf("unknown console encoding %q", charset)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported console encoding %q", charset)
	}
	return enc, nil
}

// FromLocale extracts the charset from the POSIX locale variables, in
// LC_ALL, LC_CTYPE, LANG order. It returns "" when no charset is named.
func FromLocale(getenv func(string) string) string {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		locale := getenv(key)
		if locale == "" {
			continue
		}
		// language_TERRITORY.charset@modifier
		if i := strings.IndexByte(locale, '@'); i >= 0 {
			locale = locale[:i]
		}
		if i := strings.IndexByte(locale, '.'); i >= 0 {
			return locale[i+1:]
		}
		return ""
	}
	return ""
}

func isUTF8(charset string) bool {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "", "utf-8", "utf8":
		return true
	}
	return false
}
