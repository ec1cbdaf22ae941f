package console

import (
	"bytes"
	"io"
	"testing"

	"golang.org/x/text/encoding/charmap"
)

var statusFallback = []string{"✅", "[PASS]", "❌", "[FAIL]", "⚠️", "[WARN]", "⚠", "[WARN]"}

func latin1(t *testing.T, s string) string {
	t.Helper()
	out, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil {
		t.Fatalf("encode %q: %v", s, err)
	}
	return out
}

func TestConsole_UTF8PassesThrough(t *testing.T) {
	var buf bytes.Buffer
	c, err := New(&buf, "")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	text := "Status: **✅ All Passed**\n"
	degraded, err := c.Print(text)
	if err != nil {
		t.Fatalf("Print() error = %v", err)
	}
	if degraded {
		t.Error("Print() degraded on UTF-8 console")
	}
	if buf.String() != text {
		t.Errorf("Print() wrote %q, want %q", buf.String(), text)
	}
	if c.Encoding() != "UTF-8" {
		t.Errorf("Encoding() = %q, want UTF-8", c.Encoding())
	}
}

func TestConsole_EncodableTextNotDegraded(t *testing.T) {
	var buf bytes.Buffer
	c, err := New(&buf, "ISO-8859-1")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	c.SetFallback(statusFallback...)

	degraded, err := c.Print("Status: **ALL PASSED** café\n")
	if err != nil {
		t.Fatalf("Print() error = %v", err)
	}
	if degraded {
		t.Error("Print() degraded for Latin-1 text")
	}
	if want := latin1(t, "Status: **ALL PASSED** café\n"); buf.String() != want {
		t.Errorf("Print() wrote %q, want %q", buf.String(), want)
	}
}

func TestConsole_FallsBackToASCIITags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"pass", "Status: **✅ All Passed**", "Status: **[PASS] All Passed**"},
		{"fail", "Status: **❌ Failures** café", "Status: **[FAIL] Failures** café"},
		{"warn with variation selector", "Status: **⚠️ Errors**", "Status: **[WARN] Errors**"},
		{"other characters replaced", "❌ 测试", "[FAIL] ??"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			c, err := New(&buf, "latin1")
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			c.SetFallback(statusFallback...)

			degraded, err := c.Print(tt.in)
			if err != nil {
				t.Fatalf("Print() error = %v", err)
			}
			if !degraded {
				t.Error("Print() degraded = false, want true")
			}
			if want := latin1(t, tt.want); buf.String() != want {
				t.Errorf("Print() wrote %q, want %q", buf.String(), want)
			}
		})
	}
}

func TestConsole_NoFallbackStillReplaces(t *testing.T) {
	var buf bytes.Buffer
	c, err := New(&buf, "ISO-8859-1")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := c.Print("✅ ok"); err != nil {
		t.Fatalf("Print() error = %v", err)
	}
	if buf.String() != "? ok" {
		t.Errorf("Print() wrote %q, want %q", buf.String(), "? ok")
	}
}

func TestConsole_WidenToUTF8(t *testing.T) {
	var buf bytes.Buffer
	c, err := New(&buf, "ISO-8859-1")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	c.widen = func(io.Writer) bool { return false }
	if c.WidenToUTF8() {
		t.Fatal("WidenToUTF8() = true with a refusing console")
	}
	if c.Encoding() != "ISO-8859-1" {
		t.Errorf("Encoding() = %q after failed widen", c.Encoding())
	}

	c.widen = func(io.Writer) bool { return true }
	if !c.WidenToUTF8() {
		t.Fatal("WidenToUTF8() = false with an accepting console")
	}
	if c.Encoding() != "UTF-8" {
		t.Errorf("Encoding() = %q, want UTF-8", c.Encoding())
	}

	degraded, err := c.Print("✅")
	if err != nil || degraded {
		t.Fatalf("Print() = %v, %v after widening", degraded, err)
	}
	if buf.String() != "✅" {
		t.Errorf("Print() wrote %q, want symbol verbatim", buf.String())
	}
}

func TestConsole_WidenNoopOnUTF8(t *testing.T) {
	c, err := New(&bytes.Buffer{}, "utf8")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	c.widen = func(io.Writer) bool {
		t.Error("widen called on a UTF-8 console")
		return false
	}
	if !c.WidenToUTF8() {
		t.Error("WidenToUTF8() = false on UTF-8 console")
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		wantNil bool
		wantErr bool
	}{
		{"", true, false},
		{"UTF-8", true, false},
		{"utf8", true, false},
		{"ISO-8859-1", false, false},
		{"windows-1252", false, false},
		{"x-no-such-charset", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := Lookup(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Lookup(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if (enc == nil) != tt.wantNil {
				t.Errorf("Lookup(%q) = %v, wantNil %v", tt.name, enc, tt.wantNil)
			}
		})
	}
}

func TestNew_UnknownEncoding(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, "x-no-such-charset"); err == nil {
		t.Error("New() error = nil, want error")
	}
}

func TestFromLocale(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"unset", nil, ""},
		{"lang utf8", map[string]string{"LANG": "en_US.UTF-8"}, "UTF-8"},
		{"lang latin1 with modifier", map[string]string{"LANG": "de_DE.ISO-8859-15@euro"}, "ISO-8859-15"},
		{"lc_all wins", map[string]string{"LC_ALL": "fr_FR.ISO-8859-1", "LANG": "en_US.UTF-8"}, "ISO-8859-1"},
		{"lc_ctype before lang", map[string]string{"LC_CTYPE": "C.UTF-8", "LANG": "en_US.ISO-8859-1"}, "UTF-8"},
		{"no charset", map[string]string{"LANG": "C"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getenv := func(k string) string { return tt.env[k] }
			if got := FromLocale(getenv); got != tt.want {
				t.Errorf("FromLocale() = %q, want %q", got, tt.want)
			}
		})
	}
}
