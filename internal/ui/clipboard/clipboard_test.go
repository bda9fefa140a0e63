package clipboard

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func TestWritePrefersNative(t *testing.T) {
	var got string
	var osc bytes.Buffer
	c := &Clipboard{
		native: func(s string) error { got = s; return nil },
		osc:    &osc,
	}

	if err := c.Write("flag{native}"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got != "flag{native}" {
		t.Errorf("expected native clipboard to receive text, got %q", got)
	}
	if osc.Len() != 0 {
		t.Errorf("expected no OSC52 output, got %q", osc.String())
	}
}

func TestWriteFallsBackToOSC52(t *testing.T) {
	var osc bytes.Buffer
	c := &Clipboard{
		native: func(string) error { return errors.New("no xclip") },
		osc:    &osc,
	}

	if err := c.Write("hello"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if osc.String() != OSC52("hello") {
		t.Errorf("unexpected OSC52 output %q", osc.String())
	}
}

func TestWriteNoClipboard(t *testing.T) {
	c := &Clipboard{native: func(string) error { return errors.New("nope") }}
	if err := c.Write("x"); err == nil {
		t.Error("expected error without any clipboard")
	}
}

func TestOSC52Encoding(t *testing.T) {
	tests := []string{"hello", "hello world", "line1\nline2", "こんにちは", "", "foo\tbar\"baz"}
	for _, input := range tests {
		seq := OSC52(input)
		if !strings.HasPrefix(seq, "\x1b]52;c;") || !strings.HasSuffix(seq, "\x07") {
			t.Errorf("malformed sequence %q", seq)
			continue
		}
		payload := strings.TrimSuffix(strings.TrimPrefix(seq, "\x1b]52;c;"), "\x07")
		decoded, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			t.Errorf("decode %q: %v", payload, err)
			continue
		}
		if string(decoded) != input {
			t.Errorf("round trip: got %q, want %q", decoded, input)
		}
	}
}
