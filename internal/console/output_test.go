package console

import (
	"bytes"
	"testing"
)

func TestOutput_Clear(t *testing.T) {
	var buf bytes.Buffer
	NewOutput(&buf, false, false).Clear()
	if buf.Len() != 0 {
		t.Errorf("expected nothing written, got %q", buf.String())
	}

	NewOutput(&buf, false, true).Clear()
	if buf.String() != clearSequence {
		t.Errorf("expected clear sequence, got %q", buf.String())
	}
}

func TestOutput_AccentWithoutColor(t *testing.T) {
	var buf bytes.Buffer
	NewOutput(&buf, false, false).Accent("banner")
	if buf.String() != "banner\n" {
		t.Errorf("expected plain banner line, got %q", buf.String())
	}
}
