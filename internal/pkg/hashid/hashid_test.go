package hashid

import (
	"errors"
	"testing"

	"github.com/eventschedule/eventschedule-backend/internal/model"
)

func newTestCodec(t *testing.T) *Codec {
	t.Helper()
	c, err := NewCodec("test salt", 8)
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	return c
}

func TestRoundTrip(t *testing.T) {
	c := newTestCodec(t)

	for _, id := range []int64{1, 7, 12345, 987654321} {
		s, err := c.Encode(id)
		if err != nil {
			t.Fatalf("Encode(%d): %v", id, err)
		}
		if len(s) < 8 {
			t.Errorf("Encode(%d) = %q, shorter than configured min length", id, s)
		}

		got, err := c.Decode(s)
		if err != nil {
			t.Fatalf("Decode(%q): %v", s, err)
		}
		if got != id {
			t.Errorf("Decode(Encode(%d)) = %d", id, got)
		}
	}
}

func TestDecodeMalformed(t *testing.T) {
	c := newTestCodec(t)

	for _, s := range []string{"", "not-a-valid-token", "!!!", "0"} {
		if _, err := c.Decode(s); !errors.Is(err, model.ErrInvalidIdentifier) {
			t.Errorf("Decode(%q) err = %v, want ErrInvalidIdentifier", s, err)
		}
	}
}

func TestEncodeRejectsNonPositive(t *testing.T) {
	c := newTestCodec(t)

	for _, id := range []int64{0, -1} {
		if _, err := c.Encode(id); !errors.Is(err, model.ErrInvalidIdentifier) {
			t.Errorf("Encode(%d) err = %v, want ErrInvalidIdentifier", id, err)
		}
	}
}

func TestDifferentSaltsDiffer(t *testing.T) {
	a, err := NewCodec("salt a", 8)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewCodec("salt b", 8)
	if err != nil {
		t.Fatal(err)
	}

	sa, _ := a.Encode(42)
	sb, _ := b.Encode(42)
	if sa == sb {
		t.Errorf("same token %q for different salts", sa)
	}
}
