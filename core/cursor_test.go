package core

import (
	"io"
	"testing"
)

func TestCursor_NextAndPushBack(t *testing.T) {
	c := NewCursor(NewSliceReader(
		NewStringPair(0, "SECTION"),
		NewStringPair(2, "HEADER"),
	))

	first, err := c.Next()
	if err != nil {
		t.Fatalf("Next() error: %v", err)
	}
	c.PushBack(first)

	again, err := c.Next()
	if err != nil {
		t.Fatalf("Next() after push-back error: %v", err)
	}
	if again != first {
		t.Errorf("Next() after push-back = %s, want %s", again, first)
	}

	second, err := c.Next()
	if err != nil {
		t.Fatalf("Next() error: %v", err)
	}
	if second.Code != 2 {
		t.Errorf("second pair code = %d, want 2", second.Code)
	}

	if _, err := c.Next(); err != io.EOF {
		t.Errorf("Next() at end = %v, want io.EOF", err)
	}
}

func TestCursor_DoublePushBackPanics(t *testing.T) {
	c := NewCursor(NewSliceReader())
	c.PushBack(NewStringPair(0, "EOF"))

	defer func() {
		if recover() == nil {
			t.Error("second PushBack should panic")
		}
	}()
	c.PushBack(NewStringPair(0, "EOF"))
}
