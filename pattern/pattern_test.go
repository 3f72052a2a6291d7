package pattern

import (
	"testing"
)

func TestFromPositionsWorkedExample(t *testing.T) {
	p, err := FromPositions([]int{0, 2, 4}, 5)
	if err != nil {
		t.Fatalf("FromPositions failed: %v", err)
	}
	if p.Raw() != 21 {
		t.Fatalf("expected 21, got %d", p.Raw())
	}
}

func TestFromPositionsAllSet(t *testing.T) {
	p, err := FromPositions([]int{0, 1, 2}, 3)
	if err != nil {
		t.Fatalf("FromPositions failed: %v", err)
	}
	if p.Raw() != 7 {
		t.Fatalf("expected 7, got %d", p.Raw())
	}
}

func TestFromPositionsRejectsOutOfRange(t *testing.T) {
	if _, err := FromPositions([]int{5}, 5); err != ErrPositionOOB {
		t.Fatalf("expected ErrPositionOOB, got %v", err)
	}
	if _, err := FromPositions([]int{-1}, 5); err != ErrPositionOOB {
		t.Fatalf("expected ErrPositionOOB, got %v", err)
	}
}

func TestFromPositionsRejectsBadBitsRange(t *testing.T) {
	if _, err := FromPositions([]int{0}, 0); err != ErrBitsRange {
		t.Fatalf("expected ErrBitsRange, got %v", err)
	}
	if _, err := FromPositions([]int{0}, 65); err != ErrBitsRange {
		t.Fatalf("expected ErrBitsRange, got %v", err)
	}
}

func TestPositionsRoundTrip(t *testing.T) {
	cases := [][]int{
		{0},
		{0, 2, 4},
		{1, 3, 5, 7},
		{0, 1, 2, 3, 4, 5, 6, 7},
		{15},
	}

	for _, positions := range cases {
		p, err := FromPositions(positions, 16)
		if err != nil {
			t.Fatalf("FromPositions(%v) failed: %v", positions, err)
		}

		decoded := p.Positions(16)
		if len(decoded) != len(positions) {
			t.Fatalf("positions %v: decoded %v", positions, decoded)
		}
		for i := range positions {
			if decoded[i] != positions[i] {
				t.Fatalf("positions %v: decoded %v", positions, decoded)
			}
		}
	}
}

func TestPositionsAscending(t *testing.T) {
	// Encoding order must not matter.
	p, err := FromPositions([]int{4, 0, 2}, 5)
	if err != nil {
		t.Fatalf("FromPositions failed: %v", err)
	}

	decoded := p.Positions(5)
	want := []int{0, 2, 4}
	if len(decoded) != len(want) {
		t.Fatalf("expected %v, got %v", want, decoded)
	}
	for i := range want {
		if decoded[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, decoded)
		}
	}
}

func TestSlots(t *testing.T) {
	p, err := FromPositions([]int{0, 2, 4}, 5)
	if err != nil {
		t.Fatalf("FromPositions failed: %v", err)
	}

	slots := p.Slots(5)
	want := []bool{true, false, true, false, true}
	if len(slots) != len(want) {
		t.Fatalf("expected %v, got %v", want, slots)
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, slots)
		}
	}
}

func TestCount(t *testing.T) {
	p, err := FromPositions([]int{0, 2, 4}, 5)
	if err != nil {
		t.Fatalf("FromPositions failed: %v", err)
	}
	if p.Count() != 3 {
		t.Fatalf("expected 3, got %d", p.Count())
	}
}

func TestValid(t *testing.T) {
	if !Pattern(21).Valid(5) {
		t.Fatal("21 should be valid for bitsRange 5")
	}
	if Pattern(32).Valid(5) {
		t.Fatal("32 should be invalid for bitsRange 5")
	}
	if !Pattern(1<<63).Valid(64) {
		t.Fatal("top bit should be valid for bitsRange 64")
	}
}

func TestSetClearHas(t *testing.T) {
	var p Pattern
	p.Set(3)
	if !p.Has(3) {
		t.Fatal("bit 3 should be set")
	}
	p.Clear(3)
	if p.Has(3) {
		t.Fatal("bit 3 should be cleared")
	}

	// Out-of-range operations are no-ops.
	p.Set(64)
	if p != 0 {
		t.Fatalf("expected untouched pattern, got %d", p)
	}
}

func TestSplitPasswordUTF8(t *testing.T) {
	chars := SplitPassword("héllo", 16, EncodingUTF8)
	if len(chars) != 5 {
		t.Fatalf("expected 5 runes, got %d", len(chars))
	}
	if chars[1] != "é" {
		t.Fatalf("expected é at position 1, got %q", chars[1])
	}
}

func TestSplitPasswordBytes(t *testing.T) {
	chars := SplitPassword("héllo", 16, EncodingBytes)
	if len(chars) != 6 {
		t.Fatalf("expected 6 bytes, got %d", len(chars))
	}
}

func TestSplitPasswordTrimsToBitsRange(t *testing.T) {
	chars := SplitPassword("abcdefgh", 5, EncodingUTF8)
	if len(chars) != 5 {
		t.Fatalf("expected 5, got %d", len(chars))
	}
	if chars[4] != "e" {
		t.Fatalf("expected e, got %q", chars[4])
	}
}

func TestSplitPasswordEmpty(t *testing.T) {
	if chars := SplitPassword("", 16, EncodingUTF8); len(chars) != 0 {
		t.Fatalf("expected empty, got %v", chars)
	}
}

func TestSelectCharactersWorkedExample(t *testing.T) {
	chars := SplitPassword("abcde", 5, EncodingUTF8)
	got := SelectCharacters([]int{0, 2, 4}, chars)
	if got != "ace" {
		t.Fatalf("expected ace, got %q", got)
	}
}

func TestSelectCharactersSkipsOutOfRange(t *testing.T) {
	chars := SplitPassword("abc", 5, EncodingUTF8)
	got := SelectCharacters([]int{0, 4}, chars)
	if got != "a" {
		t.Fatalf("expected a, got %q", got)
	}
}
