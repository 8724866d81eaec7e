package game

import (
	"errors"
	"testing"
)

func TestParseWord(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr error
	}{
		{in: "crane", want: "CRANE"},
		{in: "  CrAnE \n", want: "CRANE"},
		{in: "ABIDE", want: "ABIDE"},
		{in: "", wantErr: ErrWordSize},
		{in: "four", wantErr: ErrWordSize},
		{in: "sixers", wantErr: ErrWordSize},
		{in: "cr4ne", wantErr: ErrNotAWord},
		{in: "cr ne", wantErr: ErrNotAWord},
		{in: "crân", wantErr: ErrNotAWord},
	}
	for _, tc := range tests {
		got, err := ParseWord(tc.in)
		if tc.wantErr != nil {
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("ParseWord(%q) error = %v, want %v", tc.in, err, tc.wantErr)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseWord(%q): %v", tc.in, err)
			continue
		}
		if got.String() != tc.want {
			t.Errorf("ParseWord(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestMustParseWordPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseWord did not panic on invalid input")
		}
	}()
	MustParseWord("nope")
}

func TestWordAccessors(t *testing.T) {
	w := MustParseWord("crane")
	if w.At(0) != 'C' || w.At(4) != 'E' {
		t.Errorf("At: got %s..%s", w.At(0), w.At(4))
	}
	ls := w.Letters()
	ls[0] = 'X'
	if w.At(0) != 'C' {
		t.Error("Letters returned a view into the word")
	}
}
