package nfa

import (
	"errors"
	"testing"
)

func TestParseError_Error(t *testing.T) {
	err := &ParseError{Pattern: "a)", Offset: 1, Err: ErrTrailingInput}
	want := `compile "a)": unexpected trailing input at offset 1`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestParseError_Unwrap(t *testing.T) {
	err := error(&ParseError{Pattern: "(a", Offset: 2, Err: ErrUnterminatedGroup})
	if !errors.Is(err, ErrUnterminatedGroup) {
		t.Errorf("errors.Is(%v, ErrUnterminatedGroup) = false", err)
	}
	if errors.Is(err, ErrTrailingInput) {
		t.Errorf("errors.Is(%v, ErrTrailingInput) = true", err)
	}
}

func TestParseError_Indicate(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			name: "mid pattern",
			err:  &ParseError{Pattern: "a)b", Offset: 1, Err: ErrTrailingInput},
			want: "a)b\n~^\n",
		},
		{
			name: "offset zero",
			err:  &ParseError{Pattern: ")", Offset: 0, Err: ErrTrailingInput},
			want: ")\n^\n",
		},
		{
			name: "end of pattern",
			err:  &ParseError{Pattern: "(ab", Offset: 3, Err: ErrUnterminatedGroup},
			want: "(ab\n~~~^\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Indicate(); got != tt.want {
				t.Errorf("Indicate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildError_Error(t *testing.T) {
	err := &BuildError{Message: "edge source not allocated", StateID: 7}
	if got := err.Error(); got != "nfa build error at state 7: edge source not allocated" {
		t.Errorf("Error() = %q", got)
	}
	err = &BuildError{Message: "accept state not set", StateID: InvalidState}
	if got := err.Error(); got != "nfa build error: accept state not set" {
		t.Errorf("Error() = %q", got)
	}
}
