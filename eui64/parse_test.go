package eui64

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseEUI48(t *testing.T) {
	want := EUI48{0x01, 0x00, 0x5e, 0x90, 0x10, 0xff}

	tests := []struct {
		name string
		s    string
		e    EUI48
		err  error
	}{
		{
			name: "colon upper",
			s:    "01:00:5E:90:10:FF",
			e:    want,
		},
		{
			name: "colon lower",
			s:    "01:00:5e:90:10:ff",
			e:    want,
		},
		{
			name: "hyphen upper",
			s:    "01-00-5E-90-10-FF",
			e:    want,
		},
		{
			name: "hyphen lower",
			s:    "01-00-5e-90-10-ff",
			e:    want,
		},
		{
			name: "mixed separators",
			s:    "01:00-5e:90-10:ff",
			e:    want,
		},
		{
			name: "mixed case",
			s:    "01-00-5e-90-10-Ff",
			e:    want,
		},
		{
			name: "zero-padded field in place of separator",
			s:    "00001-02-03-04-05-06",
			e:    EUI48{0x01, 0x02, 0x03, 0x04, 0x05, 0x06},
		},
		{
			name: "empty",
			s:    "",
			err:  ErrInvalidLength,
		},
		{
			name: "short field",
			s:    "01-00-5E-90-10-F",
			err:  ErrInvalidLength,
		},
		{
			name: "long field",
			s:    "01-00-5E-90-10-FFF",
			err:  ErrInvalidLength,
		},
		{
			name: "too few fields",
			s:    "01-00-5E-90-10",
			err:  ErrInvalidLength,
		},
		{
			name: "too many fields",
			s:    "01-00-5E-90-10-FF-EF",
			err:  ErrInvalidLength,
		},
		{
			name: "invalid digit",
			s:    "01-00-5E-90-10-FG",
			err:  ErrInvalidCharacter,
		},
		{
			name: "invalid separator",
			s:    "01-00-5E-90-10/FF",
			err:  ErrInvalidCharacter,
		},
		{
			name: "non-ASCII",
			s:    "01-00-5E-90-10-é",
			err:  ErrInvalidCharacter,
		},
		{
			name: "misplaced separator",
			s:    "010-0-5E-90-10-FF",
			err:  ErrInvalidFormat,
		},
		{
			name: "leading separator",
			s:    "-01-00-5E-90-10-F",
			err:  ErrInvalidFormat,
		},
		{
			name: "consecutive separators",
			s:    "01--00-5E-90-10-F",
			err:  ErrInvalidFormat,
		},
		{
			name: "overflow last field",
			s:    "01-00-5E-90-10FFF",
			err:  ErrOverflow,
		},
		{
			name: "overflow without separators",
			s:    "FFFFF",
			err:  ErrOverflow,
		},
		{
			name: "overflow before separator",
			s:    "01005:5E-90-10-FF",
			err:  ErrOverflow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := ParseEUI48(tt.s)
			if tt.err != nil {
				testParseError(t, err, tt.err, "EUI-48", tt.s)
				if diff := cmp.Diff(EUI48{}, e); diff != "" {
					t.Fatalf("expected zero EUI48 on error (-want +got):\n%s", diff)
				}
				return
			}
			if err != nil {
				t.Fatalf("failed to parse: %v", err)
			}

			if diff := cmp.Diff(tt.e, e); diff != "" {
				t.Fatalf("unexpected EUI48 (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseEUI64(t *testing.T) {
	tests := []struct {
		name string
		s    string
		e    EUI64
		err  error
	}{
		{
			name: "hyphen",
			s:    "01-00-5E-FF-FE-90-10-FF",
			e:    EUI64{0x01, 0x00, 0x5e, 0xff, 0xfe, 0x90, 0x10, 0xff},
		},
		{
			name: "colon",
			s:    "02:00:00:00:00:00:00:01",
			e:    EUI64{0x02, 7: 0x01},
		},
		{
			name: "EUI-48",
			s:    "01-00-5E-90-10-FF",
			err:  ErrInvalidLength,
		},
		{
			name: "invalid digit",
			s:    "01-00-5E-FF-FE-90-10-XX",
			err:  ErrInvalidCharacter,
		},
		{
			name: "overflow",
			s:    "01-00-5E-FF-FE-90110-FF",
			err:  ErrOverflow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := ParseEUI64(tt.s)
			if tt.err != nil {
				testParseError(t, err, tt.err, "EUI-64", tt.s)
				return
			}
			if err != nil {
				t.Fatalf("failed to parse: %v", err)
			}

			if diff := cmp.Diff(tt.e, e); diff != "" {
				t.Fatalf("unexpected EUI64 (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseErrorString(t *testing.T) {
	_, err := ParseEUI48("01-00-5E-90-10-FG")

	const want = `eui64: invalid EUI-48 address "01-00-5E-90-10-FG": contains invalid characters`
	if diff := cmp.Diff(want, err.Error()); diff != "" {
		t.Fatalf("unexpected error string (-want +got):\n%s", diff)
	}
}

func testParseError(t *testing.T, err, kind error, typ, input string) {
	t.Helper()

	if err == nil {
		t.Fatal("expected an error, but none occurred")
	}
	if !errors.Is(err, kind) {
		t.Fatalf("expected error kind %q, but got: %v", kind, err)
	}

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, but got: %T", err)
	}

	if diff := cmp.Diff(typ, perr.Type); diff != "" {
		t.Fatalf("unexpected ParseError type (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(input, perr.Input); diff != "" {
		t.Fatalf("unexpected ParseError input (-want +got):\n%s", diff)
	}
}
