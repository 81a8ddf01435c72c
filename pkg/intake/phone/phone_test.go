package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalIdenticalAcrossShapes(t *testing.T) {
	inputs := []string{
		"923001234567",     // country code
		"03001234567",      // trunk zero
		"3001234567",       // bare
		"+92 - 3001234567", // already formatted
		"0300-1234567",     // user punctuation
	}

	for _, in := range inputs {
		got, err := Canonical(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, "+92 - 3001234567", got, "input %q", in)
	}
}

func TestValidateRejectsBadShapes(t *testing.T) {
	bad := []string{
		"",
		"12345",
		"4001234567",    // local number not mobile-prefixed
		"93001234567",   // wrong country code
		"9212345678901", // too long
		"030012345",     // too short for trunk shape
		"92001234567",   // 11 digits starting 92: matches no shape
		"abcdefghij",
	}

	for _, in := range bad {
		assert.ErrorIs(t, Validate(in), ErrInvalidNumber, "input %q", in)

		_, err := Canonical(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestFormatLive(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"9", "+92 - 9"}, // lone digit treated as bare local input
		{"92", "+92"},
		{"923", "+92 - 3"},
		{"0", "+92"},
		{"030", "+92 - 30"},
		{"3", "+92 - 3"},
		{"3001234567", "+92 - 3001234567"},
		{"92 300 1234567", "+92 - 3001234567"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, Format(c.in), "input %q", c.in)
	}
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "923001234567", Digits("+92 - 3001234567"))
	assert.Equal(t, "", Digits("abc -+()"))
}
