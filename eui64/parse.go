package eui64

// maxOctet is the largest value a single field may hold.
const maxOctet = 0xff

// parseEUI parses s as a sequence of two-digit hexadecimal fields separated by
// ':' or '-', storing exactly len(dst) octets into dst. typ names the address
// form for errors.
//
// Separators may be mixed within one address; only their position is checked.
// A field may carry leading zeros in place of a separator, so
// "00001-02-03-04-05-06" is accepted as 01-02-03-04-05-06.
func parseEUI(dst []byte, s, typ string) error {
	fail := func(err error) error {
		return &ParseError{Type: typ, Input: s, Err: err}
	}

	// Every field but the last consumes two digits and a separator.
	if len(s)%3 != 2 {
		return fail(ErrInvalidLength)
	}

	var (
		n   int
		acc uint
	)

	// push stores the accumulated field. Octets beyond len(dst) are only
	// counted so that the length error is reported after the whole input has
	// been checked.
	push := func() error {
		if acc > maxOctet {
			return fail(ErrOverflow)
		}
		if n < len(dst) {
			dst[n] = byte(acc)
		}
		n++
		acc = 0
		return nil
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		if d, ok := hexDigit(c); ok {
			acc = acc<<4 | uint(d)
			if acc > maxOctet {
				// Saturate so long runs of digits cannot wrap around.
				acc = maxOctet + 1
			}
			continue
		}

		if c != ':' && c != '-' {
			return fail(ErrInvalidCharacter)
		}

		if (i+1)%3 != 0 {
			return fail(ErrInvalidFormat)
		}

		if err := push(); err != nil {
			return err
		}
	}

	if err := push(); err != nil {
		return err
	}

	if n != len(dst) {
		return fail(ErrInvalidLength)
	}

	return nil
}

// hexDigit returns the value of the case-insensitive hexadecimal digit c.
func hexDigit(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

const hexDigits = "0123456789abcdef"

// appendHex appends octets to b as lowercase two-digit hexadecimal fields
// separated by sep.
func appendHex(b []byte, octets []byte, sep byte) []byte {
	for i, o := range octets {
		if i > 0 {
			b = append(b, sep)
		}
		b = append(b, hexDigits[o>>4], hexDigits[o&0x0f])
	}

	return b
}
