// Package eui64 converts between EUI-48 (MAC) addresses, EUI-64 identifiers,
// and the IPv6 link-local addresses derived from them using the Modified
// EUI-64 format, as described in RFC 4291, Section 2.5.1 and Appendix A.
//
// All types are immutable values and are safe for concurrent use.
package eui64

import "net/netip"

// The extension identifier bytes inserted into the middle of an EUI-48 to
// produce an EUI-64.
const (
	extensionHigh = 0xff
	extensionLow  = 0xfe
)

// ulBit is the "universal/local (U/L)" bit of the first octet, flipped when
// forming a Modified EUI-64 interface identifier.
const ulBit = 0x02

// An EUI48 is a 48-bit Extended Unique Identifier, typically a MAC address.
type EUI48 [6]byte

// ParseEUI48 parses s as an EUI-48 address in hyphen or colon separated
// hexadecimal form, such as "01-00-5e-90-10-ff" or "01:00:5E:90:10:FF".
func ParseEUI48(s string) (EUI48, error) {
	var e EUI48
	if err := parseEUI(e[:], s, typeEUI48); err != nil {
		return EUI48{}, err
	}

	return e, nil
}

// Octets returns the octets of e.
func (e EUI48) Octets() [6]byte { return e }

// String returns e in lowercase hyphenated form, such as "01-00-5e-90-10-ff".
func (e EUI48) String() string { return string(appendHex(nil, e[:], '-')) }

// ColonSeparated returns e in lowercase colon-separated form, such as
// "01:00:5e:90:10:ff".
func (e EUI48) ColonSeparated() string { return string(appendHex(nil, e[:], ':')) }

// EUI64 produces an EUI-64 from e by inserting the bytes 0xff and 0xfe between
// its third and fourth octets.
func (e EUI48) EUI64() EUI64 {
	return EUI64{e[0], e[1], e[2], extensionHigh, extensionLow, e[3], e[4], e[5]}
}

// LinkLocal produces the IPv6 link-local address for e.
func (e EUI48) LinkLocal() LinkLocal { return e.EUI64().LinkLocal() }

// MarshalText implements encoding.TextMarshaler using the String form.
func (e EUI48) MarshalText() ([]byte, error) { return appendHex(nil, e[:], '-'), nil }

// UnmarshalText implements encoding.TextUnmarshaler using ParseEUI48.
func (e *EUI48) UnmarshalText(b []byte) error {
	v, err := ParseEUI48(string(b))
	if err != nil {
		return err
	}

	*e = v
	return nil
}

// An EUI64 is a 64-bit Extended Unique Identifier.
type EUI64 [8]byte

// ParseEUI64 parses s as an EUI-64 identifier in hyphen or colon separated
// hexadecimal form, such as "01-00-5e-ff-fe-90-10-ff".
func ParseEUI64(s string) (EUI64, error) {
	var e EUI64
	if err := parseEUI(e[:], s, typeEUI64); err != nil {
		return EUI64{}, err
	}

	return e, nil
}

// Octets returns the octets of e.
func (e EUI64) Octets() [8]byte { return e }

// String returns e in lowercase hyphenated form, such as
// "01-00-5e-ff-fe-90-10-ff".
func (e EUI64) String() string { return string(appendHex(nil, e[:], '-')) }

// EUI48 recovers the EUI-48 which e was produced from. An error is returned if
// e does not carry the 0xff, 0xfe extension identifier in its fourth and fifth
// octets.
func (e EUI64) EUI48() (EUI48, error) {
	if e[3] != extensionHigh || e[4] != extensionLow {
		return EUI48{}, &ConvertError{Value: e, Err: ErrInvalidExtensionIdentifier}
	}

	return EUI48{e[0], e[1], e[2], e[5], e[6], e[7]}, nil
}

// LinkLocal produces the IPv6 link-local address in fe80::/64 whose interface
// identifier is the Modified EUI-64 form of e.
func (e EUI64) LinkLocal() LinkLocal {
	ip := [16]byte{0: 0xfe, 1: 0x80}
	copy(ip[8:16], e[:])

	// Flip 7th bit from left on the first byte of the identifier, the
	// "universal/local (U/L)" bit.
	ip[8] ^= ulBit

	return LinkLocal{addr: netip.AddrFrom16(ip)}
}

// MarshalText implements encoding.TextMarshaler using the String form.
func (e EUI64) MarshalText() ([]byte, error) { return appendHex(nil, e[:], '-'), nil }

// UnmarshalText implements encoding.TextUnmarshaler using ParseEUI64.
func (e *EUI64) UnmarshalText(b []byte) error {
	v, err := ParseEUI64(string(b))
	if err != nil {
		return err
	}

	*e = v
	return nil
}
