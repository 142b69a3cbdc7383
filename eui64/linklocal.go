package eui64

import (
	"encoding/binary"
	"fmt"
	"net/netip"
)

// A LinkLocal is an IPv6 address which may be converted to and from an EUI-64
// identifier. Any IPv6 address can be stored in a LinkLocal; whether it is a
// unicast link-local address derived from an EUI-64 is only checked when it is
// converted.
//
// The zero value is not a valid address.
type LinkLocal struct {
	addr netip.Addr
}

// ParseLinkLocal parses s as an IPv6 address in standard textual form, such as
// "fe80::300:5eff:fe90:10ff". IPv4 addresses are not accepted.
//
// IPv6 scoped addressing zones are accepted and kept: they appear in String,
// and two addresses which differ only in zone are not equal when compared
// with ==. Conversion to an EUI-64 ignores the zone.
func ParseLinkLocal(s string) (LinkLocal, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return LinkLocal{}, &ParseError{
			Type:  typeIPv6,
			Input: s,
			Err:   fmt.Errorf("%w: %w", ErrInvalidFormat, err),
		}
	}

	if !addr.Is6() {
		return LinkLocal{}, &ParseError{
			Type:  typeIPv6,
			Input: s,
			Err:   fmt.Errorf("%w: not an IPv6 address", ErrInvalidFormat),
		}
	}

	return LinkLocal{addr: addr}, nil
}

// Addr returns the underlying IPv6 address.
func (l LinkLocal) Addr() netip.Addr { return l.addr }

// Segments returns the eight 16-bit groups of the address.
func (l LinkLocal) Segments() [8]uint16 {
	var segs [8]uint16
	b := l.addr.As16()
	for i := range segs {
		segs[i] = binary.BigEndian.Uint16(b[i*2 : i*2+2])
	}

	return segs
}

// IsUnicastLinkLocal reports whether l is an IPv6 unicast link-local address
// in fe80::/10.
func (l LinkLocal) IsUnicastLinkLocal() bool {
	// IPv4-mapped addresses are unmapped by netip and may otherwise be
	// reported as IPv4 link-local.
	return l.addr.Is6() && !l.addr.Is4In6() && l.addr.IsLinkLocalUnicast()
}

// String returns the standard textual form of the address, such as
// "fe80::300:5eff:fe90:10ff".
func (l LinkLocal) String() string { return l.addr.String() }

// EUI64 extracts the EUI-64 identifier from the interface identifier of l.
//
// An error is returned if l is not a unicast link-local address, or if its
// interface identifier does not embed the 0xff, 0xfe extension identifier of
// an EUI-64 derived from an EUI-48.
func (l LinkLocal) EUI64() (EUI64, error) {
	if !l.IsUnicastLinkLocal() {
		return EUI64{}, &ConvertError{Value: l, Err: ErrNotUnicastLinkLocal}
	}

	ip := l.addr.As16()

	var e EUI64
	copy(e[:], ip[8:16])

	// Undo the flip of the "universal/local (U/L)" bit.
	e[0] ^= ulBit

	if e[3] != extensionHigh || e[4] != extensionLow {
		return EUI64{}, &ConvertError{Value: l, Err: ErrInvalidInterfaceIdentifier}
	}

	return e, nil
}

// EUI48 extracts the EUI-48 address from the interface identifier of l. The
// same conditions as EUI64 apply.
func (l LinkLocal) EUI48() (EUI48, error) {
	e, err := l.EUI64()
	if err != nil {
		return EUI48{}, err
	}

	return e.EUI48()
}

// MarshalText implements encoding.TextMarshaler. The zero value marshals to an
// empty string, as with netip.Addr.
func (l LinkLocal) MarshalText() ([]byte, error) {
	if !l.addr.IsValid() {
		return []byte{}, nil
	}

	return l.addr.MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseLinkLocal. An
// empty input produces the zero value.
func (l *LinkLocal) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*l = LinkLocal{}
		return nil
	}

	v, err := ParseLinkLocal(string(b))
	if err != nil {
		return err
	}

	*l = v
	return nil
}
