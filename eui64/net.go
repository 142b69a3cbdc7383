package eui64

import (
	"net"
	"net/netip"

	"go4.org/netipx"
)

// EUI48FromHardwareAddr converts a 6-byte net.HardwareAddr to an EUI48.
func EUI48FromHardwareAddr(mac net.HardwareAddr) (EUI48, error) {
	var e EUI48
	if len(mac) != len(e) {
		return EUI48{}, &ParseError{Type: typeEUI48, Input: mac.String(), Err: ErrInvalidLength}
	}

	copy(e[:], mac)
	return e, nil
}

// HardwareAddr returns e as a net.HardwareAddr.
func (e EUI48) HardwareAddr() net.HardwareAddr {
	mac := make(net.HardwareAddr, len(e))
	copy(mac, e[:])
	return mac
}

// EUI64FromHardwareAddr converts an 8-byte net.HardwareAddr, such as an
// EUI-64 parsed by net.ParseMAC, to an EUI64.
func EUI64FromHardwareAddr(mac net.HardwareAddr) (EUI64, error) {
	var e EUI64
	if len(mac) != len(e) {
		return EUI64{}, &ParseError{Type: typeEUI64, Input: mac.String(), Err: ErrInvalidLength}
	}

	copy(e[:], mac)
	return e, nil
}

// HardwareAddr returns e as a net.HardwareAddr.
func (e EUI64) HardwareAddr() net.HardwareAddr {
	mac := make(net.HardwareAddr, len(e))
	copy(mac, e[:])
	return mac
}

// LinkLocalFromIP converts a net.IP to a LinkLocal. ip must be an IPv6
// address; IPv4 and IPv4-mapped IPv6 addresses are rejected, since net.IP does
// not distinguish between the two.
func LinkLocalFromIP(ip net.IP) (LinkLocal, error) {
	addr, ok := netipx.FromStdIP(ip)
	if !ok {
		return LinkLocal{}, &ParseError{Type: typeIPv6, Input: ip.String(), Err: ErrInvalidFormat}
	}

	return LinkLocalFromAddr(addr)
}

// LinkLocalFromAddr converts a netip.Addr to a LinkLocal. addr must be an IPv6
// address.
func LinkLocalFromAddr(addr netip.Addr) (LinkLocal, error) {
	if !addr.Is6() {
		return LinkLocal{}, &ParseError{Type: typeIPv6, Input: addr.String(), Err: ErrInvalidFormat}
	}

	return LinkLocal{addr: addr}, nil
}

// IP returns l as a 16-byte net.IP. Any IPv6 zone is discarded.
func (l LinkLocal) IP() net.IP {
	if !l.addr.IsValid() {
		return nil
	}

	return net.IP(l.addr.AsSlice())
}
