package fancyip

import (
	"encoding/binary"
	"fmt"
	"net/netip"
)

func NewIPv4(a, b, c, d uint8) netip.Addr {
	return netip.AddrFrom4([4]byte{a, b, c, d})
}

func NewIPv6(a, b, c, d, e, f, g, h uint16) netip.Addr {
	var bs [16]byte
	for i, segment := range [8]uint16{a, b, c, d, e, f, g, h} {
		binary.BigEndian.PutUint16(bs[i*2:], segment)
	}
	return netip.AddrFrom16(bs)
}

// Segments returns the eight 16-bit groups of an IPv6 address.
func Segments(addr netip.Addr) (ret [8]uint16) {
	bs := addr.As16()
	for i := range ret {
		ret[i] = binary.BigEndian.Uint16(bs[i*2:])
	}
	return
}

func ParseIPv4(s string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return addr, err
	}
	if !addr.Is4() {
		return netip.Addr{}, fmt.Errorf("%q is not an IPv4 address", s)
	}
	return addr, nil
}

func ParseIPv6(s string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return addr, err
	}
	if !addr.Is6() {
		return netip.Addr{}, fmt.Errorf("%q is not an IPv6 address", s)
	}
	if addr.Zone() != "" {
		return netip.Addr{}, fmt.Errorf("%q: zones are not supported", s)
	}
	return addr, nil
}

func ParseIP(s string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return addr, err
	}
	if addr.Zone() != "" {
		return netip.Addr{}, fmt.Errorf("%q: zones are not supported", s)
	}
	return addr, nil
}

// IPv4 parses s at run time and panics if it is not an IPv4 address.
func IPv4(s string) netip.Addr {
	return must(ParseIPv4(s))
}

// IPv6 parses s at run time and panics if it is not an IPv6 address.
func IPv6(s string) netip.Addr {
	return must(ParseIPv6(s))
}

// IP parses s at run time and panics if it is not an IP address.
func IP(s string) netip.Addr {
	return must(ParseIP(s))
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
