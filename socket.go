package fancyip

import (
	"fmt"
	"net/netip"
	"strconv"
)

// SocketAddr is either a SocketAddrV4 or a SocketAddrV6.
type SocketAddr interface {
	AddrPort() netip.AddrPort
	String() string
	isSocketAddr()
}

type SocketAddrV4 struct {
	IP   netip.Addr
	Port uint16
}

var _ SocketAddr = SocketAddrV4{}

func NewSocketV4(ip netip.Addr, port uint16) SocketAddrV4 {
	return SocketAddrV4{
		IP:   ip,
		Port: port,
	}
}

func (s SocketAddrV4) AddrPort() netip.AddrPort {
	return netip.AddrPortFrom(s.IP, s.Port)
}

func (s SocketAddrV4) String() string {
	return s.AddrPort().String()
}

func (SocketAddrV4) isSocketAddr() {}

type SocketAddrV6 struct {
	IP       netip.Addr
	Port     uint16
	FlowInfo uint32
	ScopeID  uint32
}

var _ SocketAddr = SocketAddrV6{}

func NewSocketV6(ip netip.Addr, port uint16, flowInfo uint32, scopeID uint32) SocketAddrV6 {
	return SocketAddrV6{
		IP:       ip,
		Port:     port,
		FlowInfo: flowInfo,
		ScopeID:  scopeID,
	}
}

func (s SocketAddrV6) AddrPort() netip.AddrPort {
	return netip.AddrPortFrom(s.IP, s.Port)
}

func (s SocketAddrV6) String() string {
	if s.ScopeID == 0 {
		return s.AddrPort().String()
	}
	return "[" + s.IP.String() + "%" + strconv.FormatUint(uint64(s.ScopeID), 10) + "]:" +
		strconv.FormatUint(uint64(s.Port), 10)
}

func (SocketAddrV6) isSocketAddr() {}

func ParseSocketV4(s string) (ret SocketAddrV4, err error) {
	addrPort, err := netip.ParseAddrPort(s)
	if err != nil {
		return ret, err
	}
	if !addrPort.Addr().Is4() {
		return ret, fmt.Errorf("%q is not an IPv4 socket address", s)
	}
	return NewSocketV4(addrPort.Addr(), addrPort.Port()), nil
}

func ParseSocketV6(s string) (ret SocketAddrV6, err error) {
	addrPort, err := netip.ParseAddrPort(s)
	if err != nil {
		return ret, err
	}
	if !addrPort.Addr().Is6() {
		return ret, fmt.Errorf("%q is not an IPv6 socket address", s)
	}
	if addrPort.Addr().Zone() != "" {
		return ret, fmt.Errorf("%q: zones are not supported", s)
	}
	return NewSocketV6(addrPort.Addr(), addrPort.Port(), 0, 0), nil
}

func ParseSocket(s string) (SocketAddr, error) {
	addrPort, err := netip.ParseAddrPort(s)
	if err != nil {
		return nil, err
	}
	if addrPort.Addr().Is4() {
		return NewSocketV4(addrPort.Addr(), addrPort.Port()), nil
	}
	if addrPort.Addr().Zone() != "" {
		return nil, fmt.Errorf("%q: zones are not supported", s)
	}
	return NewSocketV6(addrPort.Addr(), addrPort.Port(), 0, 0), nil
}

// SocketV4 parses s at run time and panics if it is not an IPv4 socket address.
func SocketV4(s string) SocketAddrV4 {
	return must(ParseSocketV4(s))
}

// SocketV6 parses s at run time and panics if it is not an IPv6 socket address.
// ids are the optional flow info and scope id.
func SocketV6(s string, ids ...uint32) SocketAddrV6 {
	ret := must(ParseSocketV6(s))
	switch len(ids) {
	case 2:
		ret.ScopeID = ids[1]
		fallthrough
	case 1:
		ret.FlowInfo = ids[0]
	case 0:
	default:
		panic(fmt.Errorf("too many arguments: got %d, expected at most 3", len(ids)+1))
	}
	return ret
}

// Socket parses s at run time and panics if it is not a socket address.
func Socket(s string) SocketAddr {
	return must(ParseSocket(s))
}
