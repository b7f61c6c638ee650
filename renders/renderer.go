package renders

import (
	"fmt"
	"net/netip"

	"github.com/reusee/fancyip"
)

// Renderer renders addresses as Go constructor calls qualified by Qualifier.
type Renderer struct {
	Qualifier string
}

func (r Renderer) prefix() string {
	if r.Qualifier == "" {
		return ""
	}
	return r.Qualifier + "."
}

func (r Renderer) IPv4(addr netip.Addr) string {
	b := addr.As4()
	return fmt.Sprintf("%sNewIPv4(%d, %d, %d, %d)", r.prefix(), b[0], b[1], b[2], b[3])
}

func (r Renderer) IPv6(addr netip.Addr) string {
	s := fancyip.Segments(addr)
	return fmt.Sprintf("%sNewIPv6(%d, %d, %d, %d, %d, %d, %d, %d)", r.prefix(),
		s[0], s[1], s[2], s[3], s[4], s[5], s[6], s[7])
}

// IP renders addr with the constructor of its family.
func (r Renderer) IP(addr netip.Addr) string {
	if addr.Is4() {
		return r.IPv4(addr)
	}
	return r.IPv6(addr)
}

func (r Renderer) SocketV4(socket fancyip.SocketAddrV4) string {
	return fmt.Sprintf("%sNewSocketV4(%s, %d)", r.prefix(), r.IPv4(socket.IP), socket.Port)
}

func (r Renderer) SocketV6(socket fancyip.SocketAddrV6) string {
	return fmt.Sprintf("%sNewSocketV6(%s, %d, %d, %d)", r.prefix(), r.IPv6(socket.IP),
		socket.Port, socket.FlowInfo, socket.ScopeID)
}

// Socket renders socket converted to the SocketAddr interface.
func (r Renderer) Socket(socket fancyip.SocketAddr) string {
	var inner string
	switch socket := socket.(type) {
	case fancyip.SocketAddrV4:
		inner = r.SocketV4(socket)
	case fancyip.SocketAddrV6:
		inner = r.SocketV6(socket)
	default:
		panic(fmt.Errorf("unknown socket address type %T", socket))
	}
	return fmt.Sprintf("%sSocketAddr(%s)", r.prefix(), inner)
}
