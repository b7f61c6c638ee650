package renders

import (
	"net/netip"
	"testing"

	"github.com/reusee/fancyip"
)

func TestRenderer(t *testing.T) {
	r := Renderer{
		Qualifier: "fancyip",
	}
	cases := []struct {
		got  string
		want string
	}{
		{
			r.IPv4(netip.MustParseAddr("192.168.1.5")),
			"fancyip.NewIPv4(192, 168, 1, 5)",
		},
		{
			r.IPv6(netip.MustParseAddr("::1")),
			"fancyip.NewIPv6(0, 0, 0, 0, 0, 0, 0, 1)",
		},
		{
			r.IP(netip.MustParseAddr("2001:db8::1")),
			"fancyip.NewIPv6(8193, 3512, 0, 0, 0, 0, 0, 1)",
		},
		{
			r.SocketV4(fancyip.SocketV4("192.168.1.5:3000")),
			"fancyip.NewSocketV4(fancyip.NewIPv4(192, 168, 1, 5), 3000)",
		},
		{
			r.SocketV6(fancyip.SocketV6("[::]:8080", 58, 30)),
			"fancyip.NewSocketV6(fancyip.NewIPv6(0, 0, 0, 0, 0, 0, 0, 0), 8080, 58, 30)",
		},
		{
			r.Socket(fancyip.Socket("10.0.0.1:53")),
			"fancyip.SocketAddr(fancyip.NewSocketV4(fancyip.NewIPv4(10, 0, 0, 1), 53))",
		},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Fatalf("got %s, want %s", c.got, c.want)
		}
	}
}

func TestUnqualified(t *testing.T) {
	if str := (Renderer{}).IPv4(netip.MustParseAddr("127.0.0.1")); str != "NewIPv4(127, 0, 0, 1)" {
		t.Fatalf("got %s", str)
	}
}
