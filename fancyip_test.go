package fancyip

import (
	"net/netip"
	"testing"
)

func TestNewIPv4(t *testing.T) {
	if NewIPv4(192, 168, 1, 5) != netip.MustParseAddr("192.168.1.5") {
		t.Fatal()
	}
}

func TestNewIPv6(t *testing.T) {
	if NewIPv6(0, 0, 0, 0, 0, 0, 0, 1) != netip.IPv6Loopback() {
		t.Fatal()
	}
	addr := netip.MustParseAddr("2001:db8::ff00:42:8329")
	s := Segments(addr)
	if NewIPv6(s[0], s[1], s[2], s[3], s[4], s[5], s[6], s[7]) != addr {
		t.Fatalf("got %v", s)
	}
}

func TestParse(t *testing.T) {
	if _, err := ParseIPv4("::1"); err == nil {
		t.Fatal("should error")
	}
	if _, err := ParseIPv4("192.168.01.5"); err == nil {
		t.Fatal("should error")
	}
	if _, err := ParseIPv6("1.2.3.4"); err == nil {
		t.Fatal("should error")
	}
	if _, err := ParseIPv6("fe80::1%eth0"); err == nil {
		t.Fatal("should error")
	}
	if addr, err := ParseIPv6("::ffff:1.2.3.4"); err != nil || !addr.Is4In6() {
		t.Fatalf("got %v %v", addr, err)
	}
	if _, err := ParseSocketV4("[::1]:80"); err == nil {
		t.Fatal("should error")
	}
	if _, err := ParseSocketV4("1.2.3.4"); err == nil {
		t.Fatal("should error")
	}
	if _, err := ParseSocketV6("1.2.3.4:80"); err == nil {
		t.Fatal("should error")
	}
}

func TestSocket(t *testing.T) {
	v4 := Socket("192.168.1.5:3000")
	if _, ok := v4.(SocketAddrV4); !ok {
		t.Fatalf("got %T", v4)
	}
	if v4.String() != "192.168.1.5:3000" {
		t.Fatalf("got %s", v4)
	}

	v6 := Socket("[::1]:3000")
	if _, ok := v6.(SocketAddrV6); !ok {
		t.Fatalf("got %T", v6)
	}
	if v6.AddrPort() != netip.MustParseAddrPort("[::1]:3000") {
		t.Fatalf("got %v", v6)
	}
}

func TestSocketV6(t *testing.T) {
	s := SocketV6("[::]:8080", 58, 30)
	want := NewSocketV6(netip.IPv6Unspecified(), 8080, 58, 30)
	if s != want {
		t.Fatalf("got %v", s)
	}
	if str := s.String(); str != "[::%30]:8080" {
		t.Fatalf("got %s", str)
	}

	func() {
		defer func() {
			if p := recover(); p == nil {
				t.Fatal("should panic")
			}
		}()
		SocketV6("[::1]:1", 1, 2, 3)
	}()
}

func TestRuntimePanics(t *testing.T) {
	for _, fn := range []func(){
		func() { IPv4("1.2.3") },
		func() { IPv6("1.2.3.4") },
		func() { IP("foo") },
		func() { SocketV4("1.2.3.4:99999") },
	} {
		func() {
			defer func() {
				if p := recover(); p == nil {
					t.Fatal("should panic")
				}
			}()
			fn()
		}()
	}
}
