package macros

import (
	"errors"
	"io"
	"maps"
	"slices"

	"github.com/reusee/fancyip"
	"github.com/reusee/fancyip/args"
	"github.com/reusee/fancyip/renders"
	"github.com/reusee/fancyip/tokens"
)

// Macro decodes the arguments of one invocation and returns the generated source text.
// call anchors diagnostics that have no offending token.
type Macro func(renderer renders.Renderer, call tokens.Location, stream tokens.Stream) (string, error)

var macros = map[string]Macro{
	"IPv4":     IPv4,
	"IPv6":     IPv6,
	"IP":       IP,
	"SocketV4": SocketV4,
	"SocketV6": SocketV6,
	"Socket":   Socket,
}

func Lookup(name string) (Macro, bool) {
	macro, ok := macros[name]
	return macro, ok
}

func Names() []string {
	return slices.Sorted(maps.Keys(macros))
}

func IPv4(renderer renders.Renderer, call tokens.Location, stream tokens.Stream) (string, error) {
	decoder := args.NewDecoder(stream)
	addr, err := decodeAddress(decoder, call, "an IPv4 address string", "IPv4 address", fancyip.ParseIPv4)
	if err != nil {
		return "", err
	}
	if err := expectEnd(decoder, 1); err != nil {
		return "", err
	}
	return renderer.IPv4(addr), nil
}

func IPv6(renderer renders.Renderer, call tokens.Location, stream tokens.Stream) (string, error) {
	decoder := args.NewDecoder(stream)
	addr, err := decodeAddress(decoder, call, "an IPv6 address string", "IPv6 address", fancyip.ParseIPv6)
	if err != nil {
		return "", err
	}
	if err := expectEnd(decoder, 1); err != nil {
		return "", err
	}
	return renderer.IPv6(addr), nil
}

func IP(renderer renders.Renderer, call tokens.Location, stream tokens.Stream) (string, error) {
	decoder := args.NewDecoder(stream)
	addr, err := decodeAddress(decoder, call, "an IP address string", "IP address", fancyip.ParseIP)
	if err != nil {
		return "", err
	}
	if err := expectEnd(decoder, 1); err != nil {
		return "", err
	}
	return renderer.IP(addr), nil
}

func SocketV4(renderer renders.Renderer, call tokens.Location, stream tokens.Stream) (string, error) {
	decoder := args.NewDecoder(stream)
	socket, err := decodeAddress(decoder, call, "an IPv4 socket address string", "IPv4 socket address", fancyip.ParseSocketV4)
	if err != nil {
		return "", err
	}
	if err := expectEnd(decoder, 1); err != nil {
		return "", err
	}
	return renderer.SocketV4(socket), nil
}

func SocketV6(renderer renders.Renderer, call tokens.Location, stream tokens.Stream) (string, error) {
	decoder := args.NewDecoder(stream)
	socket, err := decodeAddress(decoder, call, "an IPv6 socket address string", "IPv6 socket address", fancyip.ParseSocketV6)
	if err != nil {
		return "", err
	}

	// optional flow info and scope id
	for _, field := range []*uint32{&socket.FlowInfo, &socket.ScopeID} {
		value, _, err := args.DecodeInteger[uint32](decoder)
		if err == io.EOF {
			return renderer.SocketV6(socket), nil
		}
		if err != nil {
			return "", err
		}
		*field = value
	}

	if err := expectEnd(decoder, 3); err != nil {
		return "", err
	}
	return renderer.SocketV6(socket), nil
}

func Socket(renderer renders.Renderer, call tokens.Location, stream tokens.Stream) (string, error) {
	decoder := args.NewDecoder(stream)
	socket, err := decodeAddress(decoder, call, "a socket address string", "socket address", fancyip.ParseSocket)
	if err != nil {
		return "", err
	}
	if err := expectEnd(decoder, 1); err != nil {
		return "", err
	}
	return renderer.Socket(socket), nil
}

func decodeAddress[T any](
	decoder *args.Decoder,
	call tokens.Location,
	expected string,
	want string,
	parse func(string) (T, error),
) (ret T, err error) {
	text, loc, err := decoder.DecodeString()
	if errors.Is(err, io.EOF) {
		return ret, &Error{
			Kind: TooFewArguments{
				Expected: expected,
			},
			Location: call,
		}
	}
	if err != nil {
		return ret, err
	}
	ret, err = parse(text)
	if err != nil {
		return ret, &Error{
			Kind: InvalidAddress{
				Text: text,
				Want: want,
				Err:  err,
			},
			Location: loc,
		}
	}
	return ret, nil
}

func expectEnd(decoder *args.Decoder, limit int) error {
	loc, ok := decoder.SkipNext()
	if !ok {
		return nil
	}
	return &Error{
		Kind: TooManyArguments{
			Given: max(decoder.CountRemaining(), limit+1),
			Max:   limit,
		},
		Location: loc,
	}
}
