package args

import (
	"errors"
	"io"

	"github.com/reusee/fancyip/literals"
	"github.com/reusee/fancyip/tokens"
)

// Separator delimits arguments.
const Separator = ','

type Arg struct {
	Value    literals.Value
	Location tokens.Location
}

// Decoder reads comma separated literal arguments from a token stream, one pass, one token of lookahead.
// A Decoder serves a single invocation and is not safe for concurrent use.
type Decoder struct {
	stream    tokens.Stream
	parsed    int
	exhausted bool
}

func NewDecoder(stream tokens.Stream) *Decoder {
	return &Decoder{
		stream: stream,
	}
}

func (d *Decoder) next() (*tokens.Token, bool) {
	if d.exhausted {
		return nil, false
	}
	token, ok := d.stream.Next()
	if !ok {
		d.exhausted = true
		return nil, false
	}
	return token, true
}

// DecodeRaw returns the next argument, or io.EOF when no argument remains.
// On error the consumed tokens are not restored.
func (d *Decoder) DecodeRaw() (ret Arg, err error) {
	token, ok := d.next()
	if !ok {
		return ret, io.EOF
	}
	if token.Kind != tokens.KindLiteral {
		return ret, unexpected(token)
	}
	ret = Arg{
		Value:    classify(token),
		Location: token.Location,
	}

	separator, ok := d.next()
	if ok && (separator.Kind != tokens.KindPunct || separator.Punct != Separator) {
		return Arg{}, unexpected(separator)
	}

	d.parsed++
	return ret, nil
}

func classify(token *tokens.Token) literals.Value {
	return token.Literal
}

func unexpected(token *tokens.Token) *Error {
	return &Error{
		Kind: UnexpectedToken{
			Text: token.Text,
		},
		Location: token.Location,
	}
}

func (d *Decoder) DecodeString() (string, tokens.Location, error) {
	arg, err := d.DecodeRaw()
	if err != nil {
		return "", nil, err
	}
	if arg.Value.Kind != literals.String {
		return "", arg.Location, &Error{
			Kind: BadType{
				Given:    arg.Value.Kind,
				Expected: literals.String,
			},
			Location: arg.Location,
		}
	}
	return arg.Value.Str, arg.Location, nil
}

// SkipNext consumes one argument of any kind and returns its location.
// For a malformed argument the location of the offending token is returned.
func (d *Decoder) SkipNext() (tokens.Location, bool) {
	arg, err := d.DecodeRaw()
	if err == io.EOF {
		return nil, false
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Location, true
	}
	return arg.Location, true
}

// CountRemaining consumes every remaining argument, ignoring grammar errors, and returns the number of arguments decoded in total.
// No typed decoding is possible afterwards.
func (d *Decoder) CountRemaining() int {
	for {
		_, err := d.DecodeRaw()
		if err == io.EOF {
			break
		}
	}
	return d.parsed
}

// Parsed returns the number of arguments decoded so far.
func (d *Decoder) Parsed() int {
	return d.parsed
}
