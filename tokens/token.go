package tokens

import "github.com/reusee/fancyip/literals"

type Token struct {
	Kind     Kind
	Text     string
	Literal  literals.Value
	Punct    rune
	Location Location
}

type Kind uint8

const (
	KindOther Kind = iota
	KindLiteral
	KindPunct
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindPunct:
		return "punct"
	}
	return "other"
}

func Lit(value literals.Value, loc Location) *Token {
	return &Token{
		Kind:     KindLiteral,
		Text:     value.String(),
		Literal:  value,
		Location: loc,
	}
}

func Punct(r rune, loc Location) *Token {
	return &Token{
		Kind:     KindPunct,
		Text:     string(r),
		Punct:    r,
		Location: loc,
	}
}

func Other(text string, loc Location) *Token {
	return &Token{
		Kind:     KindOther,
		Text:     text,
		Location: loc,
	}
}
