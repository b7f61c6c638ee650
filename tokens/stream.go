package tokens

// Stream yields tokens in source order. It cannot be rewound; ok is false once the stream is exhausted.
type Stream interface {
	Next() (token *Token, ok bool)
}

type SliceStream struct {
	tokens []*Token
	idx    int
}

var _ Stream = new(SliceStream)

func NewSliceStream(tokens ...*Token) *SliceStream {
	return &SliceStream{
		tokens: tokens,
	}
}

func (s *SliceStream) Next() (*Token, bool) {
	if s.idx >= len(s.tokens) {
		return nil, false
	}
	ret := s.tokens[s.idx]
	s.idx++
	return ret, true
}

// Remaining reports the number of unread tokens.
func (s *SliceStream) Remaining() int {
	return len(s.tokens) - s.idx
}
