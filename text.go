package decimal

import (
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/width"
)

// foldText maps full-width digits, signs and separators to their ASCII forms,
// so that wide text goes through the same parser as narrow text.
func foldText(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return width.Narrow.String(s)
		}
	}
	return s
}

// decodeUTF16 converts UTF-16 text to UTF-8.
// A byte order mark selects the byte order; little endian is assumed otherwise.
func decodeUTF16(b []byte) (string, error) {
	dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	s, err := dec.Bytes(b)
	if err != nil {
		return "", errors.Mark(errors.Wrap(err, "decoding utf-16"), ErrParse)
	}
	return string(s), nil
}

// parseText parses the canonical decimal grammar:
//
//	sign      ::= '+' | '-'
//	separator ::= '.' | ','
//	digits    ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	text      ::= [sign] digits [separator digits]
//
// At least one digit is required unless the text is empty.
func parseText(s string, window int) (Decimal, error) {
	if s == "" {
		return Decimal{window: window}, nil
	}

	var (
		pos   int
		neg   bool
		point = -1
	)

	// Sign
	switch s[0] {
	case '-':
		neg = true
		pos++
	case '+':
		pos++
	}

	// Digits, most significant first
	msd := make([]int, 0, len(s)-pos)
	for i := pos; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch >= '0' && ch <= '9':
			msd = append(msd, int(ch-'0'))
		case ch == '.' || ch == ',':
			if point >= 0 {
				return Decimal{}, errors.Wrapf(ErrParse, "%q: second separator at position %v", s, i)
			}
			point = len(msd)
		default:
			r, _ := utf8.DecodeRuneInString(s[i:])
			return Decimal{}, errors.Wrapf(ErrParse, "%q: unexpected character %q at position %v", s, r, i)
		}
	}
	if len(msd) == 0 {
		return Decimal{}, errors.Wrapf(ErrParse, "%q: no digits", s)
	}
	if point < 0 {
		point = len(msd)
	}

	c := coefficient{
		digs: make([]int, len(msd)),
		lo:   point - len(msd),
		neg:  neg,
	}
	for i, d := range msd {
		c.digs[len(msd)-1-i] = d
	}
	return c.normalize(window), nil
}
