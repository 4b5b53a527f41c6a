// Package naturalorder compares human-entered ordinal labels so that
// embedded digit runs order numerically: "2" sorts before "10", and
// "3-A" before "3-B" before "12".
package naturalorder

import (
	"strconv"
	"strings"
)

// Token is one run of an ordinal label: either a numeric value or a
// lowercased text fragment.
type Token struct {
	Num   int64
	Str   string
	IsNum bool
}

// Key splits s into alternating runs of digits and non-digits. Digit runs
// become numeric tokens, everything else becomes a lowercased string token.
// An empty label yields an empty key, which sorts before everything.
func Key(s string) []Token {
	if s == "" {
		return nil
	}
	var tokens []Token
	i := 0
	for i < len(s) {
		j := i
		digit := isDigit(s[i])
		for j < len(s) && isDigit(s[j]) == digit {
			j++
		}
		run := s[i:j]
		if digit {
			if n, err := strconv.ParseInt(run, 10, 64); err == nil {
				tokens = append(tokens, Token{Num: n, IsNum: true})
			} else {
				// Digit run too long for int64; keep it as text.
				tokens = append(tokens, Token{Str: run})
			}
		} else {
			tokens = append(tokens, Token{Str: strings.ToLower(run)})
		}
		i = j
	}
	return tokens
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// Compare orders two keys element-wise. A shorter key that is a prefix of a
// longer one sorts first. At any position a numeric token sorts before a
// text token.
func Compare(a, b []Token) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareToken(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

func compareToken(a, b Token) int {
	if a.IsNum && b.IsNum {
		switch {
		case a.Num < b.Num:
			return -1
		case a.Num > b.Num:
			return 1
		default:
			return 0
		}
	}
	if a.IsNum != b.IsNum {
		if a.IsNum {
			return -1
		}
		return 1
	}
	return strings.Compare(a.Str, b.Str)
}

// Less reports whether label a orders before label b.
func Less(a, b string) bool {
	return Compare(Key(a), Key(b)) < 0
}
