/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package trigger

import (
	"fmt"
)

type tokenKind uint8

const (
	tokWord tokenKind = iota
	tokLParen
	tokRParen
	tokLBracket
	tokRBracket
	tokComma
	tokEOF
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

// lex splits s into tokens. Words are maximal runs of letters and hyphens;
// everything else that is not whitespace or one of "()[]," is rejected
// outright so that malformed input fails during lexing rather than producing
// a confusing parse error later.
func lex(s string) ([]token, error) {
	var tokens []token
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '(':
			tokens = append(tokens, token{tokLParen, "(", i})
			i++
		case c == ')':
			tokens = append(tokens, token{tokRParen, ")", i})
			i++
		case c == '[':
			tokens = append(tokens, token{tokLBracket, "[", i})
			i++
		case c == ']':
			tokens = append(tokens, token{tokRBracket, "]", i})
			i++
		case c == ',':
			tokens = append(tokens, token{tokComma, ",", i})
			i++
		case isWordChar(c):
			start := i
			for i < len(s) && isWordChar(s[i]) {
				i++
			}
			tokens = append(tokens, token{tokWord, s[start:i], start})
		default:
			return nil, fmt.Errorf("unexpected character %q at position %d", c, i)
		}
	}
	tokens = append(tokens, token{tokEOF, "", len(s)})
	return tokens, nil
}

func isWordChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '-'
}

// isLiteral reports whether word matches the grammar's LITERAL production:
// [a-z]([a-z-])*.
func isLiteral(word string) bool {
	if word == "" {
		return false
	}
	if word[0] < 'a' || word[0] > 'z' {
		return false
	}
	for i := 1; i < len(word); i++ {
		c := word[i]
		if !(c >= 'a' && c <= 'z') && c != '-' {
			return false
		}
	}
	return true
}
