// Package parser turns operator-typed text into typed Go values.
//
// Tokenize splits an argument string into raw tokens, and Types coerces those
// tokens into reflect.Values of the types a command expects: strings, bools,
// registered enumerations, numbers, slices and composite values built through
// registered constructor functions. Tokens of the form $name are resolved
// against a stored-object Lookup before any parsing happens.
package parser

import "strings"

// Tokenize splits text into argument tokens.
//
// Tokens are separated by spaces, tabs, newlines or commas. A double-quoted run
// is taken verbatim (with \" unescaped) and never split. A run that starts
// with '(' is taken verbatim up to its balanced ')' with the outer parens
// stripped, so composite arguments can be re-tokenized by calling Tokenize
// again on the token. Empty tokens are dropped.
func Tokenize(text string) []string {
	var (
		tokens  []string
		current strings.Builder
		depth   int
		inQuote bool
		grouped bool
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
		}
		current.Reset()
		grouped = false
	}

	for i := 0; i < len(text); i++ {
		c := text[i]

		switch {
		case depth > 0:
			// Inside parens everything is kept for the recursive pass,
			// including quotes and their escapes.
			if inQuote {
				current.WriteByte(c)
				if c == '\\' && i+1 < len(text) && text[i+1] == '"' {
					current.WriteByte('"')
					i++
				} else if c == '"' {
					inQuote = false
				}
				continue
			}
			switch c {
			case '"':
				inQuote = true
			case '(':
				depth++
			case ')':
				depth--
				if depth == 0 && grouped {
					continue
				}
			}
			current.WriteByte(c)

		case inQuote:
			if c == '\\' && i+1 < len(text) && text[i+1] == '"' {
				current.WriteByte('"')
				i++
				continue
			}
			if c == '"' {
				inQuote = false
				continue
			}
			current.WriteByte(c)

		case c == '"':
			inQuote = true

		case c == '(':
			if current.Len() == 0 {
				grouped = true
			} else {
				current.WriteByte(c)
			}
			depth++

		case isSeparator(c):
			flush()

		default:
			current.WriteByte(c)
		}
	}

	flush()
	return tokens
}

func isSeparator(c byte) bool {
	return c == ' ' || c == ',' || c == '\t' || c == '\n' || c == '\r'
}

// IsReference reports whether token is a $name stored-object reference.
func IsReference(token string) bool {
	return len(token) > 1 && token[0] == '$'
}
