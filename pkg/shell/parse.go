package shell

import "strings"

type token struct {
	text   string
	quoted bool
}

// tokenize splits a command line on whitespace. Single and double quotes
// group, a backslash escapes the next rune inside double quotes.
func tokenize(line string) ([]token, error) {
	var (
		tokens  []token
		current strings.Builder
		inToken bool
		quoted  bool
		open    rune
		escaped bool
	)
	flush := func() {
		if inToken {
			tokens = append(tokens, token{text: current.String(), quoted: quoted})
		}
		current.Reset()
		inToken = false
		quoted = false
	}
	for _, r := range line {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case open != 0:
			if r == '\\' && open == '"' {
				escaped = true
			} else if r == open {
				open = 0
			} else {
				current.WriteRune(r)
			}
		case r == '"' || r == '\'':
			open = r
			inToken = true
			quoted = true
		case r == ' ' || r == '\t':
			flush()
		default:
			current.WriteRune(r)
			inToken = true
		}
	}
	if open != 0 || escaped {
		return nil, ErrUnbalancedQuotes
	}
	flush()
	return tokens, nil
}
