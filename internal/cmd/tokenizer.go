package cmd

import (
	"fmt"
	"strings"
)

// Tokenize splits a command line into tokens, handling quotes and
// backslash escapes. Quoting matters here because path arguments may
// contain spaces.
func Tokenize(line string) ([]string, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}

	var tokens []string
	var current strings.Builder
	inSingle := false
	inDouble := false
	escaped := false
	inToken := false

	for i := 0; i < len(line); i++ {
		ch := line[i]

		if escaped {
			current.WriteByte(ch)
			escaped = false
			continue
		}

		if ch == '\\' && !inSingle {
			escaped = true
			inToken = true
			continue
		}

		if ch == '\'' && !inDouble {
			inSingle = !inSingle
			inToken = true
			continue
		}

		if ch == '"' && !inSingle {
			inDouble = !inDouble
			inToken = true
			continue
		}

		if inSingle || inDouble {
			current.WriteByte(ch)
			continue
		}

		if ch == ' ' || ch == '\t' {
			if inToken {
				tokens = append(tokens, current.String())
				current.Reset()
				inToken = false
			}
			continue
		}

		current.WriteByte(ch)
		inToken = true
	}

	if inSingle || inDouble {
		return nil, fmt.Errorf("syntax error: unterminated quote")
	}
	if escaped {
		return nil, fmt.Errorf("syntax error: trailing backslash")
	}

	if inToken {
		tokens = append(tokens, current.String())
	}

	return tokens, nil
}
