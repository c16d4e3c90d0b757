package command

import "strings"

// ParseResult holds the parsed command name and argument from a text line.
type ParseResult struct {
	// Command is the first word of the input, lowercased.
	Command string
	// Arg is the raw text after the command word with line terminators
	// removed. Internal spacing is preserved for say.
	Arg string
}

// Parse splits a text line into a command word and its argument.
//
// Matching is on the first token only: a line whose argument merely contains
// a command word (e.g. `say quit now`) is not misrouted.
//
// Postcondition: Returns a ParseResult. If line is blank, Command is empty.
func Parse(line string) ParseResult {
	line = strings.Trim(line, "\r\n")
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ParseResult{}
	}

	spaceIdx := strings.IndexByte(trimmed, ' ')
	if spaceIdx < 0 {
		return ParseResult{Command: strings.ToLower(trimmed)}
	}

	return ParseResult{
		Command: strings.ToLower(trimmed[:spaceIdx]),
		Arg:     trimmed[spaceIdx+1:],
	}
}
