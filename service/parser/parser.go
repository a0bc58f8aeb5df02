package parser

import (
	"strings"

	"github.com/viant/parsly"
	"github.com/viant/pixelterm/model/types"
)

// Parse splits line into a lower cased verb and the raw argument that follows
// the first whitespace run. Blank input yields an empty command.
func Parse(line string) *types.Command {
	line = strings.TrimSpace(line)
	command := &types.Command{Raw: line}
	if line == "" {
		return command
	}
	cursor := parsly.NewCursor("", []byte(line), 0)

	matched := cursor.MatchOne(wordToken)
	if matched.Code != wordToken.Code {
		return command
	}
	command.Verb = strings.ToLower(matched.Text(cursor))

	matched = cursor.MatchOne(whitespaceToken)
	if matched.Code != whitespaceToken.Code {
		return command
	}
	matched = cursor.MatchOne(restToken)
	if matched.Code == restToken.Code {
		command.Argument = matched.Text(cursor)
	}
	return command
}

// Split splits an argument into words; quoted words may contain whitespace.
func Split(argument string) []string {
	var ret []string
	if strings.TrimSpace(argument) == "" {
		return ret
	}
	cursor := parsly.NewCursor("", []byte(argument), 0)
	for cursor.Pos < cursor.InputSize {
		matched := cursor.MatchAfterOptional(whitespaceToken, quotedToken, wordToken)
		switch matched.Code {
		case quotedToken.Code:
			ret = append(ret, Unquote(matched.Text(cursor)))
		case wordToken.Code:
			ret = append(ret, matched.Text(cursor))
		default:
			return ret
		}
	}
	return ret
}

// Unquote strips matching surrounding quotes and quote escapes
func Unquote(text string) string {
	if len(text) < 2 {
		return text
	}
	quote := text[0]
	if (quote != '"' && quote != '\'') || text[len(text)-1] != quote {
		return text
	}
	text = text[1 : len(text)-1]
	return strings.ReplaceAll(text, `\`+string(quote), string(quote))
}
