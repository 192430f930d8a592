package command

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer maps the raw string tokens out for our AST definitions.
// Basic whitespace elision is enough for our grammar. Notation chunks start
// with a digit or an operator, so bare macro names always lex as Ident.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Keyword", Pattern: `\b(?:roll|save|list|delete|check|history|seed|help)\b`},
	{Name: "Notation", Pattern: `[0-9*/+\-][0-9xds*/+\-]*`},
	{Name: "Ident", Pattern: `[a-zA-Z_]\w*`},
	{Name: "String", Pattern: `"[^"]*"`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

// Build creates our parser based on the struct tags in `ast.go`
func Build() *participle.Parser[Command] {
	return participle.MustBuild[Command](
		participle.Lexer(Lexer),
		participle.Elide("Whitespace"),
		participle.Unquote("String"),
	)
}
