package lexer

type Mode string

const (
	ModeCode          Mode = "Code"
	ModeBlockComment  Mode = "BlockComment"  // /* ... */
	ModeLineComment   Mode = "LineComment"   // // ... \n
	ModeCharLiteral   Mode = "CharLiteral"   // '...'
	ModeStringLiteral Mode = "StringLiteral" // "..."
)

func (m Mode) String() string {
	return string(m)
}

// closer returns the quote that terminates a literal mode.
func (m Mode) closer() byte {
	switch m {
	case ModeCharLiteral:
		return '\''
	case ModeStringLiteral:
		return '"'
	default:
		return 0
	}
}
