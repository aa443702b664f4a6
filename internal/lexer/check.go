package lexer

// Check warns about constructs left open at the end of the scan. None of
// them affect the count. A trailing line comment is not reported, it only
// means the input lacks a final newline.
func (c *Counter) Check(rep Reporter) int {
	warnings := 0

	switch c.mode {
	case ModeBlockComment:
		rep.Warnf("unterminated block comment")
		warnings++
	case ModeCharLiteral:
		rep.Warnf("unterminated character literal")
		warnings++
	case ModeStringLiteral:
		rep.Warnf("unterminated string literal")
		warnings++
	}

	if c.depth != 0 {
		rep.Warnf("unbalanced parentheses: depth %d", c.depth)
		warnings++
	}

	return warnings
}
