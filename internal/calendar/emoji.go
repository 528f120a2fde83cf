package calendar

// LeadingEmoji returns the emoji glyph at the start of s, or the empty string
// if s does not open with one. Joiners and variation selectors extend the
// glyph so composed emoji survive intact.
func LeadingEmoji(s string) string {
	var out []rune
	for _, r := range s {
		if isEmojiRune(r) || (len(out) > 0 && isEmojiJoiner(r)) {
			out = append(out, r)
			continue
		}
		break
	}
	return string(out)
}

// isEmojiRune reports whether r belongs to the common emoji blocks.
func isEmojiRune(r rune) bool {
	switch {
	case r >= 0x1F000 && r <= 0x1FAFF: // emoticons, pictographs, symbols
		return true
	case r >= 0x2600 && r <= 0x27BF: // miscellaneous symbols and dingbats
		return true
	case r >= 0x2B00 && r <= 0x2BFF: // stars and directional symbols
		return true
	default:
		return false
	}
}

// isEmojiJoiner reports whether r joins or modifies a preceding emoji rune.
func isEmojiJoiner(r rune) bool {
	return r == 0xFE0F || r == 0x200D // variation selector-16, zero-width joiner
}
