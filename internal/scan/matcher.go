package scan

import "strings"

// isWordChar reports whether c would extend an identifier.
func isWordChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

// MatchAPI reports whether api occurs in line as a standalone token rather
// than as a fragment of a longer identifier. The first occurrence decides;
// a column offset is returned for a valid match.
func MatchAPI(api, line string) (int, bool) {
	index := strings.Index(line, api)
	if index == -1 {
		return 0, false
	}

	if index > 0 && isWordChar(line[index-1]) {
		return 0, false
	}

	end := index + len(api)
	if end < len(line) && isWordChar(line[end]) {
		return 0, false
	}

	return index, true
}
