package util

import "strings"

const nseSuffix = ".NS"

// NormalizeSymbol maps user input onto the canonical exchange spelling:
// uppercase, ".NS" appended to bare equity symbols, index symbols ("^...")
// and symbols that already carry an exchange suffix left untouched.
// The function is idempotent, so callers may normalize defensively.
func NormalizeSymbol(symbol string) string {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	if s == "" || IsIndex(s) {
		return s
	}
	if strings.Contains(s, ".") {
		return s
	}
	return s + nseSuffix
}

// IsIndex reports whether the symbol names an index rather than an equity.
func IsIndex(symbol string) bool {
	return strings.HasPrefix(symbol, "^")
}

// DisplayName strips the exchange suffix for UI-facing labels.
func DisplayName(symbol string) string {
	return strings.TrimSuffix(symbol, nseSuffix)
}
