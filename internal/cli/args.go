package cli

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/mcoot/dailypuzzles/internal/services/puzzles"
)

// dateArg returns the optional leading date argument, "today" when absent
func dateArg(args []string) string {
	if len(args) == 0 || args[0] == "" {
		return puzzles.Today
	}
	return url.PathEscape(args[0])
}

// withQuery appends a single query parameter when value is set
func withQuery(path, key, value string) string {
	if value == "" {
		return path
	}
	return path + "?" + url.Values{key: []string{value}}.Encode()
}

// parseTile parses "row,col,letter"
func parseTile(s string) (int, int, string, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return 0, 0, "", fmt.Errorf("tile %q must be row,col,letter", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, "", fmt.Errorf("tile %q: invalid row", s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, "", fmt.Errorf("tile %q: invalid column", s)
	}
	return row, col, strings.ToUpper(strings.TrimSpace(parts[2])), nil
}

// parseGuess parses "X=Y" as cipher letter X decoded to plain letter Y
func parseGuess(s string) (string, string, error) {
	c, p, ok := strings.Cut(s, "=")
	if !ok || len(c) != 1 || len(p) != 1 {
		return "", "", fmt.Errorf("guess %q must be CIPHER=PLAIN, e.g. X=E", s)
	}
	return strings.ToUpper(c), strings.ToUpper(p), nil
}
