package utils

import "strings"

// Dedent strips the indentation of every line and the surrounding blank space.
// Prompts are written as indented raw strings and normalised before sending.
func Dedent(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(strings.TrimLeft(line, " \t"), " \t\r")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
