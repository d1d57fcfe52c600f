// Package stringlib provides string functions beyond goLang primitives
package stringlib

import (
	"fmt"
	"regexp"
	"strings"
)

/***************************************************************************************************************
****************************************************************************************************************
* String functions *********************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

var reSpace = regexp.MustCompile(`\s+`)

// NormalizeSpace collapses every whitespace run (spaces, tabs, newlines)
// found on the input string into a single space
func NormalizeSpace(t string) string {
	return strings.TrimSpace(reSpace.ReplaceAllString(t, " "))
}

// WrapLine breaks text into successive lines no wider than maxWidth
// characters, breaking only at word boundaries. A single word longer than
// maxWidth is placed alone on its line and may exceed the width.
func WrapLine(text string, maxWidth int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if maxWidth < 1 {
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) <= maxWidth {
			current = current + " " + word
		} else {
			lines = append(lines, current)
			current = word
		}
	}

	return append(lines, current)
}

// Test shows package functionality
func Test() {
	fmt.Printf("NormalizeSpace(1\n2\n): -%s-\n", NormalizeSpace("1\n2\n"))
	fmt.Printf("WrapLine(the quick brown fox, 9): %+v\n", WrapLine("the quick brown fox", 9))
}
