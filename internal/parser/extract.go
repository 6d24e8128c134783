// Package parser extracts per-exercise solution blocks from a LaTeX
// solutions manual.
//
// The source format is a flat file of chapter markers followed by
// exercise annotations:
//
//	\eocesolch{Probability}
//	% 5
//	\eocesol{The answer is $x=2$.}
//
// Each chapter's span runs from just after its \eocesolch marker to just
// before the next one (or end of file). Within a span, every "% N" line
// followed by an \eocesol command yields one solution; the command's braced
// argument is read with depth-counted brace matching so nested braces
// survive intact.
package parser

import (
	"regexp"

	"github.com/openintro/soltex/internal/types"
)

var (
	chapterPattern  = regexp.MustCompile(`\\eocesolch\{([^}]+)\}`)
	exercisePattern = regexp.MustCompile(`%\s*(\d+)\s*\n`)
	solutionPattern = regexp.MustCompile(`\\eocesol\s*\{`)
)

// Parse scans the full LaTeX source and returns its chapters in source
// order, each with its solutions in source order. Malformed input is
// handled best-effort: an exercise number with no following \eocesol is
// skipped, and an unbalanced brace argument consumes the rest of the
// chapter span.
func Parse(content string) []types.Chapter {
	marks := chapterPattern.FindAllStringSubmatchIndex(content, -1)

	chapters := make([]types.Chapter, 0, len(marks))
	for i, m := range marks {
		name := content[m[2]:m[3]]
		start := m[1]
		end := len(content)
		if i+1 < len(marks) {
			end = marks[i+1][0]
		}
		chapters = append(chapters, types.Chapter{
			Name:      name,
			Solutions: parseSpan(content[start:end]),
		})
	}
	return chapters
}

// parseSpan extracts all (number, solution) pairs from one chapter's span.
// The scan position only moves forward, so termination is guaranteed even
// when the markup is malformed.
func parseSpan(span string) []types.Solution {
	var solutions []types.Solution

	pos := 0
	for pos < len(span) {
		comment := exercisePattern.FindStringSubmatchIndex(span[pos:])
		if comment == nil {
			break
		}
		number := span[pos+comment[2] : pos+comment[3]]
		commentEnd := pos + comment[1]

		cmd := solutionPattern.FindStringIndex(span[commentEnd:])
		if cmd == nil {
			// Number annotation with no solution after it: skip it.
			pos = commentEnd
			continue
		}

		braceStart := commentEnd + cmd[1] - 1
		text, _ := extractBraced(span, braceStart)
		if text != "" {
			solutions = append(solutions, types.Solution{Number: number, Text: text})
		}

		pos = commentEnd + cmd[1]
	}

	return solutions
}

// extractBraced reads a balanced-brace argument starting at start, which
// must point at the opening '{'. It returns the argument with the
// outermost brace pair stripped and the index just past the closing
// brace. Depth increments on '{' and decrements on '}'; the argument ends
// when depth returns to zero. If the braces never balance the rest of the
// text is consumed and returned.
func extractBraced(text string, start int) (string, int) {
	if start >= len(text) || text[start] != '{' {
		return "", start
	}

	depth := 0
	buf := make([]byte, 0, 64)
	i := start
	for i < len(text) {
		c := text[i]
		switch c {
		case '{':
			depth++
			if depth > 1 {
				buf = append(buf, c)
			}
		case '}':
			depth--
			if depth == 0 {
				return string(buf), i + 1
			}
			buf = append(buf, c)
		default:
			if depth > 0 {
				buf = append(buf, c)
			}
		}
		i++
	}

	return string(buf), i
}
