package pretext

import (
	"regexp"
	"strings"
)

var (
	partMarkerRe     = regexp.MustCompile(`\(([a-z])\)\s*`)
	trailingPeriodRe = regexp.MustCompile(`\.\s*$`)
)

// splitParts splits a solution body on "(a)", "(b)", ... markers, keeping
// the captured letters, so the result alternates
// [before, letter, text, letter, text, ...].
func splitParts(text string) []string {
	var parts []string
	last := 0
	for _, m := range partMarkerRe.FindAllStringSubmatchIndex(text, -1) {
		parts = append(parts, text[last:m[0]], text[m[2]:m[3]])
		last = m[1]
	}
	parts = append(parts, text[last:])
	return parts
}

// isMultiPart reports whether a split solution body is a lettered
// multi-part answer: at least one marker, with nothing but whitespace
// before the first one.
func isMultiPart(parts []string) bool {
	return len(parts) > 1 && strings.TrimSpace(parts[0]) == ""
}

// renderSolution renders one <solution> element. Multi-part answers become
// an ordered list with "(a)" markers; each part loses any trailing period
// before translation and regains exactly one after, so list items end
// uniformly. Everything else renders as a single paragraph.
func renderSolution(number, text string) string {
	parts := splitParts(text)

	var lines []string
	if isMultiPart(parts) {
		lines = append(lines,
			"    <solution>",
			"      <title>Exercise "+number+"</title>",
			"      <p>",
			`        <ol marker="(a)">`,
		)
		for i := 1; i+1 < len(parts); i += 2 {
			part := strings.TrimSpace(parts[i+1])
			part = trailingPeriodRe.ReplaceAllString(part, "")
			converted := Translate(part)
			if !strings.HasSuffix(converted, ".") {
				converted += "."
			}
			lines = append(lines, "          <li>"+converted+"</li>")
		}
		lines = append(lines,
			"        </ol>",
			"      </p>",
			"    </solution>",
		)
	} else {
		lines = append(lines,
			"    <solution>",
			"      <title>Exercise "+number+"</title>",
			"      <p>",
			"        "+Translate(text),
			"      </p>",
			"    </solution>",
		)
	}

	return strings.Join(lines, "\n")
}
