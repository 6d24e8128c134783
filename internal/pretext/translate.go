// Package pretext renders extracted LaTeX solutions as a PreTeXt appendix.
//
// Translation is a fixed pipeline of string rewrites whose order is load
// bearing: display math is bracketed into [Math: ...] placeholders before
// whitespace normalization flattens it, ampersands inside those
// placeholders are shielded with a private token before the global
// ampersand escape runs, and the global escape itself only touches text
// outside the tags and placeholders produced by earlier steps.
package pretext

import (
	"regexp"
	"strings"
)

// ampToken shields '&' inside [Math:] placeholders from the global escape
// pass. Control bytes cannot appear in the LaTeX source, so the token is
// collision-free.
const ampToken = "\x01AMP\x01"

var (
	figureFullPathRe = regexp.MustCompile(`\\FigureFullPath\[([^\]]+)\]\{[^}]+\}\{[^}]+\}`)
	figureRe         = regexp.MustCompile(`\\Figure\[[^\]]+\]\{[^}]+\}`)

	footnoteAlignRe = regexp.MustCompile(`(?s)\{\\footnotesize\\begin\{align\*\}(.*?)\\end\{align\*\}\}`)
	alignRe         = regexp.MustCompile(`(?s)\\begin\{align\*\}(.*?)\\end\{align\*\}`)

	breakPeriodRe  = regexp.MustCompile(`\\\\\s*\.`)
	breakNewlineRe = regexp.MustCompile(`\\\\\s*\n`)
	breakRe        = regexp.MustCompile(`\\\\`)
	whitespaceRe   = regexp.MustCompile(`\s+`)

	emphRe   = regexp.MustCompile(`\\emph\{([^}]+)\}`)
	textbfRe = regexp.MustCompile(`\\textbf\{([^}]+)\}`)

	// Opening `` paired with either '' or a plain " closer. Non-greedy,
	// no nesting: a quote containing another quote mis-terminates. This
	// matches the source document's usage and is a known constraint.
	quoteTexRe   = regexp.MustCompile("``([^\"`]+)''")
	quoteMixedRe = regexp.MustCompile("``([^\"`]+)\"")

	figureBlockRe = regexp.MustCompile(`\[Figure: ([^\]]+)\]`)
	mathBlockRe   = regexp.MustCompile(`\[Math: ([^\]]+)\]`)

	inlineMathRe = regexp.MustCompile(`\$([^$]+)\$`)

	// Spans the global ampersand escape must not touch: inline markup
	// produced by earlier steps plus the bracket placeholders.
	protectedSpanRe = regexp.MustCompile(`<m>.*?</m>|<em>.*?</em>|<alert>.*?</alert>|<q>.*?</q>|\[Figure:[^\]]+\]|\[Math:[^\]]+\]`)

	// Known entities match before the bare '&' alternative, so an
	// already-escaped ampersand is never escaped twice.
	ampRe = regexp.MustCompile(`&amp;|&lt;|&gt;|&quot;|&apos;|&`)
)

// Translate converts one solution's raw LaTeX to PreTeXt inline markup.
// The rules run in a fixed order; see the package comment for why.
func Translate(latex string) string {
	s := latex

	s = translateFigures(s)
	s = bracketDisplayMath(s)
	s = normalizeBreaks(s)
	s = strings.ReplaceAll(s, "~", " ")
	s = emphRe.ReplaceAllString(s, "<em>$1</em>")
	s = textbfRe.ReplaceAllString(s, "<alert>$1</alert>")
	s = quoteTexRe.ReplaceAllString(s, "<q>$1</q>")
	s = quoteMixedRe.ReplaceAllString(s, "<q>$1</q>")
	s = escapeFigureQuotes(s)
	s = escapeMathBlocks(s)
	s = strings.ReplaceAll(s, `\rightarrow`, `\to`)
	s = translateInlineMath(s)
	s = escapeAmpersands(s)
	s = collapseWhitespace(s)

	return s
}

// translateFigures replaces figure commands with bracket placeholders.
// The figure itself is not converted; the placeholder marks where a
// <figure> element needs to be authored by hand.
func translateFigures(s string) string {
	s = figureFullPathRe.ReplaceAllString(s, "[Figure: $1]")
	s = figureRe.ReplaceAllString(s, "[Figure]")
	return s
}

// bracketDisplayMath replaces align* environments (and their
// \footnotesize-wrapped variant) with [Math: ...] placeholders. Alignment
// ampersands are swapped for ampToken so the global escape pass cannot
// see them; escapeMathBlocks restores them as &amp; later.
func bracketDisplayMath(s string) string {
	bracket := func(re *regexp.Regexp, s string) string {
		return re.ReplaceAllStringFunc(s, func(match string) string {
			body := re.FindStringSubmatch(match)[1]
			body = strings.ReplaceAll(body, "&", ampToken)
			return "[Math: " + body + "]"
		})
	}
	// The wrapped form first, or the inner align* would be consumed out
	// from under it.
	s = bracket(footnoteAlignRe, s)
	s = bracket(alignRe, s)
	return s
}

// normalizeBreaks removes LaTeX manual line breaks and flattens all
// whitespace to single spaces.
func normalizeBreaks(s string) string {
	s = breakPeriodRe.ReplaceAllString(s, ".")
	s = breakNewlineRe.ReplaceAllString(s, " ")
	s = breakRe.ReplaceAllString(s, "")
	return collapseWhitespace(s)
}

func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// escapeFigureQuotes escapes literal double quotes inside [Figure: ...]
// placeholders. The placeholder stays plain bracket text in the output,
// so its quotes must already be entity-safe.
func escapeFigureQuotes(s string) string {
	return figureBlockRe.ReplaceAllStringFunc(s, func(match string) string {
		body := figureBlockRe.FindStringSubmatch(match)[1]
		body = strings.ReplaceAll(body, `"`, "&quot;")
		return "[Figure: " + body + "]"
	})
}

// escapeMathBlocks entity-escapes angle brackets inside [Math: ...]
// placeholders and restores shielded ampersands as &amp;.
func escapeMathBlocks(s string) string {
	return mathBlockRe.ReplaceAllStringFunc(s, func(match string) string {
		body := mathBlockRe.FindStringSubmatch(match)[1]
		body = strings.ReplaceAll(body, "<", "&lt;")
		body = strings.ReplaceAll(body, ">", "&gt;")
		body = strings.ReplaceAll(body, ampToken, "&amp;")
		return "[Math: " + body + "]"
	})
}

// translateInlineMath converts $...$ spans to <m> elements. Unlike math
// placeholders, <m> content remains live markup, so angle brackets become
// the \lt and \gt commands rather than entities.
func translateInlineMath(s string) string {
	return inlineMathRe.ReplaceAllStringFunc(s, func(match string) string {
		body := inlineMathRe.FindStringSubmatch(match)[1]
		body = strings.ReplaceAll(body, "<", `\lt`)
		body = strings.ReplaceAll(body, ">", `\gt`)
		return "<m>" + body + "</m>"
	})
}

// escapeAmpersands escapes '&' in prose while leaving the content of
// already-produced tags and placeholders alone. The string is walked as
// alternating plain and protected spans; only plain spans are escaped,
// and within them an ampersand that already begins a known entity is
// kept as is.
func escapeAmpersands(s string) string {
	var sb strings.Builder

	last := 0
	for _, span := range protectedSpanRe.FindAllStringIndex(s, -1) {
		sb.WriteString(escapePlain(s[last:span[0]]))
		sb.WriteString(s[span[0]:span[1]])
		last = span[1]
	}
	sb.WriteString(escapePlain(s[last:]))

	return sb.String()
}

func escapePlain(s string) string {
	return ampRe.ReplaceAllStringFunc(s, func(match string) string {
		if match == "&" {
			return "&amp;"
		}
		return match
	})
}
