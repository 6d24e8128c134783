// Package types provides shared types used across multiple packages.
// This package has no dependencies on other soltex packages to avoid import cycles.
package types

// Solution is one exercise's answer text as extracted from the LaTeX source.
// Text is raw LaTeX with the outermost brace pair of the \eocesol argument
// already stripped; nested braces are preserved verbatim.
type Solution struct {
	Number string // Exercise number from the "% N" annotation line
	Text   string // Raw LaTeX solution body
}

// Chapter is a named group of solutions in source order.
type Chapter struct {
	Name      string // Chapter title exactly as given in \eocesolch{...}
	Solutions []Solution
}

// SolutionCount returns the total number of solutions across chapters.
func SolutionCount(chapters []Chapter) int {
	n := 0
	for _, ch := range chapters {
		n += len(ch.Solutions)
	}
	return n
}
