package config

// Default file locations, relative to the book repository root where the
// tool is normally run.
const (
	DefaultInput  = "latex/extraTeX/eoceSolutions/eoceSolutions.tex"
	DefaultOutput = "source/appendix-solutions.ptx"
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Input:    DefaultInput,
		Output:   DefaultOutput,
		LogLevel: "info",
		Chapters: DefaultChapterIDs(),
	}
}

// DefaultChapterIDs returns the chapter title to section id table for the
// book. Returned as a fresh map so callers can merge into it.
func DefaultChapterIDs() map[string]string {
	return map[string]string{
		"Introduction to data":              "ch01",
		"Summarizing data":                  "ch02",
		"Probability":                       "ch03",
		"Distributions of random variables": "ch04",
		"Foundations for inference":         "ch05",
		"Inference for categorical data":    "ch06",
		"Inference for numerical data":      "ch07",
		"Introduction to linear regression": "ch08",
		"Multiple and logistic regression":  "ch09",
	}
}
