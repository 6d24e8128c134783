package convert

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/openintro/soltex/internal/config"
)

const sampleManual = `\eocesolch{Probability}
% 5
\eocesol{The answer is $x=2$.}
% 7
\eocesol{(a) foo. (b) bar.}
\eocesolch{Summarizing data}
% 1
\eocesol{The median resists outliers.}
`

func TestRun(t *testing.T) {
	t.Run("end to end", func(t *testing.T) {
		dir := t.TempDir()
		input := filepath.Join(dir, "eoceSolutions.tex")
		output := filepath.Join(dir, "out", "appendix-solutions.ptx")
		if err := os.WriteFile(input, []byte(sampleManual), 0o644); err != nil {
			t.Fatal(err)
		}

		res, err := Run(context.Background(), Request{
			InputPath:  input,
			OutputPath: output,
			ChapterIDs: config.DefaultChapterIDs(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Chapters != 2 {
			t.Errorf("expected 2 chapters, got %d", res.Chapters)
		}
		if res.Solutions != 3 {
			t.Errorf("expected 3 solutions, got %d", res.Solutions)
		}

		data, err := os.ReadFile(output)
		if err != nil {
			t.Fatalf("reading output: %v", err)
		}
		doc := string(data)

		for _, want := range []string{
			`<section xml:id="solutions-ch03">`,
			`<section xml:id="solutions-ch02">`,
			"<title>Exercise 5</title>",
			"<m>x=2</m>",
			`<ol marker="(a)">`,
			"<li>foo.</li>",
		} {
			if !strings.Contains(doc, want) {
				t.Errorf("output missing %q", want)
			}
		}
	})

	t.Run("missing input file", func(t *testing.T) {
		dir := t.TempDir()
		output := filepath.Join(dir, "out.ptx")

		_, err := Run(context.Background(), Request{
			InputPath:  filepath.Join(dir, "nope.tex"),
			OutputPath: output,
		})
		if err == nil {
			t.Fatal("expected error for missing input")
		}
		if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
			t.Error("no output should be written on failure")
		}
	})

	t.Run("output overwritten on rerun", func(t *testing.T) {
		dir := t.TempDir()
		input := filepath.Join(dir, "in.tex")
		output := filepath.Join(dir, "out.ptx")
		if err := os.WriteFile(input, []byte(sampleManual), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(output, []byte("stale"), 0o644); err != nil {
			t.Fatal(err)
		}

		if _, err := Run(context.Background(), Request{
			InputPath:  input,
			OutputPath: output,
			ChapterIDs: config.DefaultChapterIDs(),
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(output)
		if err != nil {
			t.Fatal(err)
		}
		if strings.Contains(string(data), "stale") {
			t.Error("output was not overwritten")
		}
	})
}
