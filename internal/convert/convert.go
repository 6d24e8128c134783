// Package convert runs the end-to-end conversion: read the LaTeX
// solutions manual, extract and translate every solution, and write the
// PreTeXt appendix in one shot.
package convert

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/openintro/soltex/internal/parser"
	"github.com/openintro/soltex/internal/pretext"
	"github.com/openintro/soltex/internal/types"
)

// Request contains the parameters for one conversion run.
type Request struct {
	InputPath  string            // LaTeX solutions manual
	OutputPath string            // PreTeXt appendix to write (overwritten)
	ChapterIDs map[string]string // Chapter title -> section id table
	Logger     *slog.Logger      // Optional logger for progress updates
}

// Result contains the counts of a completed conversion.
type Result struct {
	Chapters   int
	Solutions  int
	OutputPath string
}

// Run performs the conversion. The whole input is read into memory,
// transformed, and the output written once; nothing is written when any
// step fails. The context is accepted for call-site symmetry; the pass
// itself is synchronous.
func Run(_ context.Context, req Request) (*Result, error) {
	log := req.Logger
	if log == nil {
		log = slog.Default()
	}

	log.Info("parsing latex solutions", "path", req.InputPath)
	raw, err := os.ReadFile(req.InputPath)
	if err != nil {
		return nil, fmt.Errorf("read solutions manual: %w", err)
	}
	chapters := parser.Parse(string(raw))

	log.Info("generating pretext appendix", "path", req.OutputPath)
	doc := pretext.Document(chapters, req.ChapterIDs)

	if dir := filepath.Dir(req.OutputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(req.OutputPath, []byte(doc), 0o644); err != nil {
		return nil, fmt.Errorf("write appendix: %w", err)
	}

	res := &Result{
		Chapters:   len(chapters),
		Solutions:  types.SolutionCount(chapters),
		OutputPath: req.OutputPath,
	}
	log.Info("conversion complete", "chapters", res.Chapters, "solutions", res.Solutions)

	return res, nil
}
