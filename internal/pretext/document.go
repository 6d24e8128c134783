package pretext

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/openintro/soltex/internal/types"
)

// FallbackChapterID is used for chapter names missing from the id table.
// Two unmapped chapters share it; the collision is accepted and the fix is
// to extend the table, not to invent ids.
const FallbackChapterID = "chXX"

var titleCaser = cases.Title(language.English)

const documentHeader = `<?xml version="1.0" encoding="UTF-8" ?>

<appendix xmlns:xi="http://www.w3.org/2001/XInclude" xml:id="appendix-solutions">
  <title>Exercise Solutions</title>

  <introduction>
    <p>
      This appendix contains solutions to selected odd-numbered exercises from each chapter.
      These solutions are provided to help you check your work and understand the problem-solving process.
    </p>
  </introduction>

`

// Document assembles the complete PreTeXt appendix for the given chapters.
// chapterIDs maps exact chapter names to their short ids; missing names
// get FallbackChapterID. The whole document is built in memory.
func Document(chapters []types.Chapter, chapterIDs map[string]string) string {
	var sb strings.Builder
	sb.WriteString(documentHeader)

	for _, ch := range chapters {
		id, ok := chapterIDs[ch.Name]
		if !ok {
			id = FallbackChapterID
		}

		sb.WriteString(`  <section xml:id="solutions-` + id + "\">\n")
		sb.WriteString("    <title>" + titleCaser.String(ch.Name) + "</title>\n\n")

		for _, sol := range ch.Solutions {
			sb.WriteString(renderSolution(sol.Number, sol.Text))
			sb.WriteString("\n\n")
		}

		sb.WriteString("  </section>\n\n")
	}

	// Joined-lines output ends at the closing element, no trailing newline.
	sb.WriteString("</appendix>")
	return sb.String()
}
