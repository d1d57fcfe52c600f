// Package reportlib assembles and renders the corpus analysis report: a
// statistics block, a summary table of the query words and a concordance
// listing per query word. Rendering writes to the io.Writer it is given and
// is deterministic, independent of terminal width or locale.
package reportlib

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"goTextAnalyzer/stringlib"
	"goTextAnalyzer/textlib"
)

// Row is one line of the summary table.
type Row struct {
	Word    string
	Count   int
	Similar string
}

// Stats describes the loaded corpus for the report header block.
type Stats struct {
	Files      []string
	Tokens     int
	Vocabulary int
	Language   string
}

// BuildSummary produces one Row per query word, in list order. Duplicates in
// the list get one row each. A word absent from the corpus yields a zero
// count and an empty similar-words string, never a missing row.
func BuildSummary(text *textlib.Text, queryWords []string, maxSimilar int) []Row {
	rows := make([]Row, 0, len(queryWords))
	for _, word := range queryWords {
		rows = append(rows, Row{
			Word:    word,
			Count:   text.Count(word),
			Similar: strings.Join(text.Similar(word, maxSimilar), ", "),
		})
	}

	return rows
}

// Render writes the finished report: statistics block, summary table, then
// for each row in order a "Concordances for '<word>':" header followed by
// that word's concordance lines, each wrapped to lineWidth columns. The
// concordances map is keyed by the query words exactly as they appear in the
// rows.
func Render(w io.Writer, stats Stats, rows []Row, concordances map[string][]string, lineWidth int) {
	fmt.Fprintf(w, "Corpus: %d files, %d tokens, %d distinct tokens, language: %s\n",
		len(stats.Files), stats.Tokens, stats.Vocabulary, stats.Language)
	for _, line := range stringlib.WrapLine("Files: "+strings.Join(stats.Files, ", "), lineWidth) {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Word", "Occurrences", "Similar Words"})
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, row := range rows {
		table.Append([]string{row.Word, strconv.Itoa(row.Count), row.Similar})
	}
	table.Render()

	for _, row := range rows {
		fmt.Fprintf(w, "\nConcordances for '%s':\n", row.Word)
		for _, line := range concordances[row.Word] {
			for _, wrapped := range stringlib.WrapLine(line, lineWidth) {
				fmt.Fprintln(w, wrapped)
			}
		}
	}
}
