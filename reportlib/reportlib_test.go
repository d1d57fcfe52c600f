package reportlib

import (
	"bytes"
	"strings"
	"testing"

	"goTextAnalyzer/textlib"
)

func sampleText() *textlib.Text {
	return textlib.NewText(strings.Fields("The cat sat . The dog ran ."))
}

func TestBuildSummary(t *testing.T) {
	text := sampleText()

	rows := BuildSummary(text, []string{"CAT", "the", "zebra"}, 8)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	if rows[0].Word != "CAT" || rows[0].Count != 1 {
		t.Errorf("row 0 = %+v, want word CAT with count 1", rows[0])
	}
	if rows[1].Word != "the" || rows[1].Count != 2 {
		t.Errorf("row 1 = %+v, want word the with count 2", rows[1])
	}
	// absent words still get a row, with explicit zeros/empties
	if rows[2].Word != "zebra" || rows[2].Count != 0 || rows[2].Similar != "" {
		t.Errorf("row 2 = %+v, want zebra / 0 / \"\"", rows[2])
	}
}

func TestBuildSummaryKeepsDuplicates(t *testing.T) {
	rows := BuildSummary(sampleText(), []string{"cat", "cat"}, 8)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want one per query list entry", len(rows))
	}
	if rows[0] != rows[1] {
		t.Errorf("duplicate query words got different rows: %+v vs %+v", rows[0], rows[1])
	}
}

func TestRender(t *testing.T) {
	text := sampleText()
	queryWords := []string{"cat", "zebra"}
	rows := BuildSummary(text, queryWords, 8)
	concordances := map[string][]string{
		"cat":   text.Concordances("cat", 2),
		"zebra": text.Concordances("zebra", 2),
	}
	stats := Stats{Files: []string{"corpus/a.txt"}, Tokens: text.Len(), Vocabulary: text.Vocab(), Language: "english"}

	var buf bytes.Buffer
	Render(&buf, stats, rows, concordances, 80)
	out := buf.String()

	for _, want := range []string{
		"1 files, 8 tokens",
		"Files: corpus/a.txt",
		"OCCURRENCES",
		"Concordances for 'cat':",
		"The cat sat .",
		"Concordances for 'zebra':",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}

	// the zebra section must come after the cat section and stay empty
	catIdx := strings.Index(out, "Concordances for 'cat':")
	zebraIdx := strings.Index(out, "Concordances for 'zebra':")
	if catIdx > zebraIdx {
		t.Error("concordance sections not in query-word order")
	}
	if rest := strings.TrimSpace(out[zebraIdx+len("Concordances for 'zebra':"):]); rest != "" {
		t.Errorf("absent word got concordance lines: %q", rest)
	}
}

// Rendering twice with the same inputs must produce byte-identical output.
func TestRenderIsDeterministic(t *testing.T) {
	text := sampleText()
	rows := BuildSummary(text, []string{"cat", "the"}, 8)
	concordances := map[string][]string{
		"cat": text.Concordances("cat", 2),
		"the": text.Concordances("the", 2),
	}
	stats := Stats{Files: []string{"corpus/a.txt"}, Tokens: text.Len(), Vocabulary: text.Vocab(), Language: "english"}

	var first, second bytes.Buffer
	Render(&first, stats, rows, concordances, 80)
	Render(&second, stats, rows, concordances, 80)

	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("two renders of the same inputs differ")
	}
}

// Concordance lines are wrapped; only a single over-long word may exceed the
// configured width.
func TestRenderWrapsConcordanceLines(t *testing.T) {
	tokens := strings.Fields("alpha beta gamma delta epsilon zeta eta theta iota kappa")
	text := textlib.NewText(tokens)
	rows := BuildSummary(text, []string{"epsilon"}, 8)
	concordances := map[string][]string{"epsilon": text.Concordances("epsilon", 4)}

	const width = 20
	var buf bytes.Buffer
	Render(&buf, Stats{Files: []string{"a.txt"}, Tokens: text.Len(), Vocabulary: text.Vocab(), Language: "english"}, rows, concordances, width)

	section := buf.String()
	idx := strings.Index(section, "Concordances for 'epsilon':")
	if idx < 0 {
		t.Fatalf("missing concordance section:\n%s", section)
	}
	for _, line := range strings.Split(section[idx:], "\n")[1:] {
		if len(line) > width && strings.ContainsRune(strings.TrimSpace(line), ' ') {
			t.Errorf("concordance line %q exceeds width %d", line, width)
		}
	}
}
