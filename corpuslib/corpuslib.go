// Package corpuslib loads a directory of text files into a single ordered
// token sequence. Files are concatenated in lexicographic filename order so
// every run over an unchanged directory sees the identical corpus.
package corpuslib

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/chrisport/go-lang-detector/langdet/langdetdef"
	"golang.org/x/sync/errgroup"
	"jaytaylor.com/html2text"

	"goTextAnalyzer/iolib"
	"goTextAnalyzer/stringlib"
	"goTextAnalyzer/textlib"
)

// Fatal load conditions. Both abort the run before any report output.
var (
	ErrCorpusNotFound  = errors.New("corpus directory not found")
	ErrNoMatchingFiles = errors.New("no files match the corpus pattern")
)

// how much corpus text the language detector gets to sample
const languageSampleLen = 4096

// cap on files read at once, keeps descriptor usage flat on big directories
const maxConcurrentReads = 8

// Corpus is the tokenized content of every matching file, read-only after
// Load returns.
type Corpus struct {
	tokens   []string
	files    []string
	language string
}

// Load enumerates the files in dir matching pattern (shell glob, e.g.
// "*.txt"), reads and tokenizes each one, and concatenates the token
// sequences in lexicographic filename order. Any unreadable file fails the
// whole load; there is no partial corpus.
func Load(dir, pattern string) (*Corpus, error) {
	if !iolib.DirExists(dir) {
		return nil, fmt.Errorf("%w: %s", ErrCorpusNotFound, dir)
	}

	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("bad corpus pattern %q: %w", pattern, err)
	}
	var files []string
	for _, m := range matches {
		if iolib.FileExists(m) { // globs may match subdirectories
			files = append(files, m)
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoMatchingFiles, filepath.Join(dir, pattern))
	}
	sort.Strings(files)

	// Files are read and converted concurrently, at most maxConcurrentReads
	// at a time; each goroutine writes its own slot so the concatenation
	// below keeps filename order no matter which read finishes first.
	texts := make([]string, len(files))
	sem := make(chan struct{}, maxConcurrentReads)
	var g errgroup.Group
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			sem <- struct{}{}
			defer func() { <-sem }()

			content, err := iolib.File2string(path)
			if err != nil {
				return fmt.Errorf("reading corpus file %s: %w", path, err)
			}
			if isHTML(path) {
				plain, err := html2text.FromString(content, html2text.Options{PrettyTables: false})
				if err != nil {
					return fmt.Errorf("converting corpus file %s: %w", path, err)
				}
				content = stringlib.NormalizeSpace(plain)
			}
			texts[i] = content
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var tokens []string
	for i, text := range texts {
		fileTokens, err := textlib.Tokenize(text)
		if err != nil {
			return nil, fmt.Errorf("tokenizing corpus file %s: %w", files[i], err)
		}
		tokens = append(tokens, fileTokens...)
	}

	return &Corpus{
		tokens:   tokens,
		files:    files,
		language: detectLanguage(texts),
	}, nil
}

// Tokens returns the full ordered token sequence. Callers must treat it as
// read-only.
func (c *Corpus) Tokens() []string {
	return c.tokens
}

// Len returns the corpus length in tokens.
func (c *Corpus) Len() int {
	return len(c.tokens)
}

// Files returns how many files the corpus was loaded from.
func (c *Corpus) Files() int {
	return len(c.files)
}

// FileNames returns the loaded file paths in corpus order.
func (c *Corpus) FileNames() []string {
	return c.files
}

// Language returns the detected corpus language, or "unknown".
func (c *Corpus) Language() string {
	return c.language
}

func isHTML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}

// truncateAtRuneBoundary cuts s to at most max bytes without splitting a
// UTF-8 sequence.
func truncateAtRuneBoundary(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}

func detectLanguage(texts []string) string {
	sample := truncateAtRuneBoundary(strings.Join(texts, " "), languageSampleLen)
	detector := langdetdef.NewWithDefaultLanguages()
	lang := detector.GetClosestLanguage(sample)
	if lang == "" || lang == "undefined" {
		return "unknown"
	}
	return lang
}
