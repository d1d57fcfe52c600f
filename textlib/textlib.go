// Package textlib computes statistics over an ordered token sequence:
// token frequencies, distributionally similar words and concordance
// (keyword-in-context) listings. Matching is case-insensitive while tokens
// keep the case they carry in the corpus.
package textlib

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jdkato/prose/v2"
	snowballeng "github.com/kljensen/snowball/english"
	"github.com/patrickmn/go-cache"
)

/***************************************************************************************************************
****************************************************************************************************************
* TOKENIZER ****************************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

// Tokenize converts raw text into a list of word and punctuation tokens,
// case preserved. Splitting is delegated to the prose tokenizer; sentence
// segmentation, tagging and entity extraction are switched off.
func Tokenize(text string) ([]string, error) {
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithTagging(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, err
	}

	docTokens := doc.Tokens()
	tokens := make([]string, 0, len(docTokens))
	for _, tok := range docTokens {
		tokens = append(tokens, tok.Text)
	}

	return tokens, nil
}

/***************************************************************************************************************
****************************************************************************************************************
* FREQUENCIES **************************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

// FreqTable maps each distinct token, case preserved, to its occurrence
// count. The counts of all keys sum to the length of the token sequence.
type FreqTable map[string]int

func (f FreqTable) add(tokens []string) {
	for _, token := range tokens {
		f[token]++
	}
}

type kv struct {
	Key   string
	Value int
}

// rSortFreq turns a count map into a slice sorted by count, highest first,
// ties broken alphabetically so rankings are reproducible
func rSortFreq(f map[string]int) (ss []kv) {
	for k, v := range f {
		ss = append(ss, kv{k, v})
	}

	sort.Slice(ss, func(i, j int) bool {
		if ss[i].Value == ss[j].Value {
			return ss[i].Key < ss[j].Key
		}
		return ss[i].Value > ss[j].Value
	})

	return
}

/***************************************************************************************************************
****************************************************************************************************************
* TEXT QUERIES *************************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

// contextPair is the distributional context of one token occurrence: its
// immediate neighbours, lowercased, empty at corpus boundaries.
type contextPair struct {
	left  string
	right string
}

// Text wraps a token sequence together with the read-only indexes that
// frequency, similarity and concordance queries run against. Build it once
// with NewText; it is never mutated afterwards.
type Text struct {
	tokens       []string
	freqs        FreqTable
	positions    map[string][]int               // lowercased token -> occurrence positions, ascending
	wordContexts map[string]map[contextPair]int // lowercased token -> context -> count
	contextWords map[contextPair]map[string]int // context -> lowercased token -> count
	queries      *cache.Cache                   // memoized query results, duplicates in the query list are common
}

// NewText indexes the token sequence in a single pass.
func NewText(tokens []string) *Text {
	t := &Text{
		tokens:       tokens,
		freqs:        make(FreqTable, len(tokens)/2),
		positions:    make(map[string][]int),
		wordContexts: make(map[string]map[contextPair]int),
		contextWords: make(map[contextPair]map[string]int),
		queries:      cache.New(cache.NoExpiration, 0),
	}
	t.freqs.add(tokens)

	for i, token := range tokens {
		key := strings.ToLower(token)
		t.positions[key] = append(t.positions[key], i)

		ctx := contextPair{}
		if i > 0 {
			ctx.left = strings.ToLower(tokens[i-1])
		}
		if i < len(tokens)-1 {
			ctx.right = strings.ToLower(tokens[i+1])
		}
		if t.wordContexts[key] == nil {
			t.wordContexts[key] = make(map[contextPair]int)
		}
		t.wordContexts[key][ctx]++
		if t.contextWords[ctx] == nil {
			t.contextWords[ctx] = make(map[string]int)
		}
		t.contextWords[ctx][key]++
	}

	return t
}

// Len returns the corpus length in tokens.
func (t *Text) Len() int {
	return len(t.tokens)
}

// Vocab returns the number of distinct case-preserved tokens.
func (t *Text) Vocab() int {
	return len(t.freqs)
}

// Freq returns the frequency table. Callers must treat it as read-only.
func (t *Text) Freq() FreqTable {
	return t.freqs
}

// Count returns how many times word occurs in the corpus, ignoring case.
func (t *Text) Count(word string) int {
	return len(t.positions[strings.ToLower(word)])
}

// Similar returns up to max words that occur in the same (previous, next)
// contexts as word, best match first, lowercased. Words sharing a Snowball
// stem with the query are skipped so rankings are not dominated by
// morphological variants. An absent word yields an empty result, not an
// error.
func (t *Text) Similar(word string, max int) []string {
	key := strings.ToLower(word)
	cacheKey := fmt.Sprintf("similar:%s:%d", key, max)
	if hit, found := t.queries.Get(cacheKey); found {
		return hit.([]string)
	}

	similar := []string{}
	if max > 0 {
		queryStem := snowballeng.Stem(key, false)
		scores := make(map[string]int)
		for ctx, n := range t.wordContexts[key] {
			for other, m := range t.contextWords[ctx] {
				if other == key || snowballeng.Stem(other, false) == queryStem {
					continue
				}
				scores[other] += n * m
			}
		}

		ranked := rSortFreq(scores)
		if len(ranked) > max {
			ranked = ranked[:max]
		}
		for _, s := range ranked {
			similar = append(similar, s.Key)
		}
	}

	t.queries.Set(cacheKey, similar, cache.NoExpiration)
	return similar
}

// Concordances returns one display line per occurrence of word, in corpus
// order: up to contextWidth tokens either side of the match, truncated at
// the corpus boundaries, joined by single spaces. Every occurrence is
// listed; a word absent from the corpus yields an empty result.
func (t *Text) Concordances(word string, contextWidth int) []string {
	key := strings.ToLower(word)
	cacheKey := fmt.Sprintf("concordance:%s:%d", key, contextWidth)
	if hit, found := t.queries.Get(cacheKey); found {
		return hit.([]string)
	}

	if contextWidth < 0 {
		contextWidth = 0
	}
	positions := t.positions[key]
	lines := make([]string, 0, len(positions))
	for _, pos := range positions {
		lo := pos - contextWidth
		if lo < 0 {
			lo = 0
		}
		hi := pos + contextWidth + 1
		if hi > len(t.tokens) {
			hi = len(t.tokens)
		}
		lines = append(lines, strings.Join(t.tokens[lo:hi], " "))
	}

	t.queries.Set(cacheKey, lines, cache.NoExpiration)
	return lines
}
