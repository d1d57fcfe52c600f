// goTextAnalyzer reports word frequencies, distributionally similar words
// and concordances for a directory of text files.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/computerphysicslab/goPackages/goDebug"
	"github.com/spf13/viper"

	"goTextAnalyzer/corpuslib"
	"goTextAnalyzer/reportlib"
	"goTextAnalyzer/textlib"
)

/******************************************************************************/
/******************************************************************************/
/*********************** CONFIG ***********************************************/
/******************************************************************************/
/******************************************************************************/

// Config gathers every knob of a run. It is loaded once at startup and
// passed down read-only; nothing in the pipeline mutates it.
type Config struct {
	CorpusDir    string
	FilePattern  string
	QueryWords   []string
	ContextWidth int
	LineWidth    int
	MaxSimilar   int
	Debug        bool
}

func loadConfig(name string) (Config, error) {
	v := viper.New()
	v.SetConfigName(name) // name of config file (without extension)
	v.AddConfigPath(".")  // look for config in the working directory
	v.SetDefault("corpusDir", "./corpus")
	v.SetDefault("filePattern", "*.txt")
	v.SetDefault("contextWidth", 2)
	v.SetDefault("lineWidth", 80)
	v.SetDefault("maxSimilar", 8)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	conf := Config{
		CorpusDir:    v.GetString("corpusDir"),
		FilePattern:  v.GetString("filePattern"),
		QueryWords:   v.GetStringSlice("queryWords"),
		ContextWidth: v.GetInt("contextWidth"),
		LineWidth:    v.GetInt("lineWidth"),
		MaxSimilar:   v.GetInt("maxSimilar"),
		Debug:        v.GetBool("debug"),
	}
	if len(conf.QueryWords) == 0 {
		return Config{}, errors.New("config: queryWords must list at least one word")
	}
	if conf.ContextWidth < 1 {
		return Config{}, errors.New("config: contextWidth must be at least 1")
	}
	if conf.LineWidth < 1 {
		return Config{}, errors.New("config: lineWidth must be at least 1")
	}

	return conf, nil
}

/******************************************************************************/
/******************************************************************************/
/*********************** MAIN *************************************************/
/******************************************************************************/
/******************************************************************************/

// run executes the whole pipeline: load corpus, build statistics, render the
// report onto w. Any loader failure aborts before a single byte of report is
// written.
func run(conf Config, w io.Writer) error {
	corpus, err := corpuslib.Load(conf.CorpusDir, conf.FilePattern)
	if err != nil {
		return err
	}

	text := textlib.NewText(corpus.Tokens())

	rows := reportlib.BuildSummary(text, conf.QueryWords, conf.MaxSimilar)

	concordances := make(map[string][]string, len(conf.QueryWords))
	for _, word := range conf.QueryWords {
		concordances[word] = text.Concordances(word, conf.ContextWidth)
	}

	stats := reportlib.Stats{
		Files:      corpus.FileNames(),
		Tokens:     corpus.Len(),
		Vocabulary: text.Vocab(),
		Language:   corpus.Language(),
	}
	reportlib.Render(w, stats, rows, concordances, conf.LineWidth)

	return nil
}

func main() {
	configName := flag.String("config", "analyzer", "config file name (without extension)")
	flag.Parse()

	conf, err := loadConfig(*configName)
	if err != nil {
		log.Fatal(err)
	}

	if conf.Debug {
		goDebug.Print("config", conf)
	}

	if err := run(conf, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
