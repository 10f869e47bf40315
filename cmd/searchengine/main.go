// Command searchengine is a thin interactive harness over searchcore: it
// loads a newline-delimited corpus, builds a SearchServer, and drives a
// readline-based query loop. It is an external collaborator of the core
// library, not part of its specified surface.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"

	"github.com/devancy/searchcore/searchcore"
)

// config holds the application configuration values derived from flags.
type config struct {
	corpusPath string
	stopWords  string
	parallel   bool
	pageSize   int
}

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	cfg := parseFlags()

	logger.Info().Msg("running search engine")

	server, err := buildServer(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("initialization error")
	}

	if err := runInteractiveSearch(server, cfg); err != nil {
		logger.Fatal().Err(err).Msg("runtime error")
	}
}

// parseFlags parses command-line flags and returns a config struct.
func parseFlags() (cfg config) {
	flag.StringVar(&cfg.corpusPath, "p", "corpus.txt", "path to a newline-delimited document corpus")
	flag.StringVar(&cfg.stopWords, "s", "", "space-separated stop words")
	flag.BoolVar(&cfg.parallel, "c", false, "use parallel plus-word accumulation")
	flag.IntVar(&cfg.pageSize, "n", 5, "results displayed per page")
	flag.Parse()
	return cfg
}

// buildServer loads the corpus file (one document per line) and indexes it.
func buildServer(cfg config, logger zerolog.Logger) (*searchcore.SearchServer, error) {
	server, err := searchcore.NewSearchServerFromText(cfg.stopWords, searchcore.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to construct search server: %w", err)
	}

	f, err := os.Open(cfg.corpusPath)
	if err != nil {
		logger.Warn().Err(err).Str("path", cfg.corpusPath).Msg("no corpus loaded, starting empty")
		return server, nil
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	id := 0
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := server.AddDocument(id, line, searchcore.Actual, []int{3}); err != nil {
			logger.Warn().Err(err).Int("id", id).Msg("skipping document")
		}
		id++
	}
	logger.Info().Int("count", server.DocumentCount()).Msg("indexed documents")
	return server, nil
}

// runInteractiveSearch handles the main user interaction loop for searching.
func runInteractiveSearch(server *searchcore.SearchServer, cfg config) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     ".search_history.tmp",
		InterruptPrompt: "^C\n",
		EOFPrompt:       "exit\n",
		HistoryLimit:    100,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize readline: %w", err)
	}
	defer rl.Close()

	queue := searchcore.NewRequestQueue(server)

	fmt.Println("\nEnter your search query (press Ctrl+C or type 'exit' to quit):")

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				fmt.Println("\nExiting...")
				return nil
			}
			continue
		}
		if err == io.EOF || strings.TrimSpace(line) == "exit" {
			fmt.Println("\nExiting...")
			return nil
		}
		queryString := strings.TrimSpace(line)
		if queryString == "" {
			continue
		}

		var results []searchcore.Result
		if cfg.parallel {
			results, err = server.FindTopDocumentsActual(queryString, true)
		} else {
			results, err = queue.AddFindRequestActual(queryString)
		}
		if err != nil {
			fmt.Printf("\nquery error: %v\n", err)
			continue
		}
		fmt.Printf("\nSearch Results for: %q\n", queryString)
		displayResults(results, cfg.pageSize)
		fmt.Printf("no-result count over last %d requests: %d\n", 1440, queue.NoResultCount())
	}
}

// displayResults paginates results via searchcore.Paginate and prints them
// page by page.
func displayResults(results []searchcore.Result, pageSize int) {
	if len(results) == 0 {
		fmt.Println("No matches found.")
		return
	}

	pages := searchcore.Paginate(results, pageSize)
	reader := bufio.NewReader(os.Stdin)
	for i, page := range pages {
		fmt.Printf("\nPage %d/%d:\n", i+1, len(pages))
		for j, r := range page.Items() {
			fmt.Printf("%d. doc=%d relevance=%.4f rating=%d\n", j+1, r.ID, r.Relevance, r.Rating)
		}
		if i < len(pages)-1 {
			fmt.Print("\nPress Enter for next page, or any other key to stop...\n")
			input, _ := reader.ReadString('\n')
			if input != "\n" && input != "\r\n" {
				break
			}
		}
	}
}

