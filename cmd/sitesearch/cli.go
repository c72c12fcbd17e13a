package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/alecthomas/kong"
)

// Dependencies holds ambient services and configuration for command
// execution.
type Dependencies struct {
	Ctx     context.Context
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Verbose bool
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  kong.ConfigFlag `help:"YAML config file. Command-line flags win over file values."`
	Verbose bool            `short:"v" help:"Log each page load and query."`
	Quiet   bool            `short:"q" help:"Suppress logging."`

	Crawl   CrawlCmd   `cmd:"" help:"Crawl a corpus and print an index summary"`
	Search  SearchCmd  `cmd:"" help:"Crawl a corpus and answer a single query"`
	Repl    ReplCmd    `cmd:"" help:"Crawl a corpus and answer queries interactively"`
	Show    ShowCmd    `cmd:"" help:"Print one page of the corpus as Markdown"`
	Export  ExportCmd  `cmd:"" help:"Crawl a corpus and write every page as a Markdown file"`
	Import  ImportCmd  `cmd:"" help:"Copy a directory corpus into a SQLite archive"`
	History HistoryCmd `cmd:"" help:"List recorded crawl runs"`
}

// corpusFlags selects the corpus source and configures the analysis and
// ranking pipeline. Shared by every command that crawls.
type corpusFlags struct {
	Dir     string `arg:"" optional:"" help:"Directory of HTML files to crawl."`
	DB      string `name:"db" help:"SQLite page archive to crawl instead of a directory."`
	URL     string `help:"Base URL to crawl over HTTP instead of a directory."`
	Sitemap string `help:"XML sitemap file naming the seed pages."`

	Extractor      string   `default:"goquery" enum:"goquery,trafilatura" help:"HTML text extractor."`
	Stopwords      []string `help:"Replace the built-in stop word list."`
	StopwordsExtra []string `name:"stopwords-extra" help:"Add stop words to the list."`
	Stem           bool     `help:"Reduce terms to their stems before indexing."`
	Language       string   `default:"english" help:"Snowball stemmer language."`
	Match          string   `default:"any" enum:"any,all" help:"Require any or all query terms to match."`
	Rank           string   `default:"tfidf" enum:"tfidf,freq" help:"Term scoring function."`
	LinkBonus      float64  `name:"link-bonus" default:"0.1" help:"Score added per inbound link."`
	Concurrency    int      `short:"c" default:"1" help:"Concurrent page loads."`
	Rate           float64  `help:"Page loads per second (0 means unlimited)."`
	Retry          bool     `help:"Retry transient fetch failures."`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	corpusFlags
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Query string. Quote multi-term queries."`
	corpusFlags
}

// ReplCmd is the "repl" subcommand.
type ReplCmd struct {
	corpusFlags
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Document identifier within the corpus."`
	corpusFlags
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	corpusFlags
	Out string `required:"" help:"Output directory for the Markdown files."`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	Dir string `arg:"" help:"Directory of HTML files to import."`
	DB  string `name:"db" required:"" help:"Destination SQLite archive."`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	DB string `name:"db" required:"" help:"SQLite archive with recorded crawls."`
}
