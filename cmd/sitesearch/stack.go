package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/sitesearch"
	"github.com/fwojciec/sitesearch/crawl"
	"github.com/fwojciec/sitesearch/fs"
	"github.com/fwojciec/sitesearch/goquery"
	sshttp "github.com/fwojciec/sitesearch/http"
	"github.com/fwojciec/sitesearch/index"
	"github.com/fwojciec/sitesearch/rank"
	"github.com/fwojciec/sitesearch/search"
	ssslog "github.com/fwojciec/sitesearch/slog"
	"github.com/fwojciec/sitesearch/snowball"
	"github.com/fwojciec/sitesearch/sqlite"
	"github.com/fwojciec/sitesearch/trafilatura"
)

// stack is the crawl and query pipeline assembled from command flags.
type stack struct {
	// root describes the corpus source, recorded in crawl history.
	root string

	fetcher  sitesearch.Fetcher
	seeds    sitesearch.SeedSource
	analyzer sitesearch.Analyzer
	crawler  *crawl.Crawler
	scorer   *rank.Scorer
	match    sitesearch.MatchMode

	// db is set when the source is a SQLite archive.
	db *sqlite.DB
}

// newStack builds the pipeline selected by the flags. Exactly one of the
// directory argument, --db or --url must be given.
func newStack(f *corpusFlags, deps *Dependencies) (*stack, error) {
	s := &stack{}

	if err := s.wireSource(f); err != nil {
		return nil, err
	}

	if f.Sitemap != "" {
		s.seeds = sitemapSeeds{path: f.Sitemap}
	}

	if f.Retry {
		s.fetcher = &crawl.RetryFetcher{
			Next:   s.fetcher,
			Delays: crawl.DefaultRetryDelays(),
			Log: func(format string, args ...any) {
				deps.Logger.Warn(fmt.Sprintf(format, args...))
			},
		}
	}

	links, err := newLinkExtractor(f)
	if err != nil {
		s.Close()
		return nil, err
	}

	var loader sitesearch.PageLoader = &crawl.Loader{
		Fetcher:   s.fetcher,
		Extractor: newExtractor(f),
		Links:     links,
	}
	if deps.Verbose {
		loader = ssslog.NewLoggingPageLoader(loader, deps.Logger)
	}

	if err := s.wireAnalyzer(f); err != nil {
		s.Close()
		return nil, err
	}

	s.crawler = &crawl.Crawler{
		Loader:      loader,
		Analyzer:    s.analyzer,
		Concurrency: f.Concurrency,
	}
	if f.Rate > 0 {
		s.crawler.RateLimiter = crawl.NewLimiter(f.Rate)
	}

	mode, err := sitesearch.ParseMatchMode(f.Match)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.match = mode

	rankMode, err := sitesearch.ParseRankMode(f.Rank)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.scorer = rank.NewScorer(rankMode)
	s.scorer.LinkBonus = f.LinkBonus

	return s, nil
}

// wireSource selects the corpus backend from the flags.
func (s *stack) wireSource(f *corpusFlags) error {
	given := 0
	for _, v := range []string{f.Dir, f.DB, f.URL} {
		if v != "" {
			given++
		}
	}
	if given == 0 {
		return sitesearch.Errorf(sitesearch.EINVALID, "corpus source required: pass a directory, --db or --url")
	}
	if given > 1 {
		return sitesearch.Errorf(sitesearch.EINVALID, "pass only one of the directory argument, --db and --url")
	}

	switch {
	case f.Dir != "":
		src := fs.NewSource(f.Dir)
		s.root = f.Dir
		s.fetcher = src
		s.seeds = src
	case f.DB != "":
		db := sqlite.NewDB(f.DB)
		if err := db.Open(); err != nil {
			return fmt.Errorf("failed to open database at %q: %w", f.DB, err)
		}
		store := sqlite.NewStore(db)
		s.root = f.DB
		s.fetcher = store
		s.seeds = store
		s.db = db
	case f.URL != "":
		src, err := sshttp.NewSource(f.URL)
		if err != nil {
			return err
		}
		s.root = f.URL
		s.fetcher = src
		s.seeds = src
	}
	return nil
}

// newExtractor selects the HTML text extractor.
func newExtractor(f *corpusFlags) sitesearch.Extractor {
	if f.Extractor == "trafilatura" {
		return trafilatura.NewExtractor()
	}
	return goquery.NewExtractor()
}

// newLinkExtractor selects path or URL link resolution to match the source.
func newLinkExtractor(f *corpusFlags) (sitesearch.LinkExtractor, error) {
	if f.URL != "" {
		return goquery.NewURLLinkExtractor(f.URL)
	}
	return goquery.NewPathLinkExtractor(), nil
}

// wireAnalyzer builds the tokenizer from the stop word and stemmer flags.
func (s *stack) wireAnalyzer(f *corpusFlags) error {
	stop := sitesearch.DefaultStopwords()
	if len(f.Stopwords) > 0 {
		stop = sitesearch.NewStopwordSet(f.Stopwords)
	}
	for _, w := range f.StopwordsExtra {
		stop[strings.ToLower(w)] = struct{}{}
	}

	var opts []sitesearch.TokenizerOption
	if f.Stem {
		filter, err := snowball.NewFilter(f.Language)
		if err != nil {
			return err
		}
		opts = append(opts, sitesearch.WithTermFilter(filter))
	}

	s.analyzer = sitesearch.NewTokenizer(stop, opts...)
	return nil
}

// crawlAndIndex runs the crawl and builds the searchable corpus.
func (s *stack) crawlAndIndex(ctx context.Context, progress crawl.ProgressFunc) (*crawl.Result, *index.Corpus, error) {
	seeds, err := s.seeds.Seeds(ctx)
	if err != nil {
		return nil, nil, err
	}

	result, err := s.crawler.Crawl(ctx, seeds, progress)
	if err != nil {
		return nil, nil, err
	}

	return result, index.Build(result.Documents, result.Graph), nil
}

// engine builds the query engine over a built corpus.
func (s *stack) engine(corpus *index.Corpus, deps *Dependencies) sitesearch.Searcher {
	var searcher sitesearch.Searcher = search.NewEngine(corpus, s.analyzer, s.scorer, s.match)
	if deps.Verbose {
		searcher = ssslog.NewLoggingSearcher(searcher, deps.Logger)
	}
	return searcher
}

// Close releases the archive connection if one was opened.
func (s *stack) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// sitemapSeeds reads the crawl frontier from a local XML sitemap.
type sitemapSeeds struct {
	path string
}

// Seeds returns the page identifiers listed in the sitemap.
func (s sitemapSeeds) Seeds(ctx context.Context) ([]sitesearch.DocumentID, error) {
	return fs.ReadSitemap(s.path)
}

// progressReporter prints skipped pages as the crawl proceeds.
func progressReporter(deps *Dependencies) crawl.ProgressFunc {
	return func(event crawl.ProgressEvent) {
		if event.Type == crawl.ProgressFailed {
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.ID, event.Error)
		}
	}
}
