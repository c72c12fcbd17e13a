package sitesearch

// MatchMode selects how candidate documents are gathered from postings.
type MatchMode string

// MatchMode values.
const (
	// MatchAny keeps every document containing at least one query term.
	MatchAny MatchMode = "any"

	// MatchAll keeps only documents containing every known query term.
	MatchAll MatchMode = "all"
)

// ParseMatchMode validates a match mode string. An empty string maps to
// MatchAny. Returns EINVALID for unknown values.
func ParseMatchMode(s string) (MatchMode, error) {
	switch MatchMode(s) {
	case "":
		return MatchAny, nil
	case MatchAny, MatchAll:
		return MatchMode(s), nil
	}
	return "", Errorf(EINVALID, "unknown match mode %q (want %q or %q)", s, MatchAny, MatchAll)
}

// RankMode selects the per-term scoring function.
type RankMode string

// RankMode values.
const (
	// RankTFIDF scores each term by term frequency weighted with inverse
	// document frequency.
	RankTFIDF RankMode = "tfidf"

	// RankFrequency scores each term by its raw occurrence count.
	RankFrequency RankMode = "freq"
)

// ParseRankMode validates a rank mode string. An empty string maps to
// RankTFIDF. Returns EINVALID for unknown values.
func ParseRankMode(s string) (RankMode, error) {
	switch RankMode(s) {
	case "":
		return RankTFIDF, nil
	case RankTFIDF, RankFrequency:
		return RankMode(s), nil
	}
	return "", Errorf(EINVALID, "unknown rank mode %q (want %q or %q)", s, RankTFIDF, RankFrequency)
}

// DefaultLinkBonus is the score added per inbound link to documents that
// match at least one query term.
const DefaultLinkBonus = 0.1
