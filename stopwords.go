package sitesearch

// defaultStopwords is the built-in English stop word list. Common function
// words that carry no retrieval signal.
var defaultStopwords = []string{
	"a", "an", "the", "and", "or", "but", "in", "on", "at", "to", "for", "with", "by", "of",
	"is", "was", "were", "am", "are", "be", "been", "being", "have", "has", "had", "do",
	"does", "did", "will", "would", "shall", "should", "may", "might", "must", "can",
	"could", "i", "you", "he", "she", "it", "we", "they", "them", "their", "his", "her",
	"its", "our", "your", "my", "mine", "yours", "ours", "this", "that", "these", "those",
	"from", "as", "if", "then", "else", "when", "where", "why", "how", "all", "any", "both",
	"each", "few", "more", "most", "some", "such", "up", "down", "over", "under", "again",
	"further", "off", "out", "into", "onto", "about", "between", "during", "before",
	"after", "above", "below", "through", "while", "against", "nor", "only", "own",
	"same", "too", "very", "also",
}

// DefaultStopwords returns the built-in stop word set. Each call returns a
// fresh set; callers may extend it without affecting others.
func DefaultStopwords() StopwordSet {
	return NewStopwordSet(defaultStopwords)
}
