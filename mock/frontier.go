package mock

import "github.com/fwojciec/sitesearch"

var _ sitesearch.Frontier = (*Frontier)(nil)

// Frontier is a mock implementation of sitesearch.Frontier.
type Frontier struct {
	PushFn func(id sitesearch.DocumentID) bool
	PopFn  func() (sitesearch.DocumentID, bool)
	LenFn  func() int
	SeenFn func(id sitesearch.DocumentID) bool
}

func (f *Frontier) Push(id sitesearch.DocumentID) bool {
	return f.PushFn(id)
}

func (f *Frontier) Pop() (sitesearch.DocumentID, bool) {
	return f.PopFn()
}

func (f *Frontier) Len() int {
	return f.LenFn()
}

func (f *Frontier) Seen(id sitesearch.DocumentID) bool {
	return f.SeenFn(id)
}
