package sitesearch

// LinkGraph records the hyperlink structure discovered during a crawl:
// outbound adjacency per source and, per target, the number of distinct
// documents linking to it.
//
// The crawl coordinator is the only writer. Once the crawl finishes the
// graph is read-only and safe for concurrent readers.
type LinkGraph struct {
	outbound map[DocumentID][]DocumentID
	inbound  map[DocumentID]int
}

// NewLinkGraph creates an empty graph.
func NewLinkGraph() *LinkGraph {
	return &LinkGraph{
		outbound: make(map[DocumentID][]DocumentID),
		inbound:  make(map[DocumentID]int),
	}
}

// Add records the outbound links of src. Repeated targets collapse to a
// single edge, so a source contributes at most one inbound count per
// target. Self-references stay in the adjacency but never count toward
// inbound. A second Add for the same source is ignored.
func (g *LinkGraph) Add(src DocumentID, targets []DocumentID) {
	if _, ok := g.outbound[src]; ok {
		return
	}

	seen := make(map[DocumentID]struct{}, len(targets))
	edges := make([]DocumentID, 0, len(targets))
	for _, t := range targets {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		edges = append(edges, t)
		if t != src {
			g.inbound[t]++
		}
	}
	g.outbound[src] = edges
}

// Outbound returns the recorded outbound links of id in document order.
// Returns nil for sources never added.
func (g *LinkGraph) Outbound(id DocumentID) []DocumentID {
	return g.outbound[id]
}

// InboundCount returns the number of distinct documents linking to id.
// Unknown identifiers count zero.
func (g *LinkGraph) InboundCount(id DocumentID) int {
	return g.inbound[id]
}

// Sources returns the number of documents whose links have been recorded.
func (g *LinkGraph) Sources() int {
	return len(g.outbound)
}

// Edges returns the total number of recorded outbound edges.
func (g *LinkGraph) Edges() int {
	n := 0
	for _, targets := range g.outbound {
		n += len(targets)
	}
	return n
}
