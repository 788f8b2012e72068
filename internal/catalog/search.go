package catalog

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

const minSearchChars = 2

// searchCorpus flattens foods into one candidate string per item name and
// per search key so a query can hit either. The catalog is immutable, so it
// is built once at load time.
type searchCorpus struct {
	texts []string
	food  []int
}

func (s searchCorpus) Len() int            { return len(s.texts) }
func (s searchCorpus) String(i int) string { return s.texts[i] }

func buildSearchCorpus(ordered []*Food) searchCorpus {
	corpus := searchCorpus{}
	for i, f := range ordered {
		corpus.texts = append(corpus.texts, f.ItemName)
		corpus.food = append(corpus.food, i)
		for _, key := range f.SearchKeys {
			corpus.texts = append(corpus.texts, key)
			corpus.food = append(corpus.food, i)
		}
	}
	return corpus
}

// Search runs a fuzzy match over item names and search keys and returns the
// matching foods ranked best first. Queries shorter than two characters
// return nothing.
func (c *Catalog) Search(query string) []*Food {
	query = strings.TrimSpace(query)
	if len(query) < minSearchChars {
		return nil
	}

	matches := fuzzy.FindFrom(query, c.search)

	// A food can match on both its name and a search key; keep the first
	// (best scored) hit per food.
	seen := map[int]bool{}
	out := make([]*Food, 0, len(matches))
	for _, m := range matches {
		idx := c.search.food[m.Index]
		if seen[idx] {
			continue
		}
		seen[idx] = true
		out = append(out, c.ordered[idx])
	}
	return out
}
