// file: internal/catalog/search.go
// version: 1.0.0
// guid: 3e5a7c9d-1f20-44e6-a8da-02b4c6d8e0f2

package catalog

import (
	"fmt"

	"github.com/blevesearch/bleve/v2"
	"github.com/rs/zerolog/log"

	"github.com/thriftpick/thriftpick/internal/models"
)

// searchDoc is the projection of an item that gets indexed for
// full-text search.
type searchDoc struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Style       string `json:"style"`
	Material    string `json:"material"`
	Description string `json:"description"`
}

// SearchHit pairs an item with its full-text relevance score.
type SearchHit struct {
	Item  models.Item
	Score float64
}

// SearchIndex is an in-memory full-text index over one catalog.
type SearchIndex struct {
	index bleve.Index
	byID  map[string]models.Item
}

// NewSearchIndex indexes the catalog's id, name, category, style,
// material, and description fields in memory. Callers own the index
// and must Close it.
func (c *Catalog) NewSearchIndex() (*SearchIndex, error) {
	mapping := bleve.NewIndexMapping()
	index, err := bleve.NewMemOnly(mapping)
	if err != nil {
		return nil, fmt.Errorf("failed to create search index: %w", err)
	}

	byID := make(map[string]models.Item, len(c.items))
	for _, item := range c.items {
		doc := searchDoc{
			ID:          item.ID,
			Name:        item.Name,
			Category:    item.Category,
			Style:       item.Style,
			Material:    item.Material,
			Description: item.Description,
		}
		if err := index.Index(item.ID, doc); err != nil {
			index.Close()
			return nil, fmt.Errorf("failed to index item %s: %w", item.ID, err)
		}
		byID[item.ID] = item
	}
	log.Debug().Int("items", len(byID)).Msg("search index built")

	return &SearchIndex{index: index, byID: byID}, nil
}

// Search runs a fuzzy match query over the indexed fields and returns
// up to limit hits in descending relevance order.
func (s *SearchIndex) Search(query string, limit int) ([]SearchHit, error) {
	if limit <= 0 {
		limit = 10
	}
	match := bleve.NewMatchQuery(query)
	match.SetFuzziness(1)
	req := bleve.NewSearchRequestOptions(match, limit, 0, false)

	res, err := s.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	hits := make([]SearchHit, 0, len(res.Hits))
	for _, hit := range res.Hits {
		item, ok := s.byID[hit.ID]
		if !ok {
			continue
		}
		hits = append(hits, SearchHit{Item: item, Score: hit.Score})
	}
	return hits, nil
}

// Close releases the index resources.
func (s *SearchIndex) Close() error {
	return s.index.Close()
}
