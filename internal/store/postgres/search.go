package postgres

import (
	"context"
	"fmt"
	"strings"

	"nexusportal/internal/store"
)

// SearchKnowledge runs a full-text query over the knowledge base using the
// generated search vector. websearch_to_tsquery handles the same query
// syntax the sqlite backend converts by hand.
func (c *Client) SearchKnowledge(ctx context.Context, query string) ([]store.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("query must not be empty")
	}

	sqlQuery := `
	SELECT id, title, doc_type, tags,
		   ts_rank(search_vector, websearch_to_tsquery('english', $1)) AS score,
		   ts_headline('english', content, websearch_to_tsquery('english', $1),
			   'MaxFragments=2, MaxWords=40, MinWords=20, StartSel=**, StopSel=**') AS snippet
	FROM knowledge_docs
	WHERE search_vector @@ websearch_to_tsquery('english', $1)
	ORDER BY score DESC, id ASC
	LIMIT 50
	`

	rows, err := c.pool.Query(ctx, sqlQuery, query)
	if err != nil {
		return nil, fmt.Errorf("searching knowledge base: %w: %w", store.ErrUnavailable, err)
	}
	defer rows.Close()

	results := make([]store.SearchResult, 0)
	for rows.Next() {
		var r store.SearchResult
		var tagsBytes []byte
		if err := rows.Scan(&r.ID, &r.Title, &r.Type, &tagsBytes, &r.Score, &r.Snippet); err != nil {
			return nil, fmt.Errorf("scanning search result: %w: %w", store.ErrUnavailable, err)
		}
		if err := unmarshalTags(tagsBytes, &r.Tags); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating search results: %w: %w", store.ErrUnavailable, err)
	}
	return results, nil
}
