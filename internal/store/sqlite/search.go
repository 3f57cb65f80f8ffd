package sqlite

import (
	"context"
	"fmt"
	"strings"

	"nexusportal/internal/store"
)

// SearchKnowledge runs a full-text query over the knowledge base. Queries
// use websearch syntax: bare terms are ANDed, "-term" negates, quoted
// phrases match exactly, trailing * is a prefix match.
func (c *Client) SearchKnowledge(ctx context.Context, query string) ([]store.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("query must not be empty")
	}

	ftsQuery := convertWebsearchToFTS5(query)

	// bm25 scores are negative; a smaller value is a better match.
	sqlQuery := `
	SELECT d.id, d.title, d.doc_type, d.tags,
		   bm25(knowledge_fts, 10.0, 4.0, 1.0) AS score,
		   snippet(knowledge_fts, 2, '**', '**', '...', 50) AS snippet
	FROM knowledge_fts
	JOIN knowledge_docs d ON knowledge_fts.rowid = d.rowid
	WHERE knowledge_fts MATCH ?
	ORDER BY score ASC, d.id ASC
	LIMIT 50
	`

	rows, err := c.db.QueryContext(ctx, sqlQuery, ftsQuery)
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

func convertWebsearchToFTS5(query string) string {
	var result strings.Builder
	var inQuote bool
	var current strings.Builder

	flushToken := func() {
		token := current.String()
		current.Reset()
		if token == "" || strings.Trim(token, "-") == "" {
			return
		}

		upper := strings.ToUpper(token)
		switch upper {
		case "AND", "OR", "NOT":
			if result.Len() > 0 {
				result.WriteString(" ")
			}
			result.WriteString(upper)
			return
		}

		if result.Len() > 0 {
			last := lastWord(result.String())
			if last != "AND" && last != "OR" && last != "NOT" && last != "" {
				result.WriteString(" AND ")
			} else {
				result.WriteString(" ")
			}
		}

		if strings.HasPrefix(token, "-") && len(token) > 1 {
			result.WriteString("NOT ")
			result.WriteString(token[1:])
		} else {
			result.WriteString(token)
		}
	}

	for i := 0; i < len(query); i++ {
		ch := query[i]
		switch {
		case ch == '"':
			if inQuote {
				inQuote = false
				token := current.String()
				current.Reset()
				if token != "" {
					if result.Len() > 0 {
						result.WriteString(" AND ")
					}
					result.WriteString(`"`)
					result.WriteString(token)
					result.WriteString(`"`)
				}
			} else {
				flushToken()
				inQuote = true
			}
		case inQuote:
			current.WriteByte(ch)
		case ch == ' ' || ch == '\t':
			flushToken()
		default:
			current.WriteByte(ch)
		}
	}

	flushToken()

	return result.String()
}

func lastWord(s string) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}
	return words[len(words)-1]
}
