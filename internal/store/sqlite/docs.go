package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"nexusportal/internal/portal"
	"nexusportal/internal/store"
)

func (c *Client) GetKnowledgeDoc(ctx context.Context, id string) (*portal.KnowledgeDoc, error) {
	row := c.db.QueryRowContext(ctx,
		`SELECT id, title, doc_type, last_updated, content, tags
		 FROM knowledge_docs WHERE id = ?`, id)

	var d portal.KnowledgeDoc
	var tagsBytes []byte
	err := row.Scan(&d.ID, &d.Title, &d.Type, &d.LastUpdated, &d.Content, &tagsBytes)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting knowledge doc: %w: %w", store.ErrUnavailable, err)
	}
	if err := unmarshalTags(tagsBytes, &d.Tags); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *Client) ListKnowledgeDocs(ctx context.Context) ([]portal.KnowledgeDoc, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT id, title, doc_type, last_updated, content, tags
		 FROM knowledge_docs ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing knowledge docs: %w: %w", store.ErrUnavailable, err)
	}
	defer rows.Close()

	docs := make([]portal.KnowledgeDoc, 0)
	for rows.Next() {
		var d portal.KnowledgeDoc
		var tagsBytes []byte
		if err := rows.Scan(&d.ID, &d.Title, &d.Type, &d.LastUpdated, &d.Content, &tagsBytes); err != nil {
			return nil, fmt.Errorf("scanning knowledge doc: %w: %w", store.ErrUnavailable, err)
		}
		if err := unmarshalTags(tagsBytes, &d.Tags); err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating knowledge docs: %w: %w", store.ErrUnavailable, err)
	}
	return docs, nil
}

func (c *Client) AddKnowledgeDoc(ctx context.Context, d portal.KnowledgeDoc) error {
	return c.add(ctx, "knowledge_docs", d.ID, func(tx *sql.Tx) error {
		return c.writeKnowledgeDoc(ctx, tx, d)
	})
}

func (c *Client) PutKnowledgeDoc(ctx context.Context, d portal.KnowledgeDoc) error {
	return c.put(ctx, func(tx *sql.Tx) error {
		return c.writeKnowledgeDoc(ctx, tx, d)
	})
}

func (c *Client) writeKnowledgeDoc(ctx context.Context, tx *sql.Tx, d portal.KnowledgeDoc) error {
	tagsJSON, err := json.Marshal(d.Tags)
	if err != nil {
		return fmt.Errorf("marshaling tags: %w", err)
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO knowledge_docs (id, title, doc_type, last_updated, content, tags)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
			title = excluded.title,
			doc_type = excluded.doc_type,
			last_updated = excluded.last_updated,
			content = excluded.content,
			tags = excluded.tags`,
		d.ID, d.Title, d.Type, d.LastUpdated, d.Content, tagsJSON)
	if err != nil {
		return fmt.Errorf("writing knowledge doc: %w: %w", store.ErrUnavailable, err)
	}
	return nil
}

func (c *Client) DeleteKnowledgeDoc(ctx context.Context, id string) error {
	return c.deleteByID(ctx, "knowledge_docs", id)
}

func unmarshalTags(raw []byte, tags *[]string) error {
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, tags); err != nil {
			return fmt.Errorf("unmarshaling tags: %w", err)
		}
	}
	if *tags == nil {
		*tags = []string{}
	}
	return nil
}
