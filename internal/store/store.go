// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists finished blueprints as projects in a SQLite
// database: one project row, one canvas document for the block editor,
// and the flattened paper list backing the references.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/blueprint-engine/internal/blocks"
	"github.com/pdiddy/blueprint-engine/pkg/types"
)

// Store manages the projects SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path and ensures the schema.
func Open(cfg types.StoreConfig) (*Store, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS projects (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			title TEXT NOT NULL,
			query_topic TEXT,
			status TEXT NOT NULL DEFAULT 'draft',
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS workbench_content (
			project_id TEXT PRIMARY KEY REFERENCES projects(id),
			canvas_content TEXT NOT NULL,
			key_insights TEXT,
			tone_style TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS research_papers (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			project_id TEXT NOT NULL REFERENCES projects(id),
			paper_id TEXT,
			title TEXT,
			authors TEXT,
			year INTEGER,
			citation_count INTEGER,
			url TEXT,
			abstract TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_papers_project_id ON research_papers(project_id)`,
		`CREATE INDEX IF NOT EXISTS idx_projects_user_id ON projects(user_id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// SaveProjectRequest carries everything needed to persist a blueprint.
type SaveProjectRequest struct {
	UserID     string
	Title      string
	QueryTopic string
	Insights   []types.Insight
	Narrative  types.Narrative
	Papers     []types.Paper
}

// Project is a stored project row.
type Project struct {
	ID         string
	UserID     string
	Title      string
	QueryTopic string
	Status     string
	CreatedAt  time.Time
}

// SaveProject writes the project, its canvas document, and its papers
// in a single transaction and returns the new project ID.
func (s *Store) SaveProject(ctx context.Context, req SaveProjectRequest) (string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	projectID := uuid.NewString()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO projects (id, user_id, title, query_topic, status, created_at)
		 VALUES (?, ?, ?, ?, 'draft', ?)`,
		projectID, req.UserID, req.Title, req.QueryTopic,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("inserting project: %w", err)
	}

	canvas := blocks.FromBlueprint(req.Title, req.Narrative, req.Insights)
	canvasJSON, err := json.Marshal(canvas)
	if err != nil {
		return "", fmt.Errorf("encoding canvas content: %w", err)
	}
	insightTexts := make([]string, len(req.Insights))
	for i, in := range req.Insights {
		insightTexts[i] = in.Text
	}
	insightsJSON, _ := json.Marshal(insightTexts)

	_, err = tx.ExecContext(ctx,
		`INSERT INTO workbench_content (project_id, canvas_content, key_insights, tone_style)
		 VALUES (?, ?, ?, 'casual')`,
		projectID, string(canvasJSON), string(insightsJSON),
	)
	if err != nil {
		return "", fmt.Errorf("inserting canvas content: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO research_papers (project_id, paper_id, title, authors, year, citation_count, url, abstract)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("preparing paper insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range req.Papers {
		authorsJSON, _ := json.Marshal(p.Authors)
		_, err := stmt.ExecContext(ctx,
			projectID, p.PaperID, p.Title, string(authorsJSON),
			p.Year, p.CitationCount, p.URL, p.Abstract,
		)
		if err != nil {
			return "", fmt.Errorf("inserting paper %s: %w", p.PaperID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing project: %w", err)
	}
	return projectID, nil
}

// GetProject loads one project row by ID.
func (s *Store) GetProject(ctx context.Context, id string) (*Project, error) {
	var p Project
	var created string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, title, query_topic, status, created_at FROM projects WHERE id = ?`, id,
	).Scan(&p.ID, &p.UserID, &p.Title, &p.QueryTopic, &p.Status, &created)
	if err != nil {
		return nil, fmt.Errorf("loading project %s: %w", id, err)
	}
	p.CreatedAt, _ = time.Parse(time.RFC3339, created)
	return &p, nil
}

// ListProjects returns a user's projects, newest first.
func (s *Store) ListProjects(ctx context.Context, userID string) ([]Project, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, title, query_topic, status, created_at
		 FROM projects WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var out []Project
	for rows.Next() {
		var p Project
		var created string
		if err := rows.Scan(&p.ID, &p.UserID, &p.Title, &p.QueryTopic, &p.Status, &created); err != nil {
			return nil, fmt.Errorf("scanning project: %w", err)
		}
		p.CreatedAt, _ = time.Parse(time.RFC3339, created)
		out = append(out, p)
	}
	return out, rows.Err()
}

// LoadCanvas returns the stored block document for a project.
func (s *Store) LoadCanvas(ctx context.Context, projectID string) ([]blocks.Block, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT canvas_content FROM workbench_content WHERE project_id = ?`, projectID,
	).Scan(&raw)
	if err != nil {
		return nil, fmt.Errorf("loading canvas for %s: %w", projectID, err)
	}
	var doc []blocks.Block
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("decoding canvas for %s: %w", projectID, err)
	}
	return doc, nil
}

// ListPapers returns the papers saved with a project.
func (s *Store) ListPapers(ctx context.Context, projectID string) ([]types.Paper, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT paper_id, title, authors, year, citation_count, url, abstract
		 FROM research_papers WHERE project_id = ? ORDER BY rowid`, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing papers: %w", err)
	}
	defer rows.Close()

	var out []types.Paper
	for rows.Next() {
		var p types.Paper
		var authorsJSON string
		if err := rows.Scan(&p.PaperID, &p.Title, &authorsJSON, &p.Year, &p.CitationCount, &p.URL, &p.Abstract); err != nil {
			return nil, fmt.Errorf("scanning paper: %w", err)
		}
		if authorsJSON != "" {
			json.Unmarshal([]byte(authorsJSON), &p.Authors)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
