// Package stats records rule-trigger telemetry in a local SQLite
// database, so an operator running corrector-server can see which
// grammar/spelling rules fire most often without standing up a
// separate metrics stack.
package stats

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Store records correction telemetry in a SQLite file.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the SQLite database at path and
// ensures its schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("stats: open %s: %w", path, err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	const schema = `
CREATE TABLE IF NOT EXISTS rule_triggers (
	language   TEXT NOT NULL,
	rule_id    INTEGER NOT NULL,
	rule_kind  TEXT NOT NULL, -- 'spelling' or 'grammar'
	count      INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (language, rule_id, rule_kind)
);`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("stats: migrate: %w", err)
	}
	return nil
}

// RecordGrammarTrigger increments the trigger count for a grammar rule
// ID under a language code (the RuleID constants defined in e.g.
// spanish/pipeline.go).
func (s *Store) RecordGrammarTrigger(language string, ruleID int) error {
	return s.bump(language, ruleID, "grammar")
}

// RecordSpellingTrigger increments the trigger count for the spelling
// corrector firing on a language (the spelling engine has no per-rule IDs, so
// spelling triggers are tracked under a single ruleID of 0).
func (s *Store) RecordSpellingTrigger(language string) error {
	return s.bump(language, 0, "spelling")
}

func (s *Store) bump(language string, ruleID int, kind string) error {
	const stmt = `
INSERT INTO rule_triggers (language, rule_id, rule_kind, count)
VALUES (?, ?, ?, 1)
ON CONFLICT (language, rule_id, rule_kind) DO UPDATE SET count = count + 1;`
	if _, err := s.db.Exec(stmt, language, ruleID, kind); err != nil {
		return fmt.Errorf("stats: record %s/%d/%s: %w", language, ruleID, kind, err)
	}
	return nil
}

// RuleCount is one row of a trigger-count report.
type RuleCount struct {
	Language string
	RuleID   int
	Kind     string
	Count    int
}

// TopRules returns the limit most-triggered rules across all languages,
// most-triggered first.
func (s *Store) TopRules(limit int) ([]RuleCount, error) {
	rows, err := s.db.Query(
		`SELECT language, rule_id, rule_kind, count FROM rule_triggers ORDER BY count DESC LIMIT ?;`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("stats: top rules: %w", err)
	}
	defer rows.Close()

	var out []RuleCount
	for rows.Next() {
		var rc RuleCount
		if err := rows.Scan(&rc.Language, &rc.RuleID, &rc.Kind, &rc.Count); err != nil {
			return nil, fmt.Errorf("stats: scan: %w", err)
		}
		out = append(out, rc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("stats: rows: %w", err)
	}
	return out, nil
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
