package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/codesagesllc/my-budget-planner-sub002/internal/common"
	"github.com/codesagesllc/my-budget-planner-sub002/internal/model"
)

// ListExistingRecords returns the persisted bills and income sources used
// to suppress duplicate suggestions.
func (s *Store) ListExistingRecords(ctx context.Context) ([]model.ExistingRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, amount, frequency FROM bills
		UNION ALL
		SELECT name, amount, frequency FROM income_sources
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query existing records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.ExistingRecord
	for rows.Next() {
		var rec model.ExistingRecord
		var freq string
		if err := rows.Scan(&rec.Name, &rec.Amount, &freq); err != nil {
			return nil, fmt.Errorf("failed to scan existing record: %w", err)
		}
		rec.Frequency = model.Frequency(freq)
		records = append(records, rec)
	}

	return records, rows.Err()
}

// SavePatterns records the results of a detection run.
func (s *Store) SavePatterns(ctx context.Context, patterns []model.DetectedPattern) error {
	if len(patterns) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO detected_patterns (
			name, amount, frequency, confidence, categories,
			occurrence_count, first_seen, last_seen, source_ids, is_recurring
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, p := range patterns {
		categories, err := json.Marshal(p.Categories)
		if err != nil {
			return fmt.Errorf("failed to marshal categories: %w", err)
		}
		sourceIDs, err := json.Marshal(p.SourceTransactionIDs)
		if err != nil {
			return fmt.Errorf("failed to marshal source IDs: %w", err)
		}

		if _, err := stmt.ExecContext(ctx,
			p.Name, p.RepresentativeAmount, string(p.Frequency), p.Confidence,
			string(categories), p.OccurrenceCount, p.FirstSeen, p.LastSeen,
			string(sourceIDs), p.IsRecurring,
		); err != nil {
			return fmt.Errorf("failed to save pattern %q: %w", p.Name, err)
		}
	}

	return tx.Commit()
}

// ListPatterns returns all stored detection results, newest run first.
func (s *Store) ListPatterns(ctx context.Context) ([]model.DetectedPattern, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, amount, frequency, confidence, categories,
		       occurrence_count, first_seen, last_seen, source_ids, is_recurring
		FROM detected_patterns
		ORDER BY detected_at DESC, is_recurring DESC, confidence DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query patterns: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var patterns []model.DetectedPattern
	for rows.Next() {
		var p model.DetectedPattern
		var freq, categories, sourceIDs string
		var firstSeen, lastSeen sql.NullTime

		if err := rows.Scan(&p.Name, &p.RepresentativeAmount, &freq, &p.Confidence,
			&categories, &p.OccurrenceCount, &firstSeen, &lastSeen,
			&sourceIDs, &p.IsRecurring); err != nil {
			return nil, fmt.Errorf("failed to scan pattern: %w", err)
		}

		p.Frequency = model.Frequency(freq)
		if firstSeen.Valid {
			p.FirstSeen = firstSeen.Time
		}
		if lastSeen.Valid {
			p.LastSeen = lastSeen.Time
		}
		if err := json.Unmarshal([]byte(categories), &p.Categories); err != nil {
			return nil, fmt.Errorf("failed to unmarshal categories: %w", err)
		}
		if err := json.Unmarshal([]byte(sourceIDs), &p.SourceTransactionIDs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal source IDs: %w", err)
		}

		patterns = append(patterns, p)
	}

	return patterns, rows.Err()
}

// AcceptPattern promotes a stored detected pattern into a first-class
// bill or income source, based on its category tags.
func (s *Store) AcceptPattern(ctx context.Context, patternID int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var name, freq, categoriesJSON string
	var amount float64
	var acceptedAt sql.NullTime
	err = tx.QueryRowContext(ctx, `
		SELECT name, amount, frequency, categories, accepted_at
		FROM detected_patterns WHERE id = ?
	`, patternID).Scan(&name, &amount, &freq, &categoriesJSON, &acceptedAt)
	if err == sql.ErrNoRows {
		return fmt.Errorf("pattern %d: %w", patternID, common.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to load pattern %d: %w", patternID, err)
	}
	if acceptedAt.Valid {
		return fmt.Errorf("pattern %d: %w", patternID, common.ErrDuplicateEntry)
	}

	var categories []string
	if err := json.Unmarshal([]byte(categoriesJSON), &categories); err != nil {
		return fmt.Errorf("failed to unmarshal categories: %w", err)
	}

	if slices.Contains(categories, "income") {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO income_sources (name, amount, frequency) VALUES (?, ?, ?)
		`, name, amount, freq)
	} else {
		category := ""
		if len(categories) > 0 {
			category = categories[0]
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO bills (name, amount, frequency, category) VALUES (?, ?, ?, ?)
		`, name, amount, freq, category)
	}
	if err != nil {
		return fmt.Errorf("failed to accept pattern %d: %w", patternID, err)
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE detected_patterns SET accepted_at = CURRENT_TIMESTAMP WHERE id = ?
	`, patternID); err != nil {
		return fmt.Errorf("failed to mark pattern %d accepted: %w", patternID, err)
	}

	return tx.Commit()
}
