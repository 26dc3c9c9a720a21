package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/codesagesllc/my-budget-planner-sub002/internal/model"
	"github.com/codesagesllc/my-budget-planner-sub002/internal/service"
)

// SaveTransactions saves multiple transactions, ignoring duplicates by
// hash so re-importing the same statement is safe.
func (s *Store) SaveTransactions(ctx context.Context, transactions []model.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO transactions (
			id, hash, date, description, merchant_name, amount,
			direction, account_id, transaction_type
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, txn := range transactions {
		hash := txn.Hash
		if hash == "" {
			hash = txn.GenerateHash()
		}

		if _, err := stmt.ExecContext(ctx,
			txn.ID, hash, txn.Date, txn.Description, txn.MerchantName,
			txn.Amount, string(txn.Flow()), txn.AccountID, txn.Type,
		); err != nil {
			return fmt.Errorf("failed to save transaction %s: %w", txn.ID, err)
		}
	}

	return tx.Commit()
}

// GetTransactions returns stored transactions matching the filter, oldest
// first.
func (s *Store) GetTransactions(ctx context.Context, filter service.TransactionFilter) ([]model.Transaction, error) {
	query := `
		SELECT id, hash, date, description, merchant_name, amount,
		       direction, account_id, transaction_type
		FROM transactions`

	var conditions []string
	var args []any
	if filter.StartDate != nil {
		conditions = append(conditions, "date >= ?")
		args = append(args, *filter.StartDate)
	}
	if filter.EndDate != nil {
		conditions = append(conditions, "date <= ?")
		args = append(args, *filter.EndDate)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY date ASC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var transactions []model.Transaction
	for rows.Next() {
		var txn model.Transaction
		var date time.Time
		var merchantName, direction, accountID, txnType *string

		if err := rows.Scan(&txn.ID, &txn.Hash, &date, &txn.Description,
			&merchantName, &txn.Amount, &direction, &accountID, &txnType); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		txn.Date = date
		if merchantName != nil {
			txn.MerchantName = *merchantName
		}
		if direction != nil {
			txn.Direction = model.Direction(*direction)
		}
		if accountID != nil {
			txn.AccountID = *accountID
		}
		if txnType != nil {
			txn.Type = *txnType
		}

		transactions = append(transactions, txn)
	}

	return transactions, rows.Err()
}
