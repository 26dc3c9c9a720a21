package plaid

import (
	"context"
	"time"

	"github.com/codesagesllc/my-budget-planner-sub002/internal/model"
	"github.com/codesagesllc/my-budget-planner-sub002/internal/service"
)

// MockClient is a mock implementation of service.TransactionFetcher for
// testing.
type MockClient struct {
	GetTransactionsFunc func(ctx context.Context, startDate, endDate time.Time) ([]model.Transaction, error)
	GetAccountsFunc     func(ctx context.Context) ([]string, error)

	// Call tracking
	GetTransactionsCalls []GetTransactionsCall
	GetAccountsCalls     int
}

// GetTransactionsCall records the arguments of a GetTransactions call.
type GetTransactionsCall struct {
	StartDate time.Time
	EndDate   time.Time
}

var _ service.TransactionFetcher = (*MockClient)(nil)

// GetTransactions calls the mock function if set, otherwise returns empty.
func (m *MockClient) GetTransactions(ctx context.Context, startDate, endDate time.Time) ([]model.Transaction, error) {
	m.GetTransactionsCalls = append(m.GetTransactionsCalls, GetTransactionsCall{
		StartDate: startDate,
		EndDate:   endDate,
	})
	if m.GetTransactionsFunc != nil {
		return m.GetTransactionsFunc(ctx, startDate, endDate)
	}
	return []model.Transaction{}, nil
}

// GetAccounts calls the mock function if set, otherwise returns empty.
func (m *MockClient) GetAccounts(ctx context.Context) ([]string, error) {
	m.GetAccountsCalls++
	if m.GetAccountsFunc != nil {
		return m.GetAccountsFunc(ctx)
	}
	return []string{}, nil
}
