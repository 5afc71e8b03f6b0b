// Package report derives the admin dashboard view-model from a full user
// listing. It is a stateless transform: deterministic for a given input and
// never mutating it.
package report

import (
	"time"

	"ledger_system/internal/domain"
)

// UserSummary is one dashboard row.
type UserSummary struct {
	ID               uint   `json:"id"`
	Username         string `json:"username"`
	TransactionCount int    `json:"transaction_count"`
}

// ChartSeries holds the flattened (timestamp, amount) pairs of every
// transaction, user-major then transaction-minor, not sorted by time.
type ChartSeries struct {
	Dates   []string  `json:"dates"`
	Amounts []float64 `json:"amounts"`
}

// Dashboard aggregates counts, sums and per-user rows over all users.
type Dashboard struct {
	TotalTransactions int           `json:"total_transactions"`
	TotalAmount       float64       `json:"total_amount"`
	Users             []UserSummary `json:"users"`
	Chart             ChartSeries   `json:"chart"`
}

// Build folds the listing into a Dashboard in one pass. Amounts are summed
// as stored; debits are not negated unless the caller encoded a sign.
func Build(users []domain.User) Dashboard {
	d := Dashboard{
		Users: make([]UserSummary, 0, len(users)),
		Chart: ChartSeries{Dates: []string{}, Amounts: []float64{}},
	}
	for _, u := range users {
		d.Users = append(d.Users, UserSummary{
			ID:               u.ID,
			Username:         u.Username,
			TransactionCount: len(u.Transactions),
		})
		d.TotalTransactions += len(u.Transactions)
		for _, t := range u.Transactions {
			d.TotalAmount += t.Amount
			d.Chart.Dates = append(d.Chart.Dates, t.Timestamp.Format(time.RFC3339))
			d.Chart.Amounts = append(d.Chart.Amounts, t.Amount)
		}
	}
	return d
}
