// Package budget computes spending summaries for a trip's expense list.
package budget

import (
	"sort"

	"tripplanner/internal/models"
)

// PayerTotal represents one payer's aggregate spending on a trip.
type PayerTotal struct {
	PayerID int64
	Total   float64
}

// Summary represents a trip's spending measured against its budget.
type Summary struct {
	// TotalSpent is the sum of all expense amounts.
	TotalSpent float64

	// Remaining is budget minus TotalSpent. Negative when over budget.
	Remaining float64

	// OverBudget is true when spending exceeds the budget. A trip with no
	// budget set (zero) is over as soon as anything is spent.
	OverBudget bool

	// PerPayer aggregates spending by payer, ordered by payer ID.
	PerPayer []PayerTotal

	// AveragePerPerson is TotalSpent divided across the trip's headcount
	// (organizer plus members). Zero when headcount is zero.
	AveragePerPerson float64
}

// Summarize aggregates the expenses against the given budget.
// headcount is the number of people sharing the trip (organizer + members).
func Summarize(budgetAmount float64, expenses []models.Expense, headcount int) Summary {
	totals := make(map[int64]float64)
	var spent float64

	for _, e := range expenses {
		spent += e.Amount
		totals[e.PayerID] += e.Amount
	}

	perPayer := make([]PayerTotal, 0, len(totals))
	for payerID, total := range totals {
		perPayer = append(perPayer, PayerTotal{PayerID: payerID, Total: total})
	}
	sort.Slice(perPayer, func(i, j int) bool {
		return perPayer[i].PayerID < perPayer[j].PayerID
	})

	summary := Summary{
		TotalSpent: spent,
		Remaining:  budgetAmount - spent,
		OverBudget: spent > budgetAmount,
		PerPayer:   perPayer,
	}
	if headcount > 0 {
		summary.AveragePerPerson = spent / float64(headcount)
	}
	return summary
}
