package ledger

import (
	"sort"
	"time"

	"github.com/A-M-Ahmed/fintrack-finance/internal/models"
)

// DailyPoint is one chart point: income and expense summed for one
// calendar date.
type DailyPoint struct {
	Date    string  `json:"date"` // YYYY-MM-DD
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// Summary is the dashboard projection over wallets and transactions.
type Summary struct {
	TotalBalance       float64              `json:"totalBalance"`
	TotalIncome        float64              `json:"totalIncome"`
	TotalExpense       float64              `json:"totalExpense"`
	RecentTransactions []models.Transaction `json:"recentTransactions"`
	ChartData          []DailyPoint         `json:"chartData"`
}

// Summary aggregates the owner's ledger state for display. TotalBalance is
// always current and ignores the range; income/expense totals and the chart
// cover [now-range, now]. Transfers count in neither total, matching the
// upstream reporting behavior.
func (s *Service) Summary(ownerID uint, rng string) (*Summary, error) {
	q := s.DB.Where("user_id = ?", ownerID)
	switch rng {
	case "7d":
		q = q.Where("date >= ?", time.Now().AddDate(0, 0, -7))
	case "all":
		// no lower bound
	default: // "30d" and anything unrecognized
		q = q.Where("date >= ?", time.Now().AddDate(0, 0, -30))
	}

	var transactions []models.Transaction
	if err := q.Find(&transactions).Error; err != nil {
		return nil, err
	}

	summary := &Summary{}

	var wallets []models.Wallet
	if err := s.DB.Where("user_id = ?", ownerID).Find(&wallets).Error; err != nil {
		return nil, err
	}
	for _, w := range wallets {
		summary.TotalBalance += w.CurrentBalance
	}

	chartMap := make(map[string]*DailyPoint)
	for i := range transactions {
		t := &transactions[i]

		dateKey := t.Date.Format("2006-01-02")
		point, ok := chartMap[dateKey]
		if !ok {
			point = &DailyPoint{Date: dateKey}
			chartMap[dateKey] = point
		}

		switch t.Type {
		case models.TransactionTypeIncome:
			summary.TotalIncome += t.Amount
			point.Income += t.Amount
		case models.TransactionTypeExpense:
			summary.TotalExpense += t.Amount
			point.Expense += t.Amount
		}
	}

	summary.ChartData = make([]DailyPoint, 0, len(chartMap))
	for _, point := range chartMap {
		summary.ChartData = append(summary.ChartData, *point)
	}
	sort.Slice(summary.ChartData, func(i, j int) bool {
		return summary.ChartData[i].Date < summary.ChartData[j].Date
	})

	recent := make([]models.Transaction, 0, 5)
	if err := s.DB.Where("user_id = ?", ownerID).
		Preload("Wallet").
		Order("date DESC, id DESC").
		Limit(5).
		Find(&recent).Error; err != nil {
		return nil, err
	}
	summary.RecentTransactions = recent

	return summary, nil
}
