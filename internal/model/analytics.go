package model

// Analytics is the derived snapshot shown on the analytics screen. It is
// recomputed from the current expense/goal collections on every request and
// never stored.
type Analytics struct {
	TotalExpenses     float64            `json:"totalExpenses"`
	MonthlyExpenses   float64            `json:"monthlyExpenses"`
	CategoryBreakdown map[string]float64 `json:"categoryBreakdown"`
	GoalProgress      float64            `json:"goalProgress"`
	ExpenseCount      int                `json:"expenseCount"`
	ActiveGoals       int                `json:"activeGoals"`
	CompletedGoals    int                `json:"completedGoals"`
}
