package models

import "time"

const (
	FrequencyOnce    = "once"
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
	FrequencyYearly  = "yearly"
)

const (
	CategoryHousing   = "logement"
	CategoryFood      = "nourriture"
	CategoryTransport = "transport"
	CategoryHealth    = "sante"
	CategoryLeisure   = "loisirs"
	CategoryOther     = "autres"
)

// FinancialGoal is the monthly floor/expansion plan, one row per user and month.
type FinancialGoal struct {
	ID               string    `gorm:"primaryKey;size:64" json:"id"`
	UserID           string    `gorm:"size:64;not null;uniqueIndex:uidx_financial_goals_user_month" json:"userId"`
	CurrentMonth     string    `gorm:"size:7;not null;uniqueIndex:uidx_financial_goals_user_month" json:"currentMonth"`
	MonthlyFloor     int       `gorm:"not null" json:"monthlyFloor"`
	MonthlyExpansion int       `gorm:"not null" json:"monthlyExpansion"`
	MonthlySavings   int       `gorm:"not null" json:"monthlySavings"`
	ActualRevenue    int       `gorm:"not null;default:0" json:"actualRevenue"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type RevenueSource struct {
	ID          string    `gorm:"primaryKey;size:64" json:"id"`
	UserID      string    `gorm:"size:64;not null;index" json:"userId"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Amount      int       `gorm:"not null" json:"amount"`
	Frequency   string    `gorm:"size:16;not null;default:once" json:"frequency"`
	Description string    `json:"description"`
	Date        time.Time `gorm:"not null" json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Expense struct {
	ID          string    `gorm:"primaryKey;size:64" json:"id"`
	UserID      string    `gorm:"size:64;not null;index" json:"userId"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Amount      int       `gorm:"not null" json:"amount"`
	Category    string    `gorm:"size:16;not null;default:autres" json:"category"`
	Description string    `json:"description"`
	Date        time.Time `gorm:"not null" json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func ExpenseCategories() []string {
	return []string{CategoryHousing, CategoryFood, CategoryTransport, CategoryHealth, CategoryLeisure, CategoryOther}
}
