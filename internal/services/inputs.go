package services

type FinancialGoalInput struct {
	MonthlyFloor     *int `json:"monthlyFloor" validate:"required,gte=0"`
	MonthlyExpansion *int `json:"monthlyExpansion" validate:"required,gte=0"`
	MonthlySavings   *int `json:"monthlySavings" validate:"required,gte=0"`
	ActualRevenue    *int `json:"actualRevenue" validate:"omitempty,gte=0"`
}

type RevenueSourceInput struct {
	Name        string `json:"name" validate:"min=1,max=255"`
	Amount      *int   `json:"amount" validate:"required,gte=0"`
	Frequency   string `json:"frequency" validate:"omitempty,oneof=once daily weekly monthly yearly"`
	Description string `json:"description"`
	Date        string `json:"date" validate:"omitempty,calendarday"`
}

type RevenueSourcePatch struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Amount      *int    `json:"amount" validate:"omitempty,gte=0"`
	Frequency   *string `json:"frequency" validate:"omitempty,oneof=once daily weekly monthly yearly"`
	Description *string `json:"description"`
	Date        *string `json:"date" validate:"omitempty,calendarday"`
}

type ExpenseInput struct {
	Name        string `json:"name" validate:"min=1,max=255"`
	Amount      *int   `json:"amount" validate:"required,gte=0"`
	Category    string `json:"category" validate:"omitempty,oneof=logement nourriture transport sante loisirs autres"`
	Description string `json:"description"`
	Date        string `json:"date" validate:"omitempty,calendarday"`
}

type ExpensePatch struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Amount      *int    `json:"amount" validate:"omitempty,gte=0"`
	Category    *string `json:"category" validate:"omitempty,oneof=logement nourriture transport sante loisirs autres"`
	Description *string `json:"description"`
	Date        *string `json:"date" validate:"omitempty,calendarday"`
}

type ProjectInput struct {
	Title             string  `json:"title" validate:"min=1,max=255"`
	Description       string  `json:"description"`
	Status            string  `json:"status" validate:"omitempty,oneof=exploration production consolidation completed paused"`
	SatisfactionLevel *int    `json:"satisfactionLevel" validate:"omitempty,min=1,max=10"`
	StartDate         *string `json:"startDate" validate:"omitempty,calendarday"`
	EndDate           *string `json:"endDate" validate:"omitempty,calendarday"`
}

type ProjectPatch struct {
	Title             *string `json:"title" validate:"omitempty,min=1,max=255"`
	Description       *string `json:"description"`
	Status            *string `json:"status" validate:"omitempty,oneof=exploration production consolidation completed paused"`
	SatisfactionLevel *int    `json:"satisfactionLevel" validate:"omitempty,min=1,max=10"`
	StartDate         *string `json:"startDate" validate:"omitempty,calendarday"`
	EndDate           *string `json:"endDate" validate:"omitempty,calendarday"`
}

type ProjectActionInput struct {
	Title       string  `json:"title" validate:"min=1,max=255"`
	Description string  `json:"description"`
	Completed   bool    `json:"completed"`
	DueDate     *string `json:"dueDate" validate:"omitempty,calendarday"`
}

type ProjectActionPatch struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
	DueDate     *string `json:"dueDate" validate:"omitempty,calendarday"`
}

type CycleInput struct {
	Title     string `json:"title" validate:"min=1,max=255"`
	Phase     string `json:"phase" validate:"omitempty,oneof=exploration production consolidation meta"`
	StartDate string `json:"startDate" validate:"omitempty,calendarday"`
	EndDate   string `json:"endDate" validate:"omitempty,calendarday"`
	Notes     string `json:"notes"`
}

type CyclePatch struct {
	Title     *string `json:"title" validate:"omitempty,min=1,max=255"`
	Phase     *string `json:"phase" validate:"omitempty,oneof=exploration production consolidation meta"`
	StartDate *string `json:"startDate" validate:"omitempty,calendarday"`
	EndDate   *string `json:"endDate" validate:"omitempty,calendarday"`
	Notes     *string `json:"notes"`
}

type WeeklyProgressInput struct {
	WeekNumber    int    `json:"weekNumber" validate:"min=1,max=6"`
	WeekStartDate string `json:"weekStartDate" validate:"omitempty,calendarday"`
	Notes         string `json:"notes"`
	Deliverables  string `json:"deliverables"`
}

type ReflectionInput struct {
	Quarter         string `json:"quarter" validate:"quarterkey"`
	CreateScore     *int   `json:"createScore" validate:"omitempty,min=1,max=10"`
	TeachScore      *int   `json:"teachScore" validate:"omitempty,min=1,max=10"`
	EarnScore       *int   `json:"earnScore" validate:"omitempty,min=1,max=10"`
	AlignmentPhrase string `json:"alignmentPhrase"`
	Notes           string `json:"notes"`
}

type RoutineInput struct {
	Date                string `json:"date" validate:"calendarday"`
	MorningCompleted    bool   `json:"morningCompleted"`
	BeforeWorkCompleted bool   `json:"beforeWorkCompleted"`
	EndOfDayCompleted   bool   `json:"endOfDayCompleted"`
	Notes               string `json:"notes"`
}

type RegisterInput struct {
	Name     string `json:"name" validate:"max=255"`
	Email    string `json:"email" validate:"required,email,max=320"`
	Password string `json:"password" validate:"required"`
}
