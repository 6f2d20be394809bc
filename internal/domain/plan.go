package domain

import "time"

// WorkType классифицирует одну строку каталога работ (TOW).
type WorkType string

const (
	WorkTypeTask    WorkType = "task"
	WorkTypeCorpo   WorkType = "corpo"
	WorkTypeCanone  WorkType = "canone"
	WorkTypeConsumo WorkType = "consumo"
)

func ValidWorkType(t WorkType) bool {
	switch t {
	case WorkTypeTask, WorkTypeCorpo, WorkTypeCanone, WorkTypeConsumo:
		return true
	}
	return false
}

type BusinessPlan struct {
	ID             string
	Name           string
	DurationMonths int
	Members        []TeamMember
	Items          []WorkItem
	Adjustments    AdjustmentSet
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

type BusinessPlanShort struct {
	ID             string
	Name           string
	DurationMonths int
	CreatedAt      time.Time
}

type TeamMember struct {
	ProfileID string
	Label     string
	FTE       float64
	DailyRate float64
}

// WorkItem - одна позиция каталога работ.
// NumTasks имеет смысл только для type=task, DurationMonths - для corpo/canone.
type WorkItem struct {
	TowID          string
	Label          string
	Type           WorkType
	NumTasks       int
	DurationMonths float64
}
