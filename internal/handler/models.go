package handler

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type TeamMemberRequest struct {
	ProfileID string  `json:"profile_id"`
	Label     string  `json:"label"`
	FTE       float64 `json:"fte"`
	DailyRate float64 `json:"daily_rate"`
}

type WorkItemRequest struct {
	TowID          string  `json:"tow_id"`
	Label          string  `json:"label"`
	Type           string  `json:"type"`
	NumTasks       int     `json:"num_tasks,omitempty"`
	DurationMonths float64 `json:"duration_months,omitempty"`
}

type PlanRequest struct {
	PlanName       string              `json:"plan_name"`
	DurationMonths int                 `json:"duration_months"`
	Members        []TeamMemberRequest `json:"members"`
	Items          []WorkItemRequest   `json:"items"`
}

type TeamMemberResponse struct {
	ProfileID string  `json:"profile_id"`
	Label     string  `json:"label"`
	FTE       float64 `json:"fte"`
	DailyRate float64 `json:"daily_rate"`
}

type WorkItemResponse struct {
	TowID          string  `json:"tow_id"`
	Label          string  `json:"label"`
	Type           string  `json:"type"`
	NumTasks       int     `json:"num_tasks,omitempty"`
	DurationMonths float64 `json:"duration_months,omitempty"`
}

type AdjustmentPeriodResponse struct {
	MonthStart int                `json:"month_start"`
	MonthEnd   int                `json:"month_end"`
	ByProfile  map[string]float64 `json:"by_profile"`
	ByTow      map[string]float64 `json:"by_tow"`
}

type AdjustmentSetResponse struct {
	Periods []AdjustmentPeriodResponse `json:"periods"`
}

type PlanResponse struct {
	PlanID         string                `json:"plan_id"`
	PlanName       string                `json:"plan_name"`
	DurationMonths int                   `json:"duration_months"`
	Members        []TeamMemberResponse  `json:"members"`
	Items          []WorkItemResponse    `json:"items"`
	Adjustments    AdjustmentSetResponse `json:"adjustments"`
	CreatedAt      *string               `json:"createdAt,omitempty"`
	UpdatedAt      *string               `json:"updatedAt,omitempty"`
}

type CreatePlanResponse struct {
	Plan PlanResponse `json:"plan"`
}

type PlanShortResponse struct {
	PlanID         string `json:"plan_id"`
	PlanName       string `json:"plan_name"`
	DurationMonths int    `json:"duration_months"`
	CreatedAt      string `json:"createdAt"`
}

type ListPlansResponse struct {
	Plans []PlanShortResponse `json:"plans"`
}

// Percent приходит строкой: поле формы прощает любой ввод,
// нечисловые значения трактуются как 100.
type SetFactorRequest struct {
	PlanID      string `json:"plan_id"`
	PeriodIndex int    `json:"period_index"`
	Kind        string `json:"kind"`
	RefID       string `json:"ref_id"`
	Percent     string `json:"percent"`
}

type AddPeriodRequest struct {
	PlanID string `json:"plan_id"`
}

type RemovePeriodRequest struct {
	PlanID      string `json:"plan_id"`
	PeriodIndex int    `json:"period_index"`
}

type AdjustmentsResponse struct {
	PlanID      string                `json:"plan_id"`
	Adjustments AdjustmentSetResponse `json:"adjustments"`
}

type ProfileEffectResponse struct {
	ProfileID    string  `json:"profile_id"`
	Label        string  `json:"label"`
	Factor       float64 `json:"factor"`
	OriginalFTE  float64 `json:"original_fte"`
	EffectiveFTE float64 `json:"effective_fte"`
	SavedFTE     float64 `json:"saved_fte"`
}

type TowEffectResponse struct {
	TowID           string  `json:"tow_id"`
	Label           string  `json:"label"`
	Type            string  `json:"type"`
	Factor          float64 `json:"factor"`
	OriginalTasks   int     `json:"original_tasks,omitempty"`
	EffectiveTasks  int     `json:"effective_tasks,omitempty"`
	SavedTasks      int     `json:"saved_tasks,omitempty"`
	OriginalMonths  float64 `json:"original_months,omitempty"`
	EffectiveMonths float64 `json:"effective_months,omitempty"`
	SavedMonths     float64 `json:"saved_months,omitempty"`
	OriginalDays    int     `json:"original_days,omitempty"`
	EffectiveDays   int     `json:"effective_days,omitempty"`
	SavedDays       int     `json:"saved_days,omitempty"`
}

type PeriodSummaryResponse struct {
	MonthStart int                     `json:"month_start"`
	MonthEnd   int                     `json:"month_end"`
	Profiles   []ProfileEffectResponse `json:"profiles"`
	Items      []TowEffectResponse     `json:"items"`
	SavedDays  int                     `json:"saved_days"`
	SavedCost  float64                 `json:"saved_cost"`
}

type CoverageResponse struct {
	CoveredMonths int  `json:"covered_months"`
	TotalMonths   int  `json:"total_months"`
	IsComplete    bool `json:"is_complete"`
}

type ReportResponse struct {
	PlanID   string                  `json:"plan_id"`
	Periods  []PeriodSummaryResponse `json:"periods"`
	Coverage CoverageResponse        `json:"coverage"`
}
