package handler

import (
	"time"

	"github.com/lmoretti/gara-planner/internal/adjust"
	"github.com/lmoretti/gara-planner/internal/domain"
	"github.com/lmoretti/gara-planner/internal/service"
)

func httpPlanToDomain(req PlanRequest) *domain.BusinessPlan {
	members := make([]domain.TeamMember, 0, len(req.Members))
	for _, member := range req.Members {
		members = append(members, domain.TeamMember{
			ProfileID: member.ProfileID,
			Label:     member.Label,
			FTE:       member.FTE,
			DailyRate: member.DailyRate,
		})
	}

	items := make([]domain.WorkItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, domain.WorkItem{
			TowID:          item.TowID,
			Label:          item.Label,
			Type:           domain.WorkType(item.Type),
			NumTasks:       item.NumTasks,
			DurationMonths: item.DurationMonths,
		})
	}

	return &domain.BusinessPlan{
		Name:           req.PlanName,
		DurationMonths: req.DurationMonths,
		Members:        members,
		Items:          items,
	}
}

func domainPlanToHTTP(plan *domain.BusinessPlan) PlanResponse {
	members := make([]TeamMemberResponse, 0, len(plan.Members))
	for _, member := range plan.Members {
		members = append(members, TeamMemberResponse{
			ProfileID: member.ProfileID,
			Label:     member.Label,
			FTE:       member.FTE,
			DailyRate: member.DailyRate,
		})
	}

	items := make([]WorkItemResponse, 0, len(plan.Items))
	for _, item := range plan.Items {
		items = append(items, WorkItemResponse{
			TowID:          item.TowID,
			Label:          item.Label,
			Type:           string(item.Type),
			NumTasks:       item.NumTasks,
			DurationMonths: item.DurationMonths,
		})
	}

	var createdAt, updatedAt *string
	if !plan.CreatedAt.IsZero() {
		createdAtStr := plan.CreatedAt.Format(time.RFC3339)
		createdAt = &createdAtStr
	}
	if plan.UpdatedAt != nil {
		updatedAtStr := plan.UpdatedAt.Format(time.RFC3339)
		updatedAt = &updatedAtStr
	}

	return PlanResponse{
		PlanID:         plan.ID,
		PlanName:       plan.Name,
		DurationMonths: plan.DurationMonths,
		Members:        members,
		Items:          items,
		Adjustments:    domainSetToHTTP(plan.Adjustments),
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}

func domainPlanShortToHTTP(plan *domain.BusinessPlanShort) PlanShortResponse {
	return PlanShortResponse{
		PlanID:         plan.ID,
		PlanName:       plan.Name,
		DurationMonths: plan.DurationMonths,
		CreatedAt:      plan.CreatedAt.Format(time.RFC3339),
	}
}

func domainSetToHTTP(set domain.AdjustmentSet) AdjustmentSetResponse {
	periods := make([]AdjustmentPeriodResponse, 0, len(set.Periods))
	for _, period := range set.Periods {
		byProfile := period.ByProfile
		if byProfile == nil {
			byProfile = map[string]float64{}
		}
		byTow := period.ByTow
		if byTow == nil {
			byTow = map[string]float64{}
		}
		periods = append(periods, AdjustmentPeriodResponse{
			MonthStart: period.MonthStart,
			MonthEnd:   period.MonthEnd,
			ByProfile:  byProfile,
			ByTow:      byTow,
		})
	}
	return AdjustmentSetResponse{Periods: periods}
}

func reportToHTTP(planID string, report *service.AdjustmentReport) ReportResponse {
	periods := make([]PeriodSummaryResponse, 0, len(report.Periods))
	for _, summary := range report.Periods {
		periods = append(periods, summaryToHTTP(summary))
	}

	return ReportResponse{
		PlanID:  planID,
		Periods: periods,
		Coverage: CoverageResponse{
			CoveredMonths: report.Coverage.CoveredMonths,
			TotalMonths:   report.Coverage.TotalMonths,
			IsComplete:    report.Coverage.IsComplete,
		},
	}
}

func summaryToHTTP(summary adjust.PeriodSummary) PeriodSummaryResponse {
	profiles := make([]ProfileEffectResponse, 0, len(summary.Profiles))
	for _, effect := range summary.Profiles {
		profiles = append(profiles, ProfileEffectResponse{
			ProfileID:    effect.ProfileID,
			Label:        effect.Label,
			Factor:       effect.Factor,
			OriginalFTE:  effect.OriginalFTE,
			EffectiveFTE: effect.EffectiveFTE,
			SavedFTE:     effect.SavedFTE,
		})
	}

	items := make([]TowEffectResponse, 0, len(summary.Items))
	for _, effect := range summary.Items {
		items = append(items, TowEffectResponse{
			TowID:           effect.TowID,
			Label:           effect.Label,
			Type:            string(effect.Type),
			Factor:          effect.Factor,
			OriginalTasks:   effect.OriginalTasks,
			EffectiveTasks:  effect.EffectiveTasks,
			SavedTasks:      effect.SavedTasks,
			OriginalMonths:  effect.OriginalMonths,
			EffectiveMonths: effect.EffectiveMonths,
			SavedMonths:     effect.SavedMonths,
			OriginalDays:    effect.OriginalDays,
			EffectiveDays:   effect.EffectiveDays,
			SavedDays:       effect.SavedDays,
		})
	}

	return PeriodSummaryResponse{
		MonthStart: summary.MonthStart,
		MonthEnd:   summary.MonthEnd,
		Profiles:   profiles,
		Items:      items,
		SavedDays:  summary.SavedDays,
		SavedCost:  summary.SavedCost,
	}
}
