package adjust

import "github.com/lmoretti/gara-planner/internal/domain"

// PeriodSummary - эффект одного периода по всей команде и каталогу.
// Сводка строго по-периодная: агрегация пересекающихся периодов по месяцам
// сознательно не делается (контракт движка определен на период).
type PeriodSummary struct {
	MonthStart int
	MonthEnd   int
	Profiles   []ProfileEffect
	Items      []TowEffect
	SavedDays  int
	SavedCost  float64
}

// ProfileDays - пересчет FTE-эффекта в рабочие дни на отрезке в months месяцев.
type ProfileDays struct {
	OriginalDays  int
	EffectiveDays int
	SavedDays     int
}

func ProfileDaysOver(effect ProfileEffect, months int) ProfileDays {
	original := roundHalfUp(effect.OriginalFTE * float64(months) / 12 * DaysPerFTE)
	effective := roundHalfUp(effect.EffectiveFTE * float64(months) / 12 * DaysPerFTE)
	return ProfileDays{
		OriginalDays:  original,
		EffectiveDays: effective,
		SavedDays:     original - effective,
	}
}

// SummarizePeriod применяет карты периода к команде и каталогу.
// В сводку попадают только записи с явным фактором (не 1.0 по построению);
// экономия в деньгах = сэкономленные дни профиля * дневная ставка.
func SummarizePeriod(members []domain.TeamMember, items []domain.WorkItem, period domain.AdjustmentPeriod) PeriodSummary {
	summary := PeriodSummary{
		MonthStart: period.MonthStart,
		MonthEnd:   period.MonthEnd,
	}
	months := period.Months()

	var cost float64
	for _, member := range members {
		factor, ok := period.ByProfile[member.ProfileID]
		if !ok {
			continue
		}
		effect := ComputeProfileEffect(member, factor)
		summary.Profiles = append(summary.Profiles, effect)

		days := ProfileDaysOver(effect, months)
		summary.SavedDays += days.SavedDays
		cost += float64(days.SavedDays) * member.DailyRate
	}

	for _, item := range items {
		factor, ok := period.ByTow[item.TowID]
		if !ok {
			continue
		}
		effect := ComputeTowEffect(item, factor)
		if effect == nil {
			// consumo: фактор в карте недействителен, игнорируем
			continue
		}
		summary.Items = append(summary.Items, *effect)
		summary.SavedDays += effect.SavedDays
	}

	summary.SavedCost = round2(cost)
	return summary
}

// Summarize строит по-периодные сводки для всего набора корректировок.
func Summarize(plan *domain.BusinessPlan) []PeriodSummary {
	summaries := make([]PeriodSummary, 0, len(plan.Adjustments.Periods))
	for _, period := range plan.Adjustments.Periods {
		summaries = append(summaries, SummarizePeriod(plan.Members, plan.Items, period))
	}
	return summaries
}
