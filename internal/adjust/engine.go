package adjust

import (
	"math"

	"github.com/lmoretti/gara-planner/internal/domain"
)

// DaysPerFTE - фиксированная норма: 220 рабочих дней на один FTE в год.
const DaysPerFTE = 220

type ProfileEffect struct {
	ProfileID    string
	Label        string
	Factor       float64
	OriginalFTE  float64
	EffectiveFTE float64
	SavedFTE     float64
}

type TowEffect struct {
	TowID  string
	Label  string
	Type   domain.WorkType
	Factor float64

	// только для type=task
	OriginalTasks  int
	EffectiveTasks int
	SavedTasks     int

	// только для corpo/canone
	OriginalMonths  float64
	EffectiveMonths float64
	SavedMonths     float64
	OriginalDays    int
	EffectiveDays   int
	SavedDays       int
}

type Coverage struct {
	CoveredMonths int
	TotalMonths   int
	IsComplete    bool
}

// ComputeProfileEffect применяет фактор к FTE участника.
// Фактор не ограничивается диапазоном: движок считает с тем, что получил,
// валидация диапазона [0.5, 1.0] - забота вызывающего слоя.
func ComputeProfileEffect(member domain.TeamMember, factor float64) ProfileEffect {
	effective := member.FTE * factor
	return ProfileEffect{
		ProfileID:    member.ProfileID,
		Label:        member.Label,
		Factor:       factor,
		OriginalFTE:  member.FTE,
		EffectiveFTE: effective,
		SavedFTE:     member.FTE - effective,
	}
}

// ComputeTowEffect применяет фактор к позиции каталога.
// Для consumo возвращает nil: такие позиции не корректируются никогда.
// Порядок округлений фиксирован: месяцы до одного знака, потом пересчет в дни.
func ComputeTowEffect(item domain.WorkItem, factor float64) *TowEffect {
	effect := &TowEffect{
		TowID:  item.TowID,
		Label:  item.Label,
		Type:   item.Type,
		Factor: factor,
	}

	switch item.Type {
	case domain.WorkTypeTask:
		effect.OriginalTasks = item.NumTasks
		effect.EffectiveTasks = roundHalfUp(float64(item.NumTasks) * factor)
		effect.SavedTasks = effect.OriginalTasks - effect.EffectiveTasks
		return effect

	case domain.WorkTypeCorpo, domain.WorkTypeCanone:
		effect.OriginalMonths = item.DurationMonths
		effect.EffectiveMonths = round1(item.DurationMonths * factor)
		effect.SavedMonths = round1(effect.OriginalMonths - effect.EffectiveMonths)
		effect.OriginalDays = monthsToDays(effect.OriginalMonths)
		effect.EffectiveDays = monthsToDays(effect.EffectiveMonths)
		effect.SavedDays = effect.OriginalDays - effect.EffectiveDays
		return effect
	}

	return nil
}

// ComputeCoverage считает, сколько целых месяцев горизонта [1, totalMonths]
// затронуто хотя бы одним периодом. Пересечения учитываются один раз.
func ComputeCoverage(periods []domain.AdjustmentPeriod, totalMonths int) Coverage {
	covered := make(map[int]struct{})
	for _, p := range periods {
		start := p.MonthStart
		if start < 1 {
			start = 1
		}
		end := p.MonthEnd
		if end > totalMonths {
			end = totalMonths
		}
		for m := start; m <= end; m++ {
			covered[m] = struct{}{}
		}
	}

	return Coverage{
		CoveredMonths: len(covered),
		TotalMonths:   totalMonths,
		IsComplete:    len(covered) >= totalMonths,
	}
}

// FactorFor возвращает фактор для профиля или позиции в конкретном месяце.
// При пересечении периодов выигрывает первый по порядку период,
// в котором фактор задан явно; отсутствие ключа означает 1.0.
func FactorFor(set domain.AdjustmentSet, month int, kind domain.FactorKind, refID string) float64 {
	for _, p := range set.Periods {
		if month < p.MonthStart || month > p.MonthEnd {
			continue
		}
		factors := p.ByProfile
		if kind == domain.KindTow {
			factors = p.ByTow
		}
		if f, ok := factors[refID]; ok {
			return f
		}
	}
	return 1.0
}

// roundHalfUp - округление к ближайшему целому, половина всегда вверх.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// round1 - округление до одного десятичного знака, половина вверх.
func round1(x float64) float64 {
	return math.Floor(x*10+0.5) / 10
}

// round2 - до двух знаков, для денежных итогов.
func round2(x float64) float64 {
	return math.Floor(x*100+0.5) / 100
}

func monthsToDays(months float64) int {
	return roundHalfUp(months / 12 * DaysPerFTE)
}
