package domain

// FactorKind различает корректировки по профилю команды и по позиции каталога.
type FactorKind string

const (
	KindProfile FactorKind = "profile"
	KindTow     FactorKind = "tow"
)

func ValidFactorKind(k FactorKind) bool {
	return k == KindProfile || k == KindTow
}

// AdjustmentPeriod - ограниченное по времени окно ректифик (rettifiche).
// Карты хранят только факторы != 1.0: отсутствие ключа означает "без изменений".
type AdjustmentPeriod struct {
	MonthStart int
	MonthEnd   int
	ByProfile  map[string]float64
	ByTow      map[string]float64
}

// Months - число месяцев, покрываемых периодом (обе границы включительно).
func (p AdjustmentPeriod) Months() int {
	if p.MonthEnd < p.MonthStart {
		return 0
	}
	return p.MonthEnd - p.MonthStart + 1
}

type AdjustmentSet struct {
	Periods []AdjustmentPeriod
}

// HasAdjustments сообщает, задан ли хотя бы один фактор.
// Осмысленно только потому, что факторы 1.0 никогда не сохраняются.
func (s AdjustmentSet) HasAdjustments() bool {
	for _, p := range s.Periods {
		if len(p.ByProfile) > 0 || len(p.ByTow) > 0 {
			return true
		}
	}
	return false
}
