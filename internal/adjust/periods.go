package adjust

import (
	"math"
	"strconv"
	"strings"

	"github.com/lmoretti/gara-planner/internal/domain"
)

// ParsePercent разбирает процент из поля формы.
// Нечисловой ввод трактуется как 100 (без изменений), разобранное значение
// зажимается в [0, 100] - так же, как ограничивал ввод исходный UI.
func ParsePercent(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) {
		return 100
	}
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// UpsertFactor возвращает новую карту с обновленным фактором для key.
// Фактор 1.0 никогда не сохраняется: ключ удаляется, чтобы запросы вида
// "есть ли корректировки" оставались осмысленными. Вход не мутируется.
func UpsertFactor(factors map[string]float64, key, pctValue string) map[string]float64 {
	out := make(map[string]float64, len(factors)+1)
	for k, v := range factors {
		out[k] = v
	}

	factor := ParsePercent(pctValue) / 100
	if factor == 1.0 {
		delete(out, key)
	} else {
		out[key] = factor
	}
	return out
}

// AddPeriod добавляет период сразу за последним занятым месяцем:
// 12-месячное окно, обрезанное по горизонту проекта.
func AddPeriod(periods []domain.AdjustmentPeriod, totalMonths int) []domain.AdjustmentPeriod {
	maxEnd := 0
	for _, p := range periods {
		if p.MonthEnd > maxEnd {
			maxEnd = p.MonthEnd
		}
	}

	start := maxEnd + 1
	end := start + 11
	if end > totalMonths {
		end = totalMonths
	}

	out := make([]domain.AdjustmentPeriod, 0, len(periods)+1)
	out = append(out, periods...)
	out = append(out, domain.AdjustmentPeriod{
		MonthStart: start,
		MonthEnd:   end,
		ByProfile:  map[string]float64{},
		ByTow:      map[string]float64{},
	})
	return out
}

// RemovePeriod удаляет период по индексу. Набор никогда не остается пустым:
// вместо последнего периода возвращается период по умолчанию на весь горизонт.
// Индекс вне диапазона возвращает вход без изменений.
func RemovePeriod(periods []domain.AdjustmentPeriod, index, totalMonths int) []domain.AdjustmentPeriod {
	if index < 0 || index >= len(periods) {
		return periods
	}

	out := make([]domain.AdjustmentPeriod, 0, len(periods)-1)
	out = append(out, periods[:index]...)
	out = append(out, periods[index+1:]...)

	if len(out) == 0 {
		return []domain.AdjustmentPeriod{DefaultPeriod(totalMonths)}
	}
	return out
}

// DefaultPeriod - период на весь горизонт проекта без корректировок.
func DefaultPeriod(totalMonths int) domain.AdjustmentPeriod {
	return domain.AdjustmentPeriod{
		MonthStart: 1,
		MonthEnd:   totalMonths,
		ByProfile:  map[string]float64{},
		ByTow:      map[string]float64{},
	}
}
