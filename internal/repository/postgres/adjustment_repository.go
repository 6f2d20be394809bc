package postgres

import (
	"context"
	"database/sql"
	"sort"

	"github.com/lmoretti/gara-planner/internal/domain"
)

type adjustmentRepository struct {
	db *sql.DB
}

func NewAdjustmentRepository(db *sql.DB) *adjustmentRepository {
	return &adjustmentRepository{db: db}
}

func (r *adjustmentRepository) GetByPlanID(ctx context.Context, planID string) (domain.AdjustmentSet, error) {
	query := `
		SELECT p.id, p.month_start, p.month_end, f.kind, f.ref_id, f.factor
		FROM adjustment_periods p
		LEFT JOIN adjustment_factors f ON f.period_id = p.id
		WHERE p.plan_id = $1
		ORDER BY p.position, f.kind, f.ref_id
	`

	rows, err := r.db.QueryContext(ctx, query, planID)
	if err != nil {
		return domain.AdjustmentSet{}, err
	}
	defer rows.Close()

	var set domain.AdjustmentSet
	lastPeriodID := int64(-1)
	for rows.Next() {
		var (
			periodID   int64
			monthStart int
			monthEnd   int
			kind       sql.NullString
			refID      sql.NullString
			factor     sql.NullFloat64
		)
		if err := rows.Scan(&periodID, &monthStart, &monthEnd, &kind, &refID, &factor); err != nil {
			return domain.AdjustmentSet{}, err
		}

		if periodID != lastPeriodID {
			set.Periods = append(set.Periods, domain.AdjustmentPeriod{
				MonthStart: monthStart,
				MonthEnd:   monthEnd,
				ByProfile:  map[string]float64{},
				ByTow:      map[string]float64{},
			})
			lastPeriodID = periodID
		}

		if !kind.Valid {
			// период без факторов
			continue
		}

		period := &set.Periods[len(set.Periods)-1]
		switch domain.FactorKind(kind.String) {
		case domain.KindProfile:
			period.ByProfile[refID.String] = factor.Float64
		case domain.KindTow:
			period.ByTow[refID.String] = factor.Float64
		}
	}
	if err := rows.Err(); err != nil {
		return domain.AdjustmentSet{}, err
	}

	return set, nil
}

// Save заменяет весь набор периодов плана в одной транзакции.
func (r *adjustmentRepository) Save(ctx context.Context, planID string, set domain.AdjustmentSet) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `DELETE FROM adjustment_periods WHERE plan_id = $1`, planID)
	if err != nil {
		return err
	}

	if err := insertPeriods(ctx, tx, planID, set); err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `UPDATE plans SET updated_at = CURRENT_TIMESTAMP WHERE id = $1`, planID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func insertPeriods(ctx context.Context, tx *sql.Tx, planID string, set domain.AdjustmentSet) error {
	periodQuery := `
		INSERT INTO adjustment_periods (plan_id, position, month_start, month_end)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	factorQuery := `
		INSERT INTO adjustment_factors (period_id, kind, ref_id, factor)
		VALUES ($1, $2, $3, $4)
	`

	for i, period := range set.Periods {
		var periodID int64
		err := tx.QueryRowContext(ctx, periodQuery, planID, i, period.MonthStart, period.MonthEnd).
			Scan(&periodID)
		if err != nil {
			return err
		}

		// сортировка ключей ради детерминированного порядка вставки
		for _, refID := range sortedKeys(period.ByProfile) {
			_, err = tx.ExecContext(ctx, factorQuery, periodID, string(domain.KindProfile), refID, period.ByProfile[refID])
			if err != nil {
				return err
			}
		}
		for _, refID := range sortedKeys(period.ByTow) {
			_, err = tx.ExecContext(ctx, factorQuery, periodID, string(domain.KindTow), refID, period.ByTow[refID])
			if err != nil {
				return err
			}
		}
	}

	return nil
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
