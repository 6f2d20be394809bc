package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lmoretti/gara-planner/internal/domain"
)

type planRepository struct {
	db *sql.DB
}

func NewPlanRepository(db *sql.DB) *planRepository {
	return &planRepository{db: db}
}

// Create сохраняет план вместе с командой, каталогом и периодами корректировок.
// ON CONFLICT по имени только проставляет updated_at: сервис по нему
// распознает дубликат, не перезаписывая существующий план.
func (r *planRepository) Create(ctx context.Context, plan *domain.BusinessPlan) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO plans (id, name, duration_months, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO UPDATE
		SET updated_at = CURRENT_TIMESTAMP
		RETURNING id, created_at, updated_at
	`

	now := time.Now()
	var updatedAt sql.NullTime
	err = tx.QueryRowContext(ctx, query, plan.ID, plan.Name, plan.DurationMonths, now).
		Scan(&plan.ID, &plan.CreatedAt, &updatedAt)
	if err != nil {
		return err
	}

	if updatedAt.Valid {
		plan.UpdatedAt = &updatedAt.Time
		// конфликт имен: существующий план не трогаем
		return tx.Commit()
	}
	plan.UpdatedAt = nil

	memberQuery := `
		INSERT INTO team_members (plan_id, profile_id, label, fte, daily_rate, position)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	for i, member := range plan.Members {
		_, err = tx.ExecContext(ctx, memberQuery,
			plan.ID, member.ProfileID, member.Label, member.FTE, member.DailyRate, i)
		if err != nil {
			return err
		}
	}

	itemQuery := `
		INSERT INTO work_items (plan_id, tow_id, label, type, num_tasks, duration_months, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	for i, item := range plan.Items {
		_, err = tx.ExecContext(ctx, itemQuery,
			plan.ID, item.TowID, item.Label, string(item.Type), item.NumTasks, item.DurationMonths, i)
		if err != nil {
			return err
		}
	}

	if err := insertPeriods(ctx, tx, plan.ID, plan.Adjustments); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *planRepository) GetByID(ctx context.Context, id string) (*domain.BusinessPlan, error) {
	query := `
		SELECT id, name, duration_months, created_at, updated_at
		FROM plans
		WHERE id = $1
	`

	plan := &domain.BusinessPlan{}
	var updatedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&plan.ID,
		&plan.Name,
		&plan.DurationMonths,
		&plan.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("plan not found")
		}
		return nil, err
	}

	if updatedAt.Valid {
		plan.UpdatedAt = &updatedAt.Time
	}

	memberQuery := `
		SELECT profile_id, label, fte, daily_rate
		FROM team_members
		WHERE plan_id = $1
		ORDER BY position
	`
	memberRows, err := r.db.QueryContext(ctx, memberQuery, id)
	if err != nil {
		return nil, err
	}
	defer memberRows.Close()

	for memberRows.Next() {
		var member domain.TeamMember
		if err := memberRows.Scan(&member.ProfileID, &member.Label, &member.FTE, &member.DailyRate); err != nil {
			return nil, err
		}
		plan.Members = append(plan.Members, member)
	}
	if err := memberRows.Err(); err != nil {
		return nil, err
	}

	itemQuery := `
		SELECT tow_id, label, type, num_tasks, duration_months
		FROM work_items
		WHERE plan_id = $1
		ORDER BY position
	`
	itemRows, err := r.db.QueryContext(ctx, itemQuery, id)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item domain.WorkItem
		var itemType string
		if err := itemRows.Scan(&item.TowID, &item.Label, &itemType, &item.NumTasks, &item.DurationMonths); err != nil {
			return nil, err
		}
		item.Type = domain.WorkType(itemType)
		plan.Items = append(plan.Items, item)
	}
	if err := itemRows.Err(); err != nil {
		return nil, err
	}

	adjustmentRepo := NewAdjustmentRepository(r.db)
	set, err := adjustmentRepo.GetByPlanID(ctx, id)
	if err != nil {
		return nil, err
	}
	plan.Adjustments = set

	return plan, nil
}

func (r *planRepository) List(ctx context.Context) ([]*domain.BusinessPlanShort, error) {
	query := `
		SELECT id, name, duration_months, created_at
		FROM plans
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plans := make([]*domain.BusinessPlanShort, 0)
	for rows.Next() {
		plan := &domain.BusinessPlanShort{}
		if err := rows.Scan(&plan.ID, &plan.Name, &plan.DurationMonths, &plan.CreatedAt); err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return plans, nil
}
