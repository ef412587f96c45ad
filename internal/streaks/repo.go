package streaks

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gabriel-Hollenbeck22/IrontPath-sub000/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo persists the single streak-state row.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Get(ctx context.Context) (state *State, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.streaks.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT
			workout_current, workout_longest, workout_start_day, workout_last_day,
			nutrition_current, nutrition_longest, nutrition_start_day, nutrition_last_day,
			grace_remaining, grace_active,
			combined_current, combined_longest
		FROM streak_state
		WHERE id = 1;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		// no row yet, fresh install
		return NewState(), nil
	}

	state = &State{}
	if err := rows.Scan(
		&state.Workout.CurrentStreak, &state.Workout.LongestStreak,
		&state.Workout.StreakStartDay, &state.Workout.LastLoggedDay,
		&state.Nutrition.CurrentStreak, &state.Nutrition.LongestStreak,
		&state.Nutrition.StreakStartDay, &state.Nutrition.LastLoggedDay,
		&state.GraceDaysRemaining, &state.GraceActive,
		&state.CombinedStreak, &state.LongestCombinedStreak,
	); err != nil {
		return nil, fmt.Errorf("scan streak state: %w", err)
	}

	return state, nil
}

func (r *Repo) Save(ctx context.Context, state *State) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.streaks.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if state == nil {
		return errors.New("state is nil")
	}

	tag, err := r.db.Exec(ctx, `
		INSERT INTO streak_state (
			id,
			workout_current, workout_longest, workout_start_day, workout_last_day,
			nutrition_current, nutrition_longest, nutrition_start_day, nutrition_last_day,
			grace_remaining, grace_active,
			combined_current, combined_longest
		) VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			workout_current = EXCLUDED.workout_current,
			workout_longest = EXCLUDED.workout_longest,
			workout_start_day = EXCLUDED.workout_start_day,
			workout_last_day = EXCLUDED.workout_last_day,
			nutrition_current = EXCLUDED.nutrition_current,
			nutrition_longest = EXCLUDED.nutrition_longest,
			nutrition_start_day = EXCLUDED.nutrition_start_day,
			nutrition_last_day = EXCLUDED.nutrition_last_day,
			grace_remaining = EXCLUDED.grace_remaining,
			grace_active = EXCLUDED.grace_active,
			combined_current = EXCLUDED.combined_current,
			combined_longest = EXCLUDED.combined_longest;`,
		state.Workout.CurrentStreak, state.Workout.LongestStreak,
		state.Workout.StreakStartDay, state.Workout.LastLoggedDay,
		state.Nutrition.CurrentStreak, state.Nutrition.LongestStreak,
		state.Nutrition.StreakStartDay, state.Nutrition.LastLoggedDay,
		state.GraceDaysRemaining, state.GraceActive,
		state.CombinedStreak, state.LongestCombinedStreak,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
