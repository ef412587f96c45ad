package diary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gabriel-Hollenbeck22/IrontPath-sub000/internal/telemetry/tracing"
	"github.com/Gabriel-Hollenbeck22/IrontPath-sub000/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrSummaryNotFound = errors.New("daily summary not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) GetByDate(ctx context.Context, date time.Time) (_ *DailySummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.diary.getByDate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date.Format("2006-01-02")))

	row := r.db.QueryRow(
		ctx,
		`SELECT
			id, date, calories, protein_grams, carbs_grams, fat_grams,
			sleep_hours, recovery_score, workout_volume
		FROM daily_summary
		WHERE date = $1;`,
		pkg.DayOf(date),
	)

	s, err := scanSummary(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSummaryNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ListRange returns daily summaries with `from <= date <= to`, ordered by date.
func (r *Repo) ListRange(ctx context.Context, from, to time.Time, order Order) (_ []DailySummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.diary.listRange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("from", from.Format("2006-01-02")))
	span.SetAttributes(attribute.String("to", to.Format("2006-01-02")))

	orderBy := "ASC"
	if order == OrderDesc {
		orderBy = "DESC"
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT
			id, date, calories, protein_grams, carbs_grams, fat_grams,
			sleep_hours, recovery_score, workout_volume
		FROM daily_summary
		WHERE date >= $1 AND date <= $2
		ORDER BY date `+orderBy+`;`,
		pkg.DayOf(from), pkg.DayOf(to),
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	summaries := make([]DailySummary, 0)
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		summaries = append(summaries, *s)
	}

	return summaries, nil
}

// AddNutrition adds the given macros onto the day's totals, creating the
// day's summary row when it does not exist yet.
func (r *Repo) AddNutrition(ctx context.Context, date time.Time, calories, protein, carbs, fat float64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.diary.addNutrition")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO daily_summary
			(date, calories, protein_grams, carbs_grams, fat_grams, workout_volume)
			VALUES ($1, $2, $3, $4, $5, 0)
		ON CONFLICT (date) DO UPDATE SET
			calories = daily_summary.calories + EXCLUDED.calories,
			protein_grams = daily_summary.protein_grams + EXCLUDED.protein_grams,
			carbs_grams = daily_summary.carbs_grams + EXCLUDED.carbs_grams,
			fat_grams = daily_summary.fat_grams + EXCLUDED.fat_grams;`,
		pkg.DayOf(date), calories, protein, carbs, fat,
	)
	return err
}

func (r *Repo) SetSleepHours(ctx context.Context, date time.Time, sleepHours float64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.diary.setSleepHours")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO daily_summary
			(date, calories, protein_grams, carbs_grams, fat_grams, sleep_hours, workout_volume)
			VALUES ($1, 0, 0, 0, 0, $2, 0)
		ON CONFLICT (date) DO UPDATE SET sleep_hours = EXCLUDED.sleep_hours;`,
		pkg.DayOf(date), sleepHours,
	)
	return err
}

// AddWorkoutVolume adds the given volume onto the day's total.
func (r *Repo) AddWorkoutVolume(ctx context.Context, date time.Time, volume float64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.diary.addWorkoutVolume")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO daily_summary
			(date, calories, protein_grams, carbs_grams, fat_grams, workout_volume)
			VALUES ($1, 0, 0, 0, 0, $2)
		ON CONFLICT (date) DO UPDATE SET
			workout_volume = daily_summary.workout_volume + EXCLUDED.workout_volume;`,
		pkg.DayOf(date), volume,
	)
	return err
}

// SetRecoveryScore persists the computed recovery score on the day's summary.
func (r *Repo) SetRecoveryScore(ctx context.Context, date time.Time, score float64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.diary.setRecoveryScore")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Float64("score", score))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO daily_summary
			(date, calories, protein_grams, carbs_grams, fat_grams, recovery_score, workout_volume)
			VALUES ($1, 0, 0, 0, 0, $2, 0)
		ON CONFLICT (date) DO UPDATE SET recovery_score = EXCLUDED.recovery_score;`,
		pkg.DayOf(date), score,
	)
	return err
}

func scanSummary(row pgx.Row) (*DailySummary, error) {
	var s DailySummary
	if err := row.Scan(
		&s.ID, &s.Date, &s.Calories, &s.ProteinGrams, &s.CarbsGrams,
		&s.FatGrams, &s.SleepHours, &s.RecoveryScore, &s.WorkoutVolume,
	); err != nil {
		return nil, err
	}
	return &s, nil
}
