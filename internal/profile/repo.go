package profile

import (
	"context"
	"errors"
	"time"

	"github.com/Gabriel-Hollenbeck22/IrontPath-sub000/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrProfileNotFound = errors.New("profile not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Get returns the user profile. This is a single-user service, so the
// profile table holds exactly one row.
func (r *Repo) Get(ctx context.Context) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	row := r.db.QueryRow(
		ctx,
		`SELECT
			id, target_protein_grams, target_carbs_grams, target_fat_grams,
			target_calories, sleep_goal_hours, activity_level,
			body_weight_lbs, sex, age, created_at, updated_at
		FROM profile
		ORDER BY id
		LIMIT 1;`,
	)

	var p Profile
	err = row.Scan(
		&p.ID, &p.TargetProteinGrams, &p.TargetCarbsGrams, &p.TargetFatGrams,
		&p.TargetCalories, &p.SleepGoalHours, &p.ActivityLevel,
		&p.BodyWeightLbs, &p.Sex, &p.Age, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *Repo) Update(ctx context.Context, p *Profile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`UPDATE profile SET
			target_protein_grams = $1, target_carbs_grams = $2,
			target_fat_grams = $3, target_calories = $4,
			sleep_goal_hours = $5, activity_level = $6,
			body_weight_lbs = $7, sex = $8, age = $9, updated_at = $10
		WHERE id = $11;`,
		p.TargetProteinGrams, p.TargetCarbsGrams,
		p.TargetFatGrams, p.TargetCalories,
		p.SleepGoalHours, p.ActivityLevel,
		p.BodyWeightLbs, p.Sex, p.Age, time.Now(),
		p.ID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}

	return nil
}
