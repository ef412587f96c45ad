package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gabriel-Hollenbeck22/IrontPath-sub000/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrWorkoutNotFound  = errors.New("workout not found")
	ErrExerciseNotFound = errors.New("exercise not found")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// AddSet inserts a set. When the set carries no workout id, it is
// attached to the open workout (a new one is started if none exists).
// When it carries no exercise id, the exercise is resolved by name,
// created on first use.
func (r *Repo) AddSet(ctx context.Context, set *Set) (added *Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.addSet")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if set == nil {
		return nil, errors.New("set is nil")
	}
	if set.Reps < 1 {
		return nil, errors.New("reps must be at least 1")
	}
	if set.WeightLbs < 0 {
		return nil, errors.New("weight cannot be negative")
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	workoutID := set.WorkoutID
	if workoutID == 0 {
		workoutID, err = r.openWorkoutID(ctx, tx)
		if err != nil {
			return nil, err
		}
	}

	exerciseID := set.ExerciseID
	if exerciseID == 0 {
		exerciseID, err = r.resolveExercise(ctx, tx, set.ExerciseName, set.MuscleGroup)
		if err != nil {
			return nil, err
		}
	}

	createdAt := set.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	added = &Set{
		WorkoutID:  workoutID,
		ExerciseID: exerciseID,
		WeightLbs:  set.WeightLbs,
		Reps:       set.Reps,
		RPE:        set.RPE,
		CreatedAt:  createdAt,
	}
	if err := tx.QueryRow(ctx, `
		INSERT INTO workout_set (workout_id, exercise_id, weight_lbs, reps, rpe, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;`,
		workoutID, exerciseID, set.WeightLbs, set.Reps, set.RPE, createdAt,
	).Scan(&added.ID); err != nil {
		return nil, fmt.Errorf("insert set: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	return added, nil
}

func (r *Repo) openWorkoutID(ctx context.Context, tx pgx.Tx) (int, error) {
	var id int
	err := tx.QueryRow(ctx, `
		SELECT id FROM workout
		WHERE completed_at IS NULL
		ORDER BY started_at DESC
		LIMIT 1;`,
	).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("find open workout: %w", err)
	}

	if err := tx.QueryRow(ctx, `
		INSERT INTO workout (started_at) VALUES ($1) RETURNING id;`,
		time.Now(),
	).Scan(&id); err != nil {
		return 0, fmt.Errorf("start workout: %w", err)
	}
	return id, nil
}

func (r *Repo) resolveExercise(ctx context.Context, tx pgx.Tx, name, muscleGroup string) (int, error) {
	if name == "" {
		return 0, ErrExerciseNotFound
	}
	var id int
	if err := tx.QueryRow(ctx, `
		INSERT INTO exercise (name, muscle_group) VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET muscle_group = COALESCE(NULLIF(EXCLUDED.muscle_group, ''), exercise.muscle_group)
		RETURNING id;`,
		name, muscleGroup,
	).Scan(&id); err != nil {
		return 0, fmt.Errorf("resolve exercise %q: %w", name, err)
	}
	return id, nil
}

func (r *Repo) CompleteWorkout(ctx context.Context, id int, completedAt time.Time) (workout *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.complete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `
		UPDATE workout SET completed_at = $1
		WHERE id = $2 AND completed_at IS NULL;`,
		completedAt, id,
	)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrWorkoutNotFound
	}

	return r.Get(ctx, id)
}

// Get returns a workout with its volume computed from its sets.
func (r *Repo) Get(ctx context.Context, id int) (workout *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	workout = &Workout{}
	err = r.db.QueryRow(ctx, `
		SELECT w.id, w.started_at, w.completed_at, COALESCE(w.notes, ''),
			COALESCE(SUM(s.weight_lbs * s.reps), 0) AS volume
		FROM workout w
		LEFT JOIN workout_set s ON s.workout_id = w.id
		WHERE w.id = $1
		GROUP BY w.id;`,
		id,
	).Scan(&workout.ID, &workout.StartedAt, &workout.CompletedAt, &workout.Notes, &workout.Volume)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrWorkoutNotFound
	}
	if err != nil {
		return nil, err
	}

	return workout, nil
}

func (r *Repo) ListCompletedWorkouts(ctx context.Context, from, to time.Time) (ws []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listCompleted")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT w.id, w.started_at, w.completed_at, COALESCE(w.notes, ''),
			COALESCE(SUM(s.weight_lbs * s.reps), 0) AS volume
		FROM workout w
		LEFT JOIN workout_set s ON s.workout_id = w.id
		WHERE w.completed_at IS NOT NULL AND w.completed_at >= $1 AND w.completed_at < $2
		GROUP BY w.id
		ORDER BY w.completed_at ASC;`,
		from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var w Workout
		if err := rows.Scan(&w.ID, &w.StartedAt, &w.CompletedAt, &w.Notes, &w.Volume); err != nil {
			return nil, fmt.Errorf("scan workout: %w", err)
		}
		ws = append(ws, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ws, nil
}

func (r *Repo) ListSetsInRange(ctx context.Context, from, to time.Time) (sets []Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listSetsInRange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT s.id, s.workout_id, s.exercise_id, e.name, e.muscle_group,
			s.weight_lbs, s.reps, s.rpe, s.created_at
		FROM workout_set s
		JOIN exercise e ON e.id = s.exercise_id
		WHERE s.created_at >= $1 AND s.created_at < $2
		ORDER BY s.created_at ASC;`,
		from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var s Set
		if err := rows.Scan(
			&s.ID, &s.WorkoutID, &s.ExerciseID, &s.ExerciseName, &s.MuscleGroup,
			&s.WeightLbs, &s.Reps, &s.RPE, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan set: %w", err)
		}
		sets = append(sets, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sets, nil
}

func (r *Repo) LastCompletedWorkout(ctx context.Context) (workout *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.lastCompleted")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var id int
	err = r.db.QueryRow(ctx, `
		SELECT id FROM workout
		WHERE completed_at IS NOT NULL
		ORDER BY completed_at DESC
		LIMIT 1;`,
	).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrWorkoutNotFound
	}
	if err != nil {
		return nil, err
	}

	return r.Get(ctx, id)
}
