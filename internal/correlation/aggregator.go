package correlation

import (
	"context"
	"fmt"
	"time"

	"github.com/Gabriel-Hollenbeck22/IrontPath-sub000/internal/diary"
	"github.com/Gabriel-Hollenbeck22/IrontPath-sub000/internal/telemetry/tracing"
	"github.com/Gabriel-Hollenbeck22/IrontPath-sub000/pkg"
)

type DataPoint struct {
	Date          time.Time `json:"date"`
	ProteinGrams  float64   `json:"proteinGrams"`
	Calories      float64   `json:"calories"`
	WorkoutVolume float64   `json:"workoutVolume"`
	RecoveryScore float64   `json:"recoveryScore"`
	SleepHours    *float64  `json:"sleepHours,omitempty"`
}

// Data is a date-ascending series of daily data points with simple
// arithmetic means, meant for plotting intake against recovery.
type Data struct {
	StartDate        time.Time   `json:"startDate"`
	EndDate          time.Time   `json:"endDate"`
	Points           []DataPoint `json:"points"`
	AvgProteinGrams  float64     `json:"avgProteinGrams"`
	AvgCalories      float64     `json:"avgCalories"`
	AvgVolume        float64     `json:"avgVolume"`
	AvgRecoveryScore float64     `json:"avgRecoveryScore"`
	AvgSleepHours    float64     `json:"avgSleepHours"`
}

type diaryReader interface {
	ListRange(ctx context.Context, from, to time.Time, order diary.Order) ([]diary.DailySummary, error)
}

type Aggregator struct {
	diary diaryReader
	now   func() time.Time
}

func NewAggregator(diaryRepo diaryReader) *Aggregator {
	return &Aggregator{
		diary: diaryRepo,
		now:   time.Now,
	}
}

// Build assembles the correlation series for the trailing number of
// days. An empty diary yields an empty series with zero averages.
func (a *Aggregator) Build(ctx context.Context, days int) (data *Data, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "correlation.aggregator.build")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if days < 1 {
		days = 1
	}

	end := pkg.DayOf(a.now())
	start := end.AddDate(0, 0, -days)

	summaries, err := a.diary.ListRange(ctx, start, end.AddDate(0, 0, 1), diary.OrderAsc)
	if err != nil {
		return nil, fmt.Errorf("list daily summaries: %w", err)
	}

	data = &Data{
		StartDate: start,
		EndDate:   end,
		Points:    make([]DataPoint, 0, len(summaries)),
	}

	var sleepSum float64
	sleepCount := 0
	for i := range summaries {
		s := &summaries[i]
		point := DataPoint{
			Date:          s.Date,
			ProteinGrams:  s.ProteinGrams,
			Calories:      s.Calories,
			WorkoutVolume: s.WorkoutVolume,
			SleepHours:    s.SleepHours,
		}
		if s.RecoveryScore != nil {
			point.RecoveryScore = *s.RecoveryScore
		}
		data.Points = append(data.Points, point)

		data.AvgProteinGrams += point.ProteinGrams
		data.AvgCalories += point.Calories
		data.AvgVolume += point.WorkoutVolume
		data.AvgRecoveryScore += point.RecoveryScore
		if s.SleepHours != nil {
			sleepSum += *s.SleepHours
			sleepCount++
		}
	}

	if n := float64(len(data.Points)); n > 0 {
		data.AvgProteinGrams /= n
		data.AvgCalories /= n
		data.AvgVolume /= n
		data.AvgRecoveryScore /= n
	}
	// sleep is averaged over the days it was actually logged
	if sleepCount > 0 {
		data.AvgSleepHours = sleepSum / float64(sleepCount)
	}

	return data, nil
}
