package work

import (
	"time"

	"github.com/stechuhr/internal/clock"
)

// Input carries everything the report calculation needs. Now is injected so
// the computation stays independent of the wall clock.
type Input struct {
	Start  time.Time
	End    *time.Time // nil means still working, evaluated at Now
	Now    time.Time
	Goal   time.Duration
	Breaks []time.Duration
}

// Report is the computed result of one invocation. All durations keep their
// sign; rendering discards it and labels direction via Done.
type Report struct {
	Start        time.Time
	End          *time.Time
	Now          time.Time
	Goal         time.Duration
	TotalTime    time.Duration
	BreakTime    time.Duration
	LongestBreak time.Duration
	WorkTime     time.Duration
	Done         bool
	Remainder    time.Duration
	Percent      float64
	GoalEnd      time.Time
	NineHourEnd  time.Time
	TenHourEnd   time.Time
	MaxRemaining time.Duration
}

// Compute runs the single-pass work-time calculation.
func Compute(in Input) Report {
	end := in.Now
	if in.End != nil {
		end = *in.End
	}
	total := end.Sub(in.Start)

	breakTime, longest := AccumulateBreaks(total, in.Breaks)

	workTime := total - breakTime
	done := workTime > in.Goal

	var remainder time.Duration
	if done {
		remainder = in.Goal + breakTime - total
	} else {
		remainder = total - (in.Goal + breakTime)
	}

	// The 9h and 10h projections never under-count breaks relative to the
	// large-break rule; the goal projection uses the actual break.
	floorBreak := breakTime
	if LargeBreak > floorBreak {
		floorBreak = LargeBreak
	}
	tenHourEnd := in.Start.Add(10*time.Hour + floorBreak)

	return Report{
		Start:        in.Start,
		End:          in.End,
		Now:          in.Now,
		Goal:         in.Goal,
		TotalTime:    total,
		BreakTime:    breakTime,
		LongestBreak: longest,
		WorkTime:     workTime,
		Done:         done,
		Remainder:    remainder,
		Percent:      clock.Round2(100 * float64(workTime) / float64(in.Goal)),
		GoalEnd:      in.Start.Add(in.Goal + breakTime),
		NineHourEnd:  in.Start.Add(9*time.Hour + floorBreak),
		TenHourEnd:   tenHourEnd,
		MaxRemaining: tenHourEnd.Sub(in.Now),
	}
}

// RemainderLabel returns the direction label for the remainder value.
func (r Report) RemainderLabel() string {
	if r.Done {
		return "more"
	}
	return "remaining"
}
