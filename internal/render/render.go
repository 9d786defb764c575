package render

import (
	"fmt"
	"strings"

	"github.com/stechuhr/internal/clock"
	"github.com/stechuhr/internal/work"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"

	progressBarWidth = 24
)

// Plain renders the report as the classic log lines. Durations appear in
// both HH:MM:SS and decimal-hour form; signs are discarded and direction is
// carried by the more/remaining label.
func Plain(r work.Report) string {
	var b strings.Builder

	endPart := ""
	if r.End != nil {
		endPart = fmt.Sprintf("end: %s; ", r.End.Format("15:04:05"))
	}
	fmt.Fprintf(&b, "start: %s; %s%sh: %s, 9h: %s, 10h: %s\n",
		r.Start.Format("15:04:05"), endPart,
		clock.FormatHours(r.Goal),
		r.GoalEnd.Format("15:04:05"),
		r.NineHourEnd.Format("15:04:05"),
		r.TenHourEnd.Format("15:04:05"))

	fmt.Fprintf(&b, "already done: %s [%s -> %s %%]; %s [%s] %s; no longer than %s [%s]\n",
		clock.FormatHMS(r.WorkTime), clock.FormatHours(r.WorkTime), clock.FormatFloat(r.Percent),
		clock.FormatHMS(r.Remainder), clock.FormatHours(r.Remainder), r.RemainderLabel(),
		clock.FormatHMS(r.MaxRemaining), clock.FormatHours(r.MaxRemaining))

	fmt.Fprintf(&b, "total break time: %s; longest break: %s\n",
		clock.FormatHMS(r.BreakTime), clock.FormatHMS(r.LongestBreak))

	if r.End != nil {
		fmt.Fprintf(&b, "total hours worked: %s\n", clock.FormatHours(r.WorkTime))
	}

	return b.String()
}

// Styled renders the report as a colored dashboard for interactive use.
func Styled(r work.Report) string {
	var b strings.Builder

	b.WriteString(styleHeader.Render("WORK DAY") + "\n\n")

	writeRow(&b, "Start", r.Start.Format("15:04:05"))
	if r.End != nil {
		writeRow(&b, "End", r.End.Format("15:04:05"))
	}
	writeRow(&b, "Goal", fmt.Sprintf("%s (%sh)", clock.FormatHMS(r.Goal), clock.FormatHours(r.Goal)))

	b.WriteString("\n" + progressBar(r.Percent/100, progressBarWidth) + "\n\n")

	writeRow(&b, "Worked", fmt.Sprintf("%s (%sh)", clock.FormatHMS(r.WorkTime), clock.FormatHours(r.WorkTime)))

	remainder := fmt.Sprintf("%s %s", clock.FormatHMS(r.Remainder), r.RemainderLabel())
	if r.Done {
		writeRow(&b, "Overtime", styleGreen.Render(remainder))
	} else {
		writeRow(&b, "Left", styleYellow.Render(remainder))
	}
	writeRow(&b, "Breaks", fmt.Sprintf("%s total, %s longest",
		clock.FormatHMS(r.BreakTime), clock.FormatHMS(r.LongestBreak)))

	b.WriteString("\n" + styleHeader.Render("CLOCK-OUT") + "\n\n")
	writeRow(&b, clock.FormatHours(r.Goal)+"h", r.GoalEnd.Format("15:04"))
	writeRow(&b, "9h", r.NineHourEnd.Format("15:04"))
	if r.MaxRemaining < 0 {
		writeRow(&b, "10h", fmt.Sprintf("%s (%s)", r.TenHourEnd.Format("15:04"),
			styleRed.Render(clock.FormatHMS(r.MaxRemaining)+" over")))
	} else {
		writeRow(&b, "10h", fmt.Sprintf("%s (%s left)", r.TenHourEnd.Format("15:04"),
			clock.FormatHMS(r.MaxRemaining)))
	}

	b.WriteString("\n" + dayTimeline(r, 40))

	return b.String()
}

func writeRow(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "  %s %s\n", styleDim.Render(fmt.Sprintf("%-8s", label)), styleFg.Render(value))
}

// progressBar renders goal completion like [████████░░░░] 66.67 %, colored
// by how far along the day is.
func progressBar(pct float64, width int) string {
	if width < 2 {
		width = 2
	}
	clamped := pct
	if clamped < 0 {
		clamped = 0
	}
	if clamped > 1 {
		clamped = 1
	}

	filled := int(clamped * float64(width))
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := styleRed
	if clamped >= 1 {
		style = styleGreen
	} else if clamped >= 0.5 {
		style = styleYellow
	}

	return fmt.Sprintf("  [%s] %s %%", style.Render(bar), clock.FormatFloat(clock.Round2(pct*100)))
}

// dayTimeline draws the span from the start time to the 10h clock-out and
// marks how much of it has passed.
func dayTimeline(r work.Report, width int) string {
	span := r.TenHourEnd.Sub(r.Start)
	if span <= 0 || width < 2 {
		return ""
	}

	ref := r.Now
	if r.End != nil {
		ref = *r.End
	}
	frac := float64(ref.Sub(r.Start)) / float64(span)
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}

	filled := int(frac * float64(width))
	bar := styleGreen.Render(strings.Repeat(filledBlock, filled)) +
		styleDim.Render(strings.Repeat(emptyBlock, width-filled))

	return fmt.Sprintf("  %s %s %s\n",
		styleDim.Render(r.Start.Format("15:04")), bar, styleDim.Render(r.TenHourEnd.Format("15:04")))
}
