package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"runner/internal/plan"
)

// WriteText writes a plain-text rendition: header, summary, then one block per week
func WriteText(w io.Writer, p *plan.TrainingPlan) error {
	bw := bufio.NewWriter(w)

	title := planTitle(p)
	fmt.Fprintln(bw, title)
	fmt.Fprintln(bw, strings.Repeat("=", len(title)))
	fmt.Fprintf(bw, "Current pace: %s   Target pace: %s   Days/week: %d\n\n",
		plan.FormatPace(p.CurrentPace), plan.FormatPace(p.TargetPace), p.TrainingDays)
	fmt.Fprintln(bw, p.Summary)

	for _, week := range p.Weeks {
		fmt.Fprintln(bw)
		fmt.Fprintln(bw, weekHeading(week))
		for _, d := range week.Days {
			line := fmt.Sprintf("  %-9s %-28s", d.Day, d.Workout)
			if detail := dayDetail(d); detail != "" {
				line += " " + detail
			}
			fmt.Fprintln(bw, strings.TrimRight(line, " "))
		}
	}

	return bw.Flush()
}
