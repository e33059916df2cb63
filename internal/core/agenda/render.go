package agenda

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/cadence/internal/core/calendar"
	"github.com/colonyops/cadence/internal/core/styles"
)

// DateLayout formats the date in the greeting.
const DateLayout = "Monday, January 2, 2006"

// Options control the daily overview.
type Options struct {
	// ShowRemaining appends how many more times a limited task may recur.
	ShowRemaining bool
	// CatchUpDays is the number of elapsed days tolerated before the
	// catch-up notice is shown.
	CatchUpDays int
	Palette     styles.Palette
}

// View is the data behind the daily overview.
type View struct {
	Today     calendar.Date
	DaysSince uint
	Sections  []Section
}

// Render writes the greeting, the catch-up notice when it applies and every
// section to w. Colors are only emitted when w is a terminal.
func Render(w io.Writer, v View, opts Options) error {
	s := styles.New(lipgloss.NewRenderer(w), opts.Palette)

	var b strings.Builder
	b.WriteString(s.Greeting.Render(fmt.Sprintf("Hello! Today is %s.", v.Today.Time().Format(DateLayout))))
	b.WriteByte('\n')

	if opts.CatchUpDays >= 0 && v.DaysSince > uint(opts.CatchUpDays) {
		b.WriteString(s.CatchUp.Render(fmt.Sprintf(
			"It has been %d days since you last opened this organiser. You will have to catch up.", v.DaysSince)))
		b.WriteByte('\n')
	}

	if len(v.Sections) == 0 {
		b.WriteByte('\n')
		b.WriteString(s.Empty.Render("Nothing is due. Enjoy your day."))
		b.WriteByte('\n')
	}

	for _, sec := range v.Sections {
		b.WriteByte('\n')
		b.WriteString(s.Section.Render(fmt.Sprintf("Tasks you must do sometime %s:", sec.Horizon)))
		b.WriteByte('\n')

		for _, item := range sec.Items {
			b.WriteString("  ")
			b.WriteString(s.Task.Render(item.Name))
			if item.Outstanding > 1 {
				b.WriteString(s.Count.Render(fmt.Sprintf(" (x%d)", item.Outstanding)))
			}
			if opts.ShowRemaining {
				if n, ok := item.Budget.Remaining(); ok {
					b.WriteString(s.Remaining.Render(fmt.Sprintf(" [%d more]", n)))
				}
			}
			b.WriteByte('\n')
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
