package booking

import "time"

// MonthView identifies the month currently shown in the booking dialog's
// calendar. Month is 1-based like time.Month.
type MonthView struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// CurrentMonthView returns the view for today's month.
func CurrentMonthView(today time.Time) MonthView {
	return MonthView{Year: today.Year(), Month: today.Month()}
}

// Next returns the view shifted one month forward, wrapping the year.
func (v MonthView) Next() MonthView {
	if v.Month == time.December {
		return MonthView{Year: v.Year + 1, Month: time.January}
	}
	return MonthView{Year: v.Year, Month: v.Month + 1}
}

// Prev returns the view shifted one month back, wrapping the year.
func (v MonthView) Prev() MonthView {
	if v.Month == time.January {
		return MonthView{Year: v.Year - 1, Month: time.December}
	}
	return MonthView{Year: v.Year, Month: v.Month - 1}
}

// After reports whether v is strictly later than o.
func (v MonthView) After(o MonthView) bool {
	if v.Year != o.Year {
		return v.Year > o.Year
	}
	return v.Month > o.Month
}

// Contains reports whether d falls inside the viewed month.
func (v MonthView) Contains(d time.Time) bool {
	return d.Year() == v.Year && d.Month() == v.Month
}

// DayCell describes one calendar cell. Past cells carry no selection
// affordance; the client must not offer them as clickable.
type DayCell struct {
	Day        int    `json:"day"`
	Date       string `json:"date"`
	Past       bool   `json:"past"`
	Selectable bool   `json:"selectable"`
	Selected   bool   `json:"selected"`
}

// Grid is the renderable calendar for one month view. LeadingBlanks is the
// number of empty cells before day 1 (weeks start on Sunday, as the site's
// calendar does). PrevEnabled is false whenever stepping back would show the
// current month's past or the current month itself is displayed.
type Grid struct {
	Year          int       `json:"year"`
	Month         int       `json:"month"`
	MonthName     string    `json:"month_name"`
	PrevEnabled   bool      `json:"prev_enabled"`
	LeadingBlanks int       `json:"leading_blanks"`
	Days          []DayCell `json:"days"`
}

// BuildGrid lays out the viewed month relative to today, marking past days
// and the selected date. selected may be the zero time when nothing is
// chosen yet.
func BuildGrid(view MonthView, selected, today time.Time) Grid {
	first := time.Date(view.Year, view.Month, 1, 0, 0, 0, 0, time.UTC)
	g := Grid{
		Year:          view.Year,
		Month:         int(view.Month),
		MonthName:     MonthName(view.Month),
		PrevEnabled:   view.After(CurrentMonthView(today)),
		LeadingBlanks: int(first.Weekday()),
	}
	days := daysIn(view.Year, view.Month)
	g.Days = make([]DayCell, 0, days)
	for day := 1; day <= days; day++ {
		date := time.Date(view.Year, view.Month, day, 0, 0, 0, 0, time.UTC)
		cell := DayCell{
			Day:  day,
			Date: date.Format(DateLayout),
			Past: BeforeDay(date, today),
		}
		cell.Selectable = !cell.Past
		if !selected.IsZero() && SameDay(date, selected) {
			cell.Selected = true
		}
		g.Days = append(g.Days, cell)
	}
	return g
}

func daysIn(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
