package formatter

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/alexanderramin/stagehand/internal/app"
	"github.com/alexanderramin/stagehand/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const minLabelWidth = 8

// FormatBoard draws each location lane as stacked rows of event bars on a
// day grid starting at resp.From. Days past maxDays are cut off; maxDays <= 0
// means no limit.
func FormatBoard(resp *app.LocationBoardResponse, dayWidth, maxDays int) (string, error) {
	if resp == nil || len(resp.Lanes) == 0 {
		return Dim("No events booked in this window.") + "\n", nil
	}
	days, err := domain.DateRange(resp.From, resp.To)
	if err != nil {
		return "", fmt.Errorf("board window: %w", err)
	}
	hidden := 0
	if maxDays > 0 && len(days) > maxDays {
		hidden = len(days) - maxDays
		days = days[:maxDays]
	}
	dayWidth = max(dayWidth, 1)

	labelWidth := minLabelWidth
	for _, lane := range resp.Lanes {
		labelWidth = max(labelWidth, lipgloss.Width(lane.LocationName))
	}
	indent := strings.Repeat(" ", labelWidth+colGap)

	var b strings.Builder
	b.WriteString(indent + Dim(monthLine(days, dayWidth)) + "\n")
	b.WriteString(indent + Dim(dayRuler(days, dayWidth)) + "\n")

	for _, lane := range resp.Lanes {
		rows := groupRows(lane.Events)
		for r, bars := range rows {
			label := ""
			if r == 0 {
				label = lane.LocationName
			}
			b.WriteString(StyleBold.Render(label))
			b.WriteString(strings.Repeat(" ", labelWidth-lipgloss.Width(label)+colGap))
			line, err := drawBars(bars, days[0], len(days), dayWidth)
			if err != nil {
				return "", err
			}
			b.WriteString(line + "\n")
		}
	}

	if hidden > 0 {
		b.WriteString(Dim(fmt.Sprintf("… %d more day(s) not shown", hidden)) + "\n")
	}
	return b.String(), nil
}

// FormatRows lists the row each event was packed into, one block per lane.
func FormatRows(resp *app.LocationBoardResponse) string {
	if resp == nil || len(resp.Lanes) == 0 {
		return Dim("No events booked in this window.") + "\n"
	}
	var b strings.Builder
	for i, lane := range resp.Lanes {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Header(lane.LocationName) + "\n")
		b.WriteString(Dim(fmt.Sprintf("%d row(s), peak %d concurrent", lane.RowCount, lane.MaxConcurrent)) + "\n\n")

		rows := make([][]string, 0, len(lane.Events))
		for _, e := range lane.Events {
			rows = append(rows, []string{
				strconv.Itoa(e.Row),
				e.Name,
				DateSpan(e.StartDate, e.EndDate),
				StatusPill(domain.EventStatus(e.Status)),
				TruncID(e.EventID),
			})
		}
		b.WriteString(RenderTable([]string{"ROW", "EVENT", "DATES", "STATUS", "ID"}, rows))
	}
	return b.String()
}

func groupRows(events []app.EventBar) [][]app.EventBar {
	var rows [][]app.EventBar
	for _, e := range events {
		for len(rows) <= e.Row {
			rows = append(rows, nil)
		}
		rows[e.Row] = append(rows[e.Row], e)
	}
	for _, r := range rows {
		sort.SliceStable(r, func(i, j int) bool { return r[i].StartDate < r[j].StartDate })
	}
	return rows
}

// drawBars renders one board row. Bars are clipped to the window and never
// drawn over each other.
func drawBars(bars []app.EventBar, origin string, ndays, dayWidth int) (string, error) {
	var b strings.Builder
	cursor := 0
	for _, e := range bars {
		first, err := domain.DaysBetween(origin, e.StartDate)
		if err != nil {
			return "", err
		}
		last, err := domain.DaysBetween(origin, e.EndDate)
		if err != nil {
			return "", err
		}
		first, last = max(first, 0), min(last, ndays-1)
		if last < first {
			continue
		}
		start, width := first*dayWidth, (last-first+1)*dayWidth
		if start < cursor {
			width -= cursor - start
			start = cursor
		}
		if width <= 0 {
			continue
		}
		b.WriteString(strings.Repeat(" ", start-cursor))
		b.WriteString(StatusStyle(domain.EventStatus(e.Status)).Render(barText(e.Name, width)))
		cursor = start + width
	}
	return b.String(), nil
}

func barText(name string, width int) string {
	label := truncate(name, width)
	return label + strings.Repeat("═", width-len([]rune(label)))
}

// dayRuler prints the day of month for every column that has room for it.
func dayRuler(days []string, dayWidth int) string {
	var b strings.Builder
	for _, d := range days {
		num := strings.TrimLeft(d[8:], "0")
		if len(num) > dayWidth {
			num = num[len(num)-dayWidth:]
		}
		b.WriteString(num + strings.Repeat(" ", dayWidth-len(num)))
	}
	return strings.TrimRight(b.String(), " ")
}

// monthLine labels the first column and every first of the month.
func monthLine(days []string, dayWidth int) string {
	line := []rune(strings.Repeat(" ", len(days)*dayWidth))
	next := 0
	for i, d := range days {
		if i > 0 && d[8:] != "01" {
			continue
		}
		t, err := domain.ParseDateKey(d)
		if err != nil {
			continue
		}
		col := i * dayWidth
		if col < next {
			continue
		}
		label := []rune(t.Format("Jan 2006"))
		if col+len(label) > len(line) {
			label = label[:max(0, len(line)-col)]
		}
		copy(line[col:], label)
		next = col + len(label) + 1
	}
	return strings.TrimRight(string(line), " ")
}
