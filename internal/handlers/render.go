package handlers

import (
	"fmt"
	"strings"

	"github.com/diegoclair/slack-break-bot/internal/domain"
	"github.com/diegoclair/slack-break-bot/internal/domain/contract"
	"github.com/diegoclair/slack-break-bot/internal/domain/entity"
	"github.com/diegoclair/slack-break-bot/internal/domain/status"
	"github.com/diegoclair/slack-break-bot/internal/domain/timemath"
)

var statusMarks = map[string]map[status.SlotStatus]string{
	domain.ThemeLight: {
		status.Available:     "🟢",
		status.WrongDuration: "⚪",
		status.Selected:      "🔵",
		status.Taken:         "🔴",
		status.Expired:       "⚫",
	},
	domain.ThemeDark: {
		status.Available:     "✳️",
		status.WrongDuration: "▫️",
		status.Selected:      "🔷",
		status.Taken:         "⛔",
		status.Expired:       "▪️",
	},
}

func marks(theme string) map[status.SlotStatus]string {
	if m, ok := statusMarks[theme]; ok {
		return m
	}
	return statusMarks[domain.ThemeLight]
}

type renderer struct {
	locale timemath.Locale
}

func (r renderer) shiftRange(s entity.ShiftDefinition) string {
	return fmt.Sprintf("%s - %s", r.locale.To12Hour(s.StartTime), r.locale.To12Hour(s.EndTime))
}

func (r renderer) shiftLine(s entity.ShiftDefinition) string {
	return fmt.Sprintf("• *%s* `%s` %s", s.Label(), s.ID, r.shiftRange(s))
}

func (r renderer) shifts(list []entity.ShiftDefinition) string {
	var b strings.Builder
	b.WriteString("*Work shifts:*\n")
	for _, s := range list {
		b.WriteString(r.shiftLine(s))
		b.WriteString("\n")
	}
	b.WriteString("\nUse `/breaks shift ID` to choose yours.")
	return b.String()
}

func (r renderer) selection(board *contract.SlotBoard) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*Selected %d/%d:* ", len(board.Selected), board.MaxBreaks)
	if len(board.Selected) == 0 {
		b.WriteString("none")
	}
	for i, s := range board.Selected {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s (%d min)", r.locale.To12Hour(s.StartTime), s.DurationMinutes)
	}
	b.WriteString("\n")

	switch {
	case board.RequiredDuration != nil:
		fmt.Fprintf(&b, "Next pick must be a *%d min* break.", *board.RequiredDuration)
	case len(board.Selected) == board.MaxBreaks:
		if board.LockedName != "" {
			fmt.Fprintf(&b, "All set. Use `/breaks confirm` to book as *%s*.", board.LockedName)
		} else {
			b.WriteString("All set. Use `/breaks confirm NAME` to book.")
		}
	default:
		b.WriteString("Unselect the last break to pick again.")
	}
	return b.String()
}

// board lists the slots in rows of three, one mark per status
func (r renderer) board(board *contract.SlotBoard, theme string) string {
	m := marks(theme)

	var b strings.Builder
	fmt.Fprintf(&b, "*%s* %s\n", board.Shift.Label(), r.shiftRange(board.Shift))
	order := make([]string, len(board.RequiredOrder))
	for i, d := range board.RequiredOrder {
		order[i] = fmt.Sprintf("%d", d)
	}
	fmt.Fprintf(&b, "Order: %s min\n\n", strings.Join(order, " → "))

	for i, v := range board.Slots {
		fmt.Fprintf(&b, "%s `%s` %dm", m[v.Status], r.locale.To12Hour(v.Slot.StartTime), v.Slot.DurationMinutes)
		if i%3 == 2 {
			b.WriteString("\n")
		} else {
			b.WriteString("   ")
		}
	}

	fmt.Fprintf(&b, "\n\n%s available  %s selected  %s taken  %s over  %s other duration\n\n",
		m[status.Available], m[status.Selected], m[status.Taken], m[status.Expired], m[status.WrongDuration])
	b.WriteString(r.selection(board))
	return b.String()
}

func (r renderer) cell(c contract.BreakCell) string {
	if c.Reservation == nil {
		return "not booked"
	}

	slot := fmt.Sprintf("%s (%d min)", r.locale.To12Hour(c.Reservation.StartTime), c.Reservation.DurationMinutes)
	switch c.Live.Phase {
	case status.Upcoming:
		return fmt.Sprintf("%s starts in %s", slot, r.locale.FormatDuration(c.Live.Remaining))
	case status.Active:
		return fmt.Sprintf("%s *%s left*", slot, r.locale.FormatDuration(c.Live.Remaining))
	default:
		return fmt.Sprintf("~%s~ done ✓", slot)
	}
}

func (r renderer) row(row contract.ScheduleRow) string {
	cells := make([]string, len(row.Cells))
	for i, c := range row.Cells {
		cells[i] = r.cell(c)
	}
	return fmt.Sprintf("*%s*: %s", row.Employee.Name, strings.Join(cells, " | "))
}

func (r renderer) schedule(s *contract.Schedule) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*Bookings for %s*\n", s.Shift.Label())
	if len(s.Rows) == 0 {
		b.WriteString("No bookings yet. Book yours with `/breaks shift " + s.Shift.ID + "`.")
		return b.String()
	}
	for _, row := range s.Rows {
		b.WriteString(r.row(row))
		b.WriteString("\n")
	}
	return b.String()
}

func slotOf(start entity.TimeOfDay, duration int) entity.BreakSlot {
	return entity.BreakSlot{StartTime: start, DurationMinutes: duration}
}
