package slack

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/diegoclair/slack-break-bot/internal/domain"
)

type CommandType string

const (
	CmdShifts  CommandType = "shifts"
	CmdShift   CommandType = "shift"
	CmdSlots   CommandType = "slots"
	CmdPick    CommandType = "pick"
	CmdConfirm CommandType = "confirm"
	CmdBoard   CommandType = "board"
	CmdMe      CommandType = "me"
	CmdTheme   CommandType = "theme"
	CmdAdmin   CommandType = "admin"
	CmdHelp    CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}
	if len(parts) > 1 {
		cmd.Args = parts[1:]
	}

	switch strings.ToLower(parts[0]) {
	case "shifts", "ls":
		cmd.Type = CmdShifts
	case "shift", "use":
		cmd.Type = CmdShift
		if len(cmd.Args) != 1 {
			return nil, fmt.Errorf("usage: shift <id>")
		}
	case "slots":
		cmd.Type = CmdSlots
	case "pick", "toggle":
		cmd.Type = CmdPick
		if len(cmd.Args) < 2 {
			return nil, fmt.Errorf("usage: pick <time> <15|30>")
		}
	case "confirm", "book":
		cmd.Type = CmdConfirm
	case "board", "schedule":
		cmd.Type = CmdBoard
	case "me":
		cmd.Type = CmdMe
	case "theme":
		cmd.Type = CmdTheme
		if len(cmd.Args) != 1 {
			return nil, fmt.Errorf("usage: theme dark|light")
		}
	case "admin":
		cmd.Type = CmdAdmin
		if len(cmd.Args) < 2 {
			return nil, fmt.Errorf("usage: admin <passcode> <action>")
		}
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

// PickArgs splits "pick" arguments into the time text and the duration. The
// time may span two words when given in display form, e.g. "9:15 ص".
func (c *Command) PickArgs() (string, int, error) {
	if len(c.Args) < 2 {
		return "", 0, fmt.Errorf("usage: pick <time> <15|30>")
	}
	last := c.Args[len(c.Args)-1]
	duration, err := strconv.Atoi(strings.TrimSuffix(last, "m"))
	if err != nil || (duration != domain.ShortBreak && duration != domain.LongBreak) {
		return "", 0, fmt.Errorf("break duration must be %d or %d minutes", domain.ShortBreak, domain.LongBreak)
	}
	return strings.Join(c.Args[:len(c.Args)-1], " "), duration, nil
}

// Rest joins the arguments after skip, e.g. a name with spaces
func (c *Command) Rest(skip int) string {
	if skip >= len(c.Args) {
		return ""
	}
	return strings.Join(c.Args[skip:], " ")
}

type AdminAction string

const (
	AdminMax      AdminAction = "max"
	AdminClearAll AdminAction = "clear-all"
	AdminDelete   AdminAction = "delete"
	AdminUnlock   AdminAction = "unlock"
	AdminExport   AdminAction = "export"
	AdminShow     AdminAction = "show"
)

type AdminCommand struct {
	Passcode string
	Action   AdminAction
	Args     []string
}

func (c *Command) Admin() (*AdminCommand, error) {
	if c.Type != CmdAdmin || len(c.Args) < 2 {
		return nil, fmt.Errorf("usage: admin <passcode> <action>")
	}

	ac := &AdminCommand{Passcode: c.Args[0], Action: AdminAction(strings.ToLower(c.Args[1])), Args: c.Args[2:]}
	switch ac.Action {
	case AdminMax:
		if len(ac.Args) != 1 {
			return nil, fmt.Errorf("usage: admin <passcode> max <%d-%d>", domain.MinBreaksPerShift, domain.MaxBreaksPerShift)
		}
	case AdminDelete:
		if len(ac.Args) == 0 {
			return nil, fmt.Errorf("usage: admin <passcode> delete <name>")
		}
	case AdminExport:
		if len(ac.Args) != 1 {
			return nil, fmt.Errorf("usage: admin <passcode> export csv|xlsx|pdf")
		}
	case AdminClearAll, AdminUnlock, AdminShow:
	default:
		return nil, fmt.Errorf("unknown admin action: %s", ac.Action)
	}
	return ac, nil
}

// FormatOrder renders a duration sequence like "15, 30, 15"
func FormatOrder(order []int) string {
	parts := make([]string, len(order))
	for i, d := range order {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, ", ")
}

// GetHelpText lists the commands; order is the current required break sequence
func GetHelpText(order []int) string {
	return `*Available Commands:*

*Booking:*
• ` + "`/breaks shifts`" + ` - List the work shifts
• ` + "`/breaks shift ID`" + ` - Choose your shift (starts a new selection)
• ` + "`/breaks slots`" + ` - Show the break slots of your shift
• ` + "`/breaks pick HH:MM 15|30`" + ` - Select or unselect a slot (ex: 09:15 15)
• ` + "`/breaks confirm NAME`" + ` - Book your selected breaks under NAME

*Schedule:*
• ` + "`/breaks board [shift]`" + ` - Show the bookings of a shift with live timers
• ` + "`/breaks me`" + ` - Show your own breaks

*Preferences:*
• ` + "`/breaks theme dark|light`" + ` - Choose the message color theme

*Admin:*
• ` + "`/breaks admin PASSCODE show`" + ` - Show the current policy
• ` + "`/breaks admin PASSCODE max N`" + ` - Set breaks per shift (1-5)
• ` + "`/breaks admin PASSCODE delete NAME`" + ` - Delete all bookings under NAME
• ` + "`/breaks admin PASSCODE clear-all`" + ` - Delete every booking
• ` + "`/breaks admin PASSCODE unlock [@user|all]`" + ` - Clear a device name lock
• ` + "`/breaks admin PASSCODE export csv|xlsx|pdf`" + ` - Download the bookings table

Breaks must be picked in order: ` + FormatOrder(order) + ` minutes. Only the last picked break can be unselected.`
}
