package slack

import (
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/class-schedule-bot/internal/domain/entity"
)

type CommandType string

const (
	CmdToday    CommandType = "today"
	CmdDay      CommandType = "day"
	CmdTriggers CommandType = "triggers"
	CmdHelp     CommandType = "help"
)

type Command struct {
	Type CommandType
	Day  time.Weekday
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdToday}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch strings.ToLower(parts[0]) {
	case "today":
		cmd.Type = CmdToday
	case "triggers", "jobs":
		cmd.Type = CmdTriggers
	case "help":
		cmd.Type = CmdHelp
	default:
		day, err := entity.ParseWeekday(parts[0])
		if err != nil {
			return nil, fmt.Errorf("unknown command: %s", parts[0])
		}
		cmd.Type = CmdDay
		cmd.Day = day
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Available Commands:*

*Timetable:*
• ` + "`/jadwal`" + ` or ` + "`/jadwal today`" + ` - Show today's lessons
• ` + "`/jadwal monday`" + ` - Show the lessons of a given day (sunday … saturday)

*Notifications:*
• ` + "`/jadwal triggers`" + ` - List every scheduled notification and when it fires`
}
