package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/diegoclair/class-schedule-bot/internal/domain/contract"
	"github.com/diegoclair/class-schedule-bot/internal/domain/entity"
	"github.com/diegoclair/class-schedule-bot/internal/domain/service"
	slackcmd "github.com/diegoclair/class-schedule-bot/internal/slack"
	"github.com/slack-go/slack"
)

type SlackHandler struct {
	scheduleService contract.ScheduleService
	signingSecret   string
}

func New(scheduleService contract.ScheduleService, signingSecret string) *SlackHandler {
	return &SlackHandler{
		scheduleService: scheduleService,
		signingSecret:   signingSecret,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	response := h.handleCommand(cmd)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(cmd *slackcmd.Command) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdToday:
		return h.handleDay(h.scheduleService.Today())
	case slackcmd.CmdDay:
		return h.handleDay(cmd.Day)
	case slackcmd.CmdTriggers:
		return h.handleTriggers()
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleDay(day time.Weekday) *slack.Msg {
	lessons := h.scheduleService.Lessons(day)
	if len(lessons) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         fmt.Sprintf("📭 No lessons on %s.", day),
		}
	}

	var list strings.Builder
	list.WriteString(fmt.Sprintf("*Jadwal %s:*\n", day))
	for i, lesson := range lessons {
		list.WriteString(fmt.Sprintf("%d. %s - %s %s", i+1,
			service.FormatTime(lesson.StartTime), service.FormatTime(lesson.EndTime), lesson.Subject))
		if lesson.HasTeacher() {
			list.WriteString(fmt.Sprintf(" (%s)", lesson.Teacher))
		}
		if lesson.Room != "" {
			list.WriteString(fmt.Sprintf(" @ %s", lesson.Room))
		}
		list.WriteString("\n")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         list.String(),
	}
}

func (h *SlackHandler) handleTriggers() *slack.Msg {
	triggers := h.scheduleService.Triggers()
	if len(triggers) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No notifications are scheduled.",
		}
	}

	var list strings.Builder
	list.WriteString(fmt.Sprintf("*%d scheduled notifications:*\n", len(triggers)))
	for _, trigger := range triggers {
		list.WriteString(formatTrigger(trigger))
		list.WriteString("\n")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         list.String(),
	}
}

func formatTrigger(trigger entity.Trigger) string {
	return fmt.Sprintf("• %s %02d:%02d %s (%s)",
		trigger.DayLabel(), trigger.Hour, trigger.Minute, trigger.Kind, trigger.Lesson.Subject)
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
