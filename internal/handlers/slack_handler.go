package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/slack-break-bot/internal/domain"
	"github.com/diegoclair/slack-break-bot/internal/domain/contract"
	"github.com/diegoclair/slack-break-bot/internal/domain/entity"
	slackcmd "github.com/diegoclair/slack-break-bot/internal/domain/slack"
	"github.com/diegoclair/slack-break-bot/internal/domain/timemath"
	"github.com/slack-go/slack"
)

type SlackHandler struct {
	slackClient    contract.SlackClient
	bookingService contract.BookingService
	adminService   contract.AdminService
	signingSecret  string
	render         renderer
	loc            *time.Location
}

func New(slackClient contract.SlackClient, bookingService contract.BookingService, adminService contract.AdminService, signingSecret string, locale timemath.Locale, loc *time.Location) *SlackHandler {
	if loc == nil {
		loc = time.Local
	}
	return &SlackHandler{
		slackClient:    slackClient,
		bookingService: bookingService,
		adminService:   adminService,
		signingSecret:  signingSecret,
		render:         renderer{locale: locale},
		loc:            loc,
	}
}

func (h *SlackHandler) now() time.Time {
	return time.Now().In(h.loc)
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
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

	response := h.handleCommand(r.Context(), cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdShifts:
		return h.handleShifts()
	case slackcmd.CmdShift:
		return h.handleSelectShift(cmd, slashCmd)
	case slackcmd.CmdSlots:
		return h.handleSlots(slashCmd)
	case slackcmd.CmdPick:
		return h.handlePick(cmd, slashCmd)
	case slackcmd.CmdConfirm:
		return h.handleConfirm(ctx, cmd, slashCmd)
	case slackcmd.CmdBoard:
		return h.handleBoard(cmd, slashCmd)
	case slackcmd.CmdMe:
		return h.handleMe(slashCmd)
	case slackcmd.CmdTheme:
		return h.handleTheme(cmd, slashCmd)
	case slackcmd.CmdAdmin:
		return h.handleAdmin(ctx, cmd, slashCmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleShifts() *slack.Msg {
	return ephemeral(h.render.shifts(h.bookingService.ListShifts()))
}

func (h *SlackHandler) handleSelectShift(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	sh, err := h.bookingService.SelectShift(slashCmd.UserID, cmd.Args[0])
	if err != nil {
		return h.errorResponse(err)
	}
	return ephemeral(fmt.Sprintf("✅ Shift chosen: *%s* %s\nUse `/breaks slots` to see the available breaks.", sh.Label(), h.render.shiftRange(sh)))
}

func (h *SlackHandler) handleSlots(slashCmd *slack.SlashCommand) *slack.Msg {
	board, err := h.bookingService.Slots(slashCmd.UserID, h.now())
	if err != nil {
		return h.errorResponse(err)
	}
	return ephemeral(h.render.board(board, h.bookingService.Theme(slashCmd.UserID)))
}

func (h *SlackHandler) handlePick(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	timeText, duration, err := cmd.PickArgs()
	if err != nil {
		return h.createErrorResponse(err.Error())
	}
	start, err := h.render.locale.ParseAny(timeText)
	if err != nil {
		return h.errorResponse(err)
	}

	board, err := h.bookingService.Toggle(slashCmd.UserID, slotOf(start, duration), h.now())
	if err != nil {
		return h.errorResponse(err)
	}
	return ephemeral(h.render.selection(board))
}

func (h *SlackHandler) handleConfirm(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	employee, err := h.bookingService.Confirm(ctx, slashCmd.UserID, cmd.Rest(0), h.now())
	if err != nil {
		return h.errorResponse(err)
	}

	times := make([]string, len(employee.Breaks))
	for i, b := range employee.Breaks {
		times[i] = fmt.Sprintf("%s (%d min)", h.render.locale.To12Hour(b.StartTime), b.DurationMinutes)
	}
	return ephemeral(fmt.Sprintf("✅ Breaks booked for *%s*: %s", employee.Name, strings.Join(times, ", ")))
}

func (h *SlackHandler) handleBoard(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	now := h.now()

	shiftID := cmd.Rest(0)
	if shiftID == "" {
		board, err := h.bookingService.Slots(slashCmd.UserID, now)
		if err != nil {
			return h.createErrorResponse("Choose a shift first or name one: `/breaks board SHIFT`")
		}
		shiftID = board.Shift.ID
	}

	schedule, err := h.bookingService.Schedule(shiftID, now)
	if err != nil {
		return h.errorResponse(err)
	}
	return ephemeral(h.render.schedule(schedule))
}

func (h *SlackHandler) handleMe(slashCmd *slack.SlashCommand) *slack.Msg {
	row, err := h.bookingService.MyBooking(slashCmd.UserID, h.now())
	if err != nil {
		return h.errorResponse(err)
	}
	if row == nil {
		return ephemeral("You have no booked breaks. Start with `/breaks shifts`.")
	}
	return ephemeral(h.render.row(*row))
}

func (h *SlackHandler) handleTheme(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if err := h.bookingService.SetTheme(slashCmd.UserID, cmd.Args[0]); err != nil {
		return h.createErrorResponse(err.Error())
	}
	return ephemeral(fmt.Sprintf("✅ Theme set to %s", h.bookingService.Theme(slashCmd.UserID)))
}

func (h *SlackHandler) handleAdmin(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	ac, err := cmd.Admin()
	if err != nil {
		return h.createErrorResponse(err.Error())
	}
	if err := h.adminService.Authenticate(ac.Passcode); err != nil {
		log.Printf("Rejected admin command from %s", slashCmd.UserID)
		return h.errorResponse(err)
	}

	switch ac.Action {
	case slackcmd.AdminShow:
		return ephemeral(fmt.Sprintf("Breaks per shift: *%d*\nBookings: *%d*", h.adminService.MaxBreaks(), len(h.adminService.Employees())))

	case slackcmd.AdminMax:
		n, err := strconv.Atoi(ac.Args[0])
		if err != nil {
			return h.createErrorResponse(fmt.Sprintf("Breaks per shift must be a number between %d and %d", domain.MinBreaksPerShift, domain.MaxBreaksPerShift))
		}
		if err := h.adminService.SetMaxBreaks(ctx, n); err != nil {
			return h.errorResponse(err)
		}
		return ephemeral(fmt.Sprintf("✅ Breaks per shift set to %d", n))

	case slackcmd.AdminClearAll:
		n := h.adminService.DeleteAll(ctx)
		return ephemeral(fmt.Sprintf("✅ Deleted all bookings (%d)", n))

	case slackcmd.AdminDelete:
		name := strings.Join(ac.Args, " ")
		n := h.adminService.DeleteByName(ctx, name)
		if n == 0 {
			return h.createErrorResponse(fmt.Sprintf("No bookings found for %s", name))
		}
		return ephemeral(fmt.Sprintf("✅ Deleted %d booking(s) for %s", n, name))

	case slackcmd.AdminUnlock:
		if len(ac.Args) > 0 && strings.EqualFold(ac.Args[0], "all") {
			n, err := h.adminService.ClearAllLocks(ctx)
			if err != nil {
				return h.errorResponse(err)
			}
			return ephemeral(fmt.Sprintf("✅ Cleared %d name lock(s)", n))
		}

		deviceID := slashCmd.UserID
		if len(ac.Args) > 0 {
			deviceID = extractUserID(ac.Args[0])
		}
		if err := h.adminService.ClearDeviceLock(ctx, deviceID); err != nil {
			return h.errorResponse(err)
		}
		return ephemeral(fmt.Sprintf("✅ Name lock cleared for <@%s>", deviceID))

	case slackcmd.AdminExport:
		return h.handleExport(ctx, ac.Args[0], slashCmd)
	}

	return h.createErrorResponse("Unknown admin action")
}

func (h *SlackHandler) handleExport(ctx context.Context, format string, slashCmd *slack.SlashCommand) *slack.Msg {
	file, err := h.adminService.Export(format, h.now())
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	_, err = h.slackClient.UploadFileV2Context(ctx, slack.UploadFileV2Parameters{
		Channel:  slashCmd.ChannelID,
		Filename: file.Name,
		Title:    file.Name,
		FileSize: len(file.Data),
		Reader:   bytes.NewReader(file.Data),
	})
	if err != nil {
		log.Printf("Failed to upload export %s to %s: %v", file.Name, slashCmd.ChannelID, err)
		return h.createErrorResponse("Could not upload the export file")
	}
	return ephemeral(fmt.Sprintf("✅ Uploaded %s", file.Name))
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return ephemeral(slackcmd.GetHelpText(h.requiredOrder()))
}

func (h *SlackHandler) requiredOrder() []int {
	return entity.Policy{MaxBreaks: h.adminService.MaxBreaks()}.RequiredOrder()
}

// errorResponse turns a domain error into a message the user can act on
func (h *SlackHandler) errorResponse(err error) *slack.Msg {
	switch {
	case errors.Is(err, domain.ErrNoShiftSelected):
		return h.createErrorResponse("Choose a shift first: `/breaks shifts`")
	case errors.Is(err, domain.ErrShiftNotFound):
		return h.createErrorResponse("Unknown shift. See `/breaks shifts`")
	case errors.Is(err, domain.ErrOutOfOrderRemoval):
		return h.createErrorResponse("Unselect your last picked break first")
	case errors.Is(err, domain.ErrLimitReached):
		return h.createErrorResponse(fmt.Sprintf("You already picked %d breaks", h.adminService.MaxBreaks()))
	case errors.Is(err, domain.ErrWrongDuration):
		return h.createErrorResponse(fmt.Sprintf("That break has the wrong duration. Breaks go %s minutes", slackcmd.FormatOrder(h.requiredOrder())))
	case errors.Is(err, domain.ErrSlotUnavailable):
		return h.createErrorResponse("That slot is not available")
	case errors.Is(err, domain.ErrSlotTaken):
		return h.createErrorResponse("One of your slots was just booked by someone else. Pick again")
	case errors.Is(err, domain.ErrMissingName):
		return h.createErrorResponse("Please enter your name: `/breaks confirm NAME`")
	case errors.Is(err, domain.ErrIncompleteSelection):
		return h.createErrorResponse(fmt.Sprintf("You must pick %d breaks", h.adminService.MaxBreaks()))
	case errors.Is(err, domain.ErrNameLocked):
		return h.createErrorResponse("You already booked under another name. Ask an admin to unlock it")
	case errors.Is(err, domain.ErrInvalidPolicy):
		return h.createErrorResponse(fmt.Sprintf("Breaks per shift must be between %d and %d", domain.MinBreaksPerShift, domain.MaxBreaksPerShift))
	case errors.Is(err, domain.ErrUnauthorized):
		return h.createErrorResponse("Wrong passcode")
	case errors.Is(err, domain.ErrParse):
		return h.createErrorResponse(fmt.Sprintf("Invalid time: %v", err))
	}

	log.Printf("Unexpected error handling command: %v", err)
	return h.createErrorResponse("Something went wrong, try again")
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

func ephemeral(text string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text,
	}
}

// extractUserID turns a mention like <@U123|name> into U123
func extractUserID(mention string) string {
	id := strings.TrimSpace(mention)
	id = strings.TrimPrefix(id, "<@")
	id = strings.TrimSuffix(id, ">")
	if i := strings.Index(id, "|"); i >= 0 {
		id = id[:i]
	}
	return id
}
