package test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/diegoclair/slack-break-bot/internal/domain/timemath"
	"github.com/diegoclair/slack-break-bot/internal/handlers"
	"github.com/diegoclair/slack-break-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const SigningSecret = "test-signing-secret"

type ServiceMocks struct {
	BookingServiceMock *mocks.MockBookingService
	AdminServiceMock   *mocks.MockAdminService
	SlackClientMock    *mocks.MockSlackClient
}

func GetHandlerTest(t *testing.T) (m ServiceMocks, handler *handlers.SlackHandler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		BookingServiceMock: mocks.NewMockBookingService(ctrl),
		AdminServiceMock:   mocks.NewMockAdminService(ctrl),
		SlackClientMock:    mocks.NewMockSlackClient(ctrl),
	}

	handler = handlers.New(m.SlackClientMock, m.BookingServiceMock, m.AdminServiceMock, SigningSecret, timemath.English, time.UTC)

	return
}

// CreateSlackRequest creates a properly signed Slack slash command request
func CreateSlackRequest(t *testing.T, command, text, channelID, userID, signingSecret string) *http.Request {
	t.Helper()

	form := url.Values{
		"token":        {"test-token"},
		"team_id":      {"T123456789"},
		"team_domain":  {"test-team"},
		"channel_id":   {channelID},
		"channel_name": {"breaks"},
		"user_id":      {userID},
		"user_name":    {"test-user"},
		"command":      {command},
		"text":         {text},
		"response_url": {"https://hooks.slack.com/commands/test"},
		"trigger_id":   {"test-trigger-id"},
	}

	body := form.Encode()

	req, err := http.NewRequest(http.MethodPost, "/slack/commands", strings.NewReader(body))
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)

	sig := generateSlackSignature(signingSecret, timestamp, body)
	req.Header.Set("X-Slack-Signature", sig)

	return req
}

func generateSlackSignature(signingSecret, timestamp, body string) string {
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, body)
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(baseString))
	signature := hex.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("v0=%s", signature)
}

func CreateTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}
