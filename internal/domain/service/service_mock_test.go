package service

import (
	"strings"
	"testing"
	"time"

	"github.com/diegoclair/slack-break-bot/internal/domain"
	"github.com/diegoclair/slack-break-bot/internal/domain/contract"
	"github.com/diegoclair/slack-break-bot/internal/domain/shift"
	"github.com/diegoclair/slack-break-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager  *mocks.MockDataManager
	mockSettingsRepo *mocks.MockSettingsRepo
	mockNotifier     *mocks.MockNotifier
	kv               map[string]string
}

type fakePasscode string

func (p fakePasscode) Check(passcode string) error {
	if passcode != string(p) {
		return domain.ErrUnauthorized
	}
	return nil
}

// newServiceTestMock wires an Instance over mocks. The settings repo is backed
// by an in-memory map so tests can assert on what was persisted.
func newServiceTestMock(t *testing.T, kv map[string]string) (m allMocks, svc *Instance, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	if kv == nil {
		kv = map[string]string{}
	}

	dm := mocks.NewMockDataManager(ctrl)
	settingsRepo := mocks.NewMockSettingsRepo(ctrl)
	dm.EXPECT().Settings().Return(settingsRepo).AnyTimes()

	settingsRepo.EXPECT().Get(gomock.Any()).DoAndReturn(func(key string) (string, bool, error) {
		v, ok := kv[key]
		return v, ok, nil
	}).AnyTimes()
	settingsRepo.EXPECT().Set(gomock.Any(), gomock.Any()).DoAndReturn(func(key, value string) error {
		kv[key] = value
		return nil
	}).AnyTimes()
	settingsRepo.EXPECT().Remove(gomock.Any()).DoAndReturn(func(key string) error {
		delete(kv, key)
		return nil
	}).AnyTimes()
	settingsRepo.EXPECT().RemovePrefix(gomock.Any()).DoAndReturn(func(prefix string) (int64, error) {
		var n int64
		for k := range kv {
			if strings.HasPrefix(k, prefix) {
				delete(kv, k)
				n++
			}
		}
		return n, nil
	}).AnyTimes()

	notifier := mocks.NewMockNotifier(ctrl)

	m = allMocks{
		mockDataManager:  dm,
		mockSettingsRepo: settingsRepo,
		mockNotifier:     notifier,
		kv:               kv,
	}

	svc, err := NewInstance(dm, shift.DefaultCatalog(), notifier, fakePasscode("12345"), time.Second, time.UTC)
	require.NoError(t, err)
	require.NotNil(t, svc)

	return m, svc, ctrl
}

var _ contract.BookingService = (*bookingService)(nil)
var _ contract.AdminService = (*adminService)(nil)
