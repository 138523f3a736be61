package session_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"startuphub/internal/client/app/dto"
	"startuphub/internal/client/app/session"
	"startuphub/internal/client/ports/api"
)

type fakeClient struct {
	mu      sync.Mutex
	resp    *api.Response
	err     error
	lastReq *api.Request
}

func (f *fakeClient) Do(_ context.Context, req *api.Request) (*api.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type fakeUI struct {
	mu       sync.Mutex
	notices  []string
	navs     []string
	hardNavs []string
}

func (f *fakeUI) Notify(_ context.Context, message, _ string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notices = append(f.notices, message)
}

func (f *fakeUI) Navigate(_ context.Context, path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.navs = append(f.navs, path)
}

func (f *fakeUI) HardNavigate(_ context.Context, path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hardNavs = append(f.hardNavs, path)
}

func loginEnvelope(t *testing.T) *api.Response {
	t.Helper()

	resData, err := json.Marshal(map[string]any{
		"member":       map[string]any{"userId": "founder01", "userName": "Founder"},
		"accessToken":  "access-1",
		"refreshToken": "refresh-1",
	})
	require.NoError(t, err)

	return &api.Response{
		StatusCode: 200,
		Envelope: dto.Envelope{
			ClientMsg: "Welcome, Founder!",
			AlertIcon: dto.IconSuccess,
			ResData:   resData,
		},
	}
}

func TestController_LoginSuccess(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)
	client := &fakeClient{resp: loginEnvelope(t)}
	ui := &fakeUI{}

	controller := session.NewController(store, client, ui, ui)

	require.NoError(t, controller.Login(ctx, "founder01", "secret"))

	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, "access-1", store.AccessToken())
	assert.Equal(t, "refresh-1", store.RefreshToken())
	assert.Equal(t, []string{"/home"}, ui.navs)
	assert.Empty(t, ui.notices, "the pipeline already showed the envelope message")

	require.NotNil(t, client.lastReq)
	assert.Equal(t, "/member/login", client.lastReq.Path)
}

func TestController_LoginRejected(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)
	client := &fakeClient{resp: &api.Response{
		StatusCode: 200,
		Envelope:   dto.Envelope{ClientMsg: "Incorrect ID or password.", AlertIcon: dto.IconError},
	}}
	ui := &fakeUI{}

	controller := session.NewController(store, client, ui, ui)

	err := controller.Login(ctx, "founder01", "wrong")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Incorrect ID or password.")
	assert.False(t, store.IsAuthenticated(), "a rejected login leaves the store untouched")
	assert.Empty(t, ui.navs)
	assert.Empty(t, ui.notices)
}

func TestController_LoginFailureEnvelopeWithPayload(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)

	// Конверт отказа может нести полный resData: решает пометка
	// успешности, а не наличие данных.
	resData, err := json.Marshal(map[string]any{
		"member":       map[string]any{"userId": "founder01"},
		"accessToken":  "access-1",
		"refreshToken": "refresh-1",
	})
	require.NoError(t, err)

	client := &fakeClient{resp: &api.Response{
		StatusCode: 200,
		Envelope: dto.Envelope{
			ClientMsg: "Account locked.",
			AlertIcon: dto.IconError,
			ResData:   resData,
		},
	}}
	ui := &fakeUI{}

	controller := session.NewController(store, client, ui, ui)

	err = controller.Login(ctx, "founder01", "secret")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Account locked.")
	assert.False(t, store.IsAuthenticated(), "a failure-coded envelope must not mutate credentials")
	assert.Empty(t, store.AccessToken())
	assert.Empty(t, ui.navs)
}

func TestController_LoginTransportError(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)
	client := &fakeClient{err: errors.New("connection refused")}
	ui := &fakeUI{}

	controller := session.NewController(store, client, ui, ui)

	err := controller.Login(ctx, "founder01", "secret")

	require.Error(t, err)
	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, ui.navs)
}

func TestController_Logout(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)
	require.NoError(t, store.SetAuth(ctx, &dto.Member{UserID: "founder01"}, "access-1", "refresh-1"))
	ui := &fakeUI{}

	controller := session.NewController(store, &fakeClient{}, ui, ui)
	controller.Logout(ctx)

	assert.False(t, store.IsAuthenticated())
	assert.Equal(t, []string{"/login"}, ui.navs)
	assert.Empty(t, ui.hardNavs, "voluntary logout is an ordinary transition")
}

func TestController_ForceLogout(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)
	require.NoError(t, store.SetAuth(ctx, &dto.Member{UserID: "founder01"}, "access-1", "refresh-1"))
	ui := &fakeUI{}

	controller := session.NewController(store, &fakeClient{}, ui, ui)
	controller.ForceLogout(ctx, "Your session has expired. Please log in again.")

	assert.False(t, store.IsAuthenticated())
	assert.Equal(t, []string{"Your session has expired. Please log in again."}, ui.notices)
	assert.Equal(t, []string{"/login"}, ui.hardNavs)
}

func TestController_ForceLogoutIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)
	require.NoError(t, store.SetAuth(ctx, &dto.Member{UserID: "founder01"}, "access-1", "refresh-1"))
	ui := &fakeUI{}

	controller := session.NewController(store, &fakeClient{}, ui, ui)

	const workers = 10

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			controller.ForceLogout(ctx, "Your session has expired. Please log in again.")
		}()
	}
	wg.Wait()

	assert.Len(t, ui.notices, 1, "concurrent expirations produce a single notification")
	assert.Len(t, ui.hardNavs, 1)
}

func TestController_ForceLogoutOnAnonymousSession(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)
	ui := &fakeUI{}

	controller := session.NewController(store, &fakeClient{}, ui, ui)
	controller.ForceLogout(ctx, "whatever")

	assert.Empty(t, ui.notices)
	assert.Empty(t, ui.hardNavs)
}
