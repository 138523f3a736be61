package services_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"startuphub/internal/client/app/dto"
	"startuphub/internal/client/app/services"
	"startuphub/internal/client/ports/api"
)

type stubClient struct {
	mu      sync.Mutex
	resp    *api.Response
	err     error
	lastReq *api.Request
}

func (s *stubClient) Do(_ context.Context, req *api.Request) (*api.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func envelopeResponse(t *testing.T, resData any) *api.Response {
	t.Helper()

	raw, err := json.Marshal(resData)
	require.NoError(t, err)

	return &api.Response{StatusCode: 200, Envelope: dto.Envelope{ResData: raw}}
}

func TestPostAPI_ListDecodesRawBody(t *testing.T) {
	ctx := context.Background()

	// Список записей отвечает без конверта.
	body, err := json.Marshal(map[string]any{
		"list":       []map[string]any{{"postNo": 7, "postTitle": "Fundraising tips", "userId": "founder01"}},
		"pi":         map[string]any{"reqPage": 2, "totalPage": 5},
		"totalCount": 42,
	})
	require.NoError(t, err)

	client := &stubClient{resp: &api.Response{StatusCode: 200, Body: body}}

	result, err := services.NewPostAPI(client).List(ctx, "free", 2)

	require.NoError(t, err)
	require.Len(t, result.List, 1)
	assert.Equal(t, 7, result.List[0].PostNo)
	assert.Equal(t, "Fundraising tips", result.List[0].PostTitle)
	assert.Equal(t, 2, result.PageInfo.ReqPage)
	assert.Equal(t, 42, result.TotalCount)

	require.NotNil(t, client.lastReq)
	assert.Equal(t, "/api/post/list/free/2", client.lastReq.Path)
}

func TestMemberAPI_CheckUserID(t *testing.T) {
	ctx := context.Background()
	client := &stubClient{resp: envelopeResponse(t, 1)}

	count, err := services.NewMemberAPI(client).CheckUserID(ctx, "founder01")

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, "/member/checkUserId/founder01", client.lastReq.Path)
}

func TestMemberAPI_GetMember(t *testing.T) {
	ctx := context.Background()
	client := &stubClient{resp: envelopeResponse(t, map[string]any{
		"userId":   "founder01",
		"userName": "Founder",
	})}

	member, err := services.NewMemberAPI(client).GetMember(ctx, "founder01")

	require.NoError(t, err)
	assert.Equal(t, "founder01", member.UserID)
	assert.Equal(t, "Founder", member.UserName)
}

func TestMarketAPI_ListDecodesEnvelope(t *testing.T) {
	ctx := context.Background()
	client := &stubClient{resp: envelopeResponse(t, []map[string]any{
		{"marketNo": 3, "marketTitle": "Office chair", "price": 15000},
	})}

	markets, err := services.NewMarketAPI(client).List(ctx)

	require.NoError(t, err)
	require.Len(t, markets, 1)
	assert.Equal(t, 3, markets[0].MarketNo)
	require.NotNil(t, markets[0].Price)
	assert.Equal(t, 15000, *markets[0].Price)
}

func TestSubsidyAPI_ServiceListPropagatesServiceKey(t *testing.T) {
	ctx := context.Background()

	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(`{
			"data": [{"서비스ID": "SVC001", "서비스명": "Startup voucher", "서비스분야": "창업"}],
			"totalCount": 1, "page": 1, "perPage": 10
		}`))
		require.NoError(t, err)
	}))
	defer server.Close()

	subsidy := services.NewSubsidyAPI(server.URL, "test-key")

	result, err := subsidy.ServiceList(ctx, 1, 10)

	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "SVC001", result.Data[0].ServiceID)
	assert.Equal(t, "Startup voucher", result.Data[0].ServiceName)

	assert.Equal(t, []string{"test-key"}, gotQuery["serviceKey"])
	assert.Equal(t, []string{"json"}, gotQuery["returnType"])
	assert.Equal(t, []string{"1"}, gotQuery["page"])
	assert.Equal(t, []string{"10"}, gotQuery["perPage"])
}

func TestSubsidyAPI_ServiceDetailNotFound(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(`{"data": [], "totalCount": 0}`))
		require.NoError(t, err)
	}))
	defer server.Close()

	_, err := services.NewSubsidyAPI(server.URL, "test-key").ServiceDetail(ctx, "SVC404")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "SVC404")
}
