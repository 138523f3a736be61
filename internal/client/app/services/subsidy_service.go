package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"startuphub/internal/client/app/dto"
	"startuphub/pkg/logger"
)

// Сообщения журнала каталога государственных услуг.
const (
	LogSubsidyList   = "fetching subsidy service list"
	LogSubsidyDetail = "fetching subsidy service detail"
)

// Сообщения об ошибках каталога государственных услуг.
const (
	ErrorSubsidyBuild    = "failed to build subsidy request"
	ErrorSubsidyCall     = "subsidy api call failed"
	ErrorSubsidyStatus   = "subsidy api returned unexpected status"
	ErrorSubsidyDecode   = "failed to decode subsidy payload"
	ErrorSubsidyNotFound = "subsidy service not found"
)

const subsidyListPath = "/serviceList"

const subsidyTimeout = 15 * time.Second

// SubsidyAPI реализует api.SubsidyService поверх внешнего портала
// открытых данных. Портал не использует конверт платформы и токены
// сессии, поэтому запросы идут мимо конвейера.
type SubsidyAPI struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
}

// NewSubsidyAPI создает клиент каталога государственных услуг.
func NewSubsidyAPI(baseURL, serviceKey string) *SubsidyAPI {
	return &SubsidyAPI{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		httpClient: &http.Client{Timeout: subsidyTimeout},
	}
}

// ServiceList возвращает страницу каталога услуг.
func (s *SubsidyAPI) ServiceList(ctx context.Context, page, perPage int) (*dto.SubsidyListResult, error) {
	logger.Log(ctx).Debug(ctx, LogSubsidyList, zap.Int("page", page), zap.Int("per_page", perPage))

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("perPage", strconv.Itoa(perPage))

	var result dto.SubsidyListResult
	if err := s.get(ctx, query, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// ServiceDetail возвращает одну услугу по идентификатору. Портал не
// имеет точечного эндпоинта, поэтому используется фильтр списка.
func (s *SubsidyAPI) ServiceDetail(ctx context.Context, serviceID string) (*dto.SubsidyService, error) {
	logger.Log(ctx).Debug(ctx, LogSubsidyDetail, zap.String("service_id", serviceID))

	query := url.Values{}
	query.Set("page", "1")
	query.Set("perPage", "1")
	query.Set("cond[서비스ID::EQ]", serviceID)

	var result dto.SubsidyListResult
	if err := s.get(ctx, query, &result); err != nil {
		return nil, err
	}

	if len(result.Data) == 0 {
		return nil, fmt.Errorf("%s: %s", ErrorSubsidyNotFound, serviceID)
	}

	return &result.Data[0], nil
}

func (s *SubsidyAPI) get(ctx context.Context, query url.Values, v any) error {
	query.Set("serviceKey", s.serviceKey)
	query.Set("returnType", "json")

	u := s.baseURL + subsidyListPath + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrorSubsidyBuild, err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrorSubsidyCall, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrorSubsidyCall, err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: %d", ErrorSubsidyStatus, resp.StatusCode)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", ErrorSubsidyDecode, err)
	}

	return nil
}
