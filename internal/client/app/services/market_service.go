package services

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"startuphub/internal/client/app/dto"
	"startuphub/internal/client/ports/api"
	"startuphub/pkg/logger"
)

// Сообщения журнала сервиса маркетплейса.
const (
	LogMarketList   = "fetching market list"
	LogMarketCreate = "creating market item"
	LogMarketUpdate = "updating market item"
	LogMarketDelete = "deleting market item"
)

// Сообщения об ошибках сервиса маркетплейса.
const (
	ErrorMarketCall   = "market api call failed"
	ErrorMarketDecode = "failed to decode market payload"
)

// MarketAPI реализует api.MarketService.
type MarketAPI struct {
	client api.Client
}

// NewMarketAPI создает сервис маркетплейса.
func NewMarketAPI(client api.Client) *MarketAPI {
	return &MarketAPI{client: client}
}

// List возвращает все объявления маркетплейса.
func (m *MarketAPI) List(ctx context.Context) ([]dto.Market, error) {
	logger.Log(ctx).Debug(ctx, LogMarketList)

	req := api.NewRequest(http.MethodGet, "/api/market/list")

	resp, err := m.client.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorMarketCall, err)
	}

	var markets []dto.Market
	if err := resp.Envelope.DecodeResData(&markets); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorMarketDecode, err)
	}

	return markets, nil
}

// Detail возвращает объявление по номеру.
func (m *MarketAPI) Detail(ctx context.Context, marketNo int) (*dto.Market, error) {
	req := api.NewRequest(http.MethodGet, "/api/market/detail/"+strconv.Itoa(marketNo))

	resp, err := m.client.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorMarketCall, err)
	}

	var market dto.Market
	if err := resp.Envelope.DecodeResData(&market); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorMarketDecode, err)
	}

	return &market, nil
}

// Create создает объявление.
func (m *MarketAPI) Create(ctx context.Context, market *dto.Market) error {
	logger.Log(ctx).Info(ctx, LogMarketCreate, zap.String("title", market.MarketTitle))

	req := api.NewRequest(http.MethodPost, "/api/market/write")
	req.Body = market

	if _, err := m.client.Do(ctx, req); err != nil {
		return fmt.Errorf("%s: %w", ErrorMarketCall, err)
	}

	return nil
}

// Update обновляет объявление.
func (m *MarketAPI) Update(ctx context.Context, marketNo int, market *dto.Market) error {
	logger.Log(ctx).Info(ctx, LogMarketUpdate, zap.Int("market_no", marketNo))

	req := api.NewRequest(http.MethodPut, "/api/market/update/"+strconv.Itoa(marketNo))
	req.Body = market

	if _, err := m.client.Do(ctx, req); err != nil {
		return fmt.Errorf("%s: %w", ErrorMarketCall, err)
	}

	return nil
}

// Delete удаляет объявление.
func (m *MarketAPI) Delete(ctx context.Context, marketNo int) error {
	logger.Log(ctx).Info(ctx, LogMarketDelete, zap.Int("market_no", marketNo))

	req := api.NewRequest(http.MethodDelete, "/api/market/delete/"+strconv.Itoa(marketNo))

	if _, err := m.client.Do(ctx, req); err != nil {
		return fmt.Errorf("%s: %w", ErrorMarketCall, err)
	}

	return nil
}

// Comments возвращает комментарии объявления.
func (m *MarketAPI) Comments(ctx context.Context, marketNo int) ([]dto.MarketComment, error) {
	req := api.NewRequest(http.MethodGet, "/api/market/comments/"+strconv.Itoa(marketNo))

	resp, err := m.client.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorMarketCall, err)
	}

	var comments []dto.MarketComment
	if err := resp.Envelope.DecodeResData(&comments); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorMarketDecode, err)
	}

	return comments, nil
}
