package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"hoteloncall/config"
	"hoteloncall/infras/otel"
	"hoteloncall/shared/constant"
	"hoteloncall/shared/logger"
)

//go:generate go run go.uber.org/mock/mockgen -source=upstream.go -destination=mock/upstream.go -package=upstream_mock

// Client relays requests to the prediction services and the chat model.
// Responses come back as raw JSON; prediction replies are forwarded
// untouched while the chat reply is unwrapped by the service layer.
type Client interface {
	PredictGuests(ctx context.Context, date string) (json.RawMessage, error)
	PredictFoodDemand(ctx context.Context, params url.Values) (json.RawMessage, error)
	Chat(ctx context.Context, message string) (json.RawMessage, error)
}

type client struct {
	http                *http.Client
	guestPredictionURL  string
	demandPredictionURL string
	huggingFaceURL      string
	huggingFaceAPIKey   string
	otel                otel.Otel
}

func New(conf *config.Config, otl otel.Otel) Client {
	return &client{
		http: &http.Client{
			Timeout: time.Duration(conf.Upstream.TimeoutSeconds) * time.Second,
		},
		guestPredictionURL:  conf.Upstream.GuestPredictionURL,
		demandPredictionURL: conf.Upstream.DemandPredictionURL,
		huggingFaceURL:      conf.Upstream.HuggingFaceURL,
		huggingFaceAPIKey:   conf.Upstream.HuggingFaceAPIKey,
		otel:                otl,
	}
}

func (c *client) PredictGuests(ctx context.Context, date string) (json.RawMessage, error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".upstream.PredictGuests")
	defer scope.End()

	params := url.Values{}
	params.Set(constant.RequestParamDate, date)

	return c.get(ctx, c.guestPredictionURL, params)
}

func (c *client) PredictFoodDemand(ctx context.Context, params url.Values) (json.RawMessage, error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".upstream.PredictFoodDemand")
	defer scope.End()

	return c.get(ctx, c.demandPredictionURL, params)
}

func (c *client) Chat(ctx context.Context, message string) (json.RawMessage, error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".upstream.Chat")
	defer scope.End()

	payload, err := json.Marshal(map[string]string{"inputs": message})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal chat payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.huggingFaceURL, bytes.NewReader(payload))
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to create upstream request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+c.huggingFaceAPIKey)

	return c.do(req)
}

func (c *client) get(ctx context.Context, baseURL string, params url.Values) (json.RawMessage, error) {
	target := baseURL
	if len(params) > 0 {
		target = baseURL + "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to create upstream request: %w", err)
	}

	return c.do(req)
}

func (c *client) do(req *http.Request) (json.RawMessage, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to call upstream service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to read upstream response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("upstream service returned status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}
