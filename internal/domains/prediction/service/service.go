package service

import (
	"context"
	"encoding/json"
	"net/url"

	"hoteloncall/infras/otel"
	"hoteloncall/infras/upstream"
	"hoteloncall/internal/domains/prediction/model/dto"
	"hoteloncall/shared/constant"
	"hoteloncall/shared/failure"

	"github.com/rs/zerolog/log"
)

type Prediction interface {
	GuestPrediction(ctx context.Context, date string) (json.RawMessage, error)
	DemandPrediction(ctx context.Context, params url.Values) (json.RawMessage, error)
	Chat(ctx context.Context, req dto.ChatRequest) (dto.ChatResponse, error)
}

// chatFallback stands in when the model returns nothing usable.
const chatFallback = "Sorry, I didn't understand that."

type serviceImpl struct {
	upstream upstream.Client
	otel     otel.Otel
}

func New(upstream upstream.Client, otel otel.Otel) Prediction {
	return &serviceImpl{
		upstream: upstream,
		otel:     otel,
	}
}

func (s *serviceImpl) GuestPrediction(ctx context.Context, date string) (res json.RawMessage, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GuestPrediction")
	defer scope.End()
	defer scope.TraceIfError(err)

	if date == "" {
		return res, failure.BadRequestFromString("Date parameter is required (YYYY-MM-DD)")
	}

	res, err = s.upstream.PredictGuests(ctx, date)
	if err != nil {
		log.Error().Err(err).Msg("failed to call guest prediction service")

		return res, failure.BadGateway("Prediction service unavailable.")
	}

	return res, nil
}

func (s *serviceImpl) DemandPrediction(ctx context.Context, params url.Values) (res json.RawMessage, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DemandPrediction")
	defer scope.End()
	defer scope.TraceIfError(err)

	if params.Get(constant.RequestParamDate) == "" {
		return res, failure.BadRequestFromString("Date parameter is required (YYYY-MM-DD)")
	}

	res, err = s.upstream.PredictFoodDemand(ctx, params)
	if err != nil {
		log.Error().Err(err).Msg("failed to call demand prediction service")

		return res, failure.BadGateway("Prediction service unavailable.")
	}

	return res, nil
}

func (s *serviceImpl) Chat(ctx context.Context, req dto.ChatRequest) (res dto.ChatResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Chat")
	defer scope.End()
	defer scope.TraceIfError(err)

	raw, err := s.upstream.Chat(ctx, req.Message)
	if err != nil {
		log.Error().Err(err).Msg("failed to call chat model")

		return res, failure.BadGateway("Chat service unavailable.")
	}

	return dto.ChatResponse{GeneratedText: extractGeneratedText(raw)}, nil
}

// extractGeneratedText pulls generated_text out of the model reply. The
// inference API answers with a one-element array, older deployments with a
// bare object.
func extractGeneratedText(raw json.RawMessage) string {
	var entries []dto.ChatResponse
	if err := json.Unmarshal(raw, &entries); err == nil {
		if len(entries) > 0 && entries[0].GeneratedText != "" {
			return entries[0].GeneratedText
		}

		return chatFallback
	}

	var single dto.ChatResponse
	if err := json.Unmarshal(raw, &single); err == nil && single.GeneratedText != "" {
		return single.GeneratedText
	}

	return chatFallback
}
