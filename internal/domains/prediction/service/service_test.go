package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hoteloncall/infras/otel/mocks"
	upstreamMocks "hoteloncall/infras/upstream/mocks"
	"hoteloncall/internal/domains/prediction/model/dto"
	"hoteloncall/internal/domains/prediction/service"
)

func TestPredictionService_GuestPrediction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := upstreamMocks.NewMockClient(ctrl)

	svc := service.New(mockClient, mocks.NewOtel())

	tests := []struct {
		name      string
		date      string
		setupMock func()
		wantErr   bool
		wantMsg   string
		wantBody  string
	}{
		{
			name: "prediction relayed as-is",
			date: "2026-09-01",
			setupMock: func() {
				mockClient.EXPECT().
					PredictGuests(gomock.Any(), "2026-09-01").
					Return(json.RawMessage(`{"predicted_guests":42}`), nil)
			},
			wantErr:  false,
			wantBody: `{"predicted_guests":42}`,
		},
		{
			name:      "missing date",
			date:      "",
			setupMock: func() {},
			wantErr:   true,
			wantMsg:   "Date parameter is required (YYYY-MM-DD)",
		},
		{
			name: "upstream unavailable",
			date: "2026-09-01",
			setupMock: func() {
				mockClient.EXPECT().
					PredictGuests(gomock.Any(), "2026-09-01").
					Return(nil, errors.New("connection refused"))
			},
			wantErr: true,
			wantMsg: "Prediction service unavailable.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.GuestPrediction(context.Background(), tt.date)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantMsg != "" {
					assert.EqualError(t, err, tt.wantMsg)
				}
			} else {
				assert.NoError(t, err)
				assert.JSONEq(t, tt.wantBody, string(result))
			}
		})
	}
}

func TestPredictionService_DemandPrediction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := upstreamMocks.NewMockClient(ctrl)

	svc := service.New(mockClient, mocks.NewOtel())

	tests := []struct {
		name      string
		params    url.Values
		setupMock func()
		wantErr   bool
		wantMsg   string
	}{
		{
			name:   "forwards the full query",
			params: url.Values{"date": {"2026-09-01"}, "item": {"Pizza"}},
			setupMock: func() {
				mockClient.EXPECT().
					PredictFoodDemand(gomock.Any(), url.Values{"date": {"2026-09-01"}, "item": {"Pizza"}}).
					Return(json.RawMessage(`{"demand":17}`), nil)
			},
			wantErr: false,
		},
		{
			name:      "missing date",
			params:    url.Values{"item": {"Pizza"}},
			setupMock: func() {},
			wantErr:   true,
			wantMsg:   "Date parameter is required (YYYY-MM-DD)",
		},
		{
			name:   "upstream unavailable",
			params: url.Values{"date": {"2026-09-01"}},
			setupMock: func() {
				mockClient.EXPECT().
					PredictFoodDemand(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("connection refused"))
			},
			wantErr: true,
			wantMsg: "Prediction service unavailable.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.DemandPrediction(context.Background(), tt.params)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantMsg != "" {
					assert.EqualError(t, err, tt.wantMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPredictionService_Chat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := upstreamMocks.NewMockClient(ctrl)

	svc := service.New(mockClient, mocks.NewOtel())

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantMsg   string
		wantText  string
	}{
		{
			name: "array reply unwrapped",
			setupMock: func() {
				mockClient.EXPECT().
					Chat(gomock.Any(), "What time is breakfast?").
					Return(json.RawMessage(`[{"generated_text":"Breakfast runs 7-10 AM."}]`), nil)
			},
			wantText: "Breakfast runs 7-10 AM.",
		},
		{
			name: "object reply unwrapped",
			setupMock: func() {
				mockClient.EXPECT().
					Chat(gomock.Any(), "What time is breakfast?").
					Return(json.RawMessage(`{"generated_text":"Breakfast runs 7-10 AM."}`), nil)
			},
			wantText: "Breakfast runs 7-10 AM.",
		},
		{
			name: "empty array falls back",
			setupMock: func() {
				mockClient.EXPECT().
					Chat(gomock.Any(), "What time is breakfast?").
					Return(json.RawMessage(`[]`), nil)
			},
			wantText: "Sorry, I didn't understand that.",
		},
		{
			name: "unrecognized reply falls back",
			setupMock: func() {
				mockClient.EXPECT().
					Chat(gomock.Any(), "What time is breakfast?").
					Return(json.RawMessage(`{"error":"model loading"}`), nil)
			},
			wantText: "Sorry, I didn't understand that.",
		},
		{
			name: "chat model unavailable",
			setupMock: func() {
				mockClient.EXPECT().
					Chat(gomock.Any(), "What time is breakfast?").
					Return(nil, errors.New("connection refused"))
			},
			wantErr: true,
			wantMsg: "Chat service unavailable.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Chat(context.Background(), dto.ChatRequest{Message: "What time is breakfast?"})

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantMsg != "" {
					assert.EqualError(t, err, tt.wantMsg)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantText, result.GeneratedText)
			}
		})
	}
}
