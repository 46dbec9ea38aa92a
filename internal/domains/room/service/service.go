package service

import (
	"context"
	"fmt"

	"hoteloncall/config"
	"hoteloncall/infras/otel"
	"hoteloncall/internal/domains/room/model/dto"
	"hoteloncall/internal/domains/room/repository"
	"hoteloncall/shared/cache"
	"hoteloncall/shared/constant"

	"github.com/rs/zerolog/log"
)

// CacheAvailableRooms is invalidated by the stay flows whenever occupancy
// changes.
const CacheAvailableRooms = "room:available"

type Room interface {
	AvailableRooms(ctx context.Context) ([]dto.RoomResponse, error)
}

type serviceImpl struct {
	repo  repository.Room
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Room {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) AvailableRooms(ctx context.Context) (res []dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AvailableRooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, CacheAvailableRooms, &res)
	if err == nil {
		log.Info().Str("cacheKey", CacheAvailableRooms).Msg("cache hit for available rooms")

		return res, nil
	}

	rooms, err := s.repo.GetAvailable(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get available rooms")

		return res, fmt.Errorf("failed to get available rooms: %w", err)
	}

	res = dto.FromModels(rooms)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, CacheAvailableRooms, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save available rooms to cache")
		}
	}()

	return res, nil
}
