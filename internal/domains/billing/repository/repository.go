package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hoteloncall/infras/otel"
	"hoteloncall/infras/postgres"
	"hoteloncall/shared/constant"
	"hoteloncall/shared/logger"
)

// Billing aggregates charges across the guest's open rows. It owns no table
// of its own, so it skips the generic repository and queries directly.
type Billing interface {
	FoodCharge(ctx context.Context, guestEmail string) (float64, error)
	CleaningCount(ctx context.Context, guestEmail string) (int, error)
	MaintenanceCount(ctx context.Context, guestEmail string) (int, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Billing {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) FoodCharge(ctx context.Context, guestEmail string) (float64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".billing.FoodCharge")
	defer scope.End()

	query := "SELECT COALESCE(SUM(total_price), 0) FROM orders WHERE guest_email = $1"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var total float64

	err := repo.db.Read.GetContext(ctx, &total, query, guestEmail)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to sum food charges: %w", err)
	}

	return total, nil
}

func (repo *repositoryImpl) CleaningCount(ctx context.Context, guestEmail string) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".billing.CleaningCount")
	defer scope.End()

	query := "SELECT COUNT(id) FROM cleaning_requests WHERE guest_email = $1"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var count int

	err := repo.db.Read.GetContext(ctx, &count, query, guestEmail)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count cleaning requests: %w", err)
	}

	return count, nil
}

func (repo *repositoryImpl) MaintenanceCount(ctx context.Context, guestEmail string) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".billing.MaintenanceCount")
	defer scope.End()

	query := "SELECT COUNT(id) FROM maintenance_requests WHERE guest_email = $1"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var count int

	err := repo.db.Read.GetContext(ctx, &count, query, guestEmail)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count maintenance requests: %w", err)
	}

	return count, nil
}
