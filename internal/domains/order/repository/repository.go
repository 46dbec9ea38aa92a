package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hoteloncall/infras/otel"
	"hoteloncall/infras/postgres"
	"hoteloncall/internal/domains/order/model"
	"hoteloncall/shared/constant"
	gDto "hoteloncall/shared/dto"
	"hoteloncall/shared/logger"
	gRepo "hoteloncall/shared/repository"
	"hoteloncall/shared/timezone"

	"github.com/jmoiron/sqlx"
)

type Order interface {
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.Order) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Order, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Order, error)
	UpdateStatus(ctx context.Context, orderID, status, modifiedBy string) (int64, error)
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Order]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Order {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Order](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// UpdateStatus reports the number of rows touched so callers can tell a
// missing order apart from a successful transition.
func (repo *repositoryImpl) UpdateStatus(ctx context.Context, orderID, status, modifiedBy string) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".order.UpdateStatus")
	defer scope.End()

	query := "UPDATE orders SET order_status = $1, modified_at = $2, modified_by = $3 WHERE id = $4"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.db.Write.ExecContext(ctx, query, status, timezone.Now(), modifiedBy, orderID)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to update order status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected, nil
}
