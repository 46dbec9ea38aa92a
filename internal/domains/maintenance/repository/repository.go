package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hoteloncall/infras/otel"
	"hoteloncall/infras/postgres"
	"hoteloncall/internal/domains/maintenance/model"
	"hoteloncall/shared/constant"
	gDto "hoteloncall/shared/dto"
	"hoteloncall/shared/logger"
	gRepo "hoteloncall/shared/repository"
	"hoteloncall/shared/timezone"

	"github.com/jmoiron/sqlx"
)

type Maintenance interface {
	Insert(ctx context.Context, model model.MaintenanceRequest) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.MaintenanceRequest, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.MaintenanceRequest, error)
	UpdateStatus(ctx context.Context, requestID, status, modifiedBy string) (int64, error)
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.MaintenanceRequest]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Maintenance {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.MaintenanceRequest](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) UpdateStatus(ctx context.Context, requestID, status, modifiedBy string) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".maintenance_request.UpdateStatus")
	defer scope.End()

	query := "UPDATE maintenance_requests SET request_status = $1, modified_at = $2, modified_by = $3 WHERE id = $4"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.db.Write.ExecContext(ctx, query, status, timezone.Now(), modifiedBy, requestID)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to update maintenance request status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected, nil
}
