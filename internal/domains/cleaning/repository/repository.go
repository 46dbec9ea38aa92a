package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hoteloncall/infras/otel"
	"hoteloncall/infras/postgres"
	"hoteloncall/internal/domains/cleaning/model"
	"hoteloncall/shared/constant"
	gDto "hoteloncall/shared/dto"
	"hoteloncall/shared/logger"
	gRepo "hoteloncall/shared/repository"
	"hoteloncall/shared/timezone"

	"github.com/jmoiron/sqlx"
)

type CleaningTime interface {
	GetAvailableSlots(ctx context.Context) ([]string, error)
	ClaimSlotTx(ctx context.Context, sqltx *sqlx.Tx, timeSlot string) (bool, error)
	ReleaseForGuestTx(ctx context.Context, sqltx *sqlx.Tx, guestEmail string) error
}

type timeImpl struct {
	gRepo.Repository[model.CleaningTime]
	db   *postgres.Connection
	otel otel.Otel
}

func NewCleaningTime(db *postgres.Connection, otel otel.Otel) CleaningTime {
	return &timeImpl{
		Repository: gRepo.NewRepository[model.CleaningTime](model.TimeEntityName, model.TimeTableName, model.TimeFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *timeImpl) GetAvailableSlots(ctx context.Context) ([]string, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".cleaning_time.GetAvailableSlots")
	defer scope.End()

	query := "SELECT time_slot FROM cleaning_times WHERE available = TRUE"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var slots []string

	err := repo.db.Read.SelectContext(ctx, &slots, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get available cleaning slots: %w", err)
	}

	return slots, nil
}

// ClaimSlotTx flips an open slot to taken. The conditional update makes the
// claim atomic: whichever transaction lands first wins, the loser sees zero
// rows affected.
func (repo *timeImpl) ClaimSlotTx(ctx context.Context, sqltx *sqlx.Tx, timeSlot string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".cleaning_time.ClaimSlotTx")
	defer scope.End()

	query := "UPDATE cleaning_times SET available = FALSE, modified_at = $1 WHERE time_slot = $2 AND available = TRUE"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := sqltx.ExecContext(ctx, query, timezone.Now(), timeSlot)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to claim cleaning slot: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected > 0, nil
}

// ReleaseForGuestTx reopens every slot held by the guest's requests, used
// during checkout.
func (repo *timeImpl) ReleaseForGuestTx(ctx context.Context, sqltx *sqlx.Tx, guestEmail string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".cleaning_time.ReleaseForGuestTx")
	defer scope.End()

	query := `UPDATE cleaning_times SET available = TRUE, modified_at = $1
		WHERE time_slot IN (
			SELECT time_slot FROM cleaning_requests WHERE guest_email = $2
		)`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := sqltx.ExecContext(ctx, query, timezone.Now(), guestEmail)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to release cleaning slots: %w", err)
	}

	return nil
}

type CleaningRequest interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.CleaningRequest) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.CleaningRequest, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.CleaningRequest, error)
	UpdateStatus(ctx context.Context, requestID, status, modifiedBy string) (int64, error)
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
}

type requestImpl struct {
	gRepo.Repository[model.CleaningRequest]
	db   *postgres.Connection
	otel otel.Otel
}

func NewCleaningRequest(db *postgres.Connection, otel otel.Otel) CleaningRequest {
	return &requestImpl{
		Repository: gRepo.NewRepository[model.CleaningRequest](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *requestImpl) UpdateStatus(ctx context.Context, requestID, status, modifiedBy string) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".cleaning_request.UpdateStatus")
	defer scope.End()

	query := "UPDATE cleaning_requests SET request_status = $1, modified_at = $2, modified_by = $3 WHERE id = $4"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.db.Write.ExecContext(ctx, query, status, timezone.Now(), modifiedBy, requestID)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to update cleaning request status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected, nil
}
