package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hoteloncall/infras/otel"
	"hoteloncall/infras/postgres"
	"hoteloncall/internal/domains/stay/model"
	userModel "hoteloncall/internal/domains/user/model"
	"hoteloncall/shared/constant"
	gDto "hoteloncall/shared/dto"
	"hoteloncall/shared/logger"
	gRepo "hoteloncall/shared/repository"

	"github.com/jmoiron/sqlx"
)

type CheckIn interface {
	Insert(ctx context.Context, model model.CheckIn) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.CheckIn) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.CheckIn, error)
	GetActiveByGuestEmail(ctx context.Context, guestEmail string) (model.CheckIn, error)
	GetActiveByRoomNumber(ctx context.Context, roomNumber int) (model.CheckIn, error)
	ExistByRoomTx(ctx context.Context, sqltx *sqlx.Tx, roomNumber int) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
}

type checkInImpl struct {
	gRepo.Repository[model.CheckIn]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) CheckIn {
	return &checkInImpl{
		Repository: gRepo.NewRepository[model.CheckIn](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *checkInImpl) GetActiveByGuestEmail(ctx context.Context, guestEmail string) (model.CheckIn, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".check_in.GetActiveByGuestEmail")
	defer scope.End()

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				ArgName:  model.FieldGuestEmail,
				Field:    userModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    guestEmail,
				Table:    userModel.TableName,
			},
		},
	}

	return repo.Get(ctx, filter)
}

func (repo *checkInImpl) GetActiveByRoomNumber(ctx context.Context, roomNumber int) (model.CheckIn, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".check_in.GetActiveByRoomNumber")
	defer scope.End()

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomNumber,
				Operator: gDto.FilterOperatorEq,
				Value:    roomNumber,
				Table:    model.TableName,
			},
		},
	}

	return repo.Get(ctx, filter)
}

// ExistByRoomTx checks room occupancy inside the check-in transaction, after
// the caller has locked the room row.
func (repo *checkInImpl) ExistByRoomTx(ctx context.Context, sqltx *sqlx.Tx, roomNumber int) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".check_in.ExistByRoomTx")
	defer scope.End()

	query := "SELECT EXISTS(SELECT 1 FROM check_ins WHERE room_number = $1)"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	exist := false

	err := sqltx.GetContext(ctx, &exist, query, roomNumber)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check room occupancy: %w", err)
	}

	return exist, nil
}

type Checkout interface {
	Insert(ctx context.Context, model model.Checkout) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Checkout) error
}

type checkoutImpl struct {
	gRepo.Repository[model.Checkout]
	db   *postgres.Connection
	otel otel.Otel
}

func NewCheckout(db *postgres.Connection, otel otel.Otel) Checkout {
	return &checkoutImpl{
		Repository: gRepo.NewRepository[model.Checkout](model.CheckoutEntityName, model.CheckoutTableName, model.CheckoutFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type Taxi interface {
	Insert(ctx context.Context, model model.Taxi) error
}

type taxiImpl struct {
	gRepo.Repository[model.Taxi]
	db   *postgres.Connection
	otel otel.Otel
}

func NewTaxi(db *postgres.Connection, otel otel.Otel) Taxi {
	return &taxiImpl{
		Repository: gRepo.NewRepository[model.Taxi](model.TaxiEntityName, model.TaxiTableName, model.TaxiFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
