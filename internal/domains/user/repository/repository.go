package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"hoteloncall/infras/otel"
	"hoteloncall/infras/postgres"
	"hoteloncall/internal/domains/user/model"
	gDto "hoteloncall/shared/dto"
	gRepo "hoteloncall/shared/repository"

	"github.com/jmoiron/sqlx"
)

type User interface {
	Insert(ctx context.Context, model model.User) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.User, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
}

type userImpl struct {
	gRepo.Repository[model.User]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) User {
	return &userImpl{
		Repository: gRepo.NewRepository[model.User](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type StaffRole interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.StaffRole, error)
	Insert(ctx context.Context, model model.StaffRole) error
}

type staffRoleImpl struct {
	gRepo.Repository[model.StaffRole]
	db   *postgres.Connection
	otel otel.Otel
}

func NewStaffRole(db *postgres.Connection, otel otel.Otel) StaffRole {
	return &staffRoleImpl{
		Repository: gRepo.NewRepository[model.StaffRole](model.StaffRoleEntityName, model.StaffRoleTableName, model.StaffRoleFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type VerificationCode interface {
	Insert(ctx context.Context, model model.VerificationCode) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.VerificationCode, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
}

type verificationCodeImpl struct {
	gRepo.Repository[model.VerificationCode]
	db   *postgres.Connection
	otel otel.Otel
}

func NewVerificationCode(db *postgres.Connection, otel otel.Otel) VerificationCode {
	return &verificationCodeImpl{
		Repository: gRepo.NewRepository[model.VerificationCode](model.VerificationCodeEntityName, model.VerificationCodeTableName, model.VerificationCodeFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
