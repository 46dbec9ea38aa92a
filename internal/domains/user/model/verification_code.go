package model

import (
	"time"

	"hoteloncall/shared/model"
)

const (
	VerificationCodeTableName  = "verification_codes"
	VerificationCodeEntityName = "verification_code"

	VerificationCodeFieldID        = "id"
	VerificationCodeFieldEmail     = "email"
	VerificationCodeFieldCode      = "code"
	VerificationCodeFieldExpiresAt = "expires_at"
)

type VerificationCode struct {
	ID        string    `db:"id"`
	Email     string    `db:"email"`
	Code      string    `db:"code"`
	ExpiresAt time.Time `db:"expires_at"`
	model.Metadata
}
