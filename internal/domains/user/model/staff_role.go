package model

import "hoteloncall/shared/model"

const (
	StaffRoleTableName  = "staff_roles"
	StaffRoleEntityName = "staff_role"

	StaffRoleFieldID         = "id"
	StaffRoleFieldStaffEmail = "staff_email"
	StaffRoleFieldRole       = "role"
)

type StaffRole struct {
	ID         string `db:"id"`
	StaffEmail string `db:"staff_email"`
	Role       string `db:"role"`
	model.Metadata
}
