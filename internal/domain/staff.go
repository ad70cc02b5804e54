package domain

type Staff struct {
	ID           int64  `json:"StaffID"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

type StaffRole string

const (
	RoleDriver   StaffRole = "Driver"
	RoleEngineer StaffRole = "Engineer"
)

// Code maps a role to its stored ordinal. Unknown roles return 0.
func (r StaffRole) Code() int {
	switch r {
	case RoleDriver:
		return 1
	case RoleEngineer:
		return 2
	default:
		return 0
	}
}

// StaffAssignment associates a staff member with a role on a train. One row
// per (train, staff) pair; repeat assignment overwrites the role code.
type StaffAssignment struct {
	TrainID  int64 `json:"trainID"`
	StaffID  int64 `json:"staffID"`
	RoleCode int   `json:"roleCode"`
}
