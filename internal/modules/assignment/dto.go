package assignment

type AssignStaffRequest struct {
	TrainID int64  `json:"trainID"`
	StaffID int64  `json:"staffID"`
	Role    string `json:"role"`
}
