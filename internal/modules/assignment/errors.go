package assignment

import "errors"

var (
	ErrMissingFields = errors.New("train id, staff id and role are required")
	ErrInvalidTrain  = errors.New("train does not exist")
	ErrInvalidStaff  = errors.New("staff member does not exist")
	ErrInvalidRole   = errors.New("unknown staff role")
)
