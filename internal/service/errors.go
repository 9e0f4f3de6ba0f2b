package service

import "errors"

var (
	ErrSchoolNotFound          = errors.New("school not found")
	ErrNotPending              = errors.New("school is not pending verification")
	ErrRejectionReasonRequired = errors.New("please provide a rejection reason")
)
