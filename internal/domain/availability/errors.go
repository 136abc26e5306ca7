package availability

import "github.com/BruksfildServices01/professional-agenda/internal/httperr"

// ===============================
// Business codes
// ===============================

const (
	CodeMalformedRange       = "malformed_range"
	CodeDayAlreadyExists     = "day_already_exists"
	CodeProfessionalNotFound = "professional_not_found"
	CodeNotFound             = "not_found"
	CodeSlotNotOffered       = "slot_not_offered"
	CodeSlotUnavailable      = "slot_unavailable"
	CodeEmptyAvailability    = "empty_availability"
	CodeInvalidInterval      = "invalid_interval"
)

var (
	ErrMalformedRange       = httperr.ErrBusiness(CodeMalformedRange)
	ErrDayAlreadyExists     = httperr.ErrBusiness(CodeDayAlreadyExists)
	ErrProfessionalNotFound = httperr.ErrBusiness(CodeProfessionalNotFound)
	ErrNotFound             = httperr.ErrBusiness(CodeNotFound)
	ErrSlotNotOffered       = httperr.ErrBusiness(CodeSlotNotOffered)
	ErrSlotUnavailable      = httperr.ErrBusiness(CodeSlotUnavailable)
	ErrEmptyAvailability    = httperr.ErrBusiness(CodeEmptyAvailability)
	ErrInvalidInterval      = httperr.ErrBusiness(CodeInvalidInterval)
)
