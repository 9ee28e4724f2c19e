package service

import (
	"net/http"

	apperrors "github.com/connecthub/connecthub-go/pkg/errors"
)

// Service-level errors. Each carries the HTTP status the controllers map it
// to, so the response helper needs no per-error switch.
var (
	ErrProfileNotFound       = apperrors.New(apperrors.CodeNotFound, "profile not found", http.StatusNotFound)
	ErrSkillNotFound         = apperrors.New(apperrors.CodeNotFound, "skill not found", http.StatusNotFound)
	ErrProjectNotFound       = apperrors.New(apperrors.CodeNotFound, "project not found", http.StatusNotFound)
	ErrExperienceNotFound    = apperrors.New(apperrors.CodeNotFound, "experience not found", http.StatusNotFound)
	ErrEducationNotFound     = apperrors.New(apperrors.CodeNotFound, "education entry not found", http.StatusNotFound)
	ErrCertificationNotFound = apperrors.New(apperrors.CodeNotFound, "certification not found", http.StatusNotFound)
	ErrConnectionNotFound    = apperrors.New(apperrors.CodeNotFound, "connection request not found", http.StatusNotFound)

	ErrEmailExists      = apperrors.New(apperrors.CodeDuplicateKey, "email already registered", http.StatusBadRequest)
	ErrAlreadyEndorsed  = apperrors.New(apperrors.CodeAlreadyExists, "skill already endorsed by this user", http.StatusBadRequest)
	ErrConnectionExists = apperrors.New(apperrors.CodeAlreadyExists, "connection request already exists", http.StatusBadRequest)
	ErrSelfConnection   = apperrors.New(apperrors.CodeValidation, "cannot connect to yourself", http.StatusBadRequest)
	ErrEmptyUpdate      = apperrors.New(apperrors.CodeValidation, "no valid fields to update", http.StatusBadRequest)

	ErrInvalidCredentials = apperrors.New(apperrors.CodeUnauthorized, "invalid credentials", http.StatusUnauthorized)
	ErrIncorrectPassword  = apperrors.New(apperrors.CodeUnauthorized, "current password is incorrect", http.StatusUnauthorized)
)
