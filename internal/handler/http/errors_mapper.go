package http

import (
	"errors"
	"net/http"

	"github.com/universal-workshop/syncagent/internal/adapter"
	"github.com/universal-workshop/syncagent/internal/service"
	"github.com/universal-workshop/syncagent/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrValidationNoMethodProvided: http.StatusBadRequest,
	service.ErrValidationNoDeviceID:       http.StatusInternalServerError,
	service.ErrDrainInProgress:            http.StatusConflict,
	service.ErrOffline:                    http.StatusServiceUnavailable,

	adapter.ErrUnauthorized:   http.StatusBadGateway,
	adapter.ErrSessionExpired: http.StatusBadGateway,

	store.ErrRecordNotFound:    http.StatusNotFound,
	store.ErrRecordNotSaved:    http.StatusInternalServerError,
	store.ErrRecordNotSynced:   http.StatusConflict,
	store.ErrIllegalTransition: http.StatusConflict,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
