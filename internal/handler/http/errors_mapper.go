package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-watch-proxy/internal/justwatch"
	"github.com/MKhiriev/go-watch-proxy/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrTitleNotFound:        http.StatusNotFound,
	justwatch.ErrInvalidCountryCode: http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
