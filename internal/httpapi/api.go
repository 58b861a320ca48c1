package httpapi

import "quizhub/internal/gateway"

type API struct {
	service *gateway.Service
}

func NewAPI(service *gateway.Service) *API {
	return &API{service: service}
}
