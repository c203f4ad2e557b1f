package service

import (
	"github.com/MKhiriev/go-snap-sync/internal/config"
	"github.com/MKhiriev/go-snap-sync/internal/logger"
	"github.com/MKhiriev/go-snap-sync/internal/store"
)

// Services groups the server-side service layer.
type Services struct {
	SnapshotService SnapshotService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg config.ServerApp, logger *logger.Logger) (*Services, error) {
	appInfoSvc, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		SnapshotService: NewSnapshotService(storages.SnapshotRepository, cfg, logger),
		AppInfoService:  appInfoSvc,
	}, nil
}
