package pipeline

import (
	"context"

	"github.com/kurochkinivan/onep_client/internal/domain"
	"github.com/kurochkinivan/onep_client/internal/handler"
)

type FilesProvider interface {
	Files(ctx context.Context) ([]*domain.SpoolFile, error)
}

type FileUpdater interface {
	UpdateOrCreateFile(ctx context.Context, file *domain.SpoolFile) error
}

type OutcomesSaver interface {
	SaveOutcomes(ctx context.Context, fileName string, outcomes []*domain.OutcomeRecord) error
}

type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Device is the part of device.Device the uploader drives.
type Device interface {
	Activate(ctx context.Context) *handler.Activation
	Activated() bool
	AddRPCRecordBatch(alias string, records []domain.Record) (int, error)
	SendRPC(ctx context.Context) domain.Response
	Status() domain.DeviceStatus
}

type ReportGenerator interface {
	GenerateReport(outputPath string, result *domain.UploadResult) error
}
