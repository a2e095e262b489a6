package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/kurochkinivan/onep_client/internal/domain"
	"github.com/kurochkinivan/onep_client/internal/handler"
)

const defaultActivationInterval = time.Minute

var (
	errOffline     = errors.New("platform unreachable")
	errUnactivated = errors.New("device is not activated")
)

// Uploader is the only goroutine touching the device. It sends every
// parsed spool file as one rpc request with a recordbatch call per alias
// and keeps trying to activate the device between files.
type Uploader struct {
	log                *slog.Logger
	device             Device
	parseResults       <-chan *domain.ParseResult
	reports            chan<- *domain.UploadResult
	fileUpdater        FileUpdater
	outcomesSaver      OutcomesSaver
	transactor         Transactor
	activationInterval time.Duration

	mu     sync.RWMutex
	status domain.DeviceStatus
}

func NewUploader(
	log *slog.Logger,
	device Device,
	activationInterval time.Duration,
	parseResults <-chan *domain.ParseResult,
	reports chan<- *domain.UploadResult,
	fileUpdater FileUpdater,
	outcomesSaver OutcomesSaver,
	transactor Transactor,
) *Uploader {
	if activationInterval <= 0 {
		activationInterval = defaultActivationInterval
	}

	return &Uploader{
		log:                log,
		device:             device,
		parseResults:       parseResults,
		reports:            reports,
		fileUpdater:        fileUpdater,
		outcomesSaver:      outcomesSaver,
		transactor:         transactor,
		activationInterval: activationInterval,
		status:             device.Status(),
	}
}

// DeviceStatus returns the device state as of the last upload or activation.
func (u *Uploader) DeviceStatus() domain.DeviceStatus {
	u.mu.RLock()
	defer u.mu.RUnlock()

	return u.status
}

func (u *Uploader) Run(ctx context.Context) error {
	defer close(u.reports)

	ticker := time.NewTicker(u.activationInterval)
	defer ticker.Stop()

	u.activate(ctx)

	for {
		select {
		case <-ticker.C:
			u.activate(ctx)

		case result, ok := <-u.parseResults:
			if !ok {
				return nil
			}

			log := u.log.With(
				slog.String("filename", result.Filename),
				slog.Int("records_count", len(result.Records)),
			)

			log.InfoContext(ctx, "received parse result")

			upload, err := u.processParseResult(ctx, log, result)
			u.publishStatus()
			if err != nil {
				log.ErrorContext(ctx, "failed to process parse result", slog.String("err", err.Error()))
				continue
			}
			if upload == nil {
				continue
			}

			select {
			case u.reports <- upload:
			case <-ctx.Done():
				return ctx.Err()
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (u *Uploader) activate(ctx context.Context) {
	if activation := u.device.Activate(ctx); activation != nil && !activation.Activated {
		u.log.InfoContext(ctx, "activation attempt failed", slog.String("result", activation.Body))
	}

	u.publishStatus()
}

func (u *Uploader) publishStatus() {
	status := u.device.Status()

	u.mu.Lock()
	u.status = status
	u.mu.Unlock()
}

// processParseResult returns nil upload when the file was put back to the
// spool for a later retry.
func (u *Uploader) processParseResult(
	ctx context.Context,
	log *slog.Logger,
	result *domain.ParseResult,
) (*domain.UploadResult, error) {
	name := filepath.Base(result.Filename)

	if result.Error != nil {
		log.DebugContext(ctx, "processing error parse result")

		upload := u.newResult(result, domain.StatusError)
		upload.Error = result.Error

		return upload, u.saveStatus(ctx, name, upload)
	}

	upload, err := u.upload(ctx, result)
	if errors.Is(err, errOffline) || errors.Is(err, errUnactivated) {
		log.InfoContext(ctx, "upload postponed", slog.String("reason", err.Error()))

		if err := u.fileUpdater.UpdateOrCreateFile(ctx, &domain.SpoolFile{
			Name:   name,
			Status: domain.StatusPending,
		}); err != nil {
			return nil, fmt.Errorf("failed to return file to spool: %w", err)
		}

		return nil, nil
	}
	if err != nil {
		upload = u.newResult(result, domain.StatusError)
		upload.Error = err
	}

	log.InfoContext(ctx, "file uploaded", slog.String("status", string(upload.Status)))

	return upload, u.saveStatus(ctx, name, upload)
}

func (u *Uploader) upload(ctx context.Context, result *domain.ParseResult) (*domain.UploadResult, error) {
	if !u.device.Activated() {
		u.activate(ctx)
		if !u.device.Activated() {
			return nil, errUnactivated
		}
	}

	aliases, grouped := result.ByAlias()
	if len(aliases) == 0 {
		return u.newResult(result, domain.StatusDone), nil
	}

	ids := make(map[string]int, len(aliases))
	for _, alias := range aliases {
		id, err := u.device.AddRPCRecordBatch(alias, grouped[alias])
		if err != nil {
			return nil, fmt.Errorf("failed to queue %s: %w", alias, err)
		}
		ids[alias] = id
	}

	resp := u.device.SendRPC(ctx)
	if !resp.Online() {
		return nil, errOffline
	}
	if !u.device.Activated() {
		return nil, errUnactivated
	}

	upload := u.newResult(result, domain.StatusDone)
	for _, alias := range aliases {
		verdict := handler.ClassifyRPCRecordBatch(resp, ids[alias])
		if verdict.Malformed {
			return nil, fmt.Errorf("malformed rpc response with http code %d", resp.Code)
		}

		upload.Outcomes = append(upload.Outcomes, &domain.AliasOutcome{
			Alias:    alias,
			Sent:     len(grouped[alias]),
			Success:  verdict.Success,
			Rejected: verdict.Rejected,
			Error:    verdict.Error,
		})
	}

	upload.Status = overallStatus(upload.Outcomes)
	if upload.Status == domain.StatusError {
		upload.Error = fmt.Errorf("platform accepted no records, http code %d", resp.Code)
	}

	return upload, nil
}

func (u *Uploader) newResult(result *domain.ParseResult, status domain.Status) *domain.UploadResult {
	return &domain.UploadResult{
		Filename:   result.Filename,
		Device:     u.device.Status(),
		Status:     status,
		UploadedAt: time.Now(),
	}
}

func (u *Uploader) saveStatus(ctx context.Context, name string, upload *domain.UploadResult) error {
	file := &domain.SpoolFile{
		Name:        name,
		Status:      upload.Status,
		ProcessedAt: &upload.UploadedAt,
	}
	if upload.Error != nil {
		file.ErrorMessage = upload.Error.Error()
	}

	outcomes := make([]*domain.OutcomeRecord, 0, len(upload.Outcomes))
	for _, o := range upload.Outcomes {
		outcomes = append(outcomes, domain.NewOutcomeRecord(name, o))
	}

	return u.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		if err := u.fileUpdater.UpdateOrCreateFile(ctx, file); err != nil {
			return fmt.Errorf("failed to update file status: %w", err)
		}

		if err := u.outcomesSaver.SaveOutcomes(ctx, name, outcomes); err != nil {
			return fmt.Errorf("failed to save outcomes: %w", err)
		}

		return nil
	})
}

func overallStatus(outcomes []*domain.AliasOutcome) domain.Status {
	var accepted, failed int
	for _, o := range outcomes {
		switch o.Success {
		case domain.True:
			accepted++
		case domain.Partial:
			return domain.StatusPartial
		default:
			failed++
		}
	}

	switch {
	case failed == 0:
		return domain.StatusDone
	case accepted == 0:
		return domain.StatusError
	default:
		return domain.StatusPartial
	}
}
