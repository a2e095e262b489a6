// Package device keeps the activation state of a single OneP client and
// issues dataport and RPC calls on its behalf.
//
// A Device is not safe for concurrent use.
package device

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/kurochkinivan/onep_client/internal/domain"
	"github.com/kurochkinivan/onep_client/internal/handler"
)

var ErrNoAliases = errors.New("no aliases given")

type Platform interface {
	Activate(ctx context.Context, identity domain.Identity) domain.Response
	Regenerate(ctx context.Context, vendorToken string, identity domain.Identity) domain.Response
	Read(ctx context.Context, cik string, aliases []string) domain.Response
	LongPoll(ctx context.Context, cik, alias string, timeout time.Duration, modifiedSince time.Time) domain.Response
	Write(ctx context.Context, cik string, values url.Values) domain.Response
	ReadWrite(ctx context.Context, cik string, aliases []string, values url.Values) domain.Response
	Process(ctx context.Context, req *domain.RPCRequest) domain.Response
	ListContent(ctx context.Context, cik string, identity domain.Identity) domain.Response
	GetContent(ctx context.Context, cik string, identity domain.Identity, contentID string) domain.Response
	ContentInfo(ctx context.Context, cik string, identity domain.Identity, contentID string) domain.Response
	UDPWrite(ctx context.Context, cik string, values map[string]string) error
}

type CredentialStore interface {
	SaveCIK(cik string) error
}

type Device struct {
	log      *slog.Logger
	platform Platform
	store    CredentialStore
	version  string

	identity      domain.Identity
	cik           string
	activated     bool
	online        bool
	retryInterval time.Duration
	lastTry       time.Time
	now           func() time.Time

	rpcID int
	calls []*domain.Call
}

// New builds a device from persisted settings. A stored credential of the
// right length counts as activated without contacting the platform.
func New(log *slog.Logger, platform Platform, store CredentialStore, settings *domain.Settings, version string) *Device {
	interval := settings.ActivationRetryInterval
	if interval <= 0 {
		interval = domain.DefaultActivationRetryInterval
	}

	d := &Device{
		log:           log.With(slog.String("serial", settings.Serial)),
		platform:      platform,
		store:         store,
		version:       version,
		identity:      settings.Identity,
		online:        true,
		retryInterval: interval,
		now:           time.Now,
		rpcID:         1,
	}

	if domain.ValidCIK(settings.CIK) {
		d.cik = settings.CIK
		d.activated = true
	}

	return d
}

// SetClock replaces the clock used by the activation gate.
func (d *Device) SetClock(now func() time.Time) {
	d.now = now
}

func (d *Device) CIK() string {
	return d.cik
}

func (d *Device) Identity() domain.Identity {
	return d.identity
}

func (d *Device) Activated() bool {
	return d.activated
}

func (d *Device) Online() bool {
	return d.online
}

func (d *Device) ActivationRetryInterval() time.Duration {
	return d.retryInterval
}

func (d *Device) Status() domain.DeviceStatus {
	return domain.DeviceStatus{
		Version:   d.version,
		Vendor:    d.identity.Vendor,
		Model:     d.identity.Model,
		Serial:    d.identity.Serial,
		Activated: d.activated,
		Online:    d.online,
	}
}

// SetCIK applies a credential received from activation or configuration.
// While activated only a re-confirmation or a corrupt credential changes
// anything; a different well-formed credential is ignored.
func (d *Device) SetCIK(cik string) {
	log := d.log.With(slog.String("cik", domain.MaskCIK(cik)))

	if !d.activated {
		if !domain.ValidCIK(cik) {
			log.Debug("not setting improper cik")
			return
		}

		d.cik = cik
		d.activated = true

		if err := d.store.SaveCIK(cik); err != nil {
			log.Error("failed to persist cik", slog.String("err", err.Error()))
		}

		log.Debug("got good cik")
		return
	}

	switch {
	case cik == d.cik:
		d.activated = true
	case !domain.ValidCIK(cik):
		log.Warn("improper cik presented, deactivating")
		d.activated = false
	default:
		log.Warn("ignoring new cik while activated")
	}
}

// Activate asks the platform for a credential if the device is not
// activated and the retry interval has passed since the last attempt.
// It returns nil when no request was made.
func (d *Device) Activate(ctx context.Context) *handler.Activation {
	if d.activated {
		return nil
	}

	now := d.now()
	if !d.lastTry.IsZero() && now.Sub(d.lastTry) < d.retryInterval {
		return nil
	}
	d.lastTry = now

	resp := d.platform.Activate(ctx, d.identity)
	d.online = resp.Online()

	activation := handler.ClassifyActivation(resp)
	if !activation.Activated {
		d.log.Debug("activation failed", slog.String("result", activation.String()))
		return activation
	}

	d.SetCIK(activation.Body)
	d.log.Info("device activated")

	return activation
}

// Regenerate asks the platform to issue a new credential for this serial.
// The device must activate again afterwards.
func (d *Device) Regenerate(ctx context.Context, vendorToken string) *handler.Dataport {
	resp := d.platform.Regenerate(ctx, vendorToken, d.identity)

	result := handler.ClassifyWrite(resp)
	d.online = result.Online

	if result.Success || resp.Code == http.StatusResetContent {
		d.activated = false
		d.lastTry = time.Time{}
	}

	return result
}

func (d *Device) HTTPWrite(ctx context.Context, alias, value string) *handler.Dataport {
	return d.HTTPWriteMultiple(ctx, url.Values{alias: {value}})
}

func (d *Device) HTTPWriteMultiple(ctx context.Context, values url.Values) *handler.Dataport {
	result := handler.ClassifyWrite(d.platform.Write(ctx, d.cik, values))
	d.apply(result, "write")
	return result
}

func (d *Device) HTTPRead(ctx context.Context, aliases ...string) (*handler.Dataport, error) {
	if len(aliases) == 0 {
		return nil, ErrNoAliases
	}

	result := handler.ClassifyRead(d.platform.Read(ctx, d.cik, aliases))
	d.apply(result, "read")
	return result, nil
}

func (d *Device) HTTPReadWrite(ctx context.Context, aliases []string, values url.Values) (*handler.Dataport, error) {
	if len(aliases) == 0 {
		return nil, ErrNoAliases
	}

	result := handler.ClassifyReadWrite(d.platform.ReadWrite(ctx, d.cik, aliases, values))
	d.apply(result, "readwrite")
	return result, nil
}

// LongPoll waits up to timeout for alias to receive a value newer than
// modifiedSince. A zero modifiedSince returns the current value.
func (d *Device) LongPoll(ctx context.Context, alias string, timeout time.Duration, modifiedSince time.Time) *handler.Dataport {
	result := handler.ClassifyRead(d.platform.LongPoll(ctx, d.cik, alias, timeout, modifiedSince))
	d.apply(result, "long poll")
	return result
}

func (d *Device) ListContent(ctx context.Context) *handler.Dataport {
	result := handler.ClassifyContent(d.platform.ListContent(ctx, d.cik, d.identity))
	d.apply(result, "list content")
	return result
}

func (d *Device) GetContent(ctx context.Context, contentID string) *handler.Dataport {
	result := handler.ClassifyContent(d.platform.GetContent(ctx, d.cik, d.identity, contentID))
	d.apply(result, "get content")
	return result
}

func (d *Device) ContentInfo(ctx context.Context, contentID string) *handler.Dataport {
	result := handler.ClassifyContent(d.platform.ContentInfo(ctx, d.cik, d.identity, contentID))
	d.apply(result, "content info")
	return result
}

// UDPWrite sends values without waiting for any answer.
func (d *Device) UDPWrite(ctx context.Context, values map[string]string) error {
	return d.platform.UDPWrite(ctx, d.cik, values)
}

func (d *Device) apply(result *handler.Dataport, op string) {
	d.online = result.Online

	switch {
	case result.Success:
	case result.Unauthorized():
		d.log.Warn("bad cik, deactivating", slog.String("op", op), slog.String("result", result.String()))
		d.activated = false
	case !result.Online:
		d.log.Debug("platform unreachable", slog.String("op", op), slog.String("err", result.Body))
	default:
		d.log.Debug("request failed", slog.String("op", op), slog.String("result", result.String()))
	}
}
