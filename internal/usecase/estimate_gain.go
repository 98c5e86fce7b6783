package usecase

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aalvaropc/healthgain/internal/app/report"
	"github.com/aalvaropc/healthgain/internal/domain"
	"github.com/aalvaropc/healthgain/internal/ports"
	"github.com/aalvaropc/healthgain/internal/usecase/gain"
)

// EstimateOptions controls rendering and persistence for one submission.
type EstimateOptions struct {
	Locale domain.Locale
	Save   bool
}

// Estimate is everything a renderer needs for one submission.
type Estimate struct {
	Result   domain.GainResult
	Set      domain.TemplateSet
	Headline string
	Tips     []string
	Progress float64

	// SavedID is set when the result was persisted.
	SavedID string
}

type EstimateGain struct {
	catalog ports.LocaleCatalog
	store   ports.ResultStore
	log     *slog.Logger
	now     func() time.Time
}

type Option func(*EstimateGain)

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(uc *EstimateGain) { uc.now = now }
}

// NewEstimateGain wires the use case. store may be nil, in which case Save is ignored.
func NewEstimateGain(catalog ports.LocaleCatalog, store ports.ResultStore, log *slog.Logger, opts ...Option) *EstimateGain {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	uc := &EstimateGain{
		catalog: catalog,
		store:   store,
		log:     log,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute validates the input, runs the estimator and renders the localized output.
// A failed save is returned together with the rendered estimate.
func (uc *EstimateGain) Execute(ctx context.Context, in domain.GainInput, opts EstimateOptions) (Estimate, error) {
	res, err := gain.Estimate(in)
	if err != nil {
		uc.log.Warn("estimate.invalid", "err", err)
		return Estimate{}, err
	}

	locale := opts.Locale
	if locale == "" {
		locale = domain.LocaleEN
	}
	ts, err := uc.catalog.Lookup(locale)
	if err != nil {
		return Estimate{}, err
	}

	headline, err := report.Headline(ts, res)
	if err != nil {
		return Estimate{}, err
	}
	tips, err := report.Tips(ts, res)
	if err != nil {
		return Estimate{}, err
	}

	out := Estimate{
		Result:   res,
		Set:      ts,
		Headline: headline,
		Tips:     tips,
		Progress: report.Progress(res),
	}

	uc.log.Info("estimate.ok",
		"locale", string(locale),
		"days_now", in.DrinkingDaysNow,
		"days_goal", in.TargetDays,
		"gain_months", res.GainMonths,
	)

	if !opts.Save {
		return out, nil
	}
	if uc.store == nil {
		uc.log.Debug("estimate.save.skipped", "reason", "no store")
		return out, nil
	}

	id, err := uc.save(ctx, out)
	if err != nil {
		uc.log.Error("estimate.save.failed", "err", err)
		return out, err
	}
	out.SavedID = id
	uc.log.Info("estimate.saved", "id", id)
	return out, nil
}

func (uc *EstimateGain) save(ctx context.Context, est Estimate) (string, error) {
	created := uc.now().UTC()

	files, err := report.Exports(est.Set, est.Result, created)
	if err != nil {
		return "", err
	}

	artifact := domain.GainArtifact{
		ID:        uuid.NewString(),
		CreatedAt: created,
		Locale:    est.Set.Locale,
		Input:     est.Result.Input,
		Detail:    est.Result.Detail(),
		Headline:  est.Headline,
	}
	return uc.store.Save(ctx, artifact, files)
}
