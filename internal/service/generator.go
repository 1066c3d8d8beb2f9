package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vaultpass/passmeter/internal/crypto"
	"github.com/vaultpass/passmeter/internal/history"
	"github.com/vaultpass/passmeter/internal/metrics"
	"github.com/vaultpass/passmeter/internal/model"
	"github.com/vaultpass/passmeter/internal/strength"
)

var ErrLengthOutOfRange = errors.New("password length out of range")

// LengthPolicy is the caller-facing bound on random password length. It is
// stricter than the generator's own minimum of four.
type LengthPolicy struct {
	Min int
	Max int
}

// DefaultLengthPolicy returns the [8, 16] bound.
func DefaultLengthPolicy() LengthPolicy {
	return LengthPolicy{Min: 8, Max: 16}
}

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	src     crypto.Source
	policy  LengthPolicy
	history *HistoryService
	metrics *metrics.Metrics
}

// NewGeneratorService creates a new GeneratorService. src must be safe for
// concurrent use when the service is shared; wrap seeded sources with
// crypto.NewLockedSource. hist and m may be nil.
func NewGeneratorService(src crypto.Source, policy LengthPolicy, hist *HistoryService, m *metrics.Metrics) *GeneratorService {
	return &GeneratorService{
		src:     src,
		policy:  policy,
		history: hist,
		metrics: m,
	}
}

// Policy returns the length bound enforced by Generate.
func (s *GeneratorService) Policy() LengthPolicy {
	return s.policy
}

// Generate produces a random password of the requested length.
func (s *GeneratorService) Generate(ctx context.Context, sessionID string, req model.GenerateRequest) (model.GenerateResponse, error) {
	length := req.Length
	if length == 0 {
		length = s.policy.Min
	}
	if length < s.policy.Min || length > s.policy.Max {
		return model.GenerateResponse{}, fmt.Errorf("%w: must be between %d and %d", ErrLengthOutOfRange, s.policy.Min, s.policy.Max)
	}

	password, err := crypto.Generate(length, s.src)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	s.metrics.ObserveGeneration(string(history.ModeRandom))
	s.history.Record(ctx, sessionID, history.ModeRandom, password)

	return toGenerateResponse(password, nil), nil
}

// GenerateThemed produces a themed password.
func (s *GeneratorService) GenerateThemed(ctx context.Context, sessionID string, req model.ThemedRequest) model.GenerateResponse {
	var password string
	if req.Strict {
		password = crypto.GenerateThemedStrict(s.src)
	} else {
		password = crypto.GenerateThemed(s.src)
	}

	s.metrics.ObserveGeneration(string(history.ModeThemed))
	s.history.Record(ctx, sessionID, history.ModeThemed, password)

	strict := req.Strict
	return toGenerateResponse(password, &strict)
}

func toGenerateResponse(password string, strict *bool) model.GenerateResponse {
	report := strength.Evaluate(password)
	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
		Score:    report.Score,
		Band:     string(report.Band()),
		Strict:   strict,
	}
}
