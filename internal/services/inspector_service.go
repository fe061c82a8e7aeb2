package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/honeynil/coffee-token-inspector/internal/infrastructure/auth"
	"github.com/honeynil/coffee-token-inspector/internal/infrastructure/observability"
	"github.com/honeynil/coffee-token-inspector/internal/models"
	"github.com/honeynil/coffee-token-inspector/internal/token"
	pkgerrors "github.com/honeynil/coffee-token-inspector/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type TokenInspector interface {
	Inspect(ctx context.Context, tok string) (*models.Inspection, error)
	InspectAuthorization(ctx context.Context, headerValue string) (*models.Inspection, error)
}

type inspectorService struct {
	logger *slog.Logger
}

func NewInspectorService() TokenInspector {
	return &inspectorService{logger: observability.WithContext(context.Background(), "component", "inspector")}
}

// Inspect decodes tok without verifying it. Header problems are tolerated,
// payload problems are returned unchanged.
func (s *inspectorService) Inspect(ctx context.Context, tok string) (*models.Inspection, error) {
	tracer := otel.Tracer("token-inspector")
	_, span := tracer.Start(ctx, "Inspect")
	defer span.End()
	start := time.Now()

	if tok == "" {
		span.SetStatus(codes.Error, "empty token")
		observability.TokenDecodeDuration.WithLabelValues(resultLabel(pkgerrors.ErrEmptyToken)).Observe(time.Since(start).Seconds())
		return nil, pkgerrors.ErrEmptyToken
	}

	payload, err := token.DecodePayload(tok)
	observability.TokenDecodes.WithLabelValues("payload", resultLabel(err)).Inc()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "payload decode failed")
		observability.TokenDecodeDuration.WithLabelValues(resultLabel(err)).Observe(time.Since(start).Seconds())
		s.logger.Warn("failed to decode token payload", "error", err)
		return nil, err
	}

	header, err := token.DecodeHeader(tok)
	observability.TokenDecodes.WithLabelValues("header", resultLabel(err)).Inc()
	if err != nil {
		s.logger.Debug("token header not decodable", "error", err)
		header = nil
	}

	claims := models.AsPayload(payload)
	parts, _ := token.Split(tok)
	inspection := &models.Inspection{
		Header:           header,
		Payload:          payload,
		Permissions:      claims.Permissions(),
		SignaturePresent: len(parts) > 2 && parts[2] != "",
	}
	if inspection.Permissions == nil {
		inspection.Permissions = []string{}
	}

	span.SetAttributes(
		attribute.String("token.username", claims.Username()),
		attribute.Int("token.permissions", len(inspection.Permissions)),
	)
	observability.TokenDecodeDuration.WithLabelValues("ok").Observe(time.Since(start).Seconds())
	s.logger.Info("token inspected", "username", claims.Username(), "permissions", inspection.Permissions)
	return inspection, nil
}

func (s *inspectorService) InspectAuthorization(ctx context.Context, headerValue string) (*models.Inspection, error) {
	tok, err := auth.TokenFromHeader(headerValue)
	if err != nil {
		return nil, err
	}
	return s.Inspect(ctx, tok)
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, pkgerrors.ErrMalformedToken):
		return "malformed"
	case errors.Is(err, pkgerrors.ErrDecode):
		return "decode"
	case errors.Is(err, pkgerrors.ErrParse):
		return "parse"
	case errors.Is(err, pkgerrors.ErrEmptyToken):
		return "empty"
	default:
		return "error"
	}
}
