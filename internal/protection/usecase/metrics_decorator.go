package usecase

import (
	"context"
	"time"

	"github.com/i3hub-official/fieldshield/internal/metrics"
	"github.com/i3hub-official/fieldshield/internal/protection/domain"
)

// protectorWithMetrics decorates Protector with metrics instrumentation.
type protectorWithMetrics struct {
	next    Protector
	metrics metrics.OperationMetrics
}

// NewProtectorWithMetrics wraps a Protector with operation metrics recording.
func NewProtectorWithMetrics(p Protector, m metrics.OperationMetrics) Protector {
	return &protectorWithMetrics{
		next:    p,
		metrics: m,
	}
}

// Protect records metrics for protect operations.
func (p *protectorWithMetrics) Protect(
	ctx context.Context,
	plaintext string,
	tier domain.Tier,
) (domain.ProtectedField, error) {
	start := time.Now()
	field, err := p.next.Protect(ctx, plaintext, tier)

	status := "success"
	if err != nil {
		status = "error"
	}

	p.metrics.RecordOperation(ctx, "protect", tier.String(), status)
	p.metrics.RecordDuration(ctx, "protect", tier.String(), time.Since(start), status)

	return field, err
}

// Unprotect records metrics for unprotect operations.
func (p *protectorWithMetrics) Unprotect(
	ctx context.Context,
	field domain.ProtectedField,
	tier domain.Tier,
) (string, error) {
	start := time.Now()
	plaintext, err := p.next.Unprotect(ctx, field, tier)

	status := "success"
	if err != nil {
		status = "error"
	}

	p.metrics.RecordOperation(ctx, "unprotect", tier.String(), status)
	p.metrics.RecordDuration(ctx, "unprotect", tier.String(), time.Since(start), status)

	return plaintext, err
}

// Verify records metrics for verify operations.
func (p *protectorWithMetrics) Verify(
	ctx context.Context,
	plaintext string,
	field domain.ProtectedField,
	tier domain.Tier,
) (bool, error) {
	start := time.Now()
	ok, err := p.next.Verify(ctx, plaintext, field, tier)

	status := "success"
	if err != nil {
		status = "error"
	}

	p.metrics.RecordOperation(ctx, "verify", tier.String(), status)
	p.metrics.RecordDuration(ctx, "verify", tier.String(), time.Since(start), status)

	return ok, err
}

// NeedsRehash delegates without instrumentation; it is a pure string check.
func (p *protectorWithMetrics) NeedsRehash(field domain.ProtectedField) bool {
	return p.next.NeedsRehash(field)
}
