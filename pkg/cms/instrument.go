package cms

import (
	"context"
	"time"

	"github.com/Triaksa-Space/anchorpoint-web/pkg/metrics"
	"github.com/Triaksa-Space/anchorpoint-web/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const outcomeOK = "ok"

// InstrumentedLister times, counts, and traces every call to next.
type InstrumentedLister struct {
	next    Lister
	metrics *metrics.Metrics
}

// Instrument wraps next. m may be nil.
func Instrument(next Lister, m *metrics.Metrics) *InstrumentedLister {
	return &InstrumentedLister{next: next, metrics: m}
}

func (l *InstrumentedLister) ListAll(ctx context.Context, entityType string) (Listing, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "cms.ListAll")
	defer span.End()
	span.SetAttributes(attribute.String("cms.entity_type", entityType))

	start := time.Now()
	listing, err := l.next.ListAll(ctx, entityType)
	elapsed := time.Since(start)

	if err != nil {
		cause := CauseOf(err)
		if cause == "" {
			cause = CauseTransport
		}
		l.metrics.ObserveCMSFetch(entityType, string(cause), elapsed)
		span.RecordError(err)
		span.SetStatus(codes.Error, string(cause))
		return Listing{}, err
	}

	l.metrics.ObserveCMSFetch(entityType, outcomeOK, elapsed)
	span.SetAttributes(attribute.Int("cms.items", listing.Len()))
	return listing, nil
}
