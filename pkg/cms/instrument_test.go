package cms_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/Triaksa-Space/anchorpoint-web/pkg/cms"
	"github.com/Triaksa-Space/anchorpoint-web/pkg/cms/cmstest"
	"github.com/Triaksa-Space/anchorpoint-web/pkg/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrument_CountsOutcomes(t *testing.T) {
	srv := cmstest.NewServer(t)
	srv.SetCollection("Testimonials", map[string]any{"_id": "a"})
	srv.FailWith("Private", http.StatusUnauthorized)

	client, err := cms.NewClient(cms.Config{BaseURL: srv.URL, Timeout: time.Second})
	require.NoError(t, err)

	m := metrics.New()
	lister := cms.Instrument(client, m)

	listing, err := lister.ListAll(context.Background(), "Testimonials")
	require.NoError(t, err)
	assert.Equal(t, 1, listing.Len())

	_, err = lister.ListAll(context.Background(), "Private")
	require.Error(t, err)
	assert.Equal(t, cms.CauseUnauthorized, cms.CauseOf(err))

	families, err := m.Registry().Gather()
	require.NoError(t, err)
	outcomes := map[string]float64{}
	for _, mf := range families {
		if mf.GetName() != "anchorpoint_cms_fetch_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			var entity, outcome string
			for _, l := range metric.GetLabel() {
				switch l.GetName() {
				case "entity_type":
					entity = l.GetValue()
				case "outcome":
					outcome = l.GetValue()
				}
			}
			outcomes[entity+"/"+outcome] = metric.GetCounter().GetValue()
		}
	}
	assert.Equal(t, map[string]float64{"Testimonials/ok": 1, "Private/unauthorized": 1}, outcomes)
}

func TestInstrument_NilMetrics(t *testing.T) {
	lister := cms.Instrument(cms.ListerFunc(func(context.Context, string) (cms.Listing, error) {
		return cms.Listing{EntityType: "X"}, nil
	}), nil)

	listing, err := lister.ListAll(context.Background(), "X")
	require.NoError(t, err)
	assert.Equal(t, "X", listing.EntityType)
}
