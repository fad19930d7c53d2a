// Command seeder serves a local content store filled with sample records so
// the site can run without CMS credentials:
//
//	go run ./scripts -addr :4010
//	CMS_BASE_URL=http://localhost:4010 go run ./cmd serve
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Triaksa-Space/anchorpoint-web/domain/content"
	"github.com/Triaksa-Space/anchorpoint-web/pkg/cms/cmstest"
	"github.com/Triaksa-Space/anchorpoint-web/pkg/logger"
)

func main() {
	addr := flag.String("addr", ":4010", "listen address")
	flag.Parse()

	log := logger.New(logger.Config{Level: logger.LevelInfo, ServiceName: "content-seeder"})

	store := cmstest.NewStore()
	for _, c := range seed() {
		store.SetCollection(c.name, c.records...)
		log.Info("Seeded collection", logger.String("collection", c.name), logger.Int("records", len(c.records)))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{Addr: *addr, Handler: store, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("Content store listening", logger.String("addr", *addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("Content store stopped", err)
	}
}

type collection struct {
	name    string
	records []any
}

func seed() []collection {
	return []collection{
		{content.EntityTestimonials, []any{
			testimonial("t-1", "Maria Alvarez", "Corner Market Co.", "Anchor Point took our new store from empty shell to opening day without a single missed deadline.", 5),
			testimonial("t-2", "James Whitfield", "Northside Logistics", "Our warehouse throughput went up within the first month. The team knew exactly what to fix.", 4.5),
			testimonial("t-3", "Priya Raman", "Raman Dental Group", "They handled the software rollout and staff training so we could keep seeing patients.", 5),
			testimonial("t-4", "Owen Brooks", "", "Clear plan, steady communication, calm execution.", 4),
		}},
		{content.EntityServiceCategories, []any{
			category("c-1", "Retail Operations", "retail", 1),
			category("c-2", "Commercial Solutions", "commercial", 2),
			category("c-3", "Warehouse Management", "warehouse", 3),
		}},
		{content.EntityServices, []any{
			service("s-1", "Store Layout Design", "retail", "Floor plans that move customers and stock efficiently."),
			service("s-2", "Workflow Design", "commercial", "Office processes mapped and streamlined."),
			service("s-3", "Space Planning", "warehouse", "Racking and pick paths sized to your volume."),
		}},
	}
}

func testimonial(id, name, company, text string, rating float64) map[string]any {
	r := map[string]any{
		"_id":             id,
		"clientName":      name,
		"testimonialText": text,
		"rating":          rating,
	}
	if company != "" {
		r["company"] = company
	}
	return r
}

func category(id, name, slug string, order int) map[string]any {
	return map[string]any{
		"_id":          id,
		"categoryName": name,
		"slug":         slug,
		"displayOrder": order,
		"isActive":     true,
	}
}

func service(id, name, categorySlug, summary string) map[string]any {
	return map[string]any{
		"_id":              id,
		"serviceName":      name,
		"category":         categorySlug,
		"shortDescription": summary,
	}
}
