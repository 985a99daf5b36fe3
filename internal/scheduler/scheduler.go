package scheduler

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/i474232898/weather-dashboard/internal/render"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

// Exporter periodically renders the dashboard to a static HTML file.
type Exporter struct {
	scheduler *gocron.Scheduler
	service   *weather.Service
	renderer  *render.Renderer
	template  []byte
	location  weather.Coordinates
	timezone  string
	path      string
	interval  time.Duration
}

// New creates a new Exporter. An empty path disables it.
func New(
	path string,
	interval time.Duration,
	service *weather.Service,
	renderer *render.Renderer,
	template []byte,
	location weather.Coordinates,
	timezone string,
) *Exporter {
	return &Exporter{
		scheduler: gocron.NewScheduler(time.UTC),
		service:   service,
		renderer:  renderer,
		template:  template,
		location:  location,
		timezone:  timezone,
		path:      path,
		interval:  interval,
	}
}

// Start schedules the export job and starts the underlying scheduler.
// The first run happens immediately.
func (e *Exporter) Start() error {
	if e.path == "" {
		log.Println("scheduler: no export path configured; nothing to schedule")
		return nil
	}

	interval := e.interval
	if interval <= 0 {
		interval = 15 * time.Minute
	}

	_, err := e.scheduler.Every(interval).Do(func() {
		log.Println("scheduler: running dashboard export job")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := e.Export(ctx); err != nil {
			log.Printf("scheduler: export to %s failed: %v", e.path, err)
			return
		}
		log.Printf("scheduler: wrote %s", e.path)
	})
	if err != nil {
		return err
	}

	e.scheduler.StartAsync()
	return nil
}

// Export fetches, renders and writes the page once. A failed fetch leaves
// the previous file in place.
func (e *Exporter) Export(ctx context.Context) error {
	bundle, err := e.service.Forecast(ctx, e.location, e.timezone)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := e.renderer.Page(&buf, e.template, bundle); err != nil {
		return err
	}
	return writeAtomic(e.path, buf.Bytes())
}

// Stop stops the scheduler and cancels any future jobs.
func (e *Exporter) Stop() {
	if e.scheduler != nil {
		e.scheduler.Stop()
	}
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
