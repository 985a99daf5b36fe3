package httpapi

import (
	"bytes"
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"

	"github.com/i474232898/weather-dashboard/internal/render"
	"github.com/i474232898/weather-dashboard/internal/weather"
	"github.com/i474232898/weather-dashboard/web"
)

var validate = validator.New()

// fetchTimeout bounds one upstream forecast call per request.
const fetchTimeout = 15 * time.Second

// Dashboard bundles what the handlers need to serve the page.
type Dashboard struct {
	Service  *weather.Service
	Renderer *render.Renderer
	Location weather.Coordinates
	TimeZone string
	Template []byte
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, d *Dashboard) {
	if d.Template == nil {
		d.Template = web.Dashboard()
	}

	app.Use("/img", filesystem.New(filesystem.Config{
		Root:       http.FS(web.FS),
		PathPrefix: "img",
		MaxAge:     86400,
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), fetchTimeout)
		defer cancel()

		var buf bytes.Buffer
		bundle, err := d.Service.Forecast(ctx, d.Location, d.TimeZone)
		if err == nil {
			err = d.Renderer.Page(&buf, d.Template, bundle)
		}
		if err != nil {
			return d.fallback(c, err)
		}

		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Send(buf.Bytes())
	})

	v1 := app.Group("/api/v1")

	v1.Get("/forecast", func(c *fiber.Ctx) error {
		var q forecastQuery
		if err := q.bind(c, d); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		ctx, cancel := context.WithTimeout(c.UserContext(), fetchTimeout)
		defer cancel()

		bundle, err := d.Service.Forecast(ctx, weather.Coordinates{Lat: q.Lat, Lon: q.Lon}, q.TimeZone)
		if err != nil {
			return toFiberError(err)
		}
		return c.JSON(bundle)
	})
}

// fallback serves the page with its error banner instead of the forecast.
func (d *Dashboard) fallback(c *fiber.Ctx, cause error) error {
	log.Printf("ERROR: dashboard render failed: %v", cause)

	ferr := toFiberError(cause)
	var buf bytes.Buffer
	if err := d.Renderer.ErrorPage(&buf, d.Template, "Weather data is unavailable right now. Please try again later."); err != nil {
		return ferr
	}

	var fe *fiber.Error
	status := fiber.StatusInternalServerError
	if errors.As(ferr, &fe) {
		status = fe.Code
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}

// toFiberError maps domain errors onto HTTP status codes.
func toFiberError(err error) error {
	switch {
	case errors.Is(err, weather.ErrNetwork), errors.Is(err, weather.ErrParse):
		return fiber.NewError(fiber.StatusBadGateway, "failed to fetch weather data")
	case errors.Is(err, weather.ErrUnknownIcon):
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "failed to render weather data")
	}
}

// forecastQuery holds the optional overrides for the forecast endpoint.
type forecastQuery struct {
	Lat      float64 `validate:"latitude"`
	Lon      float64 `validate:"longitude"`
	TimeZone string  `validate:"omitempty,timezone"`
}

func (q *forecastQuery) bind(c *fiber.Ctx, d *Dashboard) error {
	q.Lat, q.Lon, q.TimeZone = d.Location.Lat, d.Location.Lon, d.TimeZone

	if s := c.Query("lat"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return errors.New("invalid lat parameter")
		}
		q.Lat = v
	}
	if s := c.Query("lon"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return errors.New("invalid lon parameter")
		}
		q.Lon = v
	}
	if s := c.Query("timezone"); s != "" {
		q.TimeZone = s
	}
	return nil
}
