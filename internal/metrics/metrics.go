package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "studio",
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	HTTPDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "studio",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	Generations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "studio",
		Name:      "ai_generations_total",
		Help:      "LLM generation calls by result.",
	}, []string{"result"})

	GenerationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "studio",
		Name:      "ai_generation_duration_seconds",
		Help:      "LLM generation call latency.",
		Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 40, 60},
	})

	Publishes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "studio",
		Name:      "linkedin_publishes_total",
		Help:      "LinkedIn publish attempts by result.",
	}, []string{"result"})

	TokenRefreshes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "studio",
		Name:      "linkedin_token_refreshes_total",
		Help:      "LinkedIn token refresh attempts by result.",
	}, []string{"result"})
)

// Register adds every collector to reg.
func Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		HTTPRequests, HTTPDuration, Generations, GenerationDuration, Publishes, TokenRefreshes,
	} {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
				continue
			}
			return err
		}
	}
	return nil
}

// Middleware records request counts and latency per matched route.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		route := c.Route().Path
		HTTPRequests.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		HTTPDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}

func Result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
