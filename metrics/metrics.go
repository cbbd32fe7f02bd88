// Package metrics provides access to Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = `riv`

// Redraw triggers
const (
	TriggerStartup = `startup`
	TriggerResize  = `resize`
	TriggerKey     = `key`
	TriggerExpose  = `expose`
)

// Redraw
var (
	Redraws = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: `redraw`,
			Name:      `total`,
		},
		[]string{`trigger`},
	)
	RedrawErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: `redraw`,
			Name:      `errors_total`,
		},
	)
	Presents = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: `redraw`,
			Name:      `presents_total`,
		},
	)
	ResampleDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: `redraw`,
			Name:      `resample_duration_seconds`,
			Buckets: []float64{
				0.001, // 1ms
				0.005, // 5ms
				0.01,  // 10ms
				0.02,  // 20ms
				0.05,  // 50ms
				0.1,   // 100ms
				0.25,  // 250ms
				0.5,   // 500ms
				1,
				2,
			},
		},
	)
)

// Resize debouncing
var (
	ResizeNotifications = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: `debounce`,
			Name:      `resize_notifications_total`,
		},
	)
	CoalescedNotifications = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: `debounce`,
			Name:      `coalesced_notifications`,
			Buckets:   []float64{1, 2, 5, 10, 20, 50, 100},
		},
	)
)
