package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Generation Metrics
var (
	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGenerationsTotal,
			Help: HelpTextGenerationsTotal,
		},
		[]string{LabelResult},
	)

	EnchantedItems = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEnchantedItems,
			Help: HelpTextEnchantedItems,
		},
		[]string{LabelQuality},
	)

	PerfectItems = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePerfectItems,
			Help: HelpTextPerfectItems,
		},
	)

	QualityUpgrades = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameQualityUpgrades,
			Help: HelpTextQualityUpgrades,
		},
	)

	EnchantCount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameEnchantCount,
			Help:    HelpTextEnchantCount,
			Buckets: EnchantCountBuckets,
		},
	)

	LootItemsReplaced = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLootItemsReplaced,
			Help: HelpTextLootItemsReplaced,
		},
	)
)

// Allocator and storage Metrics
var (
	IDFactoryFree = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameIDFactoryFree,
			Help: HelpTextIDFactoryFree,
		},
	)

	IDFactoryMax = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameIDFactoryMax,
			Help: HelpTextIDFactoryMax,
		},
	)

	TemplateCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTemplateCacheHits,
			Help: HelpTextTemplateCacheHits,
		},
	)

	TemplateCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTemplateCacheMisses,
			Help: HelpTextTemplateCacheMisses,
		},
	)
)

// Admin Metrics
var (
	AdminCommands = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAdminCommands,
			Help: HelpTextAdminCommands,
		},
		[]string{LabelCommand, LabelResult},
	)
)
