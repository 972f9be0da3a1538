package metrics

// Metric names
const (
	MetricNameHTTPRequestsTotal    = "itemforge_http_requests_total"
	MetricNameHTTPRequestDuration  = "itemforge_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "itemforge_http_requests_in_flight"

	MetricNameGenerationsTotal  = "itemforge_generations_total"
	MetricNameEnchantedItems    = "itemforge_enchanted_items_total"
	MetricNamePerfectItems      = "itemforge_perfect_items_total"
	MetricNameQualityUpgrades   = "itemforge_quality_upgrades_total"
	MetricNameEnchantCount      = "itemforge_enchant_count"
	MetricNameLootItemsReplaced = "itemforge_loot_items_replaced_total"

	MetricNameIDFactoryFree = "itemforge_id_factory_free_ids"
	MetricNameIDFactoryMax  = "itemforge_id_factory_max_id"

	MetricNameTemplateCacheHits   = "itemforge_template_cache_hits_total"
	MetricNameTemplateCacheMisses = "itemforge_template_cache_misses_total"

	MetricNameAdminCommands = "itemforge_admin_commands_total"
)

// Help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"

	HelpTextGenerationsTotal  = "Enchanted item generation attempts by result"
	HelpTextEnchantedItems    = "Enchanted item templates created by quality"
	HelpTextPerfectItems      = "Perfect item templates created"
	HelpTextQualityUpgrades   = "Quality tiers gained by the upgrade roll"
	HelpTextEnchantCount      = "Number of enchantments applied per created item"
	HelpTextLootItemsReplaced = "Loot entries re-pointed at an enchanted template"

	HelpTextIDFactoryFree = "Reclaimed template ids waiting for reuse"
	HelpTextIDFactoryMax  = "Highest template id issued"

	HelpTextTemplateCacheHits   = "Base template cache hits"
	HelpTextTemplateCacheMisses = "Base template cache misses"

	HelpTextAdminCommands = "Admin commands executed by command and result"
)

// Labels
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelResult  = "result"
	LabelQuality = "quality"
	LabelCommand = "command"
)

// Generation results
const (
	ResultCreated      = "created"
	ResultNoEnchants   = "no_enchantments"
	ResultNotApplied   = "not_applied"
	ResultError        = "error"
	ResultNotEquipment = "not_equipment"
	ResultOK           = "ok"
)

// Buckets
var (
	HTTPLatencyBuckets  = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1}
	EnchantCountBuckets = []float64{1, 2, 3, 4, 5}
)
