package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Calculation metric names
const (
	MetricNameCalculationsTotal   = "calculations_total"
	MetricNameCalculationDuration = "calculation_duration_seconds"
	MetricNameQuestsSkipped       = "ranking_quests_skipped_total"
	MetricNameHuntResults         = "hunt_quest_results"
)

// Item value cache metric names
const (
	MetricNameItemCacheHits   = "item_value_cache_hits_total"
	MetricNameItemCacheMisses = "item_value_cache_misses_total"
	MetricNameItemCacheSize   = "item_value_cache_entries"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Calculation metric help text
const (
	HelpTextCalculationsTotal   = "Total number of calculations by operation and outcome"
	HelpTextCalculationDuration = "Calculation latency in seconds"
	HelpTextQuestsSkipped       = "Total number of quests left out of a ranking because they failed to compute"
	HelpTextHuntResults         = "Number of quest and section ID results per hunt"
)

// Item value cache help text
const (
	HelpTextItemCacheHits   = "Item value cache hits"
	HelpTextItemCacheMisses = "Item value cache misses"
	HelpTextItemCacheSize   = "Item values currently cached"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelOperation = "operation"
	LabelOutcome   = "outcome"
)

// ============================================================================
// Label Values
// ============================================================================

// Operations
const (
	OperationItemValue     = "item_value"
	OperationItemBreakdown = "item_breakdown"
	OperationQuestValue    = "quest_value"
	OperationRankQuests    = "rank_quests"
	OperationHunt          = "hunt"
)

// Outcomes
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// PathUnmatched labels requests no route matched, keeping path cardinality bounded
const PathUnmatched = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// CalculationLatencyBuckets covers single item lookups (microseconds) up to full
// ranking sweeps over every section ID (seconds)
var CalculationLatencyBuckets = []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5, 10}

// HuntResultBuckets counts quest and section ID pairs
var HuntResultBuckets = []float64{0, 1, 10, 50, 100, 500, 1000, 5000}
