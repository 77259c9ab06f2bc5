package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewMetrics(t *testing.T) {
	m := NewMetrics(Config{Address: ":0", ServiceName: "test-service"})

	if m.Registry == nil {
		t.Fatal("expected registry to be initialized")
	}
	if m.Server == nil {
		t.Fatal("expected server to be initialized")
	}
	if m.Server.Addr != ":0" {
		t.Errorf("expected server address ':0', got %q", m.Server.Addr)
	}
}

func TestIncrementRequests(t *testing.T) {
	m := NewMetrics(Config{Address: ":0", ServiceName: "test-service"})

	m.IncrementRequests("embeddings", "success")
	m.IncrementRequests("embeddings", "success")
	m.IncrementRequests("chat", "error")

	if got := testutil.ToFloat64(m.requestsTotal.WithLabelValues("embeddings", "success")); got != 2 {
		t.Errorf("expected 2 successful embeddings requests, got %v", got)
	}
	if got := testutil.ToFloat64(m.requestsTotal.WithLabelValues("chat", "error")); got != 1 {
		t.Errorf("expected 1 failed chat request, got %v", got)
	}
}

func TestRecordRequestDuration(t *testing.T) {
	m := NewMetrics(Config{Address: ":0", ServiceName: "test-service"})

	m.RecordRequestDuration(time.Now().Add(-10*time.Millisecond), "rerank")

	if got := testutil.CollectAndCount(m.requestDuration); got != 1 {
		t.Errorf("expected 1 duration metric, got %d", got)
	}
}

func TestRecordTokenUsage(t *testing.T) {
	m := NewMetrics(Config{Address: ":0", ServiceName: "test-service"})

	m.RecordTokenUsage("gpt-3.5-turbo", "prompt", 42)
	m.RecordTokenUsage("gpt-3.5-turbo", "prompt", 8)
	m.RecordTokenUsage("gpt-3.5-turbo", "completion", 16)
	m.RecordTokenUsage("gpt-3.5-turbo", "completion", 0)
	m.RecordTokenUsage("gpt-3.5-turbo", "completion", -5)

	if got := testutil.ToFloat64(m.tokensTotal.WithLabelValues("gpt-3.5-turbo", "prompt")); got != 50 {
		t.Errorf("expected 50 prompt tokens, got %v", got)
	}
	if got := testutil.ToFloat64(m.tokensTotal.WithLabelValues("gpt-3.5-turbo", "completion")); got != 16 {
		t.Errorf("expected 16 completion tokens, got %v", got)
	}
}

func TestNamespacePrefix(t *testing.T) {
	m := NewMetrics(Config{Address: ":0", ServiceName: "test-service", Namespace: "localai"})

	m.IncrementRequests("embeddings", "success")

	count, err := testutil.GatherAndCount(m.Registry, "localai_requests_total")
	if err != nil {
		t.Fatalf("unexpected error gathering metrics: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 namespaced sample, got %d", count)
	}

	counter := m.CreateCounter("cache_hits_total", "Total cache hits", []string{"kind"})
	counter.WithLabelValues("embedding").Inc()

	count, err = testutil.GatherAndCount(m.Registry, "localai_cache_hits_total")
	if err != nil {
		t.Fatalf("unexpected error gathering metrics: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 namespaced custom sample, got %d", count)
	}
}

func TestCreateMetrics(t *testing.T) {
	m := NewMetrics(Config{Address: ":0", ServiceName: "test-service"})

	counter := m.CreateCounter("events_total", "Total events", []string{"type"})
	counter.WithLabelValues("start").Inc()

	hist := m.CreateHistogram("batch_size", "Embedding batch sizes", []string{"model"}, prometheus.DefBuckets)
	hist.WithLabelValues("ada").Observe(16)

	gauge := m.CreateGauge("active_streams", "Active chat streams", []string{"model"})
	gauge.WithLabelValues("gpt-3.5-turbo").Set(3)

	if got := testutil.ToFloat64(counter.WithLabelValues("start")); got != 1 {
		t.Errorf("expected counter value 1, got %v", got)
	}
	if got := testutil.CollectAndCount(hist); got != 1 {
		t.Errorf("expected 1 histogram metric, got %d", got)
	}
	if got := testutil.ToFloat64(gauge.WithLabelValues("gpt-3.5-turbo")); got != 3 {
		t.Errorf("expected gauge value 3, got %v", got)
	}
}

func TestNewConfigFromEnv(t *testing.T) {
	t.Setenv("METRICS_ADDRESS", ":9191")
	t.Setenv("METRICS_ENABLE_DEFAULT_COLLECTORS", "true")
	t.Setenv("METRICS_NAMESPACE", "localai")
	t.Setenv("METRICS_SERVICE_NAME", "localai-adapter")

	cfg := NewConfigFromEnv()
	if cfg.Address != ":9191" {
		t.Errorf("expected address ':9191', got %q", cfg.Address)
	}
	if !cfg.EnableDefaultCollectors {
		t.Error("expected default collectors to be enabled")
	}
	if cfg.Namespace != "localai" {
		t.Errorf("expected namespace 'localai', got %q", cfg.Namespace)
	}
	if cfg.ServiceName != "localai-adapter" {
		t.Errorf("expected service name 'localai-adapter', got %q", cfg.ServiceName)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Address != DefaultMetricsAddress {
		t.Errorf("expected default address %q, got %q", DefaultMetricsAddress, cfg.Address)
	}
}
