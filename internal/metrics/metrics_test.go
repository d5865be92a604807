package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// TestNewCollector_ReturnsNonNil はCollectorが正常に生成されることを検証する。
func TestNewCollector_ReturnsNonNil(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	if c == nil {
		t.Fatal("expected non-nil Collector")
	}
}

// counterValue は指定メトリクス・ラベルのカウンタ値を取得するヘルパー。
func counterValue(t *testing.T, reg *prometheus.Registry, name, labelValue string) float64 {
	t.Helper()

	metrics, err := reg.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	for _, mf := range metrics {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			if labelValue == "" {
				return m.GetCounter().GetValue()
			}
			for _, l := range m.GetLabel() {
				if l.GetValue() == labelValue {
					return m.GetCounter().GetValue()
				}
			}
		}
	}

	t.Fatalf("metric %s (label %q) not found", name, labelValue)
	return 0
}

// TestRecordRegistration_IncrementsCounter は登録カウンタが結果別に増加することを検証する。
func TestRecordRegistration_IncrementsCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordRegistration("success")
	c.RecordRegistration("success")
	c.RecordRegistration("invalid")

	if got := counterValue(t, reg, "softjobs_registrations_total", "success"); got != 2 {
		t.Errorf("registrations_total{success} = %v, want 2", got)
	}
	if got := counterValue(t, reg, "softjobs_registrations_total", "invalid"); got != 1 {
		t.Errorf("registrations_total{invalid} = %v, want 1", got)
	}
}

// TestRecordLogin_IncrementsCounter はログインカウンタが増加することを検証する。
func TestRecordLogin_IncrementsCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordLogin("rejected")

	if got := counterValue(t, reg, "softjobs_logins_total", "rejected"); got != 1 {
		t.Errorf("logins_total{rejected} = %v, want 1", got)
	}
}

// TestRecordTokenVerification_IncrementsCounter はトークン検証カウンタが増加することを検証する。
func TestRecordTokenVerification_IncrementsCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordTokenVerification("invalid")

	if got := counterValue(t, reg, "softjobs_token_verifications_total", "invalid"); got != 1 {
		t.Errorf("token_verifications_total{invalid} = %v, want 1", got)
	}
}

// TestRecordHTTPStatus_IncrementsCounter はステータスコード別カウンタが増加することを検証する。
func TestRecordHTTPStatus_IncrementsCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordHTTPStatus(201)
	c.RecordHTTPStatus(401)
	c.RecordHTTPStatus(401)

	if got := counterValue(t, reg, "softjobs_http_status_total", "401"); got != 2 {
		t.Errorf("http_status_total{401} = %v, want 2", got)
	}
}

// TestRecordHashLatency_Observes はハッシュレイテンシが記録されることを検証する。
func TestRecordHashLatency_Observes(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordHashLatency(50 * time.Millisecond)

	metrics, err := reg.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	found := false
	for _, mf := range metrics {
		if mf.GetName() == "softjobs_hash_latency_seconds" {
			found = true
			if mf.GetMetric()[0].GetHistogram().GetSampleCount() != 1 {
				t.Errorf("sample count = %d, want 1", mf.GetMetric()[0].GetHistogram().GetSampleCount())
			}
		}
	}
	if !found {
		t.Error("softjobs_hash_latency_seconds metric not found")
	}
}

// TestSetupMetricsRoute_ServesMetrics は/metricsエンドポイントが
// Prometheus形式で応答することを検証する。
func TestSetupMetricsRoute_ServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordLogin("success")

	handler := SetupMetricsRoute(reg)
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	body, err := io.ReadAll(w.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	if !strings.Contains(string(body), "softjobs_logins_total") {
		t.Error("expected softjobs_logins_total in metrics output")
	}
}
