package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestRecordRequest(t *testing.T) {
	tests := []struct {
		name       string
		tool       string
		duration   float64
		success    bool
		wantStatus string
	}{
		{
			name:       "successful request",
			tool:       "get_token_information",
			duration:   0.5,
			success:    true,
			wantStatus: "success",
		},
		{
			name:       "failed request",
			tool:       "get_token_information",
			duration:   1.0,
			success:    false,
			wantStatus: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RecordRequest(tt.tool, tt.duration, tt.success)

			counter, err := RequestsTotal.GetMetricWithLabelValues(tt.tool, tt.wantStatus)
			if err != nil {
				t.Fatalf("failed to get metric: %v", err)
			}

			var m dto.Metric
			if err := counter.Write(&m); err != nil {
				t.Fatalf("failed to write metric: %v", err)
			}

			if m.Counter.GetValue() < 1 {
				t.Error("expected counter to be incremented")
			}
		})
	}
}

func TestRecordUpstreamCall(t *testing.T) {
	tests := []struct {
		name       string
		endpoint   string
		duration   float64
		status     int
		wantStatus string
		wantError  bool
	}{
		{
			name:       "successful call",
			endpoint:   "/tokens/{tokenAddress}",
			duration:   0.1,
			status:     200,
			wantStatus: "200",
			wantError:  false,
		},
		{
			name:       "not found",
			endpoint:   "/tokens/{tokenAddress}",
			duration:   0.1,
			status:     404,
			wantStatus: "404",
			wantError:  true,
		},
		{
			name:       "transport failure",
			endpoint:   "/search",
			duration:   0.5,
			status:     0,
			wantStatus: "0",
			wantError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RecordUpstreamCall(tt.endpoint, tt.duration, tt.status)

			counter, err := UpstreamRequestsTotal.GetMetricWithLabelValues(tt.endpoint, tt.wantStatus)
			if err != nil {
				t.Fatalf("failed to get metric: %v", err)
			}

			var m dto.Metric
			if err := counter.Write(&m); err != nil {
				t.Fatalf("failed to write metric: %v", err)
			}

			if m.Counter.GetValue() < 1 {
				t.Error("expected request counter to be incremented")
			}

			if tt.wantError {
				errCounter, err := UpstreamErrors.GetMetricWithLabelValues(tt.endpoint, tt.wantStatus)
				if err != nil {
					t.Fatalf("failed to get error metric: %v", err)
				}

				var em dto.Metric
				if err := errCounter.Write(&em); err != nil {
					t.Fatalf("failed to write error metric: %v", err)
				}

				if em.Counter.GetValue() < 1 {
					t.Error("expected error counter to be incremented")
				}
			}
		})
	}
}

func TestRecordResponseSize(t *testing.T) {
	RecordResponseSize("/tokens/{tokenAddress}", 4096)

	hist, err := ResponseSize.GetMetricWithLabelValues("/tokens/{tokenAddress}")
	if err != nil {
		t.Fatalf("failed to get metric: %v", err)
	}

	var m dto.Metric
	if err := hist.(prometheus.Histogram).Write(&m); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}

	if m.Histogram.GetSampleCount() < 1 {
		t.Error("expected histogram to record a sample")
	}
}

func TestMetricsRegistered(t *testing.T) {
	metrics := []prometheus.Collector{
		RequestsTotal,
		RequestDuration,
		RequestInFlight,
		UpstreamLatency,
		UpstreamRequestsTotal,
		UpstreamErrors,
		ResponseSize,
		PanicsRecovered,
	}

	for i, m := range metrics {
		if m == nil {
			t.Errorf("metric at index %d is nil", i)
		}
	}
}

func TestNamespace(t *testing.T) {
	if Namespace != "solana_tracker_mcp" {
		t.Errorf("expected namespace 'solana_tracker_mcp', got '%s'", Namespace)
	}
}
