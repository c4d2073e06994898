package alerts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/swarmops/swarmsre/pkg/models"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func newTestNormalizer() *Normalizer {
	return NewNormalizerWithClock(func() time.Time { return testNow })
}

func validRawAlert() models.RawAlert {
	return models.RawAlert{
		Timestamp:   testNow.Add(-time.Minute),
		Fingerprint: "fp-1",
		Service:     "Checkout_Service",
		Severity:    "Critical",
		Description: "CPU usage above threshold",
		Labels:      map[string]string{"region": "us-east-1"},
		Source:      models.SourceGrafana,
	}
}

func TestNormalize_ValidAlert(t *testing.T) {
	n := newTestNormalizer()

	got := n.Normalize(validRawAlert())

	assert.Equal(t, models.ValidationValid, got.ValidationStatus)
	assert.Empty(t, got.ValidationErrors)
	assert.Equal(t, "checkout-service", got.Service)
	assert.Equal(t, "critical", got.Severity)
	assert.Equal(t, testNow, got.NormalizedAt)
}

func TestNormalize_MalformedIffErrors(t *testing.T) {
	n := newTestNormalizer()

	cases := []struct {
		name   string
		mutate func(*models.RawAlert)
		errMsg string
	}{
		{"empty fingerprint", func(a *models.RawAlert) { a.Fingerprint = " " }, "missing or empty fingerprint"},
		{"empty description", func(a *models.RawAlert) { a.Description = "" }, "missing or empty description"},
		{"invalid severity", func(a *models.RawAlert) { a.Severity = "catastrophic" }, "invalid severity: catastrophic"},
		{"future timestamp", func(a *models.RawAlert) { a.Timestamp = testNow.Add(time.Hour) }, "timestamp is in the future"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			alert := validRawAlert()
			tc.mutate(&alert)

			got := n.Normalize(alert)

			assert.Equal(t, models.ValidationMalformed, got.ValidationStatus)
			assert.Contains(t, got.ValidationErrors, tc.errMsg)
		})
	}
}

func TestNormalize_InvalidSeverityFallsBackToInfo(t *testing.T) {
	n := newTestNormalizer()
	alert := validRawAlert()
	alert.Severity = "disaster"

	got := n.Normalize(alert)

	assert.Equal(t, "info", got.Severity)
	assert.False(t, got.IsValid())
}

func TestNormalize_DerivesFromGrafanaLabels(t *testing.T) {
	n := newTestNormalizer()
	alert := models.RawAlert{
		Timestamp:   testNow.Add(-time.Minute),
		Fingerprint: "fp-grafana",
		Labels:      map[string]string{"service": "Payments_API", "severity": "warning"},
		Annotations: map[string]string{"summary": "latency spike on payments"},
	}

	got := n.Normalize(alert)

	assert.Equal(t, "payments-api", got.Service)
	assert.Equal(t, "warning", got.Severity)
	assert.Equal(t, "latency spike on payments", got.Description)
	assert.True(t, got.IsValid())
}

func TestNormalizeBatch_PreservesCardinalityAndOrder(t *testing.T) {
	n := newTestNormalizer()
	bad := validRawAlert()
	bad.Fingerprint = ""

	got := n.NormalizeBatch([]models.RawAlert{validRawAlert(), bad, validRawAlert()})

	assert.Len(t, got, 3)
	assert.True(t, got[0].IsValid())
	assert.False(t, got[1].IsValid())
	assert.True(t, got[2].IsValid())
}

func TestNormalize_MalformedIffValidationErrorsNonEmpty(t *testing.T) {
	n := newTestNormalizer()
	alerts := []models.RawAlert{validRawAlert()}
	bad := validRawAlert()
	bad.Service = ""
	bad.Labels = nil
	alerts = append(alerts, bad)

	for _, got := range n.NormalizeBatch(alerts) {
		if got.ValidationStatus == models.ValidationMalformed {
			assert.NotEmpty(t, got.ValidationErrors)
		} else {
			assert.Empty(t, got.ValidationErrors)
		}
	}
}
