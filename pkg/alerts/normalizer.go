// Package alerts validates and canonicalizes raw alerts before
// correlation. Malformed alerts are marked, never dropped, so every
// delivery stays auditable.
package alerts

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/swarmops/swarmsre/pkg/models"
)

var validSeverities = map[string]struct{}{
	"critical": {},
	"warning":  {},
	"info":     {},
}

// Normalizer converts raw alerts into the canonical form.
type Normalizer struct {
	now func() time.Time
}

// NewNormalizer creates a normalizer using wall-clock time.
func NewNormalizer() *Normalizer {
	return &Normalizer{now: time.Now}
}

// NewNormalizerWithClock creates a normalizer with an injected clock.
func NewNormalizerWithClock(now func() time.Time) *Normalizer {
	return &Normalizer{now: now}
}

// Normalize validates one alert and returns its canonical form. Service is
// lowercased and hyphenated; severity is lowercased, falling back to
// "info" (with a recorded error) when outside the allowed set.
func (n *Normalizer) Normalize(alert models.RawAlert) models.NormalizedAlert {
	alert = alert.DeriveFields()
	errs := n.validate(alert)

	status := models.ValidationValid
	if len(errs) > 0 {
		status = models.ValidationMalformed
	}

	return models.NormalizedAlert{
		Timestamp:        alert.Timestamp,
		Fingerprint:      alert.Fingerprint,
		Service:          normalizeService(alert.Service),
		Severity:         normalizeSeverity(alert.Severity),
		Description:      alert.Description,
		Labels:           alert.Labels,
		ValidationStatus: status,
		ValidationErrors: errs,
		NormalizedAt:     n.now().UTC(),
	}
}

// NormalizeBatch normalizes alerts preserving cardinality and order.
func (n *Normalizer) NormalizeBatch(batch []models.RawAlert) []models.NormalizedAlert {
	normalized := make([]models.NormalizedAlert, len(batch))
	malformed := 0
	for i, alert := range batch {
		normalized[i] = n.Normalize(alert)
		if !normalized[i].IsValid() {
			malformed++
		}
	}
	if malformed > 0 {
		slog.Warn("Normalized alert batch with malformed entries",
			"total", len(batch), "malformed", malformed)
	}
	return normalized
}

func (n *Normalizer) validate(alert models.RawAlert) []string {
	var errs []string

	if strings.TrimSpace(alert.Fingerprint) == "" {
		errs = append(errs, "missing or empty fingerprint")
	}
	if strings.TrimSpace(alert.Service) == "" {
		errs = append(errs, "missing or empty service")
	}
	if strings.TrimSpace(alert.Description) == "" {
		errs = append(errs, "missing or empty description")
	}
	if _, ok := validSeverities[strings.ToLower(strings.TrimSpace(alert.Severity))]; !ok {
		errs = append(errs, fmt.Sprintf("invalid severity: %s", alert.Severity))
	}
	if alert.Timestamp.After(n.now()) {
		errs = append(errs, "timestamp is in the future")
	}

	return errs
}

func normalizeService(service string) string {
	return strings.TrimSpace(strings.ReplaceAll(strings.ToLower(service), "_", "-"))
}

func normalizeSeverity(severity string) string {
	normalized := strings.ToLower(strings.TrimSpace(severity))
	if _, ok := validSeverities[normalized]; ok {
		return normalized
	}
	return "info"
}
