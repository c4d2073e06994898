// Package models contains the shared value types of the triage pipeline.
// Entities are immutable once created; constructors validate invariants.
package models

import "time"

// AlertSource identifies the monitoring system that emitted an alert.
type AlertSource string

const (
	SourceGrafana    AlertSource = "GRAFANA"
	SourceServiceNow AlertSource = "SERVICENOW"
)

// ValidationStatus marks the outcome of alert normalization.
type ValidationStatus string

const (
	ValidationValid     ValidationStatus = "VALID"
	ValidationMalformed ValidationStatus = "MALFORMED"
)

// RawAlert is an immutable event as received from a monitoring system.
// Legacy Grafana payloads may carry service/severity only in labels and
// description only in annotations; DeriveFields fills the canonical fields
// from those before normalization.
type RawAlert struct {
	Timestamp    time.Time         `json:"timestamp"`
	Fingerprint  string            `json:"fingerprint"`
	Service      string            `json:"service"`
	Severity     string            `json:"severity"`
	Description  string            `json:"description"`
	Source       AlertSource       `json:"source"`
	Labels       map[string]string `json:"labels,omitempty"`
	Annotations  map[string]string `json:"annotations,omitempty"`
	GeneratorURL string            `json:"generator_url,omitempty"`
}

// DeriveFields returns a copy with service, severity and description filled
// from labels/annotations when the canonical fields are empty. Labels win
// for service and severity, annotations for description (summary first),
// matching the Grafana payload conventions.
func (a RawAlert) DeriveFields() RawAlert {
	if a.Service == "" {
		if v := a.Labels["service"]; v != "" {
			a.Service = v
		} else if v := a.Labels["app"]; v != "" {
			a.Service = v
		} else {
			a.Service = "unknown"
		}
	}
	if a.Severity == "" {
		if v := a.Labels["severity"]; v != "" {
			a.Severity = v
		} else if v := a.Labels["level"]; v != "" {
			a.Severity = v
		} else {
			a.Severity = "warning"
		}
	}
	if a.Description == "" {
		if v := a.Annotations["summary"]; v != "" {
			a.Description = v
		} else if v := a.Annotations["description"]; v != "" {
			a.Description = v
		}
	}
	if a.Source == "" {
		a.Source = SourceGrafana
	}
	return a
}

// NormalizedAlert is the canonical representation used by the pipeline.
// Malformed alerts are retained (not dropped) so they stay auditable.
type NormalizedAlert struct {
	Timestamp        time.Time         `json:"timestamp"`
	Fingerprint      string            `json:"fingerprint"`
	Service          string            `json:"service"`
	Severity         string            `json:"severity"`
	Description      string            `json:"description"`
	Labels           map[string]string `json:"labels,omitempty"`
	ValidationStatus ValidationStatus  `json:"validation_status"`
	ValidationErrors []string          `json:"validation_errors,omitempty"`
	NormalizedAt     time.Time         `json:"normalized_at"`
}

// IsValid reports whether the alert passed validation.
func (a NormalizedAlert) IsValid() bool {
	return a.ValidationStatus == ValidationValid
}

// SeverityRank orders severities critical > warning > info. Unknown
// severities rank below info.
func SeverityRank(severity string) int {
	switch severity {
	case "critical":
		return 3
	case "warning":
		return 2
	case "info":
		return 1
	default:
		return 0
	}
}
