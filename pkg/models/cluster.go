package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrEmptyCluster is returned when building a cluster from no alerts.
var ErrEmptyCluster = errors.New("cannot create cluster from empty alert list")

// AlertCluster groups alerts that describe one underlying incident.
// Created by the correlation engine, consumed once by the decision
// pipeline; durable state lives in the ledger.
type AlertCluster struct {
	ClusterID        string            `json:"cluster_id"`
	Alerts           []NormalizedAlert `json:"alerts"`
	CorrelationScore float64           `json:"correlation_score"`
	CreatedAt        time.Time         `json:"created_at"`
	PrimaryService   string            `json:"primary_service"`
	PrimarySeverity  string            `json:"primary_severity"`
	AlertCount       int               `json:"alert_count"`
	Metadata         map[string]any    `json:"metadata,omitempty"`
}

// NewAlertCluster builds a cluster from its alerts, computing the derived
// fields. PrimaryService is the most common service (ties broken
// lexicographically); PrimarySeverity is the highest severity present.
func NewAlertCluster(alerts []NormalizedAlert, correlationScore float64) (AlertCluster, error) {
	if len(alerts) == 0 {
		return AlertCluster{}, ErrEmptyCluster
	}

	serviceCounts := make(map[string]int, len(alerts))
	for _, a := range alerts {
		serviceCounts[a.Service]++
	}
	primaryService := ""
	for service, count := range serviceCounts {
		switch {
		case primaryService == "",
			count > serviceCounts[primaryService],
			count == serviceCounts[primaryService] && service < primaryService:
			primaryService = service
		}
	}

	primarySeverity := alerts[0].Severity
	for _, a := range alerts[1:] {
		if SeverityRank(a.Severity) > SeverityRank(primarySeverity) {
			primarySeverity = a.Severity
		}
	}

	return AlertCluster{
		ClusterID:        uuid.New().String(),
		Alerts:           alerts,
		CorrelationScore: correlationScore,
		CreatedAt:        time.Now().UTC(),
		PrimaryService:   primaryService,
		PrimarySeverity:  primarySeverity,
		AlertCount:       len(alerts),
		Metadata:         map[string]any{},
	}, nil
}

// TimeSpan returns the duration between the earliest and latest alert.
func (c AlertCluster) TimeSpan() time.Duration {
	if len(c.Alerts) == 0 {
		return 0
	}
	earliest, latest := c.Alerts[0].Timestamp, c.Alerts[0].Timestamp
	for _, a := range c.Alerts[1:] {
		if a.Timestamp.Before(earliest) {
			earliest = a.Timestamp
		}
		if a.Timestamp.After(latest) {
			latest = a.Timestamp
		}
	}
	return latest.Sub(earliest)
}
