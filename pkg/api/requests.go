package api

import (
	"time"

	"github.com/swarmops/swarmsre/pkg/models"
)

// WebhookAlert is one alert in a monitoring-system delivery.
type WebhookAlert struct {
	Labels       map[string]string `json:"labels"`
	Annotations  map[string]string `json:"annotations"`
	StartsAt     time.Time         `json:"startsAt"`
	Fingerprint  string            `json:"fingerprint,omitempty"`
	GeneratorURL string            `json:"generatorURL,omitempty"`
}

// WebhookRequest is the POST /api/v1/alerts body.
type WebhookRequest struct {
	Alerts []WebhookAlert `json:"alerts"`
}

// toRawAlerts converts the webhook payload into the internal batch.
// Unknown labels are preserved; canonical fields derive from
// labels/annotations at normalization.
func (r WebhookRequest) toRawAlerts() []models.RawAlert {
	batch := make([]models.RawAlert, 0, len(r.Alerts))
	for _, a := range r.Alerts {
		batch = append(batch, models.RawAlert{
			Timestamp:    a.StartsAt,
			Fingerprint:  a.Fingerprint,
			Labels:       a.Labels,
			Annotations:  a.Annotations,
			GeneratorURL: a.GeneratorURL,
			Source:       models.SourceGrafana,
		})
	}
	return batch
}
