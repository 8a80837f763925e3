package lifecycle

import (
	"context"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/relief-api/schema"
)

// CreateAlert publishes an active weather alert for an area
func (e *Engine) CreateAlert(ctx context.Context, sess SessionContext, d AlertDraft) (*schema.WeatherAlert, error) {
	if err := moderator(sess); err != nil {
		return nil, err
	}

	if err := d.validate(); err != nil {
		return nil, err
	}

	now := e.stamp()
	a := &schema.WeatherAlert{
		ID:          uuid.New(),
		AreaID:      d.AreaID,
		CreatedBy:   sess.UserID,
		Title:       d.Title,
		Description: d.Description,
		Severity:    d.Severity,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := e.store.CreateAlert(ctx, a); err != nil {
		return nil, storeFailure("create alert", err)
	}

	audit(sess, "alert created", log.Fields{"id": a.ID, "severity": a.Severity})
	return a, nil
}

// DeactivateAlert retires an alert. Alerts never become active again.
func (e *Engine) DeactivateAlert(ctx context.Context, sess SessionContext, id uuid.UUID) (*schema.WeatherAlert, error) {
	if err := moderator(sess); err != nil {
		return nil, err
	}

	a, err := e.store.GetAlert(ctx, id)
	if err != nil {
		return nil, storeFailure("get alert", err)
	}

	if !a.IsActive {
		return a, nil
	}

	now := e.stamp()
	if err := e.store.UpdateAlert(ctx, id, map[string]interface{}{
		"is_active":  false,
		"updated_at": now,
	}); err != nil {
		return nil, storeFailure("deactivate alert", err)
	}

	audit(sess, "alert deactivated", log.Fields{"id": id})

	a.IsActive = false
	a.UpdatedAt = now
	return a, nil
}
