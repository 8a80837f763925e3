package lifecycle

import (
	"context"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/relief-api/schema"
)

// ReportMissing stores a missing person report owned by the actor
func (e *Engine) ReportMissing(ctx context.Context, sess SessionContext, d MissingPersonDraft) (*schema.MissingPerson, error) {
	if !sess.Authenticated() {
		return nil, errUnauthenticated
	}

	if err := d.validate(); err != nil {
		return nil, err
	}

	now := e.stamp()
	p := &schema.MissingPerson{
		ID:                  uuid.New(),
		UserID:              sess.UserID,
		AreaID:              d.AreaID,
		FullName:            d.FullName,
		Age:                 d.Age,
		Gender:              d.Gender,
		LastSeenDate:        d.LastSeenDate,
		LastSeenLocation:    d.LastSeenLocation,
		PhysicalDescription: d.PhysicalDescription,
		ClothingDescription: d.ClothingDescription,
		Description:         d.Description,
		ContactInfo:         d.ContactInfo,
		PhotoURL:            d.PhotoURL,
		Location:            d.Location,
		Status:              schema.MissingStatusMissing,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := e.store.CreateMissingPerson(ctx, p); err != nil {
		return nil, storeFailure("report missing person", err)
	}

	return p, nil
}

// MarkFound closes a missing person report. Marking twice writes nothing.
func (e *Engine) MarkFound(ctx context.Context, sess SessionContext, id uuid.UUID) (*schema.MissingPerson, error) {
	if !sess.Authenticated() {
		return nil, errUnauthenticated
	}

	p, err := e.store.GetMissingPerson(ctx, id)
	if err != nil {
		return nil, storeFailure("get missing person", err)
	}

	if !sess.CanModerate() && !sess.Owns(p.UserID) {
		return nil, forbidden("only the reporter or a moderator may mark a person found")
	}

	if p.IsFound {
		return p, nil
	}

	now := e.stamp()
	if err := e.store.UpdateMissingPerson(ctx, id, map[string]interface{}{
		"is_found":   true,
		"found_at":   now,
		"status":     schema.MissingStatusFound,
		"updated_at": now,
	}); err != nil {
		return nil, storeFailure("mark person found", err)
	}

	audit(sess, "missing person found", log.Fields{"id": id})

	p.IsFound = true
	p.FoundAt = &now
	p.Status = schema.MissingStatusFound
	p.UpdatedAt = now
	return p, nil
}

func (e *Engine) DeleteMissingPerson(ctx context.Context, sess SessionContext, id uuid.UUID) error {
	if err := moderator(sess); err != nil {
		return err
	}

	if err := e.store.DeleteMissingPerson(ctx, id); err != nil {
		return storeFailure("delete missing person", err)
	}

	audit(sess, "missing person deleted", log.Fields{"id": id})
	return nil
}
