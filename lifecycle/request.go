package lifecycle

import (
	"context"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/relief-api/schema"
)

// CreateRequest stores a new open, unverified request owned by the actor
func (e *Engine) CreateRequest(ctx context.Context, sess SessionContext, d RequestDraft) (*schema.HelpRequest, error) {
	if !sess.Authenticated() {
		return nil, errUnauthenticated
	}

	d.normalize()
	d.defaults()
	if err := d.validate(); err != nil {
		return nil, err
	}

	now := e.stamp()
	r := &schema.HelpRequest{
		ID:        uuid.New(),
		UserID:    sess.UserID,
		Status:    schema.StatusOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}
	d.apply(r)

	if err := e.store.CreateRequest(ctx, r); err != nil {
		return nil, storeFailure("create request", err)
	}

	return r, nil
}

func (e *Engine) loadRequest(ctx context.Context, id uuid.UUID) (*schema.HelpRequest, error) {
	r, err := e.store.GetRequest(ctx, id)
	if err != nil {
		return nil, storeFailure("get request", err)
	}
	return r, nil
}

// frozen rejects changes to a closed request unless an admin overrides
func frozen(sess SessionContext, r *schema.HelpRequest) error {
	if r.Status == schema.StatusClosed && !sess.IsAdmin() {
		return &InvalidTransitionError{From: r.Status}
	}
	return nil
}

// EditRequest changes the content of a request. Owners may edit while the
// request is open, moderators until it is closed.
func (e *Engine) EditRequest(ctx context.Context, sess SessionContext, id uuid.UUID, p RequestPatch) (*schema.HelpRequest, error) {
	if !sess.Authenticated() {
		return nil, errUnauthenticated
	}

	r, err := e.loadRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	switch {
	case sess.CanModerate():
		if err := frozen(sess, r); err != nil {
			return nil, err
		}
	case sess.Owns(r.UserID):
		if r.Status != schema.StatusOpen {
			return nil, &InvalidTransitionError{From: r.Status}
		}
	default:
		return nil, forbidden("only the requester or a moderator may edit a request")
	}

	d := draftOf(r)
	p.applyTo(&d)
	d.normalize()
	if err := d.validate(); err != nil {
		return nil, err
	}

	now := e.stamp()
	fields := d.columns()
	fields["updated_at"] = now

	if err := e.store.UpdateRequest(ctx, id, fields); err != nil {
		return nil, storeFailure("edit request", err)
	}

	d.apply(r)
	r.UpdatedAt = now
	return r, nil
}

// UpdateStatus moves a request along the status graph. Moderators may make
// any reachable move, owners only open to in_progress or closed.
func (e *Engine) UpdateStatus(ctx context.Context, sess SessionContext, id uuid.UUID, to schema.RequestStatus) (*schema.HelpRequest, error) {
	if !sess.Authenticated() {
		return nil, errUnauthenticated
	}

	if !to.Valid() {
		return nil, invalid("status", "unknown status")
	}

	r, err := e.loadRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	switch {
	case sess.CanModerate():
	case sess.Owns(r.UserID):
		if !ownerMove(r.Status, to) {
			return nil, forbidden("requesters may only start or close an open request")
		}
	default:
		return nil, forbidden("only the requester or a moderator may change the status")
	}

	if !Reachable(r.Status, to) {
		return nil, &InvalidTransitionError{From: r.Status, To: to}
	}

	now := e.stamp()
	if err := e.store.UpdateRequest(ctx, id, map[string]interface{}{
		"status":     to,
		"updated_at": now,
	}); err != nil {
		return nil, storeFailure("update request status", err)
	}

	audit(sess, "request status changed", log.Fields{"id": id, "from": r.Status, "to": to})

	r.Status = to
	r.UpdatedAt = now
	return r, nil
}

// Verify marks a request genuine. Verifying twice writes nothing.
func (e *Engine) Verify(ctx context.Context, sess SessionContext, id uuid.UUID) (*schema.HelpRequest, error) {
	if err := moderator(sess); err != nil {
		return nil, err
	}

	r, err := e.loadRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	if r.IsVerified {
		return r, nil
	}

	if err := frozen(sess, r); err != nil {
		return nil, err
	}

	now := e.stamp()
	if err := e.store.UpdateRequest(ctx, id, map[string]interface{}{
		"is_verified": true,
		"verified_at": now,
		"updated_at":  now,
	}); err != nil {
		return nil, storeFailure("verify request", err)
	}

	audit(sess, "request verified", log.Fields{"id": id})

	r.IsVerified = true
	r.VerifiedAt = &now
	r.UpdatedAt = now
	return r, nil
}

// MarkActionTaken flags that help is under way. The first call stamps
// action_taken_at, later calls only replace non-empty notes.
func (e *Engine) MarkActionTaken(ctx context.Context, sess SessionContext, id uuid.UUID, notes string) (*schema.HelpRequest, error) {
	if err := moderator(sess); err != nil {
		return nil, err
	}

	r, err := e.loadRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	if r.ActionTaken && notes == "" {
		return r, nil
	}

	if err := frozen(sess, r); err != nil {
		return nil, err
	}

	now := e.stamp()
	fields := map[string]interface{}{
		"updated_at": now,
	}
	if !r.ActionTaken {
		fields["action_taken"] = true
		fields["action_taken_at"] = now
	}
	if notes != "" {
		fields["action_notes"] = notes
	}

	if err := e.store.UpdateRequest(ctx, id, fields); err != nil {
		return nil, storeFailure("mark action taken", err)
	}

	audit(sess, "request action taken", log.Fields{"id": id})

	if !r.ActionTaken {
		r.ActionTaken = true
		r.ActionTakenAt = &now
	}
	if notes != "" {
		r.ActionNotes = notes
	}
	r.UpdatedAt = now
	return r, nil
}

// DeleteRequest purges a request
func (e *Engine) DeleteRequest(ctx context.Context, sess SessionContext, id uuid.UUID) error {
	if err := moderator(sess); err != nil {
		return err
	}

	if err := e.store.DeleteRequest(ctx, id); err != nil {
		return storeFailure("delete request", err)
	}

	audit(sess, "request deleted", log.Fields{"id": id})
	return nil
}

func moderator(sess SessionContext) error {
	if !sess.Authenticated() {
		return errUnauthenticated
	}
	if !sess.CanModerate() {
		return forbidden("moderator role required")
	}
	return nil
}
