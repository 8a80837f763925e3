package store

import (
	"context"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/relief-api/schema"
)

// Publisher announces that a table has changed
type Publisher interface {
	Publish(ctx context.Context, table schema.Table) error
}

// NotifyingCore wraps a ReliefCore and publishes a change signal after every
// successful mutation. A failed publish is logged and never fails the write.
type NotifyingCore struct {
	ReliefCore
	publisher Publisher
}

func NewNotifyingCore(core ReliefCore, publisher Publisher) *NotifyingCore {
	return &NotifyingCore{
		ReliefCore: core,
		publisher:  publisher,
	}
}

func (n *NotifyingCore) publish(ctx context.Context, table schema.Table, err error) error {
	if err != nil {
		return err
	}

	if perr := n.publisher.Publish(ctx, table); perr != nil {
		log.WithFields(log.Fields{
			"prefix": ormLogPrefix,
			"table":  table,
			"error":  perr,
		}).Warn("publish change signal")
	}
	return nil
}

func (n *NotifyingCore) CreateRequest(ctx context.Context, r *schema.HelpRequest) error {
	return n.publish(ctx, schema.TableHelpRequests, n.ReliefCore.CreateRequest(ctx, r))
}

func (n *NotifyingCore) UpdateRequest(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return n.publish(ctx, schema.TableHelpRequests, n.ReliefCore.UpdateRequest(ctx, id, fields))
}

func (n *NotifyingCore) DeleteRequest(ctx context.Context, id uuid.UUID) error {
	return n.publish(ctx, schema.TableHelpRequests, n.ReliefCore.DeleteRequest(ctx, id))
}

func (n *NotifyingCore) CreateOffer(ctx context.Context, o *schema.HelpOffer) error {
	return n.publish(ctx, schema.TableHelpOffers, n.ReliefCore.CreateOffer(ctx, o))
}

func (n *NotifyingCore) UpdateOffer(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return n.publish(ctx, schema.TableHelpOffers, n.ReliefCore.UpdateOffer(ctx, id, fields))
}

func (n *NotifyingCore) DeleteOffer(ctx context.Context, id uuid.UUID) error {
	return n.publish(ctx, schema.TableHelpOffers, n.ReliefCore.DeleteOffer(ctx, id))
}

func (n *NotifyingCore) CreateMissingPerson(ctx context.Context, p *schema.MissingPerson) error {
	return n.publish(ctx, schema.TableMissingPersons, n.ReliefCore.CreateMissingPerson(ctx, p))
}

func (n *NotifyingCore) UpdateMissingPerson(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return n.publish(ctx, schema.TableMissingPersons, n.ReliefCore.UpdateMissingPerson(ctx, id, fields))
}

func (n *NotifyingCore) DeleteMissingPerson(ctx context.Context, id uuid.UUID) error {
	return n.publish(ctx, schema.TableMissingPersons, n.ReliefCore.DeleteMissingPerson(ctx, id))
}

func (n *NotifyingCore) CreateAlert(ctx context.Context, a *schema.WeatherAlert) error {
	return n.publish(ctx, schema.TableWeatherAlerts, n.ReliefCore.CreateAlert(ctx, a))
}

func (n *NotifyingCore) UpdateAlert(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return n.publish(ctx, schema.TableWeatherAlerts, n.ReliefCore.UpdateAlert(ctx, id, fields))
}
