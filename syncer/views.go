package syncer

import (
	"context"
	"fmt"

	"github.com/bitmark-inc/relief-api/notifier"
	"github.com/bitmark-inc/relief-api/schema"
	"github.com/bitmark-inc/relief-api/store"
)

const (
	ViewActive    = "active"
	ViewAll       = "all"
	ViewVerified  = "verified"
	ViewActions   = "actions"
	ViewMap       = "map"
	ViewAvailable = "available"
	ViewMissing   = "missing"
	ViewFound     = "found"
)

// Views lists the views of each collection, the first one is the default
var Views = map[schema.Table][]string{
	schema.TableHelpRequests:   {ViewActive, ViewAll, ViewVerified, ViewActions, ViewMap},
	schema.TableHelpOffers:     {ViewAvailable, ViewAll},
	schema.TableMissingPersons: {ViewAll, ViewMissing, ViewFound},
	schema.TableWeatherAlerts:  {ViewActive, ViewAll},
}

type UnknownViewError struct {
	Table schema.Table
	View  string
}

func (e *UnknownViewError) Error() string {
	return fmt.Sprintf("unknown view %q of %s", e.View, e.Table)
}

// ResolveView returns the view to use, the default one when view is empty
func ResolveView(table schema.Table, view string) (string, error) {
	views, ok := Views[table]
	if !ok {
		return "", &UnknownViewError{Table: table, View: view}
	}
	if view == "" {
		return views[0], nil
	}
	for _, v := range views {
		if v == view {
			return v, nil
		}
	}
	return "", &UnknownViewError{Table: table, View: view}
}

func truth(b bool) *bool {
	return &b
}

// RequestQuery translates a view into the store query
func RequestQuery(scope Scope) (store.RequestQuery, error) {
	view, err := ResolveView(schema.TableHelpRequests, scope.View)
	if err != nil {
		return store.RequestQuery{}, err
	}

	q := store.RequestQuery{AreaID: scope.AreaID}
	switch view {
	case ViewActive:
		q.ExcludeStatus = schema.StatusClosed
	case ViewVerified:
		q.Verified = truth(true)
		q.ExcludeStatus = schema.StatusClosed
	case ViewActions:
		q.ActionTaken = truth(true)
		q.OrderBy = "action_taken_at"
	case ViewMap:
		q.HasLocation = true
		q.ExcludeStatus = schema.StatusClosed
	}
	return q, nil
}

func RequestFetcher(s store.RequestStore) Fetcher[schema.HelpRequest] {
	return func(ctx context.Context, scope Scope) ([]schema.HelpRequest, error) {
		q, err := RequestQuery(scope)
		if err != nil {
			return nil, err
		}
		return s.ListRequests(ctx, q)
	}
}

func OfferFetcher(s store.OfferStore) Fetcher[schema.HelpOffer] {
	return func(ctx context.Context, scope Scope) ([]schema.HelpOffer, error) {
		view, err := ResolveView(schema.TableHelpOffers, scope.View)
		if err != nil {
			return nil, err
		}

		q := store.OfferQuery{AreaID: scope.AreaID}
		if view == ViewAvailable {
			q.Available = truth(true)
		}
		return s.ListOffers(ctx, q)
	}
}

func MissingPersonFetcher(s store.MissingPersonStore) Fetcher[schema.MissingPerson] {
	return func(ctx context.Context, scope Scope) ([]schema.MissingPerson, error) {
		view, err := ResolveView(schema.TableMissingPersons, scope.View)
		if err != nil {
			return nil, err
		}

		q := store.MissingPersonQuery{AreaID: scope.AreaID}
		switch view {
		case ViewMissing:
			q.Found = truth(false)
		case ViewFound:
			q.Found = truth(true)
		}
		return s.ListMissingPersons(ctx, q)
	}
}

func AlertFetcher(s store.AlertStore) Fetcher[schema.WeatherAlert] {
	return func(ctx context.Context, scope Scope) ([]schema.WeatherAlert, error) {
		view, err := ResolveView(schema.TableWeatherAlerts, scope.View)
		if err != nil {
			return nil, err
		}

		q := store.AlertQuery{AreaID: scope.AreaID}
		if view == ViewActive {
			q.Active = truth(true)
		}
		return s.ListAlerts(ctx, q)
	}
}

// Source is the store side of the four watched collections
type Source interface {
	store.RequestStore
	store.OfferStore
	store.MissingPersonStore
	store.AlertStore
}

// NewSection builds the watcher of a collection as a board section
func NewSection(table schema.Table, n notifier.Notifier, s Source, opts ...Option) (Section, error) {
	switch table {
	case schema.TableHelpRequests:
		return NewWatcher(table, n, RequestFetcher(s), opts...), nil
	case schema.TableHelpOffers:
		return NewWatcher(table, n, OfferFetcher(s), opts...), nil
	case schema.TableMissingPersons:
		return NewWatcher(table, n, MissingPersonFetcher(s), opts...), nil
	case schema.TableWeatherAlerts:
		return NewWatcher(table, n, AlertFetcher(s), opts...), nil
	}
	return nil, fmt.Errorf("%s is not a watched collection", table)
}
