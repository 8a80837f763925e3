// Package classify derives filtered, sorted views and display facets from a
// collection snapshot. Every function is pure: inputs are never modified and
// equal inputs give equal output.
package classify

import (
	"sort"
	"strings"

	"github.com/bitmark-inc/relief-api/schema"
)

// All matches every value of a categorical filter
const All = "all"

const (
	SortCreated     = "created_at"
	SortActionTaken = "action_taken_at"
)

const (
	Available   = "available"
	Unavailable = "unavailable"
	Verified    = "verified"
	Unverified  = "unverified"
)

func contains(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}

func term(search string) string {
	return strings.ToLower(strings.TrimSpace(search))
}

func unfiltered(value string) bool {
	return value == "" || value == All
}

// RequestFilter is the filter state of a request list
type RequestFilter struct {
	Search string
	Status string
	SortBy string
}

func (f RequestFilter) match(r schema.HelpRequest, needle string) bool {
	if needle != "" && !contains(r.Title, needle) && !contains(r.Description, needle) {
		return false
	}
	return unfiltered(f.Status) || string(r.Status) == f.Status
}

// FilterRequests returns the requests passing search and status filter,
// newest first or by action time when SortBy asks for it
func FilterRequests(requests []schema.HelpRequest, f RequestFilter) []schema.HelpRequest {
	needle := term(f.Search)

	result := make([]schema.HelpRequest, 0, len(requests))
	for _, r := range requests {
		if f.match(r, needle) {
			result = append(result, r)
		}
	}

	key := func(r schema.HelpRequest) int64 { return r.CreatedAt.UnixNano() }
	if f.SortBy == SortActionTaken {
		key = func(r schema.HelpRequest) int64 { return r.ActionSortTime().UnixNano() }
	}

	sort.SliceStable(result, func(i, j int) bool {
		ki, kj := key(result[i]), key(result[j])
		if ki != kj {
			return ki > kj
		}
		return result[i].ID.String() < result[j].ID.String()
	})
	return result
}

// OfferFilter is the filter state of an offer list
type OfferFilter struct {
	Search       string
	Type         string
	Availability string
}

func (f OfferFilter) match(o schema.HelpOffer, needle string) bool {
	if needle != "" && !contains(o.HelpType, needle) && !contains(o.Description, needle) {
		return false
	}
	if !unfiltered(f.Type) && o.HelpType != f.Type {
		return false
	}
	switch f.Availability {
	case Available:
		return o.IsAvailable
	case Unavailable:
		return !o.IsAvailable
	}
	return true
}

func FilterOffers(offers []schema.HelpOffer, f OfferFilter) []schema.HelpOffer {
	needle := term(f.Search)

	result := make([]schema.HelpOffer, 0, len(offers))
	for _, o := range offers {
		if f.match(o, needle) {
			result = append(result, o)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID.String() < result[j].ID.String()
	})
	return result
}

// OfferTypes lists the distinct help types, sorted, for the type filter
func OfferTypes(offers []schema.HelpOffer) []string {
	seen := map[string]bool{}
	types := make([]string, 0)
	for _, o := range offers {
		if o.HelpType != "" && !seen[o.HelpType] {
			seen[o.HelpType] = true
			types = append(types, o.HelpType)
		}
	}
	sort.Strings(types)
	return types
}

// MissingPersonFilter is the filter state of the missing person list. Status
// is all, missing or found.
type MissingPersonFilter struct {
	Search string
	Status string
}

func (f MissingPersonFilter) match(p schema.MissingPerson, needle string) bool {
	if needle != "" && !contains(p.FullName, needle) && !contains(p.Description, needle) && !contains(p.LastSeenLocation, needle) {
		return false
	}
	switch f.Status {
	case schema.MissingStatusFound:
		return p.IsFound
	case schema.MissingStatusMissing:
		return !p.IsFound
	}
	return true
}

func FilterMissingPersons(persons []schema.MissingPerson, f MissingPersonFilter) []schema.MissingPerson {
	needle := term(f.Search)

	result := make([]schema.MissingPerson, 0, len(persons))
	for _, p := range persons {
		if f.match(p, needle) {
			result = append(result, p)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID.String() < result[j].ID.String()
	})
	return result
}

// MapFilter narrows the requests shown on the map
type MapFilter struct {
	EmergencyType string
	Verified      string
}

// FilterForMap keeps requests with GPS that are not closed and pass the map
// filter, newest first
func FilterForMap(requests []schema.HelpRequest, f MapFilter) []schema.HelpRequest {
	result := make([]schema.HelpRequest, 0, len(requests))
	for _, r := range requests {
		if r.Location == nil || r.Status == schema.StatusClosed {
			continue
		}
		if !unfiltered(f.EmergencyType) && string(r.EmergencyType) != f.EmergencyType {
			continue
		}
		switch f.Verified {
		case Verified:
			if !r.IsVerified {
				continue
			}
		case Unverified:
			if r.IsVerified {
				continue
			}
		}
		result = append(result, r)
	}

	return FilterRequests(result, RequestFilter{})
}
