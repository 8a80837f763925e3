// Package notice turns engine results into short localized messages for the
// person who triggered them.
package notice

import (
	"embed"
	"errors"
	"os"
	"path/filepath"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"

	"github.com/bitmark-inc/relief-api/lifecycle"
)

const logPrefix = "notice"

type Kind string

const (
	KindSuccess Kind = "success"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

// Success operations with a message in the bundle
const (
	RequestCreated  = "request_created"
	RequestUpdated  = "request_updated"
	StatusUpdated   = "status_updated"
	RequestVerified = "request_verified"
	ActionTaken     = "action_taken"
	Deleted         = "deleted"
	OfferCreated    = "offer_created"
	MissingReported = "missing_reported"
	PersonFound     = "person_found"
	AlertPublished  = "alert_published"
)

// Notice is what the user sees after an operation. A blocking notice keeps
// the form open for correction.
type Notice struct {
	Kind     Kind   `json:"kind"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	Blocking bool   `json:"blocking"`
}

//go:embed locales/*.yaml
var locales embed.FS

var bundle *i18n.Bundle

func init() {
	bundle = newBundle()
}

func newBundle() *i18n.Bundle {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, err := locales.ReadDir("locales")
	if err != nil {
		panic(err)
	}
	for _, f := range files {
		data, err := locales.ReadFile("locales/" + f.Name())
		if err != nil {
			panic(err)
		}
		b.MustParseMessageFileBytes(data, f.Name())
	}
	return b
}

// LoadDir adds the yaml translations found in dir to the bundle. Messages
// already loaded for the same language are overwritten.
func LoadDir(dir string) error {
	if dir == "" {
		return nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return err
	}
	for _, f := range files {
		if _, err := bundle.LoadMessageFile(f); err != nil {
			return err
		}
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"file":   f,
		}).Info("translations loaded")
	}

	if len(files) == 0 {
		if _, err := os.Stat(dir); err != nil {
			return err
		}
	}
	return nil
}

// Languages lists the tags the bundle can answer in
func Languages() []language.Tag {
	return bundle.LanguageTags()
}

type Localizer struct {
	*i18n.Localizer
}

// NewLocalizer picks the best language out of the given preferences, for
// example the raw Accept-Language header
func NewLocalizer(langs ...string) Localizer {
	return Localizer{i18n.NewLocalizer(bundle, langs...)}
}

func (l Localizer) text(id string, data map[string]interface{}) string {
	s, err := l.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":     logPrefix,
			"message_id": id,
			"error":      err,
		}).Warn("missing translation")
		return id
	}
	return s
}

func (l Localizer) notice(kind Kind, id string, blocking bool, data map[string]interface{}) Notice {
	return Notice{
		Kind:     kind,
		Title:    l.text(id+".title", data),
		Message:  l.text(id+".message", data),
		Blocking: blocking,
	}
}

// Success is the confirmation of a completed operation
func (l Localizer) Success(op string, data map[string]interface{}) Notice {
	return l.notice(KindSuccess, "notice.success."+op, false, data)
}

// SyncFailed tells a viewer the list on screen is the last good one
func (l Localizer) SyncFailed() Notice {
	return l.notice(KindWarning, "notice.sync_failed", false, nil)
}

// Error maps an engine error to what the user is told. Validation problems
// block so the user can correct the input.
func (l Localizer) Error(err error) Notice {
	var (
		validation *lifecycle.ValidationError
		auth       *lifecycle.AuthError
		transition *lifecycle.InvalidTransitionError
		storeErr   *lifecycle.StoreError
	)

	switch {
	case errors.As(err, &validation):
		return l.notice(KindError, "notice.validation", true, map[string]interface{}{
			"Field":  validation.Field,
			"Reason": validation.Reason,
		})
	case errors.As(err, &auth):
		if auth.Unauthenticated {
			return l.notice(KindError, "notice.auth.required", true, nil)
		}
		return l.notice(KindError, "notice.auth.forbidden", false, nil)
	case errors.As(err, &transition):
		data := map[string]interface{}{"From": transition.From, "To": transition.To}
		if transition.To == "" {
			return l.notice(KindError, "notice.frozen", false, data)
		}
		return l.notice(KindError, "notice.transition", false, data)
	case lifecycle.IsNotFound(err):
		return l.notice(KindError, "notice.not_found", false, nil)
	case errors.As(err, &storeErr):
		return l.notice(KindError, "notice.store", true, nil)
	}
	return l.notice(KindError, "notice.internal", false, nil)
}
