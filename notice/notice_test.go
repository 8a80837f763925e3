package notice

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/relief-api/lifecycle"
	"github.com/bitmark-inc/relief-api/schema"
	"github.com/bitmark-inc/relief-api/store"
)

func TestErrorNotices(t *testing.T) {
	l := NewLocalizer("en")

	testCases := []struct {
		name     string
		err      error
		title    string
		message  string
		blocking bool
	}{
		{
			name:     "validation",
			err:      &lifecycle.ValidationError{Field: "contact_info", Reason: "too few digits"},
			title:    "Check the form",
			message:  "The contact_info field is invalid: too few digits.",
			blocking: true,
		},
		{
			name:     "anonymous",
			err:      &lifecycle.AuthError{Unauthenticated: true},
			title:    "Sign in required",
			message:  "Please sign in to continue.",
			blocking: true,
		},
		{
			name:    "forbidden",
			err:     &lifecycle.AuthError{Reason: "moderators only"},
			title:   "Access Denied",
			message: "You do not have permission to do this.",
		},
		{
			name:    "transition",
			err:     &lifecycle.InvalidTransitionError{From: schema.StatusClosed, To: schema.StatusOpen},
			title:   "Status not changed",
			message: "A request cannot move from closed to open.",
		},
		{
			name:    "frozen",
			err:     &lifecycle.InvalidTransitionError{From: schema.StatusClosed},
			title:   "Request locked",
			message: "This request is closed and can no longer be changed.",
		},
		{
			name:    "not found",
			err:     fmt.Errorf("load: %w", store.ErrRecordNotFound),
			title:   "Not found",
			message: "The record no longer exists. It may have been deleted.",
		},
		{
			name:     "store",
			err:      &lifecycle.StoreError{Op: "update request", Err: errors.New("connection reset")},
			title:    "Error",
			message:  "Could not save your changes. Please try again.",
			blocking: true,
		},
		{
			name:    "unknown",
			err:     errors.New("boom"),
			title:   "Error",
			message: "Something went wrong. Please try again.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			n := l.Error(tc.err)
			assert.Equal(t, KindError, n.Kind)
			assert.Equal(t, tc.title, n.Title)
			assert.Equal(t, tc.message, n.Message)
			assert.Equal(t, tc.blocking, n.Blocking)
		})
	}
}

func TestSuccessNotice(t *testing.T) {
	l := NewLocalizer("si", "en")

	n := l.Success(StatusUpdated, map[string]interface{}{"Status": schema.StatusFulfilled})
	assert.Equal(t, Notice{
		Kind:    KindSuccess,
		Title:   "Status updated",
		Message: "The request is now fulfilled.",
	}, n)

	assert.Equal(t, "Request submitted", l.Success(RequestCreated, nil).Title)
	assert.Equal(t, KindWarning, l.SyncFailed().Kind)
}

func TestMissingTranslationFallsBackToID(t *testing.T) {
	n := NewLocalizer("en").Success("teleported", nil)
	assert.Equal(t, "notice.success.teleported.title", n.Title)
}

func TestLoadDir(t *testing.T) {
	dir, err := ioutil.TempDir("", "notice")
	if !assert.NoError(t, err) {
		return
	}
	defer os.RemoveAll(dir)

	content := "notice:\n  success:\n    deleted:\n      title: \"මකා දමන ලදී\"\n      message: \"වාර්තාව ඉවත් කරන ලදී.\"\n"
	assert.NoError(t, ioutil.WriteFile(filepath.Join(dir, "si.yaml"), []byte(content), 0644))

	assert.NoError(t, LoadDir(dir))
	assert.Equal(t, "මකා දමන ලදී", NewLocalizer("si").Success(Deleted, nil).Title)
	assert.Equal(t, "Deleted successfully", NewLocalizer("en").Success(Deleted, nil).Title)

	assert.NoError(t, LoadDir(""))
	assert.Error(t, LoadDir(filepath.Join(dir, "absent")))
}
