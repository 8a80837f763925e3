package syncer

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/bitmark-inc/relief-api/schema"
)

// Section is a watcher with its item type erased
type Section interface {
	Table() schema.Table
	Watch(ctx context.Context, scope Scope) error
	SetScope(ctx context.Context, scope Scope) error
	Refresh(ctx context.Context)
	Changed() (<-chan struct{}, func())
	Frame() Frame
	Stop()
}

// Board groups independent sections that share an area selection. Every
// section keeps its own topic and fetch.
type Board struct {
	entries []boardEntry
}

type boardEntry struct {
	section Section
	view    string
}

func NewBoard() *Board {
	return &Board{}
}

// Add places a section on the board with a fixed view
func (b *Board) Add(s Section, view string) *Board {
	b.entries = append(b.entries, boardEntry{section: s, view: view})
	return b
}

func (b *Board) Sections() []Section {
	sections := make([]Section, len(b.entries))
	for i, e := range b.entries {
		sections[i] = e.section
	}
	return sections
}

// Mount watches all sections for the area in parallel. When any section
// fails to subscribe the board is stopped.
func (b *Board) Mount(ctx context.Context, area uuid.UUID) error {
	if err := b.each(func(e boardEntry) error {
		return e.section.Watch(ctx, Scope{AreaID: area, View: e.view})
	}); err != nil {
		b.Stop()
		return err
	}
	return nil
}

// SetArea moves every section to another area
func (b *Board) SetArea(ctx context.Context, area uuid.UUID) error {
	return b.each(func(e boardEntry) error {
		return e.section.SetScope(ctx, Scope{AreaID: area, View: e.view})
	})
}

// each runs fn for every section concurrently. The group context is not
// handed to the sections, it ends when the group returns.
func (b *Board) each(fn func(boardEntry) error) error {
	var g errgroup.Group
	for _, e := range b.entries {
		e := e
		g.Go(func() error {
			return fn(e)
		})
	}
	return g.Wait()
}

func (b *Board) Frames() []Frame {
	frames := make([]Frame, len(b.entries))
	for i, e := range b.entries {
		frames[i] = e.section.Frame()
	}
	return frames
}

func (b *Board) Stop() {
	for _, e := range b.entries {
		e.section.Stop()
	}
}
