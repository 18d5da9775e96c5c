package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/draftmark/draftmark-backend/internal/common"
)

func TestNextRev(t *testing.T) {
	next, err := NextRev(0)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), next)

	next, err = NextRev(41)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), next)
}

func TestNextRev_Overflow(t *testing.T) {
	// the counter has a hard ceiling, it must never wrap
	_, err := NextRev(math.MaxInt64)
	assert.ErrorIs(t, err, common.ErrRevisionOverflow)
}

func TestUndoTarget_Floor(t *testing.T) {
	assert.Equal(t, int64(4), UndoTarget(5))
	assert.Equal(t, int64(1), UndoTarget(2))
	// undo at rev 1 stays at rev 1
	assert.Equal(t, int64(1), UndoTarget(1))
	assert.Equal(t, int64(1), UndoTarget(0))
}

func TestClampHistoryLimit(t *testing.T) {
	assert.Equal(t, 1, ClampHistoryLimit(0))
	assert.Equal(t, 1, ClampHistoryLimit(-10))
	assert.Equal(t, 25, ClampHistoryLimit(25))
	assert.Equal(t, 200, ClampHistoryLimit(200))
	assert.Equal(t, 200, ClampHistoryLimit(5000))
}

func TestSnapshot_CopiesEditableFields(t *testing.T) {
	actor := uint64(3)
	item := &ContentItem{
		ID:       11,
		Title:    "A",
		Slug:     "a",
		Body:     "body",
		Template: "default",
		Status:   StatusDraft,
	}

	snap := Snapshot(item, 1, &actor)

	assert.Equal(t, uint64(11), snap.ContentID)
	assert.Equal(t, int64(1), snap.Rev)
	assert.Equal(t, "A", snap.Title)
	assert.Equal(t, "a", snap.Slug)
	assert.Equal(t, "body", snap.Body)
	assert.Equal(t, "default", snap.Template)
	assert.Equal(t, StatusDraft, snap.Status)
	assert.Equal(t, &actor, snap.EditedBy)
}

func TestRestoreInto_KeepsPublishMarker(t *testing.T) {
	published := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	now := published.Add(time.Hour)

	item := &ContentItem{
		ID:          11,
		Title:       "B",
		Status:      StatusPublished,
		CurrentRev:  2,
		PublishedAt: &published,
	}
	snap := &Revision{ContentID: 11, Rev: 1, Title: "A", Slug: "a", Status: StatusDraft}

	snap.RestoreInto(item, now)

	assert.Equal(t, "A", item.Title)
	assert.Equal(t, StatusDraft, item.Status)
	assert.Equal(t, int64(1), item.CurrentRev)
	assert.Equal(t, now, item.EditedAt)
	// restoring a draft snapshot does not un-publish the history marker
	assert.NotNil(t, item.PublishedAt)
	assert.Equal(t, published, *item.PublishedAt)
}
