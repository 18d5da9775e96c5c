package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestContentPatch_Apply_PartialMerge(t *testing.T) {
	now := time.Now()
	item := &ContentItem{
		Title:    "Original title",
		Slug:     "original-slug",
		Body:     "Original body",
		Template: "default",
	}

	patch := &ContentPatch{Title: strPtr("New title")}
	patch.Apply(item, now)

	assert.Equal(t, "New title", item.Title)
	// absent fields keep their previous value
	assert.Equal(t, "original-slug", item.Slug)
	assert.Equal(t, "Original body", item.Body)
	assert.Equal(t, "default", item.Template)
	assert.Equal(t, now, item.EditedAt)
}

func TestContentPatch_Apply_EmptyStringIsAChange(t *testing.T) {
	item := &ContentItem{Body: "Some body"}

	// an explicit empty string clears the field; only nil means "keep"
	patch := &ContentPatch{Body: strPtr("")}
	patch.Apply(item, time.Now())

	assert.Equal(t, "", item.Body)
}

func TestContentPatch_Empty(t *testing.T) {
	assert.True(t, (&ContentPatch{}).Empty())
	assert.False(t, (&ContentPatch{Title: strPtr("x")}).Empty())
}

func TestMarkPublished_SetsTimestampOnce(t *testing.T) {
	item := &ContentItem{Status: StatusDraft}

	first := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	item.MarkPublished(first)

	assert.Equal(t, StatusPublished, item.Status)
	assert.NotNil(t, item.PublishedAt)
	assert.Equal(t, first, *item.PublishedAt)

	// publish → edit → publish again keeps the first-set value
	later := first.Add(48 * time.Hour)
	item.MarkPublished(later)

	assert.Equal(t, first, *item.PublishedAt)
	assert.Equal(t, later, item.EditedAt)
}

func TestIsOwner(t *testing.T) {
	owner := uint64(7)
	owned := &ContentItem{OwnerID: &owner}
	legacy := &ContentItem{}

	assert.True(t, owned.IsOwner(7))
	assert.False(t, owned.IsOwner(8))
	assert.False(t, owned.IsOwner(0)) // anonymous never matches
	assert.False(t, legacy.IsOwner(7))
	assert.True(t, owned.Owned())
	assert.False(t, legacy.Owned())
}
