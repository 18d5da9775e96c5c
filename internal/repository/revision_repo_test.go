package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newRevisionMock wires a RevisionRepository to a mocked *sql.DB so the tests
// can assert the exact statement sequence each operation issues.
func newRevisionMock(t *testing.T) (RevisionRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return NewRevisionRepository(db), mock, func() { sqlDB.Close() }
}

// Statement shapes. sqlmock matches these as regular expressions against the
// generated SQL; argument placeholders are escaped, the rest stays loose.
const (
	lockItemSQL       = "SELECT \\* FROM `contents` WHERE id = \\?(.+)FOR UPDATE"
	selectRevisionSQL = "SELECT \\* FROM `content_revisions` WHERE content_id = \\? AND rev = \\?"
	pruneForwardSQL   = "DELETE FROM `content_revisions` WHERE content_id = \\? AND rev > \\?"
	insertRevisionSQL = "INSERT INTO `content_revisions`"
	movePointerSQL    = "UPDATE `contents` SET `current_rev`=\\?"
	restoreItemSQL    = "UPDATE `contents` SET `body`=\\?"
)

func contentRow(id uint64, currentRev int64, title string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "kind", "slug", "status", "title", "body", "template",
		"current_rev", "created_at", "edited_at",
	}).AddRow(id, "page", "about", "draft", title, "body of "+title, "default",
		currentRev, now, now)
}

func revisionRow(contentID uint64, rev int64, title string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "content_id", "rev", "title", "slug", "body", "template",
		"status", "edited_by", "created_at",
	}).AddRow(rev, contentID, rev, title, "about", "body of "+title, "default",
		"draft", nil, time.Now())
}

func emptyRevisionRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "content_id", "rev", "title", "slug", "body", "template",
		"status", "edited_by", "created_at",
	})
}

func TestRecord_TruncatesRedoBranchBeforeAppending(t *testing.T) {
	repo, mock, closer := newRevisionMock(t)
	defer closer()

	// Item sits at rev 2 with an undone rev 3 above it. A fresh edit must
	// drop everything above the pointer before the new snapshot lands as
	// rev 3 again.
	actor := uint64(7)
	mock.ExpectBegin()
	mock.ExpectQuery(lockItemSQL).WillReturnRows(contentRow(5, 2, "About v2"))
	mock.ExpectQuery(selectRevisionSQL).WillReturnRows(revisionRow(5, 1, "About"))
	mock.ExpectExec(pruneForwardSQL).
		WithArgs(5, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(insertRevisionSQL).
		WithArgs(5, 3, "About v2", "about", "body of About v2", "default",
			"draft", 7, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectExec(movePointerSQL).
		WithArgs(3, 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rev, err := repo.Record(context.Background(), 5, &actor)

	require.NoError(t, err)
	assert.Equal(t, int64(3), rev)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureInitial_IsIdempotent(t *testing.T) {
	repo, mock, closer := newRevisionMock(t)
	defer closer()

	actor := uint64(7)

	// First call: no rev 1 exists yet, so the item's current fields become
	// rev 1 and the pointer is raised from 0.
	mock.ExpectBegin()
	mock.ExpectQuery(lockItemSQL).WillReturnRows(contentRow(5, 0, "Legacy"))
	mock.ExpectQuery(selectRevisionSQL).WillReturnRows(emptyRevisionRows())
	mock.ExpectExec(insertRevisionSQL).
		WithArgs(5, 1, "Legacy", "about", "body of Legacy", "default",
			"draft", 7, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(movePointerSQL).
		WithArgs(1, 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rev, err := repo.EnsureInitial(context.Background(), 5, &actor)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rev)

	// Second call: rev 1 is found, so neither an insert nor a pointer move
	// is issued. The ordered mock fails the test on any extra statement.
	mock.ExpectBegin()
	mock.ExpectQuery(lockItemSQL).WillReturnRows(contentRow(5, 1, "Legacy"))
	mock.ExpectQuery(selectRevisionSQL).WillReturnRows(revisionRow(5, 1, "Legacy"))
	mock.ExpectCommit()

	rev, err = repo.EnsureInitial(context.Background(), 5, &actor)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rev)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUndoEditRedo_EditDiscardsTheForwardBranch(t *testing.T) {
	repo, mock, closer := newRevisionMock(t)
	defer closer()

	ctx := context.Background()
	actor := uint64(7)

	// Undo from rev 2 ("B") back to rev 1 ("A").
	mock.ExpectBegin()
	mock.ExpectQuery(lockItemSQL).WillReturnRows(contentRow(5, 2, "B"))
	mock.ExpectQuery(selectRevisionSQL).WillReturnRows(revisionRow(5, 1, "A"))
	mock.ExpectQuery(selectRevisionSQL).WillReturnRows(revisionRow(5, 1, "A"))
	mock.ExpectExec(restoreItemSQL).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	item, err := repo.Undo(ctx, 5, &actor)
	require.NoError(t, err)
	assert.Equal(t, int64(1), item.CurrentRev)
	assert.Equal(t, "A", item.Title)

	// Editing at rev 1 prunes the old rev 2 and appends "C" in its place.
	mock.ExpectBegin()
	mock.ExpectQuery(lockItemSQL).WillReturnRows(contentRow(5, 1, "C"))
	mock.ExpectQuery(selectRevisionSQL).WillReturnRows(revisionRow(5, 1, "A"))
	mock.ExpectExec(pruneForwardSQL).
		WithArgs(5, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(insertRevisionSQL).
		WithArgs(5, 2, "C", "about", "body of C", "default",
			"draft", 7, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectExec(movePointerSQL).
		WithArgs(2, 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rev, err := repo.Record(ctx, 5, &actor)
	require.NoError(t, err)
	assert.Equal(t, int64(2), rev)

	// Redo at the new tip finds no rev 3: the old "B" branch is gone and
	// the item stays exactly where it is.
	mock.ExpectBegin()
	mock.ExpectQuery(lockItemSQL).WillReturnRows(contentRow(5, 2, "C"))
	mock.ExpectQuery(selectRevisionSQL).WillReturnRows(revisionRow(5, 1, "A"))
	mock.ExpectQuery(selectRevisionSQL).WillReturnRows(emptyRevisionRows())
	mock.ExpectCommit()

	item, err = repo.Redo(ctx, 5, &actor)
	require.NoError(t, err)
	assert.Equal(t, int64(2), item.CurrentRev)
	assert.Equal(t, "C", item.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUndo_LazyBootstrapKeepsActorAttribution(t *testing.T) {
	repo, mock, closer := newRevisionMock(t)
	defer closer()

	// Undo on a never-bootstrapped item creates rev 1 on the fly. The
	// snapshot must carry the calling actor, not an anonymous marker.
	actor := uint64(7)
	mock.ExpectBegin()
	mock.ExpectQuery(lockItemSQL).WillReturnRows(contentRow(5, 0, "Legacy"))
	mock.ExpectQuery(selectRevisionSQL).WillReturnRows(emptyRevisionRows())
	mock.ExpectExec(insertRevisionSQL).
		WithArgs(5, 1, "Legacy", "about", "body of Legacy", "default",
			"draft", 7, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(movePointerSQL).
		WithArgs(1, 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(selectRevisionSQL).WillReturnRows(revisionRow(5, 1, "Legacy"))
	mock.ExpectExec(restoreItemSQL).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	item, err := repo.Undo(context.Background(), 5, &actor)

	require.NoError(t, err)
	assert.Equal(t, int64(1), item.CurrentRev)
	assert.NoError(t, mock.ExpectationsWereMet())
}
