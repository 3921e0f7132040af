package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-content/internal/models"
	"github.com/sbilibin2017/gw-social-content/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var commentRowColumns = []string{"comment_id", "post_id", "author_id", "text", "created_at", "edited_at", "is_deleted", "version"}

func TestCommentRepository_InsertAndGet(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepository(db, nil)
	ctx := context.Background()
	postID, authorID, id := uuid.New(), uuid.New(), uuid.New()
	text := "hi"

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO comments")).
		WithArgs(id, postID, authorID, "hi").
		WillReturnRows(sqlmock.NewRows(commentRowColumns).AddRow(id.String(), postID.String(), authorID.String(), "hi", testNow, nil, false, 1))
	mock.ExpectQuery(regexp.QuoteMeta("FROM comments WHERE comment_id = $1 AND is_deleted = false")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(commentRowColumns).AddRow(id.String(), postID.String(), authorID.String(), "hi", testNow, nil, false, 1))
	mock.ExpectQuery(regexp.QuoteMeta("FROM comments WHERE comment_id = $1")).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	saved, err := repo.Insert(ctx, &models.CommentDB{CommentID: id, PostID: postID, AuthorID: authorID, Text: &text})
	require.NoError(t, err)
	require.NotNil(t, saved.Text)
	assert.Equal(t, "hi", *saved.Text)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, authorID, got.AuthorID)

	_, err = repo.GetByID(ctx, id)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_UpdateAndSoftDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepository(db, nil)
	ctx := context.Background()
	id, postID, authorID := uuid.New(), uuid.New(), uuid.New()
	text := "edited"
	comment := &models.CommentDB{CommentID: id, Text: &text}

	mock.ExpectQuery(regexp.QuoteMeta("SET text = $2, edited_at = NOW(), version = version + 1 WHERE comment_id = $1 AND version = $3")).
		WithArgs(id, "edited", int64(1)).
		WillReturnRows(sqlmock.NewRows(commentRowColumns).AddRow(id.String(), postID.String(), authorID.String(), "edited", testNow, testNow, false, 2))
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE comments")).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec(regexp.QuoteMeta("SET is_deleted = true, version = version + 1 WHERE comment_id = $1 AND version = $2")).
		WithArgs(id, int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE comments")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	saved, err := repo.Update(ctx, comment, 1)
	require.NoError(t, err)
	assert.NotNil(t, saved.EditedAt)

	_, err = repo.Update(ctx, comment, 1)
	assert.ErrorIs(t, err, storage.ErrStaleWrite)

	assert.NoError(t, repo.SoftDelete(ctx, id, 2))
	assert.ErrorIs(t, repo.SoftDelete(ctx, id, 2), storage.ErrStaleWrite)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_ListAndCount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepository(db, nil)
	ctx := context.Background()
	postID, authorID := uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE post_id = $1 AND is_deleted = false ORDER BY created_at ASC, comment_id ASC LIMIT $2 OFFSET $3")).
		WithArgs(postID, 10, 0).
		WillReturnRows(sqlmock.NewRows(commentRowColumns).
			AddRow(uuid.NewString(), postID.String(), authorID.String(), "first", testNow, nil, false, 1).
			AddRow(uuid.NewString(), postID.String(), authorID.String(), nil, testNow, nil, false, 1))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE author_id = $1 AND is_deleted = false ORDER BY created_at DESC")).
		WithArgs(authorID, 10, 0).
		WillReturnRows(sqlmock.NewRows(commentRowColumns))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM comments WHERE post_id = $1 AND is_deleted = false")).
		WithArgs(postID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	comments, err := repo.ListByPost(ctx, postID, models.Page{Limit: 10})
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", *comments[0].Text)
	assert.Nil(t, comments[1].Text)

	comments, err = repo.ListByAuthor(ctx, authorID, models.Page{Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, comments)

	count, err := repo.CountByPost(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	assert.NoError(t, mock.ExpectationsWereMet())
}
