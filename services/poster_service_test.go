package services

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tactify-cms/models"
	"tactify-cms/repositories"
	"tactify-cms/storage"
)

func newPosterService(t *testing.T) (PosterService, *storage.FileStore) {
	t.Helper()
	db := newTestDB(t)
	store := storage.NewFileStore(t.TempDir(), []string{"png", "jpg", "jpeg", "gif", "pdf"})
	return NewPosterService(repositories.NewPostRepository(db), store, "tactify_"), store
}

func posterRequest() models.PosterCreateRequest {
	return models.PosterCreateRequest{
		Header:      "Header",
		Description: "Caption",
		Body:        "Body",
		Tags:        "tag1",
	}
}

func TestCreatePoster(t *testing.T) {
	posters, store := newPosterService(t)

	post, err := posters.Create(posterRequest(), "poster.png", strings.NewReader("poster-bytes"))
	require.NoError(t, err)
	require.NotZero(t, post.ID)

	assert.True(t, post.HasFile())
	assert.True(t, store.Exists(post.Doc))
	assert.Contains(t, post.URL, "/download_file/")
	assert.Contains(t, post.Doc, "tactify_")

	// Read-after-write returns the same fields.
	stored, err := posters.GetByID(int(post.ID))
	require.NoError(t, err)
	assert.Equal(t, "Header", stored.Header)
	assert.Equal(t, "Body", stored.Body)
	assert.Equal(t, "Caption", stored.Description)
	assert.Equal(t, "tag1", stored.Tags)
	assert.Equal(t, models.KindPoster, stored.Kind)
	assert.Equal(t, post.Doc, stored.Doc)
	assert.Equal(t, post.URL, stored.URL)

	data, err := os.ReadFile(post.Doc)
	require.NoError(t, err)
	assert.Equal(t, "poster-bytes", string(data))
}

func TestCreateRejectsBadFileType(t *testing.T) {
	posters, _ := newPosterService(t)

	_, err := posters.Create(posterRequest(), "script.sh", strings.NewReader("#!/bin/sh"))
	assert.ErrorIs(t, err, models.ErrFileType)

	_, err = posters.Create(posterRequest(), "", nil)
	assert.ErrorIs(t, err, models.ErrFileType)
}

func TestCreateRejectsOverlongHeader(t *testing.T) {
	posters, _ := newPosterService(t)

	req := posterRequest()
	req.Header = "A header that is well past the thirty-two character storage cap"
	_, err := posters.Create(req, "poster.png", strings.NewReader("bytes"))
	assert.ErrorIs(t, err, models.ErrHeaderLength)
}

func TestUpdateReplacesFile(t *testing.T) {
	posters, store := newPosterService(t)

	post, err := posters.Create(posterRequest(), "poster.png", strings.NewReader("poster-bytes"))
	require.NoError(t, err)
	oldPath := post.Doc

	edit := models.PosterEditRequest{Header: "Updated", Description: "Caption", Body: "Body", Tags: "tag1"}
	updated, err := posters.Update(int(post.ID), edit, "new.png", strings.NewReader("new-bytes"))
	require.NoError(t, err)

	assert.False(t, store.Exists(oldPath))
	assert.True(t, store.Exists(updated.Doc))
	assert.Equal(t, "Updated", updated.Header)

	data, err := os.ReadFile(updated.Doc)
	require.NoError(t, err)
	assert.Equal(t, "new-bytes", string(data))
}

func TestUpdateWithoutFileKeepsArtifact(t *testing.T) {
	posters, store := newPosterService(t)

	post, err := posters.Create(posterRequest(), "poster.png", strings.NewReader("poster-bytes"))
	require.NoError(t, err)

	edit := models.PosterEditRequest{Header: "Updated", Description: "Caption", Body: "Body", Tags: "tag1"}
	updated, err := posters.Update(int(post.ID), edit, "", nil)
	require.NoError(t, err)

	assert.Equal(t, post.Doc, updated.Doc)
	assert.Equal(t, post.URL, updated.URL)
	assert.True(t, store.Exists(updated.Doc))
	assert.Equal(t, "Updated", updated.Header)
}

func TestUpdateFailsWhenOldFileMissing(t *testing.T) {
	posters, store := newPosterService(t)

	post, err := posters.Create(posterRequest(), "poster.png", strings.NewReader("poster-bytes"))
	require.NoError(t, err)
	require.NoError(t, store.Remove(post.Doc))

	edit := models.PosterEditRequest{Header: "Updated", Description: "Caption", Body: "Body", Tags: "tag1"}
	_, err = posters.Update(int(post.ID), edit, "new.png", strings.NewReader("new-bytes"))
	assert.ErrorIs(t, err, models.ErrStorage)

	// All-or-nothing: no field change was persisted.
	stored, err := posters.GetByID(int(post.ID))
	require.NoError(t, err)
	assert.Equal(t, "Header", stored.Header)
	assert.Equal(t, post.Doc, stored.Doc)
}

func TestDeleteRemovesRowAndFile(t *testing.T) {
	posters, store := newPosterService(t)

	post, err := posters.Create(posterRequest(), "poster.png", strings.NewReader("poster-bytes"))
	require.NoError(t, err)

	require.NoError(t, posters.Delete(int(post.ID)))
	assert.False(t, store.Exists(post.Doc))

	_, err = posters.GetByID(int(post.ID))
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDeleteToleratesMissingFile(t *testing.T) {
	posters, store := newPosterService(t)

	post, err := posters.Create(posterRequest(), "poster.png", strings.NewReader("poster-bytes"))
	require.NoError(t, err)
	require.NoError(t, store.Remove(post.Doc))

	require.NoError(t, posters.Delete(int(post.ID)))

	_, err = posters.GetByID(int(post.ID))
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDeleteNotFound(t *testing.T) {
	posters, _ := newPosterService(t)

	assert.ErrorIs(t, posters.Delete(-1), models.ErrNotFound)
	assert.ErrorIs(t, posters.Delete(999999), models.ErrNotFound)
}

func TestRandomSampleSmallCatalog(t *testing.T) {
	posters, _ := newPosterService(t)

	_, err := posters.Create(posterRequest(), "poster.png", strings.NewReader("bytes"))
	require.NoError(t, err)

	sample, err := posters.RandomSample(5)
	require.NoError(t, err)
	assert.Len(t, sample, 1)
}
