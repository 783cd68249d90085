package service

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"anicms/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockEpisodeStore struct {
	mock.Mock
}

func (m *mockEpisodeStore) GetAll(ctx context.Context, page, pageSize int) ([]models.Episode, int64, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]models.Episode), args.Get(1).(int64), args.Error(2)
}

func (m *mockEpisodeStore) GetByID(ctx context.Context, id int64) (*models.Episode, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Episode), args.Error(1)
}

func (m *mockEpisodeStore) Search(ctx context.Context, query string) ([]models.Episode, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]models.Episode), args.Error(1)
}

func (m *mockEpisodeStore) ListBySeries(ctx context.Context, seriesID int64) ([]models.Episode, error) {
	args := m.Called(ctx, seriesID)
	return args.Get(0).([]models.Episode), args.Error(1)
}

func (m *mockEpisodeStore) Create(ctx context.Context, ep *models.Episode) error {
	args := m.Called(ctx, ep)
	return args.Error(0)
}

func (m *mockEpisodeStore) Update(ctx context.Context, id int64, ep *models.Episode) error {
	args := m.Called(ctx, id, ep)
	return args.Error(0)
}

func (m *mockEpisodeStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockEpisodeStore) DeleteVideos(ctx context.Context, episodeID int64) error {
	args := m.Called(ctx, episodeID)
	return args.Error(0)
}

func (m *mockEpisodeStore) CreateVideos(ctx context.Context, videos []models.EpisodeVideo) error {
	args := m.Called(ctx, videos)
	return args.Error(0)
}

type mockSeriesResolver struct {
	mock.Mock
}

func (m *mockSeriesResolver) GetByID(ctx context.Context, id int64) (*models.Anime, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Anime), args.Error(1)
}

type mockBlobStore struct {
	mock.Mock
}

func (m *mockBlobStore) SaveUpload(folder string, file *multipart.FileHeader) (string, error) {
	args := m.Called(folder, file)
	return args.String(0), args.Error(1)
}

func (m *mockBlobStore) Delete(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

func strPtr(s string) *string { return &s }

func newEpisodeFixture() (*mockEpisodeStore, *mockSeriesResolver, *mockBlobStore, EpisodeService) {
	store := new(mockEpisodeStore)
	series := new(mockSeriesResolver)
	blobs := new(mockBlobStore)
	svc := NewEpisodeService(store, series, blobs, nil)
	return store, series, blobs, svc
}

func TestEpisodeCreateInheritsParentArt(t *testing.T) {
	store, series, _, svc := newEpisodeFixture()

	anime := &models.Anime{
		ID:    1,
		Title: "Attack on Titan",
		Image: strPtr("animes/aot.jpg"),
		Cover: strPtr("animes/aot-cover.jpg"),
	}
	series.On("GetByID", mock.Anything, int64(1)).Return(anime, nil)
	store.On("Create", mock.Anything, mock.AnythingOfType("*models.Episode")).Return(nil)
	store.On("CreateVideos", mock.Anything, mock.Anything).Return(nil)

	ep, err := svc.Create(context.Background(), EpisodeInput{
		SeriesID:      1,
		Title:         "Episode 1",
		EpisodeNumber: 1,
	})

	require.NoError(t, err)
	require.NotNil(t, ep.Thumbnail)
	require.NotNil(t, ep.Banner)
	assert.Equal(t, "animes/aot.jpg", *ep.Thumbnail)
	assert.Equal(t, "animes/aot-cover.jpg", *ep.Banner)
	store.AssertExpectations(t)
}

func TestEpisodeCreateUploadBeatsInheritance(t *testing.T) {
	store, series, blobs, svc := newEpisodeFixture()

	anime := &models.Anime{ID: 1, Title: "Naruto", Image: strPtr("animes/naruto.jpg")}
	upload := &multipart.FileHeader{Filename: "custom.jpg"}

	series.On("GetByID", mock.Anything, int64(1)).Return(anime, nil)
	blobs.On("SaveUpload", "episodes", upload).Return("episodes/abc.jpg", nil)
	store.On("Create", mock.Anything, mock.Anything).Return(nil)
	store.On("CreateVideos", mock.Anything, mock.Anything).Return(nil)

	ep, err := svc.Create(context.Background(), EpisodeInput{
		SeriesID:      1,
		Title:         "Episode 1",
		EpisodeNumber: 1,
		Thumbnail:     upload,
	})

	require.NoError(t, err)
	require.NotNil(t, ep.Thumbnail)
	assert.Equal(t, "episodes/abc.jpg", *ep.Thumbnail)
	assert.Nil(t, ep.Banner, "no banner upload and no parent cover leaves it null")
	blobs.AssertExpectations(t)
}

func TestEpisodeCreateNoParentArtLeavesNull(t *testing.T) {
	store, series, _, svc := newEpisodeFixture()

	// empty string on the parent counts as no art, same as nil
	anime := &models.Anime{ID: 1, Title: "Obscure Show", Image: strPtr("")}
	series.On("GetByID", mock.Anything, int64(1)).Return(anime, nil)
	store.On("Create", mock.Anything, mock.Anything).Return(nil)
	store.On("CreateVideos", mock.Anything, mock.Anything).Return(nil)

	ep, err := svc.Create(context.Background(), EpisodeInput{
		SeriesID:      1,
		Title:         "Episode 1",
		EpisodeNumber: 1,
	})

	require.NoError(t, err)
	assert.Nil(t, ep.Thumbnail)
	assert.Nil(t, ep.Banner)
}

func TestEpisodeCreateRejectsUnknownSeriesBeforeWriting(t *testing.T) {
	store, series, blobs, svc := newEpisodeFixture()

	series.On("GetByID", mock.Anything, int64(99)).Return(nil, errors.New("record not found"))

	_, err := svc.Create(context.Background(), EpisodeInput{
		SeriesID:      99,
		Title:         "Orphan",
		EpisodeNumber: 1,
	})

	require.Error(t, err)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	blobs.AssertNotCalled(t, "SaveUpload", mock.Anything, mock.Anything)
}

func TestEpisodeCreateStampsVideoLinks(t *testing.T) {
	store, series, _, svc := newEpisodeFixture()

	anime := &models.Anime{ID: 1, Title: "One Piece", Image: strPtr("animes/op.jpg")}
	series.On("GetByID", mock.Anything, int64(1)).Return(anime, nil)
	store.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Episode).ID = 42
	}).Return(nil)

	var created []models.EpisodeVideo
	store.On("CreateVideos", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(1).([]models.EpisodeVideo)
	}).Return(nil)

	_, err := svc.Create(context.Background(), EpisodeInput{
		SeriesID:      1,
		Title:         "Episode 7",
		EpisodeNumber: 7,
		VideoURLs:     []string{"https://a.example/1", "", "https://b.example/2", "https://a.example/1"},
	})

	require.NoError(t, err)
	// blanks are skipped; order and duplicates survive
	require.Len(t, created, 3)
	assert.Equal(t, "https://a.example/1", created[0].VideoURL)
	assert.Equal(t, "https://b.example/2", created[1].VideoURL)
	assert.Equal(t, "https://a.example/1", created[2].VideoURL)
	for _, v := range created {
		assert.Equal(t, int64(42), v.EpisodeID)
		assert.Equal(t, 7, v.EpisodeNumber)
		assert.Equal(t, "One Piece", v.AnimeTitle)
		assert.Equal(t, "animes/op.jpg", *v.AnimeImage)
	}
}

func TestEpisodeUpdateUploadRetiresOldBlobOnce(t *testing.T) {
	store, series, blobs, svc := newEpisodeFixture()

	existing := &models.Episode{
		ID:        5,
		SeriesID:  1,
		Thumbnail: strPtr("episodes/old.jpg"),
	}
	anime := &models.Anime{ID: 1, Title: "Bleach"}
	upload := &multipart.FileHeader{Filename: "new.jpg"}

	store.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)
	series.On("GetByID", mock.Anything, int64(1)).Return(anime, nil)
	blobs.On("Delete", "episodes/old.jpg").Return(nil).Once()
	blobs.On("SaveUpload", "episodes", upload).Return("episodes/new.jpg", nil)
	store.On("Update", mock.Anything, int64(5), mock.Anything).Return(nil)
	store.On("DeleteVideos", mock.Anything, int64(5)).Return(nil)
	store.On("CreateVideos", mock.Anything, mock.Anything).Return(nil)

	ep, err := svc.Update(context.Background(), 5, EpisodeInput{
		SeriesID:      1,
		Title:         "Episode 5",
		EpisodeNumber: 5,
		Thumbnail:     upload,
	})

	require.NoError(t, err)
	assert.Equal(t, "episodes/new.jpg", *ep.Thumbnail)
	blobs.AssertNumberOfCalls(t, "Delete", 1)
}

func TestEpisodeUpdateSeriesChangeAdoptsNewArt(t *testing.T) {
	store, series, blobs, svc := newEpisodeFixture()

	existing := &models.Episode{
		ID:        5,
		SeriesID:  1,
		Thumbnail: strPtr("animes/old-show.jpg"),
		Banner:    strPtr("animes/old-cover.jpg"),
	}
	newParent := &models.Anime{
		ID:    2,
		Title: "New Show",
		Image: strPtr("animes/new-show.jpg"),
		Cover: nil,
	}

	store.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)
	series.On("GetByID", mock.Anything, int64(2)).Return(newParent, nil)
	store.On("Update", mock.Anything, int64(5), mock.Anything).Return(nil)
	store.On("DeleteVideos", mock.Anything, int64(5)).Return(nil)
	store.On("CreateVideos", mock.Anything, mock.Anything).Return(nil)

	ep, err := svc.Update(context.Background(), 5, EpisodeInput{
		SeriesID:      2,
		Title:         "Episode 5",
		EpisodeNumber: 5,
	})

	require.NoError(t, err)
	require.NotNil(t, ep.Thumbnail)
	assert.Equal(t, "animes/new-show.jpg", *ep.Thumbnail)
	// the new parent has no cover, so the banner is nulled out too
	assert.Nil(t, ep.Banner)
	// moving between shows abandons the old file on disk
	blobs.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestEpisodeUpdateSameSeriesKeepsArt(t *testing.T) {
	store, series, blobs, svc := newEpisodeFixture()

	existing := &models.Episode{
		ID:        5,
		SeriesID:  1,
		Thumbnail: strPtr("episodes/mine.jpg"),
		Banner:    strPtr("episodes/banner.jpg"),
	}
	anime := &models.Anime{ID: 1, Title: "Same Show", Image: strPtr("animes/different.jpg")}

	store.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)
	series.On("GetByID", mock.Anything, int64(1)).Return(anime, nil)
	store.On("Update", mock.Anything, int64(5), mock.Anything).Return(nil)
	store.On("DeleteVideos", mock.Anything, int64(5)).Return(nil)
	store.On("CreateVideos", mock.Anything, mock.Anything).Return(nil)

	ep, err := svc.Update(context.Background(), 5, EpisodeInput{
		SeriesID:      1,
		Title:         "Episode 5 edited",
		EpisodeNumber: 5,
	})

	require.NoError(t, err)
	assert.Equal(t, "episodes/mine.jpg", *ep.Thumbnail)
	assert.Equal(t, "episodes/banner.jpg", *ep.Banner)
	blobs.AssertNotCalled(t, "Delete", mock.Anything)
	blobs.AssertNotCalled(t, "SaveUpload", mock.Anything, mock.Anything)
}

func TestEpisodeUpdateIsIdempotentForArt(t *testing.T) {
	store, series, blobs, svc := newEpisodeFixture()

	anime := &models.Anime{ID: 1, Title: "Stable Show", Image: strPtr("animes/stable.jpg")}
	existing := &models.Episode{ID: 5, SeriesID: 1, Thumbnail: strPtr("episodes/keep.jpg")}

	store.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)
	series.On("GetByID", mock.Anything, int64(1)).Return(anime, nil)
	store.On("Update", mock.Anything, int64(5), mock.Anything).Return(nil)
	store.On("DeleteVideos", mock.Anything, int64(5)).Return(nil)
	store.On("CreateVideos", mock.Anything, mock.Anything).Return(nil)

	in := EpisodeInput{SeriesID: 1, Title: "Episode 5", EpisodeNumber: 5}

	first, err := svc.Update(context.Background(), 5, in)
	require.NoError(t, err)
	second, err := svc.Update(context.Background(), 5, in)
	require.NoError(t, err)

	assert.Equal(t, *first.Thumbnail, *second.Thumbnail)
	blobs.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestEpisodeUpdateSeriesMoveThenStay(t *testing.T) {
	store, series, blobs, svc := newEpisodeFixture()

	// episode starts under show A with A's art
	existing := &models.Episode{ID: 5, SeriesID: 1, Thumbnail: strPtr("animes/a.jpg")}
	showB := &models.Anime{ID: 2, Title: "Show B", Image: strPtr("animes/b.jpg")}

	store.On("GetByID", mock.Anything, int64(5)).Return(existing, nil).Once()
	series.On("GetByID", mock.Anything, int64(2)).Return(showB, nil)
	store.On("Update", mock.Anything, int64(5), mock.Anything).Return(nil)
	store.On("DeleteVideos", mock.Anything, int64(5)).Return(nil)
	store.On("CreateVideos", mock.Anything, mock.Anything).Return(nil)

	moved, err := svc.Update(context.Background(), 5, EpisodeInput{
		SeriesID: 2, Title: "Episode 5", EpisodeNumber: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, "animes/b.jpg", *moved.Thumbnail)

	// second update under B is a no-op for art
	store.On("GetByID", mock.Anything, int64(5)).Return(moved, nil).Once()
	stayed, err := svc.Update(context.Background(), 5, EpisodeInput{
		SeriesID: 2, Title: "Episode 5", EpisodeNumber: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, "animes/b.jpg", *stayed.Thumbnail)
	blobs.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestEpisodeUpdateRebuildsVideoLinks(t *testing.T) {
	store, series, _, svc := newEpisodeFixture()

	existing := &models.Episode{ID: 5, SeriesID: 1}
	anime := &models.Anime{ID: 1, Title: "Restamped", Image: strPtr("animes/new-image.jpg")}

	store.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)
	series.On("GetByID", mock.Anything, int64(1)).Return(anime, nil)
	store.On("Update", mock.Anything, int64(5), mock.Anything).Return(nil)
	store.On("DeleteVideos", mock.Anything, int64(5)).Return(nil)

	var recreated []models.EpisodeVideo
	store.On("CreateVideos", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		recreated = args.Get(1).([]models.EpisodeVideo)
	}).Return(nil)

	_, err := svc.Update(context.Background(), 5, EpisodeInput{
		SeriesID:      1,
		Title:         "Episode 9",
		EpisodeNumber: 9,
		VideoURLs:     []string{"https://cdn.example/v1"},
	})

	require.NoError(t, err)
	store.AssertCalled(t, "DeleteVideos", mock.Anything, int64(5))
	require.Len(t, recreated, 1)
	// the surviving link carries the current episode number and parent art
	assert.Equal(t, 9, recreated[0].EpisodeNumber)
	assert.Equal(t, "Restamped", recreated[0].AnimeTitle)
	assert.Equal(t, "animes/new-image.jpg", *recreated[0].AnimeImage)
}

func TestEpisodeUpdateOmittedURLsClearAllLinks(t *testing.T) {
	store, series, _, svc := newEpisodeFixture()

	existing := &models.Episode{ID: 5, SeriesID: 1}
	anime := &models.Anime{ID: 1, Title: "Cleared"}

	store.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)
	series.On("GetByID", mock.Anything, int64(1)).Return(anime, nil)
	store.On("Update", mock.Anything, int64(5), mock.Anything).Return(nil)
	store.On("DeleteVideos", mock.Anything, int64(5)).Return(nil)
	store.On("CreateVideos", mock.Anything, mock.MatchedBy(func(v []models.EpisodeVideo) bool {
		return len(v) == 0
	})).Return(nil)

	_, err := svc.Update(context.Background(), 5, EpisodeInput{
		SeriesID:      1,
		Title:         "Episode 5",
		EpisodeNumber: 5,
	})

	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestEpisodeUpdatePreservesCounters(t *testing.T) {
	store, series, _, svc := newEpisodeFixture()

	existing := &models.Episode{
		ID:         5,
		SeriesID:   1,
		ViewsCount: 1200,
		LikesCount: 34,
	}
	anime := &models.Anime{ID: 1, Title: "Counted"}

	store.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)
	series.On("GetByID", mock.Anything, int64(1)).Return(anime, nil)
	store.On("Update", mock.Anything, int64(5), mock.Anything).Return(nil)
	store.On("DeleteVideos", mock.Anything, int64(5)).Return(nil)
	store.On("CreateVideos", mock.Anything, mock.Anything).Return(nil)

	ep, err := svc.Update(context.Background(), 5, EpisodeInput{
		SeriesID:      1,
		Title:         "Episode 5",
		EpisodeNumber: 5,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5), ep.ID)
	assert.Equal(t, 1200, ep.ViewsCount)
	assert.Equal(t, 34, ep.LikesCount)
}

func TestEpisodeDeleteCascades(t *testing.T) {
	store, _, blobs, svc := newEpisodeFixture()

	ep := &models.Episode{
		ID:        5,
		Thumbnail: strPtr("episodes/t.jpg"),
		Banner:    strPtr("episodes/b.jpg"),
	}
	store.On("GetByID", mock.Anything, int64(5)).Return(ep, nil)
	blobs.On("Delete", "episodes/t.jpg").Return(nil).Once()
	blobs.On("Delete", "episodes/b.jpg").Return(nil).Once()
	store.On("DeleteVideos", mock.Anything, int64(5)).Return(nil)
	store.On("Delete", mock.Anything, int64(5)).Return(nil)

	err := svc.Delete(context.Background(), 5)

	require.NoError(t, err)
	blobs.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestEpisodeGetPublishedHidesDrafts(t *testing.T) {
	store, _, _, svc := newEpisodeFixture()

	store.On("GetByID", mock.Anything, int64(7)).Return(&models.Episode{ID: 7, IsPublished: false}, nil)

	_, err := svc.GetPublished(context.Background(), 7)

	require.Error(t, err)
}

func TestEpisodeDefaultsOnCreate(t *testing.T) {
	store, series, _, svc := newEpisodeFixture()

	anime := &models.Anime{ID: 1, Title: "Defaults"}
	series.On("GetByID", mock.Anything, int64(1)).Return(anime, nil)
	store.On("Create", mock.Anything, mock.Anything).Return(nil)
	store.On("CreateVideos", mock.Anything, mock.Anything).Return(nil)

	ep, err := svc.Create(context.Background(), EpisodeInput{
		SeriesID:      1,
		Title:         "Episode One",
		TitleEn:       strPtr("First Episode"),
		EpisodeNumber: 1,
	})

	require.NoError(t, err)
	assert.Equal(t, "ar", ep.Language)
	assert.Equal(t, "episode-one", ep.Slug)
	require.NotNil(t, ep.SlugEn)
	assert.Equal(t, "first-episode", *ep.SlugEn)
}
