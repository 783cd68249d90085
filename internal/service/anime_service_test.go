package service

import (
	"context"
	"testing"

	"anicms/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAnimeStore struct {
	mock.Mock
}

func (m *mockAnimeStore) GetAll(ctx context.Context, page, pageSize int) ([]models.Anime, int64, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]models.Anime), args.Get(1).(int64), args.Error(2)
}

func (m *mockAnimeStore) GetByID(ctx context.Context, id int64) (*models.Anime, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Anime), args.Error(1)
}

func (m *mockAnimeStore) Create(ctx context.Context, a *models.Anime) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *mockAnimeStore) Update(ctx context.Context, id int64, a *models.Anime) error {
	args := m.Called(ctx, id, a)
	return args.Error(0)
}

func (m *mockAnimeStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockAnimeStore) ReplaceCategories(ctx context.Context, animeID int64, categoryIDs []int64) error {
	args := m.Called(ctx, animeID, categoryIDs)
	return args.Error(0)
}

func (m *mockAnimeStore) ClearCategories(ctx context.Context, animeID int64) error {
	args := m.Called(ctx, animeID)
	return args.Error(0)
}

type mockEpisodeSweeper struct {
	mock.Mock
}

func (m *mockEpisodeSweeper) ListBySeries(ctx context.Context, seriesID int64) ([]models.Episode, error) {
	args := m.Called(ctx, seriesID)
	return args.Get(0).([]models.Episode), args.Error(1)
}

func (m *mockEpisodeSweeper) DeleteVideos(ctx context.Context, episodeID int64) error {
	args := m.Called(ctx, episodeID)
	return args.Error(0)
}

func (m *mockEpisodeSweeper) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockLookupResolver struct {
	mock.Mock
}

func (m *mockLookupResolver) StudioName(ctx context.Context, id int64) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *mockLookupResolver) LanguageName(ctx context.Context, id int64) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *mockLookupResolver) TypeName(ctx context.Context, id int64) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func int64Ptr(n int64) *int64 { return &n }

func newAnimeFixture() (*mockAnimeStore, *mockEpisodeSweeper, *mockLookupResolver, *mockBlobStore, AnimeService) {
	store := new(mockAnimeStore)
	sweeper := new(mockEpisodeSweeper)
	lookups := new(mockLookupResolver)
	blobs := new(mockBlobStore)
	svc := NewAnimeService(store, sweeper, lookups, blobs, nil)
	return store, sweeper, lookups, blobs, svc
}

func TestAnimeCreateResolvesLookupNames(t *testing.T) {
	store, _, lookups, _, svc := newAnimeFixture()

	lookups.On("StudioName", mock.Anything, int64(3)).Return("MAPPA", nil)
	lookups.On("LanguageName", mock.Anything, int64(2)).Return("Japanese", nil)
	lookups.On("TypeName", mock.Anything, int64(1)).Return("TV", nil)
	store.On("Create", mock.Anything, mock.Anything).Return(nil)

	a, err := svc.Create(context.Background(), "user-1", AnimeInput{
		Title:      "Jujutsu Kaisen",
		StudioID:   int64Ptr(3),
		LanguageID: int64Ptr(2),
		TypeID:     int64Ptr(1),
		IsActive:   true,
	})

	require.NoError(t, err)
	assert.Equal(t, "MAPPA", *a.StudioName)
	assert.Equal(t, "Japanese", *a.Language)
	assert.Equal(t, "TV", *a.Type)
	require.NotNil(t, a.UserID)
	assert.Equal(t, "user-1", *a.UserID)
	assert.Equal(t, "jujutsu-kaisen", a.Slug)
}

func TestAnimeCreateAttachesCategories(t *testing.T) {
	store, _, _, _, svc := newAnimeFixture()

	store.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Anime).ID = 10
	}).Return(nil)
	store.On("ReplaceCategories", mock.Anything, int64(10), []int64{1, 2}).Return(nil)

	_, err := svc.Create(context.Background(), "user-1", AnimeInput{
		Title:       "Tagged",
		CategoryIDs: []int64{1, 2},
	})

	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestAnimeUpdateKeepsCreatorAndArt(t *testing.T) {
	store, _, _, blobs, svc := newAnimeFixture()

	existing := &models.Anime{
		ID:     10,
		UserID: strPtr("original-author"),
		Image:  strPtr("animes/keep.jpg"),
	}
	store.On("GetByID", mock.Anything, int64(10)).Return(existing, nil)
	store.On("Update", mock.Anything, int64(10), mock.Anything).Return(nil)

	a, err := svc.Update(context.Background(), 10, "editor-2", AnimeInput{Title: "Renamed"})

	require.NoError(t, err)
	assert.Equal(t, "original-author", *a.UserID, "update must not reassign ownership")
	assert.Equal(t, "animes/keep.jpg", *a.Image)
	blobs.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestAnimeUpdateNilCategoryIDsKeepsLinks(t *testing.T) {
	store, _, _, _, svc := newAnimeFixture()

	store.On("GetByID", mock.Anything, int64(10)).Return(&models.Anime{ID: 10}, nil)
	store.On("Update", mock.Anything, int64(10), mock.Anything).Return(nil)

	_, err := svc.Update(context.Background(), 10, "editor", AnimeInput{Title: "Untagged edit"})

	require.NoError(t, err)
	store.AssertNotCalled(t, "ReplaceCategories", mock.Anything, mock.Anything, mock.Anything)
}

func TestAnimeUpdateEmptyCategoryIDsClearsLinks(t *testing.T) {
	store, _, _, _, svc := newAnimeFixture()

	store.On("GetByID", mock.Anything, int64(10)).Return(&models.Anime{ID: 10}, nil)
	store.On("Update", mock.Anything, int64(10), mock.Anything).Return(nil)
	store.On("ReplaceCategories", mock.Anything, int64(10), []int64{}).Return(nil)

	_, err := svc.Update(context.Background(), 10, "editor", AnimeInput{
		Title:       "Detagged",
		CategoryIDs: []int64{},
	})

	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestAnimeDeleteSweepsEpisodes(t *testing.T) {
	store, sweeper, _, blobs, svc := newAnimeFixture()

	anime := &models.Anime{
		ID:    10,
		Image: strPtr("animes/show.jpg"),
		Cover: strPtr("animes/show-cover.jpg"),
	}
	episodes := []models.Episode{
		{ID: 100, Thumbnail: strPtr("episodes/e1.jpg")},
		{ID: 101, Banner: strPtr("episodes/e2-banner.jpg")},
	}

	store.On("GetByID", mock.Anything, int64(10)).Return(anime, nil)
	sweeper.On("ListBySeries", mock.Anything, int64(10)).Return(episodes, nil)
	blobs.On("Delete", "episodes/e1.jpg").Return(nil).Once()
	blobs.On("Delete", "episodes/e2-banner.jpg").Return(nil).Once()
	sweeper.On("DeleteVideos", mock.Anything, int64(100)).Return(nil)
	sweeper.On("DeleteVideos", mock.Anything, int64(101)).Return(nil)
	sweeper.On("Delete", mock.Anything, int64(100)).Return(nil)
	sweeper.On("Delete", mock.Anything, int64(101)).Return(nil)
	blobs.On("Delete", "animes/show.jpg").Return(nil).Once()
	blobs.On("Delete", "animes/show-cover.jpg").Return(nil).Once()
	store.On("ClearCategories", mock.Anything, int64(10)).Return(nil)
	store.On("Delete", mock.Anything, int64(10)).Return(nil)

	err := svc.Delete(context.Background(), 10)

	require.NoError(t, err)
	store.AssertExpectations(t)
	sweeper.AssertExpectations(t)
	blobs.AssertExpectations(t)
}

func TestAnimeGetActiveHidesInactive(t *testing.T) {
	store, _, _, _, svc := newAnimeFixture()

	store.On("GetByID", mock.Anything, int64(10)).Return(&models.Anime{ID: 10, IsActive: false}, nil)

	_, err := svc.GetActive(context.Background(), 10)

	require.Error(t, err)
}

func TestAnimeCreateDefaults(t *testing.T) {
	store, _, _, _, svc := newAnimeFixture()

	store.On("Create", mock.Anything, mock.Anything).Return(nil)

	a, err := svc.Create(context.Background(), "user-1", AnimeInput{Title: "Bare Minimum"})

	require.NoError(t, err)
	assert.Equal(t, 1, a.Seasons)
	assert.Equal(t, "Ongoing", a.Status)
}
