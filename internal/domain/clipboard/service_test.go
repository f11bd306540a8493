package clipboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"clipshare/internal/domain/audit"
	"clipshare/internal/identity"
	"clipshare/internal/infrastructure/storage/memory"
	"clipshare/internal/model"
	"clipshare/internal/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) Record(ctx context.Context, p audit.Payload, who identity.Identity) {
	m.Called(ctx, p, who)
}

// failingRepo wraps a repository and fails the named operations.
type failingRepo struct {
	Repository
	failInsert bool
	failCount  bool
}

func (f failingRepo) Insert(ctx context.Context, c model.Collection, d model.Document) error {
	if f.failInsert {
		return errors.New("insert failed")
	}
	return f.Repository.Insert(ctx, c, d)
}

func (f failingRepo) Count(ctx context.Context, c model.Collection) (int64, error) {
	if f.failCount {
		return 0, errors.New("count failed")
	}
	return f.Repository.Count(ctx, c)
}

var who = identity.Identity{SessionID: "sess", UserAgent: "ua", ClientAddress: "1.2.3.4"}

// newService returns a service over a memory store whose clock advances one
// millisecond per call.
func newService(t *testing.T, repo Repository, rec Recorder) *Service {
	t.Helper()
	s := NewService(repo, rec, nil, slog.Default())
	clock := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		clock = clock.Add(time.Millisecond)
		return clock
	}
	return s
}

func TestService_Paste(t *testing.T) {
	rec := new(MockRecorder)
	rec.On("Record", mock.Anything, audit.Paste{Content: "hello"}, who).Once()

	s := newService(t, memory.New(), rec)

	entry, err := s.Paste(context.Background(), "hello", who)
	require.NoError(t, err)
	assert.True(t, model.ValidID(entry.ID))
	assert.Equal(t, "hello", entry.Content)

	got, err := s.Get(context.Background(), entry.ID)
	require.NoError(t, err)
	assert.Equal(t, entry, got)

	rec.AssertExpectations(t)
}

func TestService_Paste_EmptyContent(t *testing.T) {
	rec := new(MockRecorder)
	s := newService(t, memory.New(), rec)

	_, err := s.Paste(context.Background(), "", who)
	assert.ErrorIs(t, err, ErrInvalidContent)
	rec.AssertNotCalled(t, "Record", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Paste_StoreErrorSkipsAudit(t *testing.T) {
	rec := new(MockRecorder)
	s := newService(t, failingRepo{Repository: memory.New(), failInsert: true}, rec)

	_, err := s.Paste(context.Background(), "hello", who)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidContent)
	rec.AssertNotCalled(t, "Record", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_List_Scenario(t *testing.T) {
	rec := new(MockRecorder)
	rec.On("Record", mock.Anything, mock.Anything, mock.Anything)
	s := newService(t, memory.New(), rec)
	ctx := context.Background()

	_, err := s.Paste(ctx, "hello", who)
	require.NoError(t, err)
	_, err = s.Paste(ctx, "world", who)
	require.NoError(t, err)

	resp, err := s.List(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "world", resp.Entries[0].Content)
	assert.Equal(t, pagination.Window{
		CurrentPage:  1,
		TotalPages:   2,
		TotalEntries: 2,
		HasNext:      true,
		HasPrev:      false,
	}, resp.Pagination)

	resp, err = s.List(ctx, 2, 1)
	require.NoError(t, err)
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "hello", resp.Entries[0].Content)
	assert.True(t, resp.Pagination.HasPrev)
	assert.False(t, resp.Pagination.HasNext)
}

func TestService_List_CreatedAtOrder(t *testing.T) {
	rec := new(MockRecorder)
	rec.On("Record", mock.Anything, mock.Anything, mock.Anything)
	s := newService(t, memory.New(), rec)
	ctx := context.Background()

	first, err := s.Paste(ctx, "first", who)
	require.NoError(t, err)
	second, err := s.Paste(ctx, "second", who)
	require.NoError(t, err)

	resp, err := s.List(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, resp.Entries, 2)
	assert.Equal(t, second.ID, resp.Entries[0].ID)
	assert.Equal(t, first.ID, resp.Entries[1].ID)
	assert.True(t, resp.Entries[1].CreatedAt.Before(resp.Entries[0].CreatedAt))
}

func TestService_List_Errors(t *testing.T) {
	s := newService(t, failingRepo{Repository: memory.New(), failCount: true}, new(MockRecorder))

	_, err := s.List(context.Background(), 1, 10)
	assert.ErrorContains(t, err, "count failed")

	_, err = newService(t, memory.New(), new(MockRecorder)).List(context.Background(), 1, 0)
	assert.ErrorIs(t, err, pagination.ErrInvalidPageSize)
}

func TestService_Delete(t *testing.T) {
	rec := new(MockRecorder)
	rec.On("Record", mock.Anything, mock.AnythingOfType("audit.Paste"), who).Once()
	s := newService(t, memory.New(), rec)
	ctx := context.Background()

	entry, err := s.Paste(ctx, "secret", who)
	require.NoError(t, err)

	rec.On("Record", mock.Anything, audit.Delete{
		DeletedContent: "secret",
		ContentID:      entry.ID,
		Type:           audit.DeleteSingle,
	}, who).Once()

	require.NoError(t, s.Delete(ctx, entry.ID, who))

	_, err = s.Get(ctx, entry.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.Delete(ctx, entry.ID, who), ErrNotFound)
	rec.AssertExpectations(t)
}

func TestService_Delete_InvalidID(t *testing.T) {
	rec := new(MockRecorder)
	rec.On("Record", mock.Anything, audit.Paste{Content: "hello"}, who).Once()
	s := newService(t, memory.New(), rec)

	assert.ErrorIs(t, s.Delete(context.Background(), "not-an-id", who), ErrInvalidID)
	_, err := s.Get(context.Background(), "not-an-id")
	assert.ErrorIs(t, err, ErrInvalidID)

	entry, err := s.Paste(context.Background(), "hello", who)
	require.NoError(t, err)
	assert.ErrorIs(t, s.Delete(context.Background(), "{"+entry.ID+"}", who), ErrInvalidID)
	_, err = s.Get(context.Background(), "urn:uuid:"+entry.ID)
	assert.ErrorIs(t, err, ErrInvalidID)
	rec.AssertExpectations(t)
}

func TestService_DeleteAll(t *testing.T) {
	store := memory.New()
	logger := audit.NewLogger(store, slog.Default(), nil, time.Second)
	s := newService(t, store, logger)
	ctx := context.Background()

	for _, c := range []string{"a", "b", "c"} {
		_, err := s.Paste(ctx, c, who)
		require.NoError(t, err)
	}
	require.NoError(t, s.LogCopy(ctx, model.NewID(), "a", who))

	n, err := s.DeleteAll(ctx, who)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	resp, err := s.List(ctx, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, resp.Entries)
	assert.Equal(t, int64(0), resp.Pagination.TotalEntries)

	summary, err := audit.NewReporter(store, slog.Default()).Summarize(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), summary[audit.CategoryPaste])
	assert.Equal(t, int64(1), summary[audit.CategoryCopy])
	assert.Equal(t, int64(0), summary[audit.CategoryLogin])
	assert.Equal(t, int64(3), summary[audit.CategoryDelete])

	events, err := audit.NewReporter(store, slog.Default()).List(ctx, audit.CategoryDelete, 0)
	require.NoError(t, err)
	for _, e := range events {
		assert.Equal(t, audit.DeleteAll, e.DeleteType)
		assert.Equal(t, 1, *e.ContentLength)
	}
}

func TestService_LogCopy(t *testing.T) {
	rec := new(MockRecorder)
	rec.On("Record", mock.Anything, audit.Copy{CopiedContent: "text", ContentID: "id-1"}, who).Once()
	s := newService(t, memory.New(), rec)

	require.NoError(t, s.LogCopy(context.Background(), "id-1", "text", who))
	assert.ErrorIs(t, s.LogCopy(context.Background(), "", "text", who), ErrInvalidCopy)
	assert.ErrorIs(t, s.LogCopy(context.Background(), "id-1", "", who), ErrInvalidCopy)
	rec.AssertExpectations(t)
}
