package data

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"cryptofolio/internal/config"
	"cryptofolio/internal/contentstore"
	"cryptofolio/internal/errs"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) GetFile(ctx context.Context, filename string) (*contentstore.File, error) {
	args := m.Called(ctx, filename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contentstore.File), args.Error(1)
}

func (m *MockStore) GetSHA(ctx context.Context, filename string) (string, error) {
	args := m.Called(ctx, filename)
	return args.String(0), args.Error(1)
}

func (m *MockStore) PutFile(ctx context.Context, filename string, content []byte, sha, message string) (string, error) {
	args := m.Called(ctx, filename, content, sha, message)
	return args.String(0), args.Error(1)
}

func validConfig() config.Store {
	return config.Store{
		APIURL:  "https://api.example.test",
		Token:   "t",
		Repo:    "acme/portal-data",
		Branch:  "main",
		DataDir: "data",
	}
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	var se huma.StatusError
	require.ErrorAs(t, err, &se)
	return se.GetStatus()
}

func TestHandler_read(t *testing.T) {
	ctx := context.Background()

	t.Run("returns decoded document verbatim", func(t *testing.T) {
		store := new(MockStore)
		store.On("GetFile", mock.Anything, "users.json").
			Return(&contentstore.File{Content: []byte(`[{"id":"u1"}]`), SHA: "abc"}, nil)

		h := NewHandler(store, validConfig(), slog.Default(), nil)
		out, err := h.read(ctx, &readInput{Filename: "users.json"})

		require.NoError(t, err)
		assert.Equal(t, "application/json", out.ContentType)
		assert.Equal(t, `[{"id":"u1"}]`, string(out.Body))
		store.AssertExpectations(t)
	})

	t.Run("missing filename answers 400", func(t *testing.T) {
		h := NewHandler(new(MockStore), validConfig(), slog.Default(), nil)
		_, err := h.read(ctx, &readInput{})
		assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
	})

	t.Run("path traversal answers 400", func(t *testing.T) {
		h := NewHandler(new(MockStore), validConfig(), slog.Default(), nil)
		for _, name := range []string{"../secrets.json", "a/b.json", `a\b.json`} {
			_, err := h.read(ctx, &readInput{Filename: name})
			assert.Equal(t, http.StatusBadRequest, httpStatus(t, err), name)
		}
	})

	t.Run("missing configuration answers 500", func(t *testing.T) {
		h := NewHandler(new(MockStore), config.Store{}, slog.Default(), nil)
		_, err := h.read(ctx, &readInput{Filename: "users.json"})
		assert.Equal(t, http.StatusInternalServerError, httpStatus(t, err))
	})

	t.Run("upstream status is forwarded", func(t *testing.T) {
		store := new(MockStore)
		store.On("GetFile", mock.Anything, "users.json").
			Return(nil, &contentstore.UpstreamError{StatusCode: http.StatusForbidden, Body: []byte("nope")})

		h := NewHandler(store, validConfig(), slog.Default(), nil)
		_, err := h.read(ctx, &readInput{Filename: "users.json"})
		assert.Equal(t, http.StatusForbidden, httpStatus(t, err))
	})

	t.Run("missing file answers 404", func(t *testing.T) {
		store := new(MockStore)
		store.On("GetFile", mock.Anything, "nope.json").
			Return(nil, errs.ErrNotFound)

		h := NewHandler(store, validConfig(), slog.Default(), nil)
		_, err := h.read(ctx, &readInput{Filename: "nope.json"})
		assert.Equal(t, http.StatusNotFound, httpStatus(t, err))
	})
}

func TestHandler_write(t *testing.T) {
	ctx := context.Background()

	t.Run("pretty-prints JSON values and carries the sha", func(t *testing.T) {
		store := new(MockStore)
		store.On("GetSHA", mock.Anything, "plans.json").Return("oldsha", nil)
		store.On("PutFile", mock.Anything, "plans.json",
			[]byte("[\n  {\n    \"id\": \"p1\"\n  }\n]"), "oldsha", "Update plans.json via proxy").
			Return("commit1", nil)

		h := NewHandler(store, validConfig(), slog.Default(), nil)
		out, err := h.write(ctx, &writeInput{Body: writeRequest{
			Filename: "plans.json",
			Data:     json.RawMessage(`[{"id":"p1"}]`),
		}})

		require.NoError(t, err)
		assert.True(t, out.Body.OK)
		assert.Equal(t, "commit1", out.Body.Commit)
		store.AssertExpectations(t)
	})

	t.Run("string data is written verbatim", func(t *testing.T) {
		store := new(MockStore)
		store.On("GetSHA", mock.Anything, "notes.json").Return("", nil)
		store.On("PutFile", mock.Anything, "notes.json",
			[]byte("raw text"), "", "ops note").
			Return("commit2", nil)

		h := NewHandler(store, validConfig(), slog.Default(), nil)
		out, err := h.write(ctx, &writeInput{Body: writeRequest{
			Filename: "notes.json",
			Data:     json.RawMessage(`"raw text"`),
			Message:  "ops note",
		}})

		require.NoError(t, err)
		assert.True(t, out.Body.OK)
		store.AssertExpectations(t)
	})

	t.Run("sha lookup failure degrades to create-new", func(t *testing.T) {
		store := new(MockStore)
		store.On("GetSHA", mock.Anything, "users.json").
			Return("", errors.New("boom"))
		store.On("PutFile", mock.Anything, "users.json", mock.Anything, "", mock.Anything).
			Return("commit3", nil)

		h := NewHandler(store, validConfig(), slog.Default(), nil)
		out, err := h.write(ctx, &writeInput{Body: writeRequest{
			Filename: "users.json",
			Data:     json.RawMessage(`[]`),
		}})

		require.NoError(t, err)
		assert.True(t, out.Body.OK)
	})

	t.Run("missing data answers 400", func(t *testing.T) {
		h := NewHandler(new(MockStore), validConfig(), slog.Default(), nil)
		_, err := h.write(ctx, &writeInput{Body: writeRequest{Filename: "users.json"}})
		assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
	})

	t.Run("stale version token forwards the 409", func(t *testing.T) {
		upErr := &contentstore.UpstreamError{StatusCode: http.StatusConflict, Body: []byte("mismatch")}
		store := new(MockStore)
		store.On("GetSHA", mock.Anything, "users.json").Return("stale", nil)
		store.On("PutFile", mock.Anything, "users.json", mock.Anything, "stale", mock.Anything).
			Return("", errors.Join(errs.ErrVersionConflict, upErr))

		h := NewHandler(store, validConfig(), slog.Default(), nil)
		_, err := h.write(ctx, &writeInput{Body: writeRequest{
			Filename: "users.json",
			Data:     json.RawMessage(`[]`),
		}})
		assert.Equal(t, http.StatusConflict, httpStatus(t, err))
	})
}
