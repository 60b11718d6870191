package storage

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func newTestStore(max int64) (*LocalStore, afero.Fs) {
	mem := afero.NewMemMapFs()
	s := NewLocalStore(mem, "/uploads/", max)
	s.now = func() time.Time { return time.UnixMilli(1700000000123) }
	s.random = func() int { return 42 }
	return s, mem
}

func TestLocalStore_SaveUpload(t *testing.T) {
	s, mem := newTestStore(1024)

	url, err := s.SaveUpload(context.Background(), File{Name: "report.pdf", Body: strings.NewReader("hello")})

	require.NoError(t, err)
	assert.Equal(t, "/uploads/1700000000123-42.pdf", url)

	data, err := afero.ReadFile(mem, "/1700000000123-42.pdf")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestLocalStore_SaveUpload_SniffsExtension(t *testing.T) {
	s, _ := newTestStore(1024)

	url, err := s.SaveUpload(context.Background(), File{Name: "blob", Body: bytes.NewReader(pngHeader)})

	require.NoError(t, err)
	assert.Equal(t, "/uploads/1700000000123-42.png", url)
}

func TestLocalStore_SaveUpload_TooLarge(t *testing.T) {
	s, mem := newTestStore(4)

	_, err := s.SaveUpload(context.Background(), File{Name: "a.txt", Body: strings.NewReader("12345")})

	assert.ErrorIs(t, err, ErrFileTooLarge)
	entries, _ := afero.ReadDir(mem, "/")
	assert.Empty(t, entries)
}

func TestLocalStore_SaveUpload_ExactLimit(t *testing.T) {
	s, _ := newTestStore(4)

	_, err := s.SaveUpload(context.Background(), File{Name: "a.txt", Body: strings.NewReader("1234")})

	assert.NoError(t, err)
}

func TestLocalStore_SaveUpload_CanceledContext(t *testing.T) {
	s, _ := newTestStore(1024)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.SaveUpload(ctx, File{Name: "a.txt", Body: strings.NewReader("x")})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestLocalStore_SaveAvatar(t *testing.T) {
	s, mem := newTestStore(1024)

	url, err := s.SaveAvatar(context.Background(), "emp-1", File{Name: "me.JPG", Body: strings.NewReader("img")})

	require.NoError(t, err)
	assert.Equal(t, "/uploads/avatars/avatar-emp-1-1700000000123-42.JPG", url)

	ok, err := afero.Exists(mem, "/avatars/avatar-emp-1-1700000000123-42.JPG")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLocalStore_Remove(t *testing.T) {
	s, mem := newTestStore(1024)
	url, err := s.SaveAvatar(context.Background(), "emp-1", File{Name: "me.png", Body: strings.NewReader("img")})
	require.NoError(t, err)

	require.NoError(t, s.Remove(url))

	ok, _ := afero.Exists(mem, "/avatars/avatar-emp-1-1700000000123-42.png")
	assert.False(t, ok)
}

func TestLocalStore_Remove_RejectsForeignURL(t *testing.T) {
	s, _ := newTestStore(1024)

	assert.ErrorIs(t, s.Remove("/static/x.png"), ErrInvalidURL)
	assert.ErrorIs(t, s.Remove("/uploads/"), ErrInvalidURL)
	assert.ErrorIs(t, s.Remove("/uploads/../"), ErrInvalidURL)
}

func TestLocalStore_FileSystem(t *testing.T) {
	s, _ := newTestStore(1024)
	url, err := s.SaveUpload(context.Background(), File{Name: "note.txt", Body: strings.NewReader("contents")})
	require.NoError(t, err)

	srv := httptest.NewServer(http.StripPrefix("/uploads", http.FileServer(s.FileSystem())))
	defer srv.Close()

	resp, err := http.Get(srv.URL + url)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "contents", string(body))

	resp, err = http.Get(srv.URL + "/uploads/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/uploads/missing.txt")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestExtension(t *testing.T) {
	assert.Equal(t, ".png", extension("photo.png", nil))
	assert.Equal(t, ".png", extension("../../photo.png", nil))
	assert.Equal(t, ".txt", extension("weird.<script>", []byte("plain text")))
}
