package storage

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"math/rand/v2"
	"net/http"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"go-hr-portal/internal/shared/apperror"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const AvatarDir = "avatars"

var (
	ErrFileTooLarge = apperror.New(
		apperror.CodeInvalidInput,
		"file exceeds the upload size limit",
		http.StatusBadRequest,
	)
	ErrInvalidURL = apperror.New(
		apperror.CodeInvalidInput,
		"file url is outside the upload root",
		http.StatusBadRequest,
	)
)

var safeExt = regexp.MustCompile(`^\.[A-Za-z0-9]{1,16}$`)

// File is an incoming upload detached from its transport.
type File struct {
	Name string // client supplied file name, used only for its extension
	Body io.Reader
}

// LocalStore keeps uploads in a single directory tree. The same size policy
// applies to generic uploads and avatars.
type LocalStore struct {
	fs        afero.Fs
	urlPrefix string
	maxBytes  int64
	now       func() time.Time
	random    func() int
	logger    *zap.Logger
}

// NewLocalStore stores files in root, which should already be confined to the
// upload directory (see NewOSStore).
func NewLocalStore(root afero.Fs, urlPrefix string, maxBytes int64, logger ...*zap.Logger) *LocalStore {
	l := zap.L().Named("storage.local")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("storage.local")
	}
	return &LocalStore{
		fs:        root,
		urlPrefix: strings.TrimRight(urlPrefix, "/"),
		maxBytes:  maxBytes,
		now:       time.Now,
		random:    func() int { return rand.IntN(1_000_000_000) },
		logger:    l,
	}
}

// NewOSStore roots the store at dir on the local disk.
func NewOSStore(dir, urlPrefix string, maxBytes int64, logger ...*zap.Logger) (*LocalStore, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve upload dir: %w", err)
	}
	return NewLocalStore(afero.NewBasePathFs(afero.NewOsFs(), abs), urlPrefix, maxBytes, logger...), nil
}

// SaveUpload stores a generic upload as <millis>-<random><ext>.
func (s *LocalStore) SaveUpload(ctx context.Context, f File) (string, error) {
	data, err := s.read(ctx, f.Body)
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("%d-%d%s", s.now().UnixMilli(), s.random(), extension(f.Name, data))
	return s.write("", name, data)
}

// SaveAvatar stores an avatar as avatars/avatar-<employee>-<millis>-<random><ext>.
func (s *LocalStore) SaveAvatar(ctx context.Context, employeeID string, f File) (string, error) {
	data, err := s.read(ctx, f.Body)
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("avatar-%s-%d-%d%s", employeeID, s.now().UnixMilli(), s.random(), extension(f.Name, data))
	return s.write(AvatarDir, name, data)
}

// Remove deletes the file a URL returned by this store points at.
func (s *LocalStore) Remove(url string) error {
	rel, ok := strings.CutPrefix(url, s.urlPrefix+"/")
	if !ok {
		return ErrInvalidURL
	}
	clean := path.Clean("/" + rel)
	if clean == "/" {
		return ErrInvalidURL
	}
	if err := s.fs.Remove(clean); err != nil {
		return fmt.Errorf("remove %s: %w", clean, err)
	}
	s.logger.Debug("file removed", zap.String("path", clean))
	return nil
}

// FileSystem serves stored files. Directories report not-found so the upload
// tree cannot be listed.
func (s *LocalStore) FileSystem() http.FileSystem {
	return filesOnly{afero.NewHttpFs(s.fs)}
}

func (s *LocalStore) read(ctx context.Context, body io.Reader) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := io.ReadAll(io.LimitReader(body, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		s.logger.Warn("upload rejected: too large", zap.Int64("limit", s.maxBytes))
		return nil, ErrFileTooLarge
	}
	return data, nil
}

func (s *LocalStore) write(dir, name string, data []byte) (string, error) {
	dirPath := "/" + dir
	if err := s.fs.MkdirAll(dirPath, 0o755); err != nil {
		s.logger.Error("create upload dir failed", zap.String("dir", dirPath), zap.Error(err))
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	fullPath := path.Join(dirPath, name)
	if err := afero.WriteFile(s.fs, fullPath, data, 0o644); err != nil {
		s.logger.Error("write upload failed", zap.String("path", fullPath), zap.Error(err))
		return "", fmt.Errorf("write upload: %w", err)
	}

	s.logger.Debug("file saved", zap.String("path", fullPath), zap.Int("size", len(data)))
	return s.urlPrefix + fullPath, nil
}

// extension keeps the client's extension when it looks sane and otherwise
// falls back to the sniffed content type.
func extension(original string, data []byte) string {
	ext := filepath.Ext(filepath.Base(original))
	if safeExt.MatchString(ext) {
		return ext
	}
	return mimetype.Detect(data).Extension()
}

type filesOnly struct {
	fs http.FileSystem
}

func (f filesOnly) Open(name string) (http.File, error) {
	file, err := f.fs.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if info.IsDir() {
		file.Close()
		return nil, fs.ErrNotExist
	}
	return file, nil
}
