package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/khoahotran/planmoni-site/internal/application/service"
	"github.com/khoahotran/planmoni-site/internal/domain/kvstore"
	"github.com/khoahotran/planmoni-site/pkg/apperror"
	"github.com/khoahotran/planmoni-site/pkg/logger"
)

const uploadFolder = "planmoni/backups"

type Options struct {
	Dir    string
	Upload bool
}

// Snapshot is the on-disk backup format. Documents hold the decoded JSON of
// every key; unreadable values are kept verbatim as strings.
type Snapshot struct {
	CreatedAt time.Time      `yaml:"created_at"`
	Documents map[string]any `yaml:"documents"`
}

type Result struct {
	Path string   `json:"path"`
	URL  string   `json:"url,omitempty"`
	Keys []string `json:"keys"`
}

type BackupUseCase struct {
	store    kvstore.Store
	uploader service.Uploader
	opts     Options
	logger   logger.Logger
	now      func() time.Time
}

func NewBackupUseCase(store kvstore.Store, uploader service.Uploader, opts Options, log logger.Logger) *BackupUseCase {
	return &BackupUseCase{store: store, uploader: uploader, opts: opts, logger: log, now: time.Now}
}

func (uc *BackupUseCase) Execute(ctx context.Context) (*Result, error) {
	uc.logger.Info("Starting content backup...")

	keys, err := uc.store.Keys(ctx)
	if err != nil {
		return nil, apperror.NewInternal("failed to list stored documents", err)
	}

	snap := Snapshot{CreatedAt: uc.now().UTC(), Documents: make(map[string]any, len(keys))}
	for _, key := range keys {
		res, err := uc.store.Load(ctx, key)
		if err != nil {
			return nil, apperror.NewInternal(fmt.Sprintf("failed to read document %s", key), err)
		}
		switch res.Status {
		case kvstore.StatusFound:
			var doc any
			if err := json.Unmarshal(res.Value, &doc); err != nil {
				snap.Documents[key] = string(res.Value)
				continue
			}
			snap.Documents[key] = doc
		case kvstore.StatusCorrupt:
			snap.Documents[key] = string(res.Value)
		}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(snap); err != nil {
		return nil, apperror.NewInternal("failed to encode backup", err)
	}
	if err := enc.Close(); err != nil {
		return nil, apperror.NewInternal("failed to encode backup", err)
	}

	filename := fmt.Sprintf("backup-%s.yaml", snap.CreatedAt.Format("2006-01-02_15-04-05"))
	if err := os.MkdirAll(uc.opts.Dir, 0o755); err != nil {
		return nil, apperror.NewInternal("failed to create backup directory", err)
	}
	path := filepath.Join(uc.opts.Dir, filename)
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return nil, apperror.NewInternal("failed to write backup file", err)
	}

	result := &Result{Path: path, Keys: keys}
	if uc.opts.Upload && uc.uploader != nil {
		up, err := uc.uploader.Upload(ctx, bytes.NewReader(buf.Bytes()), service.UploadOptions{
			Folder:       uploadFolder,
			PublicID:     filename,
			ResourceType: "raw",
		})
		if err != nil {
			uc.logger.Error("Failed to upload backup", err, zap.String("path", path))
			return nil, apperror.NewInternal("failed to upload backup", err)
		}
		result.URL = up.URL
	}

	uc.logger.Info("Content backup completed",
		zap.String("path", path),
		zap.String("url", result.URL),
		zap.Int("documents", len(keys)),
	)
	return result, nil
}
