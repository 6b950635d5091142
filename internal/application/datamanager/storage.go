// Package datamanager holds the generic document managers every content
// entity is built on: a Collection for lists of records and a Document for
// singletons. Both keep the whole document in memory and rewrite it to the
// key-value store on every mutation.
package datamanager

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/khoahotran/planmoni-site/internal/domain/kvstore"
	"github.com/khoahotran/planmoni-site/pkg/apperror"
	"github.com/khoahotran/planmoni-site/pkg/logger"
)

// LoadStatus tells how a manager obtained its initial state.
type LoadStatus string

const (
	LoadExisting         LoadStatus = "existing"
	LoadSeeded           LoadStatus = "seeded"
	LoadRecoveredCorrupt LoadStatus = "recovered-corrupt"
)

// CorruptSuffix is appended to a key to keep the unreadable bytes around
// after defaults were reseeded.
const CorruptSuffix = ".corrupt"

type persister struct {
	store      kvstore.Store
	key        string
	migrations []Migration
	now        func() time.Time
	logger     logger.Logger
}

// hydrate hands the stored payload to decode. Any status other than
// LoadExisting means the caller has to seed defaults.
func (p *persister) hydrate(ctx context.Context, decode func(json.RawMessage) error) (LoadStatus, error) {
	res, err := p.store.Load(ctx, p.key)
	if err != nil {
		return "", fmt.Errorf("%w: loading %s: %v", kvstore.ErrStoreUnavailable, p.key, err)
	}

	switch res.Status {
	case kvstore.StatusEmpty:
		return LoadSeeded, nil
	case kvstore.StatusCorrupt:
		p.quarantine(ctx, res.Value, "invalid json")
		return LoadRecoveredCorrupt, nil
	}

	env, err := decodeEnvelope(res.Value)
	if err != nil {
		p.quarantine(ctx, res.Value, err.Error())
		return LoadRecoveredCorrupt, nil
	}
	env, migrated, err := upgrade(env, p.migrations)
	if err != nil {
		p.quarantine(ctx, res.Value, err.Error())
		return LoadRecoveredCorrupt, nil
	}
	if err := decode(env.Data); err != nil {
		p.quarantine(ctx, res.Value, err.Error())
		return LoadRecoveredCorrupt, nil
	}
	if migrated {
		p.logger.Info("Migrated document schema",
			zap.String("key", p.key), zap.Int("schema_version", env.SchemaVersion))
		if err := p.write(ctx, env.Data); err != nil {
			// the upgraded data is still usable in memory; next save retries
			p.logger.Error("Failed to persist migrated document", err, zap.String("key", p.key))
		}
	}
	return LoadExisting, nil
}

func (p *persister) quarantine(ctx context.Context, raw []byte, reason string) {
	p.logger.Warn("Stored document is unreadable, reseeding defaults",
		zap.String("key", p.key), zap.String("reason", reason), zap.String("backup_key", p.key+CorruptSuffix))
	if err := p.store.Save(ctx, p.key+CorruptSuffix, raw); err != nil {
		p.logger.Error("Failed to keep corrupt document", err, zap.String("key", p.key))
	}
}

func (p *persister) write(ctx context.Context, data json.RawMessage) error {
	env := Envelope{
		SchemaVersion: currentVersion(p.migrations),
		UpdatedAt:     p.now().UTC(),
		Data:          data,
	}
	raw, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encoding envelope: %w", err)
	}
	return p.store.Save(ctx, p.key, raw)
}

// save encodes v and writes it, mapping every failure to a persistence error.
func (p *persister) save(ctx context.Context, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		p.logger.Error("Failed to encode document", err, zap.String("key", p.key))
		return apperror.NewPersistence(p.key, err)
	}
	if err := p.write(ctx, data); err != nil {
		p.logger.Error("Failed to save document", err, zap.String("key", p.key))
		return apperror.NewPersistence(p.key, err)
	}
	return nil
}
