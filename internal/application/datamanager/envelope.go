package datamanager

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Envelope is the persisted shape of every managed document.
type Envelope struct {
	SchemaVersion int             `json:"schema_version"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Data          json.RawMessage `json:"data"`
}

// Migration upgrades the data of a document by exactly one schema version.
type Migration func(data json.RawMessage) (json.RawMessage, error)

var ErrFutureSchema = errors.New("document written by a newer schema version")

// currentVersion is 1 when there are no migrations, so an empty migration
// list still produces versioned envelopes.
func currentVersion(migrations []Migration) int {
	if len(migrations) == 0 {
		return 1
	}
	return len(migrations)
}

// decodeEnvelope accepts both an envelope and a bare legacy document. A bare
// document is version 0.
func decodeEnvelope(raw []byte) (Envelope, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var probe map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &probe); err != nil {
			return Envelope{}, err
		}
		if _, ok := probe["schema_version"]; ok {
			var env Envelope
			if err := json.Unmarshal(trimmed, &env); err != nil {
				return Envelope{}, err
			}
			return env, nil
		}
	}
	return Envelope{SchemaVersion: 0, Data: json.RawMessage(trimmed)}, nil
}

// upgrade runs migrations[from:] in order. It reports whether anything ran.
func upgrade(env Envelope, migrations []Migration) (Envelope, bool, error) {
	target := currentVersion(migrations)
	if env.SchemaVersion > target {
		return env, false, fmt.Errorf("%w: %d > %d", ErrFutureSchema, env.SchemaVersion, target)
	}

	migrated := false
	for v := env.SchemaVersion; v < target && v < len(migrations); v++ {
		data, err := migrations[v](env.Data)
		if err != nil {
			return env, false, fmt.Errorf("migrating from version %d: %w", v, err)
		}
		env.Data = data
		migrated = true
	}
	if env.SchemaVersion != target {
		env.SchemaVersion = target
		migrated = true
	}
	return env, migrated, nil
}

// SnakeCaseKeys is the version 0 -> 1 migration shared by every document:
// legacy documents used camelCase keys (readTime, positionId, teamMembers...).
func SnakeCaseKeys(data json.RawMessage) (json.RawMessage, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return json.Marshal(renameKeys(v))
}

func renameKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[toSnake(k)] = renameKeys(val)
		}
		return out
	case []any:
		for i := range t {
			t[i] = renameKeys(t[i])
		}
		return t
	default:
		return v
	}
}

func toSnake(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			// "linkedinURL" -> "linkedin_url", not "linkedin_u_r_l"
			prevLower := i > 0 && !unicode.IsUpper(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if i > 0 && (prevLower || nextLower) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
