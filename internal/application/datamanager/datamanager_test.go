package datamanager

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/planmoni-site/internal/domain/kvstore"
	"github.com/khoahotran/planmoni-site/pkg/apperror"
	"github.com/khoahotran/planmoni-site/pkg/logger"
)

type note struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Status   string   `json:"status"`
	ReadTime string   `json:"read_time"`
	Tags     []string `json:"tags"`
}

func (n note) GetID() string         { return n.ID }
func (n note) WithID(id string) note { n.ID = id; return n }
func (n note) Clone() note {
	n.Tags = append([]string(nil), n.Tags...)
	return n
}

type fakeStore struct {
	mu       sync.Mutex
	docs     map[string][]byte
	failSave bool
	saves    int
}

func newFakeStore() *fakeStore { return &fakeStore{docs: map[string][]byte{}} }

func (s *fakeStore) Load(_ context.Context, key string) (kvstore.LoadResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.docs[key]
	if !ok {
		return kvstore.Empty(), nil
	}
	return kvstore.Classify(v), nil
}

func (s *fakeStore) Save(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failSave {
		return errors.New("quota exceeded")
	}
	s.saves++
	s.docs[key] = append([]byte(nil), value...)
	return nil
}

func (s *fakeStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, key)
	return nil
}

func (s *fakeStore) Keys(context.Context) ([]string, error) { return nil, nil }

type stepClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *stepClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func seedNotes() []note {
	return []note{
		{ID: "1", Title: "first", Status: "published", Tags: []string{"a"}},
		{ID: "2", Title: "second", Status: "published"},
		{ID: "3", Title: "third", Status: "draft"},
	}
}

func newNotes(t *testing.T, store kvstore.Store, clock *stepClock) *Collection[note] {
	t.Helper()
	c, err := NewCollection(context.Background(), store, logger.NewNopLogger(), CollectionOptions[note]{
		Key:  "notes",
		Seed: seedNotes,
		Now:  clock.Now,
	})
	require.NoError(t, err)
	return c
}

func TestCollection_SeedsOnFirstRun(t *testing.T) {
	store := newFakeStore()
	c := newNotes(t, store, &stepClock{t: time.UnixMilli(1000)})

	assert.Equal(t, LoadSeeded, c.Status())
	assert.Len(t, c.All(), 3)

	var env Envelope
	require.NoError(t, json.Unmarshal(store.docs["notes"], &env))
	assert.Equal(t, 1, env.SchemaVersion)
}

func TestCollection_RoundTripAndReload(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	clock := &stepClock{t: time.UnixMilli(1_700_000_000_000)}
	c := newNotes(t, store, clock)

	added, err := c.Add(ctx, note{Title: "fourth", Status: "draft", Tags: []string{"x"}})
	require.NoError(t, err)
	assert.Equal(t, "1700000000000", added.ID)

	got, ok := c.GetByID(added.ID)
	require.True(t, ok)
	assert.Equal(t, added, got)

	reloaded := newNotes(t, store, clock)
	assert.Equal(t, LoadExisting, reloaded.Status())
	assert.Equal(t, c.All(), reloaded.All())
}

func TestCollection_AddPrependsAndAppends(t *testing.T) {
	ctx := context.Background()
	clock := &stepClock{t: time.UnixMilli(5000)}

	c := newNotes(t, newFakeStore(), clock)
	added, err := c.Add(ctx, note{Title: "new"})
	require.NoError(t, err)
	assert.Equal(t, added.ID, c.All()[0].ID)

	appended, err := NewCollection(ctx, newFakeStore(), logger.NewNopLogger(), CollectionOptions[note]{
		Key: "notes", Seed: seedNotes, Append: true, Now: clock.Now,
	})
	require.NoError(t, err)
	added, err = appended.Add(ctx, note{Title: "new"})
	require.NoError(t, err)
	all := appended.All()
	assert.Equal(t, added.ID, all[len(all)-1].ID)
}

func TestCollection_LimitDropsOldest(t *testing.T) {
	ctx := context.Background()
	c, err := NewCollection(ctx, newFakeStore(), logger.NewNopLogger(), CollectionOptions[note]{
		Key: "activity", Limit: 2,
	})
	require.NoError(t, err)

	for _, title := range []string{"a", "b", "c"} {
		_, err := c.Add(ctx, note{Title: title})
		require.NoError(t, err)
	}
	all := c.All()
	require.Len(t, all, 2)
	assert.Equal(t, "c", all[0].Title)
	assert.Equal(t, "b", all[1].Title)
}

func TestCollection_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	c := newNotes(t, newFakeStore(), &stepClock{t: time.UnixMilli(1)})

	removed, err := c.Delete(ctx, "2")
	require.NoError(t, err)
	assert.True(t, removed)
	before := c.All()

	removed, err = c.Delete(ctx, "2")
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, before, c.All())
}

func TestCollection_UpdateChangesOnlyPatchedField(t *testing.T) {
	ctx := context.Background()
	c := newNotes(t, newFakeStore(), &stepClock{t: time.UnixMilli(1)})
	before, _ := c.GetByID("1")

	updated, found, err := c.Update(ctx, "1", func(n *note) { n.Status = "draft" })
	require.NoError(t, err)
	require.True(t, found)

	expected := before
	expected.Status = "draft"
	assert.Equal(t, expected, updated)

	_, found, err = c.Update(ctx, "missing", func(n *note) { n.Status = "draft" })
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCollection_UpdateKeepsID(t *testing.T) {
	c := newNotes(t, newFakeStore(), &stepClock{t: time.UnixMilli(1)})

	updated, _, err := c.Update(context.Background(), "1", func(n *note) { n.ID = "hijack" })
	require.NoError(t, err)
	assert.Equal(t, "1", updated.ID)
}

func TestCollection_IDsAreUnique(t *testing.T) {
	ctx := context.Background()
	clock := &stepClock{t: time.UnixMilli(42_000)}
	c := newNotes(t, newFakeStore(), clock)

	a, err := c.Add(ctx, note{Title: "a"})
	require.NoError(t, err)
	clock.Advance(time.Millisecond)
	b, err := c.Add(ctx, note{Title: "b"})
	require.NoError(t, err)
	// same millisecond
	d, err := c.Add(ctx, note{Title: "d"})
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEqual(t, b.ID, d.ID)
	assert.Equal(t, "42002", d.ID)
}

func TestCollection_FilterExact(t *testing.T) {
	c := newNotes(t, newFakeStore(), &stepClock{t: time.UnixMilli(1)})

	published := c.Filter(func(n note) bool { return n.Status == "published" })
	require.Len(t, published, 2)
	for _, n := range published {
		assert.Equal(t, "published", n.Status)
	}
	assert.Empty(t, c.Filter(func(n note) bool { return n.Status == "scheduled" }))
}

func TestCollection_DefensiveCopy(t *testing.T) {
	c := newNotes(t, newFakeStore(), &stepClock{t: time.UnixMilli(1)})

	all := c.All()
	all[0].Title = "mutated"
	all[0].Tags[0] = "mutated"
	_ = append(all, note{ID: "99"})

	fresh := c.All()
	assert.Equal(t, "first", fresh[0].Title)
	assert.Equal(t, []string{"a"}, fresh[0].Tags)
	assert.Len(t, fresh, 3)
}

func TestCollection_SaveFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	c := newNotes(t, store, &stepClock{t: time.UnixMilli(1)})
	before := c.All()

	store.failSave = true

	_, err := c.Add(ctx, note{Title: "lost"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrPersistence))

	_, _, err = c.Update(ctx, "1", func(n *note) { n.Title = "lost" })
	assert.True(t, errors.Is(err, apperror.ErrPersistence))

	_, err = c.Delete(ctx, "1")
	assert.True(t, errors.Is(err, apperror.ErrPersistence))

	assert.Equal(t, before, c.All())
}

func TestCollection_CorruptDocumentIsQuarantined(t *testing.T) {
	store := newFakeStore()
	store.docs["notes"] = []byte(`[{"id":`)

	c := newNotes(t, store, &stepClock{t: time.UnixMilli(1)})

	assert.Equal(t, LoadRecoveredCorrupt, c.Status())
	assert.Len(t, c.All(), 3)
	assert.Equal(t, `[{"id":`, string(store.docs["notes"+CorruptSuffix]))
}

func TestCollection_WrongShapeIsCorrupt(t *testing.T) {
	store := newFakeStore()
	store.docs["notes"] = []byte(`{"schema_version":1,"data":{"not":"a list"}}`)

	c := newNotes(t, store, &stepClock{t: time.UnixMilli(1)})
	assert.Equal(t, LoadRecoveredCorrupt, c.Status())
	assert.Contains(t, string(store.docs["notes"+CorruptSuffix]), "not")
}

func TestCollection_FutureSchemaIsCorrupt(t *testing.T) {
	store := newFakeStore()
	store.docs["notes"] = []byte(`{"schema_version":7,"data":[]}`)

	c := newNotes(t, store, &stepClock{t: time.UnixMilli(1)})
	assert.Equal(t, LoadRecoveredCorrupt, c.Status())
}

func TestCollection_MigratesLegacyDocument(t *testing.T) {
	store := newFakeStore()
	store.docs["notes"] = []byte(`[{"id":"7","title":"legacy","status":"draft","readTime":"5 min read"}]`)

	c := newNotes(t, store, &stepClock{t: time.UnixMilli(1)})

	assert.Equal(t, LoadExisting, c.Status())
	got, ok := c.GetByID("7")
	require.True(t, ok)
	assert.Equal(t, "5 min read", got.ReadTime)

	var env Envelope
	require.NoError(t, json.Unmarshal(store.docs["notes"], &env))
	assert.Equal(t, 1, env.SchemaVersion)
	assert.True(t, strings.Contains(string(env.Data), `"read_time"`))
}

func TestToSnake(t *testing.T) {
	cases := map[string]string{
		"readTime":       "read_time",
		"positionId":     "position_id",
		"teamMembers":    "team_members",
		"linkedinUrl":    "linkedin_url",
		"resumeFileName": "resume_file_name",
		"id":             "id",
		"lastUpdated":    "last_updated",
	}
	for in, want := range cases {
		assert.Equal(t, want, toSnake(in), in)
	}
}

type profile struct {
	Mission string   `json:"mission_text"`
	Members []string `json:"members"`
}

func (p profile) Clone() profile {
	p.Members = append([]string(nil), p.Members...)
	return p
}

func TestDocument_UpdateAndReload(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	opts := DocumentOptions[profile]{
		Key:  "profile",
		Seed: func() profile { return profile{Mission: "seed", Members: []string{"a"}} },
	}

	d, err := NewDocument(ctx, store, logger.NewNopLogger(), opts)
	require.NoError(t, err)
	assert.Equal(t, LoadSeeded, d.Status())

	_, err = d.Update(ctx, func(p *profile) error {
		p.Members = append(p.Members, "b")
		return nil
	})
	require.NoError(t, err)

	got := d.Get()
	got.Members[0] = "mutated"

	reloaded, err := NewDocument(ctx, store, logger.NewNopLogger(), opts)
	require.NoError(t, err)
	assert.Equal(t, LoadExisting, reloaded.Status())
	assert.Equal(t, []string{"a", "b"}, reloaded.Get().Members)
}

func TestDocument_MutateErrorLeavesValue(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	d, err := NewDocument(ctx, store, logger.NewNopLogger(), DocumentOptions[profile]{
		Key:  "profile",
		Seed: func() profile { return profile{Mission: "seed"} },
	})
	require.NoError(t, err)
	saves := store.saves

	boom := errors.New("boom")
	_, err = d.Update(ctx, func(p *profile) error {
		p.Mission = "changed"
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "seed", d.Get().Mission)
	assert.Equal(t, saves, store.saves)
}

func TestDocument_MigratesLegacyObject(t *testing.T) {
	store := newFakeStore()
	store.docs["profile"] = []byte(`{"missionText":"old mission","members":["x"]}`)

	d, err := NewDocument(context.Background(), store, logger.NewNopLogger(), DocumentOptions[profile]{Key: "profile"})
	require.NoError(t, err)
	assert.Equal(t, "old mission", d.Get().Mission)
}
