package titleindex

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsuggest/internal/core/domain"
)

func scenarioSnapshot() map[string][]domain.Document {
	return map[string][]domain.Document{
		"U1": {
			{ID: "1", OwnerID: "U1", Title: "Annual Report"},
			{ID: "2", OwnerID: "U1", Title: "Annual Budget"},
			{ID: "3", OwnerID: "U1", Title: "Monthly Report"},
		},
		"U2": {
			{ID: "4", OwnerID: "U2", Title: "Annual Review"},
		},
		"U3": nil,
	}
}

func TestNewRegistry_EmptyGeneration(t *testing.T) {
	reg := NewRegistry()

	stats := reg.Stats()
	assert.Zero(t, stats.Generation)
	assert.Zero(t, stats.Owners)
	assert.Empty(t, reg.Owners())

	_, err := reg.Search("U1", "")
	assert.ErrorIs(t, err, domain.ErrOwnerNotFound)
}

func TestRegistry_Search_Scenario(t *testing.T) {
	reg := NewRegistry()
	reg.Build(scenarioSnapshot())

	got, err := reg.Search("U1", "annual")
	require.NoError(t, err)
	assert.Equal(t, []string{"Annual Budget", "Annual Report"}, titles(got))

	got, err = reg.Search("U1", "monthly r")
	require.NoError(t, err)
	assert.Equal(t, []string{"Monthly Report"}, titles(got))

	got, err = reg.Search("U1", "xyz")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = reg.Search("U1", "")
	require.NoError(t, err)
	assert.Len(t, got, 3)

	_, err = reg.Search("unknown-user", "a")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrOwnerNotFound))
	assert.Contains(t, err.Error(), "unknown-user")
}

func TestRegistry_Search_OwnersAreIsolated(t *testing.T) {
	reg := NewRegistry()
	reg.Build(scenarioSnapshot())

	got, err := reg.Search("U2", "annual")
	require.NoError(t, err)
	assert.Equal(t, []string{"Annual Review"}, titles(got))
}

func TestRegistry_Search_OwnerWithoutDocuments(t *testing.T) {
	reg := NewRegistry()
	reg.Build(scenarioSnapshot())

	got, err := reg.Search("U3", "")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRegistry_Search_UnknownOwnerForAnyPrefix(t *testing.T) {
	reg := NewRegistry()
	reg.Build(scenarioSnapshot())

	for _, prefix := range []string{"", "a", "annual", "   ", "zzz"} {
		_, err := reg.Search("nobody", prefix)
		assert.ErrorIs(t, err, domain.ErrOwnerNotFound, "prefix %q", prefix)
	}
}

func TestRegistry_Search_EveryTitleFindsItsDocument(t *testing.T) {
	reg := NewRegistry()
	snap := scenarioSnapshot()
	reg.Build(snap)

	for owner, docs := range snap {
		for _, d := range docs {
			got, err := reg.Search(owner, Normalize(d.Title))
			require.NoError(t, err)
			ids := make([]string, len(got))
			for i, g := range got {
				ids[i] = g.ID
			}
			assert.Contains(t, ids, d.ID)
		}
	}
}

func TestRegistry_Query_Limit(t *testing.T) {
	reg := NewRegistry()
	reg.Build(scenarioSnapshot())

	res, err := reg.Query("U1", "", 2)
	require.NoError(t, err)
	assert.Len(t, res.Documents, 2)
	assert.Equal(t, uint64(1), res.Generation)
}

func TestRegistry_Build_Stats(t *testing.T) {
	reg := NewRegistry()
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	reg.now = func() time.Time {
		clock = clock.Add(time.Millisecond)
		return clock
	}

	snap := scenarioSnapshot()
	snap["U1"] = append(snap["U1"],
		domain.Document{ID: "5", OwnerID: "U1", Title: "annual report"},
		domain.Document{ID: "6", OwnerID: "U1", Title: "  "},
	)

	stats := reg.Build(snap)

	assert.Equal(t, uint64(1), stats.Generation)
	assert.Equal(t, 3, stats.Owners)
	assert.Equal(t, 4, stats.Documents)
	assert.Equal(t, 1, stats.Overwritten)
	assert.Equal(t, 1, stats.Skipped)
	assert.Greater(t, stats.Nodes, 3)
	assert.Equal(t, time.Millisecond, stats.Duration)
	assert.Equal(t, stats, reg.Stats())
}

func TestRegistry_Build_DuplicateTitleLastWriteWins(t *testing.T) {
	reg := NewRegistry()
	reg.Build(map[string][]domain.Document{
		"U1": {
			{ID: "old", OwnerID: "U1", Title: "Report"},
			{ID: "new", OwnerID: "U1", Title: "REPORT"},
		},
	})

	got, err := reg.Search("U1", "report")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].ID)
}

func TestRegistry_Build_ReplacesWholesale(t *testing.T) {
	reg := NewRegistry()
	reg.Build(scenarioSnapshot())

	before, err := reg.Search("U1", "")
	require.NoError(t, err)

	stats := reg.Build(map[string][]domain.Document{
		"U9": {{ID: "9", OwnerID: "U9", Title: "Fresh"}},
	})
	assert.Equal(t, uint64(2), stats.Generation)

	_, err = reg.Search("U1", "")
	assert.ErrorIs(t, err, domain.ErrOwnerNotFound, "owners absent from the new snapshot disappear")
	assert.Len(t, before, 3, "results already returned are unaffected")

	assert.Equal(t, []string{"U9"}, reg.Owners())
	assert.True(t, reg.Has("U9"))
	assert.False(t, reg.Has("U1"))
}

func TestRegistry_Owners_Sorted(t *testing.T) {
	reg := NewRegistry()
	reg.Build(scenarioSnapshot())

	assert.Equal(t, []string{"U1", "U2", "U3"}, reg.Owners())
}

// TestRegistry_ConcurrentSearchDuringRebuild checks that every reader sees a
// whole generation: either the old snapshot or the new one, never a mix.
func TestRegistry_ConcurrentSearchDuringRebuild(t *testing.T) {
	snapA := map[string][]domain.Document{"U1": {
		{ID: "a1", OwnerID: "U1", Title: "alpha one"},
		{ID: "a2", OwnerID: "U1", Title: "alpha two"},
	}}
	snapB := map[string][]domain.Document{"U1": {
		{ID: "b1", OwnerID: "U1", Title: "alpha three"},
		{ID: "b2", OwnerID: "U1", Title: "alpha four"},
		{ID: "b3", OwnerID: "U1", Title: "alpha five"},
	}}

	reg := NewRegistry()
	reg.Build(snapA)

	stop := make(chan struct{})
	var wg sync.WaitGroup
	errs := make(chan error, 8)

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				res, err := reg.Query("U1", "alpha", 0)
				if err != nil {
					errs <- err
					return
				}
				prefix := res.Documents[0].ID[:1]
				for _, d := range res.Documents {
					if d.ID[:1] != prefix {
						errs <- fmt.Errorf("generation %d mixed snapshots: %v", res.Generation, titles(res.Documents))
						return
					}
				}
				want := 2
				if prefix == "b" {
					want = 3
				}
				if len(res.Documents) != want {
					errs <- fmt.Errorf("generation %d returned %d documents, want %d", res.Generation, len(res.Documents), want)
					return
				}
			}
		}()
	}

	for i := 0; i < 200; i++ {
		if i%2 == 0 {
			reg.Build(snapB)
		} else {
			reg.Build(snapA)
		}
	}
	close(stop)
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
	assert.Equal(t, uint64(201), reg.Stats().Generation)
}
