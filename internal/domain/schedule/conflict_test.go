package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(id string, resources []string, iv Interval, cancelled bool) Entry {
	return Entry{ID: id, ResourceIDs: resources, Interval: iv, Cancelled: cancelled}
}

func TestScanFindsOverlap(t *testing.T) {
	candidate := Candidate{
		ResourceIDs: []string{"venue-1"},
		Interval:    interval("2026-03-10", "2026-03-10", "09:00", "11:00"),
	}
	entries := []Entry{
		entry("r1", []string{"venue-1"}, interval("2026-03-10", "2026-03-10", "10:00", "12:00"), false),
	}

	report := Scan(candidate, entries)
	require.False(t, report.Empty())
	assert.Equal(t, []string{"venue-1"}, report.ResourceIDs())
	assert.Equal(t, []string{"r1"}, report.Conflicts["venue-1"])
}

func TestScanSkipsCancelled(t *testing.T) {
	candidate := Candidate{
		ResourceIDs: []string{"venue-1"},
		Interval:    interval("2026-03-10", "2026-03-10", "09:00", "11:00"),
	}
	entries := []Entry{
		entry("r1", []string{"venue-1"}, interval("2026-03-10", "2026-03-10", "09:00", "11:00"), true),
	}

	assert.True(t, Scan(candidate, entries).Empty())
}

func TestScanSkipsSelf(t *testing.T) {
	iv := interval("2026-03-10", "2026-03-10", "09:00", "11:00")
	candidate := Candidate{ID: "r1", ResourceIDs: []string{"venue-1"}, Interval: iv}
	entries := []Entry{
		entry("r1", []string{"venue-1"}, iv, false),
	}

	assert.True(t, Scan(candidate, entries).Empty())

	// A create has no id yet, so nothing is treated as self even when an
	// entry happens to carry an empty id too.
	anonymous := Candidate{ResourceIDs: []string{"venue-1"}, Interval: iv}
	withEmptyID := []Entry{entry("", []string{"venue-1"}, iv, false)}
	assert.False(t, Scan(anonymous, withEmptyID).Empty())
}

func TestScanSkipsDisjointResources(t *testing.T) {
	candidate := Candidate{
		ResourceIDs: []string{"venue-1"},
		Interval:    interval("2026-03-10", "2026-03-10", "09:00", "11:00"),
	}
	entries := []Entry{
		entry("r1", []string{"venue-2"}, interval("2026-03-10", "2026-03-10", "09:00", "11:00"), false),
	}

	assert.True(t, Scan(candidate, entries).Empty())
}

func TestScanSharedSubsetOfResources(t *testing.T) {
	candidate := Candidate{
		ResourceIDs: []string{"item-a", "item-b"},
		Interval:    interval("2026-03-10", "2026-03-10", "09:00", "11:00"),
	}
	entries := []Entry{
		entry("b1", []string{"item-b", "item-c"}, interval("2026-03-10", "2026-03-10", "10:00", "12:00"), false),
	}

	report := Scan(candidate, entries)
	require.False(t, report.Empty())
	assert.Equal(t, []string{"item-b"}, report.ResourceIDs())
}

func TestScanCollectsAllConflicts(t *testing.T) {
	candidate := Candidate{
		ResourceIDs: []string{"item-a", "item-b"},
		Interval:    interval("2026-03-10", "2026-03-10", "09:00", "17:00"),
	}
	entries := []Entry{
		entry("b1", []string{"item-a"}, interval("2026-03-10", "2026-03-10", "09:00", "10:00"), false),
		entry("b2", []string{"item-a"}, interval("2026-03-10", "2026-03-10", "10:00", "11:00"), false),
		entry("b3", []string{"item-b"}, interval("2026-03-10", "2026-03-10", "16:00", "18:00"), false),
		entry("b4", []string{"item-b"}, interval("2026-03-10", "2026-03-10", "17:00", "18:00"), false),
	}

	report := Scan(candidate, entries)
	assert.Equal(t, []string{"item-a", "item-b"}, report.ResourceIDs())
	assert.ElementsMatch(t, []string{"b1", "b2"}, report.Conflicts["item-a"])
	assert.Equal(t, []string{"b3"}, report.Conflicts["item-b"])
}

func TestScanDuplicateResourceIDsCountedOnce(t *testing.T) {
	candidate := Candidate{
		ResourceIDs: []string{"item-a"},
		Interval:    interval("2026-03-10", "2026-03-10", "09:00", "11:00"),
	}
	entries := []Entry{
		entry("b1", []string{"item-a", "item-a"}, interval("2026-03-10", "2026-03-10", "09:00", "11:00"), false),
	}

	report := Scan(candidate, entries)
	assert.Equal(t, []string{"b1"}, report.Conflicts["item-a"])
}

func TestScanEmptyInputs(t *testing.T) {
	candidate := Candidate{
		ResourceIDs: []string{"venue-1"},
		Interval:    interval("2026-03-10", "2026-03-10", "09:00", "11:00"),
	}
	assert.True(t, Scan(candidate, nil).Empty())
	assert.Nil(t, Scan(candidate, nil).ResourceIDs())
}

func TestCandidateValidate(t *testing.T) {
	valid := Candidate{
		ResourceIDs: []string{"venue-1"},
		Interval:    interval("2026-03-10", "2026-03-10", "09:00", "11:00"),
	}
	require.NoError(t, valid.Validate())

	noResources := valid
	noResources.ResourceIDs = nil
	assert.ErrorIs(t, noResources.Validate(), ErrNoResources)

	badInterval := valid
	badInterval.Interval = interval("2026-03-10", "2026-03-10", "11:00", "09:00")
	assert.ErrorIs(t, badInterval.Validate(), ErrTimeRangeEmpty)
}
