package directory

import (
	"testing"
	"time"

	"github.com/creator-marketplace/backend/internal/models"
)

func day(n int) time.Time {
	return time.Date(2026, 1, n, 0, 0, 0, 0, time.UTC)
}

func sampleProfiles() []models.Profile {
	return []models.Profile{
		{
			Name: "alice", Bio: "travel vlogs", FollowersCount: 5000,
			Categories: []string{"Travel Creator"}, Platforms: []string{"Instagram"},
			Engagement: &models.EngagementStats{Likes: [3]int{100, 120, 110}, Comments: [3]int{10, 8, 12}},
			CreatedAt:  day(1),
		},
		{
			Name: "Bob", Bio: "gaming streams", FollowersCount: 250000,
			Categories: []string{"Gaming Creator"}, Platforms: []string{"YouTube", "TikTok"},
			Engagement: &models.EngagementStats{Likes: [3]int{9000, 9500, 8500}, Comments: [3]int{900, 1100, 1000}},
			CreatedAt:  day(2),
		},
		{
			Name: "Ćira", Bio: "food photography", FollowersCount: 800000,
			Categories: []string{"Food Creator", "Photographer"}, Platforms: []string{"Instagram"},
			CreatedAt:  day(3),
		},
	}
}

func names(entries []ProfileEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Profile.Name
	}
	return out
}

func equalNames(got []string, want ...string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestApplySearch(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{"matches name case-insensitively", "ALICE", []string{"alice"}},
		{"matches bio", "photo", []string{"Ćira"}},
		{"blank query keeps all", "  ", []string{"Ćira", "Bob", "alice"}}, // newest first
		{"no hit", "podcasts", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(Apply(WrapProfiles(sampleProfiles()), Filter{Query: tt.query}))
			if !equalNames(got, tt.expected...) {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestApplyDimensionsAreANDed(t *testing.T) {
	f := Filter{
		Categories: []string{"Gaming Creator", "Food Creator"}, // OR within dimension
		Platforms:  []string{"Instagram"},                      // AND across dimensions
	}
	got := names(Apply(WrapProfiles(sampleProfiles()), f))
	if !equalNames(got, "Ćira") {
		t.Errorf("got %v, want [Ćira]", got)
	}
}

func TestApplyFollowerRanges(t *testing.T) {
	f := Filter{FollowerRanges: []string{"1K-10K", "500K+"}}
	got := names(Apply(WrapProfiles(sampleProfiles()), f))
	if !equalNames(got, "Ćira", "alice") {
		t.Errorf("got %v, want [Ćira alice]", got)
	}

	// Unknown labels select nothing rather than everything.
	got = names(Apply(WrapProfiles(sampleProfiles()), Filter{FollowerRanges: []string{"7K-9K"}}))
	if len(got) != 0 {
		t.Errorf("unknown range label matched %v", got)
	}
}

func TestApplyEngagementLevels(t *testing.T) {
	// alice: 2.4 (moderate); Bob: ~4 (high); Ćira: no stats (low).
	got := names(Apply(WrapProfiles(sampleProfiles()), Filter{EngagementLevels: []string{"moderate"}}))
	if !equalNames(got, "alice") {
		t.Errorf("got %v, want [alice]", got)
	}

	got = names(Apply(WrapProfiles(sampleProfiles()), Filter{EngagementLevels: []string{"low", "high"}}))
	if !equalNames(got, "Ćira", "Bob") {
		t.Errorf("got %v, want [Ćira Bob]", got)
	}
}

func TestApplyFilterOrderIrrelevant(t *testing.T) {
	a := Filter{Categories: []string{"Gaming Creator"}, Platforms: []string{"TikTok"}}
	b := Filter{Platforms: []string{"TikTok"}, Categories: []string{"Gaming Creator"}}

	gotA := names(Apply(WrapProfiles(sampleProfiles()), a))
	gotB := names(Apply(WrapProfiles(sampleProfiles()), b))
	if !equalNames(gotA, gotB...) {
		t.Errorf("filter order changed the result: %v vs %v", gotA, gotB)
	}
}

func TestSortKeys(t *testing.T) {
	tests := []struct {
		key      string
		expected []string
	}{
		{SortNewest, []string{"Ćira", "Bob", "alice"}},
		{"", []string{"Ćira", "Bob", "alice"}}, // default is newest
		{SortOldest, []string{"alice", "Bob", "Ćira"}},
		{SortFollowers, []string{"Ćira", "Bob", "alice"}},
		{SortEngagement, []string{"Bob", "alice", "Ćira"}},
		// Locale-aware, case-insensitive: alice < Bob < Ćira.
		{SortAlphabetical, []string{"alice", "Bob", "Ćira"}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got := names(Apply(WrapProfiles(sampleProfiles()), Filter{SortKey: tt.key}))
			if !equalNames(got, tt.expected...) {
				t.Errorf("sort %q: got %v, want %v", tt.key, got, tt.expected)
			}
		})
	}
}

func TestSortIsIdempotentAndStable(t *testing.T) {
	profiles := []models.Profile{
		{Name: "first", FollowersCount: 100, CreatedAt: day(1)},
		{Name: "second", FollowersCount: 100, CreatedAt: day(1)},
		{Name: "third", FollowersCount: 100, CreatedAt: day(1)},
	}

	once := names(Apply(WrapProfiles(profiles), Filter{SortKey: SortFollowers}))
	if !equalNames(once, "first", "second", "third") {
		t.Errorf("ties must keep input order, got %v", once)
	}

	entries := Apply(WrapProfiles(profiles), Filter{SortKey: SortFollowers})
	again := Apply(entries, Filter{SortKey: SortFollowers})
	if !equalNames(names(again), once...) {
		t.Errorf("second sort changed order: %v vs %v", names(again), once)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	profiles := sampleProfiles()
	entries := WrapProfiles(profiles)
	_ = Apply(entries, Filter{SortKey: SortAlphabetical})

	if entries[0].Profile.Name != "alice" || entries[2].Profile.Name != "Ćira" {
		t.Error("Apply must not reorder the input slice")
	}
}

func TestCampaignSortByBudget(t *testing.T) {
	campaigns := []models.Campaign{
		{Title: "cheap", MinBudget: 100, CreatedAt: day(1)},
		{Title: "rich", MinBudget: 500, MaxBudget: 5000, CreatedAt: day(2)},
		{Title: "mid", MaxBudget: 1000, CreatedAt: day(3)},
	}

	entries := Apply(WrapCampaigns(campaigns), Filter{SortKey: SortHighestPaying})
	got := make([]string, len(entries))
	for i, e := range entries {
		got[i] = e.Campaign.Title
	}
	if !equalNames(got, "rich", "mid", "cheap") {
		t.Errorf("highest-paying: got %v", got)
	}

	entries = Apply(WrapCampaigns(campaigns), Filter{SortKey: SortLowestPaying})
	for i, e := range entries {
		got[i] = e.Campaign.Title
	}
	if !equalNames(got, "cheap", "mid", "rich") {
		t.Errorf("lowest-paying: got %v", got)
	}
}
