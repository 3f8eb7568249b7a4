// Package directory implements the filter/sort engine behind the creators,
// brands and campaigns listing screens. It operates on in-memory snapshots
// fetched by the repositories; every filter dimension is AND'd against the
// others while selections within a dimension are OR'd.
package directory

import (
	"sort"
	"strings"
	"time"

	"github.com/creator-marketplace/backend/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort keys
const (
	SortNewest        = "newest"
	SortOldest        = "oldest"
	SortFollowers     = "followers"
	SortHighestPaying = "highest-paying"
	SortLowestPaying  = "lowest-paying"
	SortAlphabetical  = "alphabetical"
	SortEngagement    = "engagement"
)

// FollowerRange is a [Min, Max] follower bucket; a nil Max is unbounded.
type FollowerRange struct {
	Label string `json:"label"`
	Min   int    `json:"min"`
	Max   *int   `json:"max,omitempty"`
}

func intPtr(n int) *int { return &n }

// FollowerRanges are the buckets offered by the directory sidebar.
var FollowerRanges = []FollowerRange{
	{Label: "1K-10K", Min: 1000, Max: intPtr(10000)},
	{Label: "10K-50K", Min: 10000, Max: intPtr(50000)},
	{Label: "50K-100K", Min: 50000, Max: intPtr(100000)},
	{Label: "100K-500K", Min: 100000, Max: intPtr(500000)},
	{Label: "500K+", Min: 500000},
}

func followerRangeByLabel(label string) (FollowerRange, bool) {
	for _, r := range FollowerRanges {
		if r.Label == label {
			return r, true
		}
	}
	return FollowerRange{}, false
}

// Entry is what the engine needs to know about a listed record. Profiles and
// campaigns adapt themselves through ProfileEntry / CampaignEntry.
type Entry interface {
	SearchText() (primary, secondary string)
	EntryCategories() []string
	EntryFollowers() int
	EntryEngagementRate() float64
	EntryPlatforms() []string
	EntryName() string
	EntryAmount() float64
	EntryCreatedAt() time.Time
}

// Filter is the full filter specification for one directory render.
type Filter struct {
	Query            string
	Categories       []string
	FollowerRanges   []string // labels into FollowerRanges
	EngagementLevels []string // labels from models.EngagementLevel
	Platforms        []string
	SortKey          string
}

// Apply filters and sorts entries, returning a new slice. The input is never
// mutated and ties keep their prior relative order.
func Apply[E Entry](entries []E, f Filter) []E {
	out := make([]E, 0, len(entries))
	for _, e := range entries {
		if matches(e, f) {
			out = append(out, e)
		}
	}
	sortEntries(out, f.SortKey)
	return out
}

func matches(e Entry, f Filter) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		primary, secondary := e.SearchText()
		if !strings.Contains(strings.ToLower(primary), q) &&
			!strings.Contains(strings.ToLower(secondary), q) {
			return false
		}
	}

	if len(f.Categories) > 0 && !intersects(e.EntryCategories(), f.Categories) {
		return false
	}

	if len(f.FollowerRanges) > 0 {
		followers := e.EntryFollowers()
		hit := false
		for _, label := range f.FollowerRanges {
			r, ok := followerRangeByLabel(label)
			if !ok {
				continue
			}
			if followers >= r.Min && (r.Max == nil || followers <= *r.Max) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}

	if len(f.EngagementLevels) > 0 {
		level := models.EngagementLevel(e.EntryEngagementRate())
		hit := false
		for _, want := range f.EngagementLevels {
			if strings.EqualFold(want, level) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}

	if len(f.Platforms) > 0 && !intersects(e.EntryPlatforms(), f.Platforms) {
		return false
	}

	return true
}

func intersects(have, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if strings.EqualFold(h, w) {
				return true
			}
		}
	}
	return false
}

func sortEntries[E Entry](entries []E, key string) {
	switch key {
	case SortNewest, "":
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].EntryCreatedAt().After(entries[j].EntryCreatedAt())
		})
	case SortOldest:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].EntryCreatedAt().Before(entries[j].EntryCreatedAt())
		})
	case SortFollowers, SortHighestPaying:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].EntryAmount() > entries[j].EntryAmount()
		})
	case SortLowestPaying:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].EntryAmount() < entries[j].EntryAmount()
		})
	case SortAlphabetical:
		c := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(entries, func(i, j int) bool {
			return c.CompareString(entries[i].EntryName(), entries[j].EntryName()) < 0
		})
	case SortEngagement:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].EntryEngagementRate() > entries[j].EntryEngagementRate()
		})
	}
}

// ProfileEntry adapts a profile for the creators/brands directories.
type ProfileEntry struct {
	Profile *models.Profile
}

func (e ProfileEntry) SearchText() (string, string) { return e.Profile.Name, e.Profile.Bio }
func (e ProfileEntry) EntryCategories() []string    { return e.Profile.Categories }
func (e ProfileEntry) EntryFollowers() int          { return e.Profile.FollowersCount }
func (e ProfileEntry) EntryPlatforms() []string     { return e.Profile.Platforms }
func (e ProfileEntry) EntryName() string            { return e.Profile.Name }
func (e ProfileEntry) EntryAmount() float64         { return float64(e.Profile.FollowersCount) }
func (e ProfileEntry) EntryCreatedAt() time.Time    { return e.Profile.CreatedAt }

func (e ProfileEntry) EntryEngagementRate() float64 {
	return models.ProfileEngagementRate(e.Profile)
}

// CampaignEntry adapts a campaign for the campaigns board.
type CampaignEntry struct {
	Campaign *models.Campaign
}

func (e CampaignEntry) SearchText() (string, string) {
	return e.Campaign.Title, e.Campaign.Description
}
func (e CampaignEntry) EntryCategories() []string { return e.Campaign.PreferredNiches }
func (e CampaignEntry) EntryFollowers() int       { return 0 }
func (e CampaignEntry) EntryPlatforms() []string  { return e.Campaign.PreferredPlatforms }
func (e CampaignEntry) EntryName() string         { return e.Campaign.Title }
func (e CampaignEntry) EntryAmount() float64      { return e.Campaign.BudgetAmount() }
func (e CampaignEntry) EntryCreatedAt() time.Time { return e.Campaign.CreatedAt }

func (e CampaignEntry) EntryEngagementRate() float64 {
	return e.Campaign.MinEngagementRate
}

// WrapProfiles builds engine entries over a profile snapshot.
func WrapProfiles(profiles []models.Profile) []ProfileEntry {
	entries := make([]ProfileEntry, len(profiles))
	for i := range profiles {
		entries[i] = ProfileEntry{Profile: &profiles[i]}
	}
	return entries
}

// WrapCampaigns builds engine entries over a campaign snapshot.
func WrapCampaigns(campaigns []models.Campaign) []CampaignEntry {
	entries := make([]CampaignEntry, len(campaigns))
	for i := range campaigns {
		entries[i] = CampaignEntry{Campaign: &campaigns[i]}
	}
	return entries
}
