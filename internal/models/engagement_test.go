package models

import (
	"math"
	"testing"
)

func TestEngagementRate(t *testing.T) {
	tests := []struct {
		name      string
		stats     EngagementStats
		followers int
		expected  float64
	}{
		{
			name:      "typical creator",
			stats:     EngagementStats{Likes: [3]int{100, 120, 110}, Comments: [3]int{10, 8, 12}},
			followers: 5000,
			expected:  2.4,
		},
		{
			name:      "zero followers yields zero",
			stats:     EngagementStats{Likes: [3]int{100, 120, 110}, Comments: [3]int{10, 8, 12}},
			followers: 0,
			expected:  0,
		},
		{
			name:      "negative followers yields zero",
			stats:     EngagementStats{Likes: [3]int{100, 100, 100}, Comments: [3]int{0, 0, 0}},
			followers: -10,
			expected:  0,
		},
		{
			name:      "no samples",
			stats:     EngagementStats{},
			followers: 1000,
			expected:  0,
		},
		{
			name:      "viral numbers",
			stats:     EngagementStats{Likes: [3]int{500, 600, 700}, Comments: [3]int{50, 60, 70}},
			followers: 10000,
			expected:  6.6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EngagementRate(tt.stats, tt.followers)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("EngagementRate() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestEngagementLevel(t *testing.T) {
	tests := []struct {
		rate     float64
		expected string
	}{
		{0, EngagementLow},
		{0.99, EngagementLow},
		{1, EngagementModerate}, // boundary is inclusive
		{2.4, EngagementModerate},
		{2.99, EngagementModerate},
		{3, EngagementHigh},
		{5.99, EngagementHigh},
		{6, EngagementViral},
		{100, EngagementViral},
		{-1, EngagementLow},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := EngagementLevel(tt.rate)
			if result != tt.expected {
				t.Errorf("EngagementLevel(%v) = %q, want %q", tt.rate, result, tt.expected)
			}
		})
	}
}

func TestProfileEngagementRate(t *testing.T) {
	noStats := &Profile{FollowersCount: 5000}
	if got := ProfileEngagementRate(noStats); got != 0 {
		t.Errorf("ProfileEngagementRate with nil stats = %v, want 0", got)
	}

	p := &Profile{
		FollowersCount: 5000,
		Engagement:     &EngagementStats{Likes: [3]int{100, 120, 110}, Comments: [3]int{10, 8, 12}},
	}
	if got := ProfileEngagementRate(p); math.Abs(got-2.4) > 1e-9 {
		t.Errorf("ProfileEngagementRate = %v, want 2.4", got)
	}
}

func TestPublicEngagement(t *testing.T) {
	visible := &Profile{Engagement: &EngagementStats{Likes: [3]int{1, 2, 3}}}
	if visible.PublicEngagement() == nil {
		t.Error("PublicEngagement should pass through when analytics are not hidden")
	}

	hidden := &Profile{Engagement: &EngagementStats{Likes: [3]int{1, 2, 3}, HideAnalytics: true}}
	if hidden.PublicEngagement() != nil {
		t.Error("PublicEngagement should be nil when the owner hides analytics")
	}

	none := &Profile{}
	if none.PublicEngagement() != nil {
		t.Error("PublicEngagement should be nil without stats")
	}
}
