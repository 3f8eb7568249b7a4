package models

// Engagement level labels, from the thresholds the profile edit preview and
// the creators directory both classify against.
const (
	EngagementLow      = "low"
	EngagementModerate = "moderate"
	EngagementHigh     = "high"
	EngagementViral    = "viral"
)

// EngagementRate computes the percentage engagement rate from the raw
// like/comment samples. Zero followers always yields 0.
func EngagementRate(stats EngagementStats, totalFollowers int) float64 {
	if totalFollowers <= 0 {
		return 0
	}
	avgLikes := float64(stats.Likes[0]+stats.Likes[1]+stats.Likes[2]) / 3
	avgComments := float64(stats.Comments[0]+stats.Comments[1]+stats.Comments[2]) / 3
	return (avgLikes + avgComments) / float64(totalFollowers) * 100
}

// EngagementLevel classifies a rate. Bounds are inclusive, highest first.
func EngagementLevel(rate float64) string {
	switch {
	case rate >= 6:
		return EngagementViral
	case rate >= 3:
		return EngagementHigh
	case rate >= 1:
		return EngagementModerate
	default:
		return EngagementLow
	}
}

// ProfileEngagementRate computes the rate for a profile, or 0 when the
// profile has no reported stats.
func ProfileEngagementRate(p *Profile) float64 {
	if p.Engagement == nil {
		return 0
	}
	return EngagementRate(*p.Engagement, p.FollowersCount)
}

// PublicEngagement returns the stats as they may be shown to viewers other
// than the owner. Creators can opt out of exposing analytics, in which case
// display consumers receive nil rather than computed numbers.
func (p *Profile) PublicEngagement() *EngagementStats {
	if p.Engagement == nil || p.Engagement.HideAnalytics {
		return nil
	}
	return p.Engagement
}
