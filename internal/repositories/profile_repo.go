package repositories

import (
	"context"
	"encoding/json"

	"github.com/creator-marketplace/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProfileRepo struct {
	pool *pgxpool.Pool
}

func NewProfileRepo(pool *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

const profileColumns = `
	id, name, type, bio, location, website, email, phone, avatar_url,
	preferred_contact, gender, followers_count,
	categories, platforms, social_links, engagement_stats,
	budget_range, min_budget, max_budget, collaboration_types,
	preferred_creator_niches, partnership_goals, past_collaborations,
	is_public, under_review, approved, rejection_reason,
	created_at, updated_at`

func (r *ProfileRepo) Create(ctx context.Context, p *models.Profile) error {
	categories, _ := json.Marshal(p.Categories)
	platforms, _ := json.Marshal(p.Platforms)
	socialLinks, _ := json.Marshal(p.SocialLinks)
	collabTypes, _ := json.Marshal(p.CollaborationTypes)
	niches, _ := json.Marshal(p.PreferredCreatorNiches)
	var engagement []byte
	if p.Engagement != nil {
		engagement, _ = json.Marshal(p.Engagement)
	}

	return r.pool.QueryRow(ctx, `
		INSERT INTO profiles (
			id, name, type, bio, location, website, email, phone, avatar_url,
			preferred_contact, gender, followers_count,
			categories, platforms, social_links, engagement_stats,
			budget_range, min_budget, max_budget, collaboration_types,
			preferred_creator_niches, partnership_goals, past_collaborations,
			is_public, under_review, approved, rejection_reason
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		          $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27)
		RETURNING created_at, updated_at
	`, p.ID, p.Name, p.Type, p.Bio, p.Location, p.Website, p.Email, p.Phone, p.AvatarURL,
		p.PreferredContact, p.Gender, p.FollowersCount,
		categories, platforms, socialLinks, engagement,
		p.BudgetRange, p.MinBudget, p.MaxBudget, collabTypes,
		niches, p.PartnershipGoals, p.PastCollaborations,
		p.IsPublic, p.UnderReview, p.Approved, p.RejectionReason,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *ProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id)
	return scanProfile(row)
}

// Update persists every owner-editable field plus the visibility flags.
// The backing store is last-write-wins; there is no version check.
func (r *ProfileRepo) Update(ctx context.Context, p *models.Profile) error {
	categories, _ := json.Marshal(p.Categories)
	platforms, _ := json.Marshal(p.Platforms)
	socialLinks, _ := json.Marshal(p.SocialLinks)
	collabTypes, _ := json.Marshal(p.CollaborationTypes)
	niches, _ := json.Marshal(p.PreferredCreatorNiches)
	var engagement []byte
	if p.Engagement != nil {
		engagement, _ = json.Marshal(p.Engagement)
	}

	_, err := r.pool.Exec(ctx, `
		UPDATE profiles SET
			name = $1, bio = $2, location = $3, website = $4, email = $5,
			phone = $6, avatar_url = $7, preferred_contact = $8, gender = $9,
			followers_count = $10, categories = $11, platforms = $12,
			social_links = $13, engagement_stats = $14,
			budget_range = $15, min_budget = $16, max_budget = $17,
			collaboration_types = $18, preferred_creator_niches = $19,
			partnership_goals = $20, past_collaborations = $21,
			is_public = $22, under_review = $23, approved = $24,
			rejection_reason = $25, updated_at = now()
		WHERE id = $26
	`, p.Name, p.Bio, p.Location, p.Website, p.Email,
		p.Phone, p.AvatarURL, p.PreferredContact, p.Gender,
		p.FollowersCount, categories, platforms,
		socialLinks, engagement,
		p.BudgetRange, p.MinBudget, p.MaxBudget,
		collabTypes, niches,
		p.PartnershipGoals, p.PastCollaborations,
		p.IsPublic, p.UnderReview, p.Approved,
		p.RejectionReason, p.ID)
	return err
}

// UpdateVisibility writes only the moderation outcome fields, so an admin
// decision cannot clobber a concurrent owner edit of the rest of the row.
func (r *ProfileRepo) UpdateVisibility(ctx context.Context, p *models.Profile) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE profiles SET
			is_public = $1, under_review = $2, approved = $3,
			rejection_reason = $4, updated_at = now()
		WHERE id = $5
	`, p.IsPublic, p.UnderReview, p.Approved, p.RejectionReason, p.ID)
	return err
}

// UpdateSocialFollowers writes refreshed link follower counts and the derived
// total without touching owner-edited fields.
func (r *ProfileRepo) UpdateSocialFollowers(ctx context.Context, id uuid.UUID, links []models.SocialLink, total int) error {
	socialLinks, _ := json.Marshal(links)
	_, err := r.pool.Exec(ctx, `
		UPDATE profiles SET social_links = $1, followers_count = $2, updated_at = now()
		WHERE id = $3
	`, socialLinks, total, id)
	return err
}

// ListDirectory fetches the coarse directory snapshot; fine-grained filtering
// and sorting happen in the directory engine.
func (r *ProfileRepo) ListDirectory(ctx context.Context, profileType string) ([]models.Profile, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+profileColumns+`
		FROM profiles
		WHERE type = $1 AND is_public = true
		ORDER BY created_at DESC
	`, profileType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProfiles(rows)
}

func (r *ProfileRepo) ListUnderReview(ctx context.Context) ([]models.Profile, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+profileColumns+`
		FROM profiles
		WHERE under_review = true
		ORDER BY updated_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProfiles(rows)
}

// ListCreatorsWithSocialLinks returns creators whose linked accounts the
// stats worker should refresh.
func (r *ProfileRepo) ListCreatorsWithSocialLinks(ctx context.Context) ([]models.Profile, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+profileColumns+`
		FROM profiles
		WHERE type = 'creator' AND jsonb_array_length(social_links) > 0
		ORDER BY updated_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProfiles(rows)
}

func scanProfile(row pgx.Row) (*models.Profile, error) {
	var p models.Profile
	var categories, platforms, socialLinks, engagement, collabTypes, niches []byte

	err := row.Scan(
		&p.ID, &p.Name, &p.Type, &p.Bio, &p.Location, &p.Website, &p.Email, &p.Phone, &p.AvatarURL,
		&p.PreferredContact, &p.Gender, &p.FollowersCount,
		&categories, &platforms, &socialLinks, &engagement,
		&p.BudgetRange, &p.MinBudget, &p.MaxBudget, &collabTypes,
		&niches, &p.PartnershipGoals, &p.PastCollaborations,
		&p.IsPublic, &p.UnderReview, &p.Approved, &p.RejectionReason,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	_ = json.Unmarshal(categories, &p.Categories)
	_ = json.Unmarshal(platforms, &p.Platforms)
	_ = json.Unmarshal(socialLinks, &p.SocialLinks)
	_ = json.Unmarshal(collabTypes, &p.CollaborationTypes)
	_ = json.Unmarshal(niches, &p.PreferredCreatorNiches)
	if len(engagement) > 0 {
		var es models.EngagementStats
		if json.Unmarshal(engagement, &es) == nil {
			p.Engagement = &es
		}
	}

	p.Normalize()
	return &p, nil
}

func scanProfiles(rows pgx.Rows) ([]models.Profile, error) {
	var profiles []models.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	return profiles, rows.Err()
}
