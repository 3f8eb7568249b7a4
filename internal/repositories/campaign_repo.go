package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/creator-marketplace/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CampaignRepo struct {
	pool *pgxpool.Pool
}

func NewCampaignRepo(pool *pgxpool.Pool) *CampaignRepo {
	return &CampaignRepo{pool: pool}
}

const campaignColumns = `
	id, brand_id, title, description, requirements,
	content_type, preferred_niches, preferred_platforms, geographic_targeting, hashtags,
	budget_range, min_budget, max_budget, payment_type,
	follower_range, min_engagement_rate, preferred_gender,
	usage_rights, past_collaborations, extra_notes, contact_info,
	status, start_date, end_date, created_at, updated_at`

func (r *CampaignRepo) Create(ctx context.Context, c *models.Campaign) error {
	contentType, _ := json.Marshal(c.ContentType)
	niches, _ := json.Marshal(c.PreferredNiches)
	platforms, _ := json.Marshal(c.PreferredPlatforms)
	geo, _ := json.Marshal(c.GeographicTargets)
	hashtags, _ := json.Marshal(c.Hashtags)
	gender, _ := json.Marshal(c.PreferredGender)
	contact, _ := json.Marshal(c.ContactInfo)

	return r.pool.QueryRow(ctx, `
		INSERT INTO campaigns (
			brand_id, title, description, requirements,
			content_type, preferred_niches, preferred_platforms, geographic_targeting, hashtags,
			budget_range, min_budget, max_budget, payment_type,
			follower_range, min_engagement_rate, preferred_gender,
			usage_rights, past_collaborations, extra_notes, contact_info,
			status, start_date, end_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
		          $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
		RETURNING id, created_at, updated_at
	`, c.BrandID, c.Title, c.Description, c.Requirements,
		contentType, niches, platforms, geo, hashtags,
		c.BudgetRange, c.MinBudget, c.MaxBudget, c.PaymentType,
		c.FollowerRange, c.MinEngagementRate, gender,
		c.UsageRights, c.PastCollaborations, c.ExtraNotes, contact,
		c.Status, c.StartDate, c.EndDate,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CampaignRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	return scanCampaign(row)
}

func (r *CampaignRepo) Update(ctx context.Context, c *models.Campaign) error {
	contentType, _ := json.Marshal(c.ContentType)
	niches, _ := json.Marshal(c.PreferredNiches)
	platforms, _ := json.Marshal(c.PreferredPlatforms)
	geo, _ := json.Marshal(c.GeographicTargets)
	hashtags, _ := json.Marshal(c.Hashtags)
	gender, _ := json.Marshal(c.PreferredGender)
	contact, _ := json.Marshal(c.ContactInfo)

	_, err := r.pool.Exec(ctx, `
		UPDATE campaigns SET
			title = $1, description = $2, requirements = $3,
			content_type = $4, preferred_niches = $5, preferred_platforms = $6,
			geographic_targeting = $7, hashtags = $8,
			budget_range = $9, min_budget = $10, max_budget = $11, payment_type = $12,
			follower_range = $13, min_engagement_rate = $14, preferred_gender = $15,
			usage_rights = $16, past_collaborations = $17, extra_notes = $18,
			contact_info = $19, status = $20, start_date = $21, end_date = $22,
			updated_at = now()
		WHERE id = $23
	`, c.Title, c.Description, c.Requirements,
		contentType, niches, platforms, geo, hashtags,
		c.BudgetRange, c.MinBudget, c.MaxBudget, c.PaymentType,
		c.FollowerRange, c.MinEngagementRate, gender,
		c.UsageRights, c.PastCollaborations, c.ExtraNotes,
		contact, c.Status, c.StartDate, c.EndDate, c.ID)
	return err
}

func (r *CampaignRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	_, err := r.pool.Exec(ctx, `UPDATE campaigns SET status = $1, updated_at = now() WHERE id = $2`, status, id)
	return err
}

// Delete removes the campaign permanently. There is no soft delete.
func (r *CampaignRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	return err
}

type CampaignFilter struct {
	BrandID *uuid.UUID
	Status  *string
	Limit   int
	Offset  int
}

func (r *CampaignRepo) List(ctx context.Context, f CampaignFilter) ([]models.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns`
	args := []any{}
	argIdx := 1
	where := []string{}

	if f.BrandID != nil {
		where = append(where, fmt.Sprintf("brand_id = $%d", argIdx))
		args = append(args, *f.BrandID)
		argIdx++
	}
	if f.Status != nil {
		where = append(where, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *f.Status)
		argIdx++
	}

	if len(where) > 0 {
		query += " WHERE "
		for i, w := range where {
			if i > 0 {
				query += " AND "
			}
			query += w
		}
	}

	query += " ORDER BY created_at DESC"
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
		args = append(args, f.Limit, f.Offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []models.Campaign
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, *c)
	}
	return campaigns, rows.Err()
}

func scanCampaign(row pgx.Row) (*models.Campaign, error) {
	var c models.Campaign
	var contentType, niches, platforms, geo, hashtags, gender, contact []byte

	err := row.Scan(
		&c.ID, &c.BrandID, &c.Title, &c.Description, &c.Requirements,
		&contentType, &niches, &platforms, &geo, &hashtags,
		&c.BudgetRange, &c.MinBudget, &c.MaxBudget, &c.PaymentType,
		&c.FollowerRange, &c.MinEngagementRate, &gender,
		&c.UsageRights, &c.PastCollaborations, &c.ExtraNotes, &contact,
		&c.Status, &c.StartDate, &c.EndDate, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	_ = json.Unmarshal(contentType, &c.ContentType)
	_ = json.Unmarshal(niches, &c.PreferredNiches)
	_ = json.Unmarshal(platforms, &c.PreferredPlatforms)
	_ = json.Unmarshal(geo, &c.GeographicTargets)
	_ = json.Unmarshal(hashtags, &c.Hashtags)
	// preferred_gender survived several client generations; FlexStrings
	// absorbs whatever shape the row carries.
	_ = json.Unmarshal(gender, &c.PreferredGender)
	_ = json.Unmarshal(contact, &c.ContactInfo)

	c.Normalize()
	return &c, nil
}
