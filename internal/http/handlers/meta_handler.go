package handlers

import (
	"github.com/creator-marketplace/backend/internal/directory"
	"github.com/creator-marketplace/backend/internal/http/dto"
	"github.com/gofiber/fiber/v2"
)

// MetaHandler serves the static vocabularies the signup and filter UIs are
// built from.
type MetaHandler struct{}

func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

var creatorCategories = []string{
	"Video Creator",
	"Short-form Video Creator",
	"Photographer",
	"Videographer",
	"Animator",
	"Motion Graphics Artist",
	"Graphic Designer",
	"Illustrator",
	"3D Artist",
	"Visual Effects Artist",
	"Fine Artist",
	"Digital Artist",
	"Blogger",
	"Content Writer",
	"Copywriter",
	"Journalist",
	"Author",
	"Online Teacher",
	"Course Creator",
	"Educational Content Creator",
	"Beauty Creator",
	"Fashion Creator",
	"Travel Creator",
	"Food Creator",
	"Cooking Influencer",
	"Fitness Creator",
	"Health & Wellness Creator",
	"Lifestyle Creator",
	"Gaming Creator",
	"Tech Reviewer",
	"Finance Creator",
	"Parenting Creator",
	"Home & DIY Creator",
	"Music Creator",
	"Sports Creator",
	"Comedy Creator",
	"Entertainment Creator",
	"Business Educator",
	"Entrepreneurship Coach",
	"Sustainability Advocate",
	"Craft Instructor",
	"Social Media Marketer",
	"Email Marketing Specialist",
	"Influencer Marketer",
	"Affiliate Marketer",
	"SEO Specialist",
	"SEM Specialist",
	"Branding Expert",
	"PR Professional",
	"Instagram Creator",
	"YouTube Creator",
	"TikTok Creator",
	"Twitter Personality",
	"Twitch Streamer",
	"LinkedIn Creator",
	"Pinterest Creator",
	"Facebook Creator",
	"Public Speaker",
	"Community Builder",
	"Industry Expert",
	"Thought Leader",
}

var brandCategories = []string{
	"Fashion & Apparel",
	"Beauty & Cosmetics",
	"Jewelry & Accessories",
	"Personal Care",
	"Consumer Electronics",
	"Software & Apps",
	"Gaming",
	"Mobile & Telecommunications",
	"Food & Beverages",
	"Restaurants & Dining",
	"Health Foods & Supplements",
	"Fitness & Sports Equipment",
	"Healthcare & Medical",
	"Wellness & Self-care",
	"Home & Furniture",
	"Home Appliances",
	"Home Decor",
	"Pet Products",
	"Entertainment",
	"Media & Publishing",
	"Streaming Services",
	"Travel & Tourism",
	"Hotels & Accommodation",
	"Transportation",
	"Education & Training",
	"Online Learning",
	"Books & Publications",
	"Business Services",
	"Financial Services",
	"Professional Services",
	"E-commerce",
	"Retail Stores",
	"Shopping Platforms",
	"Automotive",
	"Car Accessories",
	"Transportation Services",
	"Cloud Services",
	"Digital Solutions",
	"Broadband & Internet Services",
	"Courier & Postal Services",
	"Ride-Sharing & Delivery Apps",
	"Luxury Hospitality",
	"Luxury Lifestyle",
}

var platforms = []string{
	"Instagram",
	"TikTok",
	"YouTube",
	"Twitter",
	"LinkedIn",
}

func (h *MetaHandler) GetCreatorCategories(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: creatorCategories})
}

func (h *MetaHandler) GetBrandCategories(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: brandCategories})
}

func (h *MetaHandler) GetPlatforms(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: platforms})
}

func (h *MetaHandler) GetFollowerRanges(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: directory.FollowerRanges})
}
