package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/realtexai/realtex-api/internal/domain/entity"
)

func timePtr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

// userView is the JSON shape of a user across auth and admin endpoints.
// The password hash and invitation token are never serialized.
func userView(u *entity.User) gin.H {
	return gin.H{
		"id":                     u.ID,
		"email":                  u.Email,
		"first_name":             u.FirstName,
		"last_name":              u.LastName,
		"is_admin":               u.IsAdmin,
		"is_active":              u.IsActive,
		"invitation_sent_at":     timePtr(u.InvitationSentAt),
		"invitation_accepted_at": timePtr(u.InvitationAcceptedAt),
		"created_at":             u.CreatedAt,
		"updated_at":             u.UpdatedAt,
	}
}

func propertyView(p *entity.Property) gin.H {
	return gin.H{
		"id":            p.ID,
		"address":       p.Address,
		"city":          p.City,
		"country":       p.Country,
		"postcode":      p.Postcode,
		"latitude":      p.Latitude,
		"longitude":     p.Longitude,
		"size_sqft":     p.SizeSqft,
		"num_bedrooms":  p.NumBedrooms,
		"num_bathrooms": p.NumBathrooms,
		"listing_price": p.ListingPrice,
		"property_type": p.PropertyType,
		"created_at":    p.CreatedAt,
		"updated_at":    p.UpdatedAt,
	}
}

func predictionView(p *entity.Prediction) gin.H {
	return gin.H{
		"id":                          p.ID,
		"property_id":                 p.PropertyID,
		"predicted_sale_price":        p.PredictedSalePrice,
		"predicted_rental_yield":      p.PredictedRentalYield,
		"predicted_capital_growth_1y": p.PredictedCapitalGrowth1Y,
		"predicted_capital_growth_3y": p.PredictedCapitalGrowth3Y,
		"predicted_capital_growth_5y": p.PredictedCapitalGrowth5Y,
		"investment_score":            p.InvestmentScore,
		"model_version":               p.ModelVersion,
		"created_at":                  p.CreatedAt,
	}
}

func areaView(a *entity.Area) gin.H {
	return gin.H{
		"area_name":        a.AreaName,
		"country":          a.Country,
		"investment_score": a.InvestmentScore,
		"avg_price":        a.AvgPrice,
		"avg_rent":         a.AvgRent,
		"rental_yield":     a.RentalYield,
	}
}
