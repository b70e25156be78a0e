package db

import (
	"context"

	"community-ads/internal/core/domain"
)

// CommunityWriter stores catalog records.
type CommunityWriter interface {
	UpsertCommunities(ctx context.Context, cs []domain.Community) error
}

// Seed writes the demo catalog. Running it again updates the records in
// place.
func Seed(ctx context.Context, w CommunityWriter) error {
	return w.UpsertCommunities(ctx, Catalog())
}

// Catalog returns the demo community catalog in display order.
func Catalog() []domain.Community {
	type row struct {
		id, name    string
		members     int64
		dailyActive int64
		rate        int
		topics      []string
		price       int64
		ctr         float64
		category    domain.Category
	}
	rows := []row{
		{"la-tech-meetup", "LA Tech Meetup", 48200, 6100, 5, []string{"startups", "ai", "software"}, 4500, 3.2, domain.CategoryTechnology},
		{"silicon-beach-founders", "Silicon Beach Founders", 18400, 2900, 4, []string{"startups", "venture capital", "networking"}, 3200, 2.8, domain.CategoryTechnology},
		{"downtown-dev-circle", "Downtown Dev Circle", 7600, 1200, 3, []string{"javascript", "web development", "open source"}, 1800, 2.1, domain.CategoryTechnology},
		{"gadget-lovers-socal", "Gadget Lovers SoCal", 132000, 15400, 3, []string{"gadgets", "reviews", "smartphones"}, 6500, 1.9, domain.CategoryTechnology},
		{"data-science-la", "Data Science LA", 22300, 3100, 4, []string{"data science", "machine learning", "python"}, 2900, 2.6, domain.CategoryTechnology},
		{"small-business-network", "Small Business Network", 35600, 4200, 4, []string{"entrepreneurship", "marketing", "local business"}, 3800, 2.4, domain.CategoryBusiness},
		{"real-estate-insiders", "Real Estate Insiders", 12800, 1500, 2, []string{"real estate", "housing", "investing"}, 2200, 1.4, domain.CategoryBusiness},
		{"westside-parents", "Westside Parents", 41200, 7800, 5, []string{"parenting", "schools", "family events"}, 4200, 3.5, domain.CategoryLifestyle},
		{"foodies-echo-park", "Foodies of Echo Park", 9300, 2100, 5, []string{"restaurants", "food trucks", "recipes"}, 1600, 3.9, domain.CategoryLifestyle},
		{"pet-owners-collective", "Pet Owners Collective", 3900, 800, 4, []string{"dogs", "cats", "adoption"}, 900, 3.0, domain.CategoryLifestyle},
		{"weekend-hikers", "Weekend Hikers", 27500, 3300, 4, []string{"hiking", "trails", "outdoors"}, 2600, 2.7, domain.CategorySports},
		{"sunday-league-soccer", "Sunday League Soccer", 4100, 950, 3, []string{"soccer", "amateur leagues"}, 800, 2.2, domain.CategorySports},
		{"lakers-fan-zone", "Lakers Fan Zone", 210000, 24800, 3, []string{"basketball", "nba", "lakers"}, 8900, 1.6, domain.CategorySports},
		{"arts-district-collective", "Arts District Collective", 15600, 1900, 4, []string{"galleries", "street art", "exhibitions"}, 2000, 2.9, domain.CategoryArts},
		{"indie-film-circle", "Indie Film Circle", 6200, 700, 2, []string{"film", "screenings", "festivals"}, 1100, 1.2, domain.CategoryArts},
		{"live-music-la", "Live Music LA", 58900, 6700, 4, []string{"concerts", "bands", "venues"}, 4800, 2.5, domain.CategoryArts},
		{"community-college-forum", "Community College Forum", 19800, 2600, 3, []string{"courses", "scholarships", "tutoring"}, 1500, 1.8, domain.CategoryEducation},
		{"bootcamp-alumni", "Coding Bootcamp Alumni", 4700, 1000, 5, []string{"coding", "careers", "bootcamps"}, 1200, 3.6, domain.CategoryEducation},
		{"wellness-yoga", "Wellness & Yoga", 23800, 3400, 4, []string{"yoga", "meditation", "fitness"}, 2400, 2.9, domain.CategoryHealth},
		{"senior-health-circle", "Senior Health Circle", 2900, 400, 2, []string{"healthcare", "medicare", "caregiving"}, 700, 1.1, domain.CategoryHealth},
		{"silver-lake-watch", "Neighborhood Watch Silver Lake", 8800, 1700, 3, []string{"safety", "neighborhood", "alerts"}, 1000, 2.0, domain.CategoryLocal},
		{"pasadena-community-board", "Pasadena Community Board", 31200, 3900, 3, []string{"city council", "events", "local news"}, 2700, 2.0, domain.CategoryLocal},
		{"long-beach-local", "Long Beach Local", 76400, 8200, 4, []string{"local news", "beaches", "events"}, 5200, 2.3, domain.CategoryLocal},
		{"valley-garage-sales", "Valley Garage Sales", 1800, 450, 1, []string{"garage sales", "deals", "second hand"}, 500, 0.9, domain.CategoryLocal},
	}
	out := make([]domain.Community, len(rows))
	for i, r := range rows {
		out[i] = domain.Community{
			ID:             r.id,
			Name:           r.name,
			AvatarURL:      "https://api.dicebear.com/7.x/shapes/svg?seed=" + r.id,
			Members:        r.members,
			DailyActive:    r.dailyActive,
			EngagementRate: r.rate,
			EngagementText: engagementFor(r.rate),
			Topics:         r.topics,
			Price:          r.price,
			CTR:            r.ctr,
			Category:       r.category,
			Size:           domain.SizeFor(r.members),
		}
	}
	return out
}

func engagementFor(rate int) domain.Engagement {
	switch {
	case rate >= 5:
		return domain.EngagementVeryHigh
	case rate == 4:
		return domain.EngagementHigh
	case rate == 3:
		return domain.EngagementMedium
	default:
		return domain.EngagementLow
	}
}
