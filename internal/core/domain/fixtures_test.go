package domain

func community(id, name string, cat Category, price, members, active int64, rate int, topics ...string) Community {
	return Community{
		ID:             id,
		Name:           name,
		Members:        members,
		DailyActive:    active,
		EngagementRate: rate,
		EngagementText: EngagementMedium,
		Topics:         topics,
		Price:          price,
		CTR:            2.5,
		Category:       cat,
		Size:           SizeFor(members),
	}
}

func testCatalog() []Community {
	return []Community{
		community("a", "Tech Talks", CategoryTechnology, 1000, 12000, 1500, 4, "startups", "AI"),
		community("b", "Foodies United", CategoryLifestyle, 2500, 3000, 700, 5, "restaurants", "recipes"),
		community("c", "Code Club", CategoryTechnology, 1500, 40000, 5200, 3, "golang", "open source"),
		community("d", "Soccer Moms", CategorySports, 800, 2500, 300, 2, "soccer", "parenting"),
		community("e", "Gadget Geeks", CategoryTechnology, 4000, 150000, 21000, 5, "gadgets"),
		community("f", "Local News Hub", CategoryLocal, 3000, 60000, 8000, 1, "news", "city council"),
	}
}
