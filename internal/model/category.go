package model

// Event categories are a fixed taxonomy; ids are stable and referenced by
// events.category_id.
const (
	CategoryMusic int64 = iota + 1
	CategoryComedy
	CategoryTheater
	CategoryDance
	CategoryFilm
	CategoryArt
	CategoryLiterature
	CategoryFamily
	CategoryCommunity
	CategorySports
	CategoryFood
	CategoryOther
)

var categoryNames = map[int64]string{
	CategoryMusic:      "Music",
	CategoryComedy:     "Comedy",
	CategoryTheater:    "Theater",
	CategoryDance:      "Dance",
	CategoryFilm:       "Film",
	CategoryArt:        "Art",
	CategoryLiterature: "Literature",
	CategoryFamily:     "Family",
	CategoryCommunity:  "Community",
	CategorySports:     "Sports",
	CategoryFood:       "Food & Drink",
	CategoryOther:      "Other",
}

// CategoryName returns the display name for a category id, or "" when the id
// is not part of the taxonomy.
func CategoryName(id int64) string {
	return categoryNames[id]
}

// Categories returns a copy of the full taxonomy.
func Categories() map[int64]string {
	res := make(map[int64]string, len(categoryNames))
	for id, name := range categoryNames {
		res[id] = name
	}
	return res
}

// ValidCategory reports whether id names a known category.
func ValidCategory(id int64) bool {
	_, ok := categoryNames[id]
	return ok
}
