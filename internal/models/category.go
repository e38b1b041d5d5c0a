package models

type Category string

const (
	// CategoryAll only ever appears in filters, never on a stored event.
	CategoryAll        Category = "All"
	CategoryConference Category = "Conference"
	CategoryConcert    Category = "Concert"
	CategoryExhibition Category = "Exhibition"
	CategoryWorkshop   Category = "Workshop"
	CategorySport      Category = "Sport"
	CategoryOther      Category = "Other"
)

// Categories returns the full enumeration, the All sentinel first.
func Categories() []Category {
	return []Category{
		CategoryAll,
		CategoryConference,
		CategoryConcert,
		CategoryExhibition,
		CategoryWorkshop,
		CategorySport,
		CategoryOther,
	}
}

// StoredCategories returns the categories an event may carry.
func StoredCategories() []Category {
	return Categories()[1:]
}

func (c Category) IsValid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}

	return false
}

func (c Category) IsStored() bool {
	return c != CategoryAll && c.IsValid()
}
