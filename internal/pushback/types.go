package pushback

// Category classifies a student turn by authenticity/pushback type.
type Category string

const (
	CategoryNone                 Category = "none"
	CategoryHollowPraise         Category = "hollow_praise"
	CategoryUnsupportedAuthority Category = "unsupported_authority"
	CategoryMisrepresentation    Category = "misrepresentation"
	CategoryGenuineEngagement    Category = "genuine_engagement"
)

// Categories returns every category, histogram order.
func Categories() []Category {
	return []Category{
		CategoryNone,
		CategoryHollowPraise,
		CategoryUnsupportedAuthority,
		CategoryMisrepresentation,
		CategoryGenuineEngagement,
	}
}

// IsPushback reports whether the category counts toward the pushback rate.
// Hollow praise is an authenticity failure, not pushback, and none carries
// no signal either way.
func (c Category) IsPushback() bool {
	switch c {
	case CategoryUnsupportedAuthority, CategoryMisrepresentation, CategoryGenuineEngagement:
		return true
	}
	return false
}

// Turn holds the two output layers of a student exchange plus the context
// the rules inspect. PriorPersonaText is the literal diegetic text of the
// persona turn the student is responding to.
type Turn struct {
	Diegetic         string
	NonDiegetic      string
	PriorPersonaText string
}
