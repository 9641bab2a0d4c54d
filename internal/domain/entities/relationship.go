package entities

// RelationType categorizes a relationship.
type RelationType string

// Relationship types. Partner and spouse are mutually exclusive; a
// breakup retypes the entry to ex rather than deleting it.
const (
	RelationParent  RelationType = "parent"
	RelationSibling RelationType = "sibling"
	RelationSpouse  RelationType = "spouse"
	RelationPartner RelationType = "partner"
	RelationChild   RelationType = "child"
	RelationFriend  RelationType = "friend"
	RelationEx      RelationType = "ex"
	RelationPet     RelationType = "pet"
)

// ValidRelationType reports whether t is a known relationship type.
func ValidRelationType(t RelationType) bool {
	switch t {
	case RelationParent, RelationSibling, RelationSpouse, RelationPartner,
		RelationChild, RelationFriend, RelationEx, RelationPet:
		return true
	}
	return false
}

// Relationship is a person (or animal) bonded to the character. Bond
// strength stays within [0,100]. Age and the personality axes are
// optional; family members carry them, event-spawned acquaintances
// often do not.
type Relationship struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Type       RelationType `json:"type"`
	Bond       int          `json:"bond"`
	Age        *int         `json:"age,omitempty"`
	Generosity *int         `json:"generosity,omitempty"`
	Craziness  *int         `json:"craziness,omitempty"`
	Petulance  *int         `json:"petulance,omitempty"`
	Alive      bool         `json:"alive"`
}

// AdjustBond adds delta to the bond strength, clamped to [0,100].
func (r *Relationship) AdjustBond(delta int) {
	r.Bond = ClampStat(r.Bond + delta)
}

// IsPartner reports whether the relationship is a current romantic
// partner (dating or married).
func (r *Relationship) IsPartner() bool {
	return r.Type == RelationPartner || r.Type == RelationSpouse
}
