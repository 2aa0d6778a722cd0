package domain

// Role tells whether a source is the operator's own product or a competitor.
type Role string

const (
	RoleSelf       Role = "self"
	RoleCompetitor Role = "competitor"
)

type Source struct {
	ID    string // ascii slug, used for section ids
	Name  string
	Color string // css hex color
	Icon  string
	Role  Role
	Path  string // competitor export, relative to the base dir
}

func (s Source) IsSelf() bool { return s.Role == RoleSelf }

// Category is a topical bucket for the operator's own keyword research.
type Category struct {
	Name string
	Icon string
}
