package types

import "time"

// Mode is the certificate/seat tier of a purchase or an enrollment.
// The set is defined by the stores; values we do not know are carried through as is.
type Mode string

const (
	HonorMode        Mode = "honor"
	VerifiedMode     Mode = "verified"
	AuditMode        Mode = "audit"
	ProfessionalMode Mode = "professional"
	CreditMode       Mode = "credit"
)

type GroupKey struct {
	Username string
	CourseID string
}

type MatchKey struct {
	Username string
	CourseID string
	Mode     Mode
}

// Order is one completed, unrefunded line item from the ecommerce store.
type Order struct {
	Username   string    `db:"username" json:"username"`
	Email      string    `db:"email" json:"email"`
	Number     string    `db:"number" json:"number"`
	DatePlaced time.Time `db:"date_placed" json:"date_placed"`
	Total      string    `db:"total_excl_tax" json:"total_excl_tax"`
	Mode       Mode      `db:"mode" json:"mode"`
	CourseID   string    `db:"course_id" json:"course_id"`
}

func (o Order) GroupKey() GroupKey {
	return GroupKey{Username: o.Username, CourseID: o.CourseID}
}

func (o Order) MatchKey() MatchKey {
	return MatchKey{Username: o.Username, CourseID: o.CourseID, Mode: o.Mode}
}

// Enrollment is a learning platform registration. IsActive is not used for matching.
type Enrollment struct {
	Username string `db:"username" json:"username"`
	CourseID string `db:"course_id" json:"course_id"`
	Mode     Mode   `db:"mode" json:"mode"`
	IsActive bool   `db:"is_active" json:"is_active"`
}

func (e Enrollment) MatchKey() MatchKey {
	return MatchKey{Username: e.Username, CourseID: e.CourseID, Mode: e.Mode}
}
