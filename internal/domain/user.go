package domain

import "time"

const (
	// ReviewerMinUniversityScore is the lowest university score that still qualifies a reviewer.
	ReviewerMinUniversityScore = 60
	// ReviewerPublicationThreshold must be exceeded, a reviewer needs at least four publications.
	ReviewerPublicationThreshold = 3
)

// User represents a registered researcher affiliated with a university.
type User struct {
	ID                   int64
	UserName             string
	NumberOfPublications int
	UniversityName       string
	Reviewer             bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// QualifiesAsReviewer reports whether the user meets the reviewer requirements
// given the university they are affiliated with. A missing university never qualifies.
func (u User) QualifiesAsReviewer(university *University) bool {
	if university == nil {
		return false
	}
	return university.Score >= ReviewerMinUniversityScore &&
		u.NumberOfPublications > ReviewerPublicationThreshold
}
