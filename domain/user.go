package domain

import (
	"strings"
	"time"
)

// User represents a member of the skill-exchange directory.
type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Location      string    `json:"location,omitempty"`
	ProfilePhoto  string    `json:"profile_photo,omitempty"`
	SkillsOffered []string  `json:"skills_offered"`
	SkillsWanted  []string  `json:"skills_wanted"`
	Availability  []string  `json:"availability"`
	IsPublic      bool      `json:"is_public"`
	IsAdmin       bool      `json:"is_admin,omitempty"`
	Rating        float64   `json:"rating"`
	ReviewCount   int       `json:"review_count"`
	JoinedAt      time.Time `json:"joined_at"`
}

// Offers reports whether the user lists skill in their offered set.
func (u *User) Offers(skill string) bool {
	return u != nil && containsSkill(u.SkillsOffered, skill)
}

// Wants reports whether the user lists skill in their wanted set.
func (u *User) Wants(skill string) bool {
	return u != nil && containsSkill(u.SkillsWanted, skill)
}

// MatchesSearch reports whether the free-text term matches the user's name
// or any offered/wanted skill. Matching is a case-insensitive substring test.
func (u *User) MatchesSearch(term string) bool {
	if u == nil {
		return false
	}
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(u.Name), term) {
		return true
	}
	for _, skill := range u.SkillsOffered {
		if strings.Contains(strings.ToLower(skill), term) {
			return true
		}
	}
	for _, skill := range u.SkillsWanted {
		if strings.Contains(strings.ToLower(skill), term) {
			return true
		}
	}
	return false
}

// AvailableDuring reports whether any of the user's availability tags
// matches the given tag, case-insensitively.
func (u *User) AvailableDuring(tag string) bool {
	if u == nil {
		return false
	}
	tag = strings.ToLower(tag)
	for _, slot := range u.Availability {
		if strings.Contains(strings.ToLower(slot), tag) {
			return true
		}
	}
	return false
}

func containsSkill(skills []string, skill string) bool {
	for _, s := range skills {
		if s == skill {
			return true
		}
	}
	return false
}
