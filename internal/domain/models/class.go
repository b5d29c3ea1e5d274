package models

import "strings"

// ClassRecord is a scheduled class as stored in the catalog. The roster
// holds the emails of customers currently booked in. Classes are created
// by the admin scheduling process; this service only reads them and
// rewrites the roster.
type ClassRecord struct {
	ID          string   `json:"id"`
	ClassType   string   `json:"class_type"`
	Date        string   `json:"date"` // display string, e.g. "Monday, 06/01/2025"
	Time        string   `json:"time"`
	Duration    int      `json:"duration"`
	Capacity    int      `json:"capacity"`
	Price       float64  `json:"price"`
	TeacherName string   `json:"teacher_name"`
	Description string   `json:"description,omitempty"`
	Roster      []string `json:"roster"`
}

// RosterContains reports roster membership. Matching is exact unless
// caseFold is set, in which case emails compare case-insensitively.
func (c ClassRecord) RosterContains(email string, caseFold bool) bool {
	for _, e := range c.Roster {
		if e == email {
			return true
		}
		if caseFold && strings.EqualFold(e, email) {
			return true
		}
	}
	return false
}
