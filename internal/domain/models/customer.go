package models

// ClassSummary is the denormalized booking view kept under a customer's
// profile, keyed by class ID. First write wins; a repeat booking attempt
// never overwrites the captured details.
type ClassSummary struct {
	ClassType   string  `json:"class_type"`
	Price       float64 `json:"price"`
	TeacherName string  `json:"teacher_name"`
	Date        string  `json:"date"`
}
