package model

// Group is a named cohort. Students and exams reference it by name.
type Group struct {
	ID   string `json:"id" bson:"id"`
	Name string `json:"name" bson:"name"`
}

// GroupRequest is the payload for creating or renaming a group.
type GroupRequest struct {
	ID   string `json:"id" binding:"omitempty,max=128"`
	Name string `json:"name" binding:"required,max=64"`
}
