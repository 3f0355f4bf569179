package types

import "strings"

// AchievementCollection stores student achievements shown on the website.
const AchievementCollection = "studentachievements"

// StudentAchievement is listed by Order ascending, newest first within the
// same Order. Inactive achievements are hidden from the default listing.
type StudentAchievement struct {
	Meta        `bson:",inline"`
	Image       string `json:"image" bson:"image" validate:"required"`
	Title       string `json:"title" bson:"title" validate:"required"`
	Description string `json:"description" bson:"description" validate:"required"`
	StudentName string `json:"studentName,omitempty" bson:"studentName,omitempty"`
	IsActive    bool   `json:"isActive" bson:"isActive"`
	Order       int    `json:"order" bson:"order" validate:"gte=0"`
}

// StudentAchievementInput is the body of POST /student-achievements.
// A missing isActive means true.
type StudentAchievementInput struct {
	Image       string `json:"image"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StudentName string `json:"studentName"`
	IsActive    *bool  `json:"isActive"`
	Order       int    `json:"order"`
}

func (in StudentAchievementInput) Normalize() StudentAchievement {
	return StudentAchievement{
		Image:       strings.TrimSpace(in.Image),
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		StudentName: strings.TrimSpace(in.StudentName),
		IsActive:    boolOr(in.IsActive, true),
		Order:       in.Order,
	}
}
