package types

import (
	"strings"
	"time"
)

const (
	SectionCollection  = "sections"
	CategoryCollection = "categories"
)

// Section groups categories on the website. EndDate, when set, marks the
// date after which the section is no longer relevant.
type Section struct {
	Meta        `bson:",inline"`
	Name        string     `json:"name" bson:"name" validate:"required"`
	Description string     `json:"description" bson:"description" validate:"required"`
	Order       int        `json:"order" bson:"order" validate:"gte=0"`
	EndDate     *time.Time `json:"endDate,omitempty" bson:"endDate,omitempty"`
}

// SectionInput is the body of POST /sections.
type SectionInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Order       int    `json:"order"`
	EndDate     *Date  `json:"endDate"`
}

func (in SectionInput) Normalize() Section {
	return Section{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Order:       in.Order,
		EndDate:     in.EndDate.ptr(),
	}
}

// Category belongs to a Section through SectionID. The reference is not
// checked against the sections collection.
type Category struct {
	Meta        `bson:",inline"`
	Name        string     `json:"name" bson:"name" validate:"required"`
	Description string     `json:"description" bson:"description" validate:"required"`
	SectionID   string     `json:"sectionId" bson:"sectionId" validate:"required"`
	Order       int        `json:"order" bson:"order" validate:"gte=0"`
	EndDate     *time.Time `json:"endDate,omitempty" bson:"endDate,omitempty"`
}

// CategoryInput is the body of POST /categories.
type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	SectionID   string `json:"sectionId"`
	Order       int    `json:"order"`
	EndDate     *Date  `json:"endDate"`
}

func (in CategoryInput) Normalize() Category {
	return Category{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		SectionID:   strings.TrimSpace(in.SectionID),
		Order:       in.Order,
		EndDate:     in.EndDate.ptr(),
	}
}
