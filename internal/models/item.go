// file: internal/models/item.go
// version: 1.1.0
// guid: 3f8a2b6c-9d41-4e07-b5a2-c81f6d3e9a04

package models

import "fmt"

// Item represents a single thrifted clothing item in the catalog.
// Items are loaded once at startup and treated as read-only for the
// rest of the session.
type Item struct {
	ID          string   `json:"id" yaml:"id" validate:"required"`
	Name        string   `json:"name" yaml:"name" validate:"required"`
	Category    string   `json:"category" yaml:"category" validate:"required"`
	Color       string   `json:"color" yaml:"color" validate:"required"`
	Style       string   `json:"style" yaml:"style" validate:"required"`
	Season      []string `json:"season" yaml:"season" validate:"omitempty,min=1,dive,required"`
	Material    string   `json:"material" yaml:"material" validate:"required"`
	Occasion    []string `json:"occasion" yaml:"occasion" validate:"omitempty,min=1,dive,required"`
	Gender      string   `json:"gender" yaml:"gender" validate:"required"`
	Size        string   `json:"size" yaml:"size" validate:"required"`
	Condition   string   `json:"condition" yaml:"condition" validate:"required"`
	Price       float64  `json:"price" yaml:"price" validate:"gte=0"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// String returns a short one-line identifier for logs and error messages.
func (it Item) String() string {
	return fmt.Sprintf("%s (%s)", it.Name, it.ID)
}

// ScalarValue returns the item's value for a scalar text attribute.
// It returns "" for list attributes and the price range, which have no
// single text value.
func (it Item) ScalarValue(attr Attribute) string {
	switch attr {
	case AttrCategory:
		return it.Category
	case AttrColor:
		return it.Color
	case AttrStyle:
		return it.Style
	case AttrMaterial:
		return it.Material
	case AttrGender:
		return it.Gender
	case AttrSize:
		return it.Size
	case AttrCondition:
		return it.Condition
	}
	return ""
}

// ListValue returns the item's values for a list attribute, or nil for
// every other attribute.
func (it Item) ListValue(attr Attribute) []string {
	switch attr {
	case AttrSeason:
		return it.Season
	case AttrOccasion:
		return it.Occasion
	}
	return nil
}
