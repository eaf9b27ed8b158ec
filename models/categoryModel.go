package models

// Category kinds are plain tags the presentation layer maps to icons.
const (
	CategoryKindSavory  = "savory"
	CategoryKindChef    = "chef"
	CategoryKindDessert = "dessert"
	CategoryKindDrink   = "drink"
)

// Category groups catalog dishes. Kind replaces any toolkit-specific icon
// reference in the data model.
type Category struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Kind  string     `json:"kind"`
	Items []MenuItem `json:"items"`
}
