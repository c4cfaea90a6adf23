package viewmodel

// BadgeVariant selects the visual treatment of a badge.
type BadgeVariant string

const (
	BadgeDefault   BadgeVariant = "default"
	BadgeSecondary BadgeVariant = "secondary"
	BadgeOutline   BadgeVariant = "outline"
)

// Badge is a short label rendered as a pill.
type Badge struct {
	Text    string       `json:"text"`
	Variant BadgeVariant `json:"variant"`
}

// Link is a navigation target; the presentation layer decides how to render it.
type Link struct {
	Path  string `json:"path"`
	Label string `json:"label"`
}

// Avatar is an optional image with a text fallback.
type Avatar struct {
	Image    string `json:"image,omitempty"`
	Fallback string `json:"fallback"`
}

// Counter is a labelled summary figure.
type Counter struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// Person is a compact user card.
type Person struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar Avatar `json:"avatar"`
}

// PeopleList is a card grid of people. Empty holds the sentinel text when People is empty.
type PeopleList struct {
	People []Person `json:"people"`
	Empty  string   `json:"empty,omitempty"`
}
