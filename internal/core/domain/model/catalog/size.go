package catalog

import "strings"

// Size is the pizza size a price is quoted for. Extras are unsized and carry NoSize.
type Size int

const (
	NoSize Size = iota
	Small
	Medium
	Large
)

// Sizes lists the orderable sizes in menu order.
func Sizes() []Size {
	return []Size{Small, Medium, Large}
}

// ParseSize accepts "small", "medium" or "large" in any case, surrounding spaces ignored.
// Anything else is reported as an unknown catalog item.
func ParseSize(s string) (Size, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "small":
		return Small, nil
	case "medium":
		return Medium, nil
	case "large":
		return Large, nil
	}
	return NoSize, &UnknownItemError{Kind: "size", ID: s}
}

func (s Size) String() string {
	switch s {
	case Small:
		return "small"
	case Medium:
		return "medium"
	case Large:
		return "large"
	case NoSize:
	}
	return ""
}

// Short is the one-letter label used in the menu text.
func (s Size) Short() string {
	switch s {
	case Small:
		return "S"
	case Medium:
		return "M"
	case Large:
		return "L"
	case NoSize:
	}
	return ""
}
