package contentgen

import (
	"fmt"

	"github.com/abhisek/sprouts/internal/content"
)

// Candidate is a generated item that has not been approved yet.
type Candidate struct {
	Kind  content.Kind
	Name  string
	Color string // color items only
	Image string // data URI

	// Model names the image model that drew the picture.
	Model string
}

// Key returns the identity the candidate would take in the catalog.
func (c *Candidate) Key() string { return c.Name }

// Item converts the candidate to the catalog item it becomes on approval.
func (c *Candidate) Item() content.Item {
	switch c.Kind {
	case content.Words:
		return content.WordItem{Word: c.Name, Image: c.Image}
	case content.CountingItems:
		return content.CountingItem{Name: c.Name, Image: c.Image}
	case content.ColorItems:
		return content.ColorItem{Name: c.Name, Color: c.Color, Image: c.Image}
	}
	return nil
}

// Label is a short human description, e.g. "red car".
func (c *Candidate) Label() string {
	if c.Color != "" {
		return c.Color + " " + c.Name
	}
	return c.Name
}

func (c *Candidate) String() string {
	return fmt.Sprintf("%s %q", c.Kind, c.Label())
}
