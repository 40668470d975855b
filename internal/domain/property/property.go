package property

import (
	"strings"

	"github.com/VaibhaviS123/SafeStay/internal/models"
)

const (
	DefaultBedrooms     = 1
	DefaultBathrooms    = 1
	DefaultMaxGuests    = 2
	DefaultPropertyType = "apartment"
)

var propertyTypes = []string{"apartment", "house", "villa", "cottage", "studio", "room"}

func PropertyTypes() []string {
	out := make([]string, len(propertyTypes))
	copy(out, propertyTypes)
	return out
}

func IsValidType(t string) bool {
	for _, known := range propertyTypes {
		if t == known {
			return true
		}
	}
	return false
}

// LocationOf builds the display location when the owner leaves it empty.
func LocationOf(area, city string) string {
	area, city = strings.TrimSpace(area), strings.TrimSpace(city)
	switch {
	case area != "" && city != "":
		return area + ", " + city
	case city != "":
		return city
	default:
		return area
	}
}

// ApplyDefaults fills the fields a listing may leave empty.
func ApplyDefaults(p *models.Property) {
	if p.Bedrooms <= 0 {
		p.Bedrooms = DefaultBedrooms
	}
	if p.Bathrooms <= 0 {
		p.Bathrooms = DefaultBathrooms
	}
	if p.MaxGuests <= 0 {
		p.MaxGuests = DefaultMaxGuests
	}
	if p.PropertyType == "" {
		p.PropertyType = DefaultPropertyType
	}
	if strings.TrimSpace(p.Location) == "" {
		p.Location = LocationOf(p.Area, p.City)
	}
	if p.Amenities == nil {
		p.Amenities = []string{}
	}
}

// OrderedImages turns a list of image references into gallery rows, keeping
// the given order and skipping blanks.
func OrderedImages(refs []string) []models.PropertyImage {
	images := make([]models.PropertyImage, 0, len(refs))
	for _, ref := range refs {
		ref = strings.TrimSpace(ref)
		if ref == "" {
			continue
		}
		images = append(images, models.PropertyImage{
			ImageRef:     ref,
			DisplayOrder: len(images),
		})
	}
	return images
}

// NormalizeAmenities lower-cases, trims and de-duplicates amenity tags.
func NormalizeAmenities(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
