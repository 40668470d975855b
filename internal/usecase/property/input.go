package property

import (
	"strings"

	propertydomain "github.com/VaibhaviS123/SafeStay/internal/domain/property"
	"github.com/VaibhaviS123/SafeStay/internal/httperr"
	"github.com/VaibhaviS123/SafeStay/internal/models"
	"github.com/VaibhaviS123/SafeStay/internal/validators"
)

// PropertyInput carries the editable listing fields. Images is the ordered
// list of image references; on update a nil slice keeps the gallery.
type PropertyInput struct {
	Name        string `validate:"required,max=150"`
	City        string `validate:"required,max=100"`
	Area        string `validate:"required,max=100"`
	Location    string `validate:"max=255"`
	Address     string `validate:"max=255"`
	Description string
	SafetyRules string

	PricePerNight *float64 `validate:"omitempty,gte=0"`
	Bedrooms      int      `validate:"gte=0,lte=50"`
	Bathrooms     int      `validate:"gte=0,lte=50"`
	MaxGuests     int      `validate:"gte=0,lte=100"`
	PropertyType  string   `validate:"omitempty,propertytype"`

	Amenities []string
	Images    []string
}

func (in PropertyInput) normalized() PropertyInput {
	in.Name = strings.TrimSpace(in.Name)
	in.City = strings.TrimSpace(in.City)
	in.Area = strings.TrimSpace(in.Area)
	in.Location = strings.TrimSpace(in.Location)
	in.PropertyType = strings.ToLower(strings.TrimSpace(in.PropertyType))
	return in
}

func (in PropertyInput) validate() error {
	return validators.Struct(in)
}

// apply copies the input onto p and fills defaults.
func (in PropertyInput) apply(p *models.Property) {
	p.Name = in.Name
	p.City = in.City
	p.Area = in.Area
	p.Location = in.Location
	p.Address = strings.TrimSpace(in.Address)
	p.Description = strings.TrimSpace(in.Description)
	p.SafetyRules = strings.TrimSpace(in.SafetyRules)
	p.PricePerNight = in.PricePerNight
	p.Bedrooms = in.Bedrooms
	p.Bathrooms = in.Bathrooms
	p.MaxGuests = in.MaxGuests
	p.PropertyType = in.PropertyType
	p.Amenities = propertydomain.NormalizeAmenities(in.Amenities)

	propertydomain.ApplyDefaults(p)
}

func gallery(refs []string) ([]models.PropertyImage, string) {
	images := propertydomain.OrderedImages(refs)
	if len(images) == 0 {
		return images, ""
	}
	return images, images[0].ImageRef
}

var errNotOwner = httperr.Unauthorized("not_property_owner", "You don't have permission to manage this property.")
