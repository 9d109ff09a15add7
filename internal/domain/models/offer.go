package models

// OfferID enumerates the package tiers sold by the bar.
type OfferID string

const (
	OfferBasic     OfferID = "basic"
	OfferPremium   OfferID = "premium"
	OfferExclusive OfferID = "exclusive"
	OfferKids      OfferID = "kids"
	OfferFamily    OfferID = "family"
	OfferBusiness  OfferID = "business"
)

// DefaultShotsPerGuest applies to offers that do not state their own shot ratio.
const DefaultShotsPerGuest = 0.5

// OfferIDs lists every known tier in display order.
var OfferIDs = []OfferID{OfferBasic, OfferPremium, OfferExclusive, OfferKids, OfferFamily, OfferBusiness}

// Valid reports whether the id names one of the known tiers.
func (id OfferID) Valid() bool {
	for _, known := range OfferIDs {
		if id == known {
			return true
		}
	}
	return false
}

// PackageOffer is a static catalog entry describing one service tier.
type PackageOffer struct {
	ID             OfferID  `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description,omitempty"`
	Price          int      `json:"price"`
	MinGuests      int      `json:"minGuests"`
	MaxGuests      int      `json:"maxGuests"`
	Hours          int      `json:"hours"`
	DrinksPerGuest float64  `json:"drinksPerGuest"`
	ShotsPerGuest  *float64 `json:"shotsPerGuest,omitempty"`
	Features       []string `json:"features,omitempty"`
	Popular        bool     `json:"popular,omitempty"`
}

// IsKids reports whether the offer is the alcohol-free kids party.
func (o PackageOffer) IsKids() bool {
	return o.ID == OfferKids
}

// Shots returns the shot ratio used for estimates. Kids parties never serve shots.
func (o PackageOffer) Shots() float64 {
	if o.IsKids() {
		return 0
	}
	if o.ShotsPerGuest == nil {
		return DefaultShotsPerGuest
	}
	return *o.ShotsPerGuest
}
