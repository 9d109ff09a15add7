package catalog

import (
	"errors"
	"fmt"

	"github.com/eliksir/quote-service/internal/domain/models"
)

// ErrUnknownOffer indicates the requested tier is not in the catalog.
var ErrUnknownOffer = errors.New("unknown offer")

// Catalog is a read-only lookup of package offers.
type Catalog interface {
	Offer(id models.OfferID) (models.PackageOffer, error)
	Offers() []models.PackageOffer
}

// Static is an in-memory Catalog keyed by offer id.
type Static struct {
	order  []models.OfferID
	offers map[models.OfferID]models.PackageOffer
}

// NewStatic builds a catalog from the given offers. Later duplicates replace earlier ones.
func NewStatic(offers ...models.PackageOffer) *Static {
	c := &Static{offers: make(map[models.OfferID]models.PackageOffer, len(offers))}
	for _, offer := range offers {
		if _, exists := c.offers[offer.ID]; !exists {
			c.order = append(c.order, offer.ID)
		}
		c.offers[offer.ID] = offer
	}
	return c
}

// Default returns the catalog published on the website.
func Default() *Static {
	return NewStatic(DefaultOffers()...)
}

// Offer looks up a single tier.
func (c *Static) Offer(id models.OfferID) (models.PackageOffer, error) {
	offer, ok := c.offers[id]
	if !ok {
		return models.PackageOffer{}, fmt.Errorf("%w: %q", ErrUnknownOffer, id)
	}
	return offer, nil
}

// Offers lists every tier in insertion order.
func (c *Static) Offers() []models.PackageOffer {
	out := make([]models.PackageOffer, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.offers[id])
	}
	return out
}

// DefaultOffers returns the six tiers of the mobile bar.
func DefaultOffers() []models.PackageOffer {
	return []models.PackageOffer{
		{
			ID:             models.OfferBasic,
			Name:           "BASIC",
			Description:    "Idealny dla kameralnych przyjęć od 20 do 50 osób.",
			Price:          2900,
			MinGuests:      20,
			MaxGuests:      50,
			Hours:          5,
			DrinksPerGuest: 3,
			Features: []string{
				"Barman",
				"Szkło koktajlowe i 0%",
				"Lód, owoce, dekoracje",
				"6 koktajli signature + 2 bezalkoholowe",
				"Karta koktajli na ladzie",
			},
		},
		{
			ID:             models.OfferPremium,
			Name:           "PREMIUM",
			Description:    "Najpopularniejszy wybór – wesela 50–80 gości.",
			Price:          3900,
			MinGuests:      50,
			MaxGuests:      80,
			Hours:          6,
			DrinksPerGuest: 3.5,
			ShotsPerGuest:  ratio(1),
			Popular:        true,
			Features: []string{
				"2 barmanów (lub barman + barback)",
				"Rozszerzona karta (gin / whisky na życzenie)",
				"Stacja lemoniad 0%",
				"Dekoracje premium",
			},
		},
		{
			ID:             models.OfferExclusive,
			Name:           "EXCLUSIVE",
			Description:    "Duże wesela i eventy – pełny efekt WOW.",
			Price:          5200,
			MinGuests:      80,
			MaxGuests:      120,
			Hours:          7,
			DrinksPerGuest: 4,
			ShotsPerGuest:  ratio(1.5),
			Features: []string{
				"Barman + barback",
				"Personalizacja baru (LED / branding)",
				"Welcome prosecco / spritz (na życzenie)",
				"Rozbudowana karta koktajli & 0%",
			},
		},
		{
			ID:             models.OfferKids,
			Name:           "Kids Party 0%",
			Description:    "Kolorowe mocktaile, lemoniady, bez alkoholu.",
			Price:          1900,
			MinGuests:      15,
			MaxGuests:      40,
			Hours:          3,
			DrinksPerGuest: 2.5,
			Features: []string{
				"Mocktaile w kolorach tęczy",
				"Stacja lemoniad",
				"Słomki papierowe, confetti-bar",
			},
		},
		{
			ID:             models.OfferFamily,
			Name:           "Family & Seniors",
			Description:    "Łagodne miksy, więcej 0% – komunie, rocznice.",
			Price:          2600,
			MinGuests:      25,
			MaxGuests:      60,
			Hours:          4,
			DrinksPerGuest: 2.5,
			Features: []string{
				"Łagodne koktajle z niższą zawartością alkoholu",
				"Duży udział napojów 0% dla kierowców",
				"Szybki serwis i wygoda obsługi",
			},
		},
		{
			ID:             models.OfferBusiness,
			Name:           "Event firmowy",
			Description:    "Szybki serwis dopasowany do charakteru wydarzenia.",
			Price:          3400,
			MinGuests:      30,
			MaxGuests:      100,
			Hours:          4,
			DrinksPerGuest: 2.5,
			Features: []string{
				"Karta dopasowana do profilu wydarzenia",
				"Możliwość stacji kawowej / lemoniad",
				"Konfiguracja pod integracje, gale, targi",
			},
		},
	}
}

func ratio(v float64) *float64 {
	return &v
}
