package quote

import (
	"errors"
	"fmt"
	"math"

	"github.com/eliksir/quote-service/internal/domain/models"
)

// ErrInvalidInput indicates a quote request that breaks the calculator preconditions.
var ErrInvalidInput = errors.New("invalid quote input")

const (
	// shoppingListBaseGuests is the event size the shopping list baselines describe.
	shoppingListBaseGuests = 50
	minBottles             = 1
	minSyrupLiters         = 1
	minIceKg               = 4
)

// Compute prices a single calculator selection. It performs no I/O and never
// mutates its arguments, so it is safe to call on every input change.
//
// Guests are expected to be clamped into the offer's range by the caller; values
// outside the range are priced as given and still pay the full package price.
func Compute(policy models.PricingPolicy, offer models.PackageOffer, guests int, addons models.AddonSelection) (models.QuoteResult, error) {
	if guests <= 0 {
		return models.QuoteResult{}, fmt.Errorf("%w: guests must be positive, got %d", ErrInvalidInput, guests)
	}
	if offer.Hours <= 0 {
		return models.QuoteResult{}, fmt.Errorf("%w: offer %s has no service hours", ErrInvalidInput, offer.ID)
	}

	kids := offer.IsKids()
	b := models.QuoteBreakdown{
		PackagePrice:  offer.Price,
		PromoDiscount: policy.PromoDiscount,
	}

	if addons.Fountain {
		f := policy.Addons.Fountain
		b.Fountain = min(f.Max, max(f.Min, guests*f.PerGuest))
	}

	if addons.Keg && !kids {
		k := policy.Addons.Keg
		if k.GuestsPerKeg < 1 {
			return models.QuoteResult{}, fmt.Errorf("%w: keg.guestsPerKeg must be at least 1", ErrInvalidInput)
		}
		b.Kegs = max(1, ceilDiv(guests, k.GuestsPerKeg))
		b.Keg = b.Kegs * k.PricePerKeg
		// A keg always comes with an extra barman.
		b.ExtraBarman = policy.Addons.ExtraBarman
	}

	if addons.Lemonade {
		l := policy.Addons.Lemonade
		if l.BlockGuests < 1 {
			return models.QuoteResult{}, fmt.Errorf("%w: lemonade.blockGuests must be at least 1", ErrInvalidInput)
		}
		b.LemonadeBlocks = max(1, ceilDiv(guests, l.BlockGuests))
		b.Lemonade = b.LemonadeBlocks * l.Base
	}

	if addons.Hockery {
		b.Hockery = policy.Addons.Hockery
	}
	if addons.LEDLighting {
		b.LEDLighting = policy.Addons.LEDLighting
	}

	b.AddonsTotal = b.Fountain + b.Keg + b.ExtraBarman + b.Lemonade + b.Hockery + b.LEDLighting
	b.Subtotal = offer.Price + b.AddonsTotal

	total := roundHalfUp(float64(b.Subtotal) * (1 - policy.PromoDiscount))

	shots := 0
	if !kids {
		shots = roundHalfUp(float64(guests) * offer.Shots())
	}

	return models.QuoteResult{
		OfferID:            offer.ID,
		OfferName:          offer.Name,
		Guests:             guests,
		TotalAfterDiscount: total,
		PricePerGuest:      roundHalfUp(float64(total) / float64(guests)),
		PricePerHour:       roundHalfUp(float64(total) / float64(offer.Hours)),
		EstimatedCocktails: roundHalfUp(float64(guests) * offer.DrinksPerGuest),
		EstimatedShots:     shots,
		Addons:             addons,
		ShoppingList:       scaleShoppingList(policy.ShoppingList, guests, kids),
		Breakdown:          b,
	}, nil
}

// ClampGuests pulls guests into the offer's [MinGuests, MaxGuests] range.
func ClampGuests(offer models.PackageOffer, guests int) int {
	if guests < offer.MinGuests {
		return offer.MinGuests
	}
	if guests > offer.MaxGuests {
		return offer.MaxGuests
	}
	return guests
}

func scaleShoppingList(base models.ShoppingList, guests int, kids bool) models.ShoppingListEstimate {
	scale := func(qty, floor int) int {
		return max(floor, ceilDiv(qty*guests, shoppingListBaseGuests))
	}

	out := models.ShoppingListEstimate{
		SyrupsLiters: scale(base.SyrupsLiters, minSyrupLiters),
		IceKg:        scale(base.IceKg, minIceKg),
	}
	if kids {
		return out
	}

	out.VodkaRumGinBottles = scale(base.VodkaRumGinBottles, minBottles)
	out.LiqueurBottles = scale(base.LiqueurBottles, minBottles)
	out.AperolBottles = scale(base.AperolBottles, minBottles)
	out.ProseccoBottles = scale(base.ProseccoBottles, minBottles)
	return out
}

// ceilDiv divides rounding towards positive infinity. d must be positive.
func ceilDiv(n, d int) int {
	q := n / d
	if n%d != 0 && n > 0 {
		q++
	}
	return q
}

// roundHalfUp rounds to the nearest integer with halves going up, the way the
// website has always displayed prices.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
