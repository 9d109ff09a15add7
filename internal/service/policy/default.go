package policy

import "github.com/eliksir/quote-service/internal/domain/models"

// DefaultPolicy is the price list used whenever the backend cannot provide one.
func DefaultPolicy() models.PricingPolicy {
	return models.PricingPolicy{
		PromoDiscount: 0,
		PricePerExtraGuest: map[models.OfferID]int{
			models.OfferBasic:     40,
			models.OfferPremium:   50,
			models.OfferExclusive: 60,
			models.OfferKids:      30,
			models.OfferFamily:    35,
			models.OfferBusiness:  60,
		},
		Addons: models.AddonPricing{
			Fountain:    models.FountainPricing{PerGuest: 10, Min: 600, Max: 1200},
			Keg:         models.KegPricing{PricePerKeg: 500, GuestsPerKeg: 50},
			ExtraBarman: 400,
			Lemonade:    models.LemonadePricing{Base: 300, BlockGuests: 60},
			Hockery:     200,
			LEDLighting: 500,
		},
		ShoppingList: models.ShoppingList{
			VodkaRumGinBottles: 5,
			LiqueurBottles:     2,
			AperolBottles:      2,
			ProseccoBottles:    5,
			SyrupsLiters:       12,
			IceKg:              8,
		},
	}
}
