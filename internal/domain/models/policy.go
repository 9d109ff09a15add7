package models

import (
	"errors"
	"fmt"
)

// PricingPolicy is the remotely configurable price list consumed by the calculator.
// Field names follow the backend wire format.
type PricingPolicy struct {
	PromoDiscount      float64         `json:"promoDiscount" bson:"promoDiscount"`
	PricePerExtraGuest map[OfferID]int `json:"pricePerExtraGuest" bson:"pricePerExtraGuest"`
	Addons             AddonPricing    `json:"addons" bson:"addons"`
	ShoppingList       ShoppingList    `json:"shoppingList" bson:"shoppingList"`
}

// AddonPricing holds the cost parameters of every optional extra.
type AddonPricing struct {
	Fountain    FountainPricing `json:"fountain" bson:"fountain"`
	Keg         KegPricing      `json:"keg" bson:"keg"`
	ExtraBarman int             `json:"extraBarman" bson:"extraBarman"`
	Lemonade    LemonadePricing `json:"lemonade" bson:"lemonade"`
	Hockery     int             `json:"hockery" bson:"hockery"`
	LEDLighting int             `json:"ledLighting" bson:"ledLighting"`
}

// FountainPricing is a per-guest price clamped into [Min, Max].
type FountainPricing struct {
	PerGuest int `json:"perGuest" bson:"perGuest"`
	Min      int `json:"min" bson:"min"`
	Max      int `json:"max" bson:"max"`
}

// KegPricing charges per keg, one keg per GuestsPerKeg guests.
type KegPricing struct {
	PricePerKeg  int `json:"pricePerKeg" bson:"pricePerKeg"`
	GuestsPerKeg int `json:"guestsPerKeg" bson:"guestsPerKeg"`
}

// LemonadePricing charges Base per started block of BlockGuests guests.
type LemonadePricing struct {
	Base        int `json:"base" bson:"base"`
	BlockGuests int `json:"blockGuests" bson:"blockGuests"`
}

// ShoppingList holds baseline quantities for a 50-guest event.
type ShoppingList struct {
	VodkaRumGinBottles int `json:"vodkaRumGinBottles" bson:"vodkaRumGinBottles"`
	LiqueurBottles     int `json:"liqueurBottles" bson:"liqueurBottles"`
	AperolBottles      int `json:"aperolBottles" bson:"aperolBottles"`
	ProseccoBottles    int `json:"proseccoBottles" bson:"proseccoBottles"`
	SyrupsLiters       int `json:"syrupsLiters" bson:"syrupsLiters"`
	IceKg              int `json:"iceKg" bson:"iceKg"`
}

// ErrInvalidPolicy indicates a policy breaking the documented value ranges.
var ErrInvalidPolicy = errors.New("invalid pricing policy")

// Validate checks the value invariants of the policy: non-negative money and counts,
// a discount within [0,1] and block sizes of at least one guest.
func (p PricingPolicy) Validate() error {
	if p.PromoDiscount < 0 || p.PromoDiscount > 1 {
		return fmt.Errorf("%w: promoDiscount %.4f outside [0,1]", ErrInvalidPolicy, p.PromoDiscount)
	}

	for id, price := range p.PricePerExtraGuest {
		if price < 0 {
			return fmt.Errorf("%w: pricePerExtraGuest[%s] is negative", ErrInvalidPolicy, id)
		}
	}

	a := p.Addons
	if a.Fountain.Min > a.Fountain.Max {
		return fmt.Errorf("%w: fountain min %d above max %d", ErrInvalidPolicy, a.Fountain.Min, a.Fountain.Max)
	}
	if a.Keg.GuestsPerKeg < 1 {
		return fmt.Errorf("%w: keg.guestsPerKeg must be at least 1", ErrInvalidPolicy)
	}
	if a.Lemonade.BlockGuests < 1 {
		return fmt.Errorf("%w: lemonade.blockGuests must be at least 1", ErrInvalidPolicy)
	}

	amounts := map[string]int{
		"fountain.perGuest":               a.Fountain.PerGuest,
		"fountain.min":                    a.Fountain.Min,
		"fountain.max":                    a.Fountain.Max,
		"keg.pricePerKeg":                 a.Keg.PricePerKeg,
		"extraBarman":                     a.ExtraBarman,
		"lemonade.base":                   a.Lemonade.Base,
		"hockery":                         a.Hockery,
		"ledLighting":                     a.LEDLighting,
		"shoppingList.vodkaRumGinBottles": p.ShoppingList.VodkaRumGinBottles,
		"shoppingList.liqueurBottles":     p.ShoppingList.LiqueurBottles,
		"shoppingList.aperolBottles":      p.ShoppingList.AperolBottles,
		"shoppingList.proseccoBottles":    p.ShoppingList.ProseccoBottles,
		"shoppingList.syrupsLiters":       p.ShoppingList.SyrupsLiters,
		"shoppingList.iceKg":              p.ShoppingList.IceKg,
	}
	for field, value := range amounts {
		if value < 0 {
			return fmt.Errorf("%w: %s is negative", ErrInvalidPolicy, field)
		}
	}

	return nil
}
