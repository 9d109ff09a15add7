package models

// AddonSelection carries the optional extras ticked by the customer.
type AddonSelection struct {
	Fountain    bool `json:"fountain" bson:"fountain"`
	Keg         bool `json:"keg" bson:"keg"`
	Lemonade    bool `json:"lemonade" bson:"lemonade"`
	Hockery     bool `json:"hockery" bson:"hockery"`
	LEDLighting bool `json:"ledLighting" bson:"ledLighting"`
}

// QuoteRequest reflects the current calculator selections.
type QuoteRequest struct {
	OfferID OfferID        `json:"offerId" bson:"offerId"`
	Guests  int            `json:"guests" bson:"guests"`
	Addons  AddonSelection `json:"addons" bson:"addons"`
	// ClampGuests pulls Guests into the offer's range before pricing.
	ClampGuests bool `json:"clampGuests,omitempty" bson:"-"`
}

// QuoteBreakdown itemizes how the total was built, before discount.
type QuoteBreakdown struct {
	PackagePrice   int     `json:"packagePrice" bson:"packagePrice"`
	Fountain       int     `json:"fountain" bson:"fountain"`
	Kegs           int     `json:"kegs" bson:"kegs"`
	Keg            int     `json:"keg" bson:"keg"`
	ExtraBarman    int     `json:"extraBarman" bson:"extraBarman"`
	LemonadeBlocks int     `json:"lemonadeBlocks" bson:"lemonadeBlocks"`
	Lemonade       int     `json:"lemonade" bson:"lemonade"`
	Hockery        int     `json:"hockery" bson:"hockery"`
	LEDLighting    int     `json:"ledLighting" bson:"ledLighting"`
	AddonsTotal    int     `json:"addonsTotal" bson:"addonsTotal"`
	Subtotal       int     `json:"subtotal" bson:"subtotal"`
	PromoDiscount  float64 `json:"promoDiscount" bson:"promoDiscount"`
}

// ShoppingListEstimate is the shopping list scaled to the guest count.
type ShoppingListEstimate struct {
	VodkaRumGinBottles int `json:"vodkaRumGinBottles" bson:"vodkaRumGinBottles"`
	LiqueurBottles     int `json:"liqueurBottles" bson:"liqueurBottles"`
	AperolBottles      int `json:"aperolBottles" bson:"aperolBottles"`
	ProseccoBottles    int `json:"proseccoBottles" bson:"proseccoBottles"`
	SyrupsLiters       int `json:"syrupsLiters" bson:"syrupsLiters"`
	IceKg              int `json:"iceKg" bson:"iceKg"`
}

// QuoteResult is the calculator snapshot handed to the presentation layer and
// attached to contact inquiries.
type QuoteResult struct {
	OfferID            OfferID              `json:"offerId" bson:"offerId"`
	OfferName          string               `json:"offerName" bson:"offerName"`
	Guests             int                  `json:"guests" bson:"guests"`
	TotalAfterDiscount int                  `json:"totalAfterDiscount" bson:"totalAfterDiscount"`
	PricePerGuest      int                  `json:"pricePerGuest" bson:"pricePerGuest"`
	PricePerHour       int                  `json:"pricePerHour" bson:"pricePerHour"`
	EstimatedCocktails int                  `json:"estimatedCocktails" bson:"estimatedCocktails"`
	EstimatedShots     int                  `json:"estimatedShots" bson:"estimatedShots"`
	Addons             AddonSelection       `json:"addons" bson:"addons"`
	ShoppingList       ShoppingListEstimate `json:"shoppingList" bson:"shoppingList"`
	Breakdown          QuoteBreakdown       `json:"breakdown" bson:"breakdown"`
}
