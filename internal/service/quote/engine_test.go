package quote

import (
	"errors"
	"testing"

	"github.com/eliksir/quote-service/internal/domain/models"
)

func testPolicy() models.PricingPolicy {
	return models.PricingPolicy{
		PromoDiscount: 0,
		PricePerExtraGuest: map[models.OfferID]int{
			models.OfferBasic:  40,
			models.OfferFamily: 35,
			models.OfferKids:   30,
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

func familyOffer() models.PackageOffer {
	shots := 0.5
	return models.PackageOffer{
		ID:             models.OfferFamily,
		Name:           "Family & Seniors",
		Price:          1200,
		MinGuests:      25,
		MaxGuests:      150,
		Hours:          6,
		DrinksPerGuest: 3,
		ShotsPerGuest:  &shots,
	}
}

func kidsOffer() models.PackageOffer {
	offer := familyOffer()
	offer.ID = models.OfferKids
	offer.Name = "Kids Party 0%"
	return offer
}

func mustCompute(t *testing.T, policy models.PricingPolicy, offer models.PackageOffer, guests int, addons models.AddonSelection) models.QuoteResult {
	t.Helper()
	result, err := Compute(policy, offer, guests, addons)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	return result
}

func TestComputeBasePackage(t *testing.T) {
	result := mustCompute(t, testPolicy(), familyOffer(), 50, models.AddonSelection{})

	if result.TotalAfterDiscount != 1200 {
		t.Errorf("total: got %d, want 1200", result.TotalAfterDiscount)
	}
	if result.PricePerGuest != 24 {
		t.Errorf("price per guest: got %d, want 24", result.PricePerGuest)
	}
	if result.PricePerHour != 200 {
		t.Errorf("price per hour: got %d, want 200", result.PricePerHour)
	}
	if result.EstimatedCocktails != 150 {
		t.Errorf("cocktails: got %d, want 150", result.EstimatedCocktails)
	}
	if result.EstimatedShots != 25 {
		t.Errorf("shots: got %d, want 25", result.EstimatedShots)
	}
	if result.OfferName != "Family & Seniors" || result.Guests != 50 {
		t.Errorf("unexpected snapshot header: %+v", result)
	}
}

func TestComputeKegAddsExtraBarman(t *testing.T) {
	result := mustCompute(t, testPolicy(), familyOffer(), 50, models.AddonSelection{Keg: true})

	b := result.Breakdown
	if b.Keg != 500 || b.Kegs != 1 {
		t.Errorf("keg: got %d (%d kegs), want 500 (1 keg)", b.Keg, b.Kegs)
	}
	if b.ExtraBarman != 400 {
		t.Errorf("extra barman: got %d, want 400", b.ExtraBarman)
	}
	if b.AddonsTotal != 900 {
		t.Errorf("addons total: got %d, want 900", b.AddonsTotal)
	}
	if result.TotalAfterDiscount != 2100 {
		t.Errorf("total: got %d, want 2100", result.TotalAfterDiscount)
	}
}

func TestComputeKegCountRoundsUp(t *testing.T) {
	result := mustCompute(t, testPolicy(), familyOffer(), 51, models.AddonSelection{Keg: true})
	if result.Breakdown.Kegs != 2 || result.Breakdown.Keg != 1000 {
		t.Fatalf("expected 2 kegs costing 1000, got %d kegs costing %d", result.Breakdown.Kegs, result.Breakdown.Keg)
	}
}

func TestComputeKidsOffer(t *testing.T) {
	addons := models.AddonSelection{Keg: true, Fountain: true, Lemonade: true}

	for _, guests := range []int{1, 15, 40, 50, 120, 400} {
		result := mustCompute(t, testPolicy(), kidsOffer(), guests, addons)

		if result.Breakdown.Keg != 0 || result.Breakdown.ExtraBarman != 0 {
			t.Errorf("guests=%d: kids offer priced a keg: %+v", guests, result.Breakdown)
		}
		if result.EstimatedShots != 0 {
			t.Errorf("guests=%d: kids offer estimated %d shots", guests, result.EstimatedShots)
		}
		list := result.ShoppingList
		if list.VodkaRumGinBottles != 0 || list.LiqueurBottles != 0 || list.AperolBottles != 0 || list.ProseccoBottles != 0 {
			t.Errorf("guests=%d: kids offer lists alcohol: %+v", guests, list)
		}
		if list.IceKg < 4 || list.SyrupsLiters < 1 {
			t.Errorf("guests=%d: kids offer lost non-alcohol floors: %+v", guests, list)
		}
	}
}

func TestComputeFountainClamp(t *testing.T) {
	tests := []struct {
		name   string
		guests int
		want   int
	}{
		{name: "below minimum", guests: 50, want: 600},
		{name: "within range", guests: 80, want: 800},
		{name: "above maximum", guests: 150, want: 1200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := mustCompute(t, testPolicy(), familyOffer(), tt.guests, models.AddonSelection{Fountain: true})
			if result.Breakdown.Fountain != tt.want {
				t.Fatalf("fountain: got %d, want %d", result.Breakdown.Fountain, tt.want)
			}
		})
	}
}

func TestComputeLemonadeBlocks(t *testing.T) {
	tests := []struct {
		guests     int
		wantBlocks int
	}{
		{guests: 1, wantBlocks: 1},
		{guests: 60, wantBlocks: 1},
		{guests: 61, wantBlocks: 2},
		{guests: 120, wantBlocks: 2},
	}

	for _, tt := range tests {
		result := mustCompute(t, testPolicy(), familyOffer(), tt.guests, models.AddonSelection{Lemonade: true})
		if result.Breakdown.LemonadeBlocks != tt.wantBlocks {
			t.Errorf("guests=%d: blocks got %d, want %d", tt.guests, result.Breakdown.LemonadeBlocks, tt.wantBlocks)
		}
		if result.Breakdown.Lemonade != tt.wantBlocks*300 {
			t.Errorf("guests=%d: lemonade got %d, want %d", tt.guests, result.Breakdown.Lemonade, tt.wantBlocks*300)
		}
	}
}

func TestComputeAddonAdditivity(t *testing.T) {
	policy := testPolicy()
	policy.PromoDiscount = 0.1
	all := models.AddonSelection{Fountain: true, Keg: true, Lemonade: true, Hockery: true, LEDLighting: true}

	full := mustCompute(t, policy, familyOffer(), 70, all)
	b := full.Breakdown

	sum := b.Fountain + b.Keg + b.ExtraBarman + b.Lemonade + b.Hockery + b.LEDLighting
	if b.AddonsTotal != sum {
		t.Fatalf("addons total %d differs from itemized sum %d", b.AddonsTotal, sum)
	}

	toggles := []struct {
		name string
		off  func(models.AddonSelection) models.AddonSelection
		cost int
	}{
		{"fountain", func(a models.AddonSelection) models.AddonSelection { a.Fountain = false; return a }, b.Fountain},
		{"keg", func(a models.AddonSelection) models.AddonSelection { a.Keg = false; return a }, b.Keg + b.ExtraBarman},
		{"lemonade", func(a models.AddonSelection) models.AddonSelection { a.Lemonade = false; return a }, b.Lemonade},
		{"hockery", func(a models.AddonSelection) models.AddonSelection { a.Hockery = false; return a }, b.Hockery},
		{"ledLighting", func(a models.AddonSelection) models.AddonSelection { a.LEDLighting = false; return a }, b.LEDLighting},
	}

	for _, tt := range toggles {
		t.Run(tt.name, func(t *testing.T) {
			reduced := mustCompute(t, policy, familyOffer(), 70, tt.off(all))
			diff := full.TotalAfterDiscount - reduced.TotalAfterDiscount
			want := roundHalfUp(float64(tt.cost) * 0.9)
			if diff != want {
				t.Fatalf("toggling %s changed total by %d, want %d", tt.name, diff, want)
			}
		})
	}
}

func TestComputeDiscountBounds(t *testing.T) {
	addons := models.AddonSelection{Fountain: true, Hockery: true}

	policy := testPolicy()
	policy.PromoDiscount = 0
	noDiscount := mustCompute(t, policy, familyOffer(), 50, addons)
	if noDiscount.TotalAfterDiscount != noDiscount.Breakdown.Subtotal {
		t.Errorf("zero discount: total %d, subtotal %d", noDiscount.TotalAfterDiscount, noDiscount.Breakdown.Subtotal)
	}

	policy.PromoDiscount = 1
	free := mustCompute(t, policy, familyOffer(), 50, addons)
	if free.TotalAfterDiscount != 0 || free.PricePerGuest != 0 || free.PricePerHour != 0 {
		t.Errorf("full discount should zero every price, got %+v", free)
	}

	policy.PromoDiscount = 0.15
	partial := mustCompute(t, policy, familyOffer(), 50, addons)
	// (1200 + 600 + 200) * 0.85
	if partial.TotalAfterDiscount != 1700 {
		t.Errorf("15%% discount: got %d, want 1700", partial.TotalAfterDiscount)
	}
}

func TestComputeShoppingListScaling(t *testing.T) {
	small := mustCompute(t, testPolicy(), familyOffer(), 50, models.AddonSelection{}).ShoppingList
	want := models.ShoppingListEstimate{VodkaRumGinBottles: 5, LiqueurBottles: 2, AperolBottles: 2, ProseccoBottles: 5, SyrupsLiters: 12, IceKg: 8}
	if small != want {
		t.Fatalf("baseline list: got %+v, want %+v", small, want)
	}

	large := mustCompute(t, testPolicy(), familyOffer(), 150, models.AddonSelection{}).ShoppingList
	want = models.ShoppingListEstimate{VodkaRumGinBottles: 15, LiqueurBottles: 6, AperolBottles: 6, ProseccoBottles: 15, SyrupsLiters: 36, IceKg: 24}
	if large != want {
		t.Fatalf("tripled list: got %+v, want %+v", large, want)
	}

	// 5 * 70 / 50 is exactly 7 and must not round up to 8.
	exact := mustCompute(t, testPolicy(), familyOffer(), 70, models.AddonSelection{}).ShoppingList
	if exact.VodkaRumGinBottles != 7 {
		t.Fatalf("exact multiple rounded up: got %d bottles", exact.VodkaRumGinBottles)
	}
}

func TestComputeShoppingListFloors(t *testing.T) {
	list := mustCompute(t, testPolicy(), familyOffer(), 1, models.AddonSelection{}).ShoppingList

	if list.VodkaRumGinBottles < 1 || list.LiqueurBottles < 1 || list.AperolBottles < 1 || list.ProseccoBottles < 1 {
		t.Errorf("bottles below floor of 1: %+v", list)
	}
	if list.SyrupsLiters < 1 {
		t.Errorf("syrups below floor of 1: %d", list.SyrupsLiters)
	}
	if list.IceKg != 4 {
		t.Errorf("ice: got %d, want floor 4", list.IceKg)
	}
}

func TestComputeMonotonicInGuests(t *testing.T) {
	offer := familyOffer()
	var prev models.QuoteResult

	for guests := offer.MinGuests; guests <= offer.MaxGuests; guests++ {
		cur := mustCompute(t, testPolicy(), offer, guests, models.AddonSelection{})
		if guests == offer.MinGuests {
			prev = cur
			continue
		}

		if cur.EstimatedCocktails < prev.EstimatedCocktails || cur.EstimatedShots < prev.EstimatedShots {
			t.Fatalf("guests=%d: drink estimates decreased", guests)
		}
		p, c := prev.ShoppingList, cur.ShoppingList
		if c.VodkaRumGinBottles < p.VodkaRumGinBottles || c.LiqueurBottles < p.LiqueurBottles ||
			c.AperolBottles < p.AperolBottles || c.ProseccoBottles < p.ProseccoBottles ||
			c.SyrupsLiters < p.SyrupsLiters || c.IceKg < p.IceKg {
			t.Fatalf("guests=%d: shopping list decreased from %+v to %+v", guests, p, c)
		}
		prev = cur
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	policy := testPolicy()
	policy.PromoDiscount = 0.07
	addons := models.AddonSelection{Fountain: true, Keg: true, Lemonade: true, LEDLighting: true}

	first := mustCompute(t, policy, familyOffer(), 83, addons)
	second := mustCompute(t, policy, familyOffer(), 83, addons)
	if first != second {
		t.Fatalf("same input produced different results:\n%+v\n%+v", first, second)
	}
}

func TestComputeBelowMinimumStillPaysPackagePrice(t *testing.T) {
	result := mustCompute(t, testPolicy(), familyOffer(), 5, models.AddonSelection{})
	if result.TotalAfterDiscount != 1200 {
		t.Fatalf("expected package floor of 1200, got %d", result.TotalAfterDiscount)
	}
	if result.PricePerGuest != 240 {
		t.Fatalf("expected 240 per guest, got %d", result.PricePerGuest)
	}
}

func TestComputeRejectsInvalidInput(t *testing.T) {
	zeroHours := familyOffer()
	zeroHours.Hours = 0

	brokenKeg := testPolicy()
	brokenKeg.Addons.Keg.GuestsPerKeg = 0

	brokenLemonade := testPolicy()
	brokenLemonade.Addons.Lemonade.BlockGuests = 0

	tests := []struct {
		name   string
		policy models.PricingPolicy
		offer  models.PackageOffer
		guests int
		addons models.AddonSelection
	}{
		{name: "zero guests", policy: testPolicy(), offer: familyOffer(), guests: 0},
		{name: "negative guests", policy: testPolicy(), offer: familyOffer(), guests: -3},
		{name: "zero hours", policy: testPolicy(), offer: zeroHours, guests: 50},
		{name: "keg block of zero", policy: brokenKeg, offer: familyOffer(), guests: 50, addons: models.AddonSelection{Keg: true}},
		{name: "lemonade block of zero", policy: brokenLemonade, offer: familyOffer(), guests: 50, addons: models.AddonSelection{Lemonade: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compute(tt.policy, tt.offer, tt.guests, tt.addons)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestClampGuests(t *testing.T) {
	offer := familyOffer()
	if got := ClampGuests(offer, 3); got != offer.MinGuests {
		t.Errorf("below range: got %d", got)
	}
	if got := ClampGuests(offer, 999); got != offer.MaxGuests {
		t.Errorf("above range: got %d", got)
	}
	if got := ClampGuests(offer, 40); got != 40 {
		t.Errorf("in range: got %d", got)
	}
}
