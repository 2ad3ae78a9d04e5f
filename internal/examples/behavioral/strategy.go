package behavioral

import (
	"patternlab/internal/examples/money"
	"patternlab/internal/output"
)

// Parcel is what gets shipped.
type Parcel struct {
	WeightGrams int64
	Value       money.Cents
}

// ShippingStrategy prices a parcel.
type ShippingStrategy interface {
	Name() string
	Cost(parcel Parcel) money.Cents
}

// FlatRate charges the same amount for every parcel.
type FlatRate struct{ Amount money.Cents }

func (s FlatRate) Name() string              { return "flat rate" }
func (s FlatRate) Cost(_ Parcel) money.Cents { return s.Amount }

// ByWeight charges per started kilogram.
type ByWeight struct{ PerKilo money.Cents }

func (s ByWeight) Name() string { return "by weight" }
// Cost rounds the weight up to whole kilograms.
func (s ByWeight) Cost(parcel Parcel) money.Cents {
	kilos := (parcel.WeightGrams + 999) / 1000
	return s.PerKilo * money.Cents(kilos)
}

// FreeAbove ships for free when the parcel value reaches Threshold and
// falls back to another strategy otherwise.
type FreeAbove struct {
	Threshold money.Cents
	Fallback  ShippingStrategy
}

func (s FreeAbove) Name() string { return "free above " + s.Threshold.String() }
// Cost is zero at or above Threshold.
func (s FreeAbove) Cost(parcel Parcel) money.Cents {
	if parcel.Value >= s.Threshold {
		return 0
	}
	return s.Fallback.Cost(parcel)
}

// Checkout uses whichever strategy it is configured with.
type Checkout struct {
	Strategy ShippingStrategy
}

// Total is the parcel value plus shipping.
func (c Checkout) Total(parcel Parcel) money.Cents {
	return parcel.Value + c.Strategy.Cost(parcel)
}

func demoStrategy(p *output.Printer) error {
	parcels := []Parcel{
		{WeightGrams: 800, Value: money.Dollars(20)},
		{WeightGrams: 2500, Value: money.Dollars(75)},
	}
	strategies := []ShippingStrategy{
		FlatRate{Amount: money.Cents(599)},
		ByWeight{PerKilo: money.Cents(250)},
		FreeAbove{Threshold: money.Dollars(50), Fallback: FlatRate{Amount: money.Cents(599)}},
	}

	for _, strategy := range strategies {
		checkout := Checkout{Strategy: strategy}
		for _, parcel := range parcels {
			p.Linef("%s: %dg worth %s -> total %s", strategy.Name(), parcel.WeightGrams, parcel.Value, checkout.Total(parcel))
		}
	}
	return nil
}
