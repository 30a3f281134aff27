// Package offertest provides record fixtures for tests.
package offertest

import "github.com/tate-it/energy-toolbox-sub003/internal/offer"

// Ptr returns a pointer to v, for filling optional fields inline.
func Ptr[T any](v T) *T { return &v }

// Valid returns a complete electricity fixed-price offer that passes
// full-record validation. Tests mutate the copy they get.
func Valid() *offer.Offer {
	return &offer.Offer{
		Identification: &offer.Identification{
			VATNumber: Ptr("12345678901"),
			OfferCode: Ptr("SUMMER2026"),
		},
		Details: &offer.Details{
			MarketType:      Ptr(offer.MarketElectricity),
			SingleOffer:     Ptr(true),
			ClientType:      Ptr(offer.ClientDomestic),
			OfferType:       Ptr(offer.OfferFixed),
			ActivationTypes: []offer.ActivationType{offer.ActivationAlways},
			Name:            Ptr("Summer Fixed"),
			Description:     Ptr("Fixed price electricity offer for domestic clients."),
			DurationMonths:  Ptr(12),
			Guarantees:      Ptr("No deposit required."),
		},
		ActivationMethods: &offer.ActivationMethods{
			Methods: []offer.ActivationMethod{offer.MethodPointOfSale},
		},
		Contacts: &offer.Contacts{
			Phone: Ptr("02 12345678"),
		},
		Validity: &offer.Validity{
			StartTimestamp: Ptr("2026-01-01T00:00:00"),
			EndTimestamp:   Ptr("2026-06-30T23:59:59"),
		},
		PaymentMethods: []offer.PaymentMethod{
			{Method: Ptr(offer.PaymentDirectDebit)},
		},
		PriceType: &offer.PriceType{
			BandConfiguration: Ptr(offer.BandsMonorario),
		},
		Dispatching: []offer.DispatchingComponent{
			{Type: Ptr(offer.DispatchingDisp), Name: Ptr("Disp")},
		},
		ContractualConditions: []offer.ContractualCondition{
			{
				Type:        Ptr(offer.ConditionWithdrawal),
				Description: Ptr("Withdrawal per standard regulatory terms."),
				IsLimiting:  Ptr(false),
			},
		},
	}
}

// ValidDual returns a clean dual fuel variant of the base fixture.
func ValidDual() *offer.Offer {
	o := Valid()
	o.Details.MarketType = Ptr(offer.MarketDualFuel)
	o.Details.SingleOffer = nil
	o.DualOffer = &offer.DualOffer{
		ElectricityCodes: []string{"ELEC01"},
		GasCodes:         []string{"GAS01"},
	}
	return o
}
