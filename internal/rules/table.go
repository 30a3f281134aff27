package rules

import (
	"github.com/tate-it/energy-toolbox-sub003/internal/catalog"
	"github.com/tate-it/energy-toolbox-sub003/internal/offer"
)

// Code shorthands used throughout the table.
const (
	mktElec = string(offer.MarketElectricity)
	mktGas  = string(offer.MarketGas)
	mktDual = string(offer.MarketDualFuel)

	offFixed    = string(offer.OfferFixed)
	offVariable = string(offer.OfferVariable)
	offFlat     = string(offer.OfferFlat)
)

// bandedConfigurations are the time-band layouts that carry their own
// weekly calendar; calendarOptional may carry one, everything else
// never does.
var (
	bandedConfigurations = []string{
		string(offer.BandsF1F2), string(offer.BandsF1F2F3), string(offer.BandsF1F2F3F4),
		string(offer.BandsF1F2F3F4F5), string(offer.BandsF1F2F3F4F56),
	}
	calendarOptional = []string{string(offer.BandsPeakOffPeak)}
)

var weekdayFields = []catalog.FieldID{
	catalog.FieldBandsMonday, catalog.FieldBandsTuesday, catalog.FieldBandsWednesday,
	catalog.FieldBandsThursday, catalog.FieldBandsFriday, catalog.FieldBandsSaturday,
	catalog.FieldBandsSunday, catalog.FieldBandsHolidays,
}

// Default returns the rule catalog for SII offer submissions.
func Default() *Set {
	return &Set{
		Applicability: applicability(),
		Rules:         effects(),
		EntryChecks:   entryChecks(),
	}
}

func applicability() []Applicability {
	return []Applicability{
		{
			ID:      "dual-offer-section-only-for-dual-fuel",
			Section: offer.SectionDualOffer,
			When:    Trigger{eq(catalog.FieldMarketType, mktDual)},
		},
		{
			ID:     "single-offer-flag-meaningless-for-dual-fuel",
			Fields: []catalog.FieldID{catalog.FieldSingleOffer},
			When:   Trigger{in(catalog.FieldMarketType, mktElec, mktGas)},
		},
		{
			ID:      "price-reference-only-for-variable-offers",
			Section: offer.SectionEnergyPriceReference,
			When:    Trigger{eq(catalog.FieldOfferType, offVariable)},
		},
		{
			ID:     "consumption-bounds-only-for-flat-offers",
			Fields: []catalog.FieldID{catalog.FieldMinConsumption, catalog.FieldMaxConsumption},
			When:   Trigger{eq(catalog.FieldOfferType, offFlat)},
		},
		{
			ID:     "power-bounds-need-electricity",
			Fields: []catalog.FieldID{catalog.FieldMinPower, catalog.FieldMaxPower},
			When:   Trigger{in(catalog.FieldMarketType, mktElec, mktDual)},
		},
		{
			ID:      "time-bands-need-electricity",
			Section: offer.SectionPriceType,
			When:    Trigger{in(catalog.FieldMarketType, mktElec, mktDual)},
		},
		{
			ID:      "weekly-calendar-needs-banded-configuration",
			Section: offer.SectionWeeklyTimeBands,
			When: Trigger{
				in(catalog.FieldMarketType, mktElec, mktDual),
				in(catalog.FieldBandConfiguration,
					append(append([]string{}, bandedConfigurations...), calendarOptional...)...),
			},
		},
		{
			ID:      "dispatching-needs-electricity",
			Section: offer.SectionDispatching,
			When:    Trigger{in(catalog.FieldMarketType, mktElec, mktDual)},
		},
	}
}

func effects() []Rule {
	return []Rule{
		// Base fields every submission carries.
		{
			ID: "identification-required",
			Targets: []catalog.FieldID{
				catalog.FieldVATNumber, catalog.FieldOfferCode,
			},
			Effect: Effect{Kind: Required},
		},
		{
			ID: "offer-details-required",
			Targets: []catalog.FieldID{
				catalog.FieldMarketType, catalog.FieldClientType, catalog.FieldOfferType,
				catalog.FieldActivationTypes, catalog.FieldOfferName, catalog.FieldOfferDescription,
				catalog.FieldDurationMonths, catalog.FieldGuarantees,
			},
			Effect: Effect{Kind: Required},
		},
		{
			ID:      "single-offer-flag-required",
			Targets: []catalog.FieldID{catalog.FieldSingleOffer},
			Effect:  Effect{Kind: Required},
		},
		{
			ID:      "sale-channels-required",
			Targets: []catalog.FieldID{catalog.FieldActivationChannels},
			Effect:  Effect{Kind: Required},
		},
		{
			ID:      "contact-phone-required",
			Targets: []catalog.FieldID{catalog.FieldPhone},
			Effect:  Effect{Kind: Required},
		},
		{
			ID:      "validity-window-required",
			Targets: []catalog.FieldID{catalog.FieldValidityStart, catalog.FieldValidityEnd},
			Effect:  Effect{Kind: Required},
		},
		{
			ID:      "band-configuration-required",
			Targets: []catalog.FieldID{catalog.FieldBandConfiguration},
			Effect:  Effect{Kind: Required},
		},
		{
			ID:      "payment-method-required",
			Targets: []catalog.FieldID{catalog.FieldPaymentMethodType},
			Effect:  Effect{Kind: Cardinality, Min: 1},
		},

		// Web sale channel demands the vendor's web presence.
		{
			ID:   "web-channel-needs-urls",
			When: Trigger{contains(catalog.FieldActivationChannels, string(offer.MethodWebOnly))},
			Targets: []catalog.FieldID{
				catalog.FieldVendorWebsite, catalog.FieldOfferURL,
			},
			Effect: Effect{Kind: Required},
		},

		// Other-description pairs on scalar selectors.
		{
			ID:      "other-channel-needs-description",
			When:    Trigger{contains(catalog.FieldActivationChannels, string(offer.MethodOther))},
			Targets: []catalog.FieldID{catalog.FieldActivationOther},
			Effect:  Effect{Kind: Required},
		},
		{
			ID:      "no-other-channel-forbids-description",
			When:    Trigger{lacks(catalog.FieldActivationChannels, string(offer.MethodOther))},
			Targets: []catalog.FieldID{catalog.FieldActivationOther},
			Effect:  Effect{Kind: Forbidden},
		},
		{
			ID:      "other-index-needs-description",
			When:    Trigger{eq(catalog.FieldPriceIndex, string(offer.IndexOther))},
			Targets: []catalog.FieldID{catalog.FieldPriceIndexOther},
			Effect:  Effect{Kind: Required},
		},
		{
			ID:      "named-index-forbids-description",
			When:    Trigger{notEq(catalog.FieldPriceIndex, string(offer.IndexOther))},
			Targets: []catalog.FieldID{catalog.FieldPriceIndexOther},
			Effect:  Effect{Kind: Forbidden},
		},

		// Variable offers must name their index unless a regulated-price
		// discount already pins the price to the protected tariff.
		{
			ID: "variable-offer-needs-price-index",
			When: Trigger{
				eq(catalog.FieldOfferType, offVariable),
				lacks(catalog.FieldDiscountPriceType, string(offer.DiscountRegulatedPrice)),
			},
			Targets: []catalog.FieldID{catalog.FieldPriceIndex},
			Effect:  Effect{Kind: Required},
		},

		// Flat offers bound the consumption they cover.
		{
			ID:      "flat-offer-needs-consumption-bounds",
			When:    Trigger{eq(catalog.FieldOfferType, offFlat)},
			Targets: []catalog.FieldID{catalog.FieldMinConsumption, catalog.FieldMaxConsumption},
			Effect:  Effect{Kind: Required},
		},

		// Dual fuel joins one electricity and one gas offer list.
		{
			ID:      "dual-fuel-needs-joint-codes",
			When:    Trigger{eq(catalog.FieldMarketType, mktDual)},
			Targets: []catalog.FieldID{catalog.FieldJointElectricityCodes, catalog.FieldJointGasCodes},
			Effect:  Effect{Kind: Required},
		},
		{
			ID:      "joint-code-lists-bounded",
			Targets: []catalog.FieldID{catalog.FieldJointElectricityCodes, catalog.FieldJointGasCodes},
			Effect:  Effect{Kind: Cardinality, Min: 1, Max: 50},
		},

		// Weekly calendar per banded configuration.
		{
			ID:      "banded-configuration-needs-weekly-calendar",
			When:    Trigger{in(catalog.FieldBandConfiguration, bandedConfigurations...)},
			Targets: weekdayFields,
			Effect:  Effect{Kind: Required},
		},

		// Market-specific code subsets.
		{
			ID:      "electricity-regulated-components",
			When:    Trigger{eq(catalog.FieldMarketType, mktElec)},
			Targets: []catalog.FieldID{catalog.FieldRegulatedCodes},
			Effect: Effect{Kind: RestrictedTo, Allowed: []string{
				string(offer.ComponentPCV), string(offer.ComponentPPE),
			}},
		},
		{
			ID:      "gas-regulated-components",
			When:    Trigger{eq(catalog.FieldMarketType, mktGas)},
			Targets: []catalog.FieldID{catalog.FieldRegulatedCodes},
			Effect: Effect{Kind: RestrictedTo, Allowed: []string{
				string(offer.ComponentCCR), string(offer.ComponentCPR), string(offer.ComponentGRAD),
				string(offer.ComponentQTint), string(offer.ComponentQTpsv),
				string(offer.ComponentQVDFixed), string(offer.ComponentQVDVariable),
			}},
		},
		{
			ID:      "condominium-client-is-gas-only",
			When:    Trigger{in(catalog.FieldMarketType, mktElec, mktDual)},
			Targets: []catalog.FieldID{catalog.FieldClientType},
			Effect: Effect{Kind: RestrictedTo, Allowed: []string{
				string(offer.ClientDomestic), string(offer.ClientOtherUses),
			}},
		},
		{
			ID:      "electricity-price-units",
			When:    Trigger{in(catalog.FieldMarketType, mktElec, mktDual)},
			Targets: []catalog.FieldID{catalog.FieldIntervalUnit, catalog.FieldDiscountPriceUnit},
			Effect: Effect{Kind: RestrictedTo, Allowed: []string{
				string(offer.UnitEuroPerYear), string(offer.UnitEuroPerKW),
				string(offer.UnitEuroPerKWh), string(offer.UnitEuro), string(offer.UnitPercent),
			}},
		},
		{
			ID:      "gas-price-units",
			When:    Trigger{eq(catalog.FieldMarketType, mktGas)},
			Targets: []catalog.FieldID{catalog.FieldIntervalUnit, catalog.FieldDiscountPriceUnit},
			Effect: Effect{Kind: RestrictedTo, Allowed: []string{
				string(offer.UnitEuroPerYear), string(offer.UnitEuroPerSm3),
				string(offer.UnitEuro), string(offer.UnitPercent),
			}},
		},

		// Interval band tags must exist in the declared configuration.
		bandSubset("band-tags-for-f1-f2", offer.BandsF1F2, "01", "02"),
		bandSubset("band-tags-for-f1-f3", offer.BandsF1F2F3, "01", "02", "03"),
		bandSubset("band-tags-for-f1-f4", offer.BandsF1F2F3F4, "01", "02", "03", "04"),
		bandSubset("band-tags-for-f1-f5", offer.BandsF1F2F3F4F5, "01", "02", "03", "04", "05"),
		bandSubset("band-tags-for-f1-f6", offer.BandsF1F2F3F4F56, "01", "02", "03", "04", "05", "06"),
		bandSubset("band-tags-for-peak-offpeak", offer.BandsPeakOffPeak, "07", "08"),
	}
}

func bandSubset(id string, cfg offer.BandConfiguration, allowed ...string) Rule {
	return Rule{
		ID:      id,
		When:    Trigger{eq(catalog.FieldBandConfiguration, string(cfg))},
		Targets: []catalog.FieldID{catalog.FieldIntervalBand},
		Effect:  Effect{Kind: RestrictedTo, Allowed: allowed},
	}
}
