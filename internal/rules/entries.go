package rules

import (
	"time"

	"github.com/tate-it/energy-toolbox-sub003/internal/catalog"
	"github.com/tate-it/energy-toolbox-sub003/internal/offer"
)

// earlyWithdrawalCutoff is the first validity start date for which a
// contractual condition of type 05 (early-withdrawal charge) is
// admitted by the regulator.
var earlyWithdrawalCutoff = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

func entryChecks() []EntryCheck {
	return []EntryCheck{
		{ID: "payment-method-entries", Section: offer.SectionPaymentMethods, Run: checkPaymentMethods},
		{ID: "dispatching-entries", Section: offer.SectionDispatching, Run: checkDispatching},
		{ID: "company-component-entries", Section: offer.SectionCompanyComponents, Run: checkCompanyComponents},
		{ID: "contractual-condition-entries", Section: offer.SectionContractualConditions, Run: checkContractualConditions},
		{ID: "discount-entries", Section: offer.SectionDiscounts, Run: checkDiscounts},
		{ID: "additional-product-entries", Section: offer.SectionAdditionalProducts, Run: checkAdditionalProducts},
		{ID: "consumption-and-power-ordering", Section: offer.SectionCharacteristics, Run: checkCharacteristics},
		{ID: "validity-window-ordering", Section: offer.SectionValidity, Run: checkValidityWindow},
	}
}

func missing(f catalog.FieldID, entry int) Finding {
	return Finding{Field: f, Entry: entry, Status: FindingMissing}
}

func invalid(f catalog.FieldID, entry int, reason string) Finding {
	return Finding{Field: f, Entry: entry, Status: FindingInvalid, Reason: reason}
}

func checkPaymentMethods(o *offer.Offer) []Finding {
	var fs []Finding
	for i, m := range o.PaymentMethods {
		if m.Method == nil {
			fs = append(fs, missing(catalog.FieldPaymentMethodType, i))
			continue
		}
		other := *m.Method == offer.PaymentOther
		switch {
		case other && m.OtherDescription == nil:
			fs = append(fs, missing(catalog.FieldPaymentOther, i))
		case !other && m.OtherDescription != nil:
			fs = append(fs, invalid(catalog.FieldPaymentOther, i, catalog.ReasonNotApplicable))
		}
	}
	return fs
}

func checkDispatching(o *offer.Offer) []Finding {
	var fs []Finding
	for i, d := range o.Dispatching {
		if d.Type == nil {
			fs = append(fs, missing(catalog.FieldDispatchingType, i))
			continue
		}
		if d.Name == nil {
			fs = append(fs, missing(catalog.FieldDispatchingName, i))
		}
		other := *d.Type == offer.DispatchingOther
		switch {
		case other && d.Value == nil:
			fs = append(fs, missing(catalog.FieldDispatchingValue, i))
		case !other && d.Value != nil:
			fs = append(fs, invalid(catalog.FieldDispatchingValue, i, catalog.ReasonNotApplicable))
		}
	}
	return fs
}

// bandArticulated decides whether a company component prices each time
// band separately. Per-band pricing applies to energy macro areas sold
// by the kWh on an electricity (or dual fuel) offer; everything else is
// a single untagged interval.
func bandArticulated(o *offer.Offer, c offer.CompanyComponent) bool {
	if o.Details == nil || o.Details.MarketType == nil || c.MacroArea == nil {
		return false
	}
	if *o.Details.MarketType == offer.MarketGas {
		return false
	}
	switch *c.MacroArea {
	case offer.AreaEnergyCommercialFee, offer.AreaEnergyPrice, offer.AreaGreenEnergy:
	default:
		return false
	}
	for _, iv := range c.Intervals {
		if iv.Unit == nil || *iv.Unit != offer.UnitEuroPerKWh {
			return false
		}
	}
	return len(c.Intervals) > 0
}

func checkCompanyComponents(o *offer.Offer) []Finding {
	var fs []Finding
	for i, c := range o.CompanyComponents {
		if c.Name == nil {
			fs = append(fs, missing(catalog.FieldComponentName, i))
		}
		if c.Description == nil {
			fs = append(fs, missing(catalog.FieldComponentDescription, i))
		}
		if c.Class == nil {
			fs = append(fs, missing(catalog.FieldComponentClass, i))
		}
		if c.MacroArea == nil {
			fs = append(fs, missing(catalog.FieldComponentMacroArea, i))
		}
		if len(c.Intervals) == 0 {
			fs = append(fs, missing(catalog.FieldIntervalPrice, i))
			continue
		}
		banded := bandArticulated(o, c)
		if banded {
			if len(c.Intervals) < 2 {
				fs = append(fs, invalid(catalog.FieldIntervalBand, i, catalog.ReasonCardinality))
			}
			for _, iv := range c.Intervals {
				if iv.BandCode == nil {
					fs = append(fs, missing(catalog.FieldIntervalBand, i))
				}
			}
		} else {
			if len(c.Intervals) > 1 {
				fs = append(fs, invalid(catalog.FieldIntervalPrice, i, catalog.ReasonCardinality))
			}
			for _, iv := range c.Intervals {
				if iv.BandCode != nil {
					fs = append(fs, invalid(catalog.FieldIntervalBand, i, catalog.ReasonNotApplicable))
				}
			}
		}
		for _, iv := range c.Intervals {
			if iv.Price == nil {
				fs = append(fs, missing(catalog.FieldIntervalPrice, i))
			}
			if iv.Unit == nil {
				fs = append(fs, missing(catalog.FieldIntervalUnit, i))
			}
			if iv.Unit != nil && *iv.Unit == offer.UnitPercent && iv.Price != nil && *iv.Price > 100 {
				fs = append(fs, invalid(catalog.FieldIntervalPrice, i, catalog.ReasonOutOfRange))
			}
			if (iv.ConsumptionFrom == nil) != (iv.ConsumptionTo == nil) {
				if iv.ConsumptionFrom == nil {
					fs = append(fs, missing(catalog.FieldIntervalFrom, i))
				} else {
					fs = append(fs, missing(catalog.FieldIntervalTo, i))
				}
			}
			if iv.ConsumptionFrom != nil && iv.ConsumptionTo != nil && *iv.ConsumptionFrom > *iv.ConsumptionTo {
				fs = append(fs, invalid(catalog.FieldIntervalTo, i, catalog.ReasonMinOverMax))
			}
		}
	}
	return fs
}

func checkContractualConditions(o *offer.Offer) []Finding {
	var fs []Finding
	for i, c := range o.ContractualConditions {
		if c.Type == nil {
			fs = append(fs, missing(catalog.FieldConditionType, i))
			continue
		}
		if c.Description == nil {
			fs = append(fs, missing(catalog.FieldConditionDescription, i))
		}
		if c.IsLimiting == nil {
			fs = append(fs, missing(catalog.FieldConditionLimiting, i))
		}
		other := *c.Type == offer.ConditionOther
		switch {
		case other && c.OtherDescription == nil:
			fs = append(fs, missing(catalog.FieldConditionOther, i))
		case !other && c.OtherDescription != nil:
			fs = append(fs, invalid(catalog.FieldConditionOther, i, catalog.ReasonNotApplicable))
		}
		if *c.Type == offer.ConditionEarlyWithdrawal && startsBeforeCutoff(o) {
			fs = append(fs, invalid(catalog.FieldConditionType, i, catalog.ReasonDateTooEarly))
		}
	}
	return fs
}

// startsBeforeCutoff reports whether the offer's validity window opens
// before the early-withdrawal effective date. Unparseable or missing
// timestamps are someone else's problem; only a well-formed early start
// is flagged here.
func startsBeforeCutoff(o *offer.Offer) bool {
	if o.Validity == nil || o.Validity.StartTimestamp == nil {
		return false
	}
	t, err := time.Parse(offer.TimestampLayout, *o.Validity.StartTimestamp)
	if err != nil {
		return false
	}
	return t.Before(earlyWithdrawalCutoff)
}

func checkDiscounts(o *offer.Offer) []Finding {
	var fs []Finding
	for i, d := range o.Discounts {
		if d.Name == nil {
			fs = append(fs, missing(catalog.FieldDiscountName, i))
		}
		if d.Description == nil {
			fs = append(fs, missing(catalog.FieldDiscountDescription, i))
		}
		if d.Validity == nil {
			fs = append(fs, missing(catalog.FieldDiscountValidity, i))
		}
		if d.VATApplicable == nil {
			fs = append(fs, missing(catalog.FieldDiscountVAT, i))
		}
		if d.ApplicationCondition == nil {
			fs = append(fs, missing(catalog.FieldDiscountCondition, i))
		} else {
			other := *d.ApplicationCondition == offer.ConditionOtherApplication
			switch {
			case other && d.ConditionDescription == nil:
				fs = append(fs, missing(catalog.FieldDiscountConditionDesc, i))
			case !other && d.ConditionDescription != nil:
				fs = append(fs, invalid(catalog.FieldDiscountConditionDesc, i, catalog.ReasonNotApplicable))
			}
		}
		if len(d.Prices) == 0 {
			fs = append(fs, missing(catalog.FieldDiscountPriceValue, i))
			continue
		}
		for _, p := range d.Prices {
			if p.Type == nil {
				fs = append(fs, missing(catalog.FieldDiscountPriceType, i))
			}
			if p.Unit == nil {
				fs = append(fs, missing(catalog.FieldDiscountPriceUnit, i))
			}
			if p.Price == nil {
				fs = append(fs, missing(catalog.FieldDiscountPriceValue, i))
			}
			if p.Unit != nil && *p.Unit == offer.UnitPercent && p.Price != nil && *p.Price > 100 {
				fs = append(fs, invalid(catalog.FieldDiscountPriceValue, i, catalog.ReasonOutOfRange))
			}
		}
	}
	return fs
}

func checkAdditionalProducts(o *offer.Offer) []Finding {
	var fs []Finding
	for i, p := range o.AdditionalProducts {
		if p.Name == nil {
			fs = append(fs, missing(catalog.FieldProductName, i))
		}
		if p.MacroArea == nil {
			fs = append(fs, missing(catalog.FieldProductMacroArea, i))
			continue
		}
		other := *p.MacroArea == offer.ProductOther
		switch {
		case other && p.MacroAreaDetail == nil:
			fs = append(fs, missing(catalog.FieldProductMacroAreaDetail, i))
		case !other && p.MacroAreaDetail != nil:
			fs = append(fs, invalid(catalog.FieldProductMacroAreaDetail, i, catalog.ReasonNotApplicable))
		}
	}
	return fs
}

func checkCharacteristics(o *offer.Offer) []Finding {
	c := o.Characteristics
	if c == nil {
		return nil
	}
	var fs []Finding
	if c.MinConsumption != nil && c.MaxConsumption != nil && *c.MinConsumption > *c.MaxConsumption {
		fs = append(fs, invalid(catalog.FieldMaxConsumption, -1, catalog.ReasonMinOverMax))
	}
	if c.MinPower != nil && c.MaxPower != nil && *c.MinPower > *c.MaxPower {
		fs = append(fs, invalid(catalog.FieldMaxPower, -1, catalog.ReasonMinOverMax))
	}
	return fs
}

func checkValidityWindow(o *offer.Offer) []Finding {
	v := o.Validity
	if v == nil || v.StartTimestamp == nil || v.EndTimestamp == nil {
		return nil
	}
	start, err1 := time.Parse(offer.TimestampLayout, *v.StartTimestamp)
	end, err2 := time.Parse(offer.TimestampLayout, *v.EndTimestamp)
	if err1 != nil || err2 != nil {
		return nil
	}
	if !start.Before(end) {
		return []Finding{invalid(catalog.FieldValidityEnd, -1, catalog.ReasonEmptyWindow)}
	}
	return nil
}
