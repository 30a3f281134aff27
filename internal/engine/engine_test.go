package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tate-it/energy-toolbox-sub003/internal/catalog"
	"github.com/tate-it/energy-toolbox-sub003/internal/offer"
	"github.com/tate-it/energy-toolbox-sub003/internal/offer/offertest"
	"github.com/tate-it/energy-toolbox-sub003/internal/rules"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New()
	require.NoError(t, err)
	return e
}

func field(t *testing.T, v Verdict, id catalog.FieldID) FieldResult {
	t.Helper()
	r, ok := v.Fields[id]
	require.True(t, ok, "verdict has no entry for %s", id)
	return r
}

func TestNewRejectsInconsistentSet(t *testing.T) {
	set := &rules.Set{
		Rules: []rules.Rule{
			{ID: "a", Targets: []catalog.FieldID{catalog.FieldPhone}, Effect: rules.Effect{Kind: rules.Required}},
			{ID: "b", Targets: []catalog.FieldID{catalog.FieldPhone}, Effect: rules.Effect{Kind: rules.Forbidden}},
		},
	}
	_, err := NewWithSet(set)
	require.Error(t, err)
	assert.ErrorIs(t, err, rules.ErrInconsistentRuleSet)
}

func TestValidFixtureIsClean(t *testing.T) {
	e := newTestEngine(t)
	verdict := e.Validate(offertest.Valid(), FullRecord())
	for _, r := range verdict.Ordered() {
		assert.NotEqual(t, StatusMissing, r.Status, "field %s missing", r.Field)
		assert.NotEqual(t, StatusInvalid, r.Status, "field %s invalid: %s", r.Field, r.Reason)
	}
	assert.True(t, verdict.Clean())
}

func TestVerdictIsTotal(t *testing.T) {
	e := newTestEngine(t)
	verdict := e.Validate(offertest.Valid(), FullRecord())
	assert.Len(t, verdict.Fields, len(catalog.All()))
	assert.Len(t, verdict.Ordered(), len(catalog.All()))
}

func TestValidationIsDeterministic(t *testing.T) {
	e := newTestEngine(t)
	o := offertest.Valid()
	o.Contacts = nil
	o.Details.OfferType = nil

	first := e.Validate(o, FullRecord())
	second := e.Validate(o, FullRecord())
	assert.Equal(t, first.Fields, second.Fields)
	assert.Equal(t, first.Sections, second.Sections)
}

func TestNilRecordDoesNotPanic(t *testing.T) {
	e := newTestEngine(t)
	verdict := e.Validate(nil, FullRecord())
	assert.False(t, verdict.Clean())
	assert.Equal(t, StatusMissing, field(t, verdict, catalog.FieldVATNumber).Status)
}

func TestEmptyRecordReportsBaseRequirements(t *testing.T) {
	e := newTestEngine(t)
	verdict := e.Validate(&offer.Offer{}, FullRecord())

	for _, id := range []catalog.FieldID{
		catalog.FieldVATNumber, catalog.FieldOfferCode, catalog.FieldMarketType,
		catalog.FieldOfferType, catalog.FieldPhone, catalog.FieldValidityStart,
		catalog.FieldPaymentMethodType,
	} {
		assert.Equal(t, StatusMissing, field(t, verdict, id).Status, "field %s", id)
	}
}

func TestDualFuelJointCodes(t *testing.T) {
	e := newTestEngine(t)

	t.Run("missing joint lists block a dual offer", func(t *testing.T) {
		o := offertest.ValidDual()
		o.DualOffer = nil
		verdict := e.Validate(o, FullRecord())
		assert.Equal(t, StatusMissing, field(t, verdict, catalog.FieldJointElectricityCodes).Status)
		assert.Equal(t, StatusMissing, field(t, verdict, catalog.FieldJointGasCodes).Status)
	})

	t.Run("joint lists are not applicable outside dual fuel", func(t *testing.T) {
		verdict := e.Validate(offertest.Valid(), FullRecord())
		assert.Equal(t, StatusNotApplicable, field(t, verdict, catalog.FieldJointElectricityCodes).Status)
		assert.Equal(t, StatusNotApplicable, field(t, verdict, catalog.FieldJointGasCodes).Status)
	})

	t.Run("single offer flag is meaningless on dual fuel", func(t *testing.T) {
		o := offertest.ValidDual()
		verdict := e.Validate(o, FullRecord())
		assert.Equal(t, StatusNotApplicable, field(t, verdict, catalog.FieldSingleOffer).Status)

		o.Details.SingleOffer = offertest.Ptr(true)
		verdict = e.Validate(o, FullRecord())
		r := field(t, verdict, catalog.FieldSingleOffer)
		assert.Equal(t, StatusInvalid, r.Status)
		assert.Equal(t, catalog.ReasonNotApplicable, r.Reason)
	})

	t.Run("oversized joint list violates cardinality", func(t *testing.T) {
		o := offertest.ValidDual()
		codes := make([]string, 51)
		for i := range codes {
			codes[i] = "CODE1"
		}
		o.DualOffer.ElectricityCodes = codes
		verdict := e.Validate(o, FullRecord())
		r := field(t, verdict, catalog.FieldJointElectricityCodes)
		assert.Equal(t, StatusInvalid, r.Status)
		assert.Equal(t, catalog.ReasonCardinality, r.Reason)
	})
}

func TestFlatOfferConsumptionBounds(t *testing.T) {
	e := newTestEngine(t)
	o := offertest.Valid()
	o.Details.OfferType = offertest.Ptr(offer.OfferFlat)

	verdict := e.Validate(o, FullRecord())
	assert.Equal(t, StatusMissing, field(t, verdict, catalog.FieldMinConsumption).Status)
	assert.Equal(t, StatusMissing, field(t, verdict, catalog.FieldMaxConsumption).Status)
	// Flat offers track no index.
	assert.Equal(t, StatusNotApplicable, field(t, verdict, catalog.FieldPriceIndex).Status)

	o.Characteristics = &offer.Characteristics{
		MinConsumption: offertest.Ptr(1000),
		MaxConsumption: offertest.Ptr(3000),
	}
	verdict = e.Validate(o, FullRecord())
	assert.True(t, verdict.Clean())
}

func TestConsumptionBoundsOrdering(t *testing.T) {
	e := newTestEngine(t)
	o := offertest.Valid()
	o.Details.OfferType = offertest.Ptr(offer.OfferFlat)
	o.Characteristics = &offer.Characteristics{
		MinConsumption: offertest.Ptr(3000),
		MaxConsumption: offertest.Ptr(1000),
	}

	verdict := e.Validate(o, FullRecord())
	r := field(t, verdict, catalog.FieldMaxConsumption)
	assert.Equal(t, StatusInvalid, r.Status)
	assert.Equal(t, catalog.ReasonMinOverMax, r.Reason)
}

func TestVariableOfferPriceIndex(t *testing.T) {
	e := newTestEngine(t)
	variable := func() *offer.Offer {
		o := offertest.Valid()
		o.Details.OfferType = offertest.Ptr(offer.OfferVariable)
		return o
	}

	t.Run("index required", func(t *testing.T) {
		verdict := e.Validate(variable(), FullRecord())
		assert.Equal(t, StatusMissing, field(t, verdict, catalog.FieldPriceIndex).Status)
	})

	t.Run("custom index needs description", func(t *testing.T) {
		o := variable()
		o.PriceReference = &offer.PriceReference{Index: offertest.Ptr(offer.IndexOther)}
		verdict := e.Validate(o, FullRecord())
		assert.Equal(t, StatusOk, field(t, verdict, catalog.FieldPriceIndex).Status)
		assert.Equal(t, StatusMissing, field(t, verdict, catalog.FieldPriceIndexOther).Status)
	})

	t.Run("named index forbids description", func(t *testing.T) {
		o := variable()
		o.PriceReference = &offer.PriceReference{
			Index:            offertest.Ptr(offer.IndexPUN),
			OtherDescription: offertest.Ptr("custom basket"),
		}
		verdict := e.Validate(o, FullRecord())
		r := field(t, verdict, catalog.FieldPriceIndexOther)
		assert.Equal(t, StatusInvalid, r.Status)
		assert.Equal(t, catalog.ReasonForbidden, r.Reason)
	})

	t.Run("regulated price discount waives the index", func(t *testing.T) {
		o := variable()
		o.Discounts = []offer.Discount{{
			Name:                 offertest.Ptr("Loyalty"),
			Description:          offertest.Ptr("Discount on the regulated price."),
			Validity:             offertest.Ptr(offer.DiscountAtSubscription),
			VATApplicable:        offertest.Ptr(true),
			ApplicationCondition: offertest.Ptr(offer.ConditionNone),
			Prices: []offer.DiscountPrice{{
				Type:  offertest.Ptr(offer.DiscountRegulatedPrice),
				Unit:  offertest.Ptr(offer.UnitEuro),
				Price: offertest.Ptr(10.0),
			}},
		}}
		verdict := e.Validate(o, FullRecord())
		assert.Equal(t, StatusOk, field(t, verdict, catalog.FieldPriceIndex).Status)
		assert.True(t, verdict.Clean())
	})
}

func TestWeeklyCalendarApplicability(t *testing.T) {
	e := newTestEngine(t)

	t.Run("banded configuration requires every day", func(t *testing.T) {
		o := offertest.Valid()
		o.PriceType.BandConfiguration = offertest.Ptr(offer.BandsF1F2)
		verdict := e.Validate(o, FullRecord())
		for _, id := range []catalog.FieldID{
			catalog.FieldBandsMonday, catalog.FieldBandsSunday, catalog.FieldBandsHolidays,
		} {
			assert.Equal(t, StatusMissing, field(t, verdict, id).Status, "field %s", id)
		}
	})

	t.Run("full calendar makes a banded configuration clean", func(t *testing.T) {
		o := offertest.Valid()
		o.PriceType.BandConfiguration = offertest.Ptr(offer.BandsF1F2)
		day := "1-1,29-2,77-1"
		o.WeeklyBands = &offer.WeeklyBands{
			Monday: &day, Tuesday: &day, Wednesday: &day, Thursday: &day,
			Friday: &day, Saturday: &day, Sunday: &day, Holidays: &day,
		}
		verdict := e.Validate(o, FullRecord())
		assert.True(t, verdict.Clean())
	})

	t.Run("peak offpeak calendar is optional", func(t *testing.T) {
		o := offertest.Valid()
		o.PriceType.BandConfiguration = offertest.Ptr(offer.BandsPeakOffPeak)
		verdict := e.Validate(o, FullRecord())
		assert.Equal(t, StatusOk, field(t, verdict, catalog.FieldBandsMonday).Status)
	})

	t.Run("monorario rejects stray calendar", func(t *testing.T) {
		o := offertest.Valid()
		o.WeeklyBands = &offer.WeeklyBands{Monday: offertest.Ptr("1-1")}
		verdict := e.Validate(o, FullRecord())
		r := field(t, verdict, catalog.FieldBandsMonday)
		assert.Equal(t, StatusInvalid, r.Status)
		assert.Equal(t, catalog.ReasonNotApplicable, r.Reason)
	})
}

func TestRegulatedCodesRestrictedByMarket(t *testing.T) {
	e := newTestEngine(t)
	o := offertest.Valid()
	o.RegulatedComponents = &offer.RegulatedComponents{
		Codes: []offer.RegulatedComponentCode{offer.ComponentCCR},
	}

	verdict := e.Validate(o, FullRecord())
	r := field(t, verdict, catalog.FieldRegulatedCodes)
	assert.Equal(t, StatusInvalid, r.Status)
	assert.Equal(t, catalog.ReasonNotAllowed, r.Reason)

	o.RegulatedComponents.Codes = []offer.RegulatedComponentCode{offer.ComponentPCV, offer.ComponentPPE}
	verdict = e.Validate(o, FullRecord())
	assert.Equal(t, StatusOk, field(t, verdict, catalog.FieldRegulatedCodes).Status)
}

func TestRestrictionsIntersectAcrossRules(t *testing.T) {
	set := &rules.Set{
		Rules: []rules.Rule{
			{
				ID:      "domestic-payment-channels",
				When:    rules.Trigger{{Field: catalog.FieldClientType, Op: rules.OpEq, Values: []string{string(offer.ClientDomestic)}}},
				Targets: []catalog.FieldID{catalog.FieldPaymentMethodType},
				Effect: rules.Effect{Kind: rules.RestrictedTo, Allowed: []string{
					string(offer.PaymentDirectDebit), string(offer.PaymentSlip),
				}},
			},
			{
				ID:      "electricity-payment-channels",
				When:    rules.Trigger{{Field: catalog.FieldMarketType, Op: rules.OpEq, Values: []string{string(offer.MarketElectricity)}}},
				Targets: []catalog.FieldID{catalog.FieldPaymentMethodType},
				Effect: rules.Effect{Kind: rules.RestrictedTo, Allowed: []string{
					string(offer.PaymentSlip), string(offer.PaymentOther),
				}},
			},
		},
	}
	e, err := NewWithSet(set)
	require.NoError(t, err)

	o := &offer.Offer{
		Details: &offer.Details{
			MarketType: offertest.Ptr(offer.MarketElectricity),
			ClientType: offertest.Ptr(offer.ClientDomestic),
		},
		PaymentMethods: []offer.PaymentMethod{{Method: offertest.Ptr(offer.PaymentDirectDebit)}},
	}

	// Direct debit is allowed by the first rule alone; with both rules
	// firing, only the intersection survives.
	verdict := e.Validate(o, FullRecord())
	r := field(t, verdict, catalog.FieldPaymentMethodType)
	assert.Equal(t, StatusInvalid, r.Status)
	assert.Equal(t, catalog.ReasonNotAllowed, r.Reason)

	o.PaymentMethods[0].Method = offertest.Ptr(offer.PaymentSlip)
	verdict = e.Validate(o, FullRecord())
	assert.Equal(t, StatusOk, field(t, verdict, catalog.FieldPaymentMethodType).Status)
}

func TestCondominiumClientIsGasOnly(t *testing.T) {
	e := newTestEngine(t)
	o := offertest.Valid()
	o.Details.ClientType = offertest.Ptr(offer.ClientCondominium)

	verdict := e.Validate(o, FullRecord())
	r := field(t, verdict, catalog.FieldClientType)
	assert.Equal(t, StatusInvalid, r.Status)
	assert.Equal(t, catalog.ReasonNotAllowed, r.Reason)

	o.Details.MarketType = offertest.Ptr(offer.MarketGas)
	verdict = e.Validate(o, FullRecord())
	assert.Equal(t, StatusOk, field(t, verdict, catalog.FieldClientType).Status)
}

func TestWebChannelRequiresURLs(t *testing.T) {
	e := newTestEngine(t)
	o := offertest.Valid()
	o.ActivationMethods.Methods = []offer.ActivationMethod{offer.MethodWebOnly}

	verdict := e.Validate(o, FullRecord())
	assert.Equal(t, StatusMissing, field(t, verdict, catalog.FieldVendorWebsite).Status)
	assert.Equal(t, StatusMissing, field(t, verdict, catalog.FieldOfferURL).Status)

	o.Contacts.VendorWebsite = offertest.Ptr("https://vendor.example")
	o.Contacts.OfferURL = offertest.Ptr("https://vendor.example/summer")
	verdict = e.Validate(o, FullRecord())
	assert.True(t, verdict.Clean())
}

func TestPaymentMethodOtherPair(t *testing.T) {
	e := newTestEngine(t)

	t.Run("other method needs description", func(t *testing.T) {
		o := offertest.Valid()
		o.PaymentMethods = []offer.PaymentMethod{{Method: offertest.Ptr(offer.PaymentOther)}}
		verdict := e.Validate(o, FullRecord())
		r := field(t, verdict, catalog.FieldPaymentOther)
		assert.Equal(t, StatusMissing, r.Status)
		assert.Equal(t, 0, r.Entry)
	})

	t.Run("named method rejects description", func(t *testing.T) {
		o := offertest.Valid()
		o.PaymentMethods = []offer.PaymentMethod{
			{Method: offertest.Ptr(offer.PaymentDirectDebit)},
			{Method: offertest.Ptr(offer.PaymentSlip), OtherDescription: offertest.Ptr("slip")},
		}
		verdict := e.Validate(o, FullRecord())
		r := field(t, verdict, catalog.FieldPaymentOther)
		assert.Equal(t, StatusInvalid, r.Status)
		assert.Equal(t, catalog.ReasonNotApplicable, r.Reason)
		assert.Equal(t, 1, r.Entry)
	})
}

func TestDispatchingValueOnlyForOtherType(t *testing.T) {
	e := newTestEngine(t)
	o := offertest.Valid()
	o.Dispatching = []offer.DispatchingComponent{{
		Type:  offertest.Ptr(offer.DispatchingDisp),
		Name:  offertest.Ptr("Disp"),
		Value: offertest.Ptr(0.5),
	}}

	verdict := e.Validate(o, FullRecord())
	r := field(t, verdict, catalog.FieldDispatchingValue)
	assert.Equal(t, StatusInvalid, r.Status)
	assert.Equal(t, catalog.ReasonNotApplicable, r.Reason)

	o.Dispatching[0].Type = offertest.Ptr(offer.DispatchingOther)
	verdict = e.Validate(o, FullRecord())
	assert.Equal(t, StatusOk, field(t, verdict, catalog.FieldDispatchingValue).Status)
}

func TestSingleSectionScope(t *testing.T) {
	e := newTestEngine(t)
	verdict := e.Validate(&offer.Offer{}, SingleSection(offer.SectionContacts))

	assert.Len(t, verdict.Fields, len(catalog.BySection(offer.SectionContacts)))
	assert.Equal(t, StatusMissing, field(t, verdict, catalog.FieldPhone).Status)
	_, ok := verdict.Fields[catalog.FieldVATNumber]
	assert.False(t, ok, "out-of-scope field leaked into the verdict")

	_, ok = verdict.Sections[offer.SectionContacts]
	assert.True(t, ok)
	assert.Len(t, verdict.Sections, 1)
}

func TestSectionSummaries(t *testing.T) {
	e := newTestEngine(t)
	o := offertest.Valid()
	o.Contacts.Phone = offertest.Ptr("not a phone")
	o.Details.Name = nil

	verdict := e.Validate(o, FullRecord())

	contacts := verdict.Sections[offer.SectionContacts]
	assert.True(t, contacts.HasErrors)
	assert.False(t, contacts.Complete)

	details := verdict.Sections[offer.SectionOfferDetails]
	assert.False(t, details.HasErrors)
	assert.False(t, details.Complete)

	ident := verdict.Sections[offer.SectionIdentification]
	assert.True(t, ident.Complete)
	assert.False(t, ident.HasErrors)
}

func TestMalformedValuesNeverPanic(t *testing.T) {
	e := newTestEngine(t)
	o := offertest.Valid()
	o.Identification.VATNumber = offertest.Ptr("x")
	o.Validity.StartTimestamp = offertest.Ptr("not a timestamp")
	o.Details.DurationMonths = offertest.Ptr(-5)

	verdict := e.Validate(o, FullRecord())
	assert.Equal(t, catalog.ReasonTooShort, field(t, verdict, catalog.FieldVATNumber).Reason)
	assert.Equal(t, catalog.ReasonBadTimestamp, field(t, verdict, catalog.FieldValidityStart).Reason)
	assert.Equal(t, catalog.ReasonOutOfRange, field(t, verdict, catalog.FieldDurationMonths).Reason)
}
