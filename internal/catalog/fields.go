package catalog

import (
	"regexp"

	"github.com/tate-it/energy-toolbox-sub003/internal/offer"
)

// Field identifiers. A "[]" marker means the field lives inside the
// entries of a repeated section and its verdict aggregates over them.
const (
	FieldVATNumber FieldID = "identification.vatNumber"
	FieldOfferCode FieldID = "identification.offerCode"

	FieldMarketType       FieldID = "offerDetails.marketType"
	FieldSingleOffer      FieldID = "offerDetails.singleOffer"
	FieldClientType       FieldID = "offerDetails.clientType"
	FieldOfferType        FieldID = "offerDetails.offerType"
	FieldActivationTypes  FieldID = "offerDetails.activationTypes"
	FieldOfferName        FieldID = "offerDetails.name"
	FieldOfferDescription FieldID = "offerDetails.description"
	FieldDurationMonths   FieldID = "offerDetails.durationMonths"
	FieldGuarantees       FieldID = "offerDetails.guarantees"

	FieldActivationChannels FieldID = "activationMethods.methods"
	FieldActivationOther    FieldID = "activationMethods.otherDescription"

	FieldPhone         FieldID = "contacts.phone"
	FieldVendorWebsite FieldID = "contacts.vendorWebsite"
	FieldOfferURL      FieldID = "contacts.offerUrl"

	FieldPriceIndex      FieldID = "energyPriceReference.index"
	FieldPriceIndexOther FieldID = "energyPriceReference.otherDescription"

	FieldValidityStart FieldID = "validity.startTimestamp"
	FieldValidityEnd   FieldID = "validity.endTimestamp"

	FieldMinConsumption FieldID = "characteristics.minConsumption"
	FieldMaxConsumption FieldID = "characteristics.maxConsumption"
	FieldMinPower       FieldID = "characteristics.minPower"
	FieldMaxPower       FieldID = "characteristics.maxPower"

	FieldJointElectricityCodes FieldID = "dualOffer.jointElectricityCodes"
	FieldJointGasCodes         FieldID = "dualOffer.jointGasCodes"

	FieldPaymentMethodType FieldID = "paymentMethods[].methodType"
	FieldPaymentOther      FieldID = "paymentMethods[].otherDescription"

	FieldRegulatedCodes FieldID = "regulatedComponents.codes"

	FieldBandConfiguration FieldID = "priceType.timeBandConfiguration"

	FieldBandsMonday    FieldID = "weeklyTimeBands.monday"
	FieldBandsTuesday   FieldID = "weeklyTimeBands.tuesday"
	FieldBandsWednesday FieldID = "weeklyTimeBands.wednesday"
	FieldBandsThursday  FieldID = "weeklyTimeBands.thursday"
	FieldBandsFriday    FieldID = "weeklyTimeBands.friday"
	FieldBandsSaturday  FieldID = "weeklyTimeBands.saturday"
	FieldBandsSunday    FieldID = "weeklyTimeBands.sunday"
	FieldBandsHolidays  FieldID = "weeklyTimeBands.holidays"

	FieldDispatchingType        FieldID = "dispatching[].type"
	FieldDispatchingValue       FieldID = "dispatching[].value"
	FieldDispatchingName        FieldID = "dispatching[].name"
	FieldDispatchingDescription FieldID = "dispatching[].description"

	FieldComponentName        FieldID = "companyComponents[].name"
	FieldComponentDescription FieldID = "companyComponents[].description"
	FieldComponentClass       FieldID = "companyComponents[].componentClass"
	FieldComponentMacroArea   FieldID = "companyComponents[].macroArea"
	FieldIntervalBand         FieldID = "companyComponents[].priceIntervals[].bandCode"
	FieldIntervalFrom         FieldID = "companyComponents[].priceIntervals[].consumptionFrom"
	FieldIntervalTo           FieldID = "companyComponents[].priceIntervals[].consumptionTo"
	FieldIntervalPrice        FieldID = "companyComponents[].priceIntervals[].price"
	FieldIntervalUnit         FieldID = "companyComponents[].priceIntervals[].unit"

	FieldConditionType        FieldID = "contractualConditions[].conditionType"
	FieldConditionOther       FieldID = "contractualConditions[].otherDescription"
	FieldConditionDescription FieldID = "contractualConditions[].description"
	FieldConditionLimiting    FieldID = "contractualConditions[].isLimiting"

	FieldZoneRegions        FieldID = "offerZones.regions"
	FieldZoneProvinces      FieldID = "offerZones.provinces"
	FieldZoneMunicipalities FieldID = "offerZones.municipalities"

	FieldDiscountName          FieldID = "discounts[].name"
	FieldDiscountDescription   FieldID = "discounts[].description"
	FieldDiscountBandCodes     FieldID = "discounts[].componentBandCodes"
	FieldDiscountValidity      FieldID = "discounts[].validity"
	FieldDiscountVAT           FieldID = "discounts[].vatApplicable"
	FieldDiscountPeriodMonths  FieldID = "discounts[].validityPeriod.durationMonths"
	FieldDiscountPeriodUntil   FieldID = "discounts[].validityPeriod.validUntil"
	FieldDiscountCondition     FieldID = "discounts[].applicationCondition"
	FieldDiscountConditionDesc FieldID = "discounts[].conditionDescription"
	FieldDiscountPriceType     FieldID = "discounts[].prices[].type"
	FieldDiscountPriceUnit     FieldID = "discounts[].prices[].unit"
	FieldDiscountPriceValue    FieldID = "discounts[].prices[].price"

	FieldProductName            FieldID = "additionalProducts[].name"
	FieldProductDetail          FieldID = "additionalProducts[].detail"
	FieldProductMacroArea       FieldID = "additionalProducts[].macroArea"
	FieldProductMacroAreaDetail FieldID = "additionalProducts[].macroAreaDetail"
)

// Named regular expressions referenced by Shape.Pattern.
const (
	patVAT       = `^[0-9A-Za-z]{11,16}$`
	patOfferCode = `^[A-Z0-9]{1,32}$`
	patPhone     = `^\+?[0-9 ]{5,15}$`
	patBandDay   = `^([0-9]{1,2}-[1-8])(,[0-9]{1,2}-[1-8])*$`
	patRegion    = `^[0-9]{2}$`
	patProvince  = `^[0-9]{3}$`
	patComune    = `^[0-9]{6}$`
	patCompBand  = `^[A-Z0-9]{1,20}$`
	patMonthYear = `^(0[1-9]|1[0-2])/[0-9]{4}$`
)

var patterns = map[string]*regexp.Regexp{}

func init() {
	for _, s := range registry {
		if s.Pattern != "" && patterns[s.Pattern] == nil {
			patterns[s.Pattern] = regexp.MustCompile(s.Pattern)
		}
	}
	for _, s := range registry {
		byID[s.ID] = s
	}
}

var byID = map[FieldID]Shape{}

func bound(v float64) *float64 { return &v }

var (
	marketTypes = []string{
		string(offer.MarketElectricity), string(offer.MarketGas), string(offer.MarketDualFuel),
	}
	clientTypes = []string{
		string(offer.ClientDomestic), string(offer.ClientOtherUses), string(offer.ClientCondominium),
	}
	offerTypes = []string{
		string(offer.OfferFixed), string(offer.OfferVariable), string(offer.OfferFlat),
	}
	activationTypes = []string{
		string(offer.ActivationSupplierSwitch), string(offer.ActivationFirstActivation),
		string(offer.ActivationReactivation), string(offer.ActivationContractTransfer),
		string(offer.ActivationAlways),
	}
	activationChannels = []string{
		string(offer.MethodWebOnly), string(offer.MethodAnyChannel), string(offer.MethodPointOfSale),
		string(offer.MethodTeleselling), string(offer.MethodAgency), string(offer.MethodOther),
	}
	priceIndexes = []string{
		string(offer.IndexPUN), string(offer.IndexTTF), string(offer.IndexPSV),
		string(offer.IndexPsbil), string(offer.IndexPE), string(offer.IndexCmem),
		string(offer.IndexPfor), string(offer.IndexBrent), string(offer.IndexETS),
		string(offer.IndexGME), string(offer.IndexOther),
	}
	paymentTypes = []string{
		string(offer.PaymentDirectDebit), string(offer.PaymentSlip),
		string(offer.PaymentPrepaid), string(offer.PaymentOther),
	}
	regulatedCodes = []string{
		string(offer.ComponentPCV), string(offer.ComponentPPE), string(offer.ComponentCCR),
		string(offer.ComponentCPR), string(offer.ComponentGRAD), string(offer.ComponentQTint),
		string(offer.ComponentQTpsv), string(offer.ComponentQVDFixed), string(offer.ComponentQVDVariable),
	}
	bandConfigurations = []string{
		string(offer.BandsMonorario), string(offer.BandsF1F2), string(offer.BandsF1F2F3),
		string(offer.BandsF1F2F3F4), string(offer.BandsF1F2F3F4F5), string(offer.BandsF1F2F3F4F56),
		string(offer.BandsPeakOffPeak), string(offer.BandsBioF1F23), string(offer.BandsBioF12F3),
		string(offer.BandsMonoFasce),
	}
	dispatchingTypes = []string{
		string(offer.DispatchingDisp), string(offer.DispatchingPD), string(offer.DispatchingMSD),
		string(offer.DispatchingModulation), string(offer.DispatchingNonArbitrage),
		string(offer.DispatchingTerre), string(offer.DispatchingInterruptible),
		string(offer.DispatchingCapacity), string(offer.DispatchingOther),
	}
	componentClasses = []string{string(offer.ComponentStandard), string(offer.ComponentOptional)}
	macroAreas       = []string{
		string(offer.AreaFixedCommercialFee), string(offer.AreaEnergyCommercialFee),
		string(offer.AreaEnergyPrice), string(offer.AreaOneTimeFee), string(offer.AreaGreenEnergy),
	}
	intervalBands = []string{"01", "02", "03", "04", "05", "06", "07", "08"}
	units         = []string{
		string(offer.UnitEuroPerYear), string(offer.UnitEuroPerKW), string(offer.UnitEuroPerKWh),
		string(offer.UnitEuroPerSm3), string(offer.UnitEuro), string(offer.UnitPercent),
	}
	conditionTypes = []string{
		string(offer.ConditionActivation), string(offer.ConditionDeactivation),
		string(offer.ConditionWithdrawal), string(offer.ConditionMultiYear),
		string(offer.ConditionEarlyWithdrawal), string(offer.ConditionOther),
	}
	discountValidities = []string{
		string(offer.DiscountAtSubscription), string(offer.DiscountWithin12Months),
		string(offer.DiscountBeyond12Months),
	}
	applicationConditions = []string{
		string(offer.ConditionNone), string(offer.ConditionElectronicBilling),
		string(offer.ConditionOnlineManagement), string(offer.ConditionEBillingDirectDebit),
		string(offer.ConditionOtherApplication),
	}
	discountPriceTypes = []string{
		string(offer.DiscountFixed), string(offer.DiscountPower),
		string(offer.DiscountSale), string(offer.DiscountRegulatedPrice),
	}
	productMacroAreas = []string{
		string(offer.ProductBoiler), string(offer.ProductMobility), string(offer.ProductSolar),
		string(offer.ProductAirConditioning), string(offer.ProductInsurance), string(offer.ProductOther),
	}
)

var registry = []Shape{
	{
		ID: FieldVATNumber, Section: offer.SectionIdentification, Kind: KindString,
		MinLen: 11, MaxLen: 16, Pattern: patVAT,
		Get: func(o *offer.Offer) []Value {
			if o.Identification == nil {
				return nil
			}
			return strv(o.Identification.VATNumber)
		},
	},
	{
		ID: FieldOfferCode, Section: offer.SectionIdentification, Kind: KindString,
		MaxLen: 32, Pattern: patOfferCode,
		Get: func(o *offer.Offer) []Value {
			if o.Identification == nil {
				return nil
			}
			return strv(o.Identification.OfferCode)
		},
	},

	{
		ID: FieldMarketType, Section: offer.SectionOfferDetails, Kind: KindEnum, Enum: marketTypes,
		Get: func(o *offer.Offer) []Value {
			if o.Details == nil {
				return nil
			}
			return enumv(o.Details.MarketType)
		},
	},
	{
		ID: FieldSingleOffer, Section: offer.SectionOfferDetails, Kind: KindBool,
		Get: func(o *offer.Offer) []Value {
			if o.Details == nil {
				return nil
			}
			return boolv(o.Details.SingleOffer)
		},
	},
	{
		ID: FieldClientType, Section: offer.SectionOfferDetails, Kind: KindEnum, Enum: clientTypes,
		Get: func(o *offer.Offer) []Value {
			if o.Details == nil {
				return nil
			}
			return enumv(o.Details.ClientType)
		},
	},
	{
		ID: FieldOfferType, Section: offer.SectionOfferDetails, Kind: KindEnum, Enum: offerTypes,
		Get: func(o *offer.Offer) []Value {
			if o.Details == nil {
				return nil
			}
			return enumv(o.Details.OfferType)
		},
	},
	{
		ID: FieldActivationTypes, Section: offer.SectionOfferDetails, Kind: KindEnumList, Enum: activationTypes,
		Get: func(o *offer.Offer) []Value {
			if o.Details == nil {
				return nil
			}
			return listv(o.Details.ActivationTypes)
		},
	},
	{
		ID: FieldOfferName, Section: offer.SectionOfferDetails, Kind: KindString, MaxLen: 255,
		Get: func(o *offer.Offer) []Value {
			if o.Details == nil {
				return nil
			}
			return strv(o.Details.Name)
		},
	},
	{
		ID: FieldOfferDescription, Section: offer.SectionOfferDetails, Kind: KindString, MaxLen: 3000,
		Get: func(o *offer.Offer) []Value {
			if o.Details == nil {
				return nil
			}
			return strv(o.Details.Description)
		},
	},
	{
		ID: FieldDurationMonths, Section: offer.SectionOfferDetails, Kind: KindInteger,
		Min: bound(1), Max: bound(99), Indeterminate: true,
		Get: func(o *offer.Offer) []Value {
			if o.Details == nil {
				return nil
			}
			return intv(o.Details.DurationMonths)
		},
	},
	{
		ID: FieldGuarantees, Section: offer.SectionOfferDetails, Kind: KindString, MaxLen: 3000,
		Get: func(o *offer.Offer) []Value {
			if o.Details == nil {
				return nil
			}
			return strv(o.Details.Guarantees)
		},
	},

	{
		ID: FieldActivationChannels, Section: offer.SectionActivationMethods, Kind: KindEnumList, Enum: activationChannels,
		Get: func(o *offer.Offer) []Value {
			if o.ActivationMethods == nil {
				return nil
			}
			return listv(o.ActivationMethods.Methods)
		},
	},
	{
		ID: FieldActivationOther, Section: offer.SectionActivationMethods, Kind: KindString, MaxLen: 3000,
		Get: func(o *offer.Offer) []Value {
			if o.ActivationMethods == nil {
				return nil
			}
			return strv(o.ActivationMethods.OtherDescription)
		},
	},

	{
		ID: FieldPhone, Section: offer.SectionContacts, Kind: KindString, MaxLen: 15, Pattern: patPhone,
		Get: func(o *offer.Offer) []Value {
			if o.Contacts == nil {
				return nil
			}
			return strv(o.Contacts.Phone)
		},
	},
	{
		ID: FieldVendorWebsite, Section: offer.SectionContacts, Kind: KindString, MaxLen: 100,
		Get: func(o *offer.Offer) []Value {
			if o.Contacts == nil {
				return nil
			}
			return strv(o.Contacts.VendorWebsite)
		},
	},
	{
		ID: FieldOfferURL, Section: offer.SectionContacts, Kind: KindString, MaxLen: 100,
		Get: func(o *offer.Offer) []Value {
			if o.Contacts == nil {
				return nil
			}
			return strv(o.Contacts.OfferURL)
		},
	},

	{
		ID: FieldPriceIndex, Section: offer.SectionEnergyPriceReference, Kind: KindEnum, Enum: priceIndexes,
		Get: func(o *offer.Offer) []Value {
			if o.PriceReference == nil {
				return nil
			}
			return enumv(o.PriceReference.Index)
		},
	},
	{
		ID: FieldPriceIndexOther, Section: offer.SectionEnergyPriceReference, Kind: KindString, MaxLen: 3000,
		Get: func(o *offer.Offer) []Value {
			if o.PriceReference == nil {
				return nil
			}
			return strv(o.PriceReference.OtherDescription)
		},
	},

	{
		ID: FieldValidityStart, Section: offer.SectionValidity, Kind: KindTimestamp,
		Get: func(o *offer.Offer) []Value {
			if o.Validity == nil {
				return nil
			}
			return strv(o.Validity.StartTimestamp)
		},
	},
	{
		ID: FieldValidityEnd, Section: offer.SectionValidity, Kind: KindTimestamp,
		Get: func(o *offer.Offer) []Value {
			if o.Validity == nil {
				return nil
			}
			return strv(o.Validity.EndTimestamp)
		},
	},

	{
		ID: FieldMinConsumption, Section: offer.SectionCharacteristics, Kind: KindInteger,
		Min: bound(0), Max: bound(9999999),
		Get: func(o *offer.Offer) []Value {
			if o.Characteristics == nil {
				return nil
			}
			return intv(o.Characteristics.MinConsumption)
		},
	},
	{
		ID: FieldMaxConsumption, Section: offer.SectionCharacteristics, Kind: KindInteger,
		Min: bound(0), Max: bound(9999999),
		Get: func(o *offer.Offer) []Value {
			if o.Characteristics == nil {
				return nil
			}
			return intv(o.Characteristics.MaxConsumption)
		},
	},
	{
		ID: FieldMinPower, Section: offer.SectionCharacteristics, Kind: KindNumber,
		Min: bound(0), Max: bound(99), Decimals: 2,
		Get: func(o *offer.Offer) []Value {
			if o.Characteristics == nil {
				return nil
			}
			return numv(o.Characteristics.MinPower)
		},
	},
	{
		ID: FieldMaxPower, Section: offer.SectionCharacteristics, Kind: KindNumber,
		Min: bound(0), Max: bound(99), Decimals: 2,
		Get: func(o *offer.Offer) []Value {
			if o.Characteristics == nil {
				return nil
			}
			return numv(o.Characteristics.MaxPower)
		},
	},

	{
		ID: FieldJointElectricityCodes, Section: offer.SectionDualOffer, Kind: KindStringList,
		MaxLen: 32, Pattern: patOfferCode,
		Get: func(o *offer.Offer) []Value {
			if o.DualOffer == nil {
				return nil
			}
			return strlist(o.DualOffer.ElectricityCodes)
		},
	},
	{
		ID: FieldJointGasCodes, Section: offer.SectionDualOffer, Kind: KindStringList,
		MaxLen: 32, Pattern: patOfferCode,
		Get: func(o *offer.Offer) []Value {
			if o.DualOffer == nil {
				return nil
			}
			return strlist(o.DualOffer.GasCodes)
		},
	},

	{
		ID: FieldPaymentMethodType, Section: offer.SectionPaymentMethods, Kind: KindEnum,
		Enum: paymentTypes, Repeated: true,
		Get: func(o *offer.Offer) []Value {
			var vs []Value
			for i, m := range o.PaymentMethods {
				vs = addEnum(vs, i, m.Method)
			}
			return vs
		},
	},
	{
		ID: FieldPaymentOther, Section: offer.SectionPaymentMethods, Kind: KindString,
		MaxLen: 255, Repeated: true,
		Get: func(o *offer.Offer) []Value {
			var vs []Value
			for i, m := range o.PaymentMethods {
				vs = addStr(vs, i, m.OtherDescription)
			}
			return vs
		},
	},

	{
		ID: FieldRegulatedCodes, Section: offer.SectionRegulatedComponents, Kind: KindEnumList, Enum: regulatedCodes,
		Get: func(o *offer.Offer) []Value {
			if o.RegulatedComponents == nil {
				return nil
			}
			return listv(o.RegulatedComponents.Codes)
		},
	},

	{
		ID: FieldBandConfiguration, Section: offer.SectionPriceType, Kind: KindEnum, Enum: bandConfigurations,
		Get: func(o *offer.Offer) []Value {
			if o.PriceType == nil {
				return nil
			}
			return enumv(o.PriceType.BandConfiguration)
		},
	},

	bandDay(FieldBandsMonday, func(w *offer.WeeklyBands) *string { return w.Monday }),
	bandDay(FieldBandsTuesday, func(w *offer.WeeklyBands) *string { return w.Tuesday }),
	bandDay(FieldBandsWednesday, func(w *offer.WeeklyBands) *string { return w.Wednesday }),
	bandDay(FieldBandsThursday, func(w *offer.WeeklyBands) *string { return w.Thursday }),
	bandDay(FieldBandsFriday, func(w *offer.WeeklyBands) *string { return w.Friday }),
	bandDay(FieldBandsSaturday, func(w *offer.WeeklyBands) *string { return w.Saturday }),
	bandDay(FieldBandsSunday, func(w *offer.WeeklyBands) *string { return w.Sunday }),
	bandDay(FieldBandsHolidays, func(w *offer.WeeklyBands) *string { return w.Holidays }),

	{
		ID: FieldDispatchingType, Section: offer.SectionDispatching, Kind: KindEnum,
		Enum: dispatchingTypes, Repeated: true,
		Get: func(o *offer.Offer) []Value {
			var vs []Value
			for i, d := range o.Dispatching {
				vs = addEnum(vs, i, d.Type)
			}
			return vs
		},
	},
	{
		ID: FieldDispatchingValue, Section: offer.SectionDispatching, Kind: KindNumber,
		Min: bound(0), Decimals: 6, Repeated: true,
		Get: func(o *offer.Offer) []Value {
			var vs []Value
			for i, d := range o.Dispatching {
				vs = addNum(vs, i, d.Value)
			}
			return vs
		},
	},
	{
		ID: FieldDispatchingName, Section: offer.SectionDispatching, Kind: KindString,
		MaxLen: 25, Repeated: true,
		Get: func(o *offer.Offer) []Value {
			var vs []Value
			for i, d := range o.Dispatching {
				vs = addStr(vs, i, d.Name)
			}
			return vs
		},
	},
	{
		ID: FieldDispatchingDescription, Section: offer.SectionDispatching, Kind: KindString,
		MaxLen: 255, Repeated: true,
		Get: func(o *offer.Offer) []Value {
			var vs []Value
			for i, d := range o.Dispatching {
				vs = addStr(vs, i, d.Description)
			}
			return vs
		},
	},

	{
		ID: FieldComponentName, Section: offer.SectionCompanyComponents, Kind: KindString,
		MaxLen: 255, Repeated: true,
		Get: func(o *offer.Offer) []Value {
			var vs []Value
			for i, c := range o.CompanyComponents {
				vs = addStr(vs, i, c.Name)
			}
			return vs
		},
	},
	{
		ID: FieldComponentDescription, Section: offer.SectionCompanyComponents, Kind: KindString,
		MaxLen: 3000, Repeated: true,
		Get: func(o *offer.Offer) []Value {
			var vs []Value
			for i, c := range o.CompanyComponents {
				vs = addStr(vs, i, c.Description)
			}
			return vs
		},
	},
	{
		ID: FieldComponentClass, Section: offer.SectionCompanyComponents, Kind: KindEnum,
		Enum: componentClasses, Repeated: true,
		Get: func(o *offer.Offer) []Value {
			var vs []Value
			for i, c := range o.CompanyComponents {
				vs = addEnum(vs, i, c.Class)
			}
			return vs
		},
	},
	{
		ID: FieldComponentMacroArea, Section: offer.SectionCompanyComponents, Kind: KindEnum,
		Enum: macroAreas, Repeated: true,
		Get: func(o *offer.Offer) []Value {
			var vs []Value
			for i, c := range o.CompanyComponents {
				vs = addEnum(vs, i, c.MacroArea)
			}
			return vs
		},
	},
	{
		ID: FieldIntervalBand, Section: offer.SectionCompanyComponents, Kind: KindEnum,
		Enum: intervalBands, Repeated: true,
		Get: func(o *offer.Offer) []Value {
			var vs []Value
			for i, c := range o.CompanyComponents {
				for _, iv := range c.Intervals {
					vs = addStr(vs, i, iv.BandCode)
				}
			}
			return vs
		},
	},
	{
		ID: FieldIntervalFrom, Section: offer.SectionCompanyComponents, Kind: KindInteger,
		Min: bound(0), Repeated: true,
		Get: func(o *offer.Offer) []Value {
			var vs []Value
			for i, c := range o.CompanyComponents {
				for _, iv := range c.Intervals {
					vs = addInt(vs, i, iv.ConsumptionFrom)
				}
			}
			return vs
		},
	},
	{
		ID: FieldIntervalTo, Section: offer.SectionCompanyComponents, Kind: KindInteger,
		Min: bound(0), Repeated: true,
		Get: func(o *offer.Offer) []Value {
			var vs []Value
			for i, c := range o.CompanyComponents {
				for _, iv := range c.Intervals {
					vs = addInt(vs, i, iv.ConsumptionTo)
				}
			}
			return vs
		},
	},
	{
		ID: FieldIntervalPrice, Section: offer.SectionCompanyComponents, Kind: KindNumber,
		Decimals: 6, Repeated: true,
		Get: func(o *offer.Offer) []Value {
			var vs []Value
			for i, c := range o.CompanyComponents {
				for _, iv := range c.Intervals {
					vs = addNum(vs, i, iv.Price)
				}
			}
			return vs
		},
	},
	{
		ID: FieldIntervalUnit, Section: offer.SectionCompanyComponents, Kind: KindEnum,
		Enum: units, Repeated: true,
		Get: func(o *offer.Offer) []Value {
			var vs []Value
			for i, c := range o.CompanyComponents {
				for _, iv := range c.Intervals {
					vs = addEnum(vs, i, iv.Unit)
				}
			}
			return vs
		},
	},

	{
		ID: FieldConditionType, Section: offer.SectionContractualConditions, Kind: KindEnum,
		Enum: conditionTypes, Repeated: true,
		Get: func(o *offer.Offer) []Value {
			var vs []Value
			for i, c := range o.ContractualConditions {
				vs = addEnum(vs, i, c.Type)
			}
			return vs
		},
	},
	{
		ID: FieldConditionOther, Section: offer.SectionContractualConditions, Kind: KindString,
		MaxLen: 3000, Repeated: true,
		Get: func(o *offer.Offer) []Value {
			var vs []Value
			for i, c := range o.ContractualConditions {
				vs = addStr(vs, i, c.OtherDescription)
			}
			return vs
		},
	},
	{
		ID: FieldConditionDescription, Section: offer.SectionContractualConditions, Kind: KindString,
		MaxLen: 3000, Repeated: true,
		Get: func(o *offer.Offer) []Value {
			var vs []Value
			for i, c := range o.ContractualConditions {
				vs = addStr(vs, i, c.Description)
			}
			return vs
		},
	},
	{
		ID: FieldConditionLimiting, Section: offer.SectionContractualConditions, Kind: KindBool,
		Repeated: true,
		Get: func(o *offer.Offer) []Value {
			var vs []Value
			for i, c := range o.ContractualConditions {
				vs = addBool(vs, i, c.IsLimiting)
			}
			return vs
		},
	},

	{
		ID: FieldZoneRegions, Section: offer.SectionOfferZones, Kind: KindStringList, Pattern: patRegion,
		Get: func(o *offer.Offer) []Value {
			if o.Zones == nil {
				return nil
			}
			return strlist(o.Zones.Regions)
		},
	},
	{
		ID: FieldZoneProvinces, Section: offer.SectionOfferZones, Kind: KindStringList, Pattern: patProvince,
		Get: func(o *offer.Offer) []Value {
			if o.Zones == nil {
				return nil
			}
			return strlist(o.Zones.Provinces)
		},
	},
	{
		ID: FieldZoneMunicipalities, Section: offer.SectionOfferZones, Kind: KindStringList, Pattern: patComune,
		Get: func(o *offer.Offer) []Value {
			if o.Zones == nil {
				return nil
			}
			return strlist(o.Zones.Municipalities)
		},
	},

	{
		ID: FieldDiscountName, Section: offer.SectionDiscounts, Kind: KindString,
		MaxLen: 255, Repeated: true,
		Get: func(o *offer.Offer) []Value {
			var vs []Value
			for i, d := range o.Discounts {
				vs = addStr(vs, i, d.Name)
			}
			return vs
		},
	},
	{
		ID: FieldDiscountDescription, Section: offer.SectionDiscounts, Kind: KindString,
		MaxLen: 3000, Repeated: true,
		Get: func(o *offer.Offer) []Value {
			var vs []Value
			for i, d := range o.Discounts {
				vs = addStr(vs, i, d.Description)
			}
			return vs
		},
	},
	{
		ID: FieldDiscountBandCodes, Section: offer.SectionDiscounts, Kind: KindStringList,
		MaxLen: 20, Pattern: patCompBand, Repeated: true,
		Get: func(o *offer.Offer) []Value {
			var vs []Value
			for i, d := range o.Discounts {
				if len(d.ComponentBandCodes) > 0 {
					vs = append(vs, Value{Entry: i, V: d.ComponentBandCodes})
				}
			}
			return vs
		},
	},
	{
		ID: FieldDiscountValidity, Section: offer.SectionDiscounts, Kind: KindEnum,
		Enum: discountValidities, Repeated: true,
		Get: func(o *offer.Offer) []Value {
			var vs []Value
			for i, d := range o.Discounts {
				vs = addEnum(vs, i, d.Validity)
			}
			return vs
		},
	},
	{
		ID: FieldDiscountVAT, Section: offer.SectionDiscounts, Kind: KindBool, Repeated: true,
		Get: func(o *offer.Offer) []Value {
			var vs []Value
			for i, d := range o.Discounts {
				vs = addBool(vs, i, d.VATApplicable)
			}
			return vs
		},
	},
	{
		ID: FieldDiscountPeriodMonths, Section: offer.SectionDiscounts, Kind: KindInteger,
		Min: bound(1), Max: bound(99), Repeated: true,
		Get: func(o *offer.Offer) []Value {
			var vs []Value
			for i, d := range o.Discounts {
				if d.ValidityPeriod != nil {
					vs = addInt(vs, i, d.ValidityPeriod.DurationMonths)
				}
			}
			return vs
		},
	},
	{
		ID: FieldDiscountPeriodUntil, Section: offer.SectionDiscounts, Kind: KindString,
		Pattern: patMonthYear, Repeated: true,
		Get: func(o *offer.Offer) []Value {
			var vs []Value
			for i, d := range o.Discounts {
				if d.ValidityPeriod != nil {
					vs = addStr(vs, i, d.ValidityPeriod.ValidUntil)
				}
			}
			return vs
		},
	},
	{
		ID: FieldDiscountCondition, Section: offer.SectionDiscounts, Kind: KindEnum,
		Enum: applicationConditions, Repeated: true,
		Get: func(o *offer.Offer) []Value {
			var vs []Value
			for i, d := range o.Discounts {
				vs = addEnum(vs, i, d.ApplicationCondition)
			}
			return vs
		},
	},
	{
		ID: FieldDiscountConditionDesc, Section: offer.SectionDiscounts, Kind: KindString,
		MaxLen: 3000, Repeated: true,
		Get: func(o *offer.Offer) []Value {
			var vs []Value
			for i, d := range o.Discounts {
				vs = addStr(vs, i, d.ConditionDescription)
			}
			return vs
		},
	},
	{
		ID: FieldDiscountPriceType, Section: offer.SectionDiscounts, Kind: KindEnum,
		Enum: discountPriceTypes, Repeated: true,
		Get: func(o *offer.Offer) []Value {
			var vs []Value
			for i, d := range o.Discounts {
				for _, p := range d.Prices {
					vs = addEnum(vs, i, p.Type)
				}
			}
			return vs
		},
	},
	{
		ID: FieldDiscountPriceUnit, Section: offer.SectionDiscounts, Kind: KindEnum,
		Enum: units, Repeated: true,
		Get: func(o *offer.Offer) []Value {
			var vs []Value
			for i, d := range o.Discounts {
				for _, p := range d.Prices {
					vs = addEnum(vs, i, p.Unit)
				}
			}
			return vs
		},
	},
	{
		ID: FieldDiscountPriceValue, Section: offer.SectionDiscounts, Kind: KindNumber,
		Min: bound(0), Decimals: 6, Repeated: true,
		Get: func(o *offer.Offer) []Value {
			var vs []Value
			for i, d := range o.Discounts {
				for _, p := range d.Prices {
					vs = addNum(vs, i, p.Price)
				}
			}
			return vs
		},
	},

	{
		ID: FieldProductName, Section: offer.SectionAdditionalProducts, Kind: KindString,
		MaxLen: 255, Repeated: true,
		Get: func(o *offer.Offer) []Value {
			var vs []Value
			for i, p := range o.AdditionalProducts {
				vs = addStr(vs, i, p.Name)
			}
			return vs
		},
	},
	{
		ID: FieldProductDetail, Section: offer.SectionAdditionalProducts, Kind: KindString,
		MaxLen: 3000, Repeated: true,
		Get: func(o *offer.Offer) []Value {
			var vs []Value
			for i, p := range o.AdditionalProducts {
				vs = addStr(vs, i, p.Detail)
			}
			return vs
		},
	},
	{
		ID: FieldProductMacroArea, Section: offer.SectionAdditionalProducts, Kind: KindEnum,
		Enum: productMacroAreas, Repeated: true,
		Get: func(o *offer.Offer) []Value {
			var vs []Value
			for i, p := range o.AdditionalProducts {
				vs = addEnum(vs, i, p.MacroArea)
			}
			return vs
		},
	},
	{
		ID: FieldProductMacroAreaDetail, Section: offer.SectionAdditionalProducts, Kind: KindString,
		MaxLen: 3000, Repeated: true,
		Get: func(o *offer.Offer) []Value {
			var vs []Value
			for i, p := range o.AdditionalProducts {
				vs = addStr(vs, i, p.MacroAreaDetail)
			}
			return vs
		},
	},
}

func bandDay(id FieldID, get func(*offer.WeeklyBands) *string) Shape {
	return Shape{
		ID: id, Section: offer.SectionWeeklyTimeBands, Kind: KindString,
		MaxLen: 49, Pattern: patBandDay,
		Get: func(o *offer.Offer) []Value {
			if o.WeeklyBands == nil {
				return nil
			}
			return strv(get(o.WeeklyBands))
		},
	}
}

// Extraction helpers. A nil pointer contributes no value.

func strv(p *string) []Value {
	if p == nil {
		return nil
	}
	return []Value{{Entry: -1, V: *p}}
}

func intv(p *int) []Value {
	if p == nil {
		return nil
	}
	return []Value{{Entry: -1, V: *p}}
}

func numv(p *float64) []Value {
	if p == nil {
		return nil
	}
	return []Value{{Entry: -1, V: *p}}
}

func boolv(p *bool) []Value {
	if p == nil {
		return nil
	}
	return []Value{{Entry: -1, V: *p}}
}

func enumv[T ~string](p *T) []Value {
	if p == nil {
		return nil
	}
	return []Value{{Entry: -1, V: string(*p)}}
}

func listv[T ~string](l []T) []Value {
	if len(l) == 0 {
		return nil
	}
	out := make([]string, len(l))
	for i, v := range l {
		out[i] = string(v)
	}
	return []Value{{Entry: -1, V: out}}
}

func strlist(l []string) []Value {
	if len(l) == 0 {
		return nil
	}
	return []Value{{Entry: -1, V: l}}
}

func addStr(vs []Value, entry int, p *string) []Value {
	if p != nil {
		vs = append(vs, Value{Entry: entry, V: *p})
	}
	return vs
}

func addInt(vs []Value, entry int, p *int) []Value {
	if p != nil {
		vs = append(vs, Value{Entry: entry, V: *p})
	}
	return vs
}

func addNum(vs []Value, entry int, p *float64) []Value {
	if p != nil {
		vs = append(vs, Value{Entry: entry, V: *p})
	}
	return vs
}

func addBool(vs []Value, entry int, p *bool) []Value {
	if p != nil {
		vs = append(vs, Value{Entry: entry, V: *p})
	}
	return vs
}

func addEnum[T ~string](vs []Value, entry int, p *T) []Value {
	if p != nil {
		vs = append(vs, Value{Entry: entry, V: string(*p)})
	}
	return vs
}
