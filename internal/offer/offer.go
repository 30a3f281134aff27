// Package offer holds the typed in-memory representation of a commercial
// energy/gas offer as the wizard builds it: eighteen sections, each
// optional until the user touches it. The package is pure data; the
// conditional requirements between sections live in internal/rules.
package offer

// Section names one of the eighteen logical groupings of offer fields.
type Section string

const (
	SectionIdentification        Section = "identification"
	SectionOfferDetails          Section = "offerDetails"
	SectionActivationMethods     Section = "activationMethods"
	SectionContacts              Section = "contacts"
	SectionEnergyPriceReference  Section = "energyPriceReference"
	SectionValidity              Section = "validity"
	SectionCharacteristics       Section = "characteristics"
	SectionDualOffer             Section = "dualOffer"
	SectionPaymentMethods        Section = "paymentMethods"
	SectionRegulatedComponents   Section = "regulatedComponents"
	SectionPriceType             Section = "priceType"
	SectionWeeklyTimeBands       Section = "weeklyTimeBands"
	SectionDispatching           Section = "dispatching"
	SectionCompanyComponents     Section = "companyComponents"
	SectionContractualConditions Section = "contractualConditions"
	SectionOfferZones            Section = "offerZones"
	SectionDiscounts             Section = "discounts"
	SectionAdditionalProducts    Section = "additionalProducts"
)

// Sections lists every section in wizard order.
var Sections = []Section{
	SectionIdentification,
	SectionOfferDetails,
	SectionActivationMethods,
	SectionContacts,
	SectionEnergyPriceReference,
	SectionValidity,
	SectionCharacteristics,
	SectionDualOffer,
	SectionPaymentMethods,
	SectionRegulatedComponents,
	SectionPriceType,
	SectionWeeklyTimeBands,
	SectionDispatching,
	SectionCompanyComponents,
	SectionContractualConditions,
	SectionOfferZones,
	SectionDiscounts,
	SectionAdditionalProducts,
}

// Offer is the aggregate the validation engine operates on. Scalar
// fields are pointers so that "absent" and "zero" stay distinguishable
// while the user is still typing.
type Offer struct {
	Identification        *Identification        `json:"identification,omitempty"`
	Details               *Details               `json:"offerDetails,omitempty"`
	ActivationMethods     *ActivationMethods     `json:"activationMethods,omitempty"`
	Contacts              *Contacts              `json:"contacts,omitempty"`
	PriceReference        *PriceReference        `json:"energyPriceReference,omitempty"`
	Validity              *Validity              `json:"validity,omitempty"`
	Characteristics       *Characteristics       `json:"characteristics,omitempty"`
	DualOffer             *DualOffer             `json:"dualOffer,omitempty"`
	PaymentMethods        []PaymentMethod        `json:"paymentMethods,omitempty"`
	RegulatedComponents   *RegulatedComponents   `json:"regulatedComponents,omitempty"`
	PriceType             *PriceType             `json:"priceType,omitempty"`
	WeeklyBands           *WeeklyBands           `json:"weeklyTimeBands,omitempty"`
	Dispatching           []DispatchingComponent `json:"dispatching,omitempty"`
	CompanyComponents     []CompanyComponent     `json:"companyComponents,omitempty"`
	ContractualConditions []ContractualCondition `json:"contractualConditions,omitempty"`
	Zones                 *Zones                 `json:"offerZones,omitempty"`
	Discounts             []Discount             `json:"discounts,omitempty"`
	AdditionalProducts    []AdditionalProduct    `json:"additionalProducts,omitempty"`
}

// Identification carries the vendor VAT number and the unique offer code.
type Identification struct {
	VATNumber *string `json:"vatNumber,omitempty"`
	OfferCode *string `json:"offerCode,omitempty"`
}

// Details is the top-level description of the offer. Its market, client
// and offer type drive the applicability of most other sections.
type Details struct {
	MarketType      *MarketType      `json:"marketType,omitempty"`
	SingleOffer     *bool            `json:"singleOffer,omitempty"`
	ClientType      *ClientType      `json:"clientType,omitempty"`
	OfferType       *OfferType       `json:"offerType,omitempty"`
	ActivationTypes []ActivationType `json:"activationTypes,omitempty"`
	Name            *string          `json:"name,omitempty"`
	Description     *string          `json:"description,omitempty"`
	DurationMonths  *int             `json:"durationMonths,omitempty"`
	Guarantees      *string          `json:"guarantees,omitempty"`
}

// ActivationMethods lists the channels the offer can be subscribed through.
type ActivationMethods struct {
	Methods          []ActivationMethod `json:"methods,omitempty"`
	OtherDescription *string            `json:"otherDescription,omitempty"`
}

// Contacts carries the vendor contact points shown to the customer.
type Contacts struct {
	Phone         *string `json:"phone,omitempty"`
	VendorWebsite *string `json:"vendorWebsite,omitempty"`
	OfferURL      *string `json:"offerUrl,omitempty"`
}

// PriceReference names the index a variable offer tracks.
type PriceReference struct {
	Index            *PriceIndex `json:"index,omitempty"`
	OtherDescription *string     `json:"otherDescription,omitempty"`
}

// Validity is the subscription window of the offer.
type Validity struct {
	StartTimestamp *string `json:"startTimestamp,omitempty"`
	EndTimestamp   *string `json:"endTimestamp,omitempty"`
}

// Characteristics bounds the consumption and power the offer is valid for.
type Characteristics struct {
	MinConsumption *int     `json:"minConsumption,omitempty"`
	MaxConsumption *int     `json:"maxConsumption,omitempty"`
	MinPower       *float64 `json:"minPower,omitempty"`
	MaxPower       *float64 `json:"maxPower,omitempty"`
}

// DualOffer links the electricity and gas offers sold jointly.
type DualOffer struct {
	ElectricityCodes []string `json:"jointElectricityCodes,omitempty"`
	GasCodes         []string `json:"jointGasCodes,omitempty"`
}

// PaymentMethod is one accepted payment channel.
type PaymentMethod struct {
	Method           *PaymentMethodType `json:"methodType,omitempty"`
	OtherDescription *string            `json:"otherDescription,omitempty"`
}

// RegulatedComponents lists the regulated price components the offer
// passes through.
type RegulatedComponents struct {
	Codes []RegulatedComponentCode `json:"codes,omitempty"`
}

// PriceType declares the time-band layout of the price.
type PriceType struct {
	BandConfiguration *BandConfiguration `json:"timeBandConfiguration,omitempty"`
}

// WeeklyBands is the weekly calendar assigning each quarter hour to a
// band, one string per day plus holidays.
type WeeklyBands struct {
	Monday    *string `json:"monday,omitempty"`
	Tuesday   *string `json:"tuesday,omitempty"`
	Wednesday *string `json:"wednesday,omitempty"`
	Thursday  *string `json:"thursday,omitempty"`
	Friday    *string `json:"friday,omitempty"`
	Saturday  *string `json:"saturday,omitempty"`
	Sunday    *string `json:"sunday,omitempty"`
	Holidays  *string `json:"holidays,omitempty"`
}

// DispatchingComponent is one dispatching charge passed on to the customer.
type DispatchingComponent struct {
	Type        *DispatchingType `json:"type,omitempty"`
	Value       *float64         `json:"value,omitempty"`
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
}

// CompanyComponent is a vendor-defined price component.
type CompanyComponent struct {
	Name        *string         `json:"name,omitempty"`
	Description *string         `json:"description,omitempty"`
	Class       *ComponentClass `json:"componentClass,omitempty"`
	MacroArea   *MacroArea      `json:"macroArea,omitempty"`
	Intervals   []PriceInterval `json:"priceIntervals,omitempty"`
}

// PriceInterval is one priced consumption range of a company component.
// BandCode tags the interval with the time band it applies to when the
// component is articulated by band.
type PriceInterval struct {
	BandCode        *string        `json:"bandCode,omitempty"`
	ConsumptionFrom *int           `json:"consumptionFrom,omitempty"`
	ConsumptionTo   *int           `json:"consumptionTo,omitempty"`
	Price           *float64       `json:"price,omitempty"`
	Unit            *UnitOfMeasure `json:"unit,omitempty"`
}

// ContractualCondition is one clause the customer accepts.
type ContractualCondition struct {
	Type             *ConditionType `json:"conditionType,omitempty"`
	OtherDescription *string        `json:"otherDescription,omitempty"`
	Description      *string        `json:"description,omitempty"`
	IsLimiting       *bool          `json:"isLimiting,omitempty"`
}

// Zones restricts the offer to a geographic area, by ISTAT code.
type Zones struct {
	Regions        []string `json:"regions,omitempty"`
	Provinces      []string `json:"provinces,omitempty"`
	Municipalities []string `json:"municipalities,omitempty"`
}

// Discount is one price reduction attached to the offer.
type Discount struct {
	Name                 *string               `json:"name,omitempty"`
	Description          *string               `json:"description,omitempty"`
	ComponentBandCodes   []string              `json:"componentBandCodes,omitempty"`
	Validity             *DiscountValidity     `json:"validity,omitempty"`
	VATApplicable        *bool                 `json:"vatApplicable,omitempty"`
	ValidityPeriod       *ValidityPeriod       `json:"validityPeriod,omitempty"`
	ApplicationCondition *ApplicationCondition `json:"applicationCondition,omitempty"`
	ConditionDescription *string               `json:"conditionDescription,omitempty"`
	Prices               []DiscountPrice       `json:"prices,omitempty"`
}

// ValidityPeriod bounds how long a discount stays applied.
type ValidityPeriod struct {
	DurationMonths *int    `json:"durationMonths,omitempty"`
	ValidUntil     *string `json:"validUntil,omitempty"`
}

// DiscountPrice is one priced entry of a discount.
type DiscountPrice struct {
	Type  *DiscountPriceType `json:"type,omitempty"`
	Unit  *UnitOfMeasure     `json:"unit,omitempty"`
	Price *float64           `json:"price,omitempty"`
}

// AdditionalProduct is a non-commodity product or service bundled with
// the offer.
type AdditionalProduct struct {
	Name            *string           `json:"name,omitempty"`
	Detail          *string           `json:"detail,omitempty"`
	MacroArea       *ProductMacroArea `json:"macroArea,omitempty"`
	MacroAreaDetail *string           `json:"macroAreaDetail,omitempty"`
}
