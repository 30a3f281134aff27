package offer

// Enumerated code sets of the SII "Trasmissione Offerte" v4.5 schema.
// Codes are carried as the two-digit strings the regulator expects so a
// record survives a JSON round trip without re-mapping.

// MarketType is the commodity the offer is sold for (TIPO_MERCATO).
type MarketType string

const (
	MarketElectricity MarketType = "01"
	MarketGas         MarketType = "02"
	MarketDualFuel    MarketType = "03"
)

// ClientType classifies the customer the offer targets (TIPO_CLIENTE).
type ClientType string

const (
	ClientDomestic    ClientType = "01"
	ClientOtherUses   ClientType = "02"
	ClientCondominium ClientType = "03" // residential condominium, gas only
)

// OfferType is the pricing model (TIPO_OFFERTA).
type OfferType string

const (
	OfferFixed    OfferType = "01"
	OfferVariable OfferType = "02"
	OfferFlat     OfferType = "03"
)

// ActivationType lists the contract situations the offer can be
// subscribed under (TIPOLOGIA_ATT_CONTR).
type ActivationType string

const (
	ActivationSupplierSwitch   ActivationType = "01"
	ActivationFirstActivation  ActivationType = "02"
	ActivationReactivation     ActivationType = "03"
	ActivationContractTransfer ActivationType = "04"
	ActivationAlways           ActivationType = "99"
)

// ActivationMethod is a sale channel (MODALITA).
type ActivationMethod string

const (
	MethodWebOnly     ActivationMethod = "01"
	MethodAnyChannel  ActivationMethod = "02"
	MethodPointOfSale ActivationMethod = "03"
	MethodTeleselling ActivationMethod = "04"
	MethodAgency      ActivationMethod = "05"
	MethodOther       ActivationMethod = "99"
)

// PriceIndex identifies the market index a variable offer tracks
// (IDX_PREZZO_ENERGIA). 99 requires a free-text description.
type PriceIndex string

const (
	IndexPUN   PriceIndex = "01"
	IndexTTF   PriceIndex = "02"
	IndexPSV   PriceIndex = "03"
	IndexPsbil PriceIndex = "04"
	IndexPE    PriceIndex = "05"
	IndexCmem  PriceIndex = "06"
	IndexPfor  PriceIndex = "07"
	IndexBrent PriceIndex = "08"
	IndexETS   PriceIndex = "09"
	IndexGME   PriceIndex = "10"
	IndexOther PriceIndex = "99"
)

// BandConfiguration is the time-band layout prices are articulated over
// (TIPOLOGIA_FASCE). Configurations 02-06 carry their own weekly
// calendar, 07 may carry one, the rest never do.
type BandConfiguration string

const (
	BandsMonorario   BandConfiguration = "01"
	BandsF1F2        BandConfiguration = "02"
	BandsF1F2F3      BandConfiguration = "03"
	BandsF1F2F3F4    BandConfiguration = "04"
	BandsF1F2F3F4F5  BandConfiguration = "05"
	BandsF1F2F3F4F56 BandConfiguration = "06"
	BandsPeakOffPeak BandConfiguration = "07"
	BandsBioF1F23    BandConfiguration = "91"
	BandsBioF12F3    BandConfiguration = "92"
	BandsMonoFasce   BandConfiguration = "93"
)

// PaymentMethodType (MODALITA_PAGAMENTO).
type PaymentMethodType string

const (
	PaymentDirectDebit PaymentMethodType = "01"
	PaymentSlip        PaymentMethodType = "02"
	PaymentPrepaid     PaymentMethodType = "03"
	PaymentOther       PaymentMethodType = "99"
)

// RegulatedComponentCode (CODICE componente regolata). 01-02 belong to
// the electricity price structure, the rest to gas.
type RegulatedComponentCode string

const (
	ComponentPCV         RegulatedComponentCode = "01"
	ComponentPPE         RegulatedComponentCode = "02"
	ComponentCCR         RegulatedComponentCode = "03"
	ComponentCPR         RegulatedComponentCode = "04"
	ComponentGRAD        RegulatedComponentCode = "05"
	ComponentQTint       RegulatedComponentCode = "06"
	ComponentQTpsv       RegulatedComponentCode = "07"
	ComponentQVDFixed    RegulatedComponentCode = "09"
	ComponentQVDVariable RegulatedComponentCode = "10"
)

// DispatchingType (TIPO_DISPACCIAMENTO). 99 carries an explicit value.
type DispatchingType string

const (
	DispatchingDisp          DispatchingType = "01"
	DispatchingPD            DispatchingType = "02"
	DispatchingMSD           DispatchingType = "03"
	DispatchingModulation    DispatchingType = "04"
	DispatchingNonArbitrage  DispatchingType = "05"
	DispatchingTerre         DispatchingType = "06"
	DispatchingInterruptible DispatchingType = "07"
	DispatchingCapacity      DispatchingType = "13"
	DispatchingOther         DispatchingType = "99"
)

// ComponentClass says whether a company component is part of the price
// or an opt-in extra (TIPOLOGIA).
type ComponentClass string

const (
	ComponentStandard ComponentClass = "01"
	ComponentOptional ComponentClass = "02"
)

// MacroArea groups company components by what they remunerate (MACROAREA).
type MacroArea string

const (
	AreaFixedCommercialFee  MacroArea = "01"
	AreaEnergyCommercialFee MacroArea = "02"
	AreaEnergyPrice         MacroArea = "04"
	AreaOneTimeFee          MacroArea = "05"
	AreaGreenEnergy         MacroArea = "06"
)

// UnitOfMeasure (UNITA_MISURA) for prices.
type UnitOfMeasure string

const (
	UnitEuroPerYear UnitOfMeasure = "01"
	UnitEuroPerKW   UnitOfMeasure = "02"
	UnitEuroPerKWh  UnitOfMeasure = "03"
	UnitEuroPerSm3  UnitOfMeasure = "04"
	UnitEuro        UnitOfMeasure = "05"
	UnitPercent     UnitOfMeasure = "06"
)

// ConditionType (TIPOLOGIA_CONDIZIONE) of a contractual condition.
// Early-withdrawal charges (05) are only admitted for offers whose
// validity starts on or after the regulatory effective date.
type ConditionType string

const (
	ConditionActivation      ConditionType = "01"
	ConditionDeactivation    ConditionType = "02"
	ConditionWithdrawal      ConditionType = "03"
	ConditionMultiYear       ConditionType = "04"
	ConditionEarlyWithdrawal ConditionType = "05"
	ConditionOther           ConditionType = "99"
)

// DiscountValidity (VALIDITA) of a discount.
type DiscountValidity string

const (
	DiscountAtSubscription DiscountValidity = "01"
	DiscountWithin12Months DiscountValidity = "02"
	DiscountBeyond12Months DiscountValidity = "03"
)

// ApplicationCondition (CONDIZIONE_APPLICAZIONE) gating a discount.
type ApplicationCondition string

const (
	ConditionNone                ApplicationCondition = "00"
	ConditionElectronicBilling   ApplicationCondition = "01"
	ConditionOnlineManagement    ApplicationCondition = "02"
	ConditionEBillingDirectDebit ApplicationCondition = "03"
	ConditionOtherApplication    ApplicationCondition = "99"
)

// DiscountPriceType (TIPOLOGIA of a discount price entry). 04 is the
// discount applied to the regulated price component: its presence
// exempts a variable offer from declaring an energy price index.
type DiscountPriceType string

const (
	DiscountFixed          DiscountPriceType = "01"
	DiscountPower          DiscountPriceType = "02"
	DiscountSale           DiscountPriceType = "03"
	DiscountRegulatedPrice DiscountPriceType = "04"
)

// ProductMacroArea (MACROAREA of an additional product or service).
type ProductMacroArea string

const (
	ProductBoiler          ProductMacroArea = "01"
	ProductMobility        ProductMacroArea = "02"
	ProductSolar           ProductMacroArea = "03"
	ProductAirConditioning ProductMacroArea = "04"
	ProductInsurance       ProductMacroArea = "05"
	ProductOther           ProductMacroArea = "99"
)

// DurationIndeterminate is the sentinel accepted by the duration field
// for offers without a fixed term. It is a valid value, not a missing one.
const DurationIndeterminate = -1

// TimestampLayout is the internal representation of validity timestamps.
// The regulatory serializer converts to the display format on export.
const TimestampLayout = "2006-01-02T15:04:05"
