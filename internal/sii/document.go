// Package sii renders a validated offer into the XML document accepted
// by the SII "Trasmissione Offerte" interface, v4.5 naming.
package sii

import "encoding/xml"

// Document is the root element of a submission file.
type Document struct {
	XMLName        xml.Name        `xml:"Offerta"`
	Identification Identification  `xml:"IdentificativiOfferta"`
	Detail         Detail          `xml:"DettaglioOfferta"`
	Activation     Activation      `xml:"DettaglioOfferta.ModalitaAttivazione"`
	Contacts       Contacts        `xml:"DettaglioOfferta.Contatti"`
	PriceReference *PriceReference `xml:"RiferimentiPrezzoEnergia,omitempty"`
	Validity       Validity        `xml:"ValiditaOfferta"`
	Features       *Features       `xml:"DettaglioOfferta.CaratteristicheOfferta,omitempty"`
	Dual           *Dual           `xml:"OffertaDUAL,omitempty"`
	Payments       []Payment       `xml:"MetodoPagamento"`
	Regulated      *Regulated      `xml:"ComponentiRegolate,omitempty"`
	PriceType      *PriceType      `xml:"TipoPrezzo,omitempty"`
	WeeklyBands    *WeeklyBands    `xml:"FasceOrarieSettimanale,omitempty"`
	Dispatching    []Dispatching   `xml:"Dispacciamento"`
	Components     []Component     `xml:"ComponenteImpresa"`
	Conditions     []Condition     `xml:"CondizioniContrattuali"`
	Zones          *Zones          `xml:"ZoneOfferta,omitempty"`
	Discounts      []Discount      `xml:"Sconto"`
	Products       []Product       `xml:"ProdottiServiziAggiuntivi"`
}

type Identification struct {
	VATNumber string `xml:"PIVA_UTENTE"`
	OfferCode string `xml:"COD_OFFERTA"`
}

type Detail struct {
	MarketType      string   `xml:"TIPO_MERCATO"`
	SingleOffer     string   `xml:"OFFERTA_SINGOLA,omitempty"`
	ClientType      string   `xml:"TIPO_CLIENTE"`
	OfferType       string   `xml:"TIPO_OFFERTA"`
	ActivationTypes []string `xml:"TIPOLOGIA_ATT_CONTR"`
	Name            string   `xml:"NOME_OFFERTA"`
	Description     string   `xml:"DESCRIZIONE"`
	Duration        int      `xml:"DURATA"`
	Guarantees      string   `xml:"GARANZIE"`
}

type Activation struct {
	Methods     []string `xml:"MODALITA"`
	Description string   `xml:"DESCRIZIONE,omitempty"`
}

type Contacts struct {
	Phone         string `xml:"TELEFONO"`
	VendorWebsite string `xml:"URL_SITO_VENDITORE,omitempty"`
	OfferURL      string `xml:"URL_OFFERTA,omitempty"`
}

type PriceReference struct {
	Index       string `xml:"IDX_PREZZO_ENERGIA,omitempty"`
	Description string `xml:"ALTRO,omitempty"`
}

type Validity struct {
	Start string `xml:"DATA_INIZIO"`
	End   string `xml:"DATA_FINE"`
}

type Features struct {
	MinConsumption *int    `xml:"CONSUMO_MIN,omitempty"`
	MaxConsumption *int    `xml:"CONSUMO_MAX,omitempty"`
	MinPower       *string `xml:"POTENZA_MIN,omitempty"`
	MaxPower       *string `xml:"POTENZA_MAX,omitempty"`
}

type Dual struct {
	ElectricityCodes []string `xml:"OFFERTE_CONGIUNTE_EE"`
	GasCodes         []string `xml:"OFFERTE_CONGIUNTE_GAS"`
}

type Payment struct {
	Method      string `xml:"MODALITA_PAGAMENTO"`
	Description string `xml:"DESCRIZIONE,omitempty"`
}

type Regulated struct {
	Codes []string `xml:"CODICE"`
}

type PriceType struct {
	BandConfiguration string `xml:"TIPOLOGIA_FASCE"`
}

type WeeklyBands struct {
	Monday    string `xml:"F_LUNEDI"`
	Tuesday   string `xml:"F_MARTEDI"`
	Wednesday string `xml:"F_MERCOLEDI"`
	Thursday  string `xml:"F_GIOVEDI"`
	Friday    string `xml:"F_VENERDI"`
	Saturday  string `xml:"F_SABATO"`
	Sunday    string `xml:"F_DOMENICA"`
	Holidays  string `xml:"F_FESTIVITA"`
}

type Dispatching struct {
	Type        string  `xml:"TIPO_DISPACCIAMENTO"`
	Value       *string `xml:"VALORE_DISP,omitempty"`
	Name        string  `xml:"NOME"`
	Description string  `xml:"DESCRIZIONE,omitempty"`
}

type Component struct {
	Name        string     `xml:"NOME"`
	Description string     `xml:"DESCRIZIONE"`
	Class       string     `xml:"TIPOLOGIA"`
	MacroArea   string     `xml:"MACROAREA"`
	Intervals   []Interval `xml:"IntervalloPrezzi"`
}

type Interval struct {
	BandCode        string `xml:"FASCIA_COMPONENTE,omitempty"`
	ConsumptionFrom *int   `xml:"CONSUMO_DA,omitempty"`
	ConsumptionTo   *int   `xml:"CONSUMO_A,omitempty"`
	Price           string `xml:"PREZZO"`
	Unit            string `xml:"UNITA_MISURA"`
}

type Condition struct {
	Type        string `xml:"TIPOLOGIA_CONDIZIONE"`
	Other       string `xml:"ALTRO,omitempty"`
	Description string `xml:"DESCRIZIONE"`
	Limiting    string `xml:"LIMITANTE"`
}

type Zones struct {
	Regions        []string `xml:"REGIONE"`
	Provinces      []string `xml:"PROVINCIA"`
	Municipalities []string `xml:"COMUNE"`
}

type Discount struct {
	Name           string          `xml:"NOME"`
	Description    string          `xml:"DESCRIZIONE"`
	ComponentBands []string        `xml:"CODICE_COMPONENTE_FASCIA"`
	Validity       string          `xml:"VALIDITA,omitempty"`
	VATApplicable  string          `xml:"IVA_SCONTO"`
	Period         *DiscountPeriod `xml:"PeriodoValidita,omitempty"`
	Condition      Application     `xml:"Condizione"`
	Prices         []DiscountPrice `xml:"PREZZISconto"`
}

type DiscountPeriod struct {
	DurationMonths *int   `xml:"DURATA,omitempty"`
	ValidUntil     string `xml:"VALIDO_FINO,omitempty"`
}

type Application struct {
	Condition   string `xml:"CONDIZIONE_APPLICAZIONE"`
	Description string `xml:"DESCRIZIONE_CONDIZIONE,omitempty"`
}

type DiscountPrice struct {
	Type  string `xml:"TIPOLOGIA"`
	Unit  string `xml:"UNITA_MISURA"`
	Price string `xml:"PREZZO"`
}

type Product struct {
	Name            string `xml:"NOME"`
	Detail          string `xml:"DETTAGLIO,omitempty"`
	MacroArea       string `xml:"MACROAREA,omitempty"`
	MacroAreaDetail string `xml:"DETTAGLI_MACROAREA,omitempty"`
}
