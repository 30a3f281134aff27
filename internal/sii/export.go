package sii

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tate-it/energy-toolbox-sub003/internal/engine"
	"github.com/tate-it/energy-toolbox-sub003/internal/offer"
)

// ErrNotExportable is returned when the record still carries missing or
// invalid fields. Export never papers over a dirty verdict.
var ErrNotExportable = errors.New("offer not exportable")

// exportTimestampLayout is the display format the SII expects for the
// validity window.
const exportTimestampLayout = "02/01/2006_15:04:05"

// Export validates the full record and, only when the verdict is clean,
// marshals it to the submission XML. The returned verdict lets callers
// show what blocked a refused export.
func Export(e *engine.Engine, o *offer.Offer) ([]byte, engine.Verdict, error) {
	verdict := e.Validate(o, engine.FullRecord())
	if !verdict.Clean() {
		return nil, verdict, ErrNotExportable
	}
	doc := Build(o)
	out, err := marshal(doc)
	if err != nil {
		return nil, verdict, fmt.Errorf("marshal offer %s: %w", safeOfferCode(o), err)
	}
	return out, verdict, nil
}

// FileName derives the submission file name, "<PIVA>_INSERIMENTO_<DESC>.XML".
// The free-form description is uppercased and squeezed to the characters
// the SII accepts in file names.
func FileName(o *offer.Offer, description string) string {
	piva := ""
	if o != nil && o.Identification != nil && o.Identification.VATNumber != nil {
		piva = *o.Identification.VATNumber
	}
	desc := sanitizeFileDescription(description)
	if desc == "" {
		desc = safeOfferCode(o)
	}
	return fmt.Sprintf("%s_INSERIMENTO_%s.XML", piva, desc)
}

func sanitizeFileDescription(s string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToUpper(s) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			if pending && b.Len() > 0 {
				b.WriteByte('_')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	return b.String()
}

// Build maps the in-memory record onto the wire document. It assumes a
// clean verdict: absent optional parts collapse to omitted elements,
// absent required parts to empty ones.
func Build(o *offer.Offer) *Document {
	if o == nil {
		o = &offer.Offer{}
	}
	doc := &Document{
		Identification: buildIdentification(o.Identification),
		Detail:         buildDetail(o.Details),
		Activation:     buildActivation(o.ActivationMethods),
		Contacts:       buildContacts(o.Contacts),
		PriceReference: buildPriceReference(o.PriceReference),
		Validity:       buildValidity(o.Validity),
		Features:       buildFeatures(o.Characteristics),
		Dual:           buildDual(o.DualOffer),
		Regulated:      buildRegulated(o.RegulatedComponents),
		PriceType:      buildPriceType(o.PriceType),
		WeeklyBands:    buildWeeklyBands(o.WeeklyBands),
		Zones:          buildZones(o.Zones),
	}
	for _, m := range o.PaymentMethods {
		doc.Payments = append(doc.Payments, Payment{
			Method:      enumStr(m.Method),
			Description: str(m.OtherDescription),
		})
	}
	for _, d := range o.Dispatching {
		doc.Dispatching = append(doc.Dispatching, Dispatching{
			Type:        enumStr(d.Type),
			Value:       numPtr(d.Value),
			Name:        str(d.Name),
			Description: str(d.Description),
		})
	}
	for _, c := range o.CompanyComponents {
		doc.Components = append(doc.Components, buildComponent(c))
	}
	for _, c := range o.ContractualConditions {
		doc.Conditions = append(doc.Conditions, Condition{
			Type:        enumStr(c.Type),
			Other:       str(c.OtherDescription),
			Description: str(c.Description),
			Limiting:    boolCode(c.IsLimiting),
		})
	}
	for _, d := range o.Discounts {
		doc.Discounts = append(doc.Discounts, buildDiscount(d))
	}
	for _, p := range o.AdditionalProducts {
		doc.Products = append(doc.Products, Product{
			Name:            str(p.Name),
			Detail:          str(p.Detail),
			MacroArea:       enumStr(p.MacroArea),
			MacroAreaDetail: str(p.MacroAreaDetail),
		})
	}
	return doc
}

func buildIdentification(id *offer.Identification) Identification {
	if id == nil {
		return Identification{}
	}
	return Identification{
		VATNumber: str(id.VATNumber),
		OfferCode: str(id.OfferCode),
	}
}

func buildDetail(d *offer.Details) Detail {
	if d == nil {
		return Detail{}
	}
	out := Detail{
		MarketType:  enumStr(d.MarketType),
		ClientType:  enumStr(d.ClientType),
		OfferType:   enumStr(d.OfferType),
		Name:        str(d.Name),
		Description: str(d.Description),
		Guarantees:  str(d.Guarantees),
	}
	if d.SingleOffer != nil {
		out.SingleOffer = siNo(*d.SingleOffer)
	}
	if d.DurationMonths != nil {
		out.Duration = *d.DurationMonths
	}
	for _, t := range d.ActivationTypes {
		out.ActivationTypes = append(out.ActivationTypes, string(t))
	}
	return out
}

func buildActivation(a *offer.ActivationMethods) Activation {
	if a == nil {
		return Activation{}
	}
	out := Activation{Description: str(a.OtherDescription)}
	for _, m := range a.Methods {
		out.Methods = append(out.Methods, string(m))
	}
	return out
}

func buildContacts(c *offer.Contacts) Contacts {
	if c == nil {
		return Contacts{}
	}
	return Contacts{
		Phone:         str(c.Phone),
		VendorWebsite: str(c.VendorWebsite),
		OfferURL:      str(c.OfferURL),
	}
}

func buildPriceReference(p *offer.PriceReference) *PriceReference {
	if p == nil {
		return nil
	}
	return &PriceReference{
		Index:       enumStr(p.Index),
		Description: str(p.OtherDescription),
	}
}

func buildValidity(v *offer.Validity) Validity {
	if v == nil {
		return Validity{}
	}
	return Validity{
		Start: exportTimestamp(v.StartTimestamp),
		End:   exportTimestamp(v.EndTimestamp),
	}
}

func buildFeatures(c *offer.Characteristics) *Features {
	if c == nil {
		return nil
	}
	return &Features{
		MinConsumption: c.MinConsumption,
		MaxConsumption: c.MaxConsumption,
		MinPower:       numPtr(c.MinPower),
		MaxPower:       numPtr(c.MaxPower),
	}
}

func buildDual(d *offer.DualOffer) *Dual {
	if d == nil {
		return nil
	}
	return &Dual{
		ElectricityCodes: d.ElectricityCodes,
		GasCodes:         d.GasCodes,
	}
}

func buildRegulated(r *offer.RegulatedComponents) *Regulated {
	if r == nil || len(r.Codes) == 0 {
		return nil
	}
	out := &Regulated{}
	for _, c := range r.Codes {
		out.Codes = append(out.Codes, string(c))
	}
	return out
}

func buildPriceType(p *offer.PriceType) *PriceType {
	if p == nil || p.BandConfiguration == nil {
		return nil
	}
	return &PriceType{BandConfiguration: string(*p.BandConfiguration)}
}

func buildWeeklyBands(w *offer.WeeklyBands) *WeeklyBands {
	if w == nil {
		return nil
	}
	return &WeeklyBands{
		Monday:    str(w.Monday),
		Tuesday:   str(w.Tuesday),
		Wednesday: str(w.Wednesday),
		Thursday:  str(w.Thursday),
		Friday:    str(w.Friday),
		Saturday:  str(w.Saturday),
		Sunday:    str(w.Sunday),
		Holidays:  str(w.Holidays),
	}
}

func buildComponent(c offer.CompanyComponent) Component {
	out := Component{
		Name:        str(c.Name),
		Description: str(c.Description),
		Class:       enumStr(c.Class),
		MacroArea:   enumStr(c.MacroArea),
	}
	for _, iv := range c.Intervals {
		out.Intervals = append(out.Intervals, Interval{
			BandCode:        str(iv.BandCode),
			ConsumptionFrom: iv.ConsumptionFrom,
			ConsumptionTo:   iv.ConsumptionTo,
			Price:           num(iv.Price),
			Unit:            enumStr(iv.Unit),
		})
	}
	return out
}

func buildDiscount(d offer.Discount) Discount {
	out := Discount{
		Name:           str(d.Name),
		Description:    str(d.Description),
		ComponentBands: d.ComponentBandCodes,
		Validity:       enumStr(d.Validity),
		VATApplicable:  boolCode(d.VATApplicable),
		Condition: Application{
			Condition:   enumStr(d.ApplicationCondition),
			Description: str(d.ConditionDescription),
		},
	}
	if p := d.ValidityPeriod; p != nil {
		out.Period = &DiscountPeriod{
			DurationMonths: p.DurationMonths,
			ValidUntil:     str(p.ValidUntil),
		}
	}
	for _, p := range d.Prices {
		out.Prices = append(out.Prices, DiscountPrice{
			Type:  enumStr(p.Type),
			Unit:  enumStr(p.Unit),
			Price: num(p.Price),
		})
	}
	return out
}

func buildZones(z *offer.Zones) *Zones {
	if z == nil {
		return nil
	}
	if len(z.Regions) == 0 && len(z.Provinces) == 0 && len(z.Municipalities) == 0 {
		return nil
	}
	return &Zones{
		Regions:        z.Regions,
		Provinces:      z.Provinces,
		Municipalities: z.Municipalities,
	}
}

func marshal(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// exportTimestamp converts the internal ISO timestamp into the SII
// display format. A clean verdict guarantees parseability; an unparsable
// value is passed through untouched rather than dropped.
func exportTimestamp(ts *string) string {
	if ts == nil {
		return ""
	}
	t, err := time.Parse(offer.TimestampLayout, *ts)
	if err != nil {
		return *ts
	}
	return t.Format(exportTimestampLayout)
}

func safeOfferCode(o *offer.Offer) string {
	if o != nil && o.Identification != nil && o.Identification.OfferCode != nil {
		return *o.Identification.OfferCode
	}
	return "OFFERTA"
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func enumStr[T ~string](v *T) string {
	if v == nil {
		return ""
	}
	return string(*v)
}

func num(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

func numPtr(f *float64) *string {
	if f == nil {
		return nil
	}
	s := strconv.FormatFloat(*f, 'f', -1, 64)
	return &s
}

// siNo renders a boolean as the SI/NO token the schema uses.
func siNo(b bool) string {
	if b {
		return "SI"
	}
	return "NO"
}

func boolCode(b *bool) string {
	if b == nil {
		return ""
	}
	return siNo(*b)
}
