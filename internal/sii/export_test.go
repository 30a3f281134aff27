package sii

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tate-it/energy-toolbox-sub003/internal/engine"
	"github.com/tate-it/energy-toolbox-sub003/internal/offer"
	"github.com/tate-it/energy-toolbox-sub003/internal/offer/offertest"
)

func newTestEngine(t *testing.T) *engine.Engine {
	t.Helper()
	e, err := engine.New()
	require.NoError(t, err)
	return e
}

func TestExportCleanOffer(t *testing.T) {
	e := newTestEngine(t)
	out, verdict, err := Export(e, offertest.Valid())
	require.NoError(t, err)
	assert.True(t, verdict.Clean())

	xml := string(out)
	assert.Contains(t, xml, "<Offerta>")
	assert.Contains(t, xml, "<PIVA_UTENTE>12345678901</PIVA_UTENTE>")
	assert.Contains(t, xml, "<COD_OFFERTA>SUMMER2026</COD_OFFERTA>")
	assert.Contains(t, xml, "<TIPO_MERCATO>01</TIPO_MERCATO>")
	assert.Contains(t, xml, "<OFFERTA_SINGOLA>SI</OFFERTA_SINGOLA>")
	assert.Contains(t, xml, "<TIPOLOGIA_ATT_CONTR>99</TIPOLOGIA_ATT_CONTR>")
	assert.Contains(t, xml, "<MODALITA_PAGAMENTO>01</MODALITA_PAGAMENTO>")
	assert.Contains(t, xml, "<TIPOLOGIA_FASCE>01</TIPOLOGIA_FASCE>")
	assert.Contains(t, xml, "<LIMITANTE>NO</LIMITANTE>")
	// Validity timestamps switch to the display format on export.
	assert.Contains(t, xml, "<DATA_INIZIO>01/01/2026_00:00:00</DATA_INIZIO>")
	assert.Contains(t, xml, "<DATA_FINE>30/06/2026_23:59:59</DATA_FINE>")
	// Untouched optional sections leave no trace.
	assert.NotContains(t, xml, "OffertaDUAL")
	assert.NotContains(t, xml, "RiferimentiPrezzoEnergia")
	assert.NotContains(t, xml, "FasceOrarieSettimanale")
}

func TestExportDualOffer(t *testing.T) {
	e := newTestEngine(t)
	out, _, err := Export(e, offertest.ValidDual())
	require.NoError(t, err)

	xml := string(out)
	assert.Contains(t, xml, "<OffertaDUAL>")
	assert.Contains(t, xml, "<OFFERTE_CONGIUNTE_EE>ELEC01</OFFERTE_CONGIUNTE_EE>")
	assert.Contains(t, xml, "<OFFERTE_CONGIUNTE_GAS>GAS01</OFFERTE_CONGIUNTE_GAS>")
	assert.NotContains(t, xml, "OFFERTA_SINGOLA")
}

func TestExportRefusesDirtyRecord(t *testing.T) {
	e := newTestEngine(t)
	o := offertest.Valid()
	o.Contacts = nil

	out, verdict, err := Export(e, o)
	assert.ErrorIs(t, err, ErrNotExportable)
	assert.Nil(t, out)
	assert.False(t, verdict.Clean())
}

func TestExportedDocumentIsDeterministic(t *testing.T) {
	e := newTestEngine(t)
	first, _, err := Export(e, offertest.Valid())
	require.NoError(t, err)
	second, _, err := Export(e, offertest.Valid())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFileName(t *testing.T) {
	o := offertest.Valid()

	assert.Equal(t, "12345678901_INSERIMENTO_SUMMER_PROMO.XML", FileName(o, "Summer Promo"))
	assert.Equal(t, "12345678901_INSERIMENTO_SUMMER2026.XML", FileName(o, ""))
	// Characters the SII cannot take in a file name are dropped.
	assert.Equal(t, "12345678901_INSERIMENTO_SUMMER_2026.XML", FileName(o, "summer è 2026!"))
}

func TestBuildCollapsesAbsentSections(t *testing.T) {
	doc := Build(&offer.Offer{})
	assert.Nil(t, doc.Dual)
	assert.Nil(t, doc.PriceReference)
	assert.Nil(t, doc.WeeklyBands)
	assert.Nil(t, doc.Zones)
	assert.Empty(t, doc.Payments)

	assert.NotPanics(t, func() { Build(nil) })
}

func TestExportTimestampPassthrough(t *testing.T) {
	// Unparseable values survive untouched; the engine refuses them
	// before export anyway.
	ts := "garbage"
	assert.Equal(t, "garbage", exportTimestamp(&ts))
	assert.Equal(t, "", exportTimestamp(nil))
}

func TestSanitizeFileDescription(t *testing.T) {
	assert.Equal(t, "ABC_123", sanitizeFileDescription("abc 123"))
	assert.Equal(t, "", sanitizeFileDescription("!!!"))
	assert.False(t, strings.Contains(sanitizeFileDescription("a-b_c d"), "-"))
}
