package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tate-it/energy-toolbox-sub003/internal/offer"
)

func TestDescribe(t *testing.T) {
	s, err := Describe(FieldVATNumber)
	require.NoError(t, err)
	assert.Equal(t, offer.SectionIdentification, s.Section)
	assert.Equal(t, KindString, s.Kind)

	_, err = Describe(FieldID("no.such.field"))
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestRegistryIsWellFormed(t *testing.T) {
	seen := map[FieldID]bool{}
	for _, s := range All() {
		assert.NotEmpty(t, s.ID)
		assert.False(t, seen[s.ID], "duplicate field id %s", s.ID)
		seen[s.ID] = true
		assert.NotNil(t, s.Get, "field %s has no accessor", s.ID)
	}

	// Every shape must belong to a known section, and the per-section
	// views must add up to the whole registry.
	total := 0
	for _, sec := range offer.Sections {
		total += len(BySection(sec))
	}
	assert.Equal(t, len(All()), total)
}

func TestCheckValueStrings(t *testing.T) {
	vat, err := Describe(FieldVATNumber)
	require.NoError(t, err)

	tests := []struct {
		name string
		v    any
		want string
	}{
		{"valid", "12345678901", ""},
		{"too short", "1234567890", ReasonTooShort},
		{"too long", "12345678901234567", ReasonTooLong},
		{"bad characters", "12345-678901", ReasonBadFormat},
		{"wrong type", 42, ReasonTypeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckValue(vat, tt.v))
		})
	}
}

func TestCheckValueDuration(t *testing.T) {
	dur, err := Describe(FieldDurationMonths)
	require.NoError(t, err)

	tests := []struct {
		name string
		v    any
		want string
	}{
		{"valid", 12, ""},
		{"indeterminate sentinel", offer.DurationIndeterminate, ""},
		{"zero", 0, ReasonOutOfRange},
		{"too large", 100, ReasonOutOfRange},
		{"other negative", -2, ReasonOutOfRange},
		{"fractional", 1.5, ReasonTypeMismatch},
		{"wrong type", "12", ReasonTypeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckValue(dur, tt.v))
		})
	}
}

func TestCheckValueNumbers(t *testing.T) {
	power, err := Describe(FieldMaxPower)
	require.NoError(t, err)

	assert.Equal(t, "", CheckValue(power, 4.5))
	assert.Equal(t, "", CheckValue(power, 4.55))
	assert.Equal(t, ReasonTooManyDecimals, CheckValue(power, 4.555))
	assert.Equal(t, ReasonOutOfRange, CheckValue(power, -1.0))
	assert.Equal(t, ReasonOutOfRange, CheckValue(power, 100.0))
}

func TestCheckValueTimestamps(t *testing.T) {
	start, err := Describe(FieldValidityStart)
	require.NoError(t, err)

	assert.Equal(t, "", CheckValue(start, "2026-01-01T00:00:00"))
	assert.Equal(t, ReasonBadTimestamp, CheckValue(start, "01/01/2026"))
	assert.Equal(t, ReasonBadTimestamp, CheckValue(start, "2026-13-01T00:00:00"))
	assert.Equal(t, ReasonTypeMismatch, CheckValue(start, 20260101))
}

func TestCheckValueEnums(t *testing.T) {
	market, err := Describe(FieldMarketType)
	require.NoError(t, err)
	assert.Equal(t, "", CheckValue(market, "01"))
	assert.Equal(t, ReasonNotInEnum, CheckValue(market, "04"))

	channels, err := Describe(FieldActivationChannels)
	require.NoError(t, err)
	assert.Equal(t, "", CheckValue(channels, []string{"01", "99"}))
	assert.Equal(t, ReasonNotInEnum, CheckValue(channels, []string{"01", "42"}))
	assert.Equal(t, ReasonTypeMismatch, CheckValue(channels, "01"))
}

func TestCheckValueBandDays(t *testing.T) {
	monday, err := Describe(FieldBandsMonday)
	require.NoError(t, err)

	assert.Equal(t, "", CheckValue(monday, "1-1"))
	assert.Equal(t, "", CheckValue(monday, "1-1,13-2,20-1"))
	assert.Equal(t, ReasonBadFormat, CheckValue(monday, "1-9"))
	assert.Equal(t, ReasonBadFormat, CheckValue(monday, "monday"))
}

func TestAccessorsDistinguishAbsentFromZero(t *testing.T) {
	o := &offer.Offer{}
	shape, err := Describe(FieldSingleOffer)
	require.NoError(t, err)
	assert.Empty(t, shape.Get(o), "absent section must yield no values")

	f := false
	o.Details = &offer.Details{SingleOffer: &f}
	vals := shape.Get(o)
	require.Len(t, vals, 1)
	assert.Equal(t, false, vals[0].V)
	assert.Equal(t, -1, vals[0].Entry)
}

func TestRepeatedAccessorsRecordEntryIndex(t *testing.T) {
	other := "bank wire"
	o := &offer.Offer{
		PaymentMethods: []offer.PaymentMethod{
			{},
			{OtherDescription: &other},
		},
	}
	shape, err := Describe(FieldPaymentOther)
	require.NoError(t, err)
	vals := shape.Get(o)
	require.Len(t, vals, 1)
	assert.Equal(t, 1, vals[0].Entry)
	assert.Equal(t, "bank wire", vals[0].V)
}
