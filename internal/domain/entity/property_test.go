package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{input: "45000", want: 45000},
		{input: "₹45,000", want: 45000},
		{input: "₹45,000/month", want: 45000},
		{input: "1.2 Cr", want: 12_000_000},
		{input: "85 Lakh", want: 8_500_000},
		{input: "30K", want: 30_000},
		{input: "", want: 0},
		{input: "price on request", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePrice(tt.input))
		})
	}
}

func TestParseAmenities(t *testing.T) {
	assert.Nil(t, ParseAmenities(""))
	assert.Nil(t, ParseAmenities("   "))
	assert.Equal(t, []string{"Gym", "Pool"}, ParseAmenities("Gym, Pool"))
	assert.Equal(t, []string{"Gym"}, ParseAmenities("Gym,,  ,"))
}

func TestHasAmenity(t *testing.T) {
	property := &Property{Amenities: []string{"Swimming Pool", "Covered Parking"}}

	assert.True(t, property.HasAmenity("swimming pool"))
	assert.True(t, property.HasAmenity("parking"), "partial tag matches")
	assert.False(t, property.HasAmenity("gym"))
}

func TestAlert_EnabledChannels_StableOrder(t *testing.T) {
	alert := &Alert{EmailEnabled: true, SMSEnabled: false, WhatsAppEnabled: true}

	assert.Equal(t, []Channel{ChannelEmail, ChannelWhatsApp}, alert.EnabledChannels())

	none := &Alert{}
	assert.Empty(t, none.EnabledChannels())
}
