// Package birthdata bridges stored birth profiles and the almanac: it
// prefills birth-chart answers from a profile, reads a profile back out of
// submitted answers, and resolves the full symbolic reading.
package birthdata

import (
	"time"

	"github.com/mirit/psyche/internal/almanac"
	"github.com/mirit/psyche/internal/catalog"
)

// Profile is a user's stored birth data. Time may be empty or an unknown
// sentinel; the resolvers then skip time-dependent placements rather than
// assuming midnight.
type Profile struct {
	Date  string `json:"date"`
	Time  string `json:"time,omitempty"`
	Place string `json:"place,omitempty"`
}

// PrefillAnswers converts a profile into the answers the birth-chart
// assessment expects, so a returning user skips re-entry.
func PrefillAnswers(p Profile) []catalog.TextAnswer {
	t := p.Time
	if t == "" {
		t = "unknown"
	}
	return []catalog.TextAnswer{
		{QuestionID: catalog.BirthDateQuestionID, Text: p.Date},
		{QuestionID: catalog.BirthTimeQuestionID, Text: t},
		{QuestionID: catalog.BirthPlaceQuestionID, Text: p.Place},
	}
}

// FromAnswers extracts a profile from submitted birth-chart answers.
func FromAnswers(answers []catalog.TextAnswer) Profile {
	var p Profile
	for _, a := range answers {
		switch a.QuestionID {
		case catalog.BirthDateQuestionID:
			p.Date = a.Text
		case catalog.BirthTimeQuestionID:
			p.Time = a.Text
		case catalog.BirthPlaceQuestionID:
			p.Place = a.Text
		}
	}
	return p
}

// Reading is the full symbolic readout for one birth profile.
type Reading struct {
	Solar      almanac.SolarChart       `json:"solar"`
	Tzolkin    almanac.TzolkinSignature `json:"tzolkin"`
	Sexagenary almanac.SexagenaryYear   `json:"sexagenary"`
	LifePath   int                      `json:"life_path"`
	EnergyType string                   `json:"energy_type"`
}

// Resolve computes the complete reading for a profile. An unparseable
// date falls back to each resolver's documented default: the solar
// resolver maps the zero date to Aries, and the sexagenary resolver
// receives today's date so the lunar year falls back to the current
// year instead of year zero.
func Resolve(p Profile) Reading {
	date, ok := almanac.ParseDate(p.Date)

	sexDate := date
	if !ok {
		now := time.Now()
		sexDate = almanac.Date{Year: now.Year(), Month: int(now.Month()), Day: now.Day()}
	}

	var bt *almanac.BirthTime
	if t, ok := almanac.ParseBirthTime(p.Time); ok {
		bt = &t
	}

	return Reading{
		Solar:      almanac.Chart(date, bt),
		Tzolkin:    almanac.Tzolkin(date),
		Sexagenary: almanac.Sexagenary(sexDate),
		LifePath:   almanac.LifePath(date),
		EnergyType: almanac.EnergyType(date, bt),
	}
}
