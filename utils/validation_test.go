package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func contractorFields(name, phone, email string) []Field {
	return []Field{
		{Label: "Nazwa", Value: name, Kind: FieldText},
		{Label: "Telefon", Value: phone, Kind: FieldPhone},
		{Label: "Email", Value: email, Kind: FieldEmail},
	}
}

func TestValidateFields_CleanForm(t *testing.T) {
	require.Empty(t, ValidateFields(contractorFields("Acme Sp. z o.o.", "+48 123 456 789", "biuro@acme.pl")))
}

func TestValidateFields_CollectsAllMissing(t *testing.T) {
	msg := ValidateFields(contractorFields("", "", "biuro@acme.pl"))
	require.Equal(t, "Brakujace pola: Nazwa, Telefon", msg)
}

func TestValidateFields_WhitespaceCountsAsMissing(t *testing.T) {
	msg := ValidateFields(contractorFields("   ", "+48 123 456 789", "biuro@acme.pl"))
	require.Equal(t, "Brakujace pola: Nazwa", msg)
}

func TestValidateFields_MissingTrumpsFormat(t *testing.T) {
	// A half-empty form reports only the missing fields; format problems in
	// the filled ones wait until everything is present.
	msg := ValidateFields(contractorFields("Acme", "", "zly-adres"))
	require.Equal(t, "Brakujace pola: Telefon", msg)
}

func TestValidateFields_FormatErrors(t *testing.T) {
	msg := ValidateFields(contractorFields("Acme", "abc", "zly-adres"))
	require.Equal(t, "Nieprawidlowy format: Telefon, Email", msg)

	msg = ValidateFields(contractorFields("Acme", "+48 123 456 789", "zly adres@x.pl"))
	require.Equal(t, "Nieprawidlowy format: Email", msg)
}

func TestValidEmail(t *testing.T) {
	require.True(t, ValidEmail("jan.kowalski@firma.pl"))
	require.True(t, ValidEmail("a@b.co"))
	require.False(t, ValidEmail("bez-malpy.pl"))
	require.False(t, ValidEmail("dwa slowa@firma.pl"))
	require.False(t, ValidEmail("brak@kropki"))
}

func TestValidPhone(t *testing.T) {
	require.True(t, ValidPhone("123456"))
	require.True(t, ValidPhone("+48 (22) 123-45-67"))
	require.False(t, ValidPhone("12345"))
	require.False(t, ValidPhone("telefon"))
}
