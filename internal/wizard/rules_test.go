package wizard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateField_RequiredEmpty(t *testing.T) {
	for _, field := range []string{FieldTitle, FieldProblem, FieldSolution, FieldStarterName, FieldAadharNumber} {
		res := ValidateField(field, "")
		assert.False(t, res.Valid, field)
		assert.Equal(t, RequiredMessage, res.Error, field)
	}

	// Whitespace-only counts as empty.
	res := ValidateField(FieldTitle, "   \t ")
	assert.False(t, res.Valid)
	assert.Equal(t, RequiredMessage, res.Error)
}

func TestValidateField_OptionalEmptyIsValid(t *testing.T) {
	for _, field := range []string{FieldVideoURL, FieldPANNumber, FieldVoterNumber, FieldStarterComment, FieldRecipientEmail} {
		res := ValidateField(field, "")
		assert.True(t, res.Valid, field)
		assert.Empty(t, res.Error, field)
	}
}

func TestValidateField_TitleLength(t *testing.T) {
	res := ValidateField(FieldTitle, "Short")
	assert.False(t, res.Valid)
	assert.NotEqual(t, RequiredMessage, res.Error)

	res = ValidateField(FieldTitle, "Save the city lake from encroachment")
	assert.True(t, res.Valid)

	res = ValidateField(FieldTitle, strings.Repeat("a", 151))
	assert.False(t, res.Valid)

	res = ValidateField(FieldTitle, strings.Repeat("a", 150))
	assert.True(t, res.Valid)
}

func TestValidateField_Aadhar(t *testing.T) {
	cases := []struct {
		value string
		valid bool
	}{
		{"234567890123", true},
		{"2345 6789 0123", true}, // formatting stripped
		{"2345-6789-0123", true}, // formatting stripped
		{"123456789012", false},  // starts with 1
		{"034567890123", false},  // starts with 0
		{"23456789012", false},   // 11 digits
		{"2345678901234", false}, // 13 digits
		{"abcdefghijkl", false},  // no digits at all
	}
	for _, tc := range cases {
		res := ValidateField(FieldAadharNumber, tc.value)
		assert.Equal(t, tc.valid, res.Valid, tc.value)
	}
}

func TestValidateField_PANUppercased(t *testing.T) {
	res := ValidateField(FieldPANNumber, "abcde1234f")
	assert.True(t, res.Valid)

	res = ValidateField(FieldPANNumber, "ABCDE1234F")
	assert.True(t, res.Valid)

	res = ValidateField(FieldPANNumber, "ABCDE12345")
	assert.False(t, res.Valid)

	res = ValidateField(FieldPANNumber, "ABCD1234F")
	assert.False(t, res.Valid)
}

func TestValidateField_VoterUppercased(t *testing.T) {
	assert.True(t, ValidateField(FieldVoterNumber, "abc1234567").Valid)
	assert.True(t, ValidateField(FieldVoterNumber, "ABC1234567").Valid)
	assert.False(t, ValidateField(FieldVoterNumber, "AB1234567").Valid)
	assert.False(t, ValidateField(FieldVoterNumber, "ABCD123456").Valid)
}

func TestValidateField_Mobile(t *testing.T) {
	assert.True(t, ValidateField(FieldStarterMobile, "9876543210").Valid)
	assert.True(t, ValidateField(FieldStarterMobile, "6000000000").Valid)
	assert.False(t, ValidateField(FieldStarterMobile, "5876543210").Valid)
	assert.False(t, ValidateField(FieldStarterMobile, "987654321").Valid)
}

func TestValidateField_CategoryName(t *testing.T) {
	assert.False(t, ValidateField(FieldCategoryName, "ab").Valid)
	assert.True(t, ValidateField(FieldCategoryName, "abc").Valid)
	assert.True(t, ValidateField(FieldCategoryName, strings.Repeat("a", 15)).Valid)
	assert.False(t, ValidateField(FieldCategoryName, strings.Repeat("a", 16)).Valid)

	res := ValidateField(FieldCategoryName, "")
	assert.False(t, res.Valid)
	assert.Equal(t, RequiredMessage, res.Error)
}

func TestValidateField_UnregisteredFieldExempt(t *testing.T) {
	res := ValidateField("someUnknownField", "")
	assert.True(t, res.Valid)
}

func TestValidateField_VideoURL(t *testing.T) {
	assert.True(t, ValidateField(FieldVideoURL, "https://youtube.com/watch?v=xyz").Valid)
	assert.True(t, ValidateField(FieldVideoURL, "http://example.com/v").Valid)
	assert.False(t, ValidateField(FieldVideoURL, "youtube.com/watch").Valid)
}

func TestNormalizeValue(t *testing.T) {
	assert.Equal(t, "ABCDE1234F", NormalizeValue(FieldPANNumber, "abcde1234f"))
	assert.Equal(t, "ABC1234567", NormalizeValue(FieldVoterNumber, "abc1234567"))
	assert.Equal(t, "mixed Case", NormalizeValue(FieldTitle, "mixed Case"))
}

func TestStripToDigits(t *testing.T) {
	assert.Equal(t, "234567890123", StripToDigits("2345 6789 0123"))
	assert.Equal(t, "", StripToDigits("abc"))
}
