package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validForm() Form {
	return Form{
		Name:          "Alexei Ward",
		Email:         "alexei@mail.com",
		Phone:         "+1 202-555-0136",
		Address:       "1137 Williams Avenue",
		Zip:           "10001",
		City:          "New York",
		Country:       "United States",
		PaymentMethod: "e-money",
		EMoneyNumber:  "238521993",
		EMoneyPin:     "6891",
	}
}

func TestValidateAcceptsCompleteForm(t *testing.T) {
	assert.Empty(t, Validate(validForm()))
}

func TestValidateRequiredFields(t *testing.T) {
	f := Form{PaymentMethod: "cash"}
	errs := Validate(f)

	for _, field := range []string{"name", "email", "phone", "address", "zip", "city", "country"} {
		assert.Contains(t, errs, field)
	}
}

func TestValidateTrimsWhitespace(t *testing.T) {
	f := validForm()
	f.Name = "   "
	f.City = "\t"

	errs := Validate(f)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "city")
}

func TestValidateEmailShape(t *testing.T) {
	cases := map[string]bool{
		"alexei@mail.com":  true,
		"a@b.co":           true,
		"sans-arobase.com": false,
		"deux@@mail.com":   false,
		"pas-de-tld@mail":  false,
		"espace @mail.com": false,
	}

	for email, ok := range cases {
		f := validForm()
		f.Email = email
		errs := Validate(f)
		if ok {
			assert.NotContains(t, errs, "email", email)
		} else {
			assert.Contains(t, errs, "email", email)
		}
	}
}

func TestValidatePhoneShape(t *testing.T) {
	cases := map[string]bool{
		"+1 202-555-0136": true,
		"(202) 555 0136":  true,
		"0475123456":      true,
		"abc123":          false,
		"+32/475.12.34":   false,
	}

	for phone, ok := range cases {
		f := validForm()
		f.Phone = phone
		errs := Validate(f)
		if ok {
			assert.NotContains(t, errs, "phone", phone)
		} else {
			assert.Contains(t, errs, "phone", phone)
		}
	}
}

func TestValidateEMoneyFieldsRequired(t *testing.T) {
	f := validForm()
	f.EMoneyNumber = ""
	f.EMoneyPin = " "

	errs := Validate(f)
	assert.Contains(t, errs, "eMoneyNumber")
	assert.Contains(t, errs, "eMoneyPin")
}

func TestValidateCashSkipsEMoneyFields(t *testing.T) {
	f := validForm()
	f.PaymentMethod = "cash"
	f.EMoneyNumber = ""
	f.EMoneyPin = ""

	assert.Empty(t, Validate(f))
}

func TestValidateUnknownPaymentMethod(t *testing.T) {
	f := validForm()
	f.PaymentMethod = "bitcoin"

	assert.Contains(t, Validate(f), "paymentMethod")
}
