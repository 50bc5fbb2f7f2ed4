package checkout

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	cardNumberPattern = regexp.MustCompile(`^\d{16}$`)
	expiryPattern     = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvPattern        = regexp.MustCompile(`^\d{3,4}$`)
)

// validateSubmit checks every field and collects every failure; it never
// stops at the first one. No network call happens while any message is
// set.
func validateSubmit(validate *validator.Validate, req SubmitRequest) FieldErrors {
	var errs FieldErrors

	b := req.Billing
	if strings.TrimSpace(b.FirstName) == "" {
		errs.FirstName = "First name is required"
	}
	if strings.TrimSpace(b.LastName) == "" {
		errs.LastName = "Last name is required"
	}
	if strings.TrimSpace(b.Email) == "" {
		errs.Email = "Email is required"
	} else if validate.Var(b.Email, "email") != nil {
		errs.Email = "Invalid email format"
	}
	if strings.TrimSpace(b.Phone) == "" {
		errs.Phone = "Phone number is required"
	}
	if strings.TrimSpace(b.Address) == "" {
		errs.Address = "Address is required"
	}
	if strings.TrimSpace(b.City) == "" {
		errs.City = "City is required"
	}
	if strings.TrimSpace(b.ZipCode) == "" {
		errs.ZipCode = "ZIP code is required"
	}
	if strings.TrimSpace(b.Country) == "" {
		errs.Country = "Country is required"
	}

	method, known := paymentMethodLabels[req.PaymentMethod]
	if !known {
		errs.PaymentMethod = "Unknown payment method"
	}

	if known && method == paymentMethodCardLabel {
		c := req.Card
		if strings.TrimSpace(c.CardNumber) == "" {
			errs.CardNumber = "Card number is required"
		} else if !cardNumberPattern.MatchString(strings.ReplaceAll(c.CardNumber, " ", "")) {
			errs.CardNumber = "Invalid card number"
		}
		if strings.TrimSpace(c.CardName) == "" {
			errs.CardName = "Cardholder name is required"
		}
		if strings.TrimSpace(c.ExpiryDate) == "" {
			errs.ExpiryDate = "Expiry date is required"
		} else if !expiryPattern.MatchString(c.ExpiryDate) {
			errs.ExpiryDate = "Invalid format (MM/YY)"
		}
		if strings.TrimSpace(c.CVV) == "" {
			errs.CVV = "CVV is required"
		} else if !cvvPattern.MatchString(c.CVV) {
			errs.CVV = "Invalid CVV"
		}
	}

	return errs
}
