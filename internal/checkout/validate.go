package checkout

import (
	"regexp"
	"strings"

	"audiophile_back_end/internal/models"
)

// Form est le formulaire de checkout tel que soumis par le storefront
type Form struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Zip           string `json:"zip"`
	City          string `json:"city"`
	Country       string `json:"country"`
	PaymentMethod string `json:"paymentMethod"`
	EMoneyNumber  string `json:"eMoneyNumber"`
	EMoneyPin     string `json:"eMoneyPin"`
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[\d\s\-()]+$`)
)

// Validate est une fonction pure, sans effet de bord : elle retourne une map
// champ → message d'erreur, vide si le formulaire est valide. Les messages
// sont en anglais car affichés tels quels par le storefront.
func Validate(f Form) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(f.Name) == "" {
		errs["name"] = "Name is required"
	}

	if strings.TrimSpace(f.Email) == "" {
		errs["email"] = "Email is required"
	} else if !emailPattern.MatchString(f.Email) {
		errs["email"] = "Invalid email format"
	}

	if strings.TrimSpace(f.Phone) == "" {
		errs["phone"] = "Phone is required"
	} else if !phonePattern.MatchString(f.Phone) {
		errs["phone"] = "Invalid phone format"
	}

	if strings.TrimSpace(f.Address) == "" {
		errs["address"] = "Address is required"
	}
	if strings.TrimSpace(f.Zip) == "" {
		errs["zip"] = "ZIP code is required"
	}
	if strings.TrimSpace(f.City) == "" {
		errs["city"] = "City is required"
	}
	if strings.TrimSpace(f.Country) == "" {
		errs["country"] = "Country is required"
	}

	switch f.PaymentMethod {
	case models.PaymentEMoney:
		// Pas de validation de longueur ni de checksum, juste la présence
		if strings.TrimSpace(f.EMoneyNumber) == "" {
			errs["eMoneyNumber"] = "e-Money number is required"
		}
		if strings.TrimSpace(f.EMoneyPin) == "" {
			errs["eMoneyPin"] = "e-Money PIN is required"
		}
	case models.PaymentCash:
		// Rien de plus à vérifier
	default:
		errs["paymentMethod"] = "Payment method must be e-money or cash"
	}

	return errs
}
