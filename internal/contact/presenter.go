package contact

import (
	"github.com/nyaruka/phonenumbers"
)

// EmailDetail is the structured presentation of a contact email address.
type EmailDetail struct {
	Address string `json:"address"`
	URI     string `json:"uri"`
}

// PhoneDetail is the structured presentation of a contact phone number.
type PhoneDetail struct {
	International string `json:"international"`
	National      string `json:"national"`
	URI           string `json:"uri"`
}

// View is the read-path representation of a contact. Email and Phone are
// either plain strings or their structured detail forms, depending on
// whether the stored phone number still parses.
type View struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Lastname string  `json:"lastname"`
	Email    any     `json:"email"`
	Phone    any     `json:"phone"`
	Website  *string `json:"website"`
	Address  *string `json:"address"`
	Company  *string `json:"company"`
}

// present applies the read-path transform to a stored record. Validation
// happened at write time, but previously stored numbers may no longer
// parse; those records keep their plain string fields rather than failing.
func present(rec Record) View {
	v := View{
		ID:       rec.ID,
		Name:     rec.Name,
		Lastname: rec.Lastname,
		Email:    rec.Email,
		Phone:    rec.Phone,
		Website:  rec.Website,
		Address:  rec.Address,
		Company:  rec.Company,
	}

	num, err := phonenumbers.Parse(rec.Phone, "")
	if err != nil {
		return v
	}

	v.Email = EmailDetail{
		Address: rec.Email,
		URI:     "mailto:" + rec.Email,
	}
	v.Phone = PhoneDetail{
		International: phonenumbers.Format(num, phonenumbers.INTERNATIONAL),
		National:      phonenumbers.Format(num, phonenumbers.NATIONAL),
		URI:           phonenumbers.Format(num, phonenumbers.RFC3966),
	}
	return v
}
