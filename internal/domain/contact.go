package domain

import "time"

type ContactKind string

const (
	ContactKindIndividual   ContactKind = "individual"
	ContactKindOrganization ContactKind = "organization"
)

// Contact is the base record shared by individuals and organizations.
// BillingContactID designates who pays on the contact's behalf; when nil the
// contact pays for itself.
type Contact struct {
	ID               uint        `json:"id"`
	Name             string      `json:"name"`
	Kind             ContactKind `json:"kind"`
	BillingContactID *uint       `json:"billing_contact_id,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// PayerID resolves the billing-responsible contact.
func (c Contact) PayerID() uint {
	if c.BillingContactID != nil && *c.BillingContactID != 0 {
		return *c.BillingContactID
	}
	return c.ID
}

// ContactVariant is the most specific concrete shape of a contact row,
// resolved per row rather than by runtime type inspection.
type ContactVariant interface {
	Base() Contact
}

type Individual struct {
	Contact
}

func (i Individual) Base() Contact { return i.Contact }

type Organization struct {
	Contact
}

func (o Organization) Base() Contact { return o.Contact }

// ResolveMostSpecific tags the contact with its concrete variant.
func (c Contact) ResolveMostSpecific() ContactVariant {
	if c.Kind == ContactKindOrganization {
		return Organization{Contact: c}
	}
	return Individual{Contact: c}
}
