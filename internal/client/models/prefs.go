package models

import (
	"strings"

	"github.com/ifti227i/RideShareX/internal/common"
)

// DefaultLocationIcon is used when a saved location has no icon.
const DefaultLocationIcon = "📍"

type SavedLocation struct {
	ID      ID     `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Icon    string `json:"icon"`
}

func (l SavedLocation) ItemID() ID { return l.ID }

func (l SavedLocation) WithID(id ID) SavedLocation {
	l.ID = id
	return l
}

func (l SavedLocation) Prepare() (SavedLocation, error) {
	l.Name = strings.TrimSpace(l.Name)
	l.Address = strings.TrimSpace(l.Address)
	if l.Name == "" {
		return l, required("name")
	}
	if l.Address == "" {
		return l, required("address")
	}
	if strings.TrimSpace(l.Icon) == "" {
		l.Icon = DefaultLocationIcon
	}
	return l, nil
}

type PaymentType string

const (
	PaymentCard   PaymentType = "card"
	PaymentMobile PaymentType = "mobile"
	PaymentCash   PaymentType = "cash"
)

// NoExpiry marks payment methods without an expiry date.
const NoExpiry = "N/A"

func (t PaymentType) Valid() bool {
	switch t {
	case PaymentCard, PaymentMobile, PaymentCash:
		return true
	}
	return false
}

type PaymentMethod struct {
	ID     ID          `json:"id"`
	Type   PaymentType `json:"type"`
	Name   string      `json:"name"`
	Number string      `json:"number"`
	Expiry string      `json:"expiry"`
}

func (p PaymentMethod) ItemID() ID { return p.ID }

func (p PaymentMethod) WithID(id ID) PaymentMethod {
	p.ID = id
	return p
}

func (p PaymentMethod) Prepare() (PaymentMethod, error) {
	if p.Type == "" {
		p.Type = PaymentCard
	}
	if !p.Type.Valid() {
		return p, common.NewValidationError("type", common.RuleOneOf, "type must be card, mobile or cash")
	}
	p.Name = strings.TrimSpace(p.Name)
	p.Number = strings.TrimSpace(p.Number)
	p.Expiry = strings.TrimSpace(p.Expiry)
	if p.Name == "" {
		return p, required("name")
	}
	if p.Number == "" {
		return p, required("number")
	}
	if p.Expiry == "" {
		p.Expiry = NoExpiry
	}
	return p, nil
}

type RideRecord struct {
	ID     ID     `json:"id"`
	From   string `json:"from"`
	To     string `json:"to"`
	Date   string `json:"date"`
	Price  string `json:"price"`
	Rating *int   `json:"rating,omitempty"`
}

func (r RideRecord) ItemID() ID { return r.ID }

func (r RideRecord) WithID(id ID) RideRecord {
	r.ID = id
	return r
}

func (r RideRecord) Prepare() (RideRecord, error) {
	r.From = strings.TrimSpace(r.From)
	r.To = strings.TrimSpace(r.To)
	r.Date = strings.TrimSpace(r.Date)
	r.Price = strings.TrimSpace(r.Price)
	switch {
	case r.From == "":
		return r, required("from")
	case r.To == "":
		return r, required("to")
	case r.Date == "":
		return r, required("date")
	case r.Price == "":
		return r, required("price")
	}
	if r.Rating != nil && (*r.Rating < 1 || *r.Rating > 5) {
		return r, common.NewValidationError("rating", common.RuleRange, "rating must be between 1 and 5")
	}
	return r, nil
}

func required(field string) error {
	return common.NewValidationError(field, common.RuleRequired, field+" is required")
}
