package prefs

import (
	"github.com/ifti227i/RideShareX/internal/client/models"
	"github.com/ifti227i/RideShareX/internal/client/store"
)

// Prefs groups the preference stores of one profile.
type Prefs struct {
	Locations *List[models.SavedLocation]
	Payments  *List[models.PaymentMethod]
	Rides     *List[models.RideRecord]
	Theme     *ThemeStore
}

// New builds the preference stores. With seed set, empty lists start with
// the built-in sample data.
func New(st store.Store, seed bool) *Prefs {
	p := &Prefs{
		Locations: NewList[models.SavedLocation](st, store.KeySavedLocations, nil),
		Payments:  NewList[models.PaymentMethod](st, store.KeyPaymentMethods, nil),
		Rides:     NewList[models.RideRecord](st, store.KeyRecentRides, nil),
		Theme:     &ThemeStore{st: st},
	}
	if seed {
		p.Locations.defaults = defaultLocations
		p.Payments.defaults = defaultPayments
		p.Rides.defaults = defaultRides
	}
	return p
}
