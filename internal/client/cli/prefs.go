package cli

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/ifti227i/RideShareX/internal/client/models"
	"github.com/ifti227i/RideShareX/internal/client/rides"
	"github.com/ifti227i/RideShareX/internal/common"
)

func (a *App) Locations(ctx context.Context) error {
	items, err := a.prefs.Locations.List(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No saved locations")
		return nil
	}

	tw := newTable(a.out)
	fmt.Fprintln(tw, "ID\t\tNAME\tADDRESS")
	for _, l := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", l.ID, l.Icon, l.Name, l.Address)
	}
	return tw.Flush()
}

func (a *App) AddLocation(ctx context.Context) error {
	var l models.SavedLocation
	var err error

	if l.Name, err = getSimpleText(a.reader, "Name (e.g. Home)", a.out); err != nil {
		return err
	}
	if l.Address, err = getSimpleText(a.reader, "Address", a.out); err != nil {
		return err
	}
	if l.Icon, err = getSimpleText(a.reader, fmt.Sprintf("Icon [%s]", models.DefaultLocationIcon), a.out); err != nil {
		return err
	}

	saved, err := a.prefs.Locations.Add(ctx, l)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved %s (id %s)\n", saved.Name, saved.ID)
	return nil
}

func (a *App) RemoveLocation(ctx context.Context, id string) error {
	if err := a.prefs.Locations.Remove(ctx, models.ID(id)); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Location removed")
	return nil
}

func (a *App) Payments(ctx context.Context) error {
	items, err := a.prefs.Payments.List(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No payment methods")
		return nil
	}

	tw := newTable(a.out)
	fmt.Fprintln(tw, "ID\tTYPE\tNAME\tNUMBER\tEXPIRY")
	for _, p := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.Type, p.Name, maskNumber(p.Number), p.Expiry)
	}
	return tw.Flush()
}

func (a *App) AddPayment(ctx context.Context) error {
	var p models.PaymentMethod

	typ, err := getSimpleText(a.reader, fmt.Sprintf("Type (card, mobile, cash) [%s]", models.PaymentCard), a.out)
	if err != nil {
		return err
	}
	p.Type = models.PaymentType(typ)

	if p.Name, err = getSimpleText(a.reader, "Name (e.g. Personal Visa)", a.out); err != nil {
		return err
	}
	if p.Number, err = getSimpleText(a.reader, "Number", a.out); err != nil {
		return err
	}
	if p.Expiry, err = getSimpleText(a.reader, "Expiry (MM/YY, empty if none)", a.out); err != nil {
		return err
	}

	saved, err := a.prefs.Payments.Add(ctx, p)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved %s (id %s)\n", saved.Name, saved.ID)
	return nil
}

func (a *App) RemovePayment(ctx context.Context, id string) error {
	if err := a.prefs.Payments.Remove(ctx, models.ID(id)); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Payment method removed")
	return nil
}

// History lists the recent rides.
func (a *App) History(ctx context.Context) error {
	items, err := a.prefs.Rides.List(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No rides yet")
		return nil
	}

	tw := newTable(a.out)
	fmt.Fprintln(tw, "ID\tDATE\tFROM\tTO\tPRICE\tRATING")
	for _, r := range items {
		rating := "-"
		if r.Rating != nil {
			rating = strconv.Itoa(*r.Rating) + "/5"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", r.ID, r.Date, r.From, r.To, r.Price, rating)
	}
	return tw.Flush()
}

// AddRide records a ride. The date defaults to today and, between two
// known pickup points, the price defaults to the estimated fare.
func (a *App) AddRide(ctx context.Context) error {
	var r models.RideRecord
	var err error

	if r.From, err = getSimpleText(a.reader, "From", a.out); err != nil {
		return err
	}
	if r.To, err = getSimpleText(a.reader, "To", a.out); err != nil {
		return err
	}

	today := timeNow().Format("2006-01-02")
	if r.Date, err = getSimpleText(a.reader, fmt.Sprintf("Date [%s]", today), a.out); err != nil {
		return err
	}
	if r.Date == "" {
		r.Date = today
	}

	pricePrompt := "Price"
	estimate, known := estimateBetween(r.From, r.To)
	if known {
		pricePrompt = fmt.Sprintf("Price [%s]", estimate)
	}
	if r.Price, err = getSimpleText(a.reader, pricePrompt, a.out); err != nil {
		return err
	}
	if r.Price == "" && known {
		r.Price = estimate
	}

	rating, err := getSimpleText(a.reader, "Rating 1-5 (empty to skip)", a.out)
	if err != nil {
		return err
	}
	if rating != "" {
		n, err := strconv.Atoi(rating)
		if err != nil {
			return common.NewValidationError("rating", common.RuleRange, "rating must be between 1 and 5")
		}
		r.Rating = &n
	}

	saved, err := a.prefs.Rides.Add(ctx, r)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Ride saved (id %s)\n", saved.ID)
	return nil
}

func (a *App) RemoveRide(ctx context.Context, id string) error {
	if err := a.prefs.Rides.Remove(ctx, models.ID(id)); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Ride removed")
	return nil
}

func (a *App) Stats(ctx context.Context) error {
	items, err := a.prefs.Rides.List(ctx)
	if err != nil {
		return err
	}
	s := rides.Summarize(items)

	tw := newTable(a.out)
	fmt.Fprintf(tw, "Rides:\t%d\n", s.Rides)
	fmt.Fprintf(tw, "Total spent:\t%s\n", rides.FormatTaka(int(math.Round(s.TotalSpent))))
	if s.Rated > 0 {
		fmt.Fprintf(tw, "Average rating:\t%.1f (%d rated)\n", s.AverageRating, s.Rated)
	} else {
		fmt.Fprintf(tw, "Average rating:\t-\n")
	}
	return tw.Flush()
}

func estimateBetween(from, to string) (string, bool) {
	p1, ok1 := rides.Lookup(from)
	p2, ok2 := rides.Lookup(to)
	if !ok1 || !ok2 {
		return "", false
	}
	return rides.FormatTaka(rides.EstimateRoute(p1.Position, p2.Position).Fare), true
}
