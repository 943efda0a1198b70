// Package prefs holds the user's preference lists (saved locations, payment
// methods, ride history) and the theme. Each list is one JSON record that
// is rewritten whole on every change.
package prefs

import (
	"context"
	"fmt"
	"slices"

	"github.com/ifti227i/RideShareX/internal/client/models"
	"github.com/ifti227i/RideShareX/internal/client/store"
	"github.com/ifti227i/RideShareX/internal/common"
)

const listVersion = 1

// Item is a list element that knows its id and how to validate itself.
type Item[T any] interface {
	ItemID() models.ID
	WithID(id models.ID) T
	Prepare() (T, error)
}

type List[T Item[T]] struct {
	st       store.Store
	key      string
	defaults func() []T
}

// NewList binds a list to key. When defaults is non-nil, the first read of
// an absent list stores and returns defaults().
func NewList[T Item[T]](st store.Store, key string, defaults func() []T) *List[T] {
	return &List[T]{st: st, key: key, defaults: defaults}
}

func (l *List[T]) List(ctx context.Context) ([]T, error) {
	items, ok, err := store.Load[[]T](ctx, l.st, l.key, listVersion)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", l.key, err)
	}
	if ok {
		return items, nil
	}
	if l.defaults == nil {
		return nil, nil
	}

	items = l.defaults()
	if err := l.save(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Add validates item, gives it an id when it has none and appends it.
func (l *List[T]) Add(ctx context.Context, item T) (T, error) {
	item, err := item.Prepare()
	if err != nil {
		var zero T
		return zero, err
	}
	if item.ItemID() == "" {
		item = item.WithID(models.NewID())
	}

	items, err := l.List(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	if err := l.save(ctx, append(items, item)); err != nil {
		var zero T
		return zero, err
	}
	return item, nil
}

// Remove deletes the item with id. A missing id yields common.ErrorNotFound
// and leaves the list untouched.
func (l *List[T]) Remove(ctx context.Context, id models.ID) error {
	items, err := l.List(ctx)
	if err != nil {
		return err
	}

	i := slices.IndexFunc(items, func(it T) bool { return it.ItemID() == id })
	if i < 0 {
		return fmt.Errorf("%s %s: %w", l.key, id, common.ErrorNotFound)
	}
	return l.save(ctx, slices.Delete(items, i, i+1))
}

func (l *List[T]) save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	if err := store.Save(ctx, l.st, l.key, listVersion, items); err != nil {
		return fmt.Errorf("failed to write %s: %w", l.key, err)
	}
	return nil
}
