package demo

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/amp-labs/amp-container/container"
	"github.com/amp-labs/amp-container/sortable"
)

var ErrInvalidElement = errors.New("invalid element")

type (
	parseFunc[T comparable] func(string) (T, error)
	viewFunc[T comparable]  func(*container.Container[T], container.Order) (*container.View[T], error)
)

func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidElement, s)
	}

	return v, nil
}

func parseString(s string) (string, error) {
	return s, nil
}

func parseNatural(s string) (sortable.Natural, error) {
	return sortable.Natural(s), nil
}

// build fills in the container-dependent parts of the report.
func build[T comparable](rpt *Report, cfg Config, orders []container.Order,
	parse parseFunc[T], newView viewFunc[T],
) error {
	values := make([]T, 0, len(cfg.Elements))

	for _, elem := range cfg.Elements {
		v, err := parse(elem)
		if err != nil {
			return err
		}

		values = append(values, v)
	}

	ctr := container.New(values...)

	views, err := sections(ctr, orders, newView)
	if err != nil {
		return err
	}

	rpt.Size = ctr.Size()
	rpt.Views = views

	if cfg.Remove == "" {
		return nil
	}

	target, err := parse(cfg.Remove)
	if err != nil {
		return fmt.Errorf("value to remove: %w", err)
	}

	rpt.Removal = &Removal{Value: cfg.Remove}

	if err := ctr.Remove(target); err != nil {
		if !errors.Is(err, container.ErrNotFound) {
			return err
		}

		rpt.Removal.Size = ctr.Size()

		return nil
	}

	rpt.Removal.Found = true
	rpt.Removal.Size = ctr.Size()

	rpt.Removal.Views, err = sections(ctr, orders, newView)

	return err
}

func sections[T comparable](ctr *container.Container[T], orders []container.Order,
	newView viewFunc[T],
) ([]Section, error) {
	out := make([]Section, 0, len(orders))

	for _, order := range orders {
		view, err := newView(ctr, order)
		if err != nil {
			return nil, err
		}

		elems := make([]string, 0, view.Size())
		for v := range view.Seq() {
			elems = append(elems, fmt.Sprint(v))
		}

		out = append(out, Section{
			Order:    order.String(),
			Live:     view.Live(),
			Elements: elems,
			order:    order,
		})
	}

	return out, nil
}
