// Package demo drives the orderdemo program: it builds a container from a
// Config, walks it in every requested order, optionally removes a value and
// walks it again, then writes the result as text, JSON or YAML.
package demo

import (
	"context"
	"fmt"

	"github.com/amp-labs/amp-container/cli"
	"github.com/amp-labs/amp-container/container"
	"github.com/amp-labs/amp-container/logger"
	"github.com/amp-labs/amp-container/sortable"
	"github.com/google/uuid"
)

// Chooser picks a single order out of the configured ones. It is only
// consulted when Config.Interactive is set.
type Chooser func(orders []container.Order) (container.Order, error)

type options struct {
	chooser Chooser
}

type Option func(*options)

// WithChooser replaces the terminal prompt used in interactive mode.
func WithChooser(chooser Chooser) Option {
	return func(o *options) {
		o.chooser = chooser
	}
}

// PromptChooser asks on the terminal which order to show.
func PromptChooser(orders []container.Order) (container.Order, error) {
	names := make([]string, len(orders))
	for i, order := range orders {
		names[i] = titleOf(order)
	}

	idx, _, err := cli.Select("Traversal order", names...)
	if err != nil {
		return 0, err
	}

	return orders[idx], nil
}

// Build runs the container operations described by cfg and returns the report.
// A run id is attached to ctx for logging unless one is already present.
func Build(ctx context.Context, cfg Config, opts ...Option) (*Report, error) {
	o := &options{chooser: PromptChooser}
	for _, opt := range opts {
		opt(o)
	}

	runId, ok := logger.GetRunId(ctx)
	if !ok {
		runId = uuid.NewString()
		ctx = logger.WithRunId(ctx, runId)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log := logger.Get(ctx)

	orders := cfg.Orders
	if len(orders) == 0 {
		orders = container.Orders()
	}

	if cfg.Interactive {
		chosen, err := o.chooser(orders)
		if err != nil {
			return nil, fmt.Errorf("choosing order: %w", err)
		}

		orders = []container.Order{chosen}
	}

	rpt := &Report{
		RunId: runId,
		Type:  cfg.Type,
		Input: append([]string{}, cfg.Elements...),
	}

	log.Debug("building container", "type", cfg.Type, "elements", len(cfg.Elements), "orders", len(orders))

	var err error

	switch cfg.Type {
	case TypeInt, "":
		rpt.Type = TypeInt
		err = build[int](rpt, cfg, orders, parseInt, container.NewView[int])
	case TypeString:
		err = build[string](rpt, cfg, orders, parseString, container.NewView[string])
	case TypeNatural:
		err = build[sortable.Natural](rpt, cfg, orders, parseNatural, container.NewSortableView[sortable.Natural])
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownType, cfg.Type)
	}

	if err != nil {
		return nil, err
	}

	if rpt.Removal != nil && !rpt.Removal.Found {
		log.Warn("value to remove is not in the container", "value", rpt.Removal.Value)
	}

	log.Info("container built", "size", rpt.Size, "views", len(rpt.Views))

	return rpt, nil
}
