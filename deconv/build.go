package deconv

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// BuildDesignMatrices builds the design-matrix block of every event type
// concurrently and returns the blocks in input order. Event names must be
// unique because they label the columns of the joined design.
//
// Events are rebuilt in place. When one event fails, the call returns its
// error but events that finished before it keep their new design matrix and
// have lost any attached betas and timecourses.
func BuildDesignMatrices(ctx context.Context, events ...*EventType) ([]*DesignMatrix, error) {
	seen := make(map[string]struct{}, len(events))
	for i, ev := range events {
		if ev == nil {
			return nil, fmt.Errorf("deconv: event %d is nil", i)
		}
		if _, ok := seen[ev.name]; ok {
			return nil, fmt.Errorf("%w: event %q", ErrDuplicateName, ev.name)
		}
		seen[ev.name] = struct{}{}
	}

	blocks := make([]*DesignMatrix, len(events))
	g, gctx := errgroup.WithContext(ctx)

	for i, ev := range events {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			x, err := ev.CreateDesignMatrix()
			if err != nil {
				return fmt.Errorf("deconv: event %q: %w", ev.name, err)
			}
			blocks[i] = x
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return blocks, nil
}

// ColumnOffsets returns the first column of every block when the blocks are
// joined side by side in order.
func ColumnOffsets(blocks []*DesignMatrix) []int {
	offsets := make([]int, len(blocks))
	next := 0
	for i, b := range blocks {
		offsets[i] = next
		_, cols := b.Dims()
		next += cols
	}
	return offsets
}
