package builder

import (
	"context"
	"fmt"

	xcm "github.com/cordialsys/xcm"
	"github.com/cordialsys/xcm/client"
	"github.com/cordialsys/xcm/errors"
	"github.com/cordialsys/xcm/param"
	"github.com/sirupsen/logrus"
)

type BatchMode string

const (
	// best effort, continues past failing items
	Batch BatchMode = "BATCH"
	// atomic, aborts on the first failing item
	BatchAll BatchMode = "BATCH_ALL"
)

type BatchOptions struct {
	// defaults to BATCH_ALL
	Mode BatchMode
}

func (mode BatchMode) section() (string, error) {
	switch mode {
	case "", BatchAll:
		return "batchAll", nil
	case Batch:
		return "batch", nil
	}
	return "", fmt.Errorf("invalid batch mode: %s", mode)
}

type batchItem struct {
	origin xcm.Network
	build  func(ctx context.Context) (xcm.Call, error)
}

type batchManager struct {
	items []batchItem
}

func (m *batchManager) add(origin xcm.Network, build func(ctx context.Context) (xcm.Call, error)) {
	m.items = append(m.items, batchItem{origin: origin, build: build})
}

func (m *batchManager) build(ctx context.Context, conn client.Connection, options BatchOptions) (xcm.Call, error) {
	section, err := options.Mode.section()
	if err != nil {
		return nil, err
	}
	if conn == nil {
		return nil, errors.MissingConnectionf("a connection is required to build a batch")
	}
	if len(m.items) == 0 {
		return nil, errors.EmptyBatchf("no calls were added to the batch")
	}
	origin := m.items[0].origin
	for _, item := range m.items[1:] {
		if item.origin != origin {
			return nil, errors.BatchOriginMismatchf("batched calls originate on both %s and %s", origin, item.origin)
		}
	}
	if conn.Network() != origin {
		return nil, errors.BatchOriginMismatchf("batched calls originate on %s but the connection is to %s", origin, conn.Network())
	}

	calls := make(param.Vec[xcm.Call], len(m.items))
	for i, item := range m.items {
		calls[i], err = item.build(ctx)
		if err != nil {
			return nil, fmt.Errorf("batch item %d: %w", i, err)
		}
	}
	logrus.WithFields(logrus.Fields{
		"network": origin,
		"section": section,
		"calls":   len(calls),
	}).Debug("building batch")
	return conn.NewCall(ctx, xcm.SerializedCall{
		Module:     "utility",
		Section:    section,
		Parameters: []any{calls},
	})
}
