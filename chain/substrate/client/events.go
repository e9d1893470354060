package client

import (
	"bytes"
	"strings"

	"github.com/centrifuge/go-substrate-rpc-client/v4/registry"
	"github.com/centrifuge/go-substrate-rpc-client/v4/registry/parser"
	"github.com/centrifuge/go-substrate-rpc-client/v4/registry/retriever"
	"github.com/centrifuge/go-substrate-rpc-client/v4/registry/state"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
	"github.com/cordialsys/xcm/chain/substrate/tx"
	clienterrors "github.com/cordialsys/xcm/client/errors"
)

// Event is a decoded runtime event named "<module>.<id>", e.g. "System.ExtrinsicFailed"
type Event struct {
	Module string
	Id     string
	Fields registry.DecodedFields
}

func NewEvent(raw *parser.Event) *Event {
	module, id, _ := strings.Cut(raw.Name, ".")
	return &Event{Module: module, Id: id, Fields: raw.Fields}
}

// EventsOf returns the events emitted while applying the extrinsic at index
func EventsOf(events []*parser.Event, index int) []*Event {
	matching := []*Event{}
	for _, ev := range events {
		if ev.Phase == nil || !ev.Phase.IsApplyExtrinsic {
			continue
		}
		if ev.Phase.AsApplyExtrinsic == uint32(index) {
			matching = append(matching, NewEvent(ev))
		}
	}
	return matching
}

func find(events []*Event, module, id string) (*Event, bool) {
	for _, ev := range events {
		if strings.EqualFold(ev.Module, module) && strings.EqualFold(ev.Id, id) {
			return ev, true
		}
	}
	return nil, false
}

// variant is the name of the enum variant a decoded field holds
func variant(field *registry.DecodedField) (string, bool) {
	if field == nil {
		return "", false
	}
	switch value := field.Value.(type) {
	case registry.DecodedFields:
		if len(value) > 0 && value[0] != nil && value[0].Name != "" {
			return value[0].Name, true
		}
	case *registry.DecodedField:
		return variant(value)
	case string:
		return value, value != ""
	}
	return "", false
}

// Failure maps a System.ExtrinsicFailed event to a TransactionFailure
func Failure(events []*Event) error {
	ev, ok := find(events, "System", "ExtrinsicFailed")
	if !ok {
		return nil
	}
	if len(ev.Fields) > 0 {
		if reason, ok := variant(ev.Fields[0]); ok {
			return clienterrors.TransactionFailuref("dispatch error: %s", reason)
		}
	}
	// too difficult to decode further
	return clienterrors.TransactionFailuref("unable to decode reason")
}

// findExtrinsic locates the extrinsic with the given hash in a block
func findExtrinsic(block *types.SignedBlock, hash []byte) (int, bool) {
	for i, ext := range block.Block.Extrinsics {
		bz, err := codec.Encode(ext)
		if err != nil {
			continue
		}
		if bytes.Equal(hash, tx.HashSerialized(bz)) {
			return i, true
		}
	}
	return -1, false
}

// checkFinalized reads the events of the extrinsic in the finalized block and
// reports a dispatch failure
func (client *Client) checkFinalized(blockHash types.Hash, serialized []byte) error {
	block, err := client.DotClient.RPC.Chain.GetBlock(blockHash)
	if err != nil {
		return clienterrors.NetworkErrorf("could not fetch block %s: %v", blockHash.Hex(), err)
	}
	index, ok := findExtrinsic(block, tx.HashSerialized(serialized))
	if !ok {
		return clienterrors.Unknownf("extrinsic not found in finalized block %s", blockHash.Hex())
	}
	events, err := retriever.NewDefaultEventRetriever(state.NewEventProvider(client.DotClient.RPC.State), client.DotClient.RPC.State)
	if err != nil {
		return clienterrors.Unknownf("could not decode events: %v", err)
	}
	decoded, err := events.GetEvents(blockHash)
	if err != nil {
		return clienterrors.NetworkErrorf("could not fetch events of block %s: %v", blockHash.Hex(), err)
	}
	return Failure(EventsOf(decoded, index))
}
