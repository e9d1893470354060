package substrate

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
	xcm "github.com/cordialsys/xcm"
	"github.com/cordialsys/xcm/chain/substrate/tx_input"
)

// Resolver maps a metadata call name, e.g. "Utility.batch_all", onto its call index
type Resolver func(name string) (types.CallIndex, error)

// Call is a SCALE encoded call bound to a network
type Call struct {
	network    xcm.Network
	descriptor xcm.SerializedCall
	index      types.CallIndex
	args       []byte
}

var _ xcm.Call = &Call{}

// NewCall encodes the descriptor's parameters in order. Nested descriptors (e.g. the
// argument of sudo.sudo) are encoded as calls themselves.
func NewCall(network xcm.Network, descriptor xcm.SerializedCall, resolve Resolver) (*Call, error) {
	name := tx_input.CallName(descriptor.Module, descriptor.Section)
	index, err := resolve(name)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	encoder := scale.NewEncoder(&buf)
	for i, parameter := range descriptor.Parameters {
		if nested, ok := parameter.(xcm.SerializedCall); ok {
			inner, err := NewCall(network, nested, resolve)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			parameter = inner
		}
		if err := encoder.Encode(parameter); err != nil {
			return nil, fmt.Errorf("could not encode parameter %d of %s: %w", i, name, err)
		}
	}
	return &Call{
		network:    network,
		descriptor: descriptor,
		index:      index,
		args:       buf.Bytes(),
	}, nil
}

func (c *Call) Network() xcm.Network           { return c.network }
func (c *Call) Module() string                 { return c.descriptor.Module }
func (c *Call) Section() string                { return c.descriptor.Section }
func (c *Call) Parameters() []any              { return c.descriptor.Parameters }
func (c *Call) Serialized() xcm.SerializedCall { return c.descriptor }
func (c *Call) Index() types.CallIndex         { return c.index }

// Encode writes the call index followed by the arguments, as when nested in another call
func (c *Call) Encode(encoder scale.Encoder) error {
	if err := encoder.Encode(c.index); err != nil {
		return err
	}
	return encoder.Write(c.args)
}

func (c *Call) Bytes() ([]byte, error) {
	return codec.Encode(c)
}

// Raw is the call as the extrinsic carries it
func (c *Call) Raw() types.Call {
	return types.Call{CallIndex: c.index, Args: c.args}
}

func (c *Call) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.descriptor)
}

func (c *Call) String() string {
	return fmt.Sprintf("%s.%s", c.descriptor.Module, c.descriptor.Section)
}
