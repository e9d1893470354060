package testutil

import (
	"context"
	"fmt"

	xcm "github.com/cordialsys/xcm"
	"github.com/cordialsys/xcm/client"
	"github.com/cordialsys/xcm/exchange"
	"github.com/stretchr/testify/mock"
)

// Call is a signable call that only carries its descriptor
type Call struct {
	Net        xcm.Network
	Descriptor xcm.SerializedCall
}

var _ xcm.Call = &Call{}

func (c *Call) Network() xcm.Network           { return c.Net }
func (c *Call) Module() string                 { return c.Descriptor.Module }
func (c *Call) Section() string                { return c.Descriptor.Section }
func (c *Call) Parameters() []any              { return c.Descriptor.Parameters }
func (c *Call) Serialized() xcm.SerializedCall { return c.Descriptor }
func (c *Call) MarshalJSON() ([]byte, error)   { return []byte(MustJSON(c.Descriptor)), nil }
func (c *Call) Bytes() ([]byte, error)         { return []byte(MustJSON(c.Descriptor)), nil }
func (c *Call) String() string                 { return fmt.Sprintf("%s.%s", c.Module(), c.Section()) }

// MockedConnection is a connection that builds descriptor-only calls.
// ExistentialDeposit and Close are mocked.
type MockedConnection struct {
	mock.Mock
	Net xcm.Network
}

var _ client.Connection = &MockedConnection{}

func NewMockedConnection(network xcm.Network) *MockedConnection {
	return &MockedConnection{Net: network}
}

func (m *MockedConnection) Network() xcm.Network {
	return m.Net
}

func (m *MockedConnection) NewCall(ctx context.Context, call xcm.SerializedCall) (xcm.Call, error) {
	return &Call{Net: m.Net, Descriptor: call}, nil
}

func (m *MockedConnection) ExistentialDeposit(ctx context.Context) (xcm.AmountBlockchain, error) {
	args := m.Called(ctx)
	return args.Get(0).(xcm.AmountBlockchain), args.Error(1)
}

func (m *MockedConnection) Close() {
	m.Called()
}

// MockedConnectionProvider hands out mocked connections
type MockedConnectionProvider struct {
	mock.Mock
}

var _ client.ConnectionProvider = &MockedConnectionProvider{}

func (m *MockedConnectionProvider) Connect(ctx context.Context, network xcm.Network) (client.Connection, error) {
	args := m.Called(ctx, network)
	conn, _ := args.Get(0).(client.Connection)
	return conn, args.Error(1)
}

// MockedSubmitter records submissions
type MockedSubmitter struct {
	mock.Mock
}

var _ client.Submitter = &MockedSubmitter{}

func (m *MockedSubmitter) Submit(ctx context.Context, conn client.Connection, call xcm.Call, signer xcm.Signer, account xcm.Address) (xcm.TxHash, error) {
	args := m.Called(ctx, conn, call, signer, account)
	return args.Get(0).(xcm.TxHash), args.Error(1)
}

// MockedBridge records bridge transfers
type MockedBridge struct {
	mock.Mock
	Net xcm.Network
}

var _ client.Bridge = &MockedBridge{}

func (m *MockedBridge) Network() xcm.Network {
	return m.Net
}

func (m *MockedBridge) Transfer(ctx context.Context, transfer client.BridgeTransfer, signer xcm.Signer) (xcm.TxHash, error) {
	args := m.Called(ctx, transfer, signer)
	return args.Get(0).(xcm.TxHash), args.Error(1)
}

// Signer is a static signer
type Signer struct {
	Type xcm.SignatureType
	Key  []byte
}

var _ xcm.Signer = &Signer{}

func (s *Signer) SignatureType() xcm.SignatureType { return s.Type }
func (s *Signer) PublicKey() []byte                { return s.Key }
func (s *Signer) Sign(payload []byte) ([]byte, error) {
	return append([]byte("signed:"), payload...), nil
}

// MockedExchange is an exchange adapter with mocked quotes and swaps
type MockedExchange struct {
	mock.Mock
	ExchangeName string
	Net          xcm.Network
}

var _ exchange.Adapter = &MockedExchange{}

func NewMockedExchange(name string, network xcm.Network) *MockedExchange {
	return &MockedExchange{ExchangeName: name, Net: network}
}

func (m *MockedExchange) Name() string         { return m.ExchangeName }
func (m *MockedExchange) Network() xcm.Network { return m.Net }

func (m *MockedExchange) Quote(ctx context.Context, from xcm.Currency, to xcm.Currency, amount xcm.AmountBlockchain) (xcm.AmountBlockchain, error) {
	args := m.Called(ctx, from, to, amount)
	return args.Get(0).(xcm.AmountBlockchain), args.Error(1)
}

func (m *MockedExchange) SwapCurrency(ctx context.Context, conn client.Connection, swap exchange.SwapArgs) (exchange.SwapResult, error) {
	args := m.Called(ctx, conn, swap)
	return args.Get(0).(exchange.SwapResult), args.Error(1)
}
