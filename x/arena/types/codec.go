package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
)

func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {}

// RegisterInterfaces registers the module's interface types. Arena state and
// messages are stored and exchanged as JSON, so there is nothing to bind to
// the interface registry yet.
func RegisterInterfaces(registry codectypes.InterfaceRegistry) {}
