package location

import (
	"fmt"

	xcm "github.com/cordialsys/xcm"
	"github.com/cordialsys/xcm/errors"
)

// Recipient is either a plain address or an already structured location.
type Recipient struct {
	Address  xcm.Address
	Location *Location
}

func AddressRecipient(address xcm.Address) Recipient {
	return Recipient{Address: address}
}

func LocationRecipient(location Location) Recipient {
	return Recipient{Location: &location}
}

func (r Recipient) IsLocation() bool {
	return r.Location != nil
}

func (r Recipient) String() string {
	if r.Location != nil {
		return fmt.Sprintf("location(parents=%d, junctions=%d)", r.Location.Parents, len(r.Location.Interior))
	}
	return string(r.Address)
}

// AccountJunction picks the account junction kind from the address format.
func AccountJunction(version xcm.Version, address xcm.Address) (Junction, error) {
	tag := networkTag(version)
	if xcm.IsEthereumAddress(address) {
		key, err := xcm.AccountKey20(address)
		if err != nil {
			return Junction{}, err
		}
		return AccountKey20(tag, key), nil
	}
	id, err := xcm.AccountID32(address)
	if err != nil {
		return Junction{}, err
	}
	return AccountId32(tag, id), nil
}

func networkTag(version xcm.Version) NetworkTag {
	if version == xcm.V1 {
		return NetworkAny
	}
	return NetworkNone
}

// EncodeAddress maps a recipient to the beneficiary location for the given scenario and pallet.
// Structured recipients are passed through unchanged under the version key.
func EncodeAddress(version xcm.Version, scenario xcm.Scenario, pallet xcm.Pallet, recipient Recipient, intermediateParaID *uint32) (Versioned, error) {
	if recipient.Location != nil {
		return NewVersioned(version, *recipient.Location), nil
	}
	account, err := AccountJunction(version, recipient.Address)
	if err != nil {
		return Versioned{}, err
	}

	switch {
	case scenario == xcm.ParaToRelay:
		// relay chain accounts are always 32 bytes
		if account.Type != JunctionAccountId32 {
			return Versioned{}, errors.InvalidAddressFormatf("%s is not a relay chain address", recipient.Address)
		}
		parents := uint8(0)
		if pallet.UsesAssetSemantics() {
			parents = 1
		}
		return NewVersioned(version, New(parents, account)), nil

	case scenario == xcm.ParaToPara && pallet.UsesAssetSemantics():
		if intermediateParaID == nil {
			return Versioned{}, fmt.Errorf("destination parachain id is required for %s %s transfers", pallet, scenario)
		}
		return NewVersioned(version, New(1, Parachain(*intermediateParaID), account)), nil

	default:
		return NewVersioned(version, New(0, account)), nil
	}
}

// DestinationHeader is the `dest` argument of message-pallet transfers.
func DestinationHeader(version xcm.Version, scenario xcm.Scenario, paraID uint32) Versioned {
	switch scenario {
	case xcm.ParaToRelay:
		return NewVersioned(version, Here(1))
	case xcm.RelayToPara:
		return NewVersioned(version, New(0, Parachain(paraID)))
	default:
		return NewVersioned(version, New(1, Parachain(paraID)))
	}
}

// RelayNativeAsset is the location of the relay chain's native asset, as seen by the sender.
func RelayNativeAsset(scenario xcm.Scenario) Location {
	if scenario == xcm.RelayToPara {
		return Here(0)
	}
	return Here(1)
}
