// Package location builds the versioned cross-consensus addressing descriptors
// (parents + junctions) and the asset lists that reference them.
package location

import (
	"encoding/json"
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	xcm "github.com/cordialsys/xcm"
)

const MaxParents = 2

// Location is a path relative to the sender: a number of hops up, then at most two junctions down.
type Location struct {
	Parents  uint8
	Interior []Junction
}

func New(parents uint8, interior ...Junction) Location {
	return Location{Parents: parents, Interior: interior}
}

// Here is the location of the sender itself (or, with parents=1, of the relay chain).
func Here(parents uint8) Location {
	return Location{Parents: parents}
}

func (l Location) Validate() error {
	if l.Parents > MaxParents {
		return fmt.Errorf("location parents must be at most %d, got %d", MaxParents, l.Parents)
	}
	if len(l.Interior) > 2 {
		return fmt.Errorf("location interior must be at most 2 junctions, got %d", len(l.Interior))
	}
	return nil
}

func (l Location) interior(version xcm.Version) any {
	switch len(l.Interior) {
	case 0:
		return "Here"
	case 1:
		if version >= xcm.V4 {
			return map[string][]Junction{"X1": l.Interior}
		}
		return map[string]Junction{"X1": l.Interior[0]}
	default:
		return map[string][]Junction{fmt.Sprintf("X%d", len(l.Interior)): l.Interior}
	}
}

type locationJSON struct {
	Parents  uint8 `json:"parents"`
	Interior any   `json:"interior"`
}

func (l Location) wire(version xcm.Version) locationJSON {
	return locationJSON{Parents: l.Parents, Interior: l.interior(version)}
}

func (l Location) Encode(encoder scale.Encoder) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if err := encoder.PushByte(l.Parents); err != nil {
		return err
	}
	// Junctions::Here = 0, X1 = 1, X2 = 2
	if err := encoder.PushByte(uint8(len(l.Interior))); err != nil {
		return err
	}
	for _, j := range l.Interior {
		if err := encoder.Encode(j); err != nil {
			return err
		}
	}
	return nil
}

// SCALE variant index of each protocol version in the Versioned* enums
func versionIndex(version xcm.Version) (uint8, error) {
	switch version {
	case xcm.V1, xcm.V2:
		return 1, nil
	case xcm.V3:
		return 3, nil
	case xcm.V4:
		return 4, nil
	}
	return 0, fmt.Errorf("unsupported xcm version: %d", version)
}

// Versioned is a location tagged with exactly one protocol version.
type Versioned struct {
	Version  xcm.Version
	Location Location
}

func NewVersioned(version xcm.Version, location Location) Versioned {
	return Versioned{Version: version, Location: location}
}

func (v Versioned) MarshalJSON() ([]byte, error) {
	if err := v.Location.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(map[string]locationJSON{v.Version.String(): v.Location.wire(v.Version)})
}

func (v Versioned) Encode(encoder scale.Encoder) error {
	index, err := versionIndex(v.Version)
	if err != nil {
		return err
	}
	if err := encoder.PushByte(index); err != nil {
		return err
	}
	return encoder.Encode(v.Location)
}
