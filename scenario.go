package xcm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Scenario is the topological relationship between origin and destination.
type Scenario string

const (
	ParaToRelay = Scenario("ParaToRelay")
	ParaToPara  = Scenario("ParaToPara")
	RelayToPara = Scenario("RelayToPara")
)

// DetermineScenario derives the scenario from an (origin, destination) pair.
func DetermineScenario(origin Network, destination Network) Scenario {
	if origin.IsRelayChain() {
		return RelayToPara
	}
	if destination.IsRelayChain() {
		return ParaToRelay
	}
	return ParaToPara
}

// Version is the cross-consensus message protocol version.
type Version uint8

const (
	V1 Version = 1
	V2 Version = 2
	V3 Version = 3
	V4 Version = 4
)

var VersionList = []Version{V1, V2, V3, V4}

func (v Version) Valid() bool {
	return v >= V1 && v <= V4
}

func (v Version) String() string {
	return fmt.Sprintf("V%d", uint8(v))
}

func ParseVersion(s string) (Version, error) {
	for _, v := range VersionList {
		if strings.EqualFold(v.String(), strings.TrimSpace(s)) {
			return v, nil
		}
	}
	return 0, fmt.Errorf("invalid xcm version: %s", s)
}

func (v Version) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

func (v *Version) UnmarshalJSON(bz []byte) error {
	var s string
	if err := json.Unmarshal(bz, &s); err != nil {
		return err
	}
	parsed, err := ParseVersion(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func (v Version) MarshalYAML() (interface{}, error) {
	return v.String(), nil
}
