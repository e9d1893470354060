package tx_input

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/extrinsic"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/extrinsic/extensions"
	"github.com/sirupsen/logrus"
)

type CallMeta struct {
	Name         string `json:"name"`
	SectionIndex uint8  `json:"section"`
	MethodIndex  uint8  `json:"method"`
}

// Metadata is the subset of the runtime metadata needed to encode and sign calls.
type Metadata struct {
	Calls            []*CallMeta                      `json:"calls"`
	SignedExtensions []extensions.SignedExtensionName `json:"signed_extensions"`
}

// CallName maps a descriptor's module and section onto the metadata call name,
// e.g. ("polkadotXcm", "limitedReserveTransferAssets") -> "PolkadotXcm.limited_reserve_transfer_assets"
func CallName(module string, section string) string {
	return pascal(module) + "." + snake(section)
}

func pascal(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func snake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (m *Metadata) FindCallIndex(name string) (types.CallIndex, error) {
	for _, call := range m.Calls {
		if call.Name == name {
			return types.CallIndex{
				SectionIndex: call.SectionIndex,
				MethodIndex:  call.MethodIndex,
			}, nil
		}
	}
	return types.CallIndex{}, fmt.Errorf("unsupported substrate method: %s", name)
}

// Resolve looks the call up in the full metadata and caches its index
func (m *Metadata) Resolve(meta *types.Metadata, name string) (types.CallIndex, error) {
	if index, err := m.FindCallIndex(name); err == nil {
		return index, nil
	}
	index, err := meta.FindCallIndex(name)
	if err != nil {
		return types.CallIndex{}, fmt.Errorf("chain does not support %s: %v", name, err)
	}
	m.Calls = append(m.Calls, &CallMeta{
		Name:         name,
		SectionIndex: index.SectionIndex,
		MethodIndex:  index.MethodIndex,
	})
	return index, nil
}

// ParseMeta keeps the signed extensions and the indices of the given calls, so that the
// massive metadata description does not need to be carried around.
func ParseMeta(meta *types.Metadata, calls ...string) (Metadata, error) {
	newMeta := Metadata{}
	for _, name := range calls {
		if _, err := newMeta.Resolve(meta, name); err != nil {
			logrus.WithField("name", name).Debug("chain does not support extrinsic")
		}
	}
	for _, signedExtension := range meta.AsMetadataV14.Extrinsic.SignedExtensions {
		signedExtensionType, ok := meta.AsMetadataV14.EfficientLookup[signedExtension.Type.Int64()]
		if !ok {
			return newMeta, fmt.Errorf("signed extension type '%d' is not defined", signedExtension.Type.Int64())
		}
		signedExtensionName := extensions.SignedExtensionName(signedExtensionType.Path[len(signedExtensionType.Path)-1])
		newMeta.SignedExtensions = append(newMeta.SignedExtensions, signedExtensionName)
	}
	return newMeta, nil
}

var LocalPayloadMutatorFns = map[extensions.SignedExtensionName]extrinsic.PayloadMutatorFn{
	// no signed fields
	"StorageWeightReclaim": func(payload *extrinsic.Payload) {},
	"PrevalidateAttests":   func(payload *extrinsic.Payload) {},
}

// Replaces "github.com/centrifuge/go-substrate-rpc-client/v4/extrinsic".createPayload
func CreatePayload(meta *Metadata, encodedCall []byte) (*extrinsic.Payload, error) {
	payload := &extrinsic.Payload{
		EncodedCall: encodedCall,
	}

	for _, signedExtension := range meta.SignedExtensions {
		payloadMutatorFn, ok := extrinsic.PayloadMutatorFns[signedExtension]
		if !ok {
			payloadMutatorFn, ok = LocalPayloadMutatorFns[signedExtension]
			if !ok {
				logrus.WithFields(logrus.Fields{
					"extension": signedExtension,
				}).Warn("signed extension is not supported, transaction may not be accepted")
				continue
			}
		}
		payloadMutatorFn(payload)
	}

	return payload, nil
}
