package testutil

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	xcm "github.com/cordialsys/xcm"
)

func FromHex(s string) []byte {
	bz, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		panic(err)
	}
	return bz
}

func HumanToBlockchain(amount string, decimals int) xcm.AmountBlockchain {
	h, err := xcm.NewAmountHumanReadableFromStr(amount)
	if err != nil {
		panic(err)
	}
	return h.ToBlockchain(int32(decimals))
}

func JsonPrint(a any) {
	bz, _ := json.MarshalIndent(a, "", "  ")
	fmt.Println(string(bz))
}

func MustJSON(a any) string {
	bz, err := json.Marshal(a)
	if err != nil {
		panic(err)
	}
	return string(bz)
}

func Ref[T any](s T) *T {
	return &s
}

// Well known development accounts
const (
	Alice    = xcm.Address("5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY")
	AliceHex = "0xd43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d"
	Bob      = xcm.Address("5FHneW46xGXgs5mUiveU4sbTyGBzmstUspZC92UhjJM694ty")
	EvmAlice = xcm.Address("0xf24FF3a9CF04c71Dbc94D0b566f7A27B94566cac")
)
