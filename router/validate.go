package router

import (
	xcm "github.com/cordialsys/xcm"
	"github.com/cordialsys/xcm/errors"
)

// validate runs before any connection is opened. Signer checks only apply when executing.
func (r *Router) validate(opts TransferOptions, execute bool) error {
	if execute {
		if opts.EvmInjectorAddress != "" && opts.EvmSigner == nil {
			return errors.InvalidTransferOptionsf("EvmSigner is required when EvmInjectorAddress is provided")
		}
		if opts.EvmSigner != nil && opts.EvmInjectorAddress == "" {
			return errors.InvalidTransferOptionsf("EvmInjectorAddress is required when EvmSigner is provided")
		}
	}
	if opts.EvmInjectorAddress != "" && !xcm.IsEthereumAddress(opts.EvmInjectorAddress) {
		return errors.InvalidAddressFormatf("EvmInjectorAddress %s is not a valid Ethereum address", opts.EvmInjectorAddress)
	}
	if xcm.IsEthereumAddress(opts.InjectorAddress) {
		return errors.InvalidAddressFormatf("InjectorAddress cannot be an Ethereum address, use EvmInjectorAddress instead")
	}
	touchesBridge := opts.From == r.bridgeNetwork || opts.To == r.bridgeNetwork
	if touchesBridge && opts.AssetHubAddress == "" {
		return errors.InvalidTransferOptionsf("AssetHubAddress is required when transferring to or from %s", r.bridgeNetwork)
	}
	if opts.From == r.bridgeNetwork {
		if execute && opts.EthSigner == nil {
			return errors.InvalidTransferOptionsf("EthSigner is required when transferring from %s", r.bridgeNetwork)
		}
		if !execute && opts.EthAddress == "" {
			return errors.InvalidTransferOptionsf("EthAddress is required when transferring from %s", r.bridgeNetwork)
		}
	}

	if !opts.From.Valid() {
		return errors.NodeNotSupportedf("unknown origin %s", opts.From)
	}
	if !opts.To.Valid() {
		return errors.NodeNotSupportedf("unknown destination %s", opts.To)
	}
	if opts.CurrencyFrom.IsEmpty() || opts.CurrencyTo.IsEmpty() {
		return errors.InvalidCurrencyf("both the origin and destination currency are required")
	}
	if opts.Amount.Sign() <= 0 {
		return errors.InvalidTransferOptionsf("amount must be positive")
	}
	if opts.InjectorAddress == "" && opts.EvmInjectorAddress == "" {
		return errors.InvalidTransferOptionsf("InjectorAddress is required")
	}
	if opts.RecipientAddress == "" {
		return errors.InvalidTransferOptionsf("RecipientAddress is required")
	}
	if execute && opts.Signer == nil && opts.Type != FromEth {
		return errors.InvalidTransferOptionsf("Signer is required")
	}
	return nil
}
