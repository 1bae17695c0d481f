package spec

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/veverse/contractgen/pkg/sanitize"
)

// Validate runs every per-field sanitizer followed by cross-field checks and
// returns either a fully validated ContractSpecification or a
// ValidationErrors listing all violated rules. Non-fatal findings (zero
// supply cap, normalized description, token-payment mode) become warnings on
// the returned specification rather than errors.
func Validate(raw RawConfig) (*ContractSpecification, error) {
	var errs ValidationErrors
	collect := func(field string, err error) {
		errs = append(errs, fieldError(field, err))
	}

	out := &ContractSpecification{
		Pausable:         raw.Pausable,
		OwnerCanSetPrice: raw.OwnerCanSetPrice,
	}

	if name, err := sanitize.StringLiteral("name", raw.Name); err != nil {
		collect("name", err)
	} else {
		out.Name = name
	}

	if symbol, err := sanitize.Symbol("symbol", raw.Symbol); err != nil {
		collect("symbol", err)
	} else {
		out.Symbol = symbol
	}

	identifier := raw.ContractIdentifier
	if identifier == "" {
		identifier = DeriveIdentifier(raw.Name)
	}
	if ident, err := sanitize.Identifier("contractIdentifier", identifier); err != nil {
		collect("contractIdentifier", err)
	} else {
		out.ContractIdentifier = ident
	}

	description, changed := sanitize.CommentText(raw.Description)
	out.Description = description
	if changed {
		out.warnings = append(out.warnings, "description was normalized for single-line embedding")
	}

	if supply, err := sanitize.Uint256("totalSupply", raw.TotalSupply); err != nil {
		collect("totalSupply", err)
	} else {
		out.TotalSupply = supply
		if supply.IsZero() {
			out.warnings = append(out.warnings, "totalSupply is zero; no tokens will ever be mintable")
		}
	}

	if price, err := sanitize.Uint256("mintingPrice", raw.MintingPrice); err != nil {
		collect("mintingPrice", err)
	} else {
		out.MintingPrice = price
	}

	if address, err := parseAssetAddress(raw.MintingAssetAddress); err != nil {
		collect("mintingAssetAddress", err)
	} else {
		out.AssetAddress = address
	}

	if base, err := sanitize.StringLiteral("tokenURIBase", raw.TokenURIBase); err != nil {
		collect("tokenURIBase", err)
	} else {
		out.TokenURIBase = base
	}

	if len(errs) > 0 {
		return nil, errs
	}

	if !out.NativePayment() {
		out.warnings = append(out.warnings,
			"token-payment mode selected; the generated contract pins the asset address but emits no mint entry point")
	}

	return out, nil
}

// parseAssetAddress accepts an empty string or a hex address. The zero
// address is the sentinel for native-coin payment.
func parseAssetAddress(raw string) (common.Address, error) {
	if raw == "" {
		return common.Address{}, nil
	}
	if !common.IsHexAddress(raw) {
		return common.Address{}, fmt.Errorf("%q is not a hex address", raw)
	}
	return common.HexToAddress(raw), nil
}

func fieldError(field string, err error) FieldError {
	var rule *sanitize.RuleError
	if errors.As(err, &rule) {
		return FieldError{Field: rule.Field, Message: rule.Rule}
	}
	return FieldError{Field: field, Message: err.Error()}
}
