// Package spec defines the contract generation input: the raw configuration
// supplied by the business layer and the validated, immutable specification
// the rendering pipeline consumes.
package spec

import (
	"strings"
	"unicode"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// RawConfig is the unvalidated generation request. Numeric fields travel as
// decimal strings so the full 256-bit range survives YAML and JSON
// transport; the asset address is a hex string, empty or all-zero meaning
// native-coin payment.
type RawConfig struct {
	Name                string `yaml:"name" json:"name"`
	Symbol              string `yaml:"symbol" json:"symbol"`
	ContractIdentifier  string `yaml:"contractIdentifier" json:"contractIdentifier"`
	Description         string `yaml:"description" json:"description"`
	TotalSupply         string `yaml:"totalSupply" json:"totalSupply"`
	MintingPrice        string `yaml:"mintingPrice" json:"mintingPrice"`
	MintingAssetAddress string `yaml:"mintingAssetAddress" json:"mintingAssetAddress"`
	TokenURIBase        string `yaml:"tokenURIBase" json:"tokenURIBase"`

	// Optional feature sets.
	Pausable         bool `yaml:"pausable" json:"pausable"`
	OwnerCanSetPrice bool `yaml:"ownerCanSetPrice" json:"ownerCanSetPrice"`
}

// ContractSpecification is the validated form of a RawConfig. It is
// immutable for the duration of rendering; construct it through Validate.
type ContractSpecification struct {
	Name               string
	Symbol             string
	ContractIdentifier string
	Description        string
	TotalSupply        *uint256.Int
	MintingPrice       *uint256.Int
	AssetAddress       common.Address
	TokenURIBase       string
	Pausable           bool
	OwnerCanSetPrice   bool

	warnings []string
}

// NativePayment reports whether minting settles in the native coin, selected
// by the all-zero sentinel asset address.
func (s *ContractSpecification) NativePayment() bool {
	return s.AssetAddress == (common.Address{})
}

// Warnings returns the non-fatal findings accumulated during validation,
// e.g. a normalized description or a zero supply cap.
func (s *ContractSpecification) Warnings() []string {
	out := make([]string, len(s.warnings))
	copy(out, s.warnings)
	return out
}

// DeriveIdentifier derives a contract identifier from a display name by
// keeping letters, digits and underscores and prefixing an underscore when
// the result would start with a digit. The result still has to pass
// validation; an empty name derives to an empty identifier.
func DeriveIdentifier(name string) string {
	var b strings.Builder
	for _, r := range name {
		if r == '_' || (r < 128 && (unicode.IsLetter(r) || unicode.IsDigit(r))) {
			b.WriteRune(r)
		}
	}
	out := b.String()
	if out == "" {
		return ""
	}
	if r := out[0]; r >= '0' && r <= '9' {
		out = "_" + out
	}
	return out
}
