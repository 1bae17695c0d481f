package spec_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"github.com/veverse/contractgen/pkg/spec"
)

func demoConfig() spec.RawConfig {
	return spec.RawConfig{
		Name:               "Demo",
		Symbol:             "DMO",
		ContractIdentifier: "DemoNFT",
		Description:        "A demo collection",
		TotalSupply:        "100",
		MintingPrice:       "0",
		TokenURIBase:       "https://api.example.com/meta/",
	}
}

func TestValidate_Valid(t *testing.T) {
	validated, err := spec.Validate(demoConfig())
	if err != nil {
		t.Fatalf("validate: %v", err)
	}

	if validated.Name != "Demo" || validated.Symbol != "DMO" {
		t.Fatalf("unexpected name/symbol: %q/%q", validated.Name, validated.Symbol)
	}
	if validated.ContractIdentifier != "DemoNFT" {
		t.Fatalf("identifier = %q", validated.ContractIdentifier)
	}
	if validated.TotalSupply.Dec() != "100" {
		t.Fatalf("totalSupply = %s", validated.TotalSupply.Dec())
	}
	if !validated.MintingPrice.IsZero() {
		t.Fatalf("mintingPrice = %s", validated.MintingPrice.Dec())
	}
	if !validated.NativePayment() {
		t.Fatal("empty asset address must select native payment")
	}
	if warnings := validated.Warnings(); len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
}

func TestValidate_AggregatesAllErrors(t *testing.T) {
	config := demoConfig()
	config.Symbol = ""
	config.ContractIdentifier = "7bad"
	config.MintingPrice = "-1"
	config.MintingAssetAddress = "not-an-address"

	_, err := spec.Validate(config)
	if err == nil {
		t.Fatal("expected validation failure")
	}

	var validationErrs spec.ValidationErrors
	if !errors.As(err, &validationErrs) {
		t.Fatalf("expected ValidationErrors, got %T: %v", err, err)
	}
	if len(validationErrs) != 4 {
		t.Fatalf("expected 4 field errors, got %d: %v", len(validationErrs), validationErrs)
	}

	fields := make(map[string]string)
	for _, fieldErr := range validationErrs {
		fields[fieldErr.Field] = fieldErr.Message
	}
	for _, field := range []string{"symbol", "contractIdentifier", "mintingPrice", "mintingAssetAddress"} {
		if _, ok := fields[field]; !ok {
			t.Errorf("missing error for field %q in %v", field, fields)
		}
	}
	if !strings.Contains(fields["mintingPrice"], "negative") {
		t.Errorf("mintingPrice error %q does not name the rule", fields["mintingPrice"])
	}
}

func TestValidate_ZeroSupplyWarnsNotFails(t *testing.T) {
	config := demoConfig()
	config.TotalSupply = "0"

	validated, err := spec.Validate(config)
	if err != nil {
		t.Fatalf("zero supply must validate: %v", err)
	}
	warnings := validated.Warnings()
	if len(warnings) != 1 || !strings.Contains(warnings[0], "totalSupply is zero") {
		t.Fatalf("expected zero-supply warning, got %v", warnings)
	}
}

func TestValidate_DescriptionNormalized(t *testing.T) {
	config := demoConfig()
	config.Description = "A demo\ncollection"

	validated, err := spec.Validate(config)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if validated.Description != "A demo collection" {
		t.Fatalf("description = %q", validated.Description)
	}
	warnings := validated.Warnings()
	if len(warnings) != 1 || !strings.Contains(warnings[0], "description was normalized") {
		t.Fatalf("expected normalization warning, got %v", warnings)
	}
}

func TestValidate_TokenPaymentMode(t *testing.T) {
	config := demoConfig()
	config.MintingAssetAddress = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"

	validated, err := spec.Validate(config)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if validated.NativePayment() {
		t.Fatal("non-zero asset address must select token payment")
	}
	if validated.AssetAddress != common.HexToAddress("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed") {
		t.Fatalf("asset address = %s", validated.AssetAddress.Hex())
	}
	warnings := validated.Warnings()
	if len(warnings) != 1 || !strings.Contains(warnings[0], "token-payment mode") {
		t.Fatalf("expected token-payment warning, got %v", warnings)
	}
}

func TestValidate_ZeroAddressIsNative(t *testing.T) {
	config := demoConfig()
	config.MintingAssetAddress = "0x0000000000000000000000000000000000000000"

	validated, err := spec.Validate(config)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !validated.NativePayment() {
		t.Fatal("explicit zero address must select native payment")
	}
}

func TestValidate_IdentifierDerivedFromName(t *testing.T) {
	config := demoConfig()
	config.Name = "My Demo Lands"
	config.ContractIdentifier = ""

	validated, err := spec.Validate(config)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if validated.ContractIdentifier != "MyDemoLands" {
		t.Fatalf("derived identifier = %q", validated.ContractIdentifier)
	}
}

func TestDeriveIdentifier(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{name: "My Demo Lands", want: "MyDemoLands"},
		{name: "7 Wonders", want: "_7Wonders"},
		{name: "!!!", want: ""},
		{name: "snake_case", want: "snake_case"},
	}
	for _, tc := range cases {
		if got := spec.DeriveIdentifier(tc.name); got != tc.want {
			t.Errorf("DeriveIdentifier(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}
