package contractgen_test

import (
	"strings"
	"testing"

	"github.com/veverse/contractgen"
	"github.com/veverse/contractgen/pkg/testsupport"
)

func TestGenerate_DefaultTemplate(t *testing.T) {
	artifact, err := contractgen.Generate(testsupport.Context(), "", contractgen.RawConfig{
		Name:               "Demo",
		Symbol:             "DMO",
		ContractIdentifier: "DemoNFT",
		Description:        "A demo collection",
		TotalSupply:        "100",
		MintingPrice:       "500",
		TokenURIBase:       "https://api.example.com/meta/",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	for _, want := range []string{
		"contract DemoNFT {",
		"uint256 public price = 500;",
		`require(msg.value == price, "incorrect payment amount");`,
	} {
		if !strings.Contains(artifact.Source, want) {
			t.Errorf("artifact missing %q", want)
		}
	}
}

func TestNewRegistry_IncludesBuiltIn(t *testing.T) {
	registry, err := contractgen.NewRegistry()
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	if !registry.Has(contractgen.DefaultTemplate) {
		t.Fatalf("registry missing %q", contractgen.DefaultTemplate)
	}
}
