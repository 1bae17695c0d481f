package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"gopkg.in/yaml.v3"

	"github.com/veverse/contractgen"
	"github.com/veverse/contractgen/pkg/spec"
)

func main() {
	templateName := flag.String("template", contractgen.DefaultTemplate, "template to render")
	configPath := flag.String("config", "", "YAML config file (interactive prompts if empty)")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	ctx := context.Background()

	config, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	artifact, err := contractgen.Generate(ctx, *templateName, config)
	if err != nil {
		log.Fatalf("Failed to generate contract: %v", err)
	}

	for _, warning := range artifact.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(artifact.Source), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Contract written to %s\n", *output)
	} else {
		fmt.Println(artifact.Source)
	}
}

func loadConfig(path string) (spec.RawConfig, error) {
	if path == "" {
		return promptConfig()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return spec.RawConfig{}, fmt.Errorf("read config: %w", err)
	}
	var config spec.RawConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return spec.RawConfig{}, fmt.Errorf("parse config: %w", err)
	}
	return config, nil
}

func promptConfig() (spec.RawConfig, error) {
	var config spec.RawConfig

	questions := []*survey.Question{
		{Name: "name", Prompt: &survey.Input{Message: "Collection name:"}, Validate: survey.Required},
		{Name: "symbol", Prompt: &survey.Input{Message: "Symbol:"}, Validate: survey.Required},
		{Name: "description", Prompt: &survey.Input{Message: "Description:"}},
		{Name: "totalSupply", Prompt: &survey.Input{Message: "Supply cap:", Default: "0"}},
		{Name: "mintingPrice", Prompt: &survey.Input{Message: "Mint price (smallest unit):", Default: "0"}},
		{Name: "mintingAssetAddress", Prompt: &survey.Input{Message: "Payment asset address (empty for native coin):"}},
		{Name: "tokenURIBase", Prompt: &survey.Input{Message: "Metadata base URL:"}, Validate: survey.Required},
		{Name: "pausable", Prompt: &survey.Confirm{Message: "Pausable minting?"}},
		{Name: "ownerCanSetPrice", Prompt: &survey.Confirm{Message: "Owner-adjustable price?"}},
	}

	answers := struct {
		Name                string
		Symbol              string
		Description         string
		TotalSupply         string
		MintingPrice        string
		MintingAssetAddress string
		TokenURIBase        string
		Pausable            bool
		OwnerCanSetPrice    bool
	}{}
	if err := survey.Ask(questions, &answers); err != nil {
		return spec.RawConfig{}, fmt.Errorf("prompt config: %w", err)
	}

	config = spec.RawConfig{
		Name:                answers.Name,
		Symbol:              answers.Symbol,
		Description:         answers.Description,
		TotalSupply:         answers.TotalSupply,
		MintingPrice:        answers.MintingPrice,
		MintingAssetAddress: answers.MintingAssetAddress,
		TokenURIBase:        answers.TokenURIBase,
		Pausable:            answers.Pausable,
		OwnerCanSetPrice:    answers.OwnerCanSetPrice,
	}

	identifier := spec.DeriveIdentifier(config.Name)
	if err := survey.AskOne(&survey.Input{Message: "Contract identifier:", Default: identifier}, &config.ContractIdentifier); err != nil {
		return spec.RawConfig{}, fmt.Errorf("prompt config: %w", err)
	}

	return config, nil
}
