// Package solidity carries the built-in ERC721 minting template and the
// binding that adapts a validated contract specification to the rendering
// engine. The template is self-contained Solidity with no imports so the
// artifact compiles without a dependency step.
package solidity

import (
	"github.com/veverse/contractgen/pkg/template"
)

// TemplateName is the registry name of the built-in ERC721 mint template.
const TemplateName = "erc721-mint"

// Schema declares the placeholder and predicate keys the built-in template
// may reference.
func Schema() template.Schema {
	return template.Schema{
		Values: []string{
			"contract",
			"name",
			"symbol",
			"description",
			"totalSupply",
			"price",
			"tokenURIBase",
			"paymentAsset",
		},
		Predicates: []string{
			"nativePayment",
			"tokenPayment",
			"pausable",
			"adjustablePrice",
		},
	}
}

// Document returns the parsed built-in template.
func Document() template.Document {
	return template.MustParse(templateText)
}

// Register adds the built-in template to a registry.
func Register(r *template.Registry) error {
	return r.Register(TemplateName, Document(), Schema())
}

// Conditional regions are written marker-inline so an omitted region never
// leaves a dangling blank line, brace or comment token around it.
const templateText = `// SPDX-License-Identifier: MIT
pragma solidity ^0.8.17;

// {{name}} ({{symbol}}): {{description}}
contract {{contract}} {
    string public name = "{{name}}";
    string public symbol = "{{symbol}}";
    string public baseTokenURI = "{{tokenURIBase}}";

    uint256 public constant MAX_ID = {{totalSupply}};
    uint256 public price = {{price}};

    address public owner;
{{#if pausable}}    bool public paused;
{{/if}}
    mapping(uint256 => address) private _owners;
    mapping(address => uint256) private _balances;

    event Transfer(address indexed from, address indexed to, uint256 indexed tokenId);

    constructor() {
        owner = msg.sender;
    }

    modifier onlyOwner() {
        require(msg.sender == owner, "caller is not the owner");
        _;
    }
{{#if pausable}}
    modifier whenNotPaused() {
        require(!paused, "minting is paused");
        _;
    }

    function setPaused(bool value) external onlyOwner {
        paused = value;
    }
{{/if}}{{#if adjustablePrice}}
    function setPrice(uint256 value) external onlyOwner {
        price = value;
    }
{{/if}}
    function balanceOf(address holder) external view returns (uint256) {
        require(holder != address(0), "query for the zero address");
        return _balances[holder];
    }

    function ownerOf(uint256 tokenId) external view returns (address) {
        address holder = _owners[tokenId];
        require(holder != address(0), "token does not exist");
        return holder;
    }

    function tokenURI(uint256 tokenId) external view returns (string memory) {
        require(_owners[tokenId] != address(0), "token does not exist");
        return string(abi.encodePacked(_baseURI(), _toString(tokenId)));
    }

    function _baseURI() internal view returns (string memory) {
        return baseTokenURI;
    }
{{#if nativePayment}}
    function mint(uint256 tokenId) external payable {{#if pausable}}whenNotPaused {{/if}}{
        require(tokenId < MAX_ID, "token id exceeds supply cap");
        require(_owners[tokenId] == address(0), "token already minted");
        require(msg.value == price, "incorrect payment amount");

        _owners[tokenId] = msg.sender;
        _balances[msg.sender] += 1;

        if (msg.value > 0) {
            payable(owner).transfer(msg.value);
        }

        emit Transfer(address(0), msg.sender, tokenId);
    }
{{/if}}{{#if tokenPayment}}
    // Minting settles in the configured payment asset; that flow is an
    // extension point and is not materialized in this template revision.
    address public constant PAYMENT_ASSET = {{paymentAsset}};
{{/if}}
    function _toString(uint256 value) internal pure returns (string memory) {
        if (value == 0) {
            return "0";
        }
        uint256 digits;
        for (uint256 probe = value; probe != 0; probe /= 10) {
            digits++;
        }
        bytes memory buffer = new bytes(digits);
        for (; value != 0; value /= 10) {
            digits -= 1;
            buffer[digits] = bytes1(uint8(48 + (value % 10)));
        }
        return string(buffer);
    }
}
`
