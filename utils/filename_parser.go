package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// ArtworkFileInfo holds the fields encoded in an artwork file name.
type ArtworkFileInfo struct {
	ProductSKU    string
	PositionToken string
	Version       string
}

// extensionPattern strips a trailing image extension, case-insensitive.
var extensionPattern = regexp.MustCompile(`(?i)\.(png|jpe?g|webp|gif)$`)

// versionPattern matches a trailing version token like "v2".
var versionPattern = regexp.MustCompile(`(?i)^v[0-9]+$`)

// ParseArtworkFileName extracts product SKU, print position and optional
// version from an artwork file name. The expected format is
// "SKU_position.ext" or "SKU_position_vN.ext", e.g. "TEE-01_front_v2.png".
func ParseArtworkFileName(fileName string) (*ArtworkFileInfo, error) {
	name := extensionPattern.ReplaceAllString(strings.TrimSpace(fileName), "")
	if name == "" {
		return nil, fmt.Errorf("empty artwork file name %q", fileName)
	}

	parts := strings.Split(name, "_")
	if len(parts) < 2 || len(parts) > 3 {
		return nil, fmt.Errorf("unexpected artwork file name format %q, want SKU_position or SKU_position_vN", fileName)
	}

	info := &ArtworkFileInfo{
		ProductSKU:    strings.ToUpper(strings.TrimSpace(parts[0])),
		PositionToken: strings.ToLower(strings.TrimSpace(parts[1])),
	}
	if info.ProductSKU == "" || info.PositionToken == "" {
		return nil, fmt.Errorf("artwork file name %q is missing the SKU or position", fileName)
	}

	if len(parts) == 3 {
		version := strings.ToLower(strings.TrimSpace(parts[2]))
		if !versionPattern.MatchString(version) {
			return nil, fmt.Errorf("artwork file name %q has an invalid version token %q", fileName, parts[2])
		}
		info.Version = version
	}

	return info, nil
}
