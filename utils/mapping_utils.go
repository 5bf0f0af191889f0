package utils

import (
	"strings"
)

// MapPositionTokenToLabel maps a file-name position token to its display
// label. Input is normalized to lowercase before mapping.
// Returns the display label, e.g. "left-breast" -> "Left Breast"
func MapPositionTokenToLabel(token string) string {
	tokenLower := strings.ToLower(strings.TrimSpace(token))

	tokenMap := map[string]string{
		"front":        "Front",
		"back":         "Back",
		"left-breast":  "Left Breast",
		"right-breast": "Right Breast",
		"right-arm":    "Right Arm",
	}

	if label, exists := tokenMap[tokenLower]; exists {
		return label
	}

	// If not found, return a title-cased version of the input
	return capitalizeWords(strings.ReplaceAll(tokenLower, "-", " "))
}

// MapPositionLabelToToken maps a display label back to its file-name token.
// Input is normalized to lowercase before mapping.
// Returns the lowercase token, e.g. "Left Breast" -> "left-breast"
func MapPositionLabelToToken(label string) string {
	labelLower := strings.ToLower(strings.TrimSpace(label))

	labelMap := map[string]string{
		"front":        "front",
		"back":         "back",
		"left breast":  "left-breast",
		"right breast": "right-breast",
		"right arm":    "right-arm",
	}

	if token, exists := labelMap[labelLower]; exists {
		return token
	}

	// If not found, return a hyphenated version of the input
	return strings.ReplaceAll(labelLower, " ", "-")
}

// capitalizeWords uppercases the first letter of each space-separated word.
func capitalizeWords(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
