package common

import (
	"testing"
)

func TestIsValidEndpoint(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"http://localhost:5000/api", true},
		{"https://api.example.com/api", true},
		{"HTTPS://api.example.com", true},
		{"localhost:5000", false}, // No scheme
		{"ftp://example.com", false},
		{"http://", false}, // No host
		{"", false},
		{"://broken", false},
	}

	for _, test := range tests {
		result := IsValidEndpoint(test.input)
		if result != test.expected {
			t.Errorf("IsValidEndpoint(%q) = %v, expected %v", test.input, result, test.expected)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"john@example.com", true},
		{"John Doe <john@example.com>", true},
		{"john.example.com", false},
		{"", false},
	}

	for _, test := range tests {
		result := IsValidEmail(test.input)
		if result != test.expected {
			t.Errorf("IsValidEmail(%q) = %v, expected %v", test.input, result, test.expected)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"2025-01-31", true},
		{"2024-02-29", true}, // Leap year
		{"2025-02-29", false},
		{"2025-13-01", false},
		{"31/01/2025", false},
		{"", false},
	}

	for _, test := range tests {
		result := IsValidDate(test.input)
		if result != test.expected {
			t.Errorf("IsValidDate(%q) = %v, expected %v", test.input, result, test.expected)
		}
	}
}
