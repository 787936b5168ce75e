package models

import "testing"

func TestResolvePlatform(t *testing.T) {
	testCases := []struct {
		name     string
		acronym  string
		expected string
	}{
		{"Known acronym", "NAVER", "Naver Webtoon"},
		{"Another known acronym", "LEZHIN", "Lezhin Comics"},
		{"Unknown acronym passes through", "HANGEUL", "HANGEUL"},
		{"Match is case-sensitive", "naver", "naver"},
		{"Empty acronym", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolvePlatform(tc.acronym); got != tc.expected {
				t.Errorf("ResolvePlatform(%q) = %q, want %q", tc.acronym, got, tc.expected)
			}
		})
	}
}
