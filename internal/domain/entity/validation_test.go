package entity

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{name: "valid https URL", url: "https://example.com/feed", wantErr: false},
		{name: "valid http URL", url: "http://example.com/feed", wantErr: false},
		{name: "valid URL with port", url: "https://example.com:8080/feed", wantErr: false},
		{name: "valid URL with query", url: "https://example.com/feed?param=value", wantErr: false},
		{name: "surrounding whitespace", url: "  https://t.example  ", wantErr: false},
		{name: "empty URL", url: "", wantErr: true},
		{name: "blank URL", url: "   ", wantErr: true},
		{name: "invalid scheme - ftp", url: "ftp://example.com/feed", wantErr: true},
		{name: "invalid scheme - javascript", url: "javascript:alert(1)", wantErr: true},
		{name: "no host", url: "https://", wantErr: true},
		{name: "relative path", url: "/feeds/1", wantErr: true},
		{name: "malformed escape", url: "https://example.com/%zz", wantErr: true},
		{name: "too long", url: "https://example.com/" + strings.Repeat("a", maxURLLength), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL("link", tt.url)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
			if err == nil {
				return
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("error type = %T, want *ValidationError", err)
			}
			if ve.Field != "link" {
				t.Errorf("Field = %q, want %q", ve.Field, "link")
			}
		})
	}
}

func TestValidateOptionalURL(t *testing.T) {
	if err := ValidateOptionalURL("imageUrl", ""); err != nil {
		t.Errorf("empty optional URL: unexpected error %v", err)
	}
	if err := ValidateOptionalURL("imageUrl", "not a url"); err == nil {
		t.Error("invalid optional URL: want error, got nil")
	}
}

func TestValidateRequired(t *testing.T) {
	if err := ValidateRequired("title", "Tech Blog"); err != nil {
		t.Errorf("unexpected error %v", err)
	}
	for _, v := range []string{"", " ", "\t\n"} {
		err := ValidateRequired("title", v)
		var ve *ValidationError
		if !errors.As(err, &ve) || ve.Field != "title" {
			t.Errorf("ValidateRequired(%q) = %v, want ValidationError on title", v, err)
		}
	}
}
