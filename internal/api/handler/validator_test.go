package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/skillswap/skillswap-api/internal/core/domain"
)

func TestValidator_ReportsJSONFieldNames(t *testing.T) {
	err := NewValidator().Validate(&skillRequest{Level: "beginner"})

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Fields["title"] != "title is required" || ve.Fields["category"] != "category is required" {
		t.Fatalf("unexpected fields: %v", ve.Fields)
	}
	if _, ok := ve.Fields["Title"]; ok {
		t.Fatalf("struct field names must not leak: %v", ve.Fields)
	}
}

func TestValidator_PatchSkipsNilFields(t *testing.T) {
	if err := NewValidator().Validate(&skillPatchRequest{}); err != nil {
		t.Fatalf("empty patch must be valid, got %v", err)
	}
	err := NewValidator().Validate(&skillPatchRequest{Level: strPtr("guru")})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Fields["level"] == "" {
		t.Fatalf("expected level error, got %v", err)
	}
}

func TestBindAndValidate_MalformedJSON(t *testing.T) {
	c, _ := newContext(http.MethodPost, "/v1/skills", `{"title":`, alice)
	err := bindAndValidate(c, &skillRequest{})

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest || he.Message != "invalid payload" {
		t.Fatalf("expected 400 invalid payload, got %v", err)
	}
}

func TestValidator_RejectsWhitespaceOnlyText(t *testing.T) {
	cases := []struct {
		name  string
		req   any
		field string
	}{
		{"skill title", &skillRequest{Title: "   ", Category: "music", Level: "beginner"}, "title"},
		{"skill category", &skillRequest{Title: "Guitar", Category: "\t\n", Level: "beginner"}, "category"},
		{"skill patch title", &skillPatchRequest{Title: strPtr("  ")}, "title"},
		{"skill patch category", &skillPatchRequest{Category: strPtr(" ")}, "category"},
		{"message content", &messageRequest{RecipientID: "u2", Content: "   "}, "content"},
		{"message recipient", &messageRequest{RecipientID: " ", Content: "hi"}, "recipient_id"},
		{"message patch content", &messagePatchRequest{Content: strPtr("\t")}, "content"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := NewValidator().Validate(tc.req)
			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Fields[tc.field] != tc.field+" may not be blank" {
				t.Fatalf("unexpected fields: %v", ve.Fields)
			}
		})
	}
}

func TestValidator_AcceptsPaddedText(t *testing.T) {
	if err := NewValidator().Validate(&skillRequest{Title: " Guitar ", Category: "music", Level: "beginner"}); err != nil {
		t.Fatalf("padded title must be valid, got %v", err)
	}
}
