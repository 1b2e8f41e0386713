package handler

import (
	"encoding/json"
	"reflect"
	"slices"
	"testing"
	"time"

	"github.com/skillswap/skillswap-api/internal/core/domain"
)

func TestCheckRepresentations(t *testing.T) {
	if err := CheckRepresentations(); err != nil {
		t.Fatal(err)
	}
}

func TestSkillRepresentation_HasEveryRecordField(t *testing.T) {
	got := jsonFields(reflect.TypeOf(skillResponse{}))
	want := jsonFields(reflect.TypeOf(domain.Skill{}))
	if !sameFields(got, want) {
		t.Fatalf("skill representation %v, record %v", got, want)
	}
}

func TestMessageRepresentation_HasEveryRecordField(t *testing.T) {
	got := jsonFields(reflect.TypeOf(messageResponse{}))
	want := jsonFields(reflect.TypeOf(domain.Message{}))
	if !sameFields(got, want) {
		t.Fatalf("message representation %v, record %v", got, want)
	}
}

func TestUserRepresentation_IsAllowlist(t *testing.T) {
	u := &domain.User{
		ID:           "u1",
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$secret",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	b, err := json.Marshal(toUserResponse(u))
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatal(err)
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	if want := []string{"email", "id", "username"}; !slices.Equal(keys, want) {
		t.Fatalf("expected keys %v, got %v", want, keys)
	}
	if m["username"] != "alice" || m["email"] != "alice@example.com" || m["id"] != "u1" {
		t.Fatalf("unexpected values: %v", m)
	}
}

func TestSkillRepresentation_RoundTripsValues(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	s := &domain.Skill{
		ID: "s1", UserID: "u1", Title: "Guitar", Description: "chords",
		Category: "music", Level: domain.LevelExpert, IsOffering: true,
		CreatedAt: created, UpdatedAt: created.Add(time.Hour),
	}

	b, err := json.Marshal(toSkillResponse(s))
	if err != nil {
		t.Fatal(err)
	}
	var back domain.Skill
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if back != *s {
		t.Fatalf("representation lost data:\n got %+v\nwant %+v", back, *s)
	}
}

func TestSameFields(t *testing.T) {
	if !sameFields([]string{"b", "a"}, []string{"a", "b"}) {
		t.Error("order must not matter")
	}
	if sameFields([]string{"a"}, []string{"a", "b"}) {
		t.Error("missing field must be detected")
	}
}

func TestMessageRepresentation_RoundTripsValues(t *testing.T) {
	m := &domain.Message{
		ID: "m1", SenderID: "u1", RecipientID: "u2", Content: "hello",
		IsRead: true, CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	b, err := json.Marshal(toMessageResponse(m))
	if err != nil {
		t.Fatal(err)
	}
	var back domain.Message
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if back != *m {
		t.Fatalf("representation lost data:\n got %+v\nwant %+v", back, *m)
	}
}
