package mongo

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/skillswap/skillswap-api/internal/core/domain"
	"github.com/skillswap/skillswap-api/internal/core/ports"
)

func TestParseID(t *testing.T) {
	oid := primitive.NewObjectID()
	got, ok := parseID(oid.Hex())
	if !ok || got != oid {
		t.Fatalf("parseID(%s) = %v, %v", oid.Hex(), got, ok)
	}

	for _, bad := range []string{"", "42", "not-an-object-id", oid.Hex() + "00"} {
		if _, ok := parseID(bad); ok {
			t.Errorf("parseID(%q) accepted a malformed id", bad)
		}
	}
}

func TestSkillListFilter(t *testing.T) {
	offering := true
	filter := skillListFilter(ports.SkillFilter{
		UserID:     "u1",
		Category:   "music",
		Level:      "expert",
		IsOffering: &offering,
		Search:     "c++",
	})

	if filter["user_id"] != "u1" || filter["category"] != "music" || filter["level"] != "expert" {
		t.Fatalf("unexpected equality filters: %v", filter)
	}
	if filter["is_offering"] != true {
		t.Fatalf("expected is_offering filter, got %v", filter["is_offering"])
	}

	or, ok := filter["$or"].(bson.A)
	if !ok || len(or) != 2 {
		t.Fatalf("expected $or with 2 clauses, got %v", filter["$or"])
	}
	title := or[0].(bson.M)["title"].(primitive.Regex)
	if title.Pattern != `c\+\+` || title.Options != "i" {
		t.Fatalf("search must be escaped and case-insensitive, got %+v", title)
	}

	if len(skillListFilter(ports.SkillFilter{})) != 0 {
		t.Fatal("empty filter must match everything")
	}
}

func TestSkillDocument_RoundTrip(t *testing.T) {
	in := &domain.Skill{
		UserID:      "u1",
		Title:       "Guitar",
		Description: "basics",
		Category:    "music",
		Level:       domain.LevelBeginner,
		IsOffering:  true,
	}

	doc := newSkillDocument(in)
	doc.ID = primitive.NewObjectID()
	out := doc.toDomain()

	if out.ID != doc.ID.Hex() || out.Title != in.Title || out.Level != in.Level || !out.IsOffering {
		t.Fatalf("unexpected skill: %+v", out)
	}

	set := doc.writableFields()
	if _, ok := set["created_at"]; ok {
		t.Error("created_at must not be writable")
	}
	if _, ok := set["_id"]; ok {
		t.Error("_id must not be writable")
	}
}
