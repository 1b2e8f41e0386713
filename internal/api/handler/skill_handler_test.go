package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/skillswap/skillswap-api/internal/core/domain"
	"github.com/skillswap/skillswap-api/internal/core/ports"
)

type stubSkillService struct {
	listFn   func(ctx context.Context, actor domain.Actor, filter ports.SkillFilter) (*ports.ListSkillsResult, error)
	getFn    func(ctx context.Context, actor domain.Actor, id string) (*domain.Skill, error)
	createFn func(ctx context.Context, actor domain.Actor, in ports.SkillInput) (*domain.Skill, error)
	updateFn func(ctx context.Context, actor domain.Actor, id string, in ports.SkillInput) (*domain.Skill, error)
	patchFn  func(ctx context.Context, actor domain.Actor, id string, in ports.SkillPatch) (*domain.Skill, error)
	deleteFn func(ctx context.Context, actor domain.Actor, id string) error
}

func (s *stubSkillService) List(ctx context.Context, actor domain.Actor, filter ports.SkillFilter) (*ports.ListSkillsResult, error) {
	return s.listFn(ctx, actor, filter)
}

func (s *stubSkillService) Get(ctx context.Context, actor domain.Actor, id string) (*domain.Skill, error) {
	return s.getFn(ctx, actor, id)
}

func (s *stubSkillService) Create(ctx context.Context, actor domain.Actor, in ports.SkillInput) (*domain.Skill, error) {
	return s.createFn(ctx, actor, in)
}

func (s *stubSkillService) Update(ctx context.Context, actor domain.Actor, id string, in ports.SkillInput) (*domain.Skill, error) {
	return s.updateFn(ctx, actor, id, in)
}

func (s *stubSkillService) Patch(ctx context.Context, actor domain.Actor, id string, in ports.SkillPatch) (*domain.Skill, error) {
	return s.patchFn(ctx, actor, id, in)
}

func (s *stubSkillService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	return s.deleteFn(ctx, actor, id)
}

func sampleSkill() *domain.Skill {
	ts := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return &domain.Skill{
		ID: "665f1c2e8b3a4d0012345678", UserID: "u1", Title: "Guitar", Description: "Open chords",
		Category: "music", Level: domain.LevelBeginner, IsOffering: true, CreatedAt: ts, UpdatedAt: ts,
	}
}

func TestSkillHandler_List_ParsesFiltersAndPaging(t *testing.T) {
	stub := &stubSkillService{
		listFn: func(_ context.Context, actor domain.Actor, f ports.SkillFilter) (*ports.ListSkillsResult, error) {
			if actor.Authenticated() {
				t.Fatalf("expected anonymous actor")
			}
			if f.Category != "music" || f.Level != "beginner" || f.Search != "chord" || f.UserID != "u1" {
				t.Fatalf("unexpected filter: %+v", f)
			}
			if f.IsOffering == nil || !*f.IsOffering {
				t.Fatalf("expected is_offering=true")
			}
			if f.Page.Page != 2 || f.Page.Limit != 1 {
				t.Fatalf("unexpected page: %+v", f.Page)
			}
			return &ports.ListSkillsResult{
				Items:      []*domain.Skill{sampleSkill()},
				Pagination: ports.Pagination{Total: 3, Page: 2, Limit: 1, TotalPages: 3},
			}, nil
		},
	}

	c, rec := newContext(http.MethodGet, "/v1/skills?category=music&level=beginner&search=chord&user_id=u1&is_offering=true&page=2&limit=1", "", domain.Anonymous)
	if err := NewSkillHandler(stub).List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decode(t, rec)
	data, ok := resp["data"].([]any)
	if !ok || len(data) != 1 {
		t.Fatalf("unexpected data: %v", resp["data"])
	}
	item := data[0].(map[string]any)
	for _, field := range []string{"id", "user_id", "title", "description", "category", "level", "is_offering", "created_at", "updated_at"} {
		if _, ok := item[field]; !ok {
			t.Errorf("missing field %q in %v", field, item)
		}
	}
	pg := resp["pagination"].(map[string]any)
	if pg["total"] != float64(3) || pg["total_pages"] != float64(3) {
		t.Fatalf("unexpected pagination: %v", pg)
	}
}

func TestSkillHandler_List_RejectsBadQuery(t *testing.T) {
	stub := &stubSkillService{}
	for _, target := range []string{"/v1/skills?limit=abc", "/v1/skills?page=-1", "/v1/skills?is_offering=maybe"} {
		c, _ := newContext(http.MethodGet, target, "", domain.Anonymous)
		err := NewSkillHandler(stub).List(c)
		var ve *domain.ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("%s: expected ValidationError, got %v", target, err)
		}
	}
}

func TestSkillHandler_Get_NotFound(t *testing.T) {
	stub := &stubSkillService{
		getFn: func(_ context.Context, _ domain.Actor, id string) (*domain.Skill, error) {
			return nil, domain.ErrSkillNotFound
		},
	}
	c, _ := newContext(http.MethodGet, "/v1/skills/x", "", domain.Anonymous)
	c.SetParamNames("id")
	c.SetParamValues("x")

	if err := NewSkillHandler(stub).Get(c); !errors.Is(err, domain.ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}
}

func TestSkillHandler_Create(t *testing.T) {
	stub := &stubSkillService{
		createFn: func(_ context.Context, actor domain.Actor, in ports.SkillInput) (*domain.Skill, error) {
			if actor != alice {
				t.Fatalf("unexpected actor %+v", actor)
			}
			if in.Title != "Guitar" || in.Level != "beginner" || in.Category != "music" || !in.IsOffering {
				t.Fatalf("unexpected input: %+v", in)
			}
			return sampleSkill(), nil
		},
	}

	body := `{"id":"ignored","title":"Guitar","category":"music","level":"beginner","is_offering":true}`
	c, rec := newContext(http.MethodPost, "/v1/skills", body, alice)
	if err := NewSkillHandler(stub).Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if resp := decode(t, rec); resp["id"] != "665f1c2e8b3a4d0012345678" {
		t.Fatalf("unexpected id: %v", resp["id"])
	}
}

func TestSkillHandler_Create_ValidationErrors(t *testing.T) {
	stub := &stubSkillService{
		createFn: func(context.Context, domain.Actor, ports.SkillInput) (*domain.Skill, error) {
			t.Fatal("service must not be called with an invalid payload")
			return nil, nil
		},
	}

	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{"missing title", `{"category":"music","level":"beginner"}`, "title"},
		{"bad level", `{"title":"t","category":"music","level":"guru"}`, "level"},
		{"wrong type", `{"title":"t","category":"music","level":"beginner","is_offering":"yes"}`, "is_offering"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newContext(http.MethodPost, "/v1/skills", tt.body, alice)
			err := NewSkillHandler(stub).Create(c)
			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if _, ok := ve.Fields[tt.wantField]; !ok {
				t.Fatalf("expected field %q in %v", tt.wantField, ve.Fields)
			}
		})
	}
}

func TestSkillHandler_Patch_PassesOnlyProvidedFields(t *testing.T) {
	stub := &stubSkillService{
		patchFn: func(_ context.Context, _ domain.Actor, id string, p ports.SkillPatch) (*domain.Skill, error) {
			if id != "s1" {
				t.Fatalf("unexpected id %q", id)
			}
			if p.Title == nil || *p.Title != "Bass" {
				t.Fatalf("expected title patch, got %+v", p)
			}
			if p.Category != nil || p.Level != nil || p.IsOffering != nil || p.Description != nil || p.UserID != nil {
				t.Fatalf("unexpected fields in patch: %+v", p)
			}
			s := sampleSkill()
			s.Title = *p.Title
			return s, nil
		},
	}

	c, rec := newContext(http.MethodPatch, "/v1/skills/s1", `{"title":"Bass"}`, alice)
	c.SetParamNames("id")
	c.SetParamValues("s1")
	if err := NewSkillHandler(stub).Patch(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if resp := decode(t, rec); resp["title"] != "Bass" {
		t.Fatalf("unexpected title: %v", resp["title"])
	}
}

func TestSkillHandler_Update_RequiresFullRepresentation(t *testing.T) {
	stub := &stubSkillService{}
	c, _ := newContext(http.MethodPut, "/v1/skills/s1", `{"title":"Bass"}`, alice)
	c.SetParamNames("id")
	c.SetParamValues("s1")

	err := NewSkillHandler(stub).Update(c)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := ve.Fields["category"]; !ok {
		t.Fatalf("expected category to be required, got %v", ve.Fields)
	}
}

func TestSkillHandler_Delete(t *testing.T) {
	stub := &stubSkillService{
		deleteFn: func(_ context.Context, _ domain.Actor, id string) error {
			if id != "s1" {
				t.Fatalf("unexpected id %q", id)
			}
			return nil
		},
	}
	c, rec := newContext(http.MethodDelete, "/v1/skills/s1", "", alice)
	c.SetParamNames("id")
	c.SetParamValues("s1")

	if err := NewSkillHandler(stub).Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestSkillHandler_PropagatesUnauthenticated(t *testing.T) {
	stub := &stubSkillService{
		deleteFn: func(context.Context, domain.Actor, string) error {
			return domain.ErrUnauthenticated
		},
	}
	c, _ := newContext(http.MethodDelete, "/v1/skills/s1", "", domain.Anonymous)
	if err := NewSkillHandler(stub).Delete(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
