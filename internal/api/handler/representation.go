package handler

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/skillswap/skillswap-api/internal/core/domain"
)

// representation pairs an outbound JSON shape with the record it projects.
type representation struct {
	name     string
	response reflect.Type
	record   reflect.Type
	// allow, when set, is the exact field set exposed. Otherwise the
	// representation must carry every field of the record.
	allow []string
}

var representations = []representation{
	{name: "skill", response: reflect.TypeOf(skillResponse{}), record: reflect.TypeOf(domain.Skill{})},
	{name: "message", response: reflect.TypeOf(messageResponse{}), record: reflect.TypeOf(domain.Message{})},
	{name: "user", response: reflect.TypeOf(userResponse{}), record: reflect.TypeOf(domain.User{}), allow: []string{"id", "username", "email"}},
}

// CheckRepresentations verifies that every full-fields representation
// exposes exactly the fields of its record and that allowlisted ones expose
// exactly their allowlist. It is run once at startup.
func CheckRepresentations() error {
	for _, r := range representations {
		got := jsonFields(r.response)
		want := r.allow
		if want == nil {
			want = jsonFields(r.record)
		}
		if !sameFields(got, want) {
			return fmt.Errorf("%s representation fields %v do not match %v", r.name, got, want)
		}
	}
	return nil
}

// jsonFields lists the wire names of t's exported fields, skipping "-".
func jsonFields(t reflect.Type) []string {
	fields := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		fields = append(fields, name)
	}
	return fields
}

func sameFields(a, b []string) bool {
	a, b = slices.Clone(a), slices.Clone(b)
	slices.Sort(a)
	slices.Sort(b)
	return slices.Equal(a, b)
}
