package mongo

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/connecthub/connecthub-go/internal/domain/dao"
)

func TestBuildProfileFilterEmpty(t *testing.T) {
	filter := buildProfileFilter(dao.ProfileQuery{})
	if len(filter) != 0 {
		t.Errorf("empty query should produce an empty filter, got %v", filter)
	}
}

func TestBuildProfileFilterSearch(t *testing.T) {
	filter := buildProfileFilter(dao.ProfileQuery{Search: "platform"})

	text, ok := filter["$text"].(bson.M)
	if !ok {
		t.Fatalf("expected $text clause, got %v", filter)
	}
	if text["$search"] != "platform" {
		t.Errorf("$text should carry the raw term, got %v", text["$search"])
	}
}

func TestBuildProfileFilterExactFields(t *testing.T) {
	filter := buildProfileFilter(dao.ProfileQuery{
		Department: "Engineering",
		SkillLevel: "Expert",
	})

	if filter["department"] != "Engineering" {
		t.Errorf("department should match exactly, got %v", filter["department"])
	}
	if filter["skills.level"] != "Expert" {
		t.Errorf("skill level should match exactly, got %v", filter["skills.level"])
	}
}

func TestBuildProfileFilterPartialFields(t *testing.T) {
	filter := buildProfileFilter(dao.ProfileQuery{
		Skill:    "go",
		Project:  "search",
		Location: "berlin",
		Name:     "dana",
	})

	for field, want := range map[string]string{
		"skills.name":    "go",
		"projects.title": "search",
		"location":       "berlin",
		"name":           "dana",
	} {
		re, ok := filter[field].(primitive.Regex)
		if !ok {
			t.Errorf("%s should be a regex, got %v", field, filter[field])
			continue
		}
		if re.Pattern != want || re.Options != "i" {
			t.Errorf("%s: expected /%s/i, got /%s/%s", field, want, re.Pattern, re.Options)
		}
	}
}

func TestBuildProfileFilterCombines(t *testing.T) {
	filter := buildProfileFilter(dao.ProfileQuery{
		Search:     "ml",
		Department: "Research",
	})

	if _, ok := filter["$text"]; !ok {
		t.Error("combined query should keep the search clause")
	}
	if filter["department"] != "Research" {
		t.Error("combined query should keep the department clause")
	}
}
