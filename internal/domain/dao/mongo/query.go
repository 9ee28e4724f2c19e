package mongo

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/connecthub/connecthub-go/internal/domain/dao"
)

// containsPattern builds a case-insensitive substring match.
func containsPattern(value string) primitive.Regex {
	return primitive.Regex{Pattern: value, Options: "i"}
}

// buildProfileFilter translates a ProfileQuery into a MongoDB filter.
// Exact-match fields (department, skill level) and partial-match fields
// combine with AND; the free-text search term runs through the $text
// index over name, job title, company and skill names.
func buildProfileFilter(q dao.ProfileQuery) bson.M {
	filter := bson.M{}

	if q.Search != "" {
		filter["$text"] = bson.M{"$search": q.Search}
	}
	if q.Name != "" {
		filter["name"] = containsPattern(q.Name)
	}
	if q.Department != "" {
		filter["department"] = q.Department
	}
	if q.Location != "" {
		filter["location"] = containsPattern(q.Location)
	}
	if q.Skill != "" {
		filter["skills.name"] = containsPattern(q.Skill)
	}
	if q.SkillLevel != "" {
		filter["skills.level"] = q.SkillLevel
	}
	if q.Project != "" {
		filter["projects.title"] = containsPattern(q.Project)
	}

	return filter
}
