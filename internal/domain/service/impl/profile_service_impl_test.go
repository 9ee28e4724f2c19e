package impl

import (
	"context"
	"testing"
	"time"

	"github.com/connecthub/connecthub-go/internal/domain/entity"
	"github.com/connecthub/connecthub-go/internal/domain/service"
	"github.com/connecthub/connecthub-go/internal/dto/request"
	"github.com/connecthub/connecthub-go/internal/testutil/mocks"
)

func seedProfile(repo *mocks.MockProfileRepository) string {
	id := entity.NewID()
	repo.Seed(&entity.Profile{
		ID:    id,
		Name:  "Dana Smith",
		Email: "dana@example.com",
		Skills: []entity.Skill{
			{ID: "skill-1", Name: "Go", Level: entity.LevelExpert, Endorsements: []entity.Endorsement{}},
		},
		Projects: []entity.Project{
			{ID: "project-1", Title: "Search revamp"},
		},
		Experiences: []entity.Experience{
			{ID: "exp-1", Title: "Engineer"},
		},
		Education: []entity.Education{
			{ID: "edu-1", Institution: "MIT"},
		},
		Certifications: []entity.Certification{
			{ID: "cert-1", Name: "CKA"},
		},
	})
	return id
}

func TestProfileService_Create(t *testing.T) {
	repo := mocks.NewMockProfileRepository()
	svc := NewProfileService(repo)

	resp, err := svc.Create(context.Background(), &request.CreateProfileRequest{
		Name:  "Alex Chen",
		Email: "Alex@Example.com",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if resp.Email != "alex@example.com" {
		t.Errorf("email should be normalized, got %v", resp.Email)
	}

	stored := repo.Stored(resp.ID)
	if stored == nil {
		t.Fatal("profile was not persisted")
	}
	if stored.HasCredential() {
		t.Error("administratively created profiles must carry no credential")
	}
}

func TestProfileService_Create_DuplicateEmail(t *testing.T) {
	repo := mocks.NewMockProfileRepository()
	svc := NewProfileService(repo)
	seedProfile(repo)

	_, err := svc.Create(context.Background(), &request.CreateProfileRequest{
		Name: "Dup", Email: "dana@example.com",
	})
	if err != service.ErrEmailExists {
		t.Errorf("error = %v, want %v", err, service.ErrEmailExists)
	}
}

func TestProfileService_Get(t *testing.T) {
	repo := mocks.NewMockProfileRepository()
	svc := NewProfileService(repo)
	id := seedProfile(repo)

	resp, err := svc.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if resp.Name != "Dana Smith" {
		t.Errorf("Name = %v", resp.Name)
	}
	if resp.Connections != nil {
		t.Error("Get() must not expose connections")
	}
}

func TestProfileService_Get_NotFound(t *testing.T) {
	repo := mocks.NewMockProfileRepository()
	svc := NewProfileService(repo)

	_, err := svc.Get(context.Background(), entity.NewID())
	if err != service.ErrProfileNotFound {
		t.Errorf("error = %v, want %v", err, service.ErrProfileNotFound)
	}
}

func TestProfileService_List_Filters(t *testing.T) {
	repo := mocks.NewMockProfileRepository()
	svc := NewProfileService(repo)
	seedProfile(repo)
	repo.Seed(&entity.Profile{
		ID: entity.NewID(), Name: "Alex Chen", Email: "alex@example.com", Department: "Research",
	})

	results, err := svc.List(context.Background(), &request.ListProfilesQuery{Skill: "go"})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(results) != 1 || results[0].Name != "Dana Smith" {
		t.Errorf("skill filter should match one profile, got %d", len(results))
	}

	// The literal "undefined" is treated as no filter.
	results, err = svc.List(context.Background(), &request.ListProfilesQuery{Skill: "undefined"})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(results) != 2 {
		t.Errorf("sentinel filter should match all profiles, got %d", len(results))
	}
}

func TestProfileService_Update_NotFound(t *testing.T) {
	repo := mocks.NewMockProfileRepository()
	svc := NewProfileService(repo)

	name := "New Name"
	_, err := svc.Update(context.Background(), entity.NewID(), &request.UpdateProfileRequest{Name: &name})
	if err != service.ErrProfileNotFound {
		t.Errorf("error = %v, want %v", err, service.ErrProfileNotFound)
	}
}

func TestProfileService_Delete(t *testing.T) {
	repo := mocks.NewMockProfileRepository()
	svc := NewProfileService(repo)
	id := seedProfile(repo)

	if err := svc.Delete(context.Background(), id); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if repo.Stored(id) != nil {
		t.Error("profile should be removed")
	}

	if err := svc.Delete(context.Background(), id); err != service.ErrProfileNotFound {
		t.Errorf("second delete error = %v, want %v", err, service.ErrProfileNotFound)
	}
}

func TestProfileService_RecordView(t *testing.T) {
	repo := mocks.NewMockProfileRepository()
	svc := NewProfileService(repo)
	id := seedProfile(repo)

	if err := svc.RecordView(context.Background(), id); err != nil {
		t.Fatalf("RecordView() error = %v", err)
	}
	if err := svc.RecordView(context.Background(), id); err != nil {
		t.Fatalf("RecordView() error = %v", err)
	}

	if got := repo.Stored(id).ProfileViews; got != 2 {
		t.Errorf("ProfileViews = %v, want 2", got)
	}
}

func TestProfileService_AddSkill(t *testing.T) {
	repo := mocks.NewMockProfileRepository()
	svc := NewProfileService(repo)
	id := seedProfile(repo)

	resp, err := svc.AddSkill(context.Background(), id, &request.AddSkillRequest{
		Name: "Kubernetes", Level: "Advanced", YearsOfExperience: 3,
	})
	if err != nil {
		t.Fatalf("AddSkill() error = %v", err)
	}
	if len(resp.Skills) != 2 {
		t.Fatalf("Skills = %d, want 2", len(resp.Skills))
	}

	added := resp.Skills[1]
	if added.ID == "" {
		t.Error("added skill should get a generated id")
	}
	if added.Endorsements == nil || len(added.Endorsements) != 0 {
		t.Error("new skill should start with an empty endorsements list")
	}
}

func TestProfileService_UpdateSkill_ShallowMerge(t *testing.T) {
	repo := mocks.NewMockProfileRepository()
	svc := NewProfileService(repo)
	id := seedProfile(repo)

	level := "Intermediate"
	resp, err := svc.UpdateSkill(context.Background(), id, "skill-1", &request.UpdateSkillRequest{Level: &level})
	if err != nil {
		t.Fatalf("UpdateSkill() error = %v", err)
	}

	skill := resp.Skills[0]
	if skill.Level != entity.LevelIntermediate {
		t.Errorf("Level = %v, want Intermediate", skill.Level)
	}
	if skill.Name != "Go" {
		t.Error("unset fields should be left unchanged")
	}
}

func TestProfileService_UpdateSkill_NotFound(t *testing.T) {
	repo := mocks.NewMockProfileRepository()
	svc := NewProfileService(repo)
	id := seedProfile(repo)

	name := "Rust"
	_, err := svc.UpdateSkill(context.Background(), id, "missing", &request.UpdateSkillRequest{Name: &name})
	if err != service.ErrSkillNotFound {
		t.Errorf("error = %v, want %v", err, service.ErrSkillNotFound)
	}
}

func TestProfileService_DeleteSkill(t *testing.T) {
	repo := mocks.NewMockProfileRepository()
	svc := NewProfileService(repo)
	id := seedProfile(repo)

	resp, err := svc.DeleteSkill(context.Background(), id, "skill-1")
	if err != nil {
		t.Fatalf("DeleteSkill() error = %v", err)
	}
	if len(resp.Skills) != 0 {
		t.Errorf("Skills = %d, want 0", len(resp.Skills))
	}

	if _, err := svc.DeleteSkill(context.Background(), id, "skill-1"); err != service.ErrSkillNotFound {
		t.Errorf("second delete error = %v, want %v", err, service.ErrSkillNotFound)
	}
}

func TestProfileService_EndorseSkill(t *testing.T) {
	repo := mocks.NewMockProfileRepository()
	svc := NewProfileService(repo)
	id := seedProfile(repo)
	endorser := entity.NewID()
	repo.Seed(&entity.Profile{ID: endorser, Name: "Peer One", Email: "peer1@example.com"})

	resp, err := svc.EndorseSkill(context.Background(), id, "skill-1", &request.EndorseSkillRequest{EndorserID: endorser})
	if err != nil {
		t.Fatalf("EndorseSkill() error = %v", err)
	}
	if len(resp.Skills[0].Endorsements) != 1 {
		t.Fatalf("Endorsements = %d, want 1", len(resp.Skills[0].Endorsements))
	}
	if resp.Skills[0].Endorsements[0].EndorsedAt.IsZero() {
		t.Error("endorsement should carry a timestamp")
	}

	// The same endorser cannot endorse the same skill twice.
	_, err = svc.EndorseSkill(context.Background(), id, "skill-1", &request.EndorseSkillRequest{EndorserID: endorser})
	if err != service.ErrAlreadyEndorsed {
		t.Errorf("error = %v, want %v", err, service.ErrAlreadyEndorsed)
	}

	// A different endorser is fine.
	other := entity.NewID()
	repo.Seed(&entity.Profile{ID: other, Name: "Peer Two", Email: "peer2@example.com"})
	resp, err = svc.EndorseSkill(context.Background(), id, "skill-1", &request.EndorseSkillRequest{EndorserID: other})
	if err != nil {
		t.Fatalf("EndorseSkill() error = %v", err)
	}
	if len(resp.Skills[0].Endorsements) != 2 {
		t.Errorf("Endorsements = %d, want 2", len(resp.Skills[0].Endorsements))
	}
}

func TestProfileService_EndorseSkill_EndorserMissing(t *testing.T) {
	repo := mocks.NewMockProfileRepository()
	svc := NewProfileService(repo)
	id := seedProfile(repo)

	// The endorser must be a real profile; a dangling reference is refused.
	_, err := svc.EndorseSkill(context.Background(), id, "skill-1", &request.EndorseSkillRequest{EndorserID: entity.NewID()})
	if err != service.ErrProfileNotFound {
		t.Errorf("error = %v, want %v", err, service.ErrProfileNotFound)
	}

	stored := repo.Stored(id)
	if len(stored.Skills[0].Endorsements) != 0 {
		t.Error("no endorsement should be recorded for a missing endorser")
	}
}

func TestProfileService_Projects(t *testing.T) {
	repo := mocks.NewMockProfileRepository()
	svc := NewProfileService(repo)
	id := seedProfile(repo)
	ctx := context.Background()

	resp, err := svc.AddProject(ctx, id, &request.AddProjectRequest{
		Title: "New thing", Technologies: []string{"go"},
	})
	if err != nil {
		t.Fatalf("AddProject() error = %v", err)
	}
	if len(resp.Projects) != 2 {
		t.Fatalf("Projects = %d, want 2", len(resp.Projects))
	}

	title := "Renamed"
	resp, err = svc.UpdateProject(ctx, id, "project-1", &request.UpdateProjectRequest{Title: &title})
	if err != nil {
		t.Fatalf("UpdateProject() error = %v", err)
	}
	if resp.Projects[0].Title != "Renamed" {
		t.Errorf("Title = %v", resp.Projects[0].Title)
	}

	if _, err := svc.UpdateProject(ctx, id, "missing", &request.UpdateProjectRequest{Title: &title}); err != service.ErrProjectNotFound {
		t.Errorf("error = %v, want %v", err, service.ErrProjectNotFound)
	}

	resp, err = svc.DeleteProject(ctx, id, "project-1")
	if err != nil {
		t.Fatalf("DeleteProject() error = %v", err)
	}
	if len(resp.Projects) != 1 {
		t.Errorf("Projects = %d, want 1", len(resp.Projects))
	}
}

func TestProfileService_Experiences(t *testing.T) {
	repo := mocks.NewMockProfileRepository()
	svc := NewProfileService(repo)
	id := seedProfile(repo)
	ctx := context.Background()

	resp, err := svc.AddExperience(ctx, id, &request.AddExperienceRequest{Title: "Staff Engineer", IsCurrent: true})
	if err != nil {
		t.Fatalf("AddExperience() error = %v", err)
	}
	if len(resp.Experiences) != 2 {
		t.Fatalf("Experiences = %d, want 2", len(resp.Experiences))
	}

	company := "ConnectHub"
	resp, err = svc.UpdateExperience(ctx, id, "exp-1", &request.UpdateExperienceRequest{Company: &company})
	if err != nil {
		t.Fatalf("UpdateExperience() error = %v", err)
	}
	if resp.Experiences[0].Company != "ConnectHub" {
		t.Errorf("Company = %v", resp.Experiences[0].Company)
	}

	if _, err := svc.DeleteExperience(ctx, id, "missing"); err != service.ErrExperienceNotFound {
		t.Errorf("error = %v, want %v", err, service.ErrExperienceNotFound)
	}

	resp, err = svc.DeleteExperience(ctx, id, "exp-1")
	if err != nil {
		t.Fatalf("DeleteExperience() error = %v", err)
	}
	if len(resp.Experiences) != 1 {
		t.Errorf("Experiences = %d, want 1", len(resp.Experiences))
	}
}

func TestProfileService_CurrentRoleClearsEndDate(t *testing.T) {
	repo := mocks.NewMockProfileRepository()
	svc := NewProfileService(repo)
	id := seedProfile(repo)
	ctx := context.Background()
	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	// A current experience added with an end date drops it.
	resp, err := svc.AddExperience(ctx, id, &request.AddExperienceRequest{
		Title: "Lead", IsCurrent: true, EndDate: &end,
	})
	if err != nil {
		t.Fatalf("AddExperience() error = %v", err)
	}
	if got := resp.Experiences[len(resp.Experiences)-1]; got.EndDate != nil {
		t.Errorf("current experience EndDate = %v, want nil", got.EndDate)
	}

	// Same rule for projects.
	resp, err = svc.AddProject(ctx, id, &request.AddProjectRequest{
		Title: "Live service", IsCurrent: true, EndDate: &end,
	})
	if err != nil {
		t.Fatalf("AddProject() error = %v", err)
	}
	if got := resp.Projects[len(resp.Projects)-1]; got.EndDate != nil {
		t.Errorf("current project EndDate = %v, want nil", got.EndDate)
	}

	// Flipping a stored entry to current clears its end date on update.
	if _, err := svc.UpdateExperience(ctx, id, "exp-1", &request.UpdateExperienceRequest{EndDate: &end}); err != nil {
		t.Fatalf("UpdateExperience() error = %v", err)
	}
	current := true
	resp, err = svc.UpdateExperience(ctx, id, "exp-1", &request.UpdateExperienceRequest{IsCurrent: &current})
	if err != nil {
		t.Fatalf("UpdateExperience() error = %v", err)
	}
	if resp.Experiences[0].EndDate != nil {
		t.Errorf("EndDate = %v, want nil after marking current", resp.Experiences[0].EndDate)
	}

	resp, err = svc.UpdateProject(ctx, id, "project-1", &request.UpdateProjectRequest{IsCurrent: &current, EndDate: &end})
	if err != nil {
		t.Fatalf("UpdateProject() error = %v", err)
	}
	if resp.Projects[0].EndDate != nil {
		t.Errorf("project EndDate = %v, want nil after marking current", resp.Projects[0].EndDate)
	}
}

func TestProfileService_Education(t *testing.T) {
	repo := mocks.NewMockProfileRepository()
	svc := NewProfileService(repo)
	id := seedProfile(repo)
	ctx := context.Background()

	resp, err := svc.AddEducation(ctx, id, &request.AddEducationRequest{Institution: "Stanford", Degree: "MS"})
	if err != nil {
		t.Fatalf("AddEducation() error = %v", err)
	}
	if len(resp.Education) != 2 {
		t.Fatalf("Education = %d, want 2", len(resp.Education))
	}

	degree := "PhD"
	resp, err = svc.UpdateEducation(ctx, id, "edu-1", &request.UpdateEducationRequest{Degree: &degree})
	if err != nil {
		t.Fatalf("UpdateEducation() error = %v", err)
	}
	if resp.Education[0].Degree != "PhD" {
		t.Errorf("Degree = %v", resp.Education[0].Degree)
	}

	resp, err = svc.DeleteEducation(ctx, id, "edu-1")
	if err != nil {
		t.Fatalf("DeleteEducation() error = %v", err)
	}
	if len(resp.Education) != 1 {
		t.Errorf("Education = %d, want 1", len(resp.Education))
	}
}

func TestProfileService_Certifications(t *testing.T) {
	repo := mocks.NewMockProfileRepository()
	svc := NewProfileService(repo)
	id := seedProfile(repo)
	ctx := context.Background()

	resp, err := svc.AddCertification(ctx, id, &request.AddCertificationRequest{Name: "AWS SA", Issuer: "AWS"})
	if err != nil {
		t.Fatalf("AddCertification() error = %v", err)
	}
	if len(resp.Certifications) != 2 {
		t.Fatalf("Certifications = %d, want 2", len(resp.Certifications))
	}

	issuer := "CNCF"
	resp, err = svc.UpdateCertification(ctx, id, "cert-1", &request.UpdateCertificationRequest{Issuer: &issuer})
	if err != nil {
		t.Fatalf("UpdateCertification() error = %v", err)
	}
	if resp.Certifications[0].Issuer != "CNCF" {
		t.Errorf("Issuer = %v", resp.Certifications[0].Issuer)
	}

	if _, err := svc.DeleteCertification(ctx, id, "missing"); err != service.ErrCertificationNotFound {
		t.Errorf("error = %v, want %v", err, service.ErrCertificationNotFound)
	}

	resp, err = svc.DeleteCertification(ctx, id, "cert-1")
	if err != nil {
		t.Fatalf("DeleteCertification() error = %v", err)
	}
	if len(resp.Certifications) != 1 {
		t.Errorf("Certifications = %d, want 1", len(resp.Certifications))
	}
}

func TestProfileService_SubEntityOnMissingProfile(t *testing.T) {
	repo := mocks.NewMockProfileRepository()
	svc := NewProfileService(repo)
	missing := entity.NewID()

	if _, err := svc.AddSkill(context.Background(), missing, &request.AddSkillRequest{Name: "Go"}); err != service.ErrProfileNotFound {
		t.Errorf("AddSkill error = %v, want %v", err, service.ErrProfileNotFound)
	}
	if _, err := svc.EndorseSkill(context.Background(), missing, "skill-1", &request.EndorseSkillRequest{EndorserID: "x"}); err != service.ErrProfileNotFound {
		t.Errorf("EndorseSkill error = %v, want %v", err, service.ErrProfileNotFound)
	}
}
