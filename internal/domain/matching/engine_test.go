package matching

import (
	"testing"

	"github.com/google/uuid"
)

func TestCalculateFullMatch(t *testing.T) {
	py, sqlID := uuid.New(), uuid.New()
	reqs := []PathRequirement{
		{SkillID: py, SkillName: "Python", RequiredLevel: 3, IsCore: true},
		{SkillID: sqlID, SkillName: "Sql", RequiredLevel: 2, IsCore: false},
	}
	profile := []UserSkill{
		{SkillID: py, SkillName: "Python", ProficiencyLevel: 4},
		{SkillID: sqlID, SkillName: "Sql", ProficiencyLevel: 3},
	}

	res := Calculate(profile, reqs)
	if res.MatchPercentage != 100 {
		t.Fatalf("expected 100, got %v", res.MatchPercentage)
	}
	if res.CoreMissing {
		t.Fatalf("expected no missing core skill")
	}
	if len(res.SkillGaps) != 0 {
		t.Fatalf("expected no gaps, got %v", res.SkillGaps)
	}
	if len(res.MatchedSkills) != 2 {
		t.Fatalf("expected 2 matched skills, got %d", len(res.MatchedSkills))
	}
}

func TestCalculatePartialCredit(t *testing.T) {
	py := uuid.New()
	reqs := []PathRequirement{
		{SkillID: py, SkillName: "Python", RequiredLevel: 4, IsCore: true},
	}
	profile := []UserSkill{
		{SkillID: py, SkillName: "Python", ProficiencyLevel: 2},
	}

	// Sole core requirement carries all 100 points; level 2 of 4 earns half.
	res := Calculate(profile, reqs)
	if res.MatchPercentage != 50 {
		t.Fatalf("expected 50, got %v", res.MatchPercentage)
	}
	if res.CoreMissing {
		t.Fatalf("held skill should not flag coreMissing")
	}
	if len(res.SkillGaps) != 1 || res.SkillGaps[0] != "Python" {
		t.Fatalf("below-level core skill should appear as gap, got %v", res.SkillGaps)
	}
}

func TestCalculateMissingCore(t *testing.T) {
	py, awsID := uuid.New(), uuid.New()
	reqs := []PathRequirement{
		{SkillID: py, SkillName: "Python", RequiredLevel: 3, IsCore: true},
		{SkillID: awsID, SkillName: "Aws", RequiredLevel: 3, IsCore: true},
	}
	profile := []UserSkill{
		{SkillID: py, SkillName: "Python", ProficiencyLevel: 5},
	}

	res := Calculate(profile, reqs)
	if !res.CoreMissing {
		t.Fatalf("expected coreMissing")
	}
	if res.MatchPercentage != 50 {
		t.Fatalf("expected 50 (one of two core skills), got %v", res.MatchPercentage)
	}
	if len(res.SkillGaps) != 1 || res.SkillGaps[0] != "Aws" {
		t.Fatalf("expected [Aws] gaps, got %v", res.SkillGaps)
	}
}

func TestCalculateSupportingOnly(t *testing.T) {
	d := uuid.New()
	reqs := []PathRequirement{
		{SkillID: d, SkillName: "Docker", RequiredLevel: 2, IsCore: false},
	}
	profile := []UserSkill{
		{SkillID: d, SkillName: "Docker", ProficiencyLevel: 2},
	}

	// With no core skills the supporting class carries all 100 points.
	res := Calculate(profile, reqs)
	if res.MatchPercentage != 100 {
		t.Fatalf("expected 100, got %v", res.MatchPercentage)
	}
}

func TestCalculateEmptyRequirements(t *testing.T) {
	res := Calculate([]UserSkill{{SkillID: uuid.New(), ProficiencyLevel: 5}}, nil)
	if res.MatchPercentage != 0 {
		t.Fatalf("empty requirements should not read as a match, got %v", res.MatchPercentage)
	}
	if res.SkillGaps == nil || res.MatchedSkills == nil {
		t.Fatalf("expected empty, non-nil slices")
	}
}

func TestCalculateEmptyProfile(t *testing.T) {
	reqs := []PathRequirement{
		{SkillID: uuid.New(), SkillName: "Python", RequiredLevel: 3, IsCore: true},
		{SkillID: uuid.New(), SkillName: "Sql", RequiredLevel: 2, IsCore: false},
	}

	res := Calculate(nil, reqs)
	if res.MatchPercentage != 0 {
		t.Fatalf("expected 0, got %v", res.MatchPercentage)
	}
	if !res.CoreMissing {
		t.Fatalf("expected coreMissing")
	}
	if len(res.SkillGaps) != 2 {
		t.Fatalf("expected both skills as gaps, got %v", res.SkillGaps)
	}
}
