package matching

import (
	"math"

	"github.com/google/uuid"
)

type UserSkill struct {
	SkillID          uuid.UUID
	SkillName        string
	ProficiencyLevel int
}

type PathRequirement struct {
	SkillID       uuid.UUID
	SkillName     string
	RequiredLevel int
	IsCore        bool
}

type MatchedSkill struct {
	SkillID           uuid.UUID
	SkillName         string
	ScoreContribution int
}

type Result struct {
	MatchPercentage float64
	CoreMissing     bool
	MatchedSkills   []MatchedSkill
	SkillGaps       []string
}

// Calculate scores a profile against one career path's requirements.
// Core skills carry 70 points split evenly, supporting skills 30; a
// partially met requirement contributes proportionally to how close the
// profile's proficiency is to the required level.
func Calculate(userSkills []UserSkill, reqs []PathRequirement) Result {
	userBySkillID := make(map[uuid.UUID]UserSkill, len(userSkills))
	for _, us := range userSkills {
		if us.SkillID == uuid.Nil {
			continue
		}
		userBySkillID[us.SkillID] = us
	}

	core := make([]PathRequirement, 0)
	supporting := make([]PathRequirement, 0)
	for _, r := range reqs {
		if r.SkillID == uuid.Nil {
			continue
		}
		if r.IsCore {
			core = append(core, r)
		} else {
			supporting = append(supporting, r)
		}
	}

	corePer := 0.0
	if len(core) > 0 {
		corePer = 70.0 / float64(len(core))
	}
	supportingPer := 0.0
	if len(supporting) > 0 {
		supportingPer = 30.0 / float64(len(supporting))
	}

	// An empty requirement set should not read as a perfect match.
	if len(core) == 0 && len(supporting) == 0 {
		return Result{MatchedSkills: []MatchedSkill{}, SkillGaps: []string{}}
	}
	if len(core) == 0 {
		supportingPer = 100.0 / float64(len(supporting))
	}
	if len(supporting) == 0 {
		corePer = 100.0 / float64(len(core))
	}

	scoreReq := func(us UserSkill, r PathRequirement, weight float64) float64 {
		reqLvl := clampInt(r.RequiredLevel, 1, 5)
		usrLvl := clampInt(us.ProficiencyLevel, 0, 5)
		if usrLvl <= 0 {
			return 0
		}
		if usrLvl >= reqLvl {
			return weight
		}
		return weight * (float64(usrLvl) / float64(reqLvl))
	}

	var total float64
	matched := make([]MatchedSkill, 0, len(reqs))
	gaps := make([]string, 0)
	coreMissing := false

	for _, r := range core {
		us, ok := userBySkillID[r.SkillID]
		if !ok {
			coreMissing = true
			gaps = append(gaps, r.SkillName)
			continue
		}
		contrib := scoreReq(us, r, corePer)
		total += contrib
		matched = append(matched, MatchedSkill{SkillID: r.SkillID, SkillName: r.SkillName, ScoreContribution: int(math.Round(contrib))})
		if us.ProficiencyLevel < r.RequiredLevel {
			gaps = append(gaps, r.SkillName)
		}
	}

	for _, r := range supporting {
		us, ok := userBySkillID[r.SkillID]
		if !ok {
			gaps = append(gaps, r.SkillName)
			continue
		}
		contrib := scoreReq(us, r, supportingPer)
		total += contrib
		matched = append(matched, MatchedSkill{SkillID: r.SkillID, SkillName: r.SkillName, ScoreContribution: int(math.Round(contrib))})
	}

	pct := math.Round(total*100) / 100
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	return Result{
		MatchPercentage: pct,
		CoreMissing:     coreMissing,
		MatchedSkills:   matched,
		SkillGaps:       gaps,
	}
}

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
