package usecase

import (
	"context"
	"strings"
	"time"

	"career-compass/internal/domain/matching"
	"career-compass/internal/domain/user"
	"career-compass/internal/repository"

	"github.com/google/uuid"
)

type RecommendationItem struct {
	ID              uuid.UUID `json:"id"`
	CareerPathID    uuid.UUID `json:"career_path_id"`
	CareerPathTitle string    `json:"career_path_title"`
	MatchPercentage float64   `json:"match_percentage"`
	SkillGaps       []string  `json:"skill_gaps"`
	GeneratedAt     time.Time `json:"generated_at"`
}

type DashboardSummary struct {
	Username           string `json:"username"`
	SkillsCount        int    `json:"skills_count"`
	CompletedResources int    `json:"completed_resources"`
}

type RecommendationUsecase interface {
	ListRecommendations(ctx context.Context) ([]RecommendationItem, error)
	GenerateRecommendations(ctx context.Context) ([]RecommendationItem, error)
	Dashboard(ctx context.Context) (DashboardSummary, error)
}

type Recommendation struct {
	users           user.Repository
	recommendations repository.RecommendationRepository
	userSkills      repository.UserSkillRepository
	progress        repository.UserProgressRepository
	careers         repository.CareerPathRepository
	links           repository.CareerPathSkillRepository
}

func NewRecommendationUsecase(
	users user.Repository,
	recommendations repository.RecommendationRepository,
	userSkills repository.UserSkillRepository,
	progress repository.UserProgressRepository,
	careers repository.CareerPathRepository,
	links repository.CareerPathSkillRepository,
) *Recommendation {
	return &Recommendation{
		users:           users,
		recommendations: recommendations,
		userSkills:      userSkills,
		progress:        progress,
		careers:         careers,
		links:           links,
	}
}

func (u *Recommendation) ListRecommendations(ctx context.Context) ([]RecommendationItem, error) {
	demo, err := u.users.GetOrCreateDemo(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	recs, err := u.recommendations.FindByUserID(ctx, demo.ID)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]RecommendationItem, 0, len(recs))
	for _, rec := range recs {
		gaps := rec.SkillGaps
		if gaps == nil {
			gaps = []string{}
		}
		out = append(out, RecommendationItem{
			ID:              rec.ID,
			CareerPathID:    rec.CareerPathID,
			CareerPathTitle: rec.CareerPathTitle,
			MatchPercentage: rec.MatchPercentage,
			SkillGaps:       gaps,
			GeneratedAt:     rec.GeneratedAt,
		})
	}
	return out, nil
}

// GenerateRecommendations scores the demo profile against every career
// path and stores one recommendation per path.
func (u *Recommendation) GenerateRecommendations(ctx context.Context) ([]RecommendationItem, error) {
	demo, err := u.users.GetOrCreateDemo(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	held, err := u.userSkills.FindByUserID(ctx, demo.ID)
	if err != nil {
		return nil, ErrInternal
	}
	profile := make([]matching.UserSkill, 0, len(held))
	for _, us := range held {
		profile = append(profile, matching.UserSkill{
			SkillID:          us.SkillID,
			SkillName:        us.SkillName,
			ProficiencyLevel: us.ProficiencyLevel,
		})
	}

	paths, err := u.careers.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]RecommendationItem, 0, len(paths))
	for _, path := range paths {
		linkRows, err := u.links.ListByCareerPath(ctx, path.ID)
		if err != nil {
			return nil, ErrInternal
		}
		reqs := make([]matching.PathRequirement, 0, len(linkRows))
		for _, l := range linkRows {
			reqs = append(reqs, matching.PathRequirement{
				SkillID:       l.SkillID,
				SkillName:     l.SkillName,
				RequiredLevel: l.ProficiencyLevel,
				IsCore:        l.IsCore,
			})
		}

		result := matching.Calculate(profile, reqs)
		created, err := u.recommendations.Create(ctx, repository.Recommendation{
			UserID:          demo.ID,
			CareerPathID:    path.ID,
			MatchPercentage: result.MatchPercentage,
			SkillGaps:       result.SkillGaps,
		})
		if err != nil {
			return nil, ErrInternal
		}

		out = append(out, RecommendationItem{
			ID:              created.ID,
			CareerPathID:    path.ID,
			CareerPathTitle: path.Title,
			MatchPercentage: result.MatchPercentage,
			SkillGaps:       result.SkillGaps,
			GeneratedAt:     created.GeneratedAt,
		})
	}
	return out, nil
}

// Dashboard summarizes the demo profile: how many skills it holds and
// how many learning resources it has completed.
func (u *Recommendation) Dashboard(ctx context.Context) (DashboardSummary, error) {
	demo, err := u.users.GetOrCreateDemo(ctx)
	if err != nil {
		return DashboardSummary{}, ErrInternal
	}

	skillsCount, err := u.userSkills.CountByUserID(ctx, demo.ID)
	if err != nil {
		return DashboardSummary{}, ErrInternal
	}
	completed, err := u.progress.CountCompletedByUserID(ctx, demo.ID)
	if err != nil {
		return DashboardSummary{}, ErrInternal
	}

	username := demo.Email
	if at := strings.IndexByte(username, '@'); at > 0 {
		username = username[:at]
	}

	return DashboardSummary{
		Username:           username,
		SkillsCount:        skillsCount,
		CompletedResources: completed,
	}, nil
}

var _ RecommendationUsecase = (*Recommendation)(nil)
