package seed

import (
	"fmt"
	"math/rand"
	"strings"

	"nexusportal/internal/portal"
)

// The generators mirror the demo dataset of the original portal: a bench of
// consultants and a book of engagements with partially filled staffing
// needs. A fixed source seed keeps the dataset identical across fresh
// stores so list output and tests are reproducible.
const generatorSeed = 20231117

var (
	roles       = []string{"Associate", "Senior Consultant", "Manager", "Associate Partner", "Partner", "Principal", "Analyst"}
	specialties = []string{"Digital Strategy", "Data Analytics", "Supply Chain", "Change Management", "M&A", "Cloud Architecture", "Sustainability", "Marketing", "Legal"}
	firstNames  = []string{"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda", "David", "Elizabeth", "William", "Barbara", "Richard", "Susan", "Joseph", "Jessica", "Thomas", "Sarah", "Charles", "Karen"}
	lastNames   = []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson"}
	clients     = []string{"Acme Corp", "Globex Inc", "Soylent Corp", "Initech", "Umbrella Corp", "Stark Ind", "Wayne Ent", "Cyberdyne", "Massive Dynamic", "Hooli"}
	projects    = []string{"Transformation", "Optimization", "Growth Strategy", "Due Diligence", "Implementation", "Migration", "Audit", "Launch"}
)

// Consultants generates n consultants with ids c-gen-0..c-gen-(n-1).
func Consultants(n int) []portal.Consultant {
	rng := rand.New(rand.NewSource(generatorSeed))
	out := make([]portal.Consultant, 0, n)
	for i := 0; i < n; i++ {
		role := roles[rng.Intn(len(roles))]
		var rate float64
		switch role {
		case "Partner", "Principal":
			rate = float64(800 + rng.Intn(400))
		case "Manager":
			rate = float64(400 + rng.Intn(200))
		default:
			rate = float64(200 + rng.Intn(150))
		}
		availability := portal.Available
		if rng.Float64() <= 0.3 {
			if rng.Float64() > 0.5 {
				availability = portal.OnBench
			} else {
				availability = portal.Assigned
			}
		}
		out = append(out, portal.Consultant{
			ID:           fmt.Sprintf("c-gen-%d", i),
			Name:         fmt.Sprintf("%s %s", firstNames[rng.Intn(len(firstNames))], lastNames[rng.Intn(len(lastNames))]),
			Role:         role,
			Rate:         rate,
			Avatar:       fmt.Sprintf("https://i.pravatar.cc/150?u=%d", i+10),
			Specialty:    specialties[rng.Intn(len(specialties))],
			Availability: availability,
		})
	}
	return out
}

// Engagements generates n engagements with ids e-gen-0..e-gen-(n-1),
// staffed from the given consultant pool. Team and filled staffing needs
// are kept consistent: each team entry appears exactly once and matches a
// FilledBy value.
func Engagements(n int, consultants []portal.Consultant) []portal.Engagement {
	rng := rand.New(rand.NewSource(generatorSeed + 1))
	out := make([]portal.Engagement, 0, n)
	for i := 0; i < n; i++ {
		client := clients[rng.Intn(len(clients))]
		projectType := projects[rng.Intn(len(projects))]

		status := portal.StatusCompleted
		if rng.Float64() > 0.7 {
			status = portal.StatusPipeline
		} else if rng.Float64() > 0.3 {
			status = portal.StatusActive
		}

		needsCount := rng.Intn(4) + 1
		needs := make([]portal.StaffingNeed, 0, needsCount)
		var team []string
		onTeam := make(map[string]struct{})
		for j := 0; j < needsCount; j++ {
			need := portal.StaffingNeed{
				ID:     fmt.Sprintf("need-%d-%d", i, j),
				Role:   roles[rng.Intn(len(roles))],
				Skills: []string{specialties[rng.Intn(len(specialties))]},
			}
			if rng.Float64() > 0.6 && status == portal.StatusActive && len(consultants) > 0 {
				filler := consultants[rng.Intn(len(consultants))]
				if _, taken := onTeam[filler.ID]; !taken {
					need.FilledBy = filler.ID
					onTeam[filler.ID] = struct{}{}
					team = append(team, filler.ID)
				}
			}
			needs = append(needs, need)
		}

		pricing := portal.PricingTimeAndMat
		if rng.Float64() > 0.5 {
			pricing = portal.PricingFixedFee
		}

		out = append(out, portal.Engagement{
			ID:            fmt.Sprintf("e-gen-%d", i),
			ClientName:    client,
			ProjectName:   fmt.Sprintf("%s Phase %d", projectType, rng.Intn(3)+1),
			Status:        status,
			StartDate:     "2024-01-15",
			EndDate:       "2024-06-15",
			PricingModel:  pricing,
			Budget:        float64(rng.Intn(1000000) + 50000),
			Description:   fmt.Sprintf("Strategic %s initiative for %s.", strings.ToLower(projectType), client),
			Team:          team,
			StaffingNeeds: needs,
		})
	}
	return out
}
