package portal

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// DeriveProfile expands a consultant record into a full profile for the
// profile view. Profiles for consultants are never persisted; they are
// recomputed on demand and must come out identical for the same record,
// so every varying field is picked from the consultant id, not a RNG.
func DeriveProfile(c Consultant) UserProfile {
	h := fnv.New32a()
	h.Write([]byte(c.ID))
	seed := h.Sum32()

	locations := []string{"New York - 3WTC", "Chicago - Loop"}
	languages := []string{"French (Basic)", "German (Fluent)"}
	location := locations[seed%2]
	language := languages[(seed>>1)%2]
	tenureYears := seed%10 + 1

	email := strings.ToLower(strings.ReplaceAll(c.Name, " ", ".")) + "@nexus.com"
	phone := fmt.Sprintf("+1 (555) %03d-%04d", 100+seed%900, 1000+(seed>>4)%9000)

	return UserProfile{
		User: User{
			ID:         c.ID,
			Name:       c.Name,
			Role:       c.Role,
			Department: "Consulting Services",
			Avatar:     c.Avatar,
		},
		Email:     email,
		Phone:     phone,
		Location:  location,
		Timezone:  "EST (UTC-5)",
		Tenure:    fmt.Sprintf("%d Years", tenureYears),
		Path:      "Strategy & Operations",
		Guild:     c.Specialty,
		Languages: []string{"English (Native)", language},
		Expertise: []string{c.Specialty, "Project Management", "Client Relations"},
		Bio: fmt.Sprintf("%s is a dedicated %s specializing in %s. They have been with Nexus for several years and have delivered high-impact results across multiple industries.",
			c.Name, c.Role, c.Specialty),
		WorkExperience: []WorkExperience{
			{
				ID:          fmt.Sprintf("w-%s-1", c.ID),
				Company:     "Nexus Corp",
				Role:        c.Role,
				StartDate:   "2021",
				EndDate:     "Present",
				Location:    "New York",
				Description: fmt.Sprintf("Driving %s initiatives.", c.Specialty),
			},
			{
				ID:          fmt.Sprintf("w-%s-2", c.ID),
				Company:     "Previous Firm Inc",
				Role:        "Consultant",
				StartDate:   "2018",
				EndDate:     "2021",
				Location:    "Chicago",
				Description: "Managed mid-market client transformations.",
			},
		},
		Education: []Education{
			{
				ID:          fmt.Sprintf("e-%s-1", c.ID),
				Institution: "State University",
				Degree:      "MBA",
				Field:       "Business Administration",
				Year:        "2018",
			},
		},
		Certifications: []Certification{
			{ID: fmt.Sprintf("c-%s-1", c.ID), Name: "PMP Certification", Issuer: "PMI", Date: "2020"},
		},
		OfficeHistory: []OfficeStay{
			{Location: "New York", Period: "2021 - Present"},
		},
	}
}
