package testdata

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/agencydesk/agencydesk/ent"
	"github.com/agencydesk/agencydesk/ent/lead"
	"github.com/agencydesk/agencydesk/ent/user"
)

// LeadGeneratorConfig configures lead generation parameters
type LeadGeneratorConfig struct {
	Count         int
	Country       string
	EmailChance   float64 // 0.0-1.0 (probability of having email)
	PhoneChance   float64
	WebsiteChance float64
}

// DefaultLeadConfig returns a plausible completeness distribution.
func DefaultLeadConfig(count int) LeadGeneratorConfig {
	return LeadGeneratorConfig{
		Count:         count,
		Country:       "US",
		EmailChance:   0.7,
		PhoneChance:   0.6,
		WebsiteChance: 0.4,
	}
}

var leadStatuses = []lead.Status{
	lead.StatusNew, lead.StatusNew, lead.StatusNew,
	lead.StatusContacted, lead.StatusContacted,
	lead.StatusInterested,
	lead.StatusPitched,
	lead.StatusFollowUp,
	lead.StatusConverted,
	lead.StatusNotInterested,
	lead.StatusLost,
}

var leadSources = []string{"referral", "website", "cold-call", "linkedin", "event"}

// GenerateLead creates a single lead builder with realistic data
func GenerateLead(client *ent.Client, config LeadGeneratorConfig) *ent.LeadCreate {
	company := gofakeit.Company()

	create := client.Lead.Create().
		SetName(gofakeit.Name()).
		SetCompany(company).
		SetCity(gofakeit.City()).
		SetCountry(config.Country).
		SetSource(leadSources[rand.Intn(len(leadSources))]).
		SetStatus(leadStatuses[rand.Intn(len(leadStatuses))])

	domain := strings.ToLower(strings.ReplaceAll(company, " ", ""))
	domain = strings.ReplaceAll(domain, ",", "")
	domain = strings.ReplaceAll(domain, "'", "")
	if len(domain) > 20 {
		domain = domain[:20]
	}

	if rand.Float64() < config.EmailChance {
		create.SetEmail(fmt.Sprintf("contact@%s.com", domain))
	}
	if rand.Float64() < config.PhoneChance {
		create.SetPhone(gofakeit.Phone())
	}
	if rand.Float64() < config.WebsiteChance {
		create.SetWebsite(fmt.Sprintf("https://www.%s.com", domain))
	}

	return create
}

// GenerateLeads creates multiple lead builders with the given config
func GenerateLeads(client *ent.Client, config LeadGeneratorConfig) []*ent.LeadCreate {
	leads := make([]*ent.LeadCreate, config.Count)
	for i := 0; i < config.Count; i++ {
		leads[i] = GenerateLead(client, config)
	}
	return leads
}

// GenerateUser creates a staff user builder with a fake identity.
// The password hash is left empty; seeded staff log in via a reset flow.
func GenerateUser(client *ent.Client, role user.Role) *ent.UserCreate {
	name := gofakeit.Name()
	handle := strings.ToLower(strings.ReplaceAll(name, " ", "."))

	return client.User.Create().
		SetFullName(name).
		SetUsername(handle).
		SetEmail(fmt.Sprintf("%s@example.com", handle)).
		SetPhone(gofakeit.Phone()).
		SetRole(role)
}
