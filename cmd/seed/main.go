package main

import (
	"context"
	"flag"
	"log"

	"github.com/agencydesk/agencydesk/config"
	"github.com/agencydesk/agencydesk/ent/user"
	"github.com/agencydesk/agencydesk/pkg/auth"
	"github.com/agencydesk/agencydesk/pkg/database"
	"github.com/agencydesk/agencydesk/pkg/testdata"
)

func main() {
	leadCount := flag.Int("leads", 200, "number of fake leads to create")
	staffCount := flag.Int("staff", 5, "number of fake sales/employee users to create")
	adminPassword := flag.String("admin-password", "admin-local-dev", "password for the seeded admin account")
	flag.Parse()

	cfg := config.Load()

	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	// Admin account with a known password for local development
	hash, err := auth.HashPassword(*adminPassword)
	if err != nil {
		log.Fatalf("❌ Failed to hash admin password: %v", err)
	}

	admin, err := db.Ent.User.Create().
		SetFullName("Local Admin").
		SetUsername("admin").
		SetEmail("admin@example.com").
		SetRole(user.RoleAdmin).
		SetPasswordHash(hash).
		Save(ctx)
	if err != nil {
		log.Fatalf("❌ Failed to create admin user: %v", err)
	}
	log.Printf("✅ Admin user created (email: %s)", admin.Email)

	// Staff: alternate sales and employee roles
	for i := 0; i < *staffCount; i++ {
		role := user.RoleEmployee
		if i%2 == 0 {
			role = user.RoleSales
		}
		u, err := testdata.GenerateUser(db.Ent, role).Save(ctx)
		if err != nil {
			log.Fatalf("❌ Failed to create staff user: %v", err)
		}
		log.Printf("✅ Staff user created (%s, role: %s)", u.Email, u.Role)
	}

	// Leads
	builders := testdata.GenerateLeads(db.Ent, testdata.DefaultLeadConfig(*leadCount))
	created, err := db.Ent.Lead.CreateBulk(builders...).Save(ctx)
	if err != nil {
		log.Fatalf("❌ Failed to create leads: %v", err)
	}
	log.Printf("✅ Seeded %d leads", len(created))
}
