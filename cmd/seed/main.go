package main

import (
	"log"

	"go-dealership-api/internal/model"
	"go-dealership-api/pkg/config"
	"go-dealership-api/pkg/database"
)

// Standalone seeding tool: creates the default admin account and a first
// store so a fresh deployment is usable immediately.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	db := database.ConnectDB(cfg)
	db.AutoMigrate(&model.Store{}, &model.User{}, &model.Vehicle{}, &model.TransferEvent{})

	var admin model.User
	if err := db.Where("email = ?", cfg.AdminEmail).First(&admin).Error; err == nil {
		log.Printf("Admin %s already exists, nothing to do", cfg.AdminEmail)
		return
	}

	store := model.Store{Name: "Matriz", TaxID: "00000000000000"}
	store.CreatedBy = "seed"
	store.UpdatedBy = "seed"
	if err := db.Where("name = ?", store.Name).FirstOrCreate(&store).Error; err != nil {
		log.Fatalf("❌ Failed to seed store: %v", err)
	}

	admin = model.User{
		Name:     "Administrator",
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
		Role:     model.RoleAdmin,
	}
	admin.CreatedBy = "seed"
	admin.UpdatedBy = "seed"

	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("❌ Failed to seed admin: %v", err)
	}

	log.Printf("✅ Seeded admin %s and store %q", cfg.AdminEmail, store.Name)
}
