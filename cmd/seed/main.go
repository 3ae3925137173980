package main

import (
	"encoding/json"
	"log"
	"os"

	"stylehub-be/internal/model"
	"stylehub-be/pkg/database"
	"stylehub-be/pkg/refund"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding StyleHub data...")

	seedAdminUser(db)
	seedCatalog(db)
	seedDefaultPolicy(db)

	color.Green("✅ Seeding completed")
}

func seedAdminUser(db *gorm.DB) {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@stylehub.local"
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "admin12345"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Error: Failed to hash admin password:", err)
	}

	admin := model.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     "Store Admin",
		Role:         "admin",
		Status:       "active",
	}
	if err := db.Where("email = ?", email).FirstOrCreate(&admin).Error; err != nil {
		color.Red("Failed to seed admin user: %v", err)
		return
	}
	color.Green("Admin user ready: %s", email)
}

func seedCatalog(db *gorm.DB) {
	categories := []model.Category{
		{Name: "Tops", Slug: "tops", Description: "Shirts, tees and blouses"},
		{Name: "Bottoms", Slug: "bottoms", Description: "Jeans, trousers and skirts"},
		{Name: "Outerwear", Slug: "outerwear", Description: "Jackets and coats"},
		{Name: "Footwear", Slug: "footwear", Description: "Sneakers, boots and sandals"},
	}
	bySlug := map[string]*model.Category{}
	for i := range categories {
		c := &categories[i]
		if err := db.Where("slug = ?", c.Slug).FirstOrCreate(c).Error; err != nil {
			color.Red("Failed to seed category %s: %v", c.Slug, err)
			continue
		}
		bySlug[c.Slug] = c
	}
	color.Green("Seeded %d categories", len(bySlug))

	sizes := datatypes.NewJSONSlice([]string{"S", "M", "L", "XL"})
	products := []model.Product{
		{
			CategoryId:  bySlug["tops"].Id,
			Name:        "Classic Oxford Shirt",
			Slug:        "classic-oxford-shirt",
			Description: "A wardrobe staple in breathable cotton.",
			Brand:       "StyleHub Essentials",
			Price:       49.90,
			Stock:       120,
			Sizes:       sizes,
			Colors:      datatypes.NewJSONSlice([]string{"white", "light blue"}),
			IsActive:    true,
		},
		{
			CategoryId:  bySlug["bottoms"].Id,
			Name:        "Slim Fit Denim",
			Slug:        "slim-fit-denim",
			Description: "Mid-rise slim jeans with a touch of stretch.",
			Brand:       "DenimCo",
			Price:       79.00,
			Stock:       80,
			Sizes:       sizes,
			Colors:      datatypes.NewJSONSlice([]string{"indigo", "black"}),
			IsActive:    true,
		},
		{
			CategoryId:  bySlug["outerwear"].Id,
			Name:        "Water Resistant Parka",
			Slug:        "water-resistant-parka",
			Description: "Lightweight parka for unpredictable weather.",
			Brand:       "Northline",
			Price:       149.00,
			Stock:       40,
			Sizes:       sizes,
			Colors:      datatypes.NewJSONSlice([]string{"olive", "navy"}),
			IsActive:    true,
		},
		{
			CategoryId:  bySlug["footwear"].Id,
			Name:        "Court Sneakers",
			Slug:        "court-sneakers",
			Description: "Minimal leather sneakers that go with everything.",
			Brand:       "StrideLab",
			Price:       89.50,
			Stock:       60,
			Sizes:       datatypes.NewJSONSlice([]string{"39", "40", "41", "42", "43", "44"}),
			Colors:      datatypes.NewJSONSlice([]string{"white"}),
			IsActive:    true,
		},
	}
	byProductSlug := map[string]*model.Product{}
	for i := range products {
		p := &products[i]
		if err := db.Where("slug = ?", p.Slug).FirstOrCreate(p).Error; err != nil {
			color.Red("Failed to seed product %s: %v", p.Slug, err)
			continue
		}
		byProductSlug[p.Slug] = p
	}
	color.Green("Seeded %d products", len(byProductSlug))

	bundle := model.Bundle{
		Name:        "Weekend Starter Pack",
		Slug:        "weekend-starter-pack",
		Description: "Oxford shirt and slim denim at a bundle price.",
		Price:       109.00,
		Stock:       30,
		IsActive:    true,
	}
	if err := db.Where("slug = ?", bundle.Slug).FirstOrCreate(&bundle).Error; err != nil {
		color.Red("Failed to seed bundle: %v", err)
		return
	}

	var itemCount int64
	db.Model(&model.BundleItem{}).Where("bundle_id = ?", bundle.Id).Count(&itemCount)
	if itemCount == 0 {
		items := []model.BundleItem{
			{BundleId: bundle.Id, ProductId: byProductSlug["classic-oxford-shirt"].Id, Quantity: 1},
			{BundleId: bundle.Id, ProductId: byProductSlug["slim-fit-denim"].Id, Quantity: 1},
		}
		if err := db.Create(&items).Error; err != nil {
			color.Red("Failed to seed bundle items: %v", err)
			return
		}
	}
	color.Green("Seeded bundle: %s", bundle.Slug)
}

func seedDefaultPolicy(db *gorm.DB) {
	var count int64
	db.Model(&model.CancellationPolicy{}).Count(&count)
	if count > 0 {
		color.Yellow("Cancellation policy already present, skipping")
		return
	}

	rules := []refund.TimeBasedRule{
		{TimeFrameHoursUpperBound: 1, RefundPercentage: 100, Description: "Full refund within the first hour"},
		{TimeFrameHoursUpperBound: 24, RefundPercentage: 75, Description: "75% refund within 24 hours"},
		{TimeFrameHoursUpperBound: 72, RefundPercentage: 50, Description: "50% refund within 3 days"},
	}
	rulesJSON, err := json.Marshal(rules)
	if err != nil {
		color.Red("Failed to marshal policy rules: %v", err)
		return
	}

	policy := model.CancellationPolicy{
		DefaultRefundPercentage: 25,
		ResponseTimeHours:       48,
		IsActive:                true,
		TimeBasedRules:          datatypes.JSON(rulesJSON),
		PaymentMethodRules: datatypes.JSONMap{
			"COD": float64(100),
		},
		OrderStatusRestrictions: datatypes.NewJSONSlice([]string{"SHIPPED", "DELIVERED", "CANCELLED"}),
	}
	if err := db.Create(&policy).Error; err != nil {
		color.Red("Failed to seed cancellation policy: %v", err)
		return
	}
	color.Green("Seeded default cancellation policy")
}
