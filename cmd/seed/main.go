package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"kitchencare/internal/database"
	"kitchencare/internal/domain"
	"kitchencare/internal/modules/warranty"
	"kitchencare/internal/repository"
)

func main() {
	_ = godotenv.Load()
	viper.AutomaticEnv()
	viper.SetDefault("DATABASE_URL", "kitchencare.db")

	db, err := database.Connect(viper.GetString("DATABASE_URL"))
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old catalog data. User-owned rows are left alone.
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM maintenance_tips")
	db.Exec("DELETE FROM service_technicians")
	db.Exec("DELETE FROM warranty_plans")
	db.Exec("DELETE FROM products")

	ctx := context.Background()

	productRepo := repository.NewProductRepository(db)
	for i := range products {
		if err := productRepo.Create(ctx, &products[i]); err != nil {
			log.Fatal("seeding products failed:", err)
		}
	}
	log.Printf("Seeded %d products", len(products))

	planRepo := repository.NewPlanRepository(db)
	for _, tier := range warranty.Tiers {
		plan := domain.WarrantyPlan{
			Name:           tier.Title,
			Description:    tier.Title + " protection for your kitchen appliances",
			DurationMonths: tier.DurationMonths,
			Price:          tier.Price,
			Features:       tier.Coverage,
			ServiceVisits:  tier.ServiceVisits,
			IsPopular:      tier.ID == "3year",
		}
		if err := planRepo.CreateWarrantyPlan(ctx, &plan); err != nil {
			log.Fatal("seeding warranty plans failed:", err)
		}
	}
	log.Printf("Seeded %d warranty plans", len(warranty.Tiers))

	technicianRepo := repository.NewTechnicianRepository(db)
	for i := range technicians {
		if err := technicianRepo.Create(ctx, &technicians[i]); err != nil {
			log.Fatal("seeding technicians failed:", err)
		}
	}
	log.Printf("Seeded %d technicians", len(technicians))

	tipRepo := repository.NewTipRepository(db)
	for i := range tips {
		if err := tipRepo.Create(ctx, &tips[i]); err != nil {
			log.Fatal("seeding maintenance tips failed:", err)
		}
	}
	log.Printf("Seeded %d maintenance tips", len(tips))

	log.Println("Done.")
}

var products = []domain.Product{
	{
		Name:          "Premium Auto-Clean Chimney",
		Category:      domain.CategoryChimney,
		Price:         15999,
		DiscountPrice: 13999,
		Rating:        4.5,
		ReviewCount:   128,
		Images:        []string{"chimney1.jpg", "chimney1_side.jpg", "chimney1_front.jpg"},
		Description:   "High-performance kitchen chimney with auto-clean technology and touch controls.",
		Features: []string{
			"Suction Power: 1200 m³/hr",
			"Noise Level: 58 dB",
			"Filter Type: Baffle Filter",
			"Control Type: Touch & Gesture",
			"Auto-Clean Technology",
			"LED Lights",
		},
		InStock: true,
		Brand:   "Amaze Space",
	},
	{
		Name:          "Curved Glass Chimney",
		Category:      domain.CategoryChimney,
		Price:         12999,
		DiscountPrice: 10999,
		Rating:        4.2,
		ReviewCount:   95,
		Images:        []string{"chimney2.jpg", "chimney2_side.jpg", "chimney2_front.jpg"},
		Description:   "Elegant curved glass chimney with powerful suction and filterless technology.",
		Features: []string{
			"Suction Power: 1000 m³/hr",
			"Noise Level: 60 dB",
			"Filterless Technology",
			"Control Type: Touch",
			"Oil Collector",
			"LED Lights",
		},
		InStock: true,
		Brand:   "Amaze Space",
	},
	{
		Name:          "4 Burner Built-in Gas Hob",
		Category:      domain.CategoryHob,
		Price:         9999,
		DiscountPrice: 8499,
		Rating:        4.7,
		ReviewCount:   156,
		Images:        []string{"hob1.jpg", "hob1_top.jpg", "hob1_side.jpg"},
		Description:   "Premium 4 burner built-in gas hob with auto-ignition and toughened glass.",
		Features: []string{
			"4 Burners (1 Triple Ring, 2 Medium, 1 Small)",
			"Auto-Ignition",
			"Toughened Glass Surface",
			"Cast Iron Pan Supports",
			"Flame Failure Safety Device",
			"Easy Clean Surface",
		},
		InStock: true,
		Brand:   "Amaze Space",
	},
	{
		Name:          "2 Burner Built-in Gas Hob",
		Category:      domain.CategoryHob,
		Price:         6999,
		DiscountPrice: 5999,
		Rating:        4.4,
		ReviewCount:   87,
		Images:        []string{"hob2.jpg", "hob2_top.jpg", "hob2_side.jpg"},
		Description:   "Compact 2 burner built-in gas hob perfect for small kitchens.",
		Features: []string{
			"2 Burners (1 Triple Ring, 1 Medium)",
			"Auto-Ignition",
			"Toughened Glass Surface",
			"Cast Iron Pan Supports",
			"Flame Failure Safety Device",
			"Easy Clean Surface",
		},
		InStock: true,
		Brand:   "Amaze Space",
	},
	{
		Name:          "Built-in Convection Microwave Oven",
		Category:      domain.CategoryMicrowave,
		Price:         18999,
		DiscountPrice: 16999,
		Rating:        4.6,
		ReviewCount:   112,
		Images:        []string{"microwave1.jpg", "microwave1_open.jpg", "microwave1_side.jpg"},
		Description:   "Premium built-in convection microwave oven with grill function and auto-cook menus.",
		Features: []string{
			"Capacity: 28L",
			"Convection, Microwave & Grill Functions",
			"Touch Control Panel",
			"200+ Auto-Cook Menus",
			"Child Lock Safety",
			"Stainless Steel Cavity",
		},
		InStock: true,
		Brand:   "Amaze Space",
	},
	{
		Name:          "Built-in Electric Oven",
		Category:      domain.CategoryMicrowave,
		Price:         24999,
		DiscountPrice: 21999,
		Rating:        4.8,
		ReviewCount:   76,
		Images:        []string{"oven1.jpg", "oven1_open.jpg", "oven1_side.jpg"},
		Description:   "Professional built-in electric oven with multiple cooking functions.",
		Features: []string{
			"Capacity: 70L",
			"10 Cooking Functions",
			"Digital Display & Timer",
			"Triple Glazed Door",
			"Energy Efficiency: A+",
			"Catalytic Self-Cleaning",
		},
		InStock: true,
		Brand:   "Amaze Space",
	},
	{
		Name:          "Induction Cooktop",
		Category:      domain.CategoryCooktop,
		Price:         7999,
		DiscountPrice: 6499,
		Rating:        4.3,
		ReviewCount:   143,
		Images:        []string{"cooktop1.jpg", "cooktop1_angle.jpg", "cooktop1_control.jpg"},
		Description:   "Sleek induction cooktop with touch controls and multiple cooking zones.",
		Features: []string{
			"4 Cooking Zones",
			"Touch Controls",
			"Timer Function",
			"Child Lock",
			"Auto Shut-Off",
			"Residual Heat Indicator",
		},
		InStock: true,
		Brand:   "Amaze Space",
	},
	{
		Name:          "Ceramic Glass Cooktop",
		Category:      domain.CategoryCooktop,
		Price:         9999,
		DiscountPrice: 8999,
		Rating:        4.5,
		ReviewCount:   98,
		Images:        []string{"cooktop2.jpg", "cooktop2_angle.jpg", "cooktop2_control.jpg"},
		Description:   "Premium ceramic glass cooktop with radiant heating elements.",
		Features: []string{
			"4 Radiant Heating Zones",
			"Knob Controls",
			"Residual Heat Indicator",
			"Easy Clean Surface",
			"Frameless Design",
			"High Temperature Protection",
		},
		InStock: true,
		Brand:   "Amaze Space",
	},
}

var technicians = []domain.Technician{
	{Name: "Amit Kumar", Specialization: "chimney", PhoneNumber: "+91-98100-11223", Email: "amit.kumar@amazespace.com", IsAvailable: true, Rating: 4.8, CompletedServices: 214},
	{Name: "Priya Sharma", Specialization: "hob", PhoneNumber: "+91-98100-22334", Email: "priya.sharma@amazespace.com", IsAvailable: true, Rating: 4.7, CompletedServices: 178},
	{Name: "Rajesh Verma", Specialization: "microwave", PhoneNumber: "+91-98100-33445", Email: "rajesh.verma@amazespace.com", IsAvailable: true, Rating: 4.6, CompletedServices: 152},
	{Name: "Sunita Patel", Specialization: "cooktop", PhoneNumber: "+91-98100-44556", Email: "sunita.patel@amazespace.com", IsAvailable: true, Rating: 4.9, CompletedServices: 240},
	{Name: "Vikram Singh", Specialization: "electrical", PhoneNumber: "+91-98100-55667", Email: "vikram.singh@amazespace.com", IsAvailable: false, Rating: 4.5, CompletedServices: 131},
}

var tips = []domain.MaintenanceTip{
	{Title: "Clean Chimney Filters", Description: "Regular cleaning extends life and improves efficiency", ImageURL: "tips/chimney-filters.jpg", Category: "chimney"},
	{Title: "Cabinet Care", Description: "Wipe with microfiber cloth to maintain finish", ImageURL: "tips/cabinet-care.jpg", Category: "cabinet"},
	{Title: "Sink Maintenance", Description: "Avoid abrasive cleaners to protect the surface", ImageURL: "tips/sink-maintenance.jpg", Category: "sink"},
	{Title: "Burner Upkeep", Description: "Clean burner heads monthly for an even flame", ImageURL: "tips/burner-upkeep.jpg", Category: "hob"},
}
