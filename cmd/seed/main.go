// Seeds the campus menu and a demo customer. Safe to re-run: existing rows
// are matched by name/email and left alone.
package main

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/Animeshkhedkar0523/campus-smart-eats/configs"
	"github.com/Animeshkhedkar0523/campus-smart-eats/entity"
)

var menuItems = []entity.MenuItem{
	{Name: "Special Thali", Description: "Rice, Dal, 2 Sabzi, Roti, Salad, Sweet", Price: 80, Category: "lunch", Image: "https://images.unsplash.com/photo-1585937421612-70a008356fbe?w=400", Available: true},
	{Name: "Idli Vada Combo", Description: "3 Idli, 1 Vada with Sambar & Chutney", Price: 50, Category: "breakfast", Image: "https://images.unsplash.com/photo-1630383249896-424e482df921?w=400", Available: true},
	{Name: "Masala Dosa", Description: "Crispy dosa with potato filling", Price: 60, Category: "breakfast", Image: "https://images.unsplash.com/photo-1694809413149-d3e3c9c9d5c4?w=400", Available: true},
	{Name: "Poha", Description: "Flattened rice with peanuts and spices", Price: 30, Category: "breakfast", Image: "https://images.unsplash.com/photo-1626132647523-66f5bf380027?w=400", Available: true},
	{Name: "Paneer Thali", Description: "Rice, Dal, Paneer Sabzi, Roti, Salad", Price: 100, Category: "lunch", Image: "https://images.unsplash.com/photo-1585937421612-70a008356fbe?w=400", Available: true},
	{Name: "Veg Biryani", Description: "Aromatic rice with mixed vegetables", Price: 90, Category: "lunch", Image: "https://images.unsplash.com/photo-1563379091339-03b21ab4a4f8?w=400", Available: true},
	{Name: "Dal Khichdi", Description: "Comfort food with dal and rice", Price: 60, Category: "lunch", Image: "https://images.unsplash.com/photo-1596797038530-2c107229654b?w=400", Available: true},
	{Name: "Samosa", Description: "Crispy samosas with chutney (2 pieces)", Price: 20, Category: "snacks", Image: "https://images.unsplash.com/photo-1601050690597-df0568f70950?w=400", Available: true},
	{Name: "Vada Pav", Description: "Mumbai special potato fritter in bun", Price: 25, Category: "snacks", Image: "https://images.unsplash.com/photo-1626266061368-46a8f578ddd6?w=400", Available: true},
	{Name: "Pav Bhaji", Description: "Spicy mashed vegetables with buttered pav", Price: 70, Category: "snacks", Image: "https://images.unsplash.com/photo-1606491956689-2ea866880c84?w=400", Available: true},
	{Name: "Pakora Platter", Description: "Mixed vegetable fritters", Price: 40, Category: "snacks", Image: "https://images.unsplash.com/photo-1643699395888-fbb691e6f770?w=400", Available: true},
	{Name: "Fresh Juice", Description: "Seasonal fruit juice", Price: 40, Category: "beverages", Image: "https://images.unsplash.com/photo-1600271886742-f049cd451bba?w=400", Available: true},
	{Name: "Masala Chai", Description: "Hot Indian spiced tea", Price: 15, Category: "beverages", Image: "https://images.unsplash.com/photo-1597318112024-dc3c608c6650?w=400", Available: true},
	{Name: "Coffee", Description: "Hot filter coffee", Price: 20, Category: "beverages", Image: "https://images.unsplash.com/photo-1509042239860-f550ce710b93?w=400", Available: true},
}

func main() {
	cfg := configs.LoadConfig()

	db, err := configs.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("connect database failed: %v", err)
	}
	if err := configs.SetupDatabase(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	for _, item := range menuItems {
		if err := db.Where(entity.MenuItem{Name: item.Name}).
			FirstOrCreate(&item).Error; err != nil {
			log.Fatalf("seed menu item %q failed: %v", item.Name, err)
		}
	}
	log.Printf("seeded %d menu items", len(menuItems))

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash demo password failed: %v", err)
	}
	demo := entity.User{
		Name:     "Demo Student",
		Email:    "student@campus.edu",
		Password: string(hash),
		Role:     entity.RoleUser,
	}
	if err := db.Where(entity.User{Email: demo.Email}).FirstOrCreate(&demo).Error; err != nil {
		log.Fatalf("seed demo user failed: %v", err)
	}
	log.Println("seeded demo user:", demo.Email)
}
