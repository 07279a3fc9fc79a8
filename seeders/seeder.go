package seeders

import (
	"fmt"
	"log"

	"retail-api/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	DemoEmail    = "demo@retail.local"
	DemoPassword = "demo1234"
)

func ptrString(s string) *string {
	return &s
}

// Seed inserts a demo user, store and catalogue. Running it twice changes
// nothing.
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash demo password: %w", err)
		}

		user := models.User{Name: "Demo Owner", Email: DemoEmail}
		if err := tx.Where(models.User{Email: DemoEmail}).
			Attrs(models.User{Password: string(hash)}).
			FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("seed user: %w", err)
		}

		store := models.Store{Name: "Main Street", Address: "12 Main Street", Phone: "555-0100", GSTIN: "29ABCDE1234F1Z5"}
		if err := tx.Where(models.Store{Name: store.Name}).FirstOrCreate(&store).Error; err != nil {
			return fmt.Errorf("seed store: %w", err)
		}

		products := []models.Product{
			{Name: "Cotton Shirt", Code: "SHIRT-001", Category: "Apparel", Description: ptrString("Plain white cotton shirt"), Price: 799, Stock: 40},
			{Name: "Denim Jeans", Code: "JEANS-001", Category: "Apparel", Description: ptrString("Slim fit denim"), Price: 1499, Stock: 25},
			{Name: "Leather Belt", Code: "BELT-001", Category: "Accessories", Price: 499, Stock: 3},
			{Name: "Canvas Shoes", Code: "SHOE-001", Category: "Footwear", Price: 1299, Stock: 12},
		}
		for _, product := range products {
			product.StoreID = store.ID
			if err := tx.Where(models.Product{Code: product.Code}).FirstOrCreate(&product).Error; err != nil {
				return fmt.Errorf("seed product %s: %w", product.Code, err)
			}
		}

		employee := models.Employee{
			Name:     "Ravi Kumar",
			Email:    "ravi@retail.local",
			Position: "Cashier",
			Salary:   18000,
			Status:   models.EmployeeActive,
			StoreID:  store.ID,
			UserID:   &user.ID,
		}
		if err := tx.Where(models.Employee{Email: employee.Email}).FirstOrCreate(&employee).Error; err != nil {
			return fmt.Errorf("seed employee: %w", err)
		}

		log.Printf("seeding done: user %s, store %q, %d products", DemoEmail, store.Name, len(products))
		return nil
	})
}
