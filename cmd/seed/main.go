package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/platefull/backend/config"
	"github.com/platefull/backend/internal/database"
	"github.com/platefull/backend/internal/model"
)

var mealEmojis = []string{"🍝", "🥗", "🍛", "🍜", "🥘", "🌮", "🍲", "🥙", "🍕", "🍳"}

func main() {
	users := flag.Int("users", 5, "number of users to create")
	recipes := flag.Int("recipes", 20, "number of recipes to create")
	password := flag.String("password", "password123", "password for every seeded user")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.New(cfg, logger)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}
	if err := database.SeedCategories(db); err != nil {
		log.Fatalf("failed to seed categories: %v", err)
	}

	faker := gofakeit.New(time.Now().UnixNano())

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var owners []model.User
	for i := 0; i < *users; i++ {
		user := model.User{
			Name:         faker.Name(),
			Email:        strings.ToLower(faker.Email()),
			PasswordHash: string(hash),
			PictureURL:   faker.ImageURL(200, 200),
			Preferences:  model.JSONBMap{},
		}
		if err := db.Create(&user).Error; err != nil {
			log.Fatalf("failed to create user: %v", err)
		}
		owners = append(owners, user)
	}
	log.Printf("created %d users (password %q)", len(owners), *password)

	var categories []model.Category
	if err := db.Find(&categories).Error; err != nil {
		log.Fatalf("failed to load categories: %v", err)
	}

	for i := 0; i < *recipes; i++ {
		owner := owners[faker.Number(0, len(owners)-1)]
		category := categories[faker.Number(0, len(categories)-1)]

		ingredients := make(model.JSONBIngredients, 0, 5)
		for j := 0; j < faker.Number(3, 6); j++ {
			ingredients = append(ingredients, model.Ingredient{
				Name:     faker.Fruit(),
				Quantity: fmt.Sprintf("%d g", faker.Number(50, 500)),
				Icon:     "🥕",
			})
		}

		steps := make(model.JSONBStringArray, 0, 5)
		for j := 0; j < faker.Number(3, 6); j++ {
			steps = append(steps, faker.Sentence(10))
		}

		recipe := model.Recipe{
			Name:            fmt.Sprintf("%s %s", faker.Dinner(), mealEmojis[faker.Number(0, len(mealEmojis)-1)]),
			Description:     faker.Sentence(15),
			Category:        category.Name,
			Ingredients:     ingredients,
			Steps:           steps,
			Calories:        faker.Number(150, 900),
			CookTimeMinutes: faker.Number(10, 120),
			Servings:        faker.Number(1, 6),
			UserID:          owner.ID,
		}
		if err := db.Create(&recipe).Error; err != nil {
			log.Fatalf("failed to create recipe: %v", err)
		}
	}
	log.Printf("created %d recipes", *recipes)
}
