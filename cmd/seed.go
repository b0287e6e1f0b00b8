package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/jaswdr/faker"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"wholesale-delivery/cache"
	"wholesale-delivery/errs"
	"wholesale-delivery/models"
	"wholesale-delivery/repositories"
	"wholesale-delivery/services"
	"wholesale-delivery/utils"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the database with fake vendors, drivers and inventory",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		vendors, _ := cmd.Flags().GetInt("vendors")
		drivers, _ := cmd.Flags().GetInt("drivers")
		items, _ := cmd.Flags().GetInt("items")
		password, _ := cmd.Flags().GetString("driver-password")

		ctx := cmd.Context()
		client, err := utils.ConnectDB(ctx, cfg.MongoURL)
		if err != nil {
			return err
		}
		defer client.Disconnect(context.Background())

		db := client.Database(cfg.MongoDatabase)
		if err := repositories.EnsureIndexes(ctx, db); err != nil {
			return err
		}

		s := &seeder{
			fake:      faker.New(),
			vendors:   services.NewVendorService(repositories.NewVendorRepository(db)),
			drivers:   services.NewDriverService(repositories.NewDriverRepository(db), utils.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL), cache.Noop{}),
			inventory: services.NewInventoryService(repositories.NewInventoryRepository(db), nil),
		}
		return s.run(ctx, vendors, drivers, items, password)
	},
}

func init() {
	seedCmd.Flags().Int("vendors", 20, "number of vendors to create")
	seedCmd.Flags().Int("drivers", 10, "number of drivers to create")
	seedCmd.Flags().Int("items", 50, "number of inventory items to create")
	seedCmd.Flags().String("driver-password", "password123", "password given to every seeded driver")
}

type seeder struct {
	fake      faker.Faker
	vendors   *services.VendorService
	drivers   *services.DriverService
	inventory *services.InventoryService
}

func (s *seeder) run(ctx context.Context, vendors, drivers, items int, password string) error {
	bar := progressbar.Default(int64(vendors+drivers+items), "seeding")
	var skipped int

	// Fake data can collide with existing unique fields; those rows are skipped.
	step := func(err error) error {
		bar.Add(1)
		if err == nil {
			return nil
		}
		if errs.Is(err, errs.Conflict) {
			skipped++
			return nil
		}
		return err
	}

	for i := 0; i < vendors; i++ {
		_, err := s.vendors.Register(ctx, models.VendorInput{
			Name:    s.fake.Company().Name(),
			Email:   s.fake.Internet().Email(),
			Phone:   s.fake.Phone().E164Number(),
			Address: s.fake.Address().Address(),
		})
		if err := step(err); err != nil {
			return fmt.Errorf("seed vendor: %w", err)
		}
	}

	for i := 0; i < drivers; i++ {
		_, err := s.drivers.Register(ctx, models.DriverRegistration{
			Name:           s.fake.Person().Name(),
			Address:        s.fake.Address().Address(),
			Phone:          s.fake.Phone().E164Number(),
			DrivingLicense: fmt.Sprintf("DL-%s", s.fake.Numerify("##########")),
			Password:       password,
		})
		if err := step(err); err != nil {
			return fmt.Errorf("seed driver: %w", err)
		}
	}

	for i := 0; i < items; i++ {
		price, err := models.NewMoney(fmt.Sprintf("%.2f", s.fake.Float64(2, 1, 500)))
		if err != nil {
			return err
		}
		_, err = s.inventory.Add(ctx, models.InventoryInput{
			Name:     fmt.Sprintf("%s %s", s.fake.Lorem().Word(), s.fake.Numerify("####")),
			Price:    price,
			Quantity: s.fake.IntBetween(0, 500),
			Category: models.Categories[s.fake.IntBetween(0, len(models.Categories)-1)],
		}, nil)
		if err := step(err); err != nil {
			return fmt.Errorf("seed inventory item: %w", err)
		}
	}

	bar.Finish()
	log.Printf("Seed finished: %d vendors, %d drivers, %d items requested, %d duplicates skipped", vendors, drivers, items, skipped)
	return nil
}
