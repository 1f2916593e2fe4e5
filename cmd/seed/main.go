// Command seed loads a small demo dataset: three accounts and three active
// vehicle listings. Running it twice is safe; rows that already exist are
// skipped.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"carbid/internal/auctionerrors"
	"carbid/internal/auth"
	"carbid/internal/config"
	model "carbid/internal/models"
	"carbid/internal/repository"
	"carbid/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	repo, err := repository.OpenSQLite(cfg.DatabasePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	ctx := context.Background()

	sellerID, err := seedUsers(ctx, repo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to seed users: %v\n", err)
		os.Exit(1)
	}

	if err := seedVehicles(ctx, repo, sellerID, cfg.AuctionWindow); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to seed vehicles: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Seed data loaded.")
}

type seedUser struct {
	name     string
	email    string
	password string
	role     model.Role
}

func seedUsers(ctx context.Context, repo *repository.SQLiteRepo) (string, error) {
	users := []seedUser{
		{name: "Admin", email: "admin@carbid.test", password: "admin-pass-1", role: model.RoleAdmin},
		{name: "Sam Seller", email: "seller@carbid.test", password: "seller-pass-1", role: model.RoleSeller},
		{name: "Billie Buyer", email: "buyer@carbid.test", password: "buyer-pass-1", role: model.RoleBuyer},
	}

	var sellerID string
	for _, u := range users {
		hash, err := auth.HashPassword(u.password)
		if err != nil {
			return "", err
		}

		record := model.User{
			UserID:       utils.GenerateID(),
			Name:         u.name,
			Email:        u.email,
			PasswordHash: hash,
			Role:         u.role,
			CreatedAt:    time.Now().UTC(),
		}

		err = repo.CreateUser(ctx, record)
		switch {
		case err == nil:
			fmt.Printf("Created user %s (%s)\n", u.email, u.role)
		case errors.Is(err, auctionerrors.ErrDuplicateEmail):
			existing, err := repo.GetUserByEmail(ctx, u.email)
			if err != nil {
				return "", err
			}
			record = existing
			fmt.Printf("User %s already exists, skipping\n", u.email)
		default:
			return "", err
		}

		if u.role == model.RoleSeller {
			sellerID = record.UserID
		}
	}
	return sellerID, nil
}

func seedVehicles(ctx context.Context, repo *repository.SQLiteRepo, sellerID string, window time.Duration) error {
	now := time.Now().UTC()
	vehicles := []model.Vehicle{
		{Make: "Ford", Model: "Mustang", Year: 1967, BasePrice: 200000, MinIncrement: 1000, LotCode: "F54", Description: "Restored fastback, numbers matching."},
		{Make: "Dodge", Model: "Charger", Year: 1970, BasePrice: 150000, MinIncrement: 1000, LotCode: "M12", Description: "Original big block, garage kept."},
		{Make: "Honda", Model: "Civic", Year: 2004, BasePrice: 5000, MinIncrement: 100, LotCode: "C03", Description: "Daily driver, full service history."},
	}

	for _, v := range vehicles {
		v.VehicleID = utils.GenerateID()
		v.SellerID = sellerID
		v.Images = []string{}
		v.Status = model.VehicleActive
		v.AuctionStartAt = now
		v.AuctionEndAt = now.Add(window)
		v.CreatedAt = now

		err := repo.CreateVehicle(ctx, v)
		switch {
		case err == nil:
			fmt.Printf("Created vehicle %s %s (lot %s)\n", v.Make, v.Model, v.LotCode)
		case errors.Is(err, auctionerrors.ErrDuplicateLot):
			fmt.Printf("Lot %s already exists, skipping\n", v.LotCode)
		default:
			return err
		}
	}
	return nil
}
