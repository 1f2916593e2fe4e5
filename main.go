package main

import (
	"fmt"
	"os"

	"carbid/internal/auth"
	bidding "carbid/internal/biddingService"
	"carbid/internal/closer"
	"carbid/internal/config"
	"carbid/internal/fanout"
	"carbid/internal/repository"
	"carbid/internal/server"
	user "carbid/internal/userService"
	vehicle "carbid/internal/vehicleService"
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

	hub := fanout.NewHub()

	authSvc, err := auth.NewService(repo, cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize auth: %v\n", err)
		os.Exit(1)
	}

	biddingSvc := bidding.NewBiddingService(repo, hub)
	biddingSvc.SetLockWait(cfg.BidLockWait)

	vehicleSvc := vehicle.NewVehicleService(repo, hub, vehicle.Defaults{
		MinIncrement:  cfg.MinIncrementDefault,
		AuctionWindow: cfg.AuctionWindow,
	})
	userSvc := user.NewUserService(repo)

	sweeper := closer.New(repo, hub, cfg.SweepInterval)
	sweeper.Start()
	defer sweeper.Stop()

	router := server.SetupRouter(cfg, server.Services{
		Auth:     authSvc,
		Vehicles: vehicleSvc,
		Bidding:  biddingSvc,
		Users:    userSvc,
		Hub:      hub,
	})

	utils.Info("starting auction server", map[string]any{"addr": cfg.Addr()})
	if err := router.Run(cfg.Addr()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}
