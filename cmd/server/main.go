// @title Awaaz API
// @version 1.0
// @description Petition platform backend: creation wizard drafts, publishing, signing, and phone verification.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"awaaz/internal/config"
	"awaaz/internal/handler"
	"awaaz/internal/otp/noop"
	"awaaz/internal/otp/ses"
	"awaaz/internal/port"
	"awaaz/internal/repository/postgres"
	"awaaz/internal/router"
	"awaaz/internal/service"
	s3storage "awaaz/internal/storage/s3"
	"awaaz/internal/wizard"

	_ "awaaz/docs"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	petitionRepo := postgres.NewPetitionRepo(db)
	categoryRepo := postgres.NewCategoryRepo(db)
	draftRepo := postgres.NewDraftRepo(db)
	signatureRepo := postgres.NewSignatureRepo(db)
	commentRepo := postgres.NewCommentRepo(db)
	challengeRepo := postgres.NewOTPChallengeRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize code sender
	var sender port.CodeSender
	switch cfg.OTP.Provider {
	case "ses":
		sender, err = ses.NewSESSender(cfg.OTP.Region, cfg.OTP.FromAddress, cfg.OTP.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		sender = noop.NewNoopSender()
	}

	drafts := wizard.NewManager(draftRepo, cfg.Draft.MaxAge)

	// Periodically sweep expired verification challenges.
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			n, err := challengeRepo.DeleteExpired(context.Background())
			if err != nil {
				log.Printf("otp challenge sweep failed: %v", err)
				continue
			}
			if n > 0 {
				log.Printf("otp challenge sweep removed %d expired challenges", n)
			}
		}
	}()

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	otpSvc := service.NewOTPService(challengeRepo, userRepo, sender, cfg.OTP)
	categorySvc := service.NewCategoryService(categoryRepo)
	petitionSvc := service.NewPetitionService(petitionRepo, categoryRepo, signatureRepo, drafts, s3Client, &cfg.S3)
	draftSvc := service.NewDraftService(drafts, otpSvc)
	commentSvc := service.NewCommentService(commentRepo, petitionRepo, userRepo)
	userSvc := service.NewUserService(userRepo)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc, userSvc, otpSvc)
	categoryH := handler.NewCategoryHandler(categorySvc)
	petitionH := handler.NewPetitionHandler(petitionSvc, userSvc)
	draftH := handler.NewDraftHandler(draftSvc, petitionSvc, otpSvc, userSvc)
	commentH := handler.NewCommentHandler(commentSvc)
	userH := handler.NewUserHandler(userSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, authSvc, authH, categoryH, petitionH, draftH, commentH, userH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
