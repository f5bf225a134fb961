// Command seed fills the configured store with sample and generated content.
package main

import (
	"context"
	"flag"
	"log"

	"pixelgram/internal/bootstrap"
	"pixelgram/internal/config"
	"pixelgram/internal/middleware"
	"pixelgram/internal/seed"
)

func main() {
	// Parse command line flags
	numUsers := flag.Int("users", 20, "Number of generated users to create (0 skips the social mesh)")
	numPosts := flag.Int("posts", 60, "Number of generated posts to create")
	samples := flag.Bool("samples", true, "Load the sample posts and reels when the store is sparse")
	randSeed := flag.Int64("rand-seed", 0, "Seed for generated content (0 picks one at random)")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, %d posts, samples=%v\n", *numUsers, *numPosts, *samples)

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.IsProduction() {
		log.Fatal("Refusing to seed a production database")
	}
	if cfg.DBDriver == config.DriverMemory {
		log.Fatal("The memory store does not outlive this process; seed postgres or sqlite instead")
	}
	middleware.InitLogger(cfg.Env, cfg.LogLevel)

	ctx := context.Background()
	rt, err := bootstrap.InitRuntime(ctx, cfg, bootstrap.Options{})
	if err != nil {
		log.Fatalf("Failed to initialize runtime: %v", err)
	}
	defer func() { _ = rt.Close() }()

	s := seed.NewSeeder(rt.Store, seed.Options{RandSeed: *randSeed})

	if *samples {
		res, err := s.SamplePosts(ctx)
		if err != nil {
			log.Fatalf("Sample seeding failed: %v", err)
		}
		if res.Seeded {
			log.Printf("Seeded %d sample posts and %d reels", len(res.Posts), len(res.Reels))
		} else {
			log.Printf("Skipped samples: %d posts already exist", res.Existing)
		}
	}

	if *numUsers > 0 {
		sum, err := s.SocialMesh(ctx, *numUsers, *numPosts)
		if err != nil {
			log.Fatalf("Social mesh seeding failed: %v", err)
		}
		log.Printf("Created %d users, %d follows, %d posts, %d comments, %d likes, %d stories, %d messages",
			sum.Users, sum.Follows, sum.Posts, sum.Comments, sum.Likes, sum.Stories, sum.Messages)
	}

	log.Printf("All done. Seeded users have the password: %s", seed.DefaultPassword)
}
