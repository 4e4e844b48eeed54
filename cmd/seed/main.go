package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/mansoorceksport/kinetic/internal/builder"
	"github.com/mansoorceksport/kinetic/internal/catalog"
	"github.com/mansoorceksport/kinetic/internal/config"
	"github.com/mansoorceksport/kinetic/internal/domain"
	"github.com/mansoorceksport/kinetic/internal/repository"
	"github.com/mansoorceksport/kinetic/internal/suggest"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// starter plans written by a fresh install
var starters = []struct {
	Name        string
	Constraints domain.SuggestionConstraints
}{
	{"Upper Body", domain.SuggestionConstraints{Goal: domain.GoalHypertrophy, Equipment: domain.EquipmentChoiceAll, Focus: domain.FocusUpper, Level: domain.LevelIntermediate, Duration: domain.Duration3045}},
	{"Lower Body", domain.SuggestionConstraints{Goal: domain.GoalStrength, Equipment: domain.EquipmentChoiceAll, Focus: domain.FocusLower, Level: domain.LevelIntermediate, Duration: domain.Duration3045}},
	{"Full Body - Beginner", domain.SuggestionConstraints{Goal: domain.GoalEndurance, Equipment: domain.EquipmentChoiceBodyweight, Focus: domain.FocusFullBody, Level: domain.LevelBeginner, Duration: domain.Duration20}},
	{"Core Finisher", domain.SuggestionConstraints{Goal: domain.GoalFatLoss, Equipment: domain.EquipmentChoiceBodyweight, Focus: domain.FocusCore, Level: domain.LevelIntermediate, Duration: domain.Duration20}},
}

func main() {
	seed := flag.Uint64("seed", 42, "shuffle seed for the generated plans")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var clients repository.Clients
	if cfg.UsesMongo() {
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoDB.URI))
		if err != nil {
			log.Fatalf("Failed to connect to Mongo: %v", err)
		}
		defer client.Disconnect(context.Background())
		clients.MongoDB = client.Database(cfg.MongoDB.Database)
	}
	if cfg.UsesRedis() {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password})
		defer rdb.Close()
		clients.RedisClient = rdb
	}

	store, closeStore, err := repository.OpenStore(ctx, cfg, clients)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer closeStore()

	exercises, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		log.Fatalf("Failed to load exercise catalog: %v", err)
	}

	plans := repository.NewPlanStore(store)
	existing := map[string]bool{}
	for _, p := range plans.List(ctx) {
		existing[p.Name] = true
	}

	engine := suggest.NewEngine(exercises, rand.New(rand.NewPCG(*seed, *seed)))
	now := time.Now()

	for _, starter := range starters {
		if existing[starter.Name] {
			fmt.Printf("Skipping duplicate: %s\n", starter.Name)
			continue
		}

		result := engine.Generate(starter.Constraints)
		draft := builder.NewDraft()
		draft.Replace(result.Items, starter.Name)

		saved, err := draft.Save(ctx, plans, starter.Name, now)
		if err != nil {
			log.Printf("Error creating plan %s: %v\n", starter.Name, err)
			continue
		}
		fmt.Printf("Created Plan: %s with %d exercises\n", saved.Name, saved.Count)
	}
	fmt.Println("Seeding Plans Complete.")
}
