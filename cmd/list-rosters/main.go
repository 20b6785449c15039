package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/army-builder/internal/repositories/rosters"
)

func main() {
	ctx := context.Background()

	// Set up Redis
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("Failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)
	defer client.Close()

	if _, pingErr := client.Ping(ctx).Result(); pingErr != nil {
		log.Fatalf("Failed to connect to Redis: %v", pingErr)
	}

	keys, err := client.Keys(ctx, "roster:*").Result()
	if err != nil {
		log.Fatalf("Failed to get roster keys: %v", err)
	}

	fmt.Printf("Found %d rosters:\n", len(keys))
	for _, key := range keys {
		raw, getErr := client.Get(ctx, key).Bytes()
		if getErr != nil {
			fmt.Printf("  %s: ERROR - %v\n", key, getErr)
			continue
		}

		var data rosters.Data
		if jsonErr := json.Unmarshal(raw, &data); jsonErr != nil {
			fmt.Printf("  %s: ERROR - %v\n", key, jsonErr)
			continue
		}

		ttl, _ := client.TTL(ctx, key).Result()

		ducats, glory := 0, 0
		for _, s := range data.Slots {
			ducats += s.Ducats
			glory += s.Glory
		}

		fmt.Printf("  %s  owner=%s  %q  %d slots  %d ducats  %d glory  expires in %s\n",
			data.ID, data.OwnerID, data.Name, len(data.Slots), ducats, glory, ttl)
	}
}
