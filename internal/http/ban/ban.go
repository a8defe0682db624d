// Package ban tracks abusive clients in redis. Clients that keep tripping the
// rate limiter on the credential endpoints collect strikes; enough strikes in
// the window earns a temporary ban.
package ban

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ashik3031/inventory-management/internal/redissvc"
)

const (
	strikeLimit  = 10
	strikeWindow = time.Hour
	banDuration  = 24 * time.Hour

	DailyBanLogKey = "ratelimit:banlog:daily"
)

var (
	rdb *redis.Client
	ctx context.Context
)

func SetRedisService(rs *redissvc.RedisService) {
	rdb = rs.Rdb()
	ctx = rs.Ctx()
}

type BanLogEntry struct {
	Target  string    `json:"target"`
	Route   string    `json:"route"`
	Strikes int       `json:"strikes"`
	Time    time.Time `json:"time"`
}

// RecordStrike increments the strike counter for target and bans it once the
// limit is reached. Returns the current strike count.
func RecordStrike(target, route string) int {
	if rdb == nil {
		return 0
	}

	key := "ratelimit:strikes:" + target
	strikes, err := rdb.Incr(ctx, key).Result()
	if err != nil {
		log.Printf("Failed to record strike for %s: %v", target, err)
		return 0
	}
	if strikes == 1 {
		rdb.Expire(ctx, key, strikeWindow)
	}

	if strikes >= strikeLimit {
		if err := rdb.Set(ctx, "ratelimit:banned:"+target, route, banDuration).Err(); err != nil {
			log.Printf("Failed to ban %s: %v", target, err)
		}
		logBanEvent(target, route, int(strikes))
	}
	return int(strikes)
}

// IsBanned reports whether target currently holds an active ban.
func IsBanned(target string) bool {
	if rdb == nil {
		return false
	}
	exists, err := rdb.Exists(ctx, "ratelimit:banned:"+target).Result()
	return err == nil && exists > 0
}

func logBanEvent(target, route string, strikes int) {
	entry := BanLogEntry{
		Target:  target,
		Route:   route,
		Strikes: strikes,
		Time:    time.Now(),
	}
	data, _ := json.Marshal(entry)
	if err := rdb.RPush(ctx, DailyBanLogKey, data).Err(); err != nil {
		log.Printf("Failed to log ban event: %v", err)
	}
}

// StartDailyBanSummary periodically writes a summary of ban events to the log
// and resets the daily list.
func StartDailyBanSummary(interval time.Duration) {
	for {
		time.Sleep(interval)

		entries, err := rdb.LRange(ctx, DailyBanLogKey, 0, -1).Result()
		if err != nil {
			log.Printf("Failed to read ban log: %v", err)
			continue
		}
		if len(entries) == 0 {
			continue
		}

		log.Printf("Ban summary: %d ban(s) in the last period", len(entries))
		for _, raw := range entries {
			var e BanLogEntry
			if json.Unmarshal([]byte(raw), &e) == nil {
				log.Printf("  banned %s on %s after %d strikes at %s", e.Target, e.Route, e.Strikes, e.Time.Format(time.RFC3339))
			}
		}
		rdb.Del(ctx, DailyBanLogKey)
	}
}
