package main // Entry point package

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/reservation-bench/internal/bench"
	"github.com/iliyamo/reservation-bench/internal/config"
	"github.com/iliyamo/reservation-bench/internal/database"
	"github.com/iliyamo/reservation-bench/internal/handler"
	"github.com/iliyamo/reservation-bench/internal/queue"
	"github.com/iliyamo/reservation-bench/internal/report"
	"github.com/iliyamo/reservation-bench/internal/repository"
	"github.com/iliyamo/reservation-bench/internal/router"
	queue_publisher "github.com/iliyamo/reservation-bench/internal/service"
)

// app bundles the pieces a benchmark invocation needs, so the flag
// modes and the interactive menu share one wiring.
type app struct {
	cfg    config.Config
	events *repository.EventRepo
	seats  *repository.SeatRepo
	orch   *bench.Orchestrator
	store  *report.Store
}

func main() {
	_ = godotenv.Load() // .env is optional

	users := flag.Int("users", 0, "number of concurrent simulated users")
	isolation := flag.String("isolation", "READ COMMITTED", "isolation level: READ COMMITTED, REPEATABLE READ or SERIALIZABLE")
	eventID := flag.Uint64("event", 0, "event id to reserve against")
	seats := flag.Int("seats", 0, "recreate this many available seats for the event before running")
	conflict := flag.Int("conflict", 30, "target percentage of conflicting attempts (0-100)")
	all := flag.Bool("all", false, "run the standard campaign configurations")
	interactive := flag.Bool("interactive", false, "force the interactive guided mode")
	serveAddr := flag.String("serve", "", "serve stored summaries over HTTP on this address (e.g. :8080)")
	consume := flag.Bool("consume", false, "tail reservation.confirmed events into logs/reservations.log")
	publish := flag.Bool("publish", false, "publish reservation.confirmed events to RabbitMQ")
	flag.Parse()

	cfg := config.Load()

	if *serveAddr != "" {
		serveReports(cfg, *serveAddr)
		return
	}
	if *consume {
		if err := queue.StartReservationConsumer(cfg.AMQPURL); err != nil {
			log.Printf("consumer stopped: %v", err)
		}
		return
	}

	if *conflict < 0 || *conflict > 100 {
		log.Printf("invalid conflict percentage %d: must be between 0 and 100", *conflict)
		return
	}
	if *users < 0 {
		log.Printf("invalid user count %d", *users)
		return
	}

	// Size the pool so every simulated user can hold its own connection
	// and attempts block on row locks, never on the pool.
	maxConns := cfg.DBMaxConns
	if maxConns == 0 {
		need := *users
		for _, rc := range bench.StandardRuns {
			if rc.Users > need {
				need = rc.Users
			}
		}
		maxConns = need + 5
	}

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName, maxConns)
	if err != nil {
		log.Printf("cannot reach database at %s:%s: %v", cfg.DBHost, cfg.DBPort, err)
		return
	}
	defer func() { _ = db.Close() }()

	eventRepo := repository.NewEventRepo(db)
	seatRepo := repository.NewSeatRepo(db)
	reservationRepo := repository.NewReservationRepo(db)

	var pub bench.PublishFunc
	if *publish {
		pub = func(ctx context.Context, ev queue.ReservationConfirmedEvent) {
			// Failures are logged inside the publisher and never
			// affect the attempt outcome.
			_ = queue_publisher.PublishReservationConfirmed(ctx, cfg.AMQPURL, ev)
		}
	}
	attempter := bench.NewAttempter(db, seatRepo, reservationRepo, pub)

	a := &app{
		cfg:    cfg,
		events: eventRepo,
		seats:  seatRepo,
		orch:   bench.NewOrchestrator(seatRepo, eventRepo, attempter.Do, nil),
		store:  report.NewStore(config.NewRedisClient(cfg)),
	}

	ctx := context.Background()

	switch {
	case *interactive || (*users == 0 && *eventID == 0 && !*all):
		a.runInteractive(ctx)
	case *all:
		id := orDefault(*eventID)
		if *seats > 0 && !a.bootstrap(ctx, id, *seats) {
			return
		}
		a.runCampaign(ctx, id, *conflict)
	default:
		id := orDefault(*eventID)
		n := *users
		if n == 0 {
			n = 5
		}
		level, err := bench.ParseIsolation(*isolation)
		if err != nil {
			log.Print(err)
			return
		}
		if *seats > 0 && !a.bootstrap(ctx, id, *seats) {
			return
		}
		a.runOne(ctx, n, level, id, *conflict)
	}
}

// orDefault substitutes event 1 when no event id was given.
func orDefault(eventID uint64) uint64 {
	if eventID == 0 {
		return 1
	}
	return eventID
}

// bootstrap recreates count available seats for the event, reporting
// failures as diagnostics rather than aborting the process.
func (a *app) bootstrap(ctx context.Context, eventID uint64, count int) bool {
	log.Printf("creating %d available seats for event %d", count, eventID)
	if err := a.seats.ResetAndCreate(ctx, eventID, count); err != nil {
		log.Printf("seat bootstrap failed: %v", err)
		return false
	}
	return true
}

// runOne executes a single configured run and reports it.
func (a *app) runOne(ctx context.Context, users int, level bench.IsolationLevel, eventID uint64, conflict int) {
	sum, err := a.orch.Run(ctx, users, level, eventID, conflict)
	if err != nil {
		log.Printf("run failed: %v", err)
		return
	}
	report.WriteTable(os.Stdout, []bench.Summary{sum})
	a.save(ctx, sum)
}

// runCampaign executes the standard configuration matrix and prints
// the comparison table over whatever completed.
func (a *app) runCampaign(ctx context.Context, eventID uint64, conflict int) {
	sums, err := bench.RunCampaign(ctx, a.orch, eventID, conflict, time.Second)
	if err != nil {
		log.Printf("campaign failed: %v", err)
	}
	if len(sums) == 0 {
		return
	}
	report.WriteTable(os.Stdout, sums)
	for _, s := range sums {
		a.save(ctx, s)
	}
}

// save persists a summary when the store is available.
func (a *app) save(ctx context.Context, s bench.Summary) {
	if !a.store.Enabled() {
		return
	}
	if err := a.store.Save(ctx, s); err != nil {
		log.Printf("summary store: %v", err)
	}
}

// serveReports runs the read-only report server until interrupted.
func serveReports(cfg config.Config, addr string) {
	store := report.NewStore(config.NewRedisClient(cfg))
	if !store.Enabled() {
		log.Printf("redis unreachable at %s; /v1/summaries will return 503", cfg.RedisAddr)
	}
	e := echo.New()
	router.RegisterRoutes(e, handler.NewReportHandler(store))

	log.Printf("report server listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
