package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/limbo/stravadictos/internal/feed"
	"github.com/limbo/stravadictos/internal/report"
	"github.com/limbo/stravadictos/internal/repository"
	"github.com/limbo/stravadictos/internal/service"
	"github.com/limbo/stravadictos/pkg/cleanup"
	"github.com/limbo/stravadictos/pkg/config"
	"github.com/limbo/stravadictos/pkg/timeutil"
)

const settingsPath = "./configs/settings.json"

func init() {
	service.InitValidator()
}

func main() {
	var (
		date       = flag.String("date", "today", "logical day to record activities under (YYYY-MM-DD)")
		skip       = flag.Int("skip", 0, "leading feed entries to skip, for delayed runs")
		stopAfter  = flag.Int("stop-after", 0, "cap on collected new activities, 0 for no cap")
		waitUntil  = flag.String("wait-until", "", "defer the run until this local time (HH:MM)")
		fillWeeks  = flag.String("fill-weeks", "", "seed week rows for 'YYYY-MM-DD,YYYY-MM-DD' and exit")
		addAthlete = flag.String("add-athlete", "", "register 'Full Name,Strava Name' and exit")
		dropName   = flag.String("drop-athlete", "", "remove athlete by strava name and exit")
		setWeeks   = flag.String("set-weeks", "", "set 'Strava Name,N' completed weeks and exit")
	)
	flag.Parse()
	defer cleanup.CleanUp()

	cfg := config.New()
	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		log.Fatal("loading settings error: " + err.Error())
	}
	loc, err := time.LoadLocation(settings.Timezone)
	if err != nil {
		log.Fatal("loading timezone error: " + err.Error())
	}

	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}

	ctx := context.Background()

	if *addAthlete != "" {
		name, stravaName, ok := strings.Cut(*addAthlete, ",")
		if !ok {
			log.Fatal("add-athlete expects 'Full Name,Strava Name'")
		}
		athletesService := service.NewAthletesService(repository.NewAthletesRepo(&dbCfg))
		err := athletesService.Register(ctx, &service.RegisterAthleteRequest{
			Name:       strings.TrimSpace(name),
			StravaName: strings.TrimSpace(stravaName),
			Active:     true,
		})
		if err != nil {
			log.Fatal("registering athlete error: " + err.Error())
		}
		log.Println("athlete registered")
		return
	}

	if *dropName != "" {
		athletesService := service.NewAthletesService(repository.NewAthletesRepo(&dbCfg))
		if err := athletesService.Drop(ctx, *dropName); err != nil {
			log.Fatal("dropping athlete error: " + err.Error())
		}
		log.Println("athlete dropped")
		return
	}

	if *setWeeks != "" {
		stravaName, weeksStr, ok := strings.Cut(*setWeeks, ",")
		if !ok {
			log.Fatal("set-weeks expects 'Strava Name,N'")
		}
		weeks, err := strconv.Atoi(strings.TrimSpace(weeksStr))
		if err != nil {
			log.Fatal("parsing set-weeks count error: " + err.Error())
		}
		athletesService := service.NewAthletesService(repository.NewAthletesRepo(&dbCfg))
		if err := athletesService.SetWeeksCompleted(ctx, strings.TrimSpace(stravaName), weeks); err != nil {
			log.Fatal("updating weeks completed error: " + err.Error())
		}
		log.Println("weeks completed updated")
		return
	}

	if *fillWeeks != "" {
		start, end, err := parseWeekRange(*fillWeeks, loc)
		if err != nil {
			log.Fatal("fill-weeks error: " + err.Error())
		}
		weeksRepo := repository.NewWeeksRepo(&dbCfg)
		if err := weeksRepo.Fill(ctx, start, end); err != nil {
			log.Fatal("filling weeks error: " + err.Error())
		}
		log.Println("weeks filled")
		return
	}

	day := time.Now().In(loc)
	if *date != "today" {
		day, err = time.ParseInLocation(timeutil.DayFormat, *date, loc)
		if err != nil {
			log.Fatal("parsing date error: " + err.Error())
		}
	}

	if *waitUntil != "" {
		waitFor(*waitUntil, loc)
	}

	auth := feed.NewAuthenticator(
		cfg.GetString("CLIENT_ID"),
		cfg.GetString("CLIENT_SECRET"),
		cfg.GetString("ACCESS_TOKEN"),
		settings.CallbackAddr,
		settings.AuthScopes,
	)
	token, err := auth.Token(ctx)
	if err != nil {
		log.Fatal("strava access error: " + err.Error())
	}

	reports, err := report.NewCSVStore(settings.ReportDir)
	if err != nil {
		log.Fatal("report store error: " + err.Error())
	}

	pipeline := service.NewPipelineService(&service.PipelineDeps{
		Feed:           feed.NewClient(settings.ClubID, token, settings.PageSize),
		Reports:        reports,
		AthletesRepo:   repository.NewAthletesRepo(&dbCfg),
		WeeksRepo:      repository.NewWeeksRepo(&dbCfg),
		ActivitiesRepo: repository.NewActivitiesRepo(&dbCfg),
		StateRepo:      repository.NewRunStateRepo(&dbCfg),
		Threshold:      time.Duration(settings.ThresholdMinutes) * time.Minute,
		MaxRecords:     settings.MaxRecords,
	})

	if err := pipeline.Run(ctx, service.RunOptions{
		Day:       day,
		Skip:      *skip,
		StopAfter: *stopAfter,
	}); err != nil {
		log.Fatal("pipeline run error: " + err.Error())
	}
}

func parseWeekRange(arg string, loc *time.Location) (time.Time, time.Time, error) {
	startStr, endStr, ok := strings.Cut(arg, ",")
	if !ok {
		log.Fatal("fill-weeks expects 'YYYY-MM-DD,YYYY-MM-DD'")
	}
	start, err := time.ParseInLocation(timeutil.DayFormat, strings.TrimSpace(startStr), loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.ParseInLocation(timeutil.DayFormat, strings.TrimSpace(endStr), loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// waitFor blocks until the next occurrence of hhmm in loc. Used to launch
// the nightly run a few minutes before midnight without an external
// scheduler.
func waitFor(hhmm string, loc *time.Location) {
	target, err := time.ParseInLocation("15:04", hhmm, loc)
	if err != nil {
		log.Fatal("parsing wait-until error: " + err.Error())
	}
	now := time.Now().In(loc)
	at := time.Date(now.Year(), now.Month(), now.Day(), target.Hour(), target.Minute(), 0, 0, loc)
	if at.Before(now) {
		at = at.AddDate(0, 0, 1)
	}
	slog.Info("waiting before run", slog.Time("until", at))
	time.Sleep(time.Until(at))
}
