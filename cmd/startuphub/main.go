package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"startuphub/internal/client/adapters/httpapi"
	storageadapters "startuphub/internal/client/adapters/storage"
	"startuphub/internal/client/adapters/ui"
	"startuphub/internal/client/app/services"
	"startuphub/internal/client/app/session"
	"startuphub/internal/client/config"
	"startuphub/pkg/logger"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "CLIENT_LOGGER_MODE"
	EnvLoggerLevel = "CLIENT_LOGGER_LEVEL"
	EnvFilePath    = "CLIENT_ENV_FILE"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrRestoreSession       = "failed to restore session"
	ErrCommandFailed        = "command failed"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

const usage = `usage: startuphub <command> [args]

commands:
  login <userId> <userPw>    log in to the platform
  logout                     log out and clear the session
  whoami                     show the current member
  member <userId>            show a member profile
  posts <postType> [page]    list community posts
  markets                    list marketplace items
  subsidy [page] [perPage]   list government support services
`

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx, os.Getenv(EnvFilePath))
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		exitCode = run(ctx, cfg, os.Args[1:])
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

// run собирает SDK и выполняет одну команду.
func run(ctx context.Context, cfg *config.Config, args []string) int {
	log := logger.Log(ctx)

	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return 2
	}

	terminal := ui.NewTerminal(os.Stdout)
	stateFile := storageadapters.NewStateFile(cfg.Storage.StatePath)
	tokenFile := storageadapters.NewTokenFile(cfg.Storage.TokenPath)

	store := session.NewStore(stateFile, tokenFile)
	pipeline := httpapi.NewPipeline(cfg.API.BaseURL, cfg.API.Timeout, store, tokenFile, terminal)
	controller := session.NewController(store, pipeline, terminal, terminal)
	pipeline.BindTerminator(controller)

	if err := controller.Restore(ctx); err != nil {
		log.Warn(ctx, ErrRestoreSession, zap.Error(err))
	}

	if err := dispatch(ctx, cfg, args, store, pipeline, controller); err != nil {
		log.Error(ctx, ErrCommandFailed, zap.String("command", args[0]), zap.Error(err))
		fmt.Fprintf(os.Stderr, "%s: %v\n", args[0], err)
		return 1
	}

	return 0
}

func dispatch(ctx context.Context, cfg *config.Config, args []string, store *session.Store, pipeline *httpapi.Pipeline, controller *session.Controller) error {
	switch args[0] {
	case "login":
		if len(args) != 3 {
			return fmt.Errorf("usage: login <userId> <userPw>")
		}
		return controller.Login(ctx, args[1], args[2])

	case "logout":
		controller.Logout(ctx)
		return nil

	case "whoami":
		member := store.Member()
		if member == nil {
			fmt.Println("not logged in")
			return nil
		}
		fmt.Printf("%s (%s) level=%d\n", member.UserID, member.UserName, member.UserLevel)
		return nil

	case "member":
		if len(args) != 2 {
			return fmt.Errorf("usage: member <userId>")
		}
		member, err := services.NewMemberAPI(pipeline).GetMember(ctx, args[1])
		if err != nil {
			return err
		}
		fmt.Printf("%s (%s) %s %s\n", member.UserID, member.UserName, member.UserEmail, member.UserPhone)
		return nil

	case "posts":
		if len(args) < 2 {
			return fmt.Errorf("usage: posts <postType> [page]")
		}
		page := 1
		if len(args) > 2 {
			p, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid page: %w", err)
			}
			page = p
		}
		result, err := services.NewPostAPI(pipeline).List(ctx, args[1], page)
		if err != nil {
			return err
		}
		for _, post := range result.List {
			fmt.Printf("#%d\t%s\t%s\t(%d reads)\n", post.PostNo, post.PostTitle, post.UserID, post.ReadCount)
		}
		fmt.Printf("page %d, %d total\n", result.PageInfo.ReqPage, result.TotalCount)
		return nil

	case "markets":
		markets, err := services.NewMarketAPI(pipeline).List(ctx)
		if err != nil {
			return err
		}
		for _, market := range markets {
			price := "-"
			if market.Price != nil {
				price = strconv.Itoa(*market.Price)
			}
			fmt.Printf("#%d\t%s\t%s\t%s\n", market.MarketNo, market.MarketTitle, market.UserID, price)
		}
		return nil

	case "subsidy":
		page, perPage := 1, 10
		if len(args) > 1 {
			p, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid page: %w", err)
			}
			page = p
		}
		if len(args) > 2 {
			pp, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid perPage: %w", err)
			}
			perPage = pp
		}
		result, err := services.NewSubsidyAPI(cfg.Subsidy.BaseURL, cfg.Subsidy.ServiceKey).ServiceList(ctx, page, perPage)
		if err != nil {
			return err
		}
		for _, svc := range result.Data {
			fmt.Printf("%s\t%s\t%s\n", svc.ServiceID, svc.ServiceName, svc.ServiceField)
		}
		fmt.Printf("page %d, %d total\n", result.Page, result.TotalCount)
		return nil

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command: %s", args[0])
	}
}
