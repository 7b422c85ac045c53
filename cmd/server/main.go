package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"echotap.link/configs"
	"echotap.link/configs/configsdatabase"
	"echotap.link/configs/configslog"
	"echotap.link/pkg/renderer"
	"echotap.link/routes"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	configs.LoadEnv()
	configslog.InitLogger()
	defer configslog.SyncLogger()

	cfg := configs.GetAppConfig()
	renderer.DefaultPageTitle = cfg.Name

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	app := fiber.New(fiber.Config{
		AppName:               cfg.Name,
		Views:                 renderer.NewEngine("./views"),
		BodyLimit:             cfg.BodyLimitMB << 20,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})
	app.Static("/static", "./static")
	routes.SetupRoutes(app)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := net.JoinHostPort(cfg.Host, cfg.Port)
	go func() {
		configslog.Log.Info("HTTP server listening", zap.String("addr", addr))
		if err := app.Listen(addr); err != nil {
			configslog.Log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	configslog.Log.Info("Shutting down")

	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		configslog.Log.Warn("HTTP server shutdown failed", zap.Error(err))
	}
}

// errorHandler turns errors escaping the handlers into a status and a short
// message. Handlers render their own pages for expected failures.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	if code >= fiber.StatusInternalServerError {
		configslog.Log.Error("Unhandled request error",
			zap.String("path", c.Path()),
			zap.Any("request_id", c.Locals("requestid")),
			zap.Error(err))
	}
	return c.Status(code).SendString(http.StatusText(code))
}
