/*
Copyright © 2026 masteryyh <yyh991013@163.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/masteryyh/tablekit/pkg/config"
	"github.com/masteryyh/tablekit/pkg/conn"
	"github.com/masteryyh/tablekit/pkg/middleware"
	"github.com/masteryyh/tablekit/pkg/routes"
	"github.com/masteryyh/tablekit/pkg/utils/safe"
	"github.com/masteryyh/tablekit/pkg/utils/signal"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		slog.Info("loading configuration...")
		if err := config.Init(configFiles()...); err != nil {
			slog.Error("failed to load configuration", "error", err)
			return err
		}
		cfg := config.GetConfigManager().GetConfig()

		if seed, _ := cmd.Flags().GetBool("seed"); seed {
			cfg.DB.Seed = true
		}
		if port, _ := cmd.Flags().GetInt("port"); port > 0 {
			cfg.Port = port
		}

		baseCtx, cancel := signal.SetupContext()
		defer cancel()

		slog.InfoContext(baseCtx, "initializing database connection...", "driver", cfg.DB.Driver)
		if err := conn.InitDB(baseCtx, cfg.DB, cfg.Debug); err != nil {
			slog.ErrorContext(baseCtx, "failed to initialize database connection", "error", err)
			return err
		}

		if !cfg.Debug {
			gin.SetMode(gin.ReleaseMode)
		}
		engine := gin.New()
		engine.Use(middleware.RecoveryMiddleware())
		engine.Use(middleware.LoggingMiddleware(slog.Default()))

		apiRoute := engine.Group("/api")
		if err := routes.GetV1Routes().RegisterRoutes(apiRoute.Group("/v1")); err != nil {
			slog.ErrorContext(baseCtx, "failed to register routes", "error", err)
			return err
		}

		server := &http.Server{
			Addr:              ":" + strconv.Itoa(cfg.Port),
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		}

		safe.GoSafeWithCtx("http-server", baseCtx, func(ctx context.Context) {
			slog.InfoContext(ctx, "starting http server", "port", cfg.Port, "tables", cfg.TableNames())
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.ErrorContext(ctx, "failed to start http server", "error", err)
				cancel()
			}
		})

		<-baseCtx.Done()
		slog.Info("shutting down server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		return server.Shutdown(shutdownCtx)
	},
}

func configFiles() []string {
	if cfgFile == "" {
		return nil
	}
	return []string{cfgFile}
}

func init() {
	serveCmd.Flags().IntP("port", "p", 0, "override the configured port")
	serveCmd.Flags().Bool("seed", false, "seed the demo contacts table")
	rootCmd.AddCommand(serveCmd)
}
