package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"newsletter-agent/internal/di"
	"newsletter-agent/internal/domain/entity"
	"newsletter-agent/internal/infrastructure/env"
)

func main() {
	envService := env.NewEnvService()

	cfg, err := di.ConfigFromEnv(envService)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	raw, err := readTopic(os.Args[1:], os.Stdin, cfg.DefaultTopic)
	if err != nil {
		log.Fatalf("Failed to read topic: %v", err)
	}

	topic, err := entity.NewTopic(raw)
	if err != nil {
		log.Fatalf("Invalid topic %q: %v", raw, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.PipelineTimeout)
	defer cancel()

	container, err := di.NewContainer(cfg, di.Options{LogName: raw})
	if err != nil {
		log.Fatalf("Initialization failed: %v", err)
	}

	container.Logger.Info("Pipeline started",
		"topic", raw,
		"provider", cfg.LLMProvider,
		"model", cfg.LLMModel,
	)

	if _, err := container.Pipeline.Run(ctx, topic); err != nil {
		container.Logger.Error("Pipeline failed", "error", err)
		container.Presenter.ShowError(ctx, err)
		container.Close()
		os.Exit(1)
	}

	container.Close()
}

// readTopic prefers command-line words, then one line of stdin, then fallback.
func readTopic(args []string, stdin io.Reader, fallback string) (string, error) {
	if topic := strings.TrimSpace(strings.Join(args, " ")); topic != "" {
		return topic, nil
	}

	if f, ok := stdin.(*os.File); ok {
		if info, err := f.Stat(); err == nil && info.Mode()&os.ModeCharDevice != 0 {
			fmt.Printf("Enter a newsletter topic [%s]: ", fallback)
		}
	}

	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if topic := strings.TrimSpace(line); topic != "" {
		return topic, nil
	}
	return fallback, nil
}
