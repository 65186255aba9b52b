package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"syscall"
	"time"

	"github.com/riyaziyyat/exam-backend/internal/config"
	"github.com/riyaziyyat/exam-backend/internal/database"
	"github.com/riyaziyyat/exam-backend/internal/logger"
	"github.com/riyaziyyat/exam-backend/internal/repository"
	"github.com/riyaziyyat/exam-backend/internal/service"
	"golang.org/x/term"
)

// hash-password prints a bcrypt hash for TEACHER_PASSWORD_HASH, or with
// -students converts every plain-text student password in the store.
func main() {
	upgradeStudents := flag.Bool("students", false, "Hash all plain-text student passwords in the store")
	flag.Parse()

	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()
	matcher := service.BcryptMatcher{Cost: cfg.BcryptCost}

	if *upgradeStudents {
		runUpgrade(cfg, matcher)
		return
	}

	// ─── CLI Input ─────────────────────────────────────────────────────
	password, err := readPassword("Enter Password: ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error reading password:", err)
		os.Exit(1)
	}
	if len(password) < 6 {
		fmt.Fprintln(os.Stderr, "Error: Password must be at least 6 characters")
		os.Exit(1)
	}
	confirm, err := readPassword("Confirm Password: ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error reading password:", err)
		os.Exit(1)
	}
	if confirm != password {
		fmt.Fprintln(os.Stderr, "Error: Passwords do not match")
		os.Exit(1)
	}

	hash, err := matcher.Hash(password)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error hashing password:", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}

func readPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	b, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr) // Newline after password input
	return string(b), err
}

func runUpgrade(cfg *config.Config, matcher service.BcryptMatcher) {
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	st, err := database.OpenStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open record store")
	}
	defer st.Close(context.Background())

	students := service.NewStudentService(repository.NewStudentRepository(st), matcher)
	n, err := students.UpgradePasswords(ctx, matcher)
	if err != nil {
		log.Fatal().Err(err).Int("upgraded", n).Msg("Password upgrade failed")
	}

	log.Info().Int("upgraded", n).Msg("Student passwords hashed; set PASSWORD_HASHING=bcrypt")
}
